package model

import "fmt"

// Category identifies the storage a segment is accounted against.
type Category int

const (
	// CategoryNone is used for segments that count against neither budget.
	CategoryNone Category = iota

	// CategoryProgram is persistent program storage (flash on AVR targets).
	CategoryProgram

	// CategoryDynamic is volatile runtime storage (SRAM on AVR targets).
	CategoryDynamic
)

// String returns a short identifier for the category.
func (c Category) String() string {
	switch c {
	case CategoryNone:
		return "none"
	case CategoryProgram:
		return "program"
	case CategoryDynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}

// Label returns the phrase used in human readable reports.
func (c Category) Label() string {
	switch c {
	case CategoryProgram:
		return "program memory"
	case CategoryDynamic:
		return "dynamic memory"
	default:
		return "unaccounted memory"
	}
}

// MarshalText implements encoding.TextMarshaler so JSON reports carry
// the identifier instead of a number.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so JSON reports can be
// read back. Only the names produced by String are accepted.
func (c *Category) UnmarshalText(text []byte) error {
	switch string(text) {
	case "none":
		*c = CategoryNone
	case "program":
		*c = CategoryProgram
	case "dynamic":
		*c = CategoryDynamic
	default:
		return fmt.Errorf("unknown memory category %q", text)
	}
	return nil
}
