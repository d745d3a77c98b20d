package config

import "errors"

// Errors returned by Config.Validate. The command wraps them with
// "configuration error: %w", so match them with errors.Is.
var (
	// ErrNoELFFile is returned when no binary to analyse was given.
	ErrNoELFFile = errors.New("no ELF file specified: use --elf-file")

	// ErrZeroProgramBudget is returned when the program memory budget is zero.
	// A percentage of a zero budget cannot be computed.
	ErrZeroProgramBudget = errors.New("invalid max program memory: must be greater than zero")

	// ErrZeroDynamicBudget is returned when the dynamic memory budget is zero.
	ErrZeroDynamicBudget = errors.New("invalid max dynamic memory: must be greater than zero")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
