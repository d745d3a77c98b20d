package model

import "strings"

// SegmentFlags holds the permission bits of a program header (p_flags).
type SegmentFlags uint32

// Permission bits as defined by the ELF specification.
const (
	// FlagExecute marks a segment as executable (PF_X).
	FlagExecute SegmentFlags = 0x1

	// FlagWrite marks a segment as writable (PF_W).
	FlagWrite SegmentFlags = 0x2

	// FlagRead marks a segment as readable (PF_R).
	FlagRead SegmentFlags = 0x4
)

// Has reports whether every bit of f2 is set in f.
func (f SegmentFlags) Has(f2 SegmentFlags) bool {
	return f&f2 == f2
}

// String renders the flags the way readelf does, e.g. "R E" becomes "R-X".
// Bits outside R, W and X are ignored.
func (f SegmentFlags) String() string {
	var sb strings.Builder
	sb.Grow(3)

	if f.Has(FlagRead) {
		sb.WriteByte('R')
	} else {
		sb.WriteByte('-')
	}
	if f.Has(FlagWrite) {
		sb.WriteByte('W')
	} else {
		sb.WriteByte('-')
	}
	if f.Has(FlagExecute) {
		sb.WriteByte('X')
	} else {
		sb.WriteByte('-')
	}

	return sb.String()
}

// Segment describes one loadable region of an ELF image.
// Segments are produced by the ELF parser and only read afterwards.
type Segment struct {
	// Index is the position of the entry in the program header table.
	Index int `json:"index"`

	// Type is the program header type name (e.g. "PT_LOAD").
	Type string `json:"type"`

	// Flags are the raw permission bits of the segment.
	Flags SegmentFlags `json:"flags"`

	// FileSize is the number of bytes the segment occupies in the file image.
	// This is the only size used for budget accounting.
	FileSize uint64 `json:"fileSize"`

	// MemSize is the number of bytes the segment occupies in memory.
	MemSize uint64 `json:"memSize"`

	// VAddr is the virtual address of the segment.
	VAddr uint64 `json:"vaddr"`

	// PAddr is the physical (load) address of the segment.
	PAddr uint64 `json:"paddr"`
}
