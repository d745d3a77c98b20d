// Package elfimage reads ELF binaries and extracts their loadable segments.
//
// Only the program header table is consulted: for each PT_LOAD entry the
// permission flags and the in-file size are reported, together with the
// addresses for informational output. Section headers, symbols and debug
// information are never interpreted.
//
// Design decision: We use the standard library's debug/elf package because
// it already handles both ELF classes and byte orders and rejects malformed
// headers with descriptive errors. Any failure from debug/elf is reported as
// a *ParseError, and any failure to read the file as an *IOError, so callers
// can distinguish the two with errors.Is(err, ErrParse) and errors.Is(err, ErrIO).
package elfimage
