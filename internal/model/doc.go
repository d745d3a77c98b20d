// Package model defines the core data structures used throughout avrsize.
//
// This package contains the following main types:
//   - Segment: A loadable entry of an ELF program header table
//   - Totals: Byte counts accumulated per storage category
//   - Budget: The configured ceilings for program and dynamic memory
//   - Usage: How much of one budget a binary consumes
//   - Report: The complete result of checking one binary
//
// The types carry no behavior beyond small helpers; parsing, classification
// and budget arithmetic live in elfimage and analysis. All exported fields
// have JSON tags because the JSON report serializes Report directly.
package model
