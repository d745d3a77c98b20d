package elfimage

import (
	"errors"
	"fmt"
)

// Error categories for reading ELF images.
var (
	// ErrIO is matched by every error caused by reading the input file.
	ErrIO = errors.New("cannot read ELF file")

	// ErrParse is matched by every error caused by malformed ELF contents.
	ErrParse = errors.New("invalid ELF file")
)

// IOError reports a failure to read an ELF file from disk.
type IOError struct {
	// Path is the file that could not be read.
	Path string

	// Err is the underlying error from the operating system.
	Err error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", ErrIO, e.Path, e.Err)
}

// Unwrap returns both the category and the underlying cause so that
// errors.Is works with ErrIO as well as with fs.ErrNotExist and friends.
func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

// ParseError reports bytes that do not form a valid ELF image.
type ParseError struct {
	// Err is the underlying error from the ELF decoder.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", ErrParse, e.Err)
}

// Unwrap returns both the category and the underlying cause.
func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// errEmptyImage is wrapped in a ParseError when the input has no bytes at all.
var errEmptyImage = errors.New("empty image")
