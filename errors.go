package mimekit

import (
	"errors"
	"fmt"
	"strings"
)

// Common lookup and build errors
var (
	ErrSourceUnavailable = errors.New("magic table unavailable")
	ErrCorruptedSource   = errors.New("corrupted magic table")
	ErrMalformedMIME     = errors.New("malformed mime type")
	ErrExtensionNotFound = errors.New("extension not found")
	ErrMIMENotFound      = errors.New("mime type not found")
	ErrChecksumMismatch  = errors.New("magic table checksum mismatch")
)

// ParseError records a build failure together with the offending line number
// and a window of surrounding table lines for operator diagnostics.
type ParseError struct {
	Line   int      // 1-based line number of the failing entry
	Window []string // up to three lines either side, failing line marked
	Err    error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("magic table line %d: %v\n%s", e.Line, e.Err, strings.Join(e.Window, "\n"))
}

// Unwrap returns the underlying error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is matches any ParseError against ErrCorruptedSource, so callers can test
// for a corrupt table without inspecting the wrapped cause.
func (e *ParseError) Is(target error) bool {
	return target == ErrCorruptedSource
}

// IsSourceUnavailable reports whether an error indicates that the magic table
// could not be read
func IsSourceUnavailable(err error) bool {
	return errors.Is(err, ErrSourceUnavailable)
}

// IsCorruptedSource reports whether an error indicates that a magic table
// line could not be parsed
func IsCorruptedSource(err error) bool {
	return errors.Is(err, ErrCorruptedSource)
}

// IsExtensionNotFound reports whether an error indicates that a name carries
// no extension segment
func IsExtensionNotFound(err error) bool {
	return errors.Is(err, ErrExtensionNotFound)
}

// IsMIMENotFound reports whether an error indicates that no table entry
// matches a queried extension or MIME
func IsMIMENotFound(err error) bool {
	return errors.Is(err, ErrMIMENotFound)
}
