package dictionary

import (
	"errors"
	"fmt"
)

var errUnknownFormat = errors.New("unrecognized dictionary format")

// NotFoundError indicates the locale directory is missing or produced no
// dictionaries after filtering. It is raised at load time, before any
// document is processed.
type NotFoundError struct {
	Dir   string
	Cause error
}

func (e *NotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("no locale dictionaries found in %q: %v", e.Dir, e.Cause)
	}
	return fmt.Sprintf("no locale dictionaries found in %q", e.Dir)
}

func (e *NotFoundError) Unwrap() error {
	return e.Cause
}

// ParseError indicates a dictionary file could not be parsed. A parse
// failure aborts the whole load so a malformed file can never silently
// produce a locale with wrong data.
type ParseError struct {
	File   string
	Format string
	Cause  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s dictionary %q: %v", e.Format, e.File, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
