package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors. Lookup failures wrap them in a *LookupError; match with
// errors.Is.
var (
	ErrArgumentCount    = errors.New("placeholder argument count mismatch")
	ErrPlaceholderIndex = errors.New("placeholder index not defined")
	ErrUnknownNamespace = errors.New("unknown locale namespace")
	ErrUnknownEntry     = errors.New("unknown string entry")
)

// LookupError describes a failed translation lookup.
type LookupError struct {
	EntryID string
	Locale  string
	Text    string
	Detail  string
	Err     error
}

func (e *LookupError) Error() string {
	locale := e.Locale
	if locale == "" {
		locale = "base"
	}

	return fmt.Sprintf("lookup %s (%s): %s: %v", e.EntryID, locale, e.Detail, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}
