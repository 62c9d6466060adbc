package model

import "fmt"

// WarningKind identifies the variant of a Warning.
type WarningKind string

// Warning kinds. The set is closed: every Warning is one of the structs below.
const (
	WarningUnresolvedCall      WarningKind = "unresolved-call"
	WarningUnreadableFile      WarningKind = "unreadable-file"
	WarningTokenizeFailed      WarningKind = "tokenize-failed"
	WarningPlaceholderMismatch WarningKind = "placeholder-mismatch"
)

// Warning is a non-fatal problem recorded during a scan or a lookup.
type Warning interface {
	Kind() WarningKind
	// Position returns the file and line the warning refers to. Line is 0
	// when the warning concerns a whole file or no file at all.
	Position() (Path, int)
	Message() string

	warning()
}

// UnresolvedCallWarning is attached when a translation function was called
// without a resolvable literal argument.
type UnresolvedCallWarning struct {
	Function string
	File     Path
	Line     int
	Reason   string
}

func (w UnresolvedCallWarning) Kind() WarningKind     { return WarningUnresolvedCall }
func (w UnresolvedCallWarning) Position() (Path, int) { return w.File, w.Line }
func (w UnresolvedCallWarning) Message() string {
	return fmt.Sprintf("call to %s has no literal text argument: %s", w.Function, w.Reason)
}
func (UnresolvedCallWarning) warning() {}

// UnreadableFileWarning is attached when a source file could not be read
// or fingerprinted.
type UnreadableFileWarning struct {
	File Path
	Err  string
}

func (w UnreadableFileWarning) Kind() WarningKind     { return WarningUnreadableFile }
func (w UnreadableFileWarning) Position() (Path, int) { return w.File, 0 }
func (w UnreadableFileWarning) Message() string       { return "cannot read file: " + w.Err }
func (UnreadableFileWarning) warning()                {}

// TokenizeFailedWarning is attached when a file could not be tokenized.
type TokenizeFailedWarning struct {
	File Path
	Line int
	Err  string
}

func (w TokenizeFailedWarning) Kind() WarningKind     { return WarningTokenizeFailed }
func (w TokenizeFailedWarning) Position() (Path, int) { return w.File, w.Line }
func (w TokenizeFailedWarning) Message() string       { return "cannot tokenize file: " + w.Err }
func (TokenizeFailedWarning) warning()                {}

// PlaceholderMismatchWarning is attached to an entry when its translation
// for Locale references placeholders the canonical text does not define.
type PlaceholderMismatchWarning struct {
	EntryID string
	Locale  string
	Detail  string
}

func (w PlaceholderMismatchWarning) Kind() WarningKind     { return WarningPlaceholderMismatch }
func (w PlaceholderMismatchWarning) Position() (Path, int) { return "", 0 }
func (w PlaceholderMismatchWarning) Message() string {
	return fmt.Sprintf("translation %s for %s: %s", w.EntryID, w.Locale, w.Detail)
}
func (PlaceholderMismatchWarning) warning() {}
