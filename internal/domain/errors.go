package domain

import (
	"errors"
	"strings"
)

// ErrorKind classifies errors reported to the user.
type ErrorKind int

const (
	KindUnknown     ErrorKind = iota // Not classified
	KindUsage                        // Missing or invalid required argument
	KindValidation                   // Input rejected before or instead of a remote call
	KindRemote                       // The issue service returned an error
	KindDispatch                     // Unknown command name
	KindEnvironment                  // Editor, browser, repository or config problem
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindValidation:
		return "validation"
	case KindRemote:
		return "remote"
	case KindDispatch:
		return "dispatch"
	case KindEnvironment:
		return "environment"
	default:
		return "unknown"
	}
}

// Error is a classified, user-facing error.
type Error struct {
	Err  error // Underlying cause (optional)
	Msg  string
	Kind ErrorKind
}

// Error returns the message, followed by the cause when the message is empty.
func (e *Error) Error() string {
	if e.Msg == "" && e.Err != nil {
		return e.Err.Error()
	}
	return e.Msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error of the same kind and message, so sentinel values work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Msg == e.Msg
}

// UsageError reports a missing or invalid required argument.
func UsageError(msg string) error {
	return &Error{Kind: KindUsage, Msg: msg}
}

// ValidationError reports rejected input.
func ValidationError(msg string) error {
	return &Error{Kind: KindValidation, Msg: msg}
}

// DispatchError reports an unknown command.
func DispatchError(name string) error {
	return &Error{Kind: KindDispatch, Msg: "command '" + name + "' not implemented"}
}

// EnvironmentError reports a failure of a local collaborator (editor, browser, git).
func EnvironmentError(msg string, cause error) error {
	return &Error{Kind: KindEnvironment, Msg: msg, Err: cause}
}

// RemoteError builds an error from the messages of an error payload.
// The first message is shown bare and every following one is prefixed with "error: ".
func RemoteError(messages ...string) error {
	var b strings.Builder
	for i, msg := range messages {
		if i > 0 {
			b.WriteString("\nerror: ")
		}
		b.WriteString(msg)
	}
	return &Error{Kind: KindRemote, Msg: b.String()}
}

// WithExample returns a copy of err whose message is followed by a usage example.
// The result still matches err with errors.Is.
func WithExample(err *Error, example string) error {
	return &Error{Kind: err.Kind, Msg: err.Msg + "\nexample: " + example, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Domain errors.
var (
	ErrNumberRequired      = &Error{Kind: KindUsage, Msg: "number required"}
	ErrLabelRequired       = &Error{Kind: KindUsage, Msg: "label required"}
	ErrSearchAllStates     = &Error{Kind: KindUsage, Msg: "search does not support state 'all' (use -s open or -s closed)"}
	ErrEmptySearchTerm     = &Error{Kind: KindValidation, Msg: "search term required"}
	ErrEmptyIssue          = &Error{Kind: KindValidation, Msg: "can not submit an empty issue"}
	ErrEmptyComment        = &Error{Kind: KindValidation, Msg: "can not submit an empty comment"}
	ErrNoChanges           = &Error{Kind: KindValidation, Msg: "no changes found"}
	ErrInvalidLabelCommand = &Error{Kind: KindValidation, Msg: "label command should use either 'add' or 'remove'"}
	ErrUnexpectedResponse  = &Error{Kind: KindRemote, Msg: "unexpected failure"}
	ErrNoRepository        = &Error{Kind: KindEnvironment, Msg: "could not determine the repository (use -r user/repo)"}
	ErrBrowserFailed       = &Error{Kind: KindEnvironment, Msg: "opening page in web browser failed"}
)
