// Package codecerr defines the error taxonomy shared by every codec
// package in this module: a closed Kind enum plus a typed *Error that
// composes with errors.Is and errors.As over that Kind.
package codecerr

import "fmt"

// Kind identifies the category of a codec failure. The set is closed —
// callers should switch exhaustively rather than compare error strings.
type Kind int

const (
	// InvalidSize means a file or field length differs from the contract.
	InvalidSize Kind = iota
	// BadSignature means a section signature did not match 0x08012025.
	BadSignature
	// MissingSections means a slot's section-id set is missing ids.
	MissingSections
	// DuplicateSections means a slot's section-id set has repeats.
	DuplicateSections
	// BadChecksum means a stored checksum disagreed with the computed one.
	BadChecksum
	// CorruptSave means no slot in a save image is usable.
	CorruptSave
	// OutOfRange means target coordinates exceeded their valid domain.
	OutOfRange
	// EmptyPayload means a decode was attempted on an all-zero PK3.
	EmptyPayload
	// UnsupportedGeneration means bytes didn't match any known generation.
	UnsupportedGeneration
)

func (k Kind) String() string {
	switch k {
	case InvalidSize:
		return "InvalidSize"
	case BadSignature:
		return "BadSignature"
	case MissingSections:
		return "MissingSections"
	case DuplicateSections:
		return "DuplicateSections"
	case BadChecksum:
		return "BadChecksum"
	case CorruptSave:
		return "CorruptSave"
	case OutOfRange:
		return "OutOfRange"
	case EmptyPayload:
		return "EmptyPayload"
	case UnsupportedGeneration:
		return "UnsupportedGeneration"
	default:
		return "Unknown"
	}
}

// Error is the error type every exported codec operation returns on
// failure. Fields is an optional bag of structured context (section ids,
// box/slot coordinates) that callers can inspect without parsing Msg.
type Error struct {
	Kind   Kind
	Msg    string
	Fields map[string]any
	Err    error // wrapped cause, if any
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is a *Error with the same Kind, so callers
// can write errors.Is(err, codecerr.New(codecerr.BadChecksum, "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New constructs an *Error of the given Kind with a message.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf constructs an *Error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap constructs an *Error of the given Kind wrapping an existing error.
func Wrap(kind Kind, err error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// WithField returns e with a structured field attached, for chaining at
// the construction site: codecerr.New(...).WithField("section", id).
func (e *Error) WithField(key string, value any) *Error {
	if e.Fields == nil {
		e.Fields = make(map[string]any)
	}
	e.Fields[key] = value
	return e
}
