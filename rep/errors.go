// This file contains the parser's error taxonomy: a single struct error
// type carrying a typed Kind plus whatever payload spec.md's taxonomy
// names for that kind, grounded in condortango-w3g-parser's
// ParseError{Message, Offset} pattern but with Kind as a closed enum
// instead of one Go type per kind, since every kind here is data-only.
// It lives in rep, not repparser, so both repparser (container/header/body
// decoding) and network (the stream decoder repparser's façade calls into)
// can report through the same error type without an import cycle.

package rep

import "fmt"

// ErrorKind identifies which error condition a ParseError describes.
type ErrorKind byte

// Possible values of ErrorKind.
const (
	// ErrKindInsufficient means a read ran past the end of the buffer.
	ErrKindInsufficient ErrorKind = iota
	// ErrKindUnexpectedStringSize means a string length prefix was
	// implausible.
	ErrKindUnexpectedStringSize
	// ErrKindListTooLarge means a list's element count exceeded the cap.
	ErrKindListTooLarge
	// ErrKindUnknownProperty means a property type tag was not recognized.
	ErrKindUnknownProperty
	// ErrKindCrcMismatch means a framed section's CRC didn't match.
	ErrKindCrcMismatch
	// ErrKindUnknownAttribute means a network attribute dispatch missed.
	ErrKindUnknownAttribute
	// ErrKindObjectIDOutOfRange means an object id exceeded the objects
	// table length.
	ErrKindObjectIDOutOfRange
	// ErrKindTooManyFrames means the header's frame count exceeded the
	// sanity cap.
	ErrKindTooManyFrames
	// ErrKindFrameCorrupt means a frame's sanity checks failed.
	ErrKindFrameCorrupt
	// ErrKindMalformedCache means the class net-cache forest contains a
	// cycle.
	ErrKindMalformedCache
)

var errorKindNames = [...]string{
	ErrKindInsufficient:         "insufficient data",
	ErrKindUnexpectedStringSize: "unexpected string size",
	ErrKindListTooLarge:         "list too large",
	ErrKindUnknownProperty:      "unknown property type",
	ErrKindCrcMismatch:          "crc mismatch",
	ErrKindUnknownAttribute:     "unknown attribute",
	ErrKindObjectIDOutOfRange:   "object id out of range",
	ErrKindTooManyFrames:        "too many frames",
	ErrKindFrameCorrupt:         "frame corrupt",
	ErrKindMalformedCache:       "malformed net cache",
}

// String returns a short description of the error kind.
func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return "unknown error kind"
}

// ParseError is the error type returned for every parse failure. It wraps
// an optional underlying cause and records the byte offset the failure was
// detected at, matching spec.md §7's ContextWrapped(kind, section, offset).
type ParseError struct {
	// Kind classifies the failure.
	Kind ErrorKind

	// Section names the decoder section the failure occurred in (e.g.
	// "header", "body debug info", "network frame").
	Section string

	// Offset is the byte position (bytes_read()) at the point of failure.
	Offset int

	// Needed and Have are populated for ErrKindInsufficient.
	Needed, Have int

	// N is populated for ErrKindUnexpectedStringSize, ErrKindListTooLarge
	// and ErrKindTooManyFrames.
	N int64

	// Expected and Actual are populated for ErrKindCrcMismatch.
	Expected, Actual uint32

	// Name is populated for ErrKindUnknownProperty and
	// ErrKindUnknownAttribute.
	Name string

	// ID is populated for ErrKindObjectIDOutOfRange.
	ID int32

	// Cause is the underlying error this one wraps, if any.
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := e.message()
	if e.Section != "" {
		return fmt.Sprintf("Could not decode replay %s at offset (%d): %s", e.Section, e.Offset, msg)
	}
	return msg
}

func (e *ParseError) message() string {
	switch e.Kind {
	case ErrKindInsufficient:
		return fmt.Sprintf("insufficient data: needed %d, have %d", e.Needed, e.Have)
	case ErrKindUnexpectedStringSize:
		return fmt.Sprintf("unexpected size for string: %d", e.N)
	case ErrKindListTooLarge:
		return fmt.Sprintf("list of size %d exceeds the allowed maximum", e.N)
	case ErrKindUnknownProperty:
		return fmt.Sprintf("unknown property type: %q", e.Name)
	case ErrKindCrcMismatch:
		return fmt.Sprintf("crc mismatch. expected %d but received %d", e.Expected, e.Actual)
	case ErrKindUnknownAttribute:
		return fmt.Sprintf("unknown attribute: %q", e.Name)
	case ErrKindObjectIDOutOfRange:
		return fmt.Sprintf("object id of %d exceeds range", e.ID)
	case ErrKindTooManyFrames:
		return fmt.Sprintf("too many frames to decode: %d", e.N)
	case ErrKindFrameCorrupt:
		return "frame failed sanity checks"
	case ErrKindMalformedCache:
		return "class net cache forest contains a cycle"
	default:
		return e.Kind.String()
	}
}

// Unwrap returns the wrapped cause, if any, so callers can use errors.Is
// and errors.As through a ParseError.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// WithContext returns a copy of err with Section and Offset set, the way
// original_source/parser.rs's err_str/with_context annotates an error with
// the section name and the reader's current position. If err is already a
// *ParseError with a Section set, it is returned unchanged (the innermost
// annotation wins).
func WithContext(err error, section string, offset int) error {
	if err == nil {
		return nil
	}
	if pe, ok := err.(*ParseError); ok {
		if pe.Section == "" {
			cp := *pe
			cp.Section = section
			cp.Offset = offset
			return &cp
		}
		return pe
	}
	return &ParseError{Section: section, Offset: offset, Cause: err}
}
