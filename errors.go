package lazyxml

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidName reports a tag whose name is empty or begins with a
	// disallowed byte.
	//
	// Examples: `<>`, `< >`, `</>`, `<//>`, `<0Name>`, `<.Name>`.
	ErrInvalidName = errors.New("invalid tag name")

	// ErrInvalidAttribute reports a malformed attribute pair: an empty
	// key, a bare word with no '=', or no opening quote after the '='.
	// Only emitted by AttrIter.
	//
	// Examples: `<Name a>`, `<Name a= >`, `<Name ="1">`, `<Name a=1>`.
	ErrInvalidAttribute = errors.New("invalid attribute")

	// ErrUnexpectedEOF reports a tag or attribute value still open when
	// its span ended.
	//
	// Examples: `<`, `<Name`, `<Name a="1`.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
)

// SyntaxError wraps one of the sentinel errors with the byte offset where
// it was detected, so callers can report precise diagnostics or skip past
// the offending region. Offsets produced by a Reader are absolute positions
// in the source buffer; offsets produced by an AttrIter are relative to the
// content span the cursor was built from.
type SyntaxError struct {
	Err    error
	Offset int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Err, e.Offset)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func syntaxErr(err error, offset int) *SyntaxError {
	return &SyntaxError{Err: err, Offset: offset}
}
