// Package errors defines the diagnostics returned while ingesting ADM documents.
//
// Every failure carries an ErrorCode. Codes implement error themselves, so
// callers match failures with the standard library:
//
//	if errors.Is(err, admerrors.ErrDanglingReference) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode categorizes an ingestion failure.
type ErrorCode string

// Error returns the code text so codes can be used as sentinel errors.
func (c ErrorCode) Error() string {
	return string(c)
}

const (
	// ErrXMLParse indicates the markup could not be tokenized.
	ErrXMLParse ErrorCode = "xml-parse"
	// ErrEmptyDocument indicates the input has no content at all.
	ErrEmptyDocument ErrorCode = "adm-empty-document"
	// ErrRootNotFound indicates no audioFormatExtended root could be located.
	ErrRootNotFound ErrorCode = "adm-root-not-found"

	// ErrValueFormat indicates text or a number failed a value type rule.
	ErrValueFormat ErrorCode = "adm-value-format"
	// ErrTypeMismatch indicates an identifier type disagrees with typeLabel or typeDefinition.
	ErrTypeMismatch ErrorCode = "adm-type-mismatch"
	// ErrDuplicateID indicates an identifier was added twice to a document.
	ErrDuplicateID ErrorCode = "adm-duplicate-id"
	// ErrNotFound indicates a lookup found no element with the identifier.
	ErrNotFound ErrorCode = "adm-not-found"
	// ErrMissingAttribute indicates a required attribute or element is absent.
	ErrMissingAttribute ErrorCode = "adm-missing-attribute"

	// ErrUnexpectedUnit indicates an unknown gainUnit.
	ErrUnexpectedUnit ErrorCode = "adm-unexpected-unit"
	// ErrUnknownDialogueKind indicates a dialogue discriminator outside 0, 1 and 2.
	ErrUnknownDialogueKind ErrorCode = "adm-unknown-dialogue-kind"
	// ErrInvalidCoordinate indicates a coordinate marker naming no known axis.
	ErrInvalidCoordinate ErrorCode = "adm-invalid-coordinate"
	// ErrMixedCoordinateSystems indicates cartesian and spherical children in one group.
	ErrMixedCoordinateSystems ErrorCode = "adm-mixed-coordinate-systems"
	// ErrNoCoordinates indicates a speaker position without coordinate children.
	ErrNoCoordinates ErrorCode = "adm-no-coordinates"

	// ErrDanglingReference indicates a reference whose target never appears.
	ErrDanglingReference ErrorCode = "adm-dangling-reference"
)

// Error is a located ingestion diagnostic.
type Error struct {
	Err      error
	Code     ErrorCode
	Message  string
	Element  string
	Actual   string
	Expected []string
	Line     int
}

// Error formats the diagnostic with its code, location and context.
func (e *Error) Error() string {
	if e == nil {
		return "adm error <nil>"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.Code, e.Message)
	if e.Element != "" {
		fmt.Fprintf(&b, " at %s", e.Element)
	}
	if e.Line > 0 {
		if e.Element == "" {
			fmt.Fprintf(&b, " at line %d", e.Line)
		} else {
			fmt.Fprintf(&b, " (line %d)", e.Line)
		}
	}
	if len(e.Expected) > 0 {
		fmt.Fprintf(&b, " (expected: %s)", strings.Join(e.Expected, ", "))
	}
	if e.Actual != "" {
		fmt.Fprintf(&b, " (actual: %s)", e.Actual)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Is matches the error against its code.
func (e *Error) Is(target error) bool {
	code, ok := target.(ErrorCode)
	return ok && e != nil && e.Code == code
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New builds an Error with a code and message.
func New(code ErrorCode, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

// Newf formats a message and builds an Error.
func Newf(code ErrorCode, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// ValueFormat reports text that does not satisfy a value type.
func ValueFormat(actual, msg string, expected ...string) *Error {
	return &Error{Code: ErrValueFormat, Message: msg, Actual: actual, Expected: expected}
}

// WithElement sets the element name and returns e.
func (e *Error) WithElement(element string) *Error {
	e.Element = element
	return e
}

// WithLine sets the source line and returns e.
func (e *Error) WithLine(line int) *Error {
	e.Line = line
	return e
}

// Wrap sets the underlying cause and returns e.
func (e *Error) Wrap(err error) *Error {
	e.Err = err
	return e
}

// AtLine attaches a location to err when it does not carry one yet.
// Errors without an *Error in their chain are returned unchanged.
func AtLine(err error, element string, line int) error {
	if err == nil {
		return nil
	}
	e, ok := AsError(err)
	if !ok {
		return err
	}
	if e.Element == "" {
		e.Element = element
	}
	if e.Line == 0 {
		e.Line = line
	}
	return err
}

// AsError extracts the first *Error in err's chain.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e, true
	}
	return nil, false
}

// CodeOf returns the code of the first *Error in err's chain.
func CodeOf(err error) (ErrorCode, bool) {
	e, ok := AsError(err)
	if !ok {
		return "", false
	}
	return e.Code, true
}
