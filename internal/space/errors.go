package space

import (
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/shapespace/internal/shape"
)

// Space error codes (E2xx, shared with expr and shape).
const (
	ErrUnknownType     = "E203"
	ErrShadowedKeyword = "E204"
	ErrValueMismatch   = "E210"
)

// BuildError aggregates every member problem found by Build.
// Each error's path starts with the member name.
type BuildError struct {
	Errors shape.Errors
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	return fmt.Sprintf("space has %d invalid definition(s):\n%s", len(e.Errors), e.Errors.Error())
}

// Unwrap exposes the individual member errors.
func (e *BuildError) Unwrap() error {
	return e.Errors
}

// Messages returns one string per error, in report order.
func (e *BuildError) Messages() []string {
	out := make([]string, len(e.Errors))
	for i, pe := range e.Errors {
		out[i] = pe.Error()
	}
	return out
}

// ShadowError reports a member named like a keyword under WithStrictNames.
type ShadowError struct {
	Name string
}

// Error implements the error interface.
func (e *ShadowError) Error() string {
	return fmt.Sprintf("%s shadows a built-in keyword and cannot be referenced in expressions.", e.Name)
}

// Code returns ErrShadowedKeyword.
func (e *ShadowError) Code() string {
	return ErrShadowedKeyword
}

// UnknownTypeError reports a TypeOf lookup for a name the Space lacks.
type UnknownTypeError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown type %q", e.Name)
}

// Code returns ErrUnknownType.
func (e *UnknownTypeError) Code() string {
	return ErrUnknownType
}

// MismatchError describes one place where a value does not fit its shape.
type MismatchError struct {
	Path    shape.Path
	Message string
}

// Error renders "<path>: <message>", or just the message at the root.
func (e *MismatchError) Error() string {
	if len(e.Path) == 0 {
		return e.Message
	}
	return e.Path.String() + ": " + e.Message
}

// Code returns ErrValueMismatch.
func (e *MismatchError) Code() string {
	return ErrValueMismatch
}

// Mismatches is every mismatch found while checking one value.
type Mismatches []*MismatchError

// Error joins the individual messages with "; ".
func (m Mismatches) Error() string {
	msgs := make([]string, len(m))
	for i, e := range m {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the individual mismatches to errors.As.
func (m Mismatches) Unwrap() []error {
	out := make([]error, len(m))
	for i, e := range m {
		out[i] = e
	}
	return out
}

// IsMismatch reports whether err is (or wraps) a value mismatch.
func IsMismatch(err error) bool {
	var me *MismatchError
	return errors.As(err, &me)
}

// IsBuildError reports whether err is (or wraps) a *BuildError.
func IsBuildError(err error) bool {
	var be *BuildError
	return errors.As(err, &be)
}
