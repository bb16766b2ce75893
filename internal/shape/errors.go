package shape

import (
	"errors"
	"strings"

	"github.com/roach88/shapespace/internal/expr"
)

// Definition error codes (E2xx, shared with expr and space).
const (
	ErrInvalidExpression = expr.ErrInvalidExpression // "E201"
	ErrInvalidLeaf       = "E202"
)

// LeafMessage is the fixed message for a leaf that is neither a string
// nor a container.
const LeafMessage = "Definitions must be strings or objects whose leaves are strings."

// LeafError reports a definition leaf of an unsupported type.
type LeafError struct {
	Value any `json:"-"`
}

// Error implements the error interface.
func (e *LeafError) Error() string {
	return LeafMessage
}

// Code returns ErrInvalidLeaf.
func (e *LeafError) Code() string {
	return ErrInvalidLeaf
}

// PathedError attributes an error to a location in a definition.
type PathedError struct {
	Path Path
	Err  error
}

// Error renders "<path>: <message>", or just the message at the root.
func (e *PathedError) Error() string {
	if len(e.Path) == 0 {
		return e.Err.Error()
	}
	return e.Path.String() + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *PathedError) Unwrap() error {
	return e.Err
}

// Code returns the code of the underlying error, or "" if it has none.
func (e *PathedError) Code() string {
	var coded interface{ Code() string }
	if errors.As(e.Err, &coded) {
		return coded.Code()
	}
	return ""
}

// Prefix returns a copy of e with prefix prepended to its path.
func (e *PathedError) Prefix(prefix Path) *PathedError {
	p := make(Path, 0, len(prefix)+len(e.Path))
	p = append(p, prefix...)
	p = append(p, e.Path...)
	return &PathedError{Path: p, Err: e.Err}
}

// Errors is every problem found in one validation pass.
type Errors []*PathedError

// Error joins the individual messages, one per line.
func (errs Errors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (errs Errors) Unwrap() []error {
	out := make([]error, len(errs))
	for i, e := range errs {
		out[i] = e
	}
	return out
}
