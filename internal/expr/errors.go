package expr

import (
	"errors"
	"fmt"
)

// ErrInvalidExpression is the error code carried by FragmentError.
const ErrInvalidExpression = "E201"

// FragmentError reports the part of an expression that did not parse.
type FragmentError struct {
	Fragment   string `json:"fragment"`
	Expression string `json:"expression"`
}

// Error implements the error interface.
func (e *FragmentError) Error() string {
	return fmt.Sprintf("%s is not a valid expression.", e.Fragment)
}

// Code returns ErrInvalidExpression.
func (e *FragmentError) Code() string {
	return ErrInvalidExpression
}

// IsFragmentError reports whether err wraps a *FragmentError.
func IsFragmentError(err error) bool {
	var fe *FragmentError
	return errors.As(err, &fe)
}
