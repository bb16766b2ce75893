package loader

import (
	"fmt"

	"cuelang.org/go/cue/token"
)

// Error codes for loading failures.
const (
	ErrCodeScanError   = "E002" // Directory scan error
	ErrCodeNoFiles     = "E003" // No definition files found
	ErrCodeDecode      = "E004" // File could not be decoded
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeUnsupported = "E006" // Unknown file extension
	ErrCodeDuplicate   = "E008" // Member defined in more than one file
)

// LoadError represents an error that occurred while loading definitions.
type LoadError struct {
	Code    string
	Message string
	File    string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("%s: %s: %s", e.File, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
