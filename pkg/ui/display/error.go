package display

import "github.com/arthur-debert/fvm/pkg/errors"

// Error is the machine-readable form of a failed command.
type Error struct {
	Error   string                 `json:"error" yaml:"error"`
	Code    string                 `json:"code" yaml:"code"`
	Details map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty"`
}

// FromError builds the view of err. Errors without a code report UNKNOWN.
func FromError(err error) *Error {
	return &Error{
		Error:   err.Error(),
		Code:    string(errors.GetErrorCode(err)),
		Details: errors.GetErrorDetails(err),
	}
}

// Message is the machine-readable form of a plain message.
type Message struct {
	Message string `json:"message" yaml:"message"`
}
