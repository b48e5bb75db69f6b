package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// UnprocessableEntity returns a new Failure with code for payloads that fail schema validation.
func UnprocessableEntity(msg string) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(msg string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: msg,
	}
}

func MethodNotAllowed(msg string) error {
	return &Failure{
		Code:    http.StatusMethodNotAllowed,
		Message: msg,
	}
}

// IsNotFound reports whether err carries a not found code.
func IsNotFound(err error) bool {
	return err != nil && GetCode(err) == http.StatusNotFound
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetMessage returns the client facing message of an error, looking through any wrapping.
func GetMessage(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Message
	}

	return err.Error()
}
