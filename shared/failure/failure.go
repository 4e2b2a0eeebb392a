package failure

import (
	"errors"
	"net/http"
)

// Failure is an error that knows which HTTP status it maps to. Anything that is not
// a Failure is treated as unexpected and reported as 500.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`

	cause error
}

var (
	EmptyUpdateRequest = &Failure{Code: http.StatusBadRequest, Message: "update request cannot be empty"}
	StillReferenced    = &Failure{Code: http.StatusConflict, Message: "record is still referenced by other records"}
)

func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the error a Failure was built from, if any.
func (e *Failure) Unwrap() error {
	return e.cause
}

// BadRequest marks err as invalid input. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: http.StatusBadRequest, Message: err.Error(), cause: err}
}

func BadRequestFromString(msg string) error {
	return &Failure{Code: http.StatusBadRequest, Message: msg}
}

// InternalError marks err as unexpected. A nil err stays nil.
func InternalError(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: http.StatusInternalServerError, Message: err.Error(), cause: err}
}

// NotFound takes the full client message, e.g. "booking not found".
func NotFound(message string) error {
	return &Failure{Code: http.StatusNotFound, Message: message}
}

func Conflict(message string) error {
	return &Failure{Code: http.StatusConflict, Message: message}
}

func IsNotFound(err error) bool {
	return err != nil && GetCode(err) == http.StatusNotFound
}

// GetCode returns the status of the outermost Failure in err's chain, or 500.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
