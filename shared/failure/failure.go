package failure

import (
	"errors"
	"net/http"
)

// Failure carries a message together with the HTTP status code it
// should surface as. Services return Failures; the response layer maps
// anything else to a 500.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Failure) Error() string {
	return e.Message
}

var (
	InvalidPageParam        = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
	InvalidLimitParam       = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
	ForbiddenError          = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
	ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource"}
	AdminRequiredError      = &Failure{Code: http.StatusForbidden, Message: "Admin access required"}
)

func newFailure(code int, msg string) error {
	return &Failure{Code: code, Message: msg}
}

// BadRequest wraps err as a 400. A nil error stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return newFailure(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return newFailure(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) error {
	return newFailure(http.StatusUnauthorized, msg)
}

// InternalError wraps err as a 500. A nil error stays nil.
func InternalError(err error) error {
	if err == nil {
		return nil
	}

	return newFailure(http.StatusInternalServerError, err.Error())
}

func InternalErrorFromString(msg string) error {
	return newFailure(http.StatusInternalServerError, msg)
}

// NotFound builds a 404 whose message is the missing entity's name.
func NotFound(entityName string) error {
	return newFailure(http.StatusNotFound, entityName)
}

func Conflict(message string) error {
	return newFailure(http.StatusConflict, message)
}

func Forbidden(msg string) error {
	return newFailure(http.StatusForbidden, msg)
}

// GetCode extracts the HTTP code of a Failure anywhere in the chain,
// defaulting to 500 for plain errors.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
