package failure

import (
	"errors"
	"net/http"
)

// Reason codes shared by every layer that reports a failure to a caller.
const (
	ReasonInvalidRequest     = "INVALID_REQUEST"
	ReasonUnauthorized       = "UNAUTHORIZED"
	ReasonForbidden          = "FORBIDDEN"
	ReasonNotFound           = "NOT_FOUND"
	ReasonConflict           = "CONFLICT"
	ReasonStorageUnavailable = "STORAGE_UNAVAILABLE"
	ReasonInternal           = "INTERNAL_ERROR"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Reason is a stable machine readable code, Message is meant for display.
type Failure struct {
	Code    int    `json:"code"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Reason: ReasonInvalidRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Reason: ReasonInvalidRequest, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Reason: ReasonForbidden, Message: "You don't have the required permissions"}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// New returns a Failure with an explicit status code and reason.
func New(code int, reason, msg string) error {
	return &Failure{
		Code:    code,
		Reason:  reason,
		Message: msg,
	}
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Reason:  ReasonInvalidRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Reason:  ReasonInvalidRequest,
		Message: msg,
	}
}

// Rejected returns a bad request Failure carrying a domain specific reason code.
func Rejected(reason, msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Reason:  reason,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Reason:  ReasonUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Reason:  ReasonInternal,
			Message: err.Error(),
		}
	}

	return nil
}

// Unavailable marks a storage or dependency failure the caller may retry.
func Unavailable(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusServiceUnavailable,
			Reason:  ReasonStorageUnavailable,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(reason, msg string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Reason:  reason,
		Message: msg,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(reason, msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Reason:  reason,
		Message: msg,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Reason:  ReasonForbidden,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetReason returns the reason code of an error interface.
func GetReason(err error) string {
	var fail *Failure
	if errors.As(err, &fail) && fail.Reason != "" {
		return fail.Reason
	}

	return ReasonInternal
}
