package response

import (
	"encoding/json"
	"net/http"
	"strconv"

	"desk/shared/constant"
	"desk/shared/failure"
	"desk/shared/logger"
)

// RetryAfterSeconds is advertised on responses the client may simply retry.
const RetryAfterSeconds = 1

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

// Error carries the display message and the stable reason code clients branch on.
type Error struct {
	Error  *string `json:"error,omitempty"`
	Reason string  `json:"reason,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: &message})
}

func WithJSON(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, Data[any]{Data: &payload})
}

// WithError maps err to its status and reason. Server side failures are
// logged with a stack; storage outages are marked retryable.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	msg := err.Error()

	if code >= http.StatusInternalServerError {
		logger.ErrorWithStack(err)
	}

	if code == http.StatusServiceUnavailable {
		retryAfter(writer)
	}

	write(writer, code, Error{Error: &msg, Reason: failure.GetReason(err)})
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	retryAfter(writer)
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown answers liveness probes while the server drains.
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func retryAfter(writer http.ResponseWriter) {
	writer.Header().Set(constant.ResponseHeaderRetryAfter, strconv.Itoa(RetryAfterSeconds))
}

func write(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
