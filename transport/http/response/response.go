package response

import (
	"encoding/json"
	"net/http"

	"scaffold/shared/constant"
	"scaffold/shared/failure"
	"scaffold/shared/logger"
)

type Error struct {
	Detail string `json:"detail" example:"Item not found"`
} // @name Error

type Message struct {
	Message string `json:"message" example:"Item deleted successfully"`
} // @name Message

type Status struct {
	Status string `json:"status" example:"healthy"`
} // @name Status

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: message})
}

// WithJSON sends payload as the whole response body
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, jsonPayload)
}

// WithStatus sends a health style {"status": ...} body
func WithStatus(writer http.ResponseWriter, code int, status string) {
	response(writer, code, Status{Status: status})
}

// WithError sends {"detail": ...} using the status code carried by err
func WithError(writer http.ResponseWriter, err error) {
	response(writer, failure.GetCode(err), Error{Detail: failure.GetMessage(err)})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	response(writer, http.StatusTooManyRequests, Error{Detail: constant.ResponseErrorRequestLimitExceeded})
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	response(writer, http.StatusServiceUnavailable, Error{Detail: constant.ResponseErrorPrepareShutdown})
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(response); err != nil {
		logger.ErrorWithStack(err)
	}
}
