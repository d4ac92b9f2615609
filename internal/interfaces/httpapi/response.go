package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-explorer/internal/usecase"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "football-explorer"

	internalErrorMessage    = "internal server error"
	unavailableErrorMessage = "dataset unavailable"
)

// envelope follows the Google JSON style guide: exactly one of data or error
// is set, and id echoes the request id when one is known.
type envelope struct {
	APIVersion string     `json:"apiVersion"`
	ID         string     `json:"id,omitempty"`
	Data       any        `json:"data,omitempty"`
	Error      *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Status  string      `json:"status"`
	Errors  []errorItem `json:"errors,omitempty"`
}

type errorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// mappedError describes the client-facing form of an error. A non-empty
// Message replaces err.Error() in the response body.
type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
	Message    string
}

var internalError = mappedError{
	HTTPStatus: http.StatusInternalServerError,
	Reason:     "internalError",
	Status:     "INTERNAL",
	Message:    internalErrorMessage,
}

// errorMappings is checked in order; the first sentinel found in the chain wins.
var errorMappings = []struct {
	target error
	mapped mappedError
}{
	{usecase.ErrInvalidInput, mappedError{http.StatusBadRequest, "invalidInput", "INVALID_ARGUMENT", ""}},
	{usecase.ErrDependencyUnavailable, mappedError{http.StatusServiceUnavailable, "dependencyUnavailable", "UNAVAILABLE", unavailableErrorMessage}},
	{context.DeadlineExceeded, mappedError{http.StatusGatewayTimeout, "deadlineExceeded", "DEADLINE_EXCEEDED", ""}},
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload envelope) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	payload.APIVersion = googleAPIVersion
	if payload.ID == "" {
		payload.ID = requestIDFromContext(ctx)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(ctx, w, status, envelope{Data: data})
}

// writeError maps err onto an HTTP status. Only invalid-input and deadline
// errors echo their message; callers log the cause of the rest.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(ctx, err)
	message := mapped.Message
	if message == "" {
		message = err.Error()
	}
	writeJSON(ctx, w, mapped.HTTPStatus, envelope{Error: newErrorBody(mapped, message)})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, internalError.HTTPStatus, envelope{Error: newErrorBody(internalError, internalErrorMessage)})
}

func newErrorBody(mapped mappedError, message string) *errorBody {
	return &errorBody{
		Code:    mapped.HTTPStatus,
		Message: message,
		Status:  mapped.Status,
		Errors: []errorItem{{
			Domain:  errorDomain,
			Reason:  mapped.Reason,
			Message: message,
		}},
	}
}

func mapError(ctx context.Context, err error) mappedError {
	_, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.mapped
		}
	}
	return internalError
}
