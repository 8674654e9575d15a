// Package http provides HTTP utilities including chi-compatible error handling
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/deploy-admin/pkg/app/errors"
)

// MethodNotAllowedMessage is returned for any unsupported method on a resource.
const MethodNotAllowedMessage = "Method not allowed"

// HandlerFunc defines a function that returns an error for clean error handling
type HandlerFunc func(http.ResponseWriter, *http.Request) error

type errorResponse struct {
	ErrMsg     string `json:"error"`
	ErrMsgCode int    `json:"code"`
}

// HandleError wraps an error-returning HandlerFunc into a standard http.HandlerFunc.
//
// Usage with chi:
//
//	r.Post("/user", http.HandleError(h.createUser, logger))
func HandleError(h HandlerFunc, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			ErrorHandler(logger)(w, r, err)
		}
	}
}

// ErrorHandler returns a function writing err as a JSON error body.
// Service errors keep their status and message; anything else becomes a
// generic 500. Internal causes are logged and never written to the response.
func ErrorHandler(logger *zap.Logger) func(http.ResponseWriter, *http.Request, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(w http.ResponseWriter, r *http.Request, err error) {
		status := http.StatusInternalServerError
		message := apperrors.InternalErrorMessage

		var svcErr *apperrors.ServiceError
		if errors.As(err, &svcErr) {
			status = svcErr.StatusCode()
			message = svcErr.Message
		}

		if apperrors.IsInternalError(err) {
			logger.Error("request failed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Error(err),
			)
			message = apperrors.InternalErrorMessage
		} else {
			logger.Debug("request rejected",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", status),
				zap.Error(err),
			)
		}

		WriteJSON(w, status, &errorResponse{ErrMsg: message, ErrMsgCode: status})
	}
}

// MethodNotAllowed answers every request with 405 and the standard error body.
func MethodNotAllowed(logger *zap.Logger) http.HandlerFunc {
	return HandleError(func(http.ResponseWriter, *http.Request) error {
		return apperrors.NotSupportedError(nil, MethodNotAllowedMessage)
	}, logger)
}

// WriteJSON writes data as a JSON response with the given status
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
