package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	apperrors "github.com/chainsafe/deploy-admin/pkg/app/errors"
)

const (
	// NoDataMessage is returned when a request carries neither a body nor query parameters.
	NoDataMessage = "No data provided"
	// BodyTooLargeMessage is returned when the body exceeds MaxBodySize.
	BodyTooLargeMessage = "Request body too large"
)

// MaxBodySize is the largest request body accepted
const MaxBodySize = 1 << 20 // 1MB

// ReadBody reads the request body and rejects requests that carry no data at all.
// A request with query parameters and no body is accepted with an empty result.
// Bodies over MaxBodySize are rejected with 413 instead of being truncated.
func ReadBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	var body []byte
	if r.Body != nil {
		var err error
		body, err = io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodySize))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return nil, apperrors.PayloadTooLargeError(err, BodyTooLargeMessage)
			}
			return nil, apperrors.GeneralError(fmt.Errorf("failed to read request: %w", err))
		}
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 && r.URL.RawQuery == "" {
		return nil, apperrors.BadRequestError(nil, NoDataMessage)
	}
	return body, nil
}
