// Package errors contains the typed service errors shared by all HTTP-facing
// services and their mapping to HTTP status codes.
package errors

import (
	"errors"
	"net/http"
)

// InternalErrorMessage is the only message a caller ever sees for a failure
// it did not cause.
const InternalErrorMessage = "Internal server error"

// Category defines error category
type Category int

const (
	// CategoryGeneralError The service failed in an unexpected way
	CategoryGeneralError Category = iota
	// CategoryDataError The client sent missing or invalid data in the body or query
	CategoryDataError
	// CategoryNotSupported The requested method is not supported on the resource
	CategoryNotSupported
	// CategoryDataConflict The request conflicts with existing data
	CategoryDataConflict
	// CategoryPayloadTooLarge The request body exceeds the accepted size
	CategoryPayloadTooLarge
)

func (c Category) String() string {
	switch c {
	case CategoryDataError:
		return "CategoryDataError"
	case CategoryNotSupported:
		return "CategoryNotSupported"
	case CategoryDataConflict:
		return "CategoryDataConflict"
	case CategoryPayloadTooLarge:
		return "CategoryPayloadTooLarge"
	default:
		return "CategoryGeneralError"
	}
}

// ServiceError carries a caller-facing message and the underlying cause,
// which is only ever logged.
type ServiceError struct {
	Category Category
	Message  string
	Err      error
}

// Error method to comply with error interface
func (err *ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

// Unwrap returns the underlying error
func (err *ServiceError) Unwrap() error {
	return err.Err
}

// StatusCode returns the HTTP status code for the error category
func (err *ServiceError) StatusCode() int {
	switch err.Category {
	case CategoryDataError:
		return http.StatusBadRequest
	case CategoryNotSupported:
		return http.StatusMethodNotAllowed
	case CategoryDataConflict:
		return http.StatusConflict
	case CategoryPayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// Is checks that provided error is a ServiceError with desired Category
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Category == cat
}

// IsInternalError reports whether err should be hidden behind a generic 500.
// Anything that is not a client-caused ServiceError counts as internal.
func IsInternalError(err error) bool {
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		return true
	}
	return svcErr.Category == CategoryGeneralError
}

func newError(cat Category, err error, message, fallback string) error {
	if err == nil {
		err = errors.New(fallback + message)
	}
	return &ServiceError{Category: cat, Message: message, Err: err}
}

// GeneralError returns a general service error.
// The caller sees InternalErrorMessage; err is logged.
func GeneralError(err error) error {
	if err == nil {
		err = errors.New("internal server error")
	}
	return &ServiceError{
		Category: CategoryGeneralError,
		Message:  InternalErrorMessage,
		Err:      err,
	}
}

// BadRequestError returns an error with category DataError.
// message is returned to the caller, err is logged.
func BadRequestError(err error, message string) error {
	return newError(CategoryDataError, err, message, "bad request: ")
}

// NotSupportedError returns an error with category NotSupported
func NotSupportedError(err error, message string) error {
	return newError(CategoryNotSupported, err, message, "not supported: ")
}

// ConflictError returns an error with category DataConflict
func ConflictError(err error, message string) error {
	return newError(CategoryDataConflict, err, message, "conflict: ")
}

// PayloadTooLargeError returns an error with category PayloadTooLarge
func PayloadTooLargeError(err error, message string) error {
	return newError(CategoryPayloadTooLarge, err, message, "payload too large: ")
}
