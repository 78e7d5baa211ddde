package internal

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeValidation        ErrorType = "VALIDATION_ERROR"
	ErrorTypeAPI               ErrorType = "API_ERROR"
	ErrorTypeNotFound          ErrorType = "NOT_FOUND"
	ErrorTypeMalformedResponse ErrorType = "MALFORMED_RESPONSE"
	ErrorTypeTransport         ErrorType = "TRANSPORT_ERROR"
)

// ErrorCode values for API errors match the `code` field Asaas returns in
// 400 payloads; they must stay exactly as the wire strings.
type ErrorCode string

const (
	ErrCodeInvalidAction      ErrorCode = "invalid_action"
	ErrCodeInvalidCreditCard  ErrorCode = "invalid_creditCard"
	ErrCodeInvalidValue       ErrorCode = "invalid_value"
	ErrCodeInvalidBillingType ErrorCode = "invalid_billingType"
	ErrCodeInvalidCustomer    ErrorCode = "invalid_customer"
	ErrCodeInvalidDueDate     ErrorCode = "invalid_dueDate"
	ErrCodeInvalidName        ErrorCode = "invalid_name"

	ErrCodeValidationFailed  ErrorCode = "VALIDATION_FAILED"
	ErrCodeBadRequest        ErrorCode = "BAD_REQUEST"
	ErrCodeRequestFailed     ErrorCode = "REQUEST_FAILED"
	ErrCodeNotFound          ErrorCode = "NOT_FOUND"
	ErrCodeMalformedResponse ErrorCode = "MALFORMED_RESPONSE"
	ErrCodeTransport         ErrorCode = "TRANSPORT_FAILURE"
)

// APIError is the single error value surfaced for every failed call.
type APIError struct {
	Type        ErrorType
	Code        ErrorCode
	Description string
	StatusCode  int
	URL         string
	Details     any
	Cause       error
}

func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Description, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

func (e *APIError) WithCause(cause error) *APIError {
	e.Cause = cause
	return e
}

func (e *APIError) WithDetails(details any) *APIError {
	e.Details = details
	return e
}

// NewAPIError builds an error for a server-reported failure. Code is the
// wire code from the response's first error entry, or ErrCodeBadRequest when
// the code is not one of the known seven.
func NewAPIError(code ErrorCode, description string, statusCode int) *APIError {
	return &APIError{
		Type:        ErrorTypeAPI,
		Code:        code,
		Description: description,
		StatusCode:  statusCode,
	}
}

// NewValidationError reports a request rejected client-side, before any
// network call.
func NewValidationError(description string) *APIError {
	return &APIError{
		Type:        ErrorTypeValidation,
		Code:        ErrCodeValidationFailed,
		Description: description,
	}
}

func NewNotFoundError(url string) *APIError {
	return &APIError{
		Type:        ErrorTypeNotFound,
		Code:        ErrCodeNotFound,
		Description: fmt.Sprintf("resource not found: %s", url),
		StatusCode:  http.StatusNotFound,
		URL:         url,
	}
}

func NewMalformedResponseError(description string, cause error) *APIError {
	return &APIError{
		Type:        ErrorTypeMalformedResponse,
		Code:        ErrCodeMalformedResponse,
		Description: description,
		Cause:       cause,
	}
}

func NewTransportError(cause error) *APIError {
	return &APIError{
		Type:        ErrorTypeTransport,
		Code:        ErrCodeTransport,
		Description: "request failed before a response was received",
		Cause:       cause,
	}
}

func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// HasCode reports whether err is an APIError carrying the given code, so
// callers can match one specific failure kind.
func HasCode(err error, code ErrorCode) bool {
	if apiErr, ok := IsAPIError(err); ok {
		return apiErr.Code == code
	}
	return false
}

func IsNotFound(err error) bool {
	if apiErr, ok := IsAPIError(err); ok {
		return apiErr.Type == ErrorTypeNotFound
	}
	return false
}

func IsMalformedResponse(err error) bool {
	if apiErr, ok := IsAPIError(err); ok {
		return apiErr.Type == ErrorTypeMalformedResponse
	}
	return false
}

func IsTransportError(err error) bool {
	if apiErr, ok := IsAPIError(err); ok {
		return apiErr.Type == ErrorTypeTransport
	}
	return false
}
