package asaas

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/frahmantamala/asaas-go/internal"
)

// knownErrorCodes is the fixed lookup from Asaas 400 error codes to the
// taxonomy; anything else falls back to a generic bad-request error.
var knownErrorCodes = map[string]internal.ErrorCode{
	"invalid_action":      internal.ErrCodeInvalidAction,
	"invalid_creditCard":  internal.ErrCodeInvalidCreditCard,
	"invalid_value":       internal.ErrCodeInvalidValue,
	"invalid_billingType": internal.ErrCodeInvalidBillingType,
	"invalid_customer":    internal.ErrCodeInvalidCustomer,
	"invalid_dueDate":     internal.ErrCodeInvalidDueDate,
	"invalid_name":        internal.ErrCodeInvalidName,
}

type errorEntry struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type errorPayload struct {
	Errors []errorEntry `json:"errors"`
}

// classify turns a non-2xx response into exactly one typed error. Asaas may
// send several entries in the errors list; only the first is surfaced, the
// raw body stays available on Details.
func classify(statusCode int, body []byte, requestURL string) error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}

	switch statusCode {
	case http.StatusBadRequest:
		return classifyBadRequest(body)
	case http.StatusNotFound:
		return internal.NewNotFoundError(requestURL)
	default:
		return internal.NewAPIError(
			internal.ErrCodeRequestFailed,
			fmt.Sprintf("unexpected status %d %s", statusCode, http.StatusText(statusCode)),
			statusCode,
		).WithDetails(string(body))
	}
}

func classifyBadRequest(body []byte) error {
	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Errors) == 0 {
		return internal.NewAPIError(
			internal.ErrCodeBadRequest,
			"bad request without a parseable errors list",
			http.StatusBadRequest,
		).WithDetails(string(body))
	}

	first := payload.Errors[0]

	code, ok := knownErrorCodes[first.Code]
	if !ok {
		code = internal.ErrCodeBadRequest
	}

	return internal.NewAPIError(code, first.Description, http.StatusBadRequest).
		WithDetails(string(body))
}
