package pix

import (
	"encoding/json"
	"fmt"

	errors "github.com/frahmantamala/asaas-go/internal"
	"github.com/frahmantamala/asaas-go/internal/core/datamodel/apitypes"
)

// Pix is the QR-code result for a payment: a base64-encoded image plus the
// raw copy-and-paste payload. Created fresh per request, never persisted.
type Pix struct {
	Success        bool              `json:"success"`
	EncodedImage   string            `json:"encodedImage"`
	Payload        string            `json:"payload"`
	ExpirationDate apitypes.DateTime `json:"expirationDate"`
}

var requiredKeys = []string{"success", "encodedImage", "payload", "expirationDate"}

func FromJSON(data []byte) (*Pix, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, errors.NewMalformedResponseError("pix: response is not a JSON object", err)
	}

	for _, key := range requiredKeys {
		if raw, ok := keys[key]; !ok || string(raw) == "null" {
			return nil, errors.NewMalformedResponseError(
				fmt.Sprintf("pix: missing required field %q", key), nil)
		}
	}

	var p Pix
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.NewMalformedResponseError("pix: invalid payload", err)
	}

	return &p, nil
}

func (p *Pix) String() string {
	return fmt.Sprintf("Pix(success=%t, expirationDate=%s)", p.Success, p.ExpirationDate)
}
