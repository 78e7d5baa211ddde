package customer

import (
	"encoding/json"
	"fmt"

	errors "github.com/frahmantamala/asaas-go/internal"
	"github.com/frahmantamala/asaas-go/internal/core/datamodel/apitypes"
)

// Customer mirrors the api/v3/customers resource. Field names on the wire
// are fixed by the API and must not change.
type Customer struct {
	ID          string        `json:"id"`
	DateCreated apitypes.Date `json:"dateCreated"`
	Name        string        `json:"name"`
	CpfCnpj     string        `json:"cpfCnpj"`

	Email                *string `json:"email,omitempty"`
	Phone                *string `json:"phone,omitempty"`
	MobilePhone          *string `json:"mobilePhone,omitempty"`
	Address              *string `json:"address,omitempty"`
	AddressNumber        *string `json:"addressNumber,omitempty"`
	Complement           *string `json:"complement,omitempty"`
	Province             *string `json:"province,omitempty"`
	PostalCode           *string `json:"postalCode,omitempty"`
	ExternalReference    *string `json:"externalReference,omitempty"`
	NotificationDisabled *bool   `json:"notificationDisabled,omitempty"`
	AdditionalEmails     *string `json:"additionalEmails,omitempty"`
	MunicipalInscription *string `json:"municipalInscription,omitempty"`
	StateInscription     *string `json:"stateInscription,omitempty"`
	Observations         *string `json:"observations,omitempty"`
}

var requiredKeys = []string{"id", "dateCreated", "name", "cpfCnpj"}

// FromJSON decodes a single customer payload. Required fields missing or
// malformed dates fail hard instead of defaulting.
func FromJSON(data []byte) (*Customer, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, errors.NewMalformedResponseError("customer: response is not a JSON object", err)
	}

	for _, key := range requiredKeys {
		if raw, ok := keys[key]; !ok || string(raw) == "null" {
			return nil, errors.NewMalformedResponseError(
				fmt.Sprintf("customer: missing required field %q", key), nil)
		}
	}

	var c Customer
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errors.NewMalformedResponseError("customer: invalid payload", err)
	}

	return &c, nil
}

// FromListJSON decodes the list envelope ({"data": [...]}), preserving
// element order. Every element goes through the same required-field checks.
func FromListJSON(data []byte) ([]*Customer, error) {
	var envelope struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, errors.NewMalformedResponseError("customer list: invalid envelope", err)
	}
	if envelope.Data == nil {
		return nil, errors.NewMalformedResponseError("customer list: missing data field", nil)
	}

	customers := make([]*Customer, 0, len(envelope.Data))
	for _, raw := range envelope.Data {
		c, err := FromJSON(raw)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	return customers, nil
}

func (c *Customer) String() string {
	email := ""
	if c.Email != nil {
		email = *c.Email
	}
	return fmt.Sprintf("Customer(id=%s, name=%s, email=%s)", c.ID, c.Name, email)
}
