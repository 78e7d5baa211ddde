package customers

import (
	"github.com/frahmantamala/asaas-go/internal/asaas"
	"github.com/frahmantamala/asaas-go/internal/core/common/validation"
)

// ListOptions are the supported listing filters. Nil fields are dropped
// from the query string entirely.
type ListOptions struct {
	Name              *string
	Email             *string
	CpfCnpj           *string
	GroupName         *string
	ExternalReference *string
	Offset            *int
	Limit             *int
}

func (o ListOptions) queryParams() asaas.QueryParams {
	params := asaas.QueryParams{}
	if o.Name != nil {
		params["name"] = *o.Name
	}
	if o.Email != nil {
		params["email"] = *o.Email
	}
	if o.CpfCnpj != nil {
		params["cpfCnpj"] = *o.CpfCnpj
	}
	if o.GroupName != nil {
		params["groupName"] = *o.GroupName
	}
	if o.ExternalReference != nil {
		params["externalReference"] = *o.ExternalReference
	}
	if o.Offset != nil {
		params["offset"] = *o.Offset
	}
	if o.Limit != nil {
		params["limit"] = *o.Limit
	}
	return params
}

// CreateCustomerRequest is the outbound payload for POST api/v3/customers.
// The id is server-assigned and has no place here.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	CpfCnpj string `json:"cpfCnpj"`

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
	GroupName            *string `json:"groupName,omitempty"`
}

func (r *CreateCustomerRequest) Validate() error {
	validator := validation.NewValidator()

	validator.Field("name", r.Name).Required()
	validator.Field("cpfCnpj", r.CpfCnpj).Required()

	if appErr := validator.Validate(); appErr != nil {
		return appErr
	}
	return nil
}
