package payments

import (
	errors "github.com/frahmantamala/asaas-go/internal"
	"github.com/frahmantamala/asaas-go/internal/core/common/validation"
	"github.com/frahmantamala/asaas-go/internal/core/datamodel/apitypes"
	"github.com/frahmantamala/asaas-go/internal/core/datamodel/customer"
	"github.com/frahmantamala/asaas-go/internal/core/datamodel/payment"
)

// CreatePaymentRequest is the outbound payload for POST api/v3/payments.
// Customer must be an already-fetched record; only its id goes on the wire.
type CreatePaymentRequest struct {
	Customer    *customer.Customer
	BillingType payment.BillingType
	DueDate     apitypes.Date

	Value                *float64
	TotalValue           *float64
	Description          *string
	ExternalReference    *string
	InstallmentCount     *int
	InstallmentValue     *float64
	Discount             *payment.Discount
	Interest             *payment.Interest
	Fine                 *payment.Fine
	PostalService        *bool
	Split                []payment.Split
	CreditCard           *payment.CreditCard
	CreditCardHolderInfo *payment.CreditCardHolderInfo
	CreditCardToken      *string
}

func (r *CreatePaymentRequest) Validate() error {
	if r.Customer == nil || r.Customer.ID == "" {
		return errors.NewValidationError("customer with a server-assigned id is required")
	}
	if !r.BillingType.Valid() {
		return errors.NewValidationError("billingType is required")
	}
	if r.DueDate.IsZero() {
		return errors.NewValidationError("dueDate is required")
	}
	if r.Value == nil && r.TotalValue == nil {
		return errors.NewValidationError("either value or totalValue is required")
	}

	validator := validation.NewValidator()
	validator.Field("value", r.Value).Positive()
	validator.Field("totalValue", r.TotalValue).Positive()

	if appErr := validator.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

// createPaymentBody is the wire shape: nested value objects reduced to
// plain JSON mappings, dates to ISO-8601, enums to their string constants.
type createPaymentBody struct {
	Customer             string                        `json:"customer"`
	BillingType          payment.BillingType           `json:"billingType"`
	DueDate              apitypes.Date                 `json:"dueDate"`
	Value                *float64                      `json:"value,omitempty"`
	TotalValue           *float64                      `json:"totalValue,omitempty"`
	Description          *string                       `json:"description,omitempty"`
	ExternalReference    *string                       `json:"externalReference,omitempty"`
	InstallmentCount     *int                          `json:"installmentCount,omitempty"`
	InstallmentValue     *float64                      `json:"installmentValue,omitempty"`
	Discount             *payment.Discount             `json:"discount,omitempty"`
	Interest             *payment.Interest             `json:"interest,omitempty"`
	Fine                 *payment.Fine                 `json:"fine,omitempty"`
	PostalService        *bool                         `json:"postalService,omitempty"`
	Split                []payment.Split               `json:"split,omitempty"`
	CreditCard           *payment.CreditCard           `json:"creditCard,omitempty"`
	CreditCardHolderInfo *payment.CreditCardHolderInfo `json:"creditCardHolderInfo,omitempty"`
	CreditCardToken      *string                       `json:"creditCardToken,omitempty"`
}

func (r *CreatePaymentRequest) body() createPaymentBody {
	return createPaymentBody{
		Customer:             r.Customer.ID,
		BillingType:          r.BillingType,
		DueDate:              r.DueDate,
		Value:                r.Value,
		TotalValue:           r.TotalValue,
		Description:          r.Description,
		ExternalReference:    r.ExternalReference,
		InstallmentCount:     r.InstallmentCount,
		InstallmentValue:     r.InstallmentValue,
		Discount:             r.Discount,
		Interest:             r.Interest,
		Fine:                 r.Fine,
		PostalService:        r.PostalService,
		Split:                r.Split,
		CreditCard:           r.CreditCard,
		CreditCardHolderInfo: r.CreditCardHolderInfo,
		CreditCardToken:      r.CreditCardToken,
	}
}
