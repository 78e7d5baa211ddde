package payment

import (
	"encoding/json"
	"fmt"

	errors "github.com/frahmantamala/asaas-go/internal"
	"github.com/frahmantamala/asaas-go/internal/core/datamodel/apitypes"
	"github.com/frahmantamala/asaas-go/internal/core/datamodel/customer"
)

// Discount is a conditional reduction applied before the due date.
type Discount struct {
	Value            float64      `json:"value"`
	DueDateLimitDays int          `json:"dueDateLimitDays"`
	Type             DiscountType `json:"type"`
}

type Interest struct {
	Value float64 `json:"value"`
}

type Fine struct {
	Value float64 `json:"value"`
}

// Split routes a share of the payment to another wallet. Either a fixed or
// a percentual value applies; the API leaves the other one null.
type Split struct {
	WalletID        string   `json:"walletId"`
	FixedValue      *float64 `json:"fixedValue,omitempty"`
	PercentualValue *float64 `json:"percentualValue,omitempty"`
}

type Chargeback struct {
	Status ChargebackStatus `json:"status"`
	Reason ChargebackReason `json:"reason"`
}

type Refund struct {
	DateCreated           *apitypes.DateTime `json:"dateCreated,omitempty"`
	Status                RefundStatus       `json:"status"`
	Value                 float64            `json:"value"`
	Description           *string            `json:"description,omitempty"`
	TransactionReceiptURL *string            `json:"transactionReceiptUrl,omitempty"`
}

// CreditCard is the outbound card shape: full PAN and CCV. It is never
// echoed back; responses carry a CreditCardToken instead.
type CreditCard struct {
	HolderName  string `json:"holderName"`
	Number      string `json:"number"`
	ExpiryMonth string `json:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear"`
	Ccv         string `json:"ccv"`
}

type CreditCardHolderInfo struct {
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	CpfCnpj           string  `json:"cpfCnpj"`
	PostalCode        string  `json:"postalCode"`
	AddressNumber     string  `json:"addressNumber"`
	AddressComplement string  `json:"addressComplement"`
	Phone             string  `json:"phone"`
	MobilePhone       *string `json:"mobilePhone,omitempty"`
}

// CreditCardToken is the inbound card shape: masked number, brand and a
// reusable token.
type CreditCardToken struct {
	CreditCardNumber string `json:"creditCardNumber"`
	CreditCardBrand  string `json:"creditCardBrand"`
	CreditCardToken  string `json:"creditCardToken"`
}

// Payment mirrors the api/v3/payments resource. The API echoes only the
// customer id; Customer is attached by the caller from an already-fetched
// record and never round-trips through JSON.
type Payment struct {
	ID          string             `json:"id"`
	DateCreated apitypes.Date      `json:"dateCreated"`
	CustomerID  string             `json:"customer"`
	Customer    *customer.Customer `json:"-"`
	DueDate     apitypes.Date      `json:"dueDate"`
	Value       float64            `json:"value"`

	NetValue              *float64         `json:"netValue,omitempty"`
	PaymentLink           *string          `json:"paymentLink,omitempty"`
	Subscription          *string          `json:"subscription,omitempty"`
	Installment           *string          `json:"installment,omitempty"`
	Discount              *Discount        `json:"discount,omitempty"`
	Interest              *Interest        `json:"interest,omitempty"`
	Fine                  *Fine            `json:"fine,omitempty"`
	BillingType           *BillingType     `json:"billingType,omitempty"`
	CanBePaidAfterDueDate *bool            `json:"canBePaidAfterDueDate,omitempty"`
	Status                *Status          `json:"status,omitempty"`
	PixTransaction        *string          `json:"pixTransaction,omitempty"`
	PixQrCodeID           *string          `json:"pixQrCodeId,omitempty"`
	Description           *string          `json:"description,omitempty"`
	ExternalReference     *string          `json:"externalReference,omitempty"`
	OriginalDueDate       *apitypes.Date   `json:"originalDueDate,omitempty"`
	OriginalValue         *float64         `json:"originalValue,omitempty"`
	InterestValue         *float64         `json:"interestValue,omitempty"`
	ConfirmedDate         *apitypes.Date   `json:"confirmedDate,omitempty"`
	PaymentDate           *apitypes.Date   `json:"paymentDate,omitempty"`
	ClientPaymentDate     *apitypes.Date   `json:"clientPaymentDate,omitempty"`
	InstallmentNumber     *int             `json:"installmentNumber,omitempty"`
	InvoiceURL            *string          `json:"invoiceUrl,omitempty"`
	BankSlipURL           *string          `json:"bankSlipUrl,omitempty"`
	TransactionReceiptURL *string          `json:"transactionReceiptUrl,omitempty"`
	InvoiceNumber         *string          `json:"invoiceNumber,omitempty"`
	Deleted               *bool            `json:"deleted,omitempty"`
	PostalService         *bool            `json:"postalService,omitempty"`
	Anticipated           *bool            `json:"anticipated,omitempty"`
	Split                 []Split          `json:"split,omitempty"`
	Chargeback            *Chargeback      `json:"chargeback,omitempty"`
	Refunds               []Refund         `json:"refunds,omitempty"`
	MunicipalInscription  *string          `json:"municipalInscription,omitempty"`
	StateInscription      *string          `json:"stateInscription,omitempty"`
	CanDelete             *bool            `json:"canDelete,omitempty"`
	CannotBeDeletedReason *string          `json:"cannotBeDeletedReason,omitempty"`
	CanEdit               *bool            `json:"canEdit,omitempty"`
	CannotEditReason      *string          `json:"cannotEditReason,omitempty"`
	CreditCard            *CreditCardToken `json:"creditCard,omitempty"`
}

var requiredKeys = []string{"id", "dateCreated", "customer", "dueDate", "value"}

// FromJSON decodes a payment payload. Required fields missing, bad dates or
// unknown enum values fail hard.
func FromJSON(data []byte) (*Payment, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, errors.NewMalformedResponseError("payment: response is not a JSON object", err)
	}

	for _, key := range requiredKeys {
		if raw, ok := keys[key]; !ok || string(raw) == "null" {
			return nil, errors.NewMalformedResponseError(
				fmt.Sprintf("payment: missing required field %q", key), nil)
		}
	}

	var p Payment
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.NewMalformedResponseError("payment: invalid payload", err)
	}

	// The API always sends the key when the feature applies, so an absent
	// key still decodes to an empty, non-nil sequence.
	if p.Split == nil {
		p.Split = []Split{}
	}
	if p.Refunds == nil {
		p.Refunds = []Refund{}
	}

	return &p, nil
}

func (p *Payment) String() string {
	billingType := BillingType("")
	if p.BillingType != nil {
		billingType = *p.BillingType
	}
	return fmt.Sprintf("Payment(id=%s, customer=%s, billingType=%s, value=%v)",
		p.ID, p.CustomerID, billingType, p.Value)
}
