package payment

import (
	"fmt"
	"strings"
)

// Status is the payment lifecycle state reported by the API. Decoding an
// unrecognized value is an error, never a silent pass-through.
type Status string

const (
	StatusPending                    Status = "PENDING"
	StatusReceived                   Status = "RECEIVED"
	StatusConfirmed                  Status = "CONFIRMED"
	StatusOverdue                    Status = "OVERDUE"
	StatusRefunded                   Status = "REFUNDED"
	StatusReceivedInCash             Status = "RECEIVED_IN_CASH"
	StatusRefundRequested            Status = "REFUND_REQUESTED"
	StatusRefundInProgress           Status = "REFUND_IN_PROGRESS"
	StatusChargebackRequested        Status = "CHARGEBACK_REQUESTED"
	StatusChargebackDispute          Status = "CHARGEBACK_DISPUTE"
	StatusAwaitingChargebackReversal Status = "AWAITING_CHARGEBACK_REVERSAL"
	StatusDunningRequested           Status = "DUNNING_REQUESTED"
	StatusDunningReceived            Status = "DUNNING_RECEIVED"
	StatusAwaitingRiskAnalysis       Status = "AWAITING_RISK_ANALYSIS"
)

var validStatuses = map[Status]struct{}{
	StatusPending:                    {},
	StatusReceived:                   {},
	StatusConfirmed:                  {},
	StatusOverdue:                    {},
	StatusRefunded:                   {},
	StatusReceivedInCash:             {},
	StatusRefundRequested:            {},
	StatusRefundInProgress:           {},
	StatusChargebackRequested:        {},
	StatusChargebackDispute:          {},
	StatusAwaitingChargebackReversal: {},
	StatusDunningRequested:           {},
	StatusDunningReceived:            {},
	StatusAwaitingRiskAnalysis:       {},
}

func (s Status) Valid() bool {
	_, ok := validStatuses[s]
	return ok
}

func (s *Status) UnmarshalJSON(data []byte) error {
	value, err := unmarshalEnum(data, "payment status")
	if err != nil || value == "" {
		return err
	}
	if !Status(value).Valid() {
		return fmt.Errorf("unknown payment status %q", value)
	}
	*s = Status(value)
	return nil
}

type BillingType string

const (
	BillingTypeBoleto     BillingType = "BOLETO"
	BillingTypeCreditCard BillingType = "CREDIT_CARD"
	BillingTypeUndefined  BillingType = "UNDEFINED"
	BillingTypeDebitCard  BillingType = "DEBIT_CARD"
	BillingTypeTransfer   BillingType = "TRANSFER"
	BillingTypeDeposit    BillingType = "DEPOSIT"
	BillingTypePix        BillingType = "PIX"
)

var validBillingTypes = map[BillingType]struct{}{
	BillingTypeBoleto:     {},
	BillingTypeCreditCard: {},
	BillingTypeUndefined:  {},
	BillingTypeDebitCard:  {},
	BillingTypeTransfer:   {},
	BillingTypeDeposit:    {},
	BillingTypePix:        {},
}

func (b BillingType) Valid() bool {
	_, ok := validBillingTypes[b]
	return ok
}

func (b *BillingType) UnmarshalJSON(data []byte) error {
	value, err := unmarshalEnum(data, "billing type")
	if err != nil || value == "" {
		return err
	}
	if !BillingType(value).Valid() {
		return fmt.Errorf("unknown billing type %q", value)
	}
	*b = BillingType(value)
	return nil
}

type DiscountType string

const (
	DiscountTypeFixed      DiscountType = "FIXED"
	DiscountTypePercentage DiscountType = "PERCENTAGE"
)

func (d DiscountType) Valid() bool {
	return d == DiscountTypeFixed || d == DiscountTypePercentage
}

func (d *DiscountType) UnmarshalJSON(data []byte) error {
	value, err := unmarshalEnum(data, "discount type")
	if err != nil || value == "" {
		return err
	}
	if !DiscountType(value).Valid() {
		return fmt.Errorf("unknown discount type %q", value)
	}
	*d = DiscountType(value)
	return nil
}

type ChargebackStatus string

const (
	ChargebackStatusRequested   ChargebackStatus = "REQUESTED"
	ChargebackStatusInDispute   ChargebackStatus = "IN_DISPUTE"
	ChargebackStatusDisputeLost ChargebackStatus = "DISPUTE_LOST"
	ChargebackStatusReversed    ChargebackStatus = "REVERSED"
	ChargebackStatusDone        ChargebackStatus = "DONE"
)

var validChargebackStatuses = map[ChargebackStatus]struct{}{
	ChargebackStatusRequested:   {},
	ChargebackStatusInDispute:   {},
	ChargebackStatusDisputeLost: {},
	ChargebackStatusReversed:    {},
	ChargebackStatusDone:        {},
}

func (c ChargebackStatus) Valid() bool {
	_, ok := validChargebackStatuses[c]
	return ok
}

func (c *ChargebackStatus) UnmarshalJSON(data []byte) error {
	value, err := unmarshalEnum(data, "chargeback status")
	if err != nil || value == "" {
		return err
	}
	if !ChargebackStatus(value).Valid() {
		return fmt.Errorf("unknown chargeback status %q", value)
	}
	*c = ChargebackStatus(value)
	return nil
}

type ChargebackReason string

const (
	ChargebackReasonAbsenceOfPrint                       ChargebackReason = "ABSENCE_OF_PRINT"
	ChargebackReasonAbsentCardFraud                      ChargebackReason = "ABSENT_CARD_FRAUD"
	ChargebackReasonCardActivatedPhoneTransaction        ChargebackReason = "CARD_ACTIVATED_PHONE_TRANSACTION"
	ChargebackReasonCardFraud                            ChargebackReason = "CARD_FRAUD"
	ChargebackReasonCardRecoveryBulletin                 ChargebackReason = "CARD_RECOVERY_BULLETIN"
	ChargebackReasonCommercialDisagreement               ChargebackReason = "COMMERCIAL_DISAGREEMENT"
	ChargebackReasonCopyNotReceived                      ChargebackReason = "COPY_NOT_RECEIVED"
	ChargebackReasonCreditOrDebitPresentationError       ChargebackReason = "CREDIT_OR_DEBIT_PRESENTATION_ERROR"
	ChargebackReasonDifferentPayMethod                   ChargebackReason = "DIFFERENT_PAY_METHOD"
	ChargebackReasonFraud                                ChargebackReason = "FRAUD"
	ChargebackReasonIncorrectTransactionValue            ChargebackReason = "INCORRECT_TRANSACTION_VALUE"
	ChargebackReasonInvalidCurrency                      ChargebackReason = "INVALID_CURRENCY"
	ChargebackReasonInvalidData                          ChargebackReason = "INVALID_DATA"
	ChargebackReasonLatePresentation                     ChargebackReason = "LATE_PRESENTATION"
	ChargebackReasonLocalRegulatoryOrLegalDispute        ChargebackReason = "LOCAL_REGULATORY_OR_LEGAL_DISPUTE"
	ChargebackReasonMultipleRocs                         ChargebackReason = "MULTIPLE_ROCS"
	ChargebackReasonOriginalCreditTransactionNotAccepted ChargebackReason = "ORIGINAL_CREDIT_TRANSACTION_NOT_ACCEPTED"
	ChargebackReasonOtherAbsentCardFraud                 ChargebackReason = "OTHER_ABSENT_CARD_FRAUD"
	ChargebackReasonProcessError                         ChargebackReason = "PROCESS_ERROR"
	ChargebackReasonReceivedCopyIllegibleOrIncomplete    ChargebackReason = "RECEIVED_COPY_ILLEGIBLE_OR_INCOMPLETE"
	ChargebackReasonRecurrenceCanceled                   ChargebackReason = "RECURRENCE_CANCELED"
	ChargebackReasonRequiredAuthorizationNotGranted      ChargebackReason = "REQUIRED_AUTHORIZATION_NOT_GRANTED"
	ChargebackReasonRightOfFullRecourseForFraud          ChargebackReason = "RIGHT_OF_FULL_RECOURSE_FOR_FRAUD"
	ChargebackReasonSaleCanceled                         ChargebackReason = "SALE_CANCELED"
	ChargebackReasonServiceDisagreementOrDefective       ChargebackReason = "SERVICE_DISAGREEMENT_OR_DEFECTIVE_PRODUCT"
	ChargebackReasonServiceNotReceived                   ChargebackReason = "SERVICE_NOT_RECEIVED"
	ChargebackReasonSplitSale                            ChargebackReason = "SPLIT_SALE"
	ChargebackReasonTransfersOfDiverseResponsibilities   ChargebackReason = "TRANSFERS_OF_DIVERSE_RESPONSIBILITIES"
	ChargebackReasonUnqualifiedCarRentalDebit            ChargebackReason = "UNQUALIFIED_CAR_RENTAL_DEBIT"
	ChargebackReasonUsaCardholderDispute                 ChargebackReason = "USA_CARDHOLDER_DISPUTE"
	ChargebackReasonVisaFraudMonitoringProgram           ChargebackReason = "VISA_FRAUD_MONITORING_PROGRAM"
	ChargebackReasonWarningBulletinFile                  ChargebackReason = "WARNING_BULLETIN_FILE"
)

var validChargebackReasons = map[ChargebackReason]struct{}{
	ChargebackReasonAbsenceOfPrint:                       {},
	ChargebackReasonAbsentCardFraud:                      {},
	ChargebackReasonCardActivatedPhoneTransaction:        {},
	ChargebackReasonCardFraud:                            {},
	ChargebackReasonCardRecoveryBulletin:                 {},
	ChargebackReasonCommercialDisagreement:               {},
	ChargebackReasonCopyNotReceived:                      {},
	ChargebackReasonCreditOrDebitPresentationError:       {},
	ChargebackReasonDifferentPayMethod:                   {},
	ChargebackReasonFraud:                                {},
	ChargebackReasonIncorrectTransactionValue:            {},
	ChargebackReasonInvalidCurrency:                      {},
	ChargebackReasonInvalidData:                          {},
	ChargebackReasonLatePresentation:                     {},
	ChargebackReasonLocalRegulatoryOrLegalDispute:        {},
	ChargebackReasonMultipleRocs:                         {},
	ChargebackReasonOriginalCreditTransactionNotAccepted: {},
	ChargebackReasonOtherAbsentCardFraud:                 {},
	ChargebackReasonProcessError:                         {},
	ChargebackReasonReceivedCopyIllegibleOrIncomplete:    {},
	ChargebackReasonRecurrenceCanceled:                   {},
	ChargebackReasonRequiredAuthorizationNotGranted:      {},
	ChargebackReasonRightOfFullRecourseForFraud:          {},
	ChargebackReasonSaleCanceled:                         {},
	ChargebackReasonServiceDisagreementOrDefective:       {},
	ChargebackReasonServiceNotReceived:                   {},
	ChargebackReasonSplitSale:                            {},
	ChargebackReasonTransfersOfDiverseResponsibilities:   {},
	ChargebackReasonUnqualifiedCarRentalDebit:            {},
	ChargebackReasonUsaCardholderDispute:                 {},
	ChargebackReasonVisaFraudMonitoringProgram:           {},
	ChargebackReasonWarningBulletinFile:                  {},
}

func (c ChargebackReason) Valid() bool {
	_, ok := validChargebackReasons[c]
	return ok
}

func (c *ChargebackReason) UnmarshalJSON(data []byte) error {
	value, err := unmarshalEnum(data, "chargeback reason")
	if err != nil || value == "" {
		return err
	}
	if !ChargebackReason(value).Valid() {
		return fmt.Errorf("unknown chargeback reason %q", value)
	}
	*c = ChargebackReason(value)
	return nil
}

type RefundStatus string

const (
	RefundStatusPending   RefundStatus = "PENDING"
	RefundStatusCancelled RefundStatus = "CANCELLED"
	RefundStatusDone      RefundStatus = "DONE"
)

func (r RefundStatus) Valid() bool {
	return r == RefundStatusPending || r == RefundStatusCancelled || r == RefundStatusDone
}

func (r *RefundStatus) UnmarshalJSON(data []byte) error {
	value, err := unmarshalEnum(data, "refund status")
	if err != nil || value == "" {
		return err
	}
	if !RefundStatus(value).Valid() {
		return fmt.Errorf("unknown refund status %q", value)
	}
	*r = RefundStatus(value)
	return nil
}

// unmarshalEnum extracts the string value of an enum token. A JSON null
// comes back as the empty string and leaves the target untouched.
func unmarshalEnum(data []byte, kind string) (string, error) {
	s := string(data)
	if s == "null" {
		return "", nil
	}
	if len(s) < 2 || !strings.HasPrefix(s, `"`) || !strings.HasSuffix(s, `"`) {
		return "", fmt.Errorf("invalid %s %s: not a JSON string", kind, s)
	}
	return s[1 : len(s)-1], nil
}
