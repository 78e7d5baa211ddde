package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/frahmantamala/asaas-go/internal/asaas"
	"github.com/frahmantamala/asaas-go/internal/core/datamodel/payment"
	"github.com/frahmantamala/asaas-go/internal/core/datamodel/pix"
	"github.com/frahmantamala/asaas-go/pkg/logger"
)

const endpoint = "api/v3/payments"

// Gateway is the slice of the Asaas client the façade needs.
type Gateway interface {
	Get(ctx context.Context, endpoint string, params asaas.QueryParams) (json.RawMessage, error)
	Post(ctx context.Context, endpoint string, body any) (json.RawMessage, error)
}

// Service exposes the payments resource, including the PIX QR lookup.
type Service struct {
	gateway Gateway
	logger  *slog.Logger
}

func NewService(gateway Gateway, log *slog.Logger) *Service {
	if log == nil {
		log = logger.LoggerWrapper()
	}
	return &Service{gateway: gateway, logger: log}
}

// Get fetches a single payment by id. The returned record carries the
// customer id only; attach a Customer yourself if you already hold one.
func (s *Service) Get(ctx context.Context, id string) (*payment.Payment, error) {
	body, err := s.gateway.Get(ctx, fmt.Sprintf("%s/%s", endpoint, id), nil)
	if err != nil {
		return nil, err
	}

	result, err := payment.FromJSON(body)
	if err != nil {
		s.logger.Error("failed to decode payment", "payment_id", id, "error", err)
		return nil, err
	}

	return result, nil
}

// GetPixQRCode fetches the PIX QR code for a payment.
func (s *Service) GetPixQRCode(ctx context.Context, id string) (*pix.Pix, error) {
	body, err := s.gateway.Get(ctx, fmt.Sprintf("%s/%s/pixQrCode", endpoint, id), nil)
	if err != nil {
		return nil, err
	}

	result, err := pix.FromJSON(body)
	if err != nil {
		s.logger.Error("failed to decode pix qr code", "payment_id", id, "error", err)
		return nil, err
	}

	return result, nil
}

// Create charges a customer. The response echoes only the customer id, so
// the caller's Customer is attached to the decoded record untouched.
func (s *Service) Create(ctx context.Context, req CreatePaymentRequest) (*payment.Payment, error) {
	if err := req.Validate(); err != nil {
		s.logger.Error("payment create validation failed", "error", err)
		return nil, err
	}

	body, err := s.gateway.Post(ctx, endpoint, req.body())
	if err != nil {
		return nil, err
	}

	result, err := payment.FromJSON(body)
	if err != nil {
		s.logger.Error("failed to decode created payment", "error", err)
		return nil, err
	}

	result.Customer = req.Customer

	s.logger.Info("payment created",
		"payment_id", result.ID,
		"customer_id", result.CustomerID,
		"value", result.Value)

	return result, nil
}
