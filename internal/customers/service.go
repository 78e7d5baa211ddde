package customers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/frahmantamala/asaas-go/internal/asaas"
	"github.com/frahmantamala/asaas-go/internal/core/datamodel/customer"
	"github.com/frahmantamala/asaas-go/pkg/logger"
)

const endpoint = "api/v3/customers"

// Gateway is the slice of the Asaas client the façade needs.
type Gateway interface {
	Get(ctx context.Context, endpoint string, params asaas.QueryParams) (json.RawMessage, error)
	Post(ctx context.Context, endpoint string, body any) (json.RawMessage, error)
}

// Service exposes the customers resource. It owns no marshalling logic
// beyond supplying the endpoint and typed parameters.
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

// List fetches customers matching the given filters, preserving API order.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]*customer.Customer, error) {
	body, err := s.gateway.Get(ctx, endpoint, opts.queryParams())
	if err != nil {
		return nil, err
	}

	result, err := customer.FromListJSON(body)
	if err != nil {
		s.logger.Error("failed to decode customer list", "error", err)
		return nil, err
	}

	s.logger.Debug("listed customers", "count", len(result))
	return result, nil
}

// Get fetches a single customer by its server-assigned id.
func (s *Service) Get(ctx context.Context, id string) (*customer.Customer, error) {
	body, err := s.gateway.Get(ctx, fmt.Sprintf("%s/%s", endpoint, id), nil)
	if err != nil {
		return nil, err
	}

	result, err := customer.FromJSON(body)
	if err != nil {
		s.logger.Error("failed to decode customer", "customer_id", id, "error", err)
		return nil, err
	}

	return result, nil
}

// Create registers a new customer and returns the server's record.
func (s *Service) Create(ctx context.Context, req CreateCustomerRequest) (*customer.Customer, error) {
	if err := req.Validate(); err != nil {
		s.logger.Error("customer create validation failed", "error", err)
		return nil, err
	}

	body, err := s.gateway.Post(ctx, endpoint, req)
	if err != nil {
		return nil, err
	}

	result, err := customer.FromJSON(body)
	if err != nil {
		s.logger.Error("failed to decode created customer", "error", err)
		return nil, err
	}

	s.logger.Info("customer created", "customer_id", result.ID)
	return result, nil
}
