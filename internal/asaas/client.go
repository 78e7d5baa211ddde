package asaas

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/frahmantamala/asaas-go/internal"
	"github.com/frahmantamala/asaas-go/pkg/logger"
)

// QueryParams holds GET filters. Entries whose value is nil are dropped
// before serialization; the API rejects empty filters.
type QueryParams map[string]any

// Client is the gateway to the Asaas API: it builds authenticated requests,
// sends them once (no retries) and classifies every response before the
// body reaches a decoder. Safe to share across sequential calls; concurrent
// use needs external synchronization.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	logger      *slog.Logger
}

func NewClient(cfg internal.APIConfig, log *slog.Logger) *Client {
	if log == nil {
		log = logger.LoggerWrapper()
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout(),
		},
		baseURL:     cfg.BaseURL(),
		accessToken: cfg.AccessToken,
		logger:      log,
	}
}

// Get issues an authenticated GET and returns the raw JSON body.
func (c *Client) Get(ctx context.Context, endpoint string, params QueryParams) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, endpoint, params, nil)
}

// Post issues an authenticated POST with a JSON body.
func (c *Client) Post(ctx context.Context, endpoint string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, endpoint, nil, body)
}

func (c *Client) do(ctx context.Context, method, endpoint string, params QueryParams, body any) (json.RawMessage, error) {
	requestURL := c.joinURL(endpoint)
	if query := encodeParams(params); query != "" {
		requestURL += "?" + query
	}

	traceID := uuid.NewString()
	log := c.logger.With("trace_id", traceID, "method", method, "url", requestURL)

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			log.Error("failed to marshal request body", "error", err)
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, requestURL, reqBody)
	if err != nil {
		log.Error("failed to create HTTP request", "error", err)
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("access_token", c.accessToken)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	log.Debug("sending request")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Error("request failed", "error", err)
		return nil, internal.NewTransportError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed to read response body", "error", err)
		return nil, internal.NewTransportError(err)
	}

	if err := classify(resp.StatusCode, respBody, requestURL); err != nil {
		log.Error("request rejected", "status", resp.StatusCode, "error", err)
		return nil, err
	}

	log.Debug("request succeeded", "status", resp.StatusCode)

	return respBody, nil
}

func (c *Client) joinURL(endpoint string) string {
	return strings.TrimRight(c.baseURL, "/") + "/" + strings.TrimLeft(endpoint, "/")
}

// encodeParams serializes concrete values untransformed and drops nils.
func encodeParams(params QueryParams) string {
	if len(params) == 0 {
		return ""
	}

	values := url.Values{}
	for key, value := range params {
		if value == nil {
			continue
		}
		values.Set(key, fmt.Sprintf("%v", value))
	}

	return values.Encode()
}
