// Package netwizapi provides a validation service adapter for the
// NetWiz rule-engine HTTP API.
package netwizapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/netwiz-cli/internal/core/domain"
	"github.com/custodia-labs/netwiz-cli/internal/core/ports/driven"
	"github.com/custodia-labs/netwiz-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.ValidationService = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:8000"
	DefaultTimeout = 10 * time.Second

	// DefaultRequestRate caps outbound validation calls. Debounced
	// editing produces at most a couple of requests per second; the
	// cap only matters for pathological callers.
	DefaultRequestRate = 5.0
)

// Config holds configuration for the NetWiz API client.
type Config struct {
	// BaseURL is the rule-engine base URL (default: http://localhost:8000).
	BaseURL string

	// Timeout is the per-request timeout (default: 10s).
	Timeout time.Duration

	// RequestRate is the maximum requests per second (default: 5).
	RequestRate float64
}

// Client calls the NetWiz rule-engine API. The engine reports an
// invalid netlist as HTTP 422 with the validation result in the error
// detail; the client folds that back into a successful outcome so
// callers see exactly one failure convention.
type Client struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
}

// validateRequest is the POST /api/netlist/validate request format.
type validateRequest struct {
	Netlist *domain.Netlist `json:"netlist"`
}

// validateTextRequest is the POST /api/netlist/validate/text request
// format. The document is sent verbatim, parseable or not, so the
// engine can produce syntax-level diagnostics.
type validateTextRequest struct {
	JSONText string `json:"json_text"`
}

// validateResponse is the success response format.
type validateResponse struct {
	ValidationResult *domain.ValidationResult `json:"validation_result"`
}

// errorResponse is the FastAPI-style error envelope. An invalid
// netlist arrives as 422 with the result inside detail.
type errorResponse struct {
	Detail errorDetail `json:"detail"`
}

type errorDetail struct {
	ValidationResult *domain.ValidationResult `json:"validation_result"`
}

// NewClient creates a new NetWiz API client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestRate == 0 {
		cfg.RequestRate = DefaultRequestRate
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestRate), 1),
	}
}

// ValidateText validates raw document text.
func (c *Client) ValidateText(ctx context.Context, rawText string) (*domain.ValidationResult, error) {
	return c.post(ctx, "/api/netlist/validate/text", validateTextRequest{JSONText: rawText})
}

// ValidateNetlist validates an already parsed netlist.
func (c *Client) ValidateNetlist(ctx context.Context, netlist *domain.Netlist) (*domain.ValidationResult, error) {
	if netlist == nil {
		return nil, fmt.Errorf("validate netlist: %w", domain.ErrInvalidInput)
	}
	return c.post(ctx, "/api/netlist/validate", validateRequest{Netlist: netlist})
}

// Ping checks the service is reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("rule engine unhealthy (status %d)", resp.StatusCode)
	}
	return nil
}

// post sends a validation request and resolves the engine's failure
// convention into a single outcome shape.
func (c *Client) post(ctx context.Context, path string, body any) (*domain.ValidationResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+path,
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var okResp validateResponse
		if err := json.NewDecoder(resp.Body).Decode(&okResp); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		if okResp.ValidationResult == nil {
			return nil, fmt.Errorf("rule engine returned no validation result")
		}
		return okResp.ValidationResult, nil

	case http.StatusUnprocessableEntity:
		// Domain-invalid, not a transport failure. The result rides in
		// the error detail.
		var errResp errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
			return nil, fmt.Errorf("decode 422 response: %w", err)
		}
		if errResp.Detail.ValidationResult == nil {
			return nil, fmt.Errorf("rule engine error (status 422): no validation result in detail")
		}
		logger.Debug("Rule engine reported invalid netlist (%d errors, %d warnings)",
			len(errResp.Detail.ValidationResult.Errors),
			len(errResp.Detail.ValidationResult.Warnings))
		return errResp.Detail.ValidationResult, nil

	default:
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, fmt.Errorf("rule engine error (status %d): failed to read response", resp.StatusCode)
		}
		return nil, fmt.Errorf("rule engine error (status %d): %s", resp.StatusCode, string(respBody))
	}
}
