package netwizapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/netwiz-cli/internal/core/domain"
)

func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		BaseURL: baseURL,
		// High enough that test requests never block on the limiter.
		RequestRate: 1000,
	})
}

func TestValidateNetlistSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/netlist/validate", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req validateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.Netlist)
		assert.Len(t, req.Netlist.Components, 1)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"validation_result": map[string]any{
				"is_valid": true,
				"errors":   []any{},
				"warnings": []any{},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	result, err := client.ValidateNetlist(context.Background(), &domain.Netlist{
		Components: []domain.Component{{Name: "R1", Type: domain.ComponentResistor}},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func TestValidateNetlistDomainInvalidIs422(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{
			"detail": map[string]any{
				"validation_result": map[string]any{
					"is_valid": false,
					"errors": []map[string]any{{
						"error_type": map[string]any{
							"name":        "missing_ground",
							"description": "No ground nets found in the netlist",
						},
						"message":  "No ground nets found",
						"severity": "error",
					}},
					"warnings": []any{},
				},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	result, err := client.ValidateNetlist(context.Background(), &domain.Netlist{})

	// An invalid netlist is a successful validation call.
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "missing_ground", result.Errors[0].ErrorType.Name)
	assert.Equal(t, domain.SeverityError, result.Errors[0].Severity)
}

func TestValidateNetlist422WithoutPayloadIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{
			"detail": "request body is not a valid validation request",
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	result, err := client.ValidateNetlist(context.Background(), &domain.Netlist{})
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestValidateNetlistServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	result, err := client.ValidateNetlist(context.Background(), &domain.Netlist{})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "status 500")
}

func TestValidateNetlistUnreachable(t *testing.T) {
	// Closed server: transport failure, no result.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL)
	result, err := client.ValidateNetlist(context.Background(), &domain.Netlist{})
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestValidateNetlistNilNetlist(t *testing.T) {
	client := newTestClient("http://localhost:1")
	result, err := client.ValidateNetlist(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, result)
}

func TestValidateTextSendsVerbatim(t *testing.T) {
	const rawText = `{"components": [` // unparseable on purpose

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/netlist/validate/text", r.URL.Path)

		var req validateTextRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, rawText, req.JSONText)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{
			"detail": map[string]any{
				"validation_result": map[string]any{
					"is_valid": false,
					"errors": []map[string]any{{
						"error_type": map[string]any{
							"name":        "invalid_json",
							"description": "JSON syntax is invalid or malformed",
						},
						"message":  "Expecting value: line 1 column 16 (char 15)",
						"severity": "error",
					}},
					"warnings": []any{},
				},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	result, err := client.ValidateText(context.Background(), rawText)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "invalid_json", result.Errors[0].ErrorType.Name)
}

func TestPing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	assert.NoError(t, client.Ping(context.Background()))
}

func TestPingUnhealthy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	assert.Error(t, client.Ping(context.Background()))
}

func TestDefaults(t *testing.T) {
	client := NewClient(Config{})
	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.Equal(t, DefaultTimeout, client.client.Timeout)
}
