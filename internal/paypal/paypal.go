// Package paypal is a minimal client for the PayPal Orders v2 REST API:
// OAuth client-credentials token exchange, order (payment intent) creation
// and capture. Responses are decoded into explicit structs and validated at
// the boundary so a missing provider id is an error here, not downstream.
package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const defaultTimeout = 30 * time.Second

// Config holds client credentials and endpoint configuration.
type Config struct {
	// BaseURL is the API root, e.g. https://api-m.sandbox.paypal.com.
	BaseURL  string
	ClientID string
	Secret   string
	// Timeout bounds every request; defaults to 30s when zero.
	Timeout time.Duration
}

// Client talks to the PayPal REST API. Methods are safe for concurrent use.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a PayPal client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("paypal: base URL is required")
	}
	if cfg.ClientID == "" || cfg.Secret == "" {
		return nil, fmt.Errorf("paypal: client credentials are required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
	}, nil
}

// tokenResponse is the OAuth token endpoint payload.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// OrderResponse is the provider's view of a remote order for both the
// create and capture endpoints.
type OrderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// createOrderRequest is the Orders v2 creation payload.
type createOrderRequest struct {
	Intent        string         `json:"intent"`
	PurchaseUnits []purchaseUnit `json:"purchase_units"`
}

type purchaseUnit struct {
	Amount purchaseAmount `json:"amount"`
}

type purchaseAmount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

// FetchAccessToken exchanges the configured client credentials for a
// short-lived bearer token. An empty access_token in an otherwise valid
// response is an error; callers never proceed with an empty token.
func (c *Client) FetchAccessToken(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("paypal: build token request: %w", err)
	}
	req.SetBasicAuth(c.cfg.ClientID, c.cfg.Secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var tok tokenResponse
	if err := c.do(req, &tok); err != nil {
		return "", err
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("paypal: token response missing access_token")
	}
	return tok.AccessToken, nil
}

// CreateOrder opens a remote payment intent for the given amount. The
// amount is serialized with exactly two decimal places.
func (c *Client) CreateOrder(ctx context.Context, amount decimal.Decimal, currency string) (*OrderResponse, error) {
	token, err := c.FetchAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	body := createOrderRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []purchaseUnit{
			{Amount: purchaseAmount{
				CurrencyCode: currency,
				Value:        amount.StringFixed(2),
			}},
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("paypal: marshal create order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/v2/checkout/orders", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("paypal: build create order request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	var order OrderResponse
	if err := c.do(req, &order); err != nil {
		return nil, err
	}
	if order.ID == "" {
		return nil, fmt.Errorf("paypal: create order response missing id")
	}
	return &order, nil
}

// CaptureOrder finalizes a remote payment intent. It does not mutate any
// local state; reconciliation belongs to the checkout orchestrator.
func (c *Client) CaptureOrder(ctx context.Context, providerOrderID string) (*OrderResponse, error) {
	token, err := c.FetchAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	captureURL := fmt.Sprintf("%s/v2/checkout/orders/%s/capture",
		c.cfg.BaseURL, url.PathEscape(providerOrderID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, captureURL, nil)
	if err != nil {
		return nil, fmt.Errorf("paypal: build capture request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	var order OrderResponse
	if err := c.do(req, &order); err != nil {
		return nil, err
	}
	if order.ID == "" {
		return nil, fmt.Errorf("paypal: capture response missing id")
	}
	return &order, nil
}

// do executes a request and decodes a 2xx JSON response into out.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("paypal: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("paypal: %s %s: unexpected status %d: %s",
			req.Method, req.URL.Path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("paypal: decode %s response: %w", req.URL.Path, err)
	}
	return nil
}
