package paypal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{
		BaseURL:  srv.URL,
		ClientID: "client-id",
		Secret:   "client-secret",
	})
	require.NoError(t, err)
	return client, srv
}

func tokenHandler(t *testing.T, mux *http.ServeMux) {
	t.Helper()
	mux.HandleFunc("/v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "client-id", user)
		assert.Equal(t, "client-secret", pass)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))

		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "A21AAF-token",
			"token_type":   "Bearer",
			"expires_in":   32400,
		})
	})
}

func TestClient_FetchAccessToken(t *testing.T) {
	mux := http.NewServeMux()
	tokenHandler(t, mux)
	client, _ := newTestClient(t, mux)

	token, err := client.FetchAccessToken(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "A21AAF-token", token)
}

func TestClient_FetchAccessToken_EmptyToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"token_type": "Bearer"})
	})
	client, _ := newTestClient(t, mux)

	_, err := client.FetchAccessToken(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing access_token")
}

func TestClient_CreateOrder(t *testing.T) {
	mux := http.NewServeMux()
	tokenHandler(t, mux)

	var gotBody map[string]any
	mux.HandleFunc("/v2/checkout/orders", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer A21AAF-token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"id": "5O190127TN364715T", "status": "CREATED"})
	})
	client, _ := newTestClient(t, mux)

	order, err := client.CreateOrder(context.Background(), decimal.RequireFromString("20.2"), "USD")

	require.NoError(t, err)
	assert.Equal(t, "5O190127TN364715T", order.ID)
	assert.Equal(t, "CREATED", order.Status)

	assert.Equal(t, "CAPTURE", gotBody["intent"])
	units := gotBody["purchase_units"].([]any)
	require.Len(t, units, 1)
	amount := units[0].(map[string]any)["amount"].(map[string]any)
	assert.Equal(t, "USD", amount["currency_code"])
	assert.Equal(t, "20.20", amount["value"], "amounts are rendered with two decimal places")
}

func TestClient_CreateOrder_MissingID(t *testing.T) {
	mux := http.NewServeMux()
	tokenHandler(t, mux)
	mux.HandleFunc("/v2/checkout/orders", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"status": "CREATED"})
	})
	client, _ := newTestClient(t, mux)

	_, err := client.CreateOrder(context.Background(), decimal.RequireFromString("10.00"), "USD")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing id")
}

func TestClient_CaptureOrder(t *testing.T) {
	mux := http.NewServeMux()
	tokenHandler(t, mux)

	captured := false
	mux.HandleFunc("/v2/checkout/orders/5O190127TN364715T/capture", func(w http.ResponseWriter, r *http.Request) {
		captured = true
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer A21AAF-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{"id": "5O190127TN364715T", "status": "COMPLETED"})
	})
	client, _ := newTestClient(t, mux)

	order, err := client.CaptureOrder(context.Background(), "5O190127TN364715T")

	require.NoError(t, err)
	assert.True(t, captured)
	assert.Equal(t, "COMPLETED", order.Status)
}

func TestClient_CaptureOrder_ProviderError(t *testing.T) {
	mux := http.NewServeMux()
	tokenHandler(t, mux)
	mux.HandleFunc("/v2/checkout/orders/BAD/capture", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"name":"UNPROCESSABLE_ENTITY","details":[{"issue":"ORDER_NOT_APPROVED"}]}`))
	})
	client, _ := newTestClient(t, mux)

	_, err := client.CaptureOrder(context.Background(), "BAD")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 422")
	assert.Contains(t, err.Error(), "ORDER_NOT_APPROVED")
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(Config{ClientID: "a", Secret: "b"})
	assert.Error(t, err)

	_, err = NewClient(Config{BaseURL: "https://api-m.sandbox.paypal.com"})
	assert.Error(t, err)

	client, err := NewClient(Config{BaseURL: "https://api-m.sandbox.paypal.com/", ClientID: "a", Secret: "b"})
	require.NoError(t, err)
	assert.Equal(t, "https://api-m.sandbox.paypal.com", client.cfg.BaseURL)
}
