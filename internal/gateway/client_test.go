package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velour_storefront/internal/gateway"
	"velour_storefront/internal/models"
)

func newClient(url string) *gateway.Client {
	return gateway.New(url)
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"success": true, "cart": []any{}})
	}))
	defer srv.Close()

	c := newClient(srv.URL)
	c.Token = "client-token"

	_, err := c.CartDetails(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer client-token", gotAuth)
}

func TestClient_AdminTokenWins(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"success": true, "orders": []any{}})
	}))
	defer srv.Close()

	c := newClient(srv.URL)
	c.Token = "client-token"
	c.AdminToken = "admin-token"

	_, err := c.AllOrders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer admin-token", gotAuth)
}

func TestClient_UnauthorizedClearsCredentialsOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "jwt expired"})
	}))
	defer srv.Close()

	cleared := 0
	c := newClient(srv.URL)
	c.Token = "stale"
	c.OnUnauthorized = func() { cleared++ }

	_, err := c.CartDetails(context.Background())
	assert.ErrorIs(t, err, gateway.ErrUnauthorized)
	assert.Equal(t, 1, cleared, "purge des identifiants exactement une fois par réponse")
}

func TestClient_DecodesStructuredError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"code":    "domain_not_registered",
			"message": "Merchant website not registered",
		})
	}))
	defer srv.Close()

	c := newClient(srv.URL)
	_, err := c.CreatePaymentOrder(context.Background())
	require.Error(t, err)

	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "domain_not_registered", apiErr.Code)
	assert.Equal(t, "Merchant website not registered", apiErr.Message)
}

func TestClient_RejectsSuccessFalseEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Failed to load cart"})
	}))
	defer srv.Close()

	c := newClient(srv.URL)
	_, err := c.CartDetails(context.Background())
	require.Error(t, err)

	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Failed to load cart", apiErr.Message)
}

func TestClient_RetriesIdempotentGetOnce(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			// Coupe la connexion sans répondre: erreur transport côté client.
			hj, ok := w.(http.Hijacker)
			require.True(t, ok)
			conn, _, err := hj.Hijack()
			require.NoError(t, err)
			conn.Close()
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true, "cart": []any{}})
	}))
	defer srv.Close()

	c := newClient(srv.URL)
	_, err := c.CartDetails(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestClient_NeverRetriesPaymentWrites(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		hj, ok := w.(http.Hijacker)
		require.True(t, ok)
		conn, _, err := hj.Hijack()
		require.NoError(t, err)
		conn.Close()
	}))
	defer srv.Close()

	c := newClient(srv.URL)
	_, err := c.CreatePaymentOrder(context.Background())
	assert.ErrorIs(t, err, gateway.ErrUnreachable)
	assert.Equal(t, 1, attempts, "une intention de paiement ne se rejoue pas")
}

func TestClient_VerifyPaymentPayload(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer srv.Close()

	c := newClient(srv.URL)
	receipt := models.Receipt{
		GatewayOrderID:   "order_abc",
		GatewayPaymentID: "pay_xyz",
		Signature:        "sig",
	}
	addr := models.Address{Street: "123 Main Street", City: "Pune", State: "MH", ZipCode: "411001", Country: "India", Phone: "+91 1"}

	_, err := c.VerifyPayment(context.Background(), receipt, addr)
	require.NoError(t, err)

	assert.Equal(t, "order_abc", got["razorpay_order_id"])
	assert.Equal(t, "pay_xyz", got["razorpay_payment_id"])
	assert.Equal(t, "sig", got["razorpay_signature"])
	addrPayload, ok := got["address"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Pune", addrPayload["city"])
	assert.Equal(t, "411001", addrPayload["zipCode"])
}

func TestClient_ProductCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getAllProducts", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"allProduct": []map[string]any{
				{"_id": "p1", "name": "Oud Royal", "price": 499.99, "brand": "Velour", "instock": true},
			},
		})
	}))
	defer srv.Close()

	c := newClient(srv.URL)
	products, err := c.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, "Velour", products[0].Brand)
	assert.True(t, products[0].InStock)
}

func TestClient_ForgotPasswordDevLink(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]any{
			"success":      true,
			"message":      "Reset link sent",
			"devResetLink": "http://localhost:5173/resetPassword/tok123",
		})
	}))
	defer srv.Close()

	c := newClient(srv.URL)
	message, devLink, err := c.ForgotPassword(context.Background(), "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", got["email"])
	assert.Equal(t, "Reset link sent", message)
	assert.Equal(t, "http://localhost:5173/resetPassword/tok123", devLink)
}

func TestClient_UnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // serveur déjà fermé

	c := newClient(srv.URL)
	_, err := c.Orders(context.Background())
	assert.ErrorIs(t, err, gateway.ErrUnreachable)
}
