package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"velour_storefront/internal/cart"
	"velour_storefront/internal/gateway"
)

// deniedLocker simule un verrou déjà posé par une requête concurrente.
type deniedLocker struct{}

func (deniedLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return false, nil
}

func (deniedLocker) Unlock(ctx context.Context, key string) {}

func withDeniedLock(t *testing.T) {
	t.Helper()
	old := checkoutLocker
	checkoutLocker = deniedLocker{}
	t.Cleanup(func() { checkoutLocker = old })
}

func testContext(t *testing.T, method, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		c.Request.Header.Set("Content-Type", "application/json")
	}
	c.Set("user_id", "u1")
	c.Set("gateway", gateway.New("http://commerce.invalid"))
	return c, w
}

var _ cart.Locker = deniedLocker{}

func TestCompleteCheckout_ConcurrentSubmissionRefused(t *testing.T) {
	withDeniedLock(t)

	receipt := `{"razorpay_order_id":"order_abc","razorpay_payment_id":"pay_xyz","razorpay_signature":"sig"}`
	c, w := testContext(t, http.MethodPost, "/api/checkout/complete", receipt)

	// Le verrou est pris avant toute lecture de la tentative : la seconde
	// soumission du même reçu est refusée sans atteindre la vérification.
	CompleteCheckout(c)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "déjà en cours")
}

func TestConfirmCheckout_ConcurrentSubmissionRefused(t *testing.T) {
	withDeniedLock(t)

	c, w := testContext(t, http.MethodPost, "/api/checkout/confirm", "")

	ConfirmCheckout(c)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRespondGatewayError_SessionExpiredRedirect(t *testing.T) {
	c, w := testContext(t, http.MethodPost, "/api/checkout/confirm", "")

	respondGatewayError(c, gateway.ErrUnauthorized)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"redirect":"/login"`)
}

func TestRespondGatewayError_Unreachable(t *testing.T) {
	c, w := testContext(t, http.MethodGet, "/api/cart", "")

	respondGatewayError(c, gateway.ErrUnreachable)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Cannot reach the server")
}
