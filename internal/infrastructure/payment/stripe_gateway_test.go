package payment

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81"

	"github.com/jhoicas/wholesale-api/internal/application/ports"
)

func stripeServer(t *testing.T, status int, body string, gotForm *url.Values) *StripeGateway {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/charges", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		if gotForm != nil {
			*gotForm, _ = url.ParseQuery(string(raw))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return newStripeGatewayWithBackend("sk_test_123", backend)
}

func TestCharge_Exitoso(t *testing.T) {
	var form url.Values
	g := stripeServer(t, http.StatusOK,
		`{"id":"ch_1","object":"charge","amount":54999,"currency":"usd","status":"succeeded","paid":true}`, &form)

	res, err := g.Charge(context.Background(), ports.ChargeRequest{
		Amount: 54999, Currency: "usd", Source: "tok_visa", Description: "Pedido o1", OrderID: "o1",
	})
	require.NoError(t, err)

	assert.Equal(t, "ch_1", res.ID)
	assert.Equal(t, int64(54999), res.Amount)
	assert.Equal(t, "succeeded", res.Status)
	assert.True(t, res.Paid)

	assert.Equal(t, "54999", form.Get("amount"))
	assert.Equal(t, "tok_visa", form.Get("source"))
	assert.Equal(t, "o1", form.Get("metadata[orderId]"))
}

func TestCharge_TarjetaRechazada(t *testing.T) {
	g := stripeServer(t, http.StatusPaymentRequired,
		`{"error":{"type":"card_error","code":"card_declined","message":"Your card was declined."}}`, nil)

	_, err := g.Charge(context.Background(), ports.ChargeRequest{Amount: 100, Currency: "usd", Source: "tok_chargeDeclined"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "card_declined")
}

func TestCharge_NoPagadoEsError(t *testing.T) {
	g := stripeServer(t, http.StatusOK,
		`{"id":"ch_2","object":"charge","amount":100,"currency":"usd","status":"pending","paid":false}`, nil)

	_, err := g.Charge(context.Background(), ports.ChargeRequest{Amount: 100, Currency: "usd", Source: "tok_visa"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ch_2")
}
