// Package payment adaptadores de pasarela de pagos.
package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"

	"github.com/jhoicas/wholesale-api/internal/application/ports"
)

var _ ports.PaymentGateway = (*StripeGateway)(nil)

// StripeGateway implementa PaymentGateway con la API de cargos de Stripe.
// Cada instancia usa su propio cliente; no toca la clave global stripe.Key.
type StripeGateway struct {
	sc *client.API
}

// NewStripeGateway construye el adaptador con la clave secreta de la cuenta.
func NewStripeGateway(secretKey string) *StripeGateway {
	return &StripeGateway{sc: client.New(secretKey, nil)}
}

// newStripeGatewayWithBackend permite apuntar el cliente a un servidor de pruebas.
func newStripeGatewayWithBackend(secretKey string, backend stripe.Backend) *StripeGateway {
	return &StripeGateway{sc: client.New(secretKey, &stripe.Backends{
		API:     backend,
		Connect: backend,
		Uploads: backend,
	})}
}

// Charge crea un cargo con el token de tarjeta del frontend.
// El ID del pedido viaja en metadata para conciliación.
func (g *StripeGateway) Charge(ctx context.Context, req ports.ChargeRequest) (*ports.ChargeResult, error) {
	params := &stripe.ChargeParams{
		Amount:      stripe.Int64(req.Amount),
		Currency:    stripe.String(req.Currency),
		Description: stripe.String(req.Description),
	}
	params.Context = ctx
	if err := params.SetSource(req.Source); err != nil {
		return nil, fmt.Errorf("stripe: source: %w", err)
	}
	params.AddMetadata("orderId", req.OrderID)

	ch, err := g.sc.Charges.New(params)
	if err != nil {
		var serr *stripe.Error
		if errors.As(err, &serr) {
			return nil, fmt.Errorf("stripe: %s (%s)", serr.Msg, serr.Code)
		}
		return nil, fmt.Errorf("stripe: %w", err)
	}
	if !ch.Paid {
		return nil, fmt.Errorf("stripe: cargo %s no pagado (estado %s)", ch.ID, ch.Status)
	}

	return &ports.ChargeResult{
		ID:       ch.ID,
		Amount:   ch.Amount,
		Currency: string(ch.Currency),
		Status:   string(ch.Status),
		Paid:     ch.Paid,
	}, nil
}
