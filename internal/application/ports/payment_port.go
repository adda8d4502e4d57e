package ports

import "context"

// ChargeRequest cobro a realizar. Amount en la unidad mínima de la moneda (centavos).
type ChargeRequest struct {
	Amount      int64
	Currency    string
	Source      string // token de tarjeta emitido por el frontend
	Description string
	OrderID     string
}

// ChargeResult resultado de un cobro exitoso.
type ChargeResult struct {
	ID       string
	Amount   int64
	Currency string
	Status   string
	Paid     bool
}

// PaymentGateway puerto hacia la pasarela de pagos externa.
// Un error indica que el cobro no se realizó.
type PaymentGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}
