package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea solicitada en el checkout.
type OrderItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest body para POST /orders.
type CreateOrderRequest struct {
	Products []OrderItemRequest `json:"products" validate:"required,min=1,dive"`
}

// UpdateOrderStatusRequest body para PATCH /orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending paid shipped delivered"`
}

// OrderLineResponse línea de pedido.
type OrderLineResponse struct {
	ProductID string          `json:"product"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID          string              `json:"_id"`
	BuyerID     string              `json:"buyer"`
	SupplierID  string              `json:"supplier"`
	Products    []OrderLineResponse `json:"products"`
	TotalAmount decimal.Decimal     `json:"totalAmount"`
	Status      string              `json:"status"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// ProcessPaymentRequest body para POST /payments/process.
// Amount en unidades de la moneda (p. ej. dólares); se convierte a centavos para la pasarela.
type ProcessPaymentRequest struct {
	Amount  decimal.Decimal `json:"amount"`
	Token   string          `json:"token" validate:"required"`
	OrderID string          `json:"orderId" validate:"required"`
}

// ChargeDTO resumen del cargo devuelto por la pasarela.
type ChargeDTO struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
	Paid     bool   `json:"paid"`
}

// ProcessPaymentResponse salida del cobro.
type ProcessPaymentResponse struct {
	Success bool      `json:"success"`
	Charge  ChargeDTO `json:"charge"`
}
