package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Order; solo avanzan en este orden.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
)

// OrderLine línea de pedido con el precio unitario pactado.
type OrderLine struct {
	ProductID string
	Quantity  int
	Price     decimal.Decimal
}

// Order pedido de un comprador a un único proveedor.
type Order struct {
	ID          string
	BuyerID     string
	SupplierID  string
	Lines       []OrderLine
	TotalAmount decimal.Decimal
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
