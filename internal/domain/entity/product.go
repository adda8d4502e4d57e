package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Discount regla de descuento por volumen: a partir de MinQuantity unidades aplica Percentage.
type Discount struct {
	MinQuantity int             `json:"minQuantity"`
	Percentage  decimal.Decimal `json:"discountPercentage"`
}

// Product artículo publicado por un proveedor. Quantity solo cambia fuera de la
// creación a través de la actualización de inventario.
type Product struct {
	ID          string
	SupplierID  string
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	Quantity    int
	Images      []string
	Discounts   []Discount
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
