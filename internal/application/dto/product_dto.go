package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountDTO regla de descuento por volumen.
type DiscountDTO struct {
	MinQuantity        int             `json:"minQuantity" validate:"min=1"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
}

// CreateProductRequest body para POST /inventory/create.
// SupplierID opcional: si va vacío se usa el primer proveedor del vendedor.
type CreateProductRequest struct {
	SupplierID  string          `json:"supplierId"`
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description" validate:"required"`
	Category    string          `json:"category" validate:"required,max=100"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity" validate:"min=0"`
	Images      []string        `json:"images" validate:"omitempty,dive,url"`
	Discounts   []DiscountDTO   `json:"discounts" validate:"omitempty,dive"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"_id"`
	SupplierID  string          `json:"supplierId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Images      []string        `json:"images"`
	Discounts   []DiscountDTO   `json:"discounts"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
