package dto

import "time"

// LocationDTO ubicación de un proveedor.
type LocationDTO struct {
	Country string `json:"country" validate:"omitempty,max=100"`
	State   string `json:"state" validate:"omitempty,max=100"`
	City    string `json:"city" validate:"omitempty,max=100"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID           string      `json:"_id"`
	UserID       string      `json:"userId"`
	CompanyName  string      `json:"companyName"`
	Industry     string      `json:"industry"`
	Location     LocationDTO `json:"location"`
	ProductTypes []string    `json:"productTypes"`
	Description  string      `json:"description"`
	Rating       float64     `json:"rating"`
	ReviewCount  int         `json:"reviewCount"`
	Verified     bool        `json:"verified"`
	CreatedAt    time.Time   `json:"createdAt"`
}
