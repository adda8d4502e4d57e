package entity

import "time"

// Location ubicación del proveedor.
type Location struct {
	Country string `json:"country" bson:"country"`
	State   string `json:"state" bson:"state"`
	City    string `json:"city" bson:"city"`
}

// Supplier empresa vendedora; pertenece a exactamente un User.
type Supplier struct {
	ID           string
	UserID       string
	CompanyName  string
	Industry     string
	Location     Location
	ProductTypes []string
	Description  string
	Rating       float64
	ReviewCount  int
	Verified     bool
	CreatedAt    time.Time
}
