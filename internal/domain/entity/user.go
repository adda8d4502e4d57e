package entity

import "time"

// Roles válidos para User.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
)

// ValidRole indica si r pertenece a la enumeración de roles.
func ValidRole(r string) bool {
	return r == RoleBuyer || r == RoleSeller
}

// Profile datos de negocio embebidos en el usuario. Los campos de tienda solo
// tienen sentido para vendedores.
type Profile struct {
	FullName          string   `json:"fullName,omitempty" bson:"fullName,omitempty"`
	CompanyName       string   `json:"companyName,omitempty" bson:"companyName,omitempty"`
	StoreName         string   `json:"storeName,omitempty" bson:"storeName,omitempty"`
	Address           string   `json:"address,omitempty" bson:"address,omitempty"`
	PhoneNumber       string   `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
	Description       string   `json:"description,omitempty" bson:"description,omitempty"`
	StorePhotos       []string `json:"storePhotos,omitempty" bson:"storePhotos,omitempty"`
	ProductCategories []string `json:"productCategories,omitempty" bson:"productCategories,omitempty"`
}

// User representa una cuenta del marketplace (comprador o vendedor).
type User struct {
	ID               string
	Email            string // único
	PasswordHash     string // bcrypt hash
	Role             string // buyer, seller
	Profile          Profile
	KYCVerified      bool
	FavoriteProducts []string // IDs de Product
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
