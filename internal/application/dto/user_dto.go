package dto

import "time"

// RegisterRequest entrada para registro: email, password y rol (buyer | seller).
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=buyer seller"`
}

// LoginRequest entrada para login; el rol solicitado debe coincidir con el almacenado.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=buyer seller"`
}

// TokenResponse salida de registro.
type TokenResponse struct {
	Token string `json:"token"`
}

// LoginResponse salida con token JWT y rol.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// ProfileDTO perfil de negocio embebido en el usuario.
type ProfileDTO struct {
	FullName          string   `json:"fullName,omitempty" validate:"omitempty,max=200"`
	CompanyName       string   `json:"companyName,omitempty" validate:"omitempty,max=200"`
	StoreName         string   `json:"storeName,omitempty" validate:"omitempty,max=200"`
	Address           string   `json:"address,omitempty" validate:"omitempty,max=500"`
	PhoneNumber       string   `json:"phoneNumber,omitempty" validate:"omitempty,max=50"`
	Description       string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	StorePhotos       []string `json:"storePhotos,omitempty" validate:"omitempty,dive,url"`
	ProductCategories []string `json:"productCategories,omitempty"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID               string     `json:"_id"`
	Email            string     `json:"email"`
	Role             string     `json:"role"`
	Profile          ProfileDTO `json:"profile"`
	KYCVerified      bool       `json:"kycVerified"`
	FavoriteProducts []string   `json:"favoriteProducts"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// RegisterBusinessRequest body para POST /auth/register-business.
type RegisterBusinessRequest struct {
	CompanyName       string       `json:"companyName" validate:"required,max=200"`
	StoreName         string       `json:"storeName" validate:"omitempty,max=200"`
	Address           string       `json:"address" validate:"omitempty,max=500"`
	PhoneNumber       string       `json:"phoneNumber" validate:"omitempty,max=50"`
	Description       string       `json:"description" validate:"omitempty,max=2000"`
	StorePhotos       []string     `json:"storePhotos" validate:"omitempty,dive,url"`
	ProductCategories []string     `json:"productCategories"`
	Industry          string       `json:"industry" validate:"omitempty,max=100"`
	Location          *LocationDTO `json:"location"`
}

// RegisterBusinessResponse usuario actualizado y proveedor creado.
type RegisterBusinessResponse struct {
	Message  string           `json:"message"`
	User     UserResponse     `json:"user"`
	Supplier SupplierResponse `json:"supplier"`
}
