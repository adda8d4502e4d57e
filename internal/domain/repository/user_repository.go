package repository

import (
	"context"

	"github.com/jhoicas/wholesale-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// UpdateProfile reemplaza el perfil embebido completo; ErrNotFound si el usuario no existe.
	UpdateProfile(ctx context.Context, id string, profile entity.Profile) (*entity.User, error)
	SetKYCVerified(ctx context.Context, id string, verified bool) error
	AddFavorite(ctx context.Context, userID, productID string) error
	RemoveFavorite(ctx context.Context, userID, productID string) error
	ListFavoriteProducts(ctx context.Context, userID string) ([]*entity.Product, error)
}
