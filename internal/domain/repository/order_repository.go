package repository

import (
	"context"

	"github.com/jhoicas/wholesale-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	// Create persiste el pedido con sus líneas de forma atómica.
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListRecentByBuyer(ctx context.Context, buyerID string, limit int) ([]*entity.Order, error)
	ListBySuppliers(ctx context.Context, supplierIDs []string, limit int) ([]*entity.Order, error)
	// UpdateStatus sobrescribe el estado; la validación de la progresión es del caso de uso.
	UpdateStatus(ctx context.Context, id, status string) error
}
