package repository

import (
	"context"

	"github.com/jhoicas/wholesale-api/internal/domain/entity"
)

// SupplierFilter filtros de listado de proveedores.
type SupplierFilter struct {
	Industry string
	Verified *bool
	Limit    int
	Offset   int
}

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Supplier, error)
	List(ctx context.Context, filter SupplierFilter) ([]*entity.Supplier, error)
}
