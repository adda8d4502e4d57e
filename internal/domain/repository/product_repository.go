package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/wholesale-api/internal/domain/entity"
)

// ProductFilter filtros de listado; campos vacíos no filtran y Limit <= 0 no limita.
type ProductFilter struct {
	Category   string
	SupplierID string
	Limit      int
	Offset     int
}

// ProductSearch criterios de búsqueda de texto completo. Filtros nil/vacíos se omiten.
type ProductSearch struct {
	Text       string
	Category   string
	SupplierID string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Limit      int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	ListBySuppliers(ctx context.Context, supplierIDs []string) ([]*entity.Product, error)
	// UpdateQuantity sobrescribe la cantidad sin comparar con lecturas previas (last write wins).
	// Devuelve el producto actualizado o ErrNotFound.
	UpdateQuantity(ctx context.Context, id string, quantity int) (*entity.Product, error)
	Search(ctx context.Context, q ProductSearch) ([]*entity.Product, error)
}
