package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/wholesale-api/internal/application/dto"
	"github.com/jhoicas/wholesale-api/internal/domain/entity"
)

// SearchQuery consulta de búsqueda de productos. Filtros vacíos o nil se omiten.
type SearchQuery struct {
	Text       string
	Category   string
	SupplierID string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Limit      int
}

// ProductSearcher puerto hacia el motor de búsqueda de texto completo.
type ProductSearcher interface {
	SearchProducts(ctx context.Context, q SearchQuery) ([]dto.SearchHit, error)
}

// ProductIndexer mantiene el índice de búsqueda al día con los productos creados.
type ProductIndexer interface {
	IndexProduct(ctx context.Context, p *entity.Product) error
}
