package search

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/wholesale-api/internal/application/dto"
	"github.com/jhoicas/wholesale-api/internal/application/ports"
	"github.com/jhoicas/wholesale-api/internal/domain/repository"
)

var _ ports.ProductSearcher = (*DBSearcher)(nil)

// DBSearcher respaldo sin motor externo: delega en ProductRepository.Search y
// devuelve los resultados con la misma forma de hit que Elasticsearch.
type DBSearcher struct {
	products repository.ProductRepository
	index    string
}

func NewDBSearcher(products repository.ProductRepository, index string) *DBSearcher {
	return &DBSearcher{products: products, index: index}
}

func (s *DBSearcher) SearchProducts(ctx context.Context, q ports.SearchQuery) ([]dto.SearchHit, error) {
	found, err := s.products.Search(ctx, repository.ProductSearch{
		Text:       q.Text,
		Category:   q.Category,
		SupplierID: q.SupplierID,
		MinPrice:   q.MinPrice,
		MaxPrice:   q.MaxPrice,
		Limit:      q.Limit,
	})
	if err != nil {
		return nil, err
	}

	hits := make([]dto.SearchHit, 0, len(found))
	for _, p := range found {
		src, err := json.Marshal(dto.NewProductResponse(p))
		if err != nil {
			return nil, fmt.Errorf("serializar producto %s: %w", p.ID, err)
		}
		hits = append(hits, dto.SearchHit{ID: p.ID, Index: s.index, Score: 1, Source: src})
	}
	return hits, nil
}
