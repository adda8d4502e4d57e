package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/wholesale-api/internal/application/dto"
	"github.com/jhoicas/wholesale-api/internal/application/ports"
)

const (
	defaultSearchLimit = 50
	maxSearchLimit     = 100
)

// SearchUseCase búsqueda de texto completo sobre el catálogo.
type SearchUseCase struct {
	searcher ports.ProductSearcher
}

// NewSearchUseCase construye el caso de uso.
func NewSearchUseCase(searcher ports.ProductSearcher) *SearchUseCase {
	return &SearchUseCase{searcher: searcher}
}

// Search normaliza el texto (NFC, minúsculas, espacios colapsados) y delega en el motor.
// Los filtros vacíos se omiten; no se valida que MinPrice <= MaxPrice.
func (uc *SearchUseCase) Search(ctx context.Context, q ports.SearchQuery) ([]dto.SearchHit, error) {
	// cases.Caser guarda estado: uno por llamada.
	q.Text = cases.Lower(language.Und).String(normalizeText(q.Text))
	q.Category = normalizeText(q.Category)
	q.SupplierID = strings.TrimSpace(q.SupplierID)
	switch {
	case q.Limit <= 0:
		q.Limit = defaultSearchLimit
	case q.Limit > maxSearchLimit:
		q.Limit = maxSearchLimit
	}
	hits, err := uc.searcher.SearchProducts(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("búsqueda de productos: %w", err)
	}
	if hits == nil {
		hits = []dto.SearchHit{}
	}
	return hits, nil
}

// normalizeText compone a NFC y colapsa espacios; "café  molido " → "café molido".
func normalizeText(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}
