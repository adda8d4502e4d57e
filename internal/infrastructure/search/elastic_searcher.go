// Package search implementa la búsqueda de productos: Elasticsearch si está
// configurado, o la propia base de datos como respaldo.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"

	"github.com/jhoicas/wholesale-api/internal/application/dto"
	"github.com/jhoicas/wholesale-api/internal/application/ports"
	"github.com/jhoicas/wholesale-api/internal/domain/entity"
)

var (
	_ ports.ProductSearcher = (*ElasticSearcher)(nil)
	_ ports.ProductIndexer  = (*ElasticSearcher)(nil)
)

const productMapping = `{
  "mappings": {
    "properties": {
      "name":        {"type": "text"},
      "description": {"type": "text"},
      "category":    {"type": "keyword"},
      "supplierId":  {"type": "keyword"},
      "price":       {"type": "scaled_float", "scaling_factor": 100},
      "quantity":    {"type": "integer"},
      "images":      {"type": "keyword", "index": false}
    }
  }
}`

// ElasticSearcher adaptador sobre el índice de productos de Elasticsearch.
type ElasticSearcher struct {
	es    *elasticsearch.Client
	index string
}

// NewElasticSearcher crea el cliente contra las direcciones indicadas (separadas por coma).
func NewElasticSearcher(addresses, index string) (*ElasticSearcher, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: strings.Split(addresses, ","),
	})
	if err != nil {
		return nil, fmt.Errorf("elasticsearch: cliente: %w", err)
	}
	return &ElasticSearcher{es: es, index: index}, nil
}

// EnsureIndex crea el índice con su mapping si todavía no existe.
func (s *ElasticSearcher) EnsureIndex(ctx context.Context) error {
	res, err := s.es.Indices.Exists([]string{s.index}, s.es.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("elasticsearch: exists: %w", err)
	}
	res.Body.Close()
	if res.StatusCode == 200 {
		return nil
	}

	res, err = s.es.Indices.Create(s.index,
		s.es.Indices.Create.WithContext(ctx),
		s.es.Indices.Create.WithBody(strings.NewReader(productMapping)),
	)
	if err != nil {
		return fmt.Errorf("elasticsearch: create index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("elasticsearch: create index: %s", res.String())
	}
	return nil
}

// productDocument forma del documento indexado; price numérico para permitir rangos.
type productDocument struct {
	SupplierID  string            `json:"supplierId"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Price       float64           `json:"price"`
	Quantity    int               `json:"quantity"`
	Images      []string          `json:"images"`
	Discounts   []dto.DiscountDTO `json:"discounts"`
}

// IndexProduct indexa (o reemplaza) el documento del producto usando su ID.
func (s *ElasticSearcher) IndexProduct(ctx context.Context, p *entity.Product) error {
	discounts := make([]dto.DiscountDTO, 0, len(p.Discounts))
	for _, d := range p.Discounts {
		discounts = append(discounts, dto.DiscountDTO{MinQuantity: d.MinQuantity, DiscountPercentage: d.Percentage})
	}
	images := p.Images
	if images == nil {
		images = []string{}
	}
	body, err := json.Marshal(productDocument{
		SupplierID:  p.SupplierID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price.InexactFloat64(),
		Quantity:    p.Quantity,
		Images:      images,
		Discounts:   discounts,
	})
	if err != nil {
		return fmt.Errorf("elasticsearch: serializar producto: %w", err)
	}

	res, err := s.es.Index(s.index, bytes.NewReader(body),
		s.es.Index.WithContext(ctx),
		s.es.Index.WithDocumentID(p.ID),
	)
	if err != nil {
		return fmt.Errorf("elasticsearch: index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("elasticsearch: index %s: %s", p.ID, res.String())
	}
	return nil
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			ID     string          `json:"_id"`
			Index  string          `json:"_index"`
			Score  *float64        `json:"_score"`
			Source json.RawMessage `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// SearchProducts ejecuta la consulta bool y devuelve los hits crudos del índice.
func (s *ElasticSearcher) SearchProducts(ctx context.Context, q ports.SearchQuery) ([]dto.SearchHit, error) {
	body, err := json.Marshal(buildQuery(q))
	if err != nil {
		return nil, fmt.Errorf("elasticsearch: serializar consulta: %w", err)
	}

	res, err := s.es.Search(
		s.es.Search.WithContext(ctx),
		s.es.Search.WithIndex(s.index),
		s.es.Search.WithBody(bytes.NewReader(body)),
		s.es.Search.WithSize(q.Limit),
	)
	if err != nil {
		return nil, fmt.Errorf("elasticsearch: search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		raw, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("elasticsearch: search [%d]: %s", res.StatusCode, raw)
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("elasticsearch: decodificar respuesta: %w", err)
	}
	hits := make([]dto.SearchHit, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		hit := dto.SearchHit{ID: h.ID, Index: h.Index, Source: h.Source}
		if h.Score != nil {
			hit.Score = *h.Score
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

// buildQuery arma la consulta: multi_match sobre nombre y descripción más filtros
// term/range. Sin texto se usa match_all para poder filtrar solo por categoría o precio.
func buildQuery(q ports.SearchQuery) map[string]any {
	var must []any
	if q.Text != "" {
		must = append(must, map[string]any{
			"multi_match": map[string]any{"query": q.Text, "fields": []string{"name", "description"}},
		})
	} else {
		must = append(must, map[string]any{"match_all": map[string]any{}})
	}

	filter := []any{}
	if q.Category != "" {
		filter = append(filter, map[string]any{"term": map[string]any{"category": q.Category}})
	}
	if q.SupplierID != "" {
		filter = append(filter, map[string]any{"term": map[string]any{"supplierId": q.SupplierID}})
	}
	if q.MinPrice != nil || q.MaxPrice != nil {
		rng := map[string]any{}
		if q.MinPrice != nil {
			rng["gte"] = q.MinPrice.InexactFloat64()
		}
		if q.MaxPrice != nil {
			rng["lte"] = q.MaxPrice.InexactFloat64()
		}
		filter = append(filter, map[string]any{"range": map[string]any{"price": rng}})
	}

	return map[string]any{
		"query": map[string]any{
			"bool": map[string]any{"must": must, "filter": filter},
		},
	}
}
