package main

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCatalog_ProductosPorProveedor(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	sups, products := buildCatalog(gofakeit.New(42), "seller-1", 2, 5, now)

	require.Len(t, sups, 2)
	require.Len(t, products, 10)

	ids := map[string]bool{}
	for _, s := range sups {
		assert.Equal(t, "seller-1", s.UserID)
		assert.Contains(t, industries, s.Industry)
		assert.NotEmpty(t, s.ProductTypes)
		assert.GreaterOrEqual(t, s.Rating, 3.0)
		ids[s.ID] = true
	}
	for _, p := range products {
		assert.True(t, ids[p.SupplierID], "producto con proveedor desconocido")
		assert.True(t, p.Price.IsPositive())
		assert.GreaterOrEqual(t, p.Quantity, 0)
		assert.NotNil(t, p.Discounts)
		for _, d := range p.Discounts {
			assert.Positive(t, d.MinQuantity)
		}
	}
}

func TestBuildCatalog_SinProveedores(t *testing.T) {
	sups, products := buildCatalog(gofakeit.New(1), "seller-1", 0, 5, time.Now())
	assert.Empty(t, sups)
	assert.Empty(t, products)
}
