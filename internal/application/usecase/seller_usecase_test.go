package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wholesale-api/internal/application/usecase"
	"github.com/jhoicas/wholesale-api/internal/domain"
	"github.com/jhoicas/wholesale-api/internal/domain/entity"
)

func newSellerUC(s *memStore) *usecase.SellerUseCase {
	return usecase.NewSellerUseCase(memUsers{s}, memSuppliers{s}, memProducts{s}, memOrders{s})
}

func TestSellerOrders_SoloDeSusProveedores(t *testing.T) {
	s := newMemStore()
	seedCatalog(s)
	now := time.Now().UTC()
	s.orders["o1"] = &entity.Order{ID: "o1", BuyerID: "b1", SupplierID: "s1", TotalAmount: decimal.NewFromInt(10), Status: entity.OrderStatusPending, CreatedAt: now}
	s.orders["o2"] = &entity.Order{ID: "o2", BuyerID: "b2", SupplierID: "s2", TotalAmount: decimal.NewFromInt(7), Status: entity.OrderStatusPaid, CreatedAt: now}
	uc := newSellerUC(s)

	out, err := uc.Orders(context.Background(), "seller-1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "o1", out[0].ID)
	assert.Equal(t, "s1", out[0].SupplierID)
}

func TestSellerOrders_SinProveedoresListaVacia(t *testing.T) {
	s := newMemStore()
	seedCatalog(s)
	uc := newSellerUC(s)

	out, err := uc.Orders(context.Background(), "sin-proveedor")
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestSellerProducts_DeTodosSusProveedores(t *testing.T) {
	s := newMemStore()
	seedCatalog(s)
	uc := newSellerUC(s)

	out, err := uc.Products(context.Background(), "seller-1")
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestSellerUseCase_Profile_CompradorRechazado(t *testing.T) {
	s := newMemStore()
	s.users["b1"] = &entity.User{ID: "b1", Email: "b@x.test", Role: entity.RoleBuyer}
	uc := newSellerUC(s)

	_, err := uc.Profile(context.Background(), "b1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
