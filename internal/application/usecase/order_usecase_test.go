package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wholesale-api/internal/application/dto"
	"github.com/jhoicas/wholesale-api/internal/application/usecase"
	"github.com/jhoicas/wholesale-api/internal/domain"
	"github.com/jhoicas/wholesale-api/internal/domain/entity"
)

func seedCatalog(s *memStore) {
	s.suppliers["s1"] = &entity.Supplier{ID: "s1", UserID: "seller-1", CompanyName: "Café del Sur"}
	s.suppliers["s2"] = &entity.Supplier{ID: "s2", UserID: "seller-2", CompanyName: "Textiles"}
	s.products["p1"] = &entity.Product{
		ID: "p1", SupplierID: "s1", Name: "Café", Price: decimal.RequireFromString("10.00"), Quantity: 500,
		Discounts: []entity.Discount{
			{MinQuantity: 10, Percentage: decimal.NewFromInt(5)},
			{MinQuantity: 50, Percentage: decimal.NewFromInt(10)},
		},
	}
	s.products["p2"] = &entity.Product{ID: "p2", SupplierID: "s1", Name: "Té", Price: decimal.RequireFromString("3.33"), Quantity: 100}
	s.products["p3"] = &entity.Product{ID: "p3", SupplierID: "s2", Name: "Tela", Price: decimal.NewFromInt(7), Quantity: 10}
}

func newOrderUC(s *memStore, pdf *fakePDF) *usecase.OrderUseCase {
	return usecase.NewOrderUseCase(memOrders{s}, memProducts{s}, memSuppliers{s}, memUsers{s}, pdf)
}

func TestCreateOrder_AplicaMejorDescuentoPorVolumen(t *testing.T) {
	s := newMemStore()
	seedCatalog(s)
	uc := newOrderUC(s, nil)

	out, err := uc.Create(context.Background(), "buyer-1", dto.CreateOrderRequest{Products: []dto.OrderItemRequest{
		{ProductID: "p1", Quantity: 60}, // 10% → 9.00 × 60 = 540.00
		{ProductID: "p2", Quantity: 3},  // sin descuento → 3.33 × 3 = 9.99
	}})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusPending, out.Status)
	assert.Equal(t, "s1", out.SupplierID)
	assert.Equal(t, "9", out.Products[0].Price.String())
	assert.Equal(t, "549.99", out.TotalAmount.StringFixed(2))
}

func TestCreateOrder_ProveedoresMezclados(t *testing.T) {
	s := newMemStore()
	seedCatalog(s)
	uc := newOrderUC(s, nil)

	_, err := uc.Create(context.Background(), "buyer-1", dto.CreateOrderRequest{Products: []dto.OrderItemRequest{
		{ProductID: "p1", Quantity: 1}, {ProductID: "p3", Quantity: 1},
	}})
	assert.ErrorIs(t, err, domain.ErrMixedSuppliers)
	assert.Empty(t, s.orders)
}

func TestCreateOrder_ProductoInexistente(t *testing.T) {
	s := newMemStore()
	uc := newOrderUC(s, nil)

	_, err := uc.Create(context.Background(), "buyer-1", dto.CreateOrderRequest{Products: []dto.OrderItemRequest{
		{ProductID: "nope", Quantity: 1},
	}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecent_CincoMasRecientesPrimero(t *testing.T) {
	s := newMemStore()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		id := fmt.Sprintf("o%d", i)
		s.orders[id] = &entity.Order{ID: id, BuyerID: "buyer-1", CreatedAt: base.Add(time.Duration(i) * time.Hour)}
	}
	s.orders["ajeno"] = &entity.Order{ID: "ajeno", BuyerID: "buyer-2", CreatedAt: base.Add(100 * time.Hour)}
	uc := newOrderUC(s, nil)

	out, err := uc.Recent(context.Background(), "buyer-1")
	require.NoError(t, err)
	require.Len(t, out, usecase.RecentOrdersLimit)
	assert.Equal(t, "o6", out[0].ID)
	assert.Equal(t, "o2", out[4].ID)
}

func TestGetOrder_SoloCompradorOVendedor(t *testing.T) {
	s := newMemStore()
	seedCatalog(s)
	s.orders["o1"] = &entity.Order{ID: "o1", BuyerID: "buyer-1", SupplierID: "s1", Status: entity.OrderStatusPending}
	uc := newOrderUC(s, nil)
	ctx := context.Background()

	_, err := uc.Get(ctx, "buyer-1", "o1")
	assert.NoError(t, err)
	_, err = uc.Get(ctx, "seller-1", "o1")
	assert.NoError(t, err)
	_, err = uc.Get(ctx, "seller-2", "o1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = uc.Get(ctx, "buyer-1", "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStatus_SoloAvanza(t *testing.T) {
	s := newMemStore()
	seedCatalog(s)
	s.orders["o1"] = &entity.Order{ID: "o1", BuyerID: "buyer-1", SupplierID: "s1", Status: entity.OrderStatusPaid}
	uc := newOrderUC(s, nil)
	ctx := context.Background()

	_, err := uc.UpdateStatus(ctx, "seller-1", "o1", entity.OrderStatusPending)
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)

	_, err = uc.UpdateStatus(ctx, "seller-2", "o1", entity.OrderStatusShipped)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := uc.UpdateStatus(ctx, "seller-1", "o1", entity.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, out.Status)
	assert.Equal(t, entity.OrderStatusShipped, s.orders["o1"].Status)

	_, err = uc.UpdateStatus(ctx, "seller-1", "o1", "cancelled")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReceipt_ResuelveNombresDeProducto(t *testing.T) {
	s := newMemStore()
	seedCatalog(s)
	s.orders["o1"] = &entity.Order{ID: "o1", BuyerID: "buyer-1", SupplierID: "s1", Lines: []entity.OrderLine{
		{ProductID: "p1", Quantity: 2, Price: decimal.NewFromInt(10)},
		{ProductID: "borrado", Quantity: 1, Price: decimal.NewFromInt(1)},
	}}
	pdf := &fakePDF{}
	uc := newOrderUC(s, pdf)

	out, err := uc.Receipt(context.Background(), "buyer-1", "o1")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	require.Len(t, pdf.lines, 2)
	assert.Equal(t, "Café", pdf.lines[0].ProductName)
	assert.Equal(t, "borrado", pdf.lines[1].ProductName)
}
