package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wholesale-api/internal/application/ports"
	"github.com/jhoicas/wholesale-api/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$1,234.50", formatMoney(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "$0.00", formatMoney(decimal.Zero))
	assert.Equal(t, "$549.99", formatMoney(decimal.RequireFromString("549.99")))
}

func TestJoinNonEmpty(t *testing.T) {
	assert.Equal(t, "Bogotá, Colombia", joinNonEmpty(", ", "Bogotá", "", "Colombia"))
	assert.Equal(t, "", joinNonEmpty(", ", "", ""))
}

func TestGenerateReceiptPDF_GeneraDocumento(t *testing.T) {
	order := &entity.Order{
		ID: "8c6b1f4e-2d43-4b8e-9a55-3f3b8f7e2d10", BuyerID: "b1", SupplierID: "s1",
		Status: entity.OrderStatusPaid, CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		TotalAmount: decimal.RequireFromString("549.99"),
		Lines: []entity.OrderLine{
			{ProductID: "p1", Quantity: 10, Price: decimal.RequireFromString("49.999")},
		},
	}
	buyer := &entity.User{Email: "compras@tienda.co", Profile: entity.Profile{FullName: "Ana Ruiz"}}
	supplier := &entity.Supplier{CompanyName: "Distribuidora Andina", Location: entity.Location{City: "Medellín"}}
	lines := []ports.ReceiptLine{{ProductName: "Café molido 500 g", Line: order.Lines[0]}}

	out, err := NewReceiptGenerator("usd").GenerateReceiptPDF(context.Background(), order, buyer, supplier, lines)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateReceiptPDF_SinCompradorNiProveedor(t *testing.T) {
	order := &entity.Order{ID: "o1", BuyerID: "b1", SupplierID: "s1", Status: entity.OrderStatusPending}

	out, err := NewReceiptGenerator("usd").GenerateReceiptPDF(context.Background(), order, nil, nil, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
