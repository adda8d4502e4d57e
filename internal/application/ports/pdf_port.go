package ports

import (
	"context"

	"github.com/jhoicas/wholesale-api/internal/domain/entity"
)

// ReceiptLine línea del comprobante con el nombre del producto resuelto.
type ReceiptLine struct {
	ProductName string
	Line        entity.OrderLine
}

// ReceiptPDFGenerator genera el comprobante de un pedido en PDF.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(
		ctx context.Context,
		order *entity.Order,
		buyer *entity.User,
		supplier *entity.Supplier,
		lines []ReceiptLine,
	) ([]byte, error)
}
