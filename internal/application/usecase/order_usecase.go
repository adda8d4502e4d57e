package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/wholesale-api/internal/application/dto"
	"github.com/jhoicas/wholesale-api/internal/application/ports"
	"github.com/jhoicas/wholesale-api/internal/domain"
	"github.com/jhoicas/wholesale-api/internal/domain/entity"
	"github.com/jhoicas/wholesale-api/internal/domain/order"
	"github.com/jhoicas/wholesale-api/internal/domain/pricing"
	"github.com/jhoicas/wholesale-api/internal/domain/repository"
)

// RecentOrdersLimit pedidos devueltos por /orders/recent.
const RecentOrdersLimit = 5

// OrderUseCase checkout, consulta y avance de estado de pedidos.
type OrderUseCase struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	userRepo     repository.UserRepository
	pdf          ports.ReceiptPDFGenerator
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	userRepo repository.UserRepository,
	pdf ports.ReceiptPDFGenerator,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		userRepo:     userRepo,
		pdf:          pdf,
	}
}

// Create arma el pedido pendiente del comprador. Cada línea toma el precio del producto con el
// mejor descuento por volumen aplicable; todas las líneas deben ser del mismo proveedor.
func (uc *OrderUseCase) Create(ctx context.Context, buyerID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Products) == 0 {
		return nil, domain.ErrInvalidInput
	}
	var (
		supplierID string
		total      = decimal.Zero
		lines      = make([]entity.OrderLine, 0, len(in.Products))
	)
	for _, item := range in.Products {
		if item.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		if supplierID == "" {
			supplierID = product.SupplierID
		} else if product.SupplierID != supplierID {
			return nil, domain.ErrMixedSuppliers
		}
		unit := pricing.UnitPrice(product, item.Quantity)
		total = total.Add(pricing.LineTotal(unit, item.Quantity))
		lines = append(lines, entity.OrderLine{ProductID: product.ID, Quantity: item.Quantity, Price: unit})
	}

	now := time.Now().UTC()
	o := &entity.Order{
		ID:          uuid.New().String(),
		BuyerID:     buyerID,
		SupplierID:  supplierID,
		Lines:       lines,
		TotalAmount: total,
		Status:      entity.OrderStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.orderRepo.Create(ctx, o); err != nil {
		return nil, err
	}
	return dto.NewOrderResponse(o), nil
}

// Recent los RecentOrdersLimit pedidos más recientes del comprador.
func (uc *OrderUseCase) Recent(ctx context.Context, buyerID string) ([]dto.OrderResponse, error) {
	orders, err := uc.orderRepo.ListRecentByBuyer(ctx, buyerID, RecentOrdersLimit)
	if err != nil {
		return nil, err
	}
	return toOrderList(orders), nil
}

// Get devuelve un pedido visible para el usuario: su comprador o el vendedor dueño del proveedor.
func (uc *OrderUseCase) Get(ctx context.Context, userID, orderID string) (*dto.OrderResponse, error) {
	o, err := uc.authorizedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	return dto.NewOrderResponse(o), nil
}

// UpdateStatus avanza el estado del pedido. Solo el vendedor dueño del proveedor puede hacerlo
// y solo hacia adelante en la progresión.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, sellerID, orderID, status string) (*dto.OrderResponse, error) {
	if !order.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	o, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	owns, err := uc.ownsSupplier(ctx, sellerID, o.SupplierID)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, domain.ErrForbidden
	}
	if !order.CanTransition(o.Status, status) {
		return nil, domain.ErrInvalidStatusTransition
	}
	if err := uc.orderRepo.UpdateStatus(ctx, o.ID, status); err != nil {
		return nil, err
	}
	o.Status = status
	return dto.NewOrderResponse(o), nil
}

// Receipt genera el comprobante PDF del pedido.
func (uc *OrderUseCase) Receipt(ctx context.Context, userID, orderID string) ([]byte, error) {
	if uc.pdf == nil {
		return nil, domain.ErrServiceUnavailable
	}
	o, err := uc.authorizedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	buyer, err := uc.userRepo.GetByID(ctx, o.BuyerID)
	if err != nil {
		return nil, err
	}
	if buyer == nil {
		buyer = &entity.User{ID: o.BuyerID}
	}
	supplier, err := uc.supplierRepo.GetByID(ctx, o.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		supplier = &entity.Supplier{ID: o.SupplierID}
	}
	lines := make([]ports.ReceiptLine, 0, len(o.Lines))
	for _, l := range o.Lines {
		name := l.ProductID
		if p, err := uc.productRepo.GetByID(ctx, l.ProductID); err == nil && p != nil {
			name = p.Name
		}
		lines = append(lines, ports.ReceiptLine{ProductName: name, Line: l})
	}
	return uc.pdf.GenerateReceiptPDF(ctx, o, buyer, supplier, lines)
}

func (uc *OrderUseCase) authorizedOrder(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	o, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if o.BuyerID == userID {
		return o, nil
	}
	owns, err := uc.ownsSupplier(ctx, userID, o.SupplierID)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, domain.ErrForbidden
	}
	return o, nil
}

func (uc *OrderUseCase) ownsSupplier(ctx context.Context, userID, supplierID string) (bool, error) {
	s, err := uc.supplierRepo.GetByID(ctx, supplierID)
	if err != nil {
		return false, err
	}
	return s != nil && s.UserID == userID, nil
}

func toOrderList(orders []*entity.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, *dto.NewOrderResponse(o))
	}
	return out
}
