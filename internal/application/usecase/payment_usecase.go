package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/wholesale-api/internal/application/dto"
	"github.com/jhoicas/wholesale-api/internal/application/ports"
	"github.com/jhoicas/wholesale-api/internal/domain"
	"github.com/jhoicas/wholesale-api/internal/domain/entity"
	"github.com/jhoicas/wholesale-api/internal/domain/repository"
	"github.com/jhoicas/wholesale-api/pkg/logger"
)

var cents = decimal.NewFromInt(100)

// PaymentUseCase cobra un pedido pendiente a través de la pasarela y lo marca como pagado.
// Cobro y cambio de estado no son transaccionales: si la actualización falla tras un cobro
// exitoso se registra el ID del cargo para conciliación manual.
type PaymentUseCase struct {
	orderRepo repository.OrderRepository
	gateway   ports.PaymentGateway
	currency  string
	log       *logger.Logger
}

// NewPaymentUseCase construye el caso de uso. gateway nil deja los pagos deshabilitados.
func NewPaymentUseCase(orderRepo repository.OrderRepository, gateway ports.PaymentGateway, currency string, log *logger.Logger) *PaymentUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &PaymentUseCase{orderRepo: orderRepo, gateway: gateway, currency: currency, log: log.Named("payments")}
}

// Process cobra amount sobre el pedido del comprador.
// El pedido debe existir, pertenecer al comprador, estar pendiente y amount debe igualar su total.
// Si la pasarela rechaza el cobro el pedido queda en pending.
func (uc *PaymentUseCase) Process(ctx context.Context, buyerID string, in dto.ProcessPaymentRequest) (*dto.ProcessPaymentResponse, error) {
	if uc.gateway == nil {
		return nil, domain.ErrServiceUnavailable
	}
	if !in.Amount.IsPositive() || in.Token == "" {
		return nil, domain.ErrInvalidInput
	}
	o, err := uc.orderRepo.GetByID(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if o.BuyerID != buyerID {
		return nil, domain.ErrForbidden
	}
	if o.Status != entity.OrderStatusPending {
		return nil, domain.ErrOrderNotPending
	}
	if !in.Amount.Round(2).Equal(o.TotalAmount.Round(2)) {
		return nil, fmt.Errorf("%w: el monto no coincide con el total del pedido", domain.ErrInvalidInput)
	}

	charge, err := uc.gateway.Charge(ctx, ports.ChargeRequest{
		Amount:      in.Amount.Mul(cents).Round(0).IntPart(),
		Currency:    uc.currency,
		Source:      in.Token,
		Description: "Pedido " + o.ID,
		OrderID:     o.ID,
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("order_id", o.ID).Msg("cobro rechazado")
		return nil, fmt.Errorf("%w: %v", domain.ErrPaymentFailed, err)
	}

	if err := uc.orderRepo.UpdateStatus(ctx, o.ID, entity.OrderStatusPaid); err != nil {
		uc.log.Error().Err(err).
			Str("order_id", o.ID).
			Str("charge_id", charge.ID).
			Msg("cobro realizado pero el pedido no se pudo marcar como pagado")
		return nil, err
	}

	return &dto.ProcessPaymentResponse{
		Success: true,
		Charge: dto.ChargeDTO{
			ID:       charge.ID,
			Amount:   charge.Amount,
			Currency: charge.Currency,
			Status:   charge.Status,
			Paid:     charge.Paid,
		},
	}, nil
}
