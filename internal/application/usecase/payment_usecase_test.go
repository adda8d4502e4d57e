package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wholesale-api/internal/application/dto"
	"github.com/jhoicas/wholesale-api/internal/application/usecase"
	"github.com/jhoicas/wholesale-api/internal/domain"
	"github.com/jhoicas/wholesale-api/internal/domain/entity"
)

func pendingOrderStore() *memStore {
	s := newMemStore()
	s.orders["o1"] = &entity.Order{
		ID: "o1", BuyerID: "buyer-1", SupplierID: "s1",
		TotalAmount: decimal.RequireFromString("125.50"), Status: entity.OrderStatusPending,
	}
	return s
}

func payReq() dto.ProcessPaymentRequest {
	return dto.ProcessPaymentRequest{Amount: decimal.RequireFromString("125.50"), Token: "tok_visa", OrderID: "o1"}
}

func TestProcessPayment_ExitoMarcaPagado(t *testing.T) {
	s := pendingOrderStore()
	gw := &fakeGateway{}
	uc := usecase.NewPaymentUseCase(memOrders{s}, gw, "usd", nil)

	out, err := uc.Process(context.Background(), "buyer-1", payReq())
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, "ch_123", out.Charge.ID)
	require.Len(t, gw.calls, 1)
	assert.Equal(t, int64(12550), gw.calls[0].Amount)
	assert.Equal(t, "usd", gw.calls[0].Currency)
	assert.Equal(t, entity.OrderStatusPaid, s.orders["o1"].Status)
}

func TestProcessPayment_FalloDelCobroDejaPendiente(t *testing.T) {
	s := pendingOrderStore()
	gw := &fakeGateway{err: errors.New("card_declined")}
	uc := usecase.NewPaymentUseCase(memOrders{s}, gw, "usd", nil)

	_, err := uc.Process(context.Background(), "buyer-1", payReq())
	assert.ErrorIs(t, err, domain.ErrPaymentFailed)
	assert.Equal(t, entity.OrderStatusPending, s.orders["o1"].Status)
}

func TestProcessPayment_PedidoYaPagado(t *testing.T) {
	s := pendingOrderStore()
	s.orders["o1"].Status = entity.OrderStatusPaid
	gw := &fakeGateway{}
	uc := usecase.NewPaymentUseCase(memOrders{s}, gw, "usd", nil)

	_, err := uc.Process(context.Background(), "buyer-1", payReq())
	assert.ErrorIs(t, err, domain.ErrOrderNotPending)
	assert.Empty(t, gw.calls)
}

func TestProcessPayment_PedidoInexistente(t *testing.T) {
	uc := usecase.NewPaymentUseCase(memOrders{newMemStore()}, &fakeGateway{}, "usd", nil)
	_, err := uc.Process(context.Background(), "buyer-1", payReq())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProcessPayment_PedidoDeOtroComprador(t *testing.T) {
	gw := &fakeGateway{}
	uc := usecase.NewPaymentUseCase(memOrders{pendingOrderStore()}, gw, "usd", nil)
	_, err := uc.Process(context.Background(), "intruso", payReq())
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, gw.calls)
}

func TestProcessPayment_MontoDistintoDelTotal(t *testing.T) {
	gw := &fakeGateway{}
	uc := usecase.NewPaymentUseCase(memOrders{pendingOrderStore()}, gw, "usd", nil)
	req := payReq()
	req.Amount = decimal.NewFromInt(1)

	_, err := uc.Process(context.Background(), "buyer-1", req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, gw.calls)
}

func TestProcessPayment_FalloAlPersistirTrasCobro(t *testing.T) {
	s := pendingOrderStore()
	s.updateStatusErr = errors.New("db caída")
	gw := &fakeGateway{}
	uc := usecase.NewPaymentUseCase(memOrders{s}, gw, "usd", nil)

	_, err := uc.Process(context.Background(), "buyer-1", payReq())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrPaymentFailed)
	assert.Len(t, gw.calls, 1)
	assert.Equal(t, entity.OrderStatusPending, s.orders["o1"].Status)
}

func TestProcessPayment_SinPasarela(t *testing.T) {
	uc := usecase.NewPaymentUseCase(memOrders{pendingOrderStore()}, nil, "usd", nil)
	_, err := uc.Process(context.Background(), "buyer-1", payReq())
	assert.ErrorIs(t, err, domain.ErrServiceUnavailable)
}
