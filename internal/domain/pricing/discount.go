// Package pricing calcula precios de venta al por mayor con descuentos por volumen.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/wholesale-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// BestDiscount devuelve el mayor porcentaje cuyo umbral MinQuantity se alcanza con quantity.
// Sin reglas aplicables devuelve cero.
func BestDiscount(discounts []entity.Discount, quantity int) decimal.Decimal {
	best := decimal.Zero
	for _, d := range discounts {
		if d.MinQuantity <= 0 || quantity < d.MinQuantity {
			continue
		}
		if d.Percentage.GreaterThan(best) {
			best = d.Percentage
		}
	}
	if best.GreaterThan(hundred) {
		return hundred
	}
	return best
}

// UnitPrice precio unitario para quantity unidades, redondeado a 2 decimales.
// UnitPrice = Price * (100 - descuento) / 100
func UnitPrice(p *entity.Product, quantity int) decimal.Decimal {
	pct := BestDiscount(p.Discounts, quantity)
	return p.Price.Mul(hundred.Sub(pct)).Div(hundred).Round(2)
}

// LineTotal total de una línea: precio unitario por cantidad.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}
