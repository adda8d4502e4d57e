// Package order contiene las reglas de la progresión de estados de un pedido.
package order

import "github.com/jhoicas/wholesale-api/internal/domain/entity"

// progression orden canónico de estados: pending → paid → shipped → delivered.
var progression = map[string]int{
	entity.OrderStatusPending:   0,
	entity.OrderStatusPaid:      1,
	entity.OrderStatusShipped:   2,
	entity.OrderStatusDelivered: 3,
}

// ValidStatus indica si s es un estado conocido.
func ValidStatus(s string) bool {
	_, ok := progression[s]
	return ok
}

// CanTransition permite solo avances estrictos dentro de la progresión.
// Saltar estados hacia adelante (p. ej. paid → delivered) está permitido; retroceder o repetir no.
func CanTransition(from, to string) bool {
	f, okFrom := progression[from]
	t, okTo := progression[to]
	if !okFrom || !okTo {
		return false
	}
	return t > f
}
