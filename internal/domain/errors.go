package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound                = errors.New("recurso no encontrado")
	ErrUserNotFound            = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists      = errors.New("el email ya está registrado")
	ErrInvalidCredentials      = errors.New("credenciales inválidas")
	ErrRoleMismatch            = errors.New("acceso denegado")
	ErrInvalidInput            = errors.New("entrada inválida")
	ErrUnauthorized            = errors.New("no autorizado")
	ErrForbidden               = errors.New("acceso denegado al recurso")
	ErrConflict                = errors.New("conflicto con el estado actual")
	ErrInvalidStatusTransition = errors.New("transición de estado no permitida")
	ErrMixedSuppliers          = errors.New("el pedido mezcla productos de varios proveedores")
	ErrPaymentFailed           = errors.New("el cobro fue rechazado por la pasarela")
	ErrServiceUnavailable      = errors.New("servicio externo no configurado")
	ErrSupplierRequired        = errors.New("el vendedor no tiene un proveedor registrado")
	ErrOrderNotPending         = errors.New("el pedido no está pendiente de pago")
)
