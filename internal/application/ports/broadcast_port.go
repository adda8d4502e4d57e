package ports

// EventInventoryUpdate nombre único del evento de cambios de inventario.
const EventInventoryUpdate = "inventoryUpdate"

// Broadcaster difunde un evento a todos los clientes en tiempo real conectados.
// Es fire-and-forget: no hay confirmación ni reintento.
type Broadcaster interface {
	Broadcast(event string, payload any) error
}
