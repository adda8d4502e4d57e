package dto

// UpdateInventoryRequest body para POST /inventory/update.
type UpdateInventoryRequest struct {
	ProductID   string `json:"productId" validate:"required"`
	NewQuantity *int   `json:"newQuantity" validate:"required,min=0"`
}

// InventoryUpdateEvent payload del evento inventoryUpdate difundido a todos los clientes.
type InventoryUpdateEvent struct {
	ProductID   string `json:"productId"`
	NewQuantity int    `json:"newQuantity"`
}
