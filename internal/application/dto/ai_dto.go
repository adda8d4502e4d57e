package dto

import "encoding/json"

// ChatRequest body para POST /ai/chat.
type ChatRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

// ChatResponse respuesta del asistente.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// RecommendationRequest body para POST /ai/recommendations.
type RecommendationRequest struct {
	Preferences json.RawMessage `json:"preferences"`
	History     json.RawMessage `json:"history"`
}

// RecommendedProductDTO producto sugerido por el modelo.
type RecommendedProductDTO struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// ProductDescriptionRequest body para POST /ai/product-description.
type ProductDescriptionRequest struct {
	ProductName string   `json:"productName" validate:"required,max=200"`
	Features    []string `json:"features"`
}

// ProductDescriptionResponse descripción generada.
type ProductDescriptionResponse struct {
	Description string `json:"description"`
}
