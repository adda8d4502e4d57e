package ports

import (
	"context"
	"encoding/json"

	"github.com/jhoicas/wholesale-api/internal/application/dto"
)

// LLMService define el puerto de salida para el asistente de inteligencia artificial.
// Cualquier adaptador (Gemini, Anthropic, mock) debe implementar esta interfaz.
// El contexto debe llevar timeout.
type LLMService interface {
	// Chat responde un mensaje libre del usuario como asistente del marketplace.
	Chat(ctx context.Context, message string) (string, error)

	// RecommendProducts sugiere productos a partir de preferencias e historial (JSON libre).
	RecommendProducts(ctx context.Context, preferences, history json.RawMessage) ([]dto.RecommendedProductDTO, error)

	// DescribeProduct redacta una descripción comercial a partir del nombre y características.
	DescribeProduct(ctx context.Context, productName string, features []string) (string, error)
}
