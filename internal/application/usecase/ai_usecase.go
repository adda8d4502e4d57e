package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/wholesale-api/internal/application/dto"
	"github.com/jhoicas/wholesale-api/internal/application/ports"
	"github.com/jhoicas/wholesale-api/internal/domain"
)

// aiTimeout límite de cada llamada al LLM.
const aiTimeout = 15 * time.Second

// AIUseCase orquesta el asistente del marketplace.
// Cada llamada al LLM corre con timeout (aiTimeout por defecto).
type AIUseCase struct {
	llm     ports.LLMService
	timeout time.Duration
}

// NewAIUseCase construye el caso de uso inyectando el puerto LLMService (puede ser nil).
func NewAIUseCase(llm ports.LLMService) *AIUseCase {
	return &AIUseCase{llm: llm, timeout: aiTimeout}
}

// WithTimeout reemplaza el timeout por defecto (tests).
func (uc *AIUseCase) WithTimeout(d time.Duration) *AIUseCase {
	uc.timeout = d
	return uc
}

// Chat responde un mensaje del usuario.
func (uc *AIUseCase) Chat(ctx context.Context, req dto.ChatRequest) (*dto.ChatResponse, error) {
	if uc.llm == nil {
		return nil, domain.ErrServiceUnavailable
	}
	if req.Message == "" {
		return nil, domain.ErrInvalidInput
	}
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	reply, err := uc.llm.Chat(ctx, req.Message)
	if err != nil {
		return nil, fmt.Errorf("chat IA: %w", err)
	}
	return &dto.ChatResponse{Reply: reply}, nil
}

// Recommendations sugiere productos según preferencias e historial.
func (uc *AIUseCase) Recommendations(ctx context.Context, req dto.RecommendationRequest) ([]dto.RecommendedProductDTO, error) {
	if uc.llm == nil {
		return nil, domain.ErrServiceUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	recs, err := uc.llm.RecommendProducts(ctx, req.Preferences, req.History)
	if err != nil {
		return nil, fmt.Errorf("recomendaciones IA: %w", err)
	}
	if recs == nil {
		recs = []dto.RecommendedProductDTO{}
	}
	return recs, nil
}

// ProductDescription redacta la descripción comercial de un producto.
func (uc *AIUseCase) ProductDescription(ctx context.Context, req dto.ProductDescriptionRequest) (*dto.ProductDescriptionResponse, error) {
	if uc.llm == nil {
		return nil, domain.ErrServiceUnavailable
	}
	if req.ProductName == "" {
		return nil, domain.ErrInvalidInput
	}
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	text, err := uc.llm.DescribeProduct(ctx, req.ProductName, req.Features)
	if err != nil {
		return nil, fmt.Errorf("descripción IA: %w", err)
	}
	return &dto.ProductDescriptionResponse{Description: text}, nil
}
