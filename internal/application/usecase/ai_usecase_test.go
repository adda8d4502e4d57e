package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wholesale-api/internal/application/dto"
	"github.com/jhoicas/wholesale-api/internal/application/usecase"
	"github.com/jhoicas/wholesale-api/internal/domain"
)

func TestChat_Responde(t *testing.T) {
	uc := usecase.NewAIUseCase(&fakeLLM{})
	out, err := uc.Chat(context.Background(), dto.ChatRequest{Message: "hola"})
	require.NoError(t, err)
	assert.Equal(t, "eco: hola", out.Reply)
}

func TestChat_Timeout(t *testing.T) {
	uc := usecase.NewAIUseCase(&fakeLLM{block: true}).WithTimeout(20 * time.Millisecond)
	_, err := uc.Chat(context.Background(), dto.ChatRequest{Message: "hola"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAI_SinProveedor(t *testing.T) {
	uc := usecase.NewAIUseCase(nil)
	_, err := uc.Chat(context.Background(), dto.ChatRequest{Message: "hola"})
	assert.ErrorIs(t, err, domain.ErrServiceUnavailable)
	_, err = uc.Recommendations(context.Background(), dto.RecommendationRequest{})
	assert.ErrorIs(t, err, domain.ErrServiceUnavailable)
}

func TestRecommendations_NuncaNil(t *testing.T) {
	uc := usecase.NewAIUseCase(&fakeLLM{})
	out, err := uc.Recommendations(context.Background(), dto.RecommendationRequest{})
	require.NoError(t, err)
	assert.NotNil(t, out)
}

func TestProductDescription_RequiereNombre(t *testing.T) {
	uc := usecase.NewAIUseCase(&fakeLLM{})
	_, err := uc.ProductDescription(context.Background(), dto.ProductDescriptionRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.ProductDescription(context.Background(), dto.ProductDescriptionRequest{ProductName: "Café"})
	require.NoError(t, err)
	assert.Equal(t, "Descripción de Café", out.Description)
}
