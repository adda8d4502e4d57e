package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wholesale-api/internal/application/ports"
	"github.com/jhoicas/wholesale-api/internal/application/usecase"
)

func TestSearch_NormalizaTexto(t *testing.T) {
	s := &fakeSearcher{}
	uc := usecase.NewSearchUseCase(s)

	// É en forma descompuesta: E + acento combinante
	hits, err := uc.Search(context.Background(), ports.SearchQuery{Text: "  CAFE\u0301   Molido ", Category: " Bebidas "})
	require.NoError(t, err)

	assert.Equal(t, "café molido", s.got.Text)
	assert.Equal(t, "Bebidas", s.got.Category)
	assert.Equal(t, 50, s.got.Limit)
	assert.NotNil(t, hits)
}

func TestSearch_LimiteAcotado(t *testing.T) {
	s := &fakeSearcher{}
	uc := usecase.NewSearchUseCase(s)

	_, err := uc.Search(context.Background(), ports.SearchQuery{Text: "arroz", Limit: 50000})
	require.NoError(t, err)
	assert.Equal(t, 100, s.got.Limit)

	_, err = uc.Search(context.Background(), ports.SearchQuery{Text: "arroz", Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 20, s.got.Limit)
}

func TestSearch_NoValidaRangoDePrecios(t *testing.T) {
	s := &fakeSearcher{}
	uc := usecase.NewSearchUseCase(s)
	lo, hi := decimal.NewFromInt(100), decimal.NewFromInt(10)

	_, err := uc.Search(context.Background(), ports.SearchQuery{MinPrice: &lo, MaxPrice: &hi})
	require.NoError(t, err)
	assert.True(t, s.got.MinPrice.Equal(lo))
	assert.True(t, s.got.MaxPrice.Equal(hi))
}

func TestSearch_PropagaErrorDelMotor(t *testing.T) {
	motorErr := errors.New("cluster rojo")
	uc := usecase.NewSearchUseCase(&fakeSearcher{err: motorErr})
	_, err := uc.Search(context.Background(), ports.SearchQuery{Text: "x"})
	assert.ErrorIs(t, err, motorErr)
}
