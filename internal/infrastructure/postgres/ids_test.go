package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wholesale-api/internal/domain"
	"github.com/jhoicas/wholesale-api/internal/domain/repository"
)

func TestValidID(t *testing.T) {
	assert.True(t, validID("00000000-0000-0000-0000-000000000001"))
	assert.False(t, validID("abc"))
	assert.False(t, validID("64b7f0c2e13a4b0012345678")) // ObjectId
	assert.False(t, validID(""))
}

// Con un ID mal formado los repositorios responden sin consultar la base:
// el Querier nil entraría en pánico si se usara.
func TestRepos_IDMalFormado_NoConsulta(t *testing.T) {
	ctx := context.Background()

	products := NewProductRepository(nil)
	p, err := products.GetByID(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, p)

	_, err = products.UpdateQuantity(ctx, "abc", 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := products.List(ctx, repository.ProductFilter{SupplierID: "abc"})
	require.NoError(t, err)
	assert.Empty(t, list)

	hits, err := products.Search(ctx, repository.ProductSearch{SupplierID: "abc"})
	require.NoError(t, err)
	assert.Empty(t, hits)

	orders := &OrderRepo{}
	o, err := orders.GetByID(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, o)
	assert.ErrorIs(t, orders.UpdateStatus(ctx, "abc", "paid"), domain.ErrNotFound)

	s, err := NewSupplierRepository(nil).GetByID(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, s)

	users := NewUserRepository(nil)
	u, err := users.GetByID(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, u)
	assert.NoError(t, users.RemoveFavorite(ctx, "00000000-0000-0000-0000-000000000001", "abc"))
}
