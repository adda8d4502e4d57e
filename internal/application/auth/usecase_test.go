package auth_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wholesale-api/internal/application/auth"
	"github.com/jhoicas/wholesale-api/internal/application/dto"
	"github.com/jhoicas/wholesale-api/internal/domain"
	"github.com/jhoicas/wholesale-api/internal/domain/entity"
	"github.com/jhoicas/wholesale-api/pkg/jwt"
)

const testSecret = "secreto-de-pruebas"

// fakeUserRepo implementación en memoria con email único, como la restricción de la DB.
type fakeUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) UpdateProfile(context.Context, string, entity.Profile) (*entity.User, error) {
	return nil, domain.ErrNotFound
}
func (r *fakeUserRepo) SetKYCVerified(context.Context, string, bool) error   { return nil }
func (r *fakeUserRepo) AddFavorite(context.Context, string, string) error    { return nil }
func (r *fakeUserRepo) RemoveFavorite(context.Context, string, string) error { return nil }
func (r *fakeUserRepo) ListFavoriteProducts(context.Context, string) ([]*entity.Product, error) {
	return nil, nil
}

func newUseCase() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "test"}), repo
}

// ── Registro ──────────────────────────────────────────────────────────────────

func TestRegister_DevuelveTokenConRol(t *testing.T) {
	uc, repo := newUseCase()

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "Ana@Example.com", Password: "supersecreta", Role: entity.RoleSeller,
	})
	require.NoError(t, err)

	userID, role, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSeller, role)

	stored := repo.byEmail["ana@example.com"]
	require.NotNil(t, stored)
	assert.Equal(t, stored.ID, userID)
	assert.NotEqual(t, "supersecreta", stored.PasswordHash)
}

func TestRegister_EmailDuplicadoEsConflicto(t *testing.T) {
	uc, _ := newUseCase()
	in := dto.RegisterRequest{Email: "dup@example.com", Password: "supersecreta", Role: entity.RoleBuyer}

	_, err := uc.Register(context.Background(), in)
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_RolInvalido(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "x@example.com", Password: "supersecreta", Role: "admin",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── Login ─────────────────────────────────────────────────────────────────────

func TestLogin_Exitoso(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()
	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "b@example.com", Password: "supersecreta", Role: entity.RoleBuyer})
	require.NoError(t, err)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "b@example.com", Password: "supersecreta", Role: entity.RoleBuyer})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleBuyer, out.Role)
	assert.NotEmpty(t, out.Token)
}

func TestLogin_RolDistintoEsRechazadoConCredencialesCorrectas(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()
	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "s@example.com", Password: "supersecreta", Role: entity.RoleSeller})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "s@example.com", Password: "supersecreta", Role: entity.RoleBuyer})
	assert.ErrorIs(t, err, domain.ErrRoleMismatch)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()
	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "p@example.com", Password: "supersecreta", Role: entity.RoleBuyer})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "p@example.com", Password: "otra-clave", Role: entity.RoleBuyer})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_EmailDesconocido(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@example.com", Password: "x", Role: entity.RoleBuyer})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
