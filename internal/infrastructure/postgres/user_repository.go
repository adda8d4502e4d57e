package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/wholesale-api/internal/domain"
	"github.com/jhoicas/wholesale-api/internal/domain/entity"
	"github.com/jhoicas/wholesale-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `u.id, u.email, u.password_hash, u.role, u.profile, u.kyc_verified,
	COALESCE((SELECT array_agg(f.product_id::text ORDER BY f.created_at) FROM user_favorites f WHERE f.user_id = u.id), '{}'),
	u.created_at, u.updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// El perfil se guarda como JSONB; los favoritos en user_favorites.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario. Email duplicado: ErrEmailAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, role, profile, kyc_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Role, user.Profile, user.KYCVerified,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID; (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if !validID(id) {
		return nil, nil
	}
	query := `SELECT ` + userColumns + ` FROM users u WHERE u.id = $1`
	u, err := scanUser(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// GetByEmail obtiene un usuario por email; (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u WHERE u.email = $1`
	u, err := scanUser(r.q.QueryRow(ctx, query, email))
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// UpdateProfile reemplaza el perfil embebido y devuelve el usuario actualizado.
func (r *UserRepo) UpdateProfile(ctx context.Context, id string, profile entity.Profile) (*entity.User, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	tag, err := r.q.Exec(ctx, `UPDATE users SET profile = $2, updated_at = now() WHERE id = $1`, id, profile)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// SetKYCVerified actualiza el flag KYC.
func (r *UserRepo) SetKYCVerified(ctx context.Context, id string, verified bool) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	tag, err := r.q.Exec(ctx, `UPDATE users SET kyc_verified = $2, updated_at = now() WHERE id = $1`, id, verified)
	if err != nil {
		return fmt.Errorf("update kyc: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddFavorite agrega un favorito; repetir no duplica.
func (r *UserRepo) AddFavorite(ctx context.Context, userID, productID string) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO user_favorites (user_id, product_id) VALUES ($1, $2)
		ON CONFLICT (user_id, product_id) DO NOTHING`, userID, productID)
	if err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

// RemoveFavorite elimina un favorito (sin error si no existía).
func (r *UserRepo) RemoveFavorite(ctx context.Context, userID, productID string) error {
	if !validID(productID) {
		return nil
	}
	_, err := r.q.Exec(ctx, `DELETE FROM user_favorites WHERE user_id = $1 AND product_id = $2`, userID, productID)
	if err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}

// ListFavoriteProducts devuelve los productos favoritos en el orden en que se marcaron.
func (r *UserRepo) ListFavoriteProducts(ctx context.Context, userID string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM user_favorites f JOIN products p ON p.id = f.product_id
		WHERE f.user_id = $1 ORDER BY f.created_at`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return collectProducts(rows)
}

func scanUser(row pgxScanner) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.Profile, &u.KYCVerified,
		&u.FavoriteProducts, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
