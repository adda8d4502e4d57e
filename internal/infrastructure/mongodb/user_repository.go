package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/wholesale-api/internal/domain"
	"github.com/jhoicas/wholesale-api/internal/domain/entity"
	"github.com/jhoicas/wholesale-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository sobre la colección users.
// Los favoritos viven embebidos como arreglo de IDs.
type UserRepo struct {
	users    *mongo.Collection
	products *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepo {
	return &UserRepo{users: db.Collection(colUsers), products: db.Collection(colProducts)}
}

// Create inserta el usuario. Email duplicado (índice único): ErrEmailAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	if _, err := r.users.InsertOne(ctx, newUserDoc(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepo) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var doc userDoc
	err := r.users.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toEntity(), nil
}

// UpdateProfile reemplaza el perfil y devuelve el documento resultante.
func (r *UserRepo) UpdateProfile(ctx context.Context, id string, profile entity.Profile) (*entity.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"profile": profile, "updatedAt": time.Now().UTC()}}

	var doc userDoc
	if err := r.users.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *UserRepo) SetKYCVerified(ctx context.Context, id string, verified bool) error {
	res, err := r.users.UpdateByID(ctx, id, bson.M{"$set": bson.M{"kycVerified": verified, "updatedAt": time.Now().UTC()}})
	if err != nil {
		return fmt.Errorf("update kyc: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddFavorite usa $addToSet: repetir no duplica.
func (r *UserRepo) AddFavorite(ctx context.Context, userID, productID string) error {
	if _, err := r.users.UpdateByID(ctx, userID, bson.M{"$addToSet": bson.M{"favoriteProducts": productID}}); err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

func (r *UserRepo) RemoveFavorite(ctx context.Context, userID, productID string) error {
	if _, err := r.users.UpdateByID(ctx, userID, bson.M{"$pull": bson.M{"favoriteProducts": productID}}); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}

// ListFavoriteProducts resuelve los IDs guardados conservando el orden en que se marcaron.
// Los IDs de productos ya inexistentes se omiten.
func (r *UserRepo) ListFavoriteProducts(ctx context.Context, userID string) ([]*entity.Product, error) {
	u, err := r.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil || len(u.FavoriteProducts) == 0 {
		return []*entity.Product{}, nil
	}

	cur, err := r.products.Find(ctx, bson.M{"_id": bson.M{"$in": u.FavoriteProducts}})
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	found, err := decodeProducts(ctx, cur)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Product, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}
	out := make([]*entity.Product, 0, len(found))
	for _, id := range u.FavoriteProducts {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}
