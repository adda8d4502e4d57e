package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/wholesale-api/internal/domain/entity"
	"github.com/jhoicas/wholesale-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre la colección suppliers.
type SupplierRepo struct {
	col *mongo.Collection
}

func NewSupplierRepository(db *mongo.Database) *SupplierRepo {
	return &SupplierRepo{col: db.Collection(colSuppliers)}
}

func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	if _, err := r.col.InsertOne(ctx, newSupplierDoc(s)); err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	var doc supplierDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *SupplierRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Supplier, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list suppliers by user: %w", err)
	}
	return decodeSuppliers(ctx, cur)
}

func (r *SupplierRepo) List(ctx context.Context, f repository.SupplierFilter) ([]*entity.Supplier, error) {
	filter := bson.M{}
	if f.Industry != "" {
		filter["industry"] = f.Industry
	}
	if f.Verified != nil {
		filter["verified"] = *f.Verified
	}
	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "companyName", Value: 1}})
	applyPage(opts, f.Limit, f.Offset)

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return decodeSuppliers(ctx, cur)
}

func decodeSuppliers(ctx context.Context, cur *mongo.Cursor) ([]*entity.Supplier, error) {
	var docs []supplierDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode suppliers: %w", err)
	}
	out := make([]*entity.Supplier, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toEntity())
	}
	return out, nil
}
