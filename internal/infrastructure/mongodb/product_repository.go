package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/wholesale-api/internal/domain"
	"github.com/jhoicas/wholesale-api/internal/domain/entity"
	"github.com/jhoicas/wholesale-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre la colección products.
type ProductRepo struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepo {
	return &ProductRepo{col: db.Collection(colProducts)}
}

func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	if _, err := r.col.InsertOne(ctx, newProductDoc(p)); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var doc productDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.SupplierID != "" {
		filter["supplierId"] = f.SupplierID
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}})
	applyPage(opts, f.Limit, f.Offset)

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return decodeProducts(ctx, cur)
}

func (r *ProductRepo) ListBySuppliers(ctx context.Context, supplierIDs []string) ([]*entity.Product, error) {
	if len(supplierIDs) == 0 {
		return []*entity.Product{}, nil
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"supplierId": bson.M{"$in": supplierIDs}}, opts)
	if err != nil {
		return nil, fmt.Errorf("list products by suppliers: %w", err)
	}
	return decodeProducts(ctx, cur)
}

// UpdateQuantity escribe la cantidad en una sola operación atómica (last write wins).
func (r *ProductRepo) UpdateQuantity(ctx context.Context, id string, quantity int) (*entity.Product, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"quantity": quantity, "updatedAt": time.Now().UTC()}}

	var doc productDoc
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update quantity: %w", err)
	}
	return doc.toEntity(), nil
}

// Search búsqueda por subcadena sin distinguir mayúsculas sobre nombre y descripción.
func (r *ProductRepo) Search(ctx context.Context, q repository.ProductSearch) ([]*entity.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	applyPage(opts, q.Limit, 0)

	cur, err := r.col.Find(ctx, searchFilter(q), opts)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return decodeProducts(ctx, cur)
}

func searchFilter(q repository.ProductSearch) bson.M {
	filter := bson.M{}
	if q.Text != "" {
		pattern := regexp.QuoteMeta(q.Text)
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.SupplierID != "" {
		filter["supplierId"] = q.SupplierID
	}
	price := bson.M{}
	if q.MinPrice != nil {
		price["$gte"] = toDecimal128(*q.MinPrice)
	}
	if q.MaxPrice != nil {
		price["$lte"] = toDecimal128(*q.MaxPrice)
	}
	if len(price) > 0 {
		filter["price"] = price
	}
	return filter
}

func applyPage(opts *options.FindOptions, limit, offset int) {
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	if offset > 0 {
		opts.SetSkip(int64(offset))
	}
}

func decodeProducts(ctx context.Context, cur *mongo.Cursor) ([]*entity.Product, error) {
	var docs []productDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	out := make([]*entity.Product, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toEntity())
	}
	return out, nil
}
