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

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository. Las líneas van embebidas en el
// documento del pedido, por lo que el alta es atómica sin transacción.
type OrderRepo struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepo {
	return &OrderRepo{col: db.Collection(colOrders)}
}

func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	if _, err := r.col.InsertOne(ctx, newOrderDoc(o)); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	var doc orderDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *OrderRepo) ListRecentByBuyer(ctx context.Context, buyerID string, limit int) ([]*entity.Order, error) {
	return r.find(ctx, bson.M{"buyer": buyerID}, limit)
}

func (r *OrderRepo) ListBySuppliers(ctx context.Context, supplierIDs []string, limit int) ([]*entity.Order, error) {
	if len(supplierIDs) == 0 {
		return []*entity.Order{}, nil
	}
	return r.find(ctx, bson.M{"supplier": bson.M{"$in": supplierIDs}}, limit)
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}})
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OrderRepo) find(ctx context.Context, filter bson.M, limit int) ([]*entity.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	applyPage(opts, limit, 0)

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	var docs []orderDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	out := make([]*entity.Order, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toEntity())
	}
	return out, nil
}
