package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/wholesale-api/internal/domain"
	"github.com/jhoicas/wholesale-api/internal/domain/entity"
	"github.com/jhoicas/wholesale-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, buyer_id, supplier_id, total_amount, status, created_at, updated_at`

// OrderRepo implementación de OrderRepository sobre PostgreSQL.
// Cabecera y líneas se insertan en la misma transacción.
type OrderRepo struct {
	q  Querier
	tx *TxRunner
}

// NewOrderRepository construye el adaptador con el pool (necesario para abrir transacciones).
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{q: pool, tx: NewTxRunner(pool)}
}

// Create persiste pedido y líneas de forma atómica.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	return r.tx.Run(ctx, func(q Querier) error {
		_, err := q.Exec(ctx, `
			INSERT INTO orders (`+orderColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			o.ID, o.BuyerID, o.SupplierID, o.TotalAmount, o.Status, o.CreatedAt, o.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		batch := &pgx.Batch{}
		for i, l := range o.Lines {
			batch.Queue(`
				INSERT INTO order_lines (order_id, line_no, product_id, quantity, price)
				VALUES ($1, $2, $3, $4, $5)`, o.ID, i+1, l.ProductID, l.Quantity, l.Price)
		}
		br := q.SendBatch(ctx, batch)
		for range o.Lines {
			if _, err := br.Exec(); err != nil {
				_ = br.Close()
				return fmt.Errorf("insert order line: %w", err)
			}
		}
		if err := br.Close(); err != nil {
			return fmt.Errorf("insert order lines: %w", err)
		}
		return nil
	})
}

// GetByID obtiene el pedido con sus líneas; (nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	if !validID(id) {
		return nil, nil
	}
	o, err := scanOrder(r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := r.loadLines(ctx, []*entity.Order{o}); err != nil {
		return nil, err
	}
	return o, nil
}

// ListRecentByBuyer pedidos del comprador, más recientes primero.
func (r *OrderRepo) ListRecentByBuyer(ctx context.Context, buyerID string, limit int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE buyer_id = $1 ORDER BY created_at DESC`
	lim, args := limitClause([]any{buyerID}, limit, 0)
	return r.list(ctx, query+lim, args...)
}

// ListBySuppliers pedidos recibidos por los proveedores indicados, más recientes primero.
func (r *OrderRepo) ListBySuppliers(ctx context.Context, supplierIDs []string, limit int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE supplier_id = ANY($1::uuid[]) ORDER BY created_at DESC`
	lim, args := limitClause([]any{supplierIDs}, limit, 0)
	return r.list(ctx, query+lim, args...)
}

// UpdateStatus sobrescribe el estado del pedido.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	tag, err := r.q.Exec(ctx, `UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OrderRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var out []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	rows.Close()
	if err := r.loadLines(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// loadLines carga las líneas de todos los pedidos en una sola consulta.
func (r *OrderRepo) loadLines(ctx context.Context, orders []*entity.Order) error {
	if len(orders) == 0 {
		return nil
	}
	byID := make(map[string]*entity.Order, len(orders))
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
		ids = append(ids, o.ID)
		o.Lines = []entity.OrderLine{}
	}
	rows, err := r.q.Query(ctx, `
		SELECT order_id, product_id, quantity, price FROM order_lines
		WHERE order_id = ANY($1::uuid[]) ORDER BY order_id, line_no`, ids)
	if err != nil {
		return fmt.Errorf("list order lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			orderID string
			l       entity.OrderLine
		)
		if err := rows.Scan(&orderID, &l.ProductID, &l.Quantity, &l.Price); err != nil {
			return fmt.Errorf("scan order line: %w", err)
		}
		if o := byID[orderID]; o != nil {
			o.Lines = append(o.Lines, l)
		}
	}
	return rows.Err()
}

func scanOrder(row pgxScanner) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(&o.ID, &o.BuyerID, &o.SupplierID, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
