package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/wholesale-api/internal/domain"
	"github.com/jhoicas/wholesale-api/internal/domain/entity"
	"github.com/jhoicas/wholesale-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `p.id, p.supplier_id, p.name, p.description, p.category, p.price, p.quantity,
	p.images, p.discounts, p.created_at, p.updated_at`

// ProductRepo implementación de ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (id, supplier_id, name, description, category, price, quantity,
			images, discounts, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.SupplierID, p.Name, p.Description, p.Category, p.Price, p.Quantity,
		nonNil(p.Images), discountsOrEmpty(p.Discounts), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if !validID(id) {
		return nil, nil
	}
	query := `SELECT ` + productColumns + ` FROM products p WHERE p.id = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List lista productos filtrando por categoría y proveedor, más recientes primero.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	var (
		where []string
		args  []any
	)
	if f.Category != "" {
		args = append(args, f.Category)
		where = append(where, fmt.Sprintf("p.category = $%d", len(args)))
	}
	if f.SupplierID != "" {
		if !validID(f.SupplierID) {
			return []*entity.Product{}, nil
		}
		args = append(args, f.SupplierID)
		where = append(where, fmt.Sprintf("p.supplier_id = $%d", len(args)))
	}
	query := `SELECT ` + productColumns + ` FROM products p`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY p.created_at DESC, p.id"
	limit, args := limitClause(args, f.Limit, f.Offset)
	query += limit

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return collectProducts(rows)
}

// ListBySuppliers productos de los proveedores indicados.
func (r *ProductRepo) ListBySuppliers(ctx context.Context, supplierIDs []string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p
		WHERE p.supplier_id = ANY($1::uuid[]) ORDER BY p.created_at DESC`
	rows, err := r.q.Query(ctx, query, supplierIDs)
	if err != nil {
		return nil, fmt.Errorf("list products by suppliers: %w", err)
	}
	return collectProducts(rows)
}

// UpdateQuantity sobrescribe la cantidad sin leerla antes (last write wins).
func (r *ProductRepo) UpdateQuantity(ctx context.Context, id string, quantity int) (*entity.Product, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	query := `UPDATE products p SET quantity = $2, updated_at = now() WHERE p.id = $1
		RETURNING ` + productColumns
	p, err := scanProduct(r.q.QueryRow(ctx, query, id, quantity))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update product quantity: %w", err)
	}
	return p, nil
}

// Search búsqueda de texto completo sobre search_vector, usada cuando no hay motor externo.
// Sin texto se listan los productos que cumplan los filtros.
func (r *ProductRepo) Search(ctx context.Context, q repository.ProductSearch) ([]*entity.Product, error) {
	var (
		where []string
		args  []any
		order = "p.created_at DESC"
	)
	if q.Text != "" {
		args = append(args, q.Text)
		n := len(args)
		where = append(where, fmt.Sprintf(
			"(p.search_vector @@ plainto_tsquery('simple', $%d) OR p.name ILIKE '%%' || $%d || '%%')", n, n))
		order = fmt.Sprintf("ts_rank(p.search_vector, plainto_tsquery('simple', $%d)) DESC, p.created_at DESC", n)
	}
	if q.Category != "" {
		args = append(args, q.Category)
		where = append(where, fmt.Sprintf("p.category = $%d", len(args)))
	}
	if q.SupplierID != "" {
		if !validID(q.SupplierID) {
			return []*entity.Product{}, nil
		}
		args = append(args, q.SupplierID)
		where = append(where, fmt.Sprintf("p.supplier_id = $%d", len(args)))
	}
	if q.MinPrice != nil {
		args = append(args, *q.MinPrice)
		where = append(where, fmt.Sprintf("p.price >= $%d", len(args)))
	}
	if q.MaxPrice != nil {
		args = append(args, *q.MaxPrice)
		where = append(where, fmt.Sprintf("p.price <= $%d", len(args)))
	}

	query := `SELECT ` + productColumns + ` FROM products p`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY " + order
	limit, args := limitClause(args, q.Limit, 0)
	query += limit

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return collectProducts(rows)
}

func scanProduct(row pgxScanner) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.SupplierID, &p.Name, &p.Description, &p.Category, &p.Price, &p.Quantity,
		&p.Images, &p.Discounts, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()
	var out []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return out, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func discountsOrEmpty(d []entity.Discount) []entity.Discount {
	if d == nil {
		return []entity.Discount{}
	}
	return d
}
