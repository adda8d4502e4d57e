package usecase_test

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/jhoicas/wholesale-api/internal/application/dto"
	"github.com/jhoicas/wholesale-api/internal/application/ports"
	"github.com/jhoicas/wholesale-api/internal/domain"
	"github.com/jhoicas/wholesale-api/internal/domain/entity"
	"github.com/jhoicas/wholesale-api/internal/domain/repository"
)

// memStore implementa los cuatro puertos de repositorio en memoria.
type memStore struct {
	mu        sync.Mutex
	users     map[string]*entity.User
	products  map[string]*entity.Product
	suppliers map[string]*entity.Supplier
	orders    map[string]*entity.Order

	updateStatusErr error
}

func newMemStore() *memStore {
	return &memStore{
		users:     map[string]*entity.User{},
		products:  map[string]*entity.Product{},
		suppliers: map[string]*entity.Supplier{},
		orders:    map[string]*entity.Order{},
	}
}

type memUsers struct{ *memStore }
type memProducts struct{ *memStore }
type memSuppliers struct{ *memStore }
type memOrders struct{ *memStore }

// ── users ─────────────────────────────────────────────────────────────────────

func (m memUsers) Create(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID] = u
	return nil
}

func (m memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[id], nil
}

func (m memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m memUsers) UpdateProfile(_ context.Context, id string, p entity.Profile) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	u.Profile = p
	return u, nil
}

func (m memUsers) SetKYCVerified(_ context.Context, id string, v bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.KYCVerified = v
	return nil
}

func (m memUsers) AddFavorite(_ context.Context, userID, productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := m.users[userID]
	for _, f := range u.FavoriteProducts {
		if f == productID {
			return nil
		}
	}
	u.FavoriteProducts = append(u.FavoriteProducts, productID)
	return nil
}

func (m memUsers) RemoveFavorite(_ context.Context, userID, productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := m.users[userID]
	out := u.FavoriteProducts[:0]
	for _, f := range u.FavoriteProducts {
		if f != productID {
			out = append(out, f)
		}
	}
	u.FavoriteProducts = out
	return nil
}

func (m memUsers) ListFavoriteProducts(_ context.Context, userID string) ([]*entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Product
	for _, id := range m.users[userID].FavoriteProducts {
		if p, ok := m.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// ── products ──────────────────────────────────────────────────────────────────

func (m memProducts) Create(_ context.Context, p *entity.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[p.ID] = p
	return nil
}

func (m memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.products[id], nil
}

func (m memProducts) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Product
	for _, p := range m.products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.SupplierID != "" && p.SupplierID != f.SupplierID {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m memProducts) ListBySuppliers(_ context.Context, ids []string) ([]*entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	set := map[string]bool{}
	for _, id := range ids {
		set[id] = true
	}
	var out []*entity.Product
	for _, p := range m.products {
		if set[p.SupplierID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m memProducts) UpdateQuantity(_ context.Context, id string, qty int) (*entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.Quantity = qty
	return p, nil
}

func (m memProducts) Search(context.Context, repository.ProductSearch) ([]*entity.Product, error) {
	return nil, nil
}

// ── suppliers ─────────────────────────────────────────────────────────────────

func (m memSuppliers) Create(_ context.Context, s *entity.Supplier) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.suppliers[s.ID] = s
	return nil
}

func (m memSuppliers) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.suppliers[id], nil
}

func (m memSuppliers) ListByUser(_ context.Context, userID string) ([]*entity.Supplier, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Supplier
	for _, s := range m.suppliers {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m memSuppliers) List(_ context.Context, f repository.SupplierFilter) ([]*entity.Supplier, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Supplier
	for _, s := range m.suppliers {
		if f.Industry != "" && s.Industry != f.Industry {
			continue
		}
		if f.Verified != nil && s.Verified != *f.Verified {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// ── orders ────────────────────────────────────────────────────────────────────

func (m memOrders) Create(_ context.Context, o *entity.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[o.ID] = o
	return nil
}

func (m memOrders) GetByID(_ context.Context, id string) (*entity.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (m memOrders) ListRecentByBuyer(_ context.Context, buyerID string, limit int) ([]*entity.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Order
	for _, o := range m.orders {
		if o.BuyerID == buyerID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m memOrders) ListBySuppliers(_ context.Context, ids []string, limit int) ([]*entity.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	set := map[string]bool{}
	for _, id := range ids {
		set[id] = true
	}
	var out []*entity.Order
	for _, o := range m.orders {
		if set[o.SupplierID] {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m memOrders) UpdateStatus(_ context.Context, id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateStatusErr != nil {
		return m.updateStatusErr
	}
	o, ok := m.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	return nil
}

// ── servicios externos ────────────────────────────────────────────────────────

type fakeGateway struct {
	err   error
	calls []ports.ChargeRequest
}

func (g *fakeGateway) Charge(_ context.Context, req ports.ChargeRequest) (*ports.ChargeResult, error) {
	g.calls = append(g.calls, req)
	if g.err != nil {
		return nil, g.err
	}
	return &ports.ChargeResult{ID: "ch_123", Amount: req.Amount, Currency: req.Currency, Status: "succeeded", Paid: true}, nil
}

type fakeSearcher struct {
	got  ports.SearchQuery
	hits []dto.SearchHit
	err  error
}

func (s *fakeSearcher) SearchProducts(_ context.Context, q ports.SearchQuery) ([]dto.SearchHit, error) {
	s.got = q
	return s.hits, s.err
}

type fakePDF struct {
	lines []ports.ReceiptLine
}

func (f *fakePDF) GenerateReceiptPDF(_ context.Context, _ *entity.Order, _ *entity.User, _ *entity.Supplier, lines []ports.ReceiptLine) ([]byte, error) {
	f.lines = lines
	return []byte("%PDF-1.4"), nil
}

// fakeLLM bloquea hasta que el contexto expire si block es true.
type fakeLLM struct {
	block bool
}

func (f *fakeLLM) Chat(ctx context.Context, message string) (string, error) {
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return "eco: " + message, nil
}

func (f *fakeLLM) RecommendProducts(context.Context, json.RawMessage, json.RawMessage) ([]dto.RecommendedProductDTO, error) {
	return nil, nil
}

func (f *fakeLLM) DescribeProduct(_ context.Context, name string, _ []string) (string, error) {
	return "Descripción de " + name, nil
}
