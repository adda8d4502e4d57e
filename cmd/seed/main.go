// seed puebla la base de datos configurada (DB_DRIVER) con un vendedor de demostración,
// sus proveedores y un catálogo de productos generado con gofakeit. Si ELASTICSEARCH_URL
// está definido, indexa también los productos.
//
// Uso: go run ./cmd/seed [proveedores] [productos_por_proveedor]
// Credenciales del vendedor: seller@demo.test / demo1234
package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/wholesale-api/internal/domain/entity"
	infrasearch "github.com/jhoicas/wholesale-api/internal/infrastructure/search"
	"github.com/jhoicas/wholesale-api/internal/infrastructure/storage"
	"github.com/jhoicas/wholesale-api/pkg/config"
	"github.com/jhoicas/wholesale-api/pkg/logger"
)

const (
	demoEmail    = "seller@demo.test"
	demoPassword = "demo1234"
)

var industries = []string{"Alimentos", "Textil", "Ferretería", "Electrónica", "Papelería", "Limpieza"}

func main() {
	suppliers := argInt(1, 3)
	perSupplier := argInt(2, 20)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	repos, err := storage.Open(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a la base de datos")
	}
	defer repos.Close()

	seller, err := repos.Users.GetByEmail(ctx, demoEmail)
	if err != nil {
		log.Fatal().Err(err).Msg("buscar vendedor demo")
	}
	if seller == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash de contraseña")
		}
		now := time.Now().UTC()
		seller = &entity.User{
			ID:               uuid.New().String(),
			Email:            demoEmail,
			PasswordHash:     string(hash),
			Role:             entity.RoleSeller,
			Profile:          entity.Profile{FullName: "Vendedor Demo", StoreName: "Tienda Demo"},
			KYCVerified:      true,
			FavoriteProducts: []string{},
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := repos.Users.Create(ctx, seller); err != nil {
			log.Fatal().Err(err).Msg("crear vendedor demo")
		}
	}

	sups, products := buildCatalog(gofakeit.New(0), seller.ID, suppliers, perSupplier, time.Now().UTC())
	for _, s := range sups {
		if err := repos.Suppliers.Create(ctx, s); err != nil {
			log.Fatal().Err(err).Str("supplier", s.CompanyName).Msg("crear proveedor")
		}
	}
	for _, p := range products {
		if err := repos.Products.Create(ctx, p); err != nil {
			log.Fatal().Err(err).Str("product", p.Name).Msg("crear producto")
		}
	}

	if cfg.Search.ElasticsearchURL != "" {
		es, err := infrasearch.NewElasticSearcher(cfg.Search.ElasticsearchURL, cfg.Search.Index)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente Elasticsearch")
		}
		if err := es.EnsureIndex(ctx); err != nil {
			log.Fatal().Err(err).Msg("índice Elasticsearch")
		}
		for _, p := range products {
			if err := es.IndexProduct(ctx, p); err != nil {
				log.Warn().Err(err).Str("product_id", p.ID).Msg("indexar producto")
			}
		}
	}

	log.Info().
		Str("seller", seller.Email).
		Int("suppliers", len(sups)).
		Int("products", len(products)).
		Msg("datos de demostración creados")
}

// buildCatalog genera n proveedores del vendedor con perSupplier productos cada uno.
func buildCatalog(f *gofakeit.Faker, sellerID string, n, perSupplier int, now time.Time) ([]*entity.Supplier, []*entity.Product) {
	suppliers := make([]*entity.Supplier, 0, n)
	products := make([]*entity.Product, 0, n*perSupplier)
	for i := 0; i < n; i++ {
		s := &entity.Supplier{
			ID:          uuid.New().String(),
			UserID:      sellerID,
			CompanyName: f.Company(),
			Industry:    f.RandomString(industries),
			Location: entity.Location{
				Country: f.Country(),
				State:   f.State(),
				City:    f.City(),
			},
			Description: f.ProductDescription(),
			Rating:      math.Round(f.Float64Range(3, 5)*10) / 10,
			ReviewCount: f.IntRange(0, 500),
			Verified:    f.Bool(),
			CreatedAt:   now,
		}
		categories := map[string]struct{}{}
		for j := 0; j < perSupplier; j++ {
			p := fakeProduct(f, s.ID, now)
			categories[p.Category] = struct{}{}
			products = append(products, p)
		}
		s.ProductTypes = make([]string, 0, len(categories))
		for c := range categories {
			s.ProductTypes = append(s.ProductTypes, c)
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, products
}

func fakeProduct(f *gofakeit.Faker, supplierID string, now time.Time) *entity.Product {
	p := &entity.Product{
		ID:          uuid.New().String(),
		SupplierID:  supplierID,
		Name:        f.ProductName(),
		Description: f.ProductDescription(),
		Category:    f.ProductCategory(),
		Price:       decimal.NewFromFloat(f.Price(1, 500)).Round(2),
		Quantity:    f.IntRange(0, 1000),
		Images:      []string{f.URL()},
		Discounts:   []entity.Discount{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	// Mitad de los productos con escala de descuentos por volumen.
	if f.Bool() {
		p.Discounts = []entity.Discount{
			{MinQuantity: 10, Percentage: decimal.NewFromInt(5)},
			{MinQuantity: 50, Percentage: decimal.NewFromInt(int64(f.IntRange(8, 15)))},
		}
	}
	return p
}

func argInt(i, def int) int {
	if len(os.Args) <= i {
		return def
	}
	n, err := strconv.Atoi(os.Args[i])
	if err != nil || n <= 0 {
		fmt.Fprintf(os.Stderr, "argumento %d inválido %q, usando %d\n", i, os.Args[i], def)
		return def
	}
	return n
}
