// Package storage abre el adaptador de persistencia elegido por DB_DRIVER.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/wholesale-api/internal/domain/repository"
	"github.com/jhoicas/wholesale-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/wholesale-api/internal/infrastructure/postgres"
	"github.com/jhoicas/wholesale-api/pkg/config"
	"github.com/jhoicas/wholesale-api/pkg/logger"
)

// Repositories repositorios del driver activo. Close libera la conexión.
type Repositories struct {
	Users     repository.UserRepository
	Products  repository.ProductRepository
	Suppliers repository.SupplierRepository
	Orders    repository.OrderRepository
	Close     func()
}

// Open conecta con el driver configurado. PostgreSQL aplica las migraciones
// pendientes antes de abrir el pool; MongoDB asegura los índices.
func Open(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*Repositories, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		client, db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		log.Info().Str("database", cfg.MongoDatabase).Msg("MongoDB conectado")
		return &Repositories{
			Users:     mongodb.NewUserRepository(db),
			Products:  mongodb.NewProductRepository(db),
			Suppliers: mongodb.NewSupplierRepository(db),
			Orders:    mongodb.NewOrderRepository(db),
			Close: func() {
				dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = client.Disconnect(dctx)
			},
		}, nil
	case config.DriverPostgres:
		if err := postgres.Migrate(cfg, log); err != nil {
			return nil, err
		}
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		log.Info().Msg("PostgreSQL conectado")
		return &Repositories{
			Users:     postgres.NewUserRepository(pool),
			Products:  postgres.NewProductRepository(pool),
			Suppliers: postgres.NewSupplierRepository(pool),
			Orders:    postgres.NewOrderRepository(pool),
			Close:     pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("storage: driver desconocido %q", cfg.Driver)
	}
}
