package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/wholesale-api/internal/application/auth"
	"github.com/jhoicas/wholesale-api/internal/application/inventory"
	"github.com/jhoicas/wholesale-api/internal/application/ports"
	"github.com/jhoicas/wholesale-api/internal/application/usecase"
	infraai "github.com/jhoicas/wholesale-api/internal/infrastructure/ai"
	infrapayment "github.com/jhoicas/wholesale-api/internal/infrastructure/payment"
	infrapdf "github.com/jhoicas/wholesale-api/internal/infrastructure/pdf"
	"github.com/jhoicas/wholesale-api/internal/infrastructure/realtime"
	infrasearch "github.com/jhoicas/wholesale-api/internal/infrastructure/search"
	"github.com/jhoicas/wholesale-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/wholesale-api/internal/interfaces/http"
	"github.com/jhoicas/wholesale-api/pkg/config"
	"github.com/jhoicas/wholesale-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	repos, err := storage.Open(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("conexión a la base de datos")
	}
	defer repos.Close()

	// Tiempo real: el hub local, y con REDIS_URL un relevo entre instancias.
	hub := realtime.NewHub(realtime.DefaultBufferSize, log)
	var broadcaster ports.Broadcaster = hub
	if cfg.Redis.URL != "" {
		rdb, err := realtime.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		relay := realtime.NewRedisRelay(rdb, cfg.Redis.Channel, hub, log)
		broadcaster = relay
		go func() {
			if err := relay.Run(ctx); err != nil && ctx.Err() == nil {
				log.Error().Err(err).Msg("relevo Redis detenido")
			}
		}()
	}

	// Búsqueda: Elasticsearch si está configurado; si no, consulta sobre la base de datos.
	var (
		searcher ports.ProductSearcher = infrasearch.NewDBSearcher(repos.Products, cfg.Search.Index)
		indexer  ports.ProductIndexer
	)
	if cfg.Search.ElasticsearchURL != "" {
		es, err := infrasearch.NewElasticSearcher(cfg.Search.ElasticsearchURL, cfg.Search.Index)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente Elasticsearch")
		}
		if err := es.EnsureIndex(ctx); err != nil {
			log.Fatal().Err(err).Msg("índice Elasticsearch")
		}
		searcher, indexer = es, es
	}

	var gateway ports.PaymentGateway
	if cfg.Payment.StripeSecretKey != "" {
		gateway = infrapayment.NewStripeGateway(cfg.Payment.StripeSecretKey)
	} else {
		log.Warn().Msg("STRIPE_SECRET_KEY vacío: /payments/process responderá 503")
	}

	var llm ports.LLMService
	switch cfg.AI.Provider {
	case "anthropic":
		llm = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	default:
		llm = infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	}

	receipts := infrapdf.NewReceiptGenerator(cfg.Payment.Currency)

	authUC := auth.NewAuthUseCase(repos.Users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	inventoryUC := inventory.NewInventoryUseCase(repos.Products, repos.Suppliers, broadcaster, indexer, log)
	productUC := usecase.NewProductUseCase(repos.Products, repos.Users)
	supplierUC := usecase.NewSupplierUseCase(repos.Suppliers)
	userUC := usecase.NewUserUseCase(repos.Users, repos.Suppliers)
	sellerUC := usecase.NewSellerUseCase(repos.Users, repos.Suppliers, repos.Products, repos.Orders)
	orderUC := usecase.NewOrderUseCase(repos.Orders, repos.Products, repos.Suppliers, repos.Users, receipts)
	paymentUC := usecase.NewPaymentUseCase(repos.Orders, gateway, cfg.Payment.Currency, log)
	searchUC := usecase.NewSearchUseCase(searcher)
	aiUC := usecase.NewAIUseCase(llm)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Wholesale Marketplace API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "db": cfg.DB.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		InventoryUC: inventoryUC,
		ProductUC:   productUC,
		SupplierUC:  supplierUC,
		UserUC:      userUC,
		SellerUC:    sellerUC,
		OrderUC:     orderUC,
		PaymentUC:   paymentUC,
		SearchUC:    searchUC,
		AIUC:        aiUC,
		Hub:         hub,
		JWTSecret:   cfg.JWT.Secret,
		Log:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
