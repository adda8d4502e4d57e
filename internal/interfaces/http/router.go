package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wholesale-api/internal/application/auth"
	"github.com/jhoicas/wholesale-api/internal/application/inventory"
	"github.com/jhoicas/wholesale-api/internal/application/usecase"
	"github.com/jhoicas/wholesale-api/internal/domain/entity"
	"github.com/jhoicas/wholesale-api/internal/infrastructure/realtime"
	"github.com/jhoicas/wholesale-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	InventoryUC *inventory.InventoryUseCase
	ProductUC   *usecase.ProductUseCase
	SupplierUC  *usecase.SupplierUseCase
	UserUC      *usecase.UserUseCase
	SellerUC    *usecase.SellerUseCase
	OrderUC     *usecase.OrderUseCase
	PaymentUC   *usecase.PaymentUseCase
	SearchUC    *usecase.SearchUseCase
	AIUC        *usecase.AIUseCase
	Hub         *realtime.Hub // nil desactiva /ws
	JWTSecret   string
	Log         *logger.Logger
}

// Router registra las rutas de la API.
// La autenticación se aplica por ruta o por grupo, nunca sobre "/", para que las rutas
// desconocidas respondan 404 y no 401.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	authn := AuthMiddleware(deps.JWTSecret)
	buyer := RequireRole(entity.RoleBuyer)
	seller := RequireRole(entity.RoleSeller)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Wholesale marketplace API"})
	})

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	profileHandler := NewProfileHandler(deps.UserUC)
	authGroup := app.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register-business", authn, profileHandler.RegisterBusiness)

	// Inventario: la lista es pública, las escrituras solo para vendedores
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv := app.Group("/inventory")
	inv.Get("/products", inventoryHandler.ListProducts)
	inv.Post("/update", authn, seller, inventoryHandler.Update)
	inv.Post("/create", authn, seller, inventoryHandler.Create)

	// Productos. /favorites se registra antes que /:id.
	productHandler := NewProductHandler(deps.ProductUC)
	products := app.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/favorites", authn, productHandler.Favorites)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/:id/favorite", authn, productHandler.AddFavorite)
	products.Delete("/:id/favorite", authn, productHandler.RemoveFavorite)

	// Proveedores (público)
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers := app.Group("/suppliers")
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)

	// Búsqueda (público)
	searchHandler := NewSearchHandler(deps.SearchUC)
	app.Get("/search/products", searchHandler.Products)

	// Perfil
	profile := app.Group("/profile", authn)
	profile.Get("/", profileHandler.Get)
	profile.Put("/", profileHandler.Update)
	profile.Post("/kyc", profileHandler.SubmitKYC)

	// Panel del vendedor
	sellerHandler := NewSellerHandler(deps.SellerUC)
	sellerGroup := app.Group("/seller", authn, seller)
	sellerGroup.Get("/profile", sellerHandler.Profile)
	sellerGroup.Get("/products", sellerHandler.Products)
	sellerGroup.Get("/orders", sellerHandler.Orders)

	// Pedidos
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders := app.Group("/orders", authn)
	orders.Post("/", buyer, orderHandler.Create)
	orders.Get("/recent", buyer, orderHandler.Recent)
	orders.Get("/:id", orderHandler.Get)
	orders.Patch("/:id/status", seller, orderHandler.UpdateStatus)
	orders.Get("/:id/receipt", orderHandler.Receipt)

	// Pagos
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	app.Post("/payments/process", authn, buyer, paymentHandler.Process)

	// Asistente IA
	aiHandler := NewAIHandler(deps.AIUC)
	ai := app.Group("/ai", authn)
	ai.Post("/chat", aiHandler.Chat)
	ai.Post("/recommendations", aiHandler.Recommendations)
	ai.Post("/product-description", aiHandler.ProductDescription)

	// Tiempo real
	if deps.Hub != nil {
		rt := NewRealtimeHandler(deps.Hub, log)
		app.Use("/ws", rt.Upgrade)
		app.Get("/ws", rt.Serve())
	}
}
