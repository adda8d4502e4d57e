package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/wholesale-api/internal/application/dto"
	"github.com/jhoicas/wholesale-api/internal/application/ports"
	"github.com/jhoicas/wholesale-api/internal/domain"
	"github.com/jhoicas/wholesale-api/internal/domain/entity"
	"github.com/jhoicas/wholesale-api/internal/domain/repository"
	"github.com/jhoicas/wholesale-api/pkg/logger"
)

var hundred = decimal.NewFromInt(100)

// InventoryUseCase alta de productos y actualización de existencias con difusión en tiempo real.
type InventoryUseCase struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	broadcaster  ports.Broadcaster
	indexer      ports.ProductIndexer // opcional
	log          *logger.Logger
}

// NewInventoryUseCase construye el caso de uso. indexer puede ser nil (sin motor de búsqueda).
func NewInventoryUseCase(
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	broadcaster ports.Broadcaster,
	indexer ports.ProductIndexer,
	log *logger.Logger,
) *InventoryUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &InventoryUseCase{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		broadcaster:  broadcaster,
		indexer:      indexer,
		log:          log.Named("inventory"),
	}
}

// UpdateInventory sobrescribe la cantidad del producto (last write wins) y, solo si la escritura
// tuvo éxito, difunde inventoryUpdate {productId, newQuantity} a todos los clientes conectados.
func (uc *InventoryUseCase) UpdateInventory(ctx context.Context, in dto.UpdateInventoryRequest) (*dto.ProductResponse, error) {
	if in.ProductID == "" || in.NewQuantity == nil || *in.NewQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.UpdateQuantity(ctx, in.ProductID, *in.NewQuantity)
	if err != nil {
		return nil, err
	}

	event := dto.InventoryUpdateEvent{ProductID: product.ID, NewQuantity: product.Quantity}
	if err := uc.broadcaster.Broadcast(ports.EventInventoryUpdate, event); err != nil {
		// La escritura ya está confirmada; la difusión es fire-and-forget.
		uc.log.Warn().Err(err).Str("product_id", product.ID).Msg("difusión de inventoryUpdate fallida")
	}
	uc.index(ctx, product)
	return dto.NewProductResponse(product), nil
}

// CreateProduct publica un producto para un proveedor del vendedor.
// Sin SupplierID se usa el primer proveedor del vendedor; un proveedor ajeno devuelve ErrForbidden.
func (uc *InventoryUseCase) CreateProduct(ctx context.Context, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	discounts := make([]entity.Discount, 0, len(in.Discounts))
	for _, d := range in.Discounts {
		if d.MinQuantity < 1 || d.DiscountPercentage.IsNegative() || d.DiscountPercentage.GreaterThan(hundred) {
			return nil, domain.ErrInvalidInput
		}
		discounts = append(discounts, entity.Discount{MinQuantity: d.MinQuantity, Percentage: d.DiscountPercentage})
	}

	supplierID, err := uc.resolveSupplier(ctx, userID, in.SupplierID)
	if err != nil {
		return nil, err
	}

	images := in.Images
	if images == nil {
		images = []string{}
	}
	now := time.Now().UTC()
	product := &entity.Product{
		ID:          uuid.New().String(),
		SupplierID:  supplierID,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Quantity:    in.Quantity,
		Images:      images,
		Discounts:   discounts,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	uc.index(ctx, product)
	return dto.NewProductResponse(product), nil
}

// ListProducts devuelve todos los productos.
func (uc *InventoryUseCase) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.List(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, err
	}
	return dto.NewProductList(products), nil
}

// index reindexa el producto en el motor de búsqueda; un fallo solo se registra.
func (uc *InventoryUseCase) index(ctx context.Context, product *entity.Product) {
	if uc.indexer == nil {
		return
	}
	if err := uc.indexer.IndexProduct(ctx, product); err != nil {
		uc.log.Warn().Err(err).Str("product_id", product.ID).Msg("indexación del producto fallida")
	}
}

func (uc *InventoryUseCase) resolveSupplier(ctx context.Context, userID, supplierID string) (string, error) {
	if supplierID != "" {
		s, err := uc.supplierRepo.GetByID(ctx, supplierID)
		if err != nil {
			return "", err
		}
		if s == nil {
			return "", domain.ErrNotFound
		}
		if s.UserID != userID {
			return "", domain.ErrForbidden
		}
		return s.ID, nil
	}
	owned, err := uc.supplierRepo.ListByUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(owned) == 0 {
		return "", domain.ErrSupplierRequired
	}
	return owned[0].ID, nil
}
