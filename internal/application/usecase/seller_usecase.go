package usecase

import (
	"context"

	"github.com/jhoicas/wholesale-api/internal/application/dto"
	"github.com/jhoicas/wholesale-api/internal/domain"
	"github.com/jhoicas/wholesale-api/internal/domain/entity"
	"github.com/jhoicas/wholesale-api/internal/domain/repository"
)

// sellerOrdersLimit pedidos recientes mostrados en el panel del vendedor.
const sellerOrdersLimit = 50

// SellerProfileResponse perfil del vendedor con sus proveedores.
type SellerProfileResponse struct {
	User      dto.UserResponse       `json:"user"`
	Suppliers []dto.SupplierResponse `json:"suppliers"`
}

// SellerUseCase panel del vendedor: perfil, productos y pedidos de sus proveedores.
type SellerUseCase struct {
	userRepo     repository.UserRepository
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
	orderRepo    repository.OrderRepository
}

// NewSellerUseCase construye el caso de uso.
func NewSellerUseCase(
	userRepo repository.UserRepository,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) *SellerUseCase {
	return &SellerUseCase{userRepo: userRepo, supplierRepo: supplierRepo, productRepo: productRepo, orderRepo: orderRepo}
}

// Profile devuelve el perfil del vendedor. ErrForbidden si el usuario no es vendedor.
func (uc *SellerUseCase) Profile(ctx context.Context, userID string) (*SellerProfileResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Role != entity.RoleSeller {
		return nil, domain.ErrForbidden
	}
	suppliers, err := uc.supplierRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := &SellerProfileResponse{User: *dto.NewUserResponse(user), Suppliers: make([]dto.SupplierResponse, 0, len(suppliers))}
	for _, s := range suppliers {
		out.Suppliers = append(out.Suppliers, *dto.NewSupplierResponse(s))
	}
	return out, nil
}

// Products productos de todos los proveedores del vendedor.
func (uc *SellerUseCase) Products(ctx context.Context, userID string) ([]dto.ProductResponse, error) {
	ids, err := uc.supplierIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []dto.ProductResponse{}, nil
	}
	products, err := uc.productRepo.ListBySuppliers(ctx, ids)
	if err != nil {
		return nil, err
	}
	return dto.NewProductList(products), nil
}

// Orders pedidos recibidos por los proveedores del vendedor, más recientes primero.
func (uc *SellerUseCase) Orders(ctx context.Context, userID string) ([]dto.OrderResponse, error) {
	ids, err := uc.supplierIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []dto.OrderResponse{}, nil
	}
	orders, err := uc.orderRepo.ListBySuppliers(ctx, ids, sellerOrdersLimit)
	if err != nil {
		return nil, err
	}
	return toOrderList(orders), nil
}

func (uc *SellerUseCase) supplierIDs(ctx context.Context, userID string) ([]string, error) {
	suppliers, err := uc.supplierRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(suppliers))
	for _, s := range suppliers {
		ids = append(ids, s.ID)
	}
	return ids, nil
}
