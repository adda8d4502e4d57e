package usecase

import (
	"context"

	"github.com/jhoicas/wholesale-api/internal/application/dto"
	"github.com/jhoicas/wholesale-api/internal/domain"
	"github.com/jhoicas/wholesale-api/internal/domain/repository"
)

// ProductUseCase consultas del catálogo y favoritos del comprador.
type ProductUseCase struct {
	repo     repository.ProductRepository
	userRepo repository.UserRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, userRepo repository.UserRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, userRepo: userRepo}
}

// ProductListFilter filtros opcionales del catálogo.
type ProductListFilter struct {
	Category   string
	SupplierID string
	Page       dto.PageRequest
}

// List lista productos con filtros opcionales.
func (uc *ProductUseCase) List(ctx context.Context, f ProductListFilter) ([]dto.ProductResponse, error) {
	f.Page.DefaultPage()
	products, err := uc.repo.List(ctx, repository.ProductFilter{
		Category:   f.Category,
		SupplierID: f.SupplierID,
		Limit:      f.Page.Limit,
		Offset:     f.Page.Offset,
	})
	if err != nil {
		return nil, err
	}
	return dto.NewProductList(products), nil
}

// GetByID obtiene un producto por ID; ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewProductResponse(product), nil
}

// Favorites productos marcados como favoritos por el usuario.
func (uc *ProductUseCase) Favorites(ctx context.Context, userID string) ([]dto.ProductResponse, error) {
	products, err := uc.userRepo.ListFavoriteProducts(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewProductList(products), nil
}

// AddFavorite marca un producto existente como favorito. Repetir la operación no duplica.
func (uc *ProductUseCase) AddFavorite(ctx context.Context, userID, productID string) error {
	product, err := uc.repo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.userRepo.AddFavorite(ctx, userID, productID)
}

// RemoveFavorite quita el producto de favoritos.
func (uc *ProductUseCase) RemoveFavorite(ctx context.Context, userID, productID string) error {
	return uc.userRepo.RemoveFavorite(ctx, userID, productID)
}
