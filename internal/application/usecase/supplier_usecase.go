package usecase

import (
	"context"

	"github.com/jhoicas/wholesale-api/internal/application/dto"
	"github.com/jhoicas/wholesale-api/internal/domain"
	"github.com/jhoicas/wholesale-api/internal/domain/repository"
)

// SupplierUseCase consultas del directorio de proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// SupplierListFilter filtros opcionales; Verified nil no filtra.
type SupplierListFilter struct {
	Industry string
	Verified *bool
	Page     dto.PageRequest
}

// List lista proveedores.
func (uc *SupplierUseCase) List(ctx context.Context, f SupplierListFilter) ([]dto.SupplierResponse, error) {
	f.Page.DefaultPage()
	suppliers, err := uc.repo.List(ctx, repository.SupplierFilter{
		Industry: f.Industry,
		Verified: f.Verified,
		Limit:    f.Page.Limit,
		Offset:   f.Page.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, *dto.NewSupplierResponse(s))
	}
	return out, nil
}

// GetByID obtiene un proveedor; ErrNotFound si no existe.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewSupplierResponse(s), nil
}
