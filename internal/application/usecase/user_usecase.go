package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/wholesale-api/internal/application/dto"
	"github.com/jhoicas/wholesale-api/internal/domain"
	"github.com/jhoicas/wholesale-api/internal/domain/entity"
	"github.com/jhoicas/wholesale-api/internal/domain/repository"
)

// UserUseCase perfil, verificación KYC y registro de negocio.
type UserUseCase struct {
	userRepo     repository.UserRepository
	supplierRepo repository.SupplierRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, supplierRepo repository.SupplierRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, supplierRepo: supplierRepo}
}

// GetProfile devuelve el usuario autenticado sin credenciales.
func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return dto.NewUserResponse(user), nil
}

// UpdateProfile reemplaza el perfil embebido. Los campos de tienda solo se guardan para vendedores.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, in dto.ProfileDTO) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	profile := in.ToEntity()
	if user.Role != entity.RoleSeller {
		profile.StoreName = ""
		profile.StorePhotos = nil
		profile.ProductCategories = nil
	}
	updated, err := uc.userRepo.UpdateProfile(ctx, userID, profile)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponse(updated), nil
}

// SubmitKYC marca al usuario como verificado.
func (uc *UserUseCase) SubmitKYC(ctx context.Context, userID string) (*dto.UserResponse, error) {
	if err := uc.userRepo.SetKYCVerified(ctx, userID, true); err != nil {
		return nil, err
	}
	return uc.GetProfile(ctx, userID)
}

// RegisterBusiness completa los datos de negocio del perfil y crea un proveedor del usuario.
func (uc *UserUseCase) RegisterBusiness(ctx context.Context, userID string, in dto.RegisterBusinessRequest) (*dto.RegisterBusinessResponse, error) {
	if in.CompanyName == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	profile := user.Profile
	profile.CompanyName = in.CompanyName
	setIfNotEmpty(&profile.StoreName, in.StoreName)
	setIfNotEmpty(&profile.Address, in.Address)
	setIfNotEmpty(&profile.PhoneNumber, in.PhoneNumber)
	setIfNotEmpty(&profile.Description, in.Description)
	if len(in.StorePhotos) > 0 {
		profile.StorePhotos = in.StorePhotos
	}
	if len(in.ProductCategories) > 0 {
		profile.ProductCategories = in.ProductCategories
	}
	updated, err := uc.userRepo.UpdateProfile(ctx, userID, profile)
	if err != nil {
		return nil, err
	}

	supplier := &entity.Supplier{
		ID:           uuid.New().String(),
		UserID:       userID,
		CompanyName:  in.CompanyName,
		Industry:     in.Industry,
		ProductTypes: in.ProductCategories,
		Description:  in.Description,
		CreatedAt:    time.Now().UTC(),
	}
	if in.Location != nil {
		supplier.Location = entity.Location(*in.Location)
	}
	if supplier.ProductTypes == nil {
		supplier.ProductTypes = []string{}
	}
	if err := uc.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}

	return &dto.RegisterBusinessResponse{
		Message:  "negocio registrado",
		User:     *dto.NewUserResponse(updated),
		Supplier: *dto.NewSupplierResponse(supplier),
	}, nil
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
