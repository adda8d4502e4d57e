package dto

import "github.com/jhoicas/wholesale-api/internal/domain/entity"

// NewProductResponse convierte la entidad en su representación HTTP.
func NewProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	discounts := make([]DiscountDTO, 0, len(p.Discounts))
	for _, d := range p.Discounts {
		discounts = append(discounts, DiscountDTO{MinQuantity: d.MinQuantity, DiscountPercentage: d.Percentage})
	}
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return &ProductResponse{
		ID:          p.ID,
		SupplierID:  p.SupplierID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Images:      images,
		Discounts:   discounts,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// NewProductList convierte una lista de productos; nunca devuelve nil.
func NewProductList(products []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *NewProductResponse(p))
	}
	return out
}

// NewUserResponse omite el hash de la contraseña.
func NewUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	favs := u.FavoriteProducts
	if favs == nil {
		favs = []string{}
	}
	return &UserResponse{
		ID:               u.ID,
		Email:            u.Email,
		Role:             u.Role,
		Profile:          ProfileDTO(u.Profile),
		KYCVerified:      u.KYCVerified,
		FavoriteProducts: favs,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

// ToEntity convierte el perfil recibido en la entidad embebida.
func (p ProfileDTO) ToEntity() entity.Profile {
	return entity.Profile(p)
}

// NewSupplierResponse convierte un proveedor.
func NewSupplierResponse(s *entity.Supplier) *SupplierResponse {
	if s == nil {
		return nil
	}
	types := s.ProductTypes
	if types == nil {
		types = []string{}
	}
	return &SupplierResponse{
		ID:           s.ID,
		UserID:       s.UserID,
		CompanyName:  s.CompanyName,
		Industry:     s.Industry,
		Location:     LocationDTO(s.Location),
		ProductTypes: types,
		Description:  s.Description,
		Rating:       s.Rating,
		ReviewCount:  s.ReviewCount,
		Verified:     s.Verified,
		CreatedAt:    s.CreatedAt,
	}
}

// NewOrderResponse convierte un pedido con sus líneas.
func NewOrderResponse(o *entity.Order) *OrderResponse {
	if o == nil {
		return nil
	}
	lines := make([]OrderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, OrderLineResponse{ProductID: l.ProductID, Quantity: l.Quantity, Price: l.Price})
	}
	return &OrderResponse{
		ID:          o.ID,
		BuyerID:     o.BuyerID,
		SupplierID:  o.SupplierID,
		Products:    lines,
		TotalAmount: o.TotalAmount,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
	}
}
