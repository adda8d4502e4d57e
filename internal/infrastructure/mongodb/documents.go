package mongodb

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/wholesale-api/internal/domain/entity"
)

// Los documentos usan el UUID de la entidad como _id (string) y nombres camelCase.

type userDoc struct {
	ID               string         `bson:"_id"`
	Email            string         `bson:"email"`
	Password         string         `bson:"password"`
	Role             string         `bson:"role"`
	Profile          entity.Profile `bson:"profile"`
	KYCVerified      bool           `bson:"kycVerified"`
	FavoriteProducts []string       `bson:"favoriteProducts"`
	CreatedAt        time.Time      `bson:"createdAt"`
	UpdatedAt        time.Time      `bson:"updatedAt"`
}

type discountDoc struct {
	MinQuantity        int                  `bson:"minQuantity"`
	DiscountPercentage primitive.Decimal128 `bson:"discountPercentage"`
}

type productDoc struct {
	ID          string               `bson:"_id"`
	SupplierID  string               `bson:"supplierId"`
	Name        string               `bson:"name"`
	Description string               `bson:"description"`
	Category    string               `bson:"category"`
	Price       primitive.Decimal128 `bson:"price"`
	Quantity    int                  `bson:"quantity"`
	Images      []string             `bson:"images"`
	Discounts   []discountDoc        `bson:"discounts"`
	CreatedAt   time.Time            `bson:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt"`
}

type supplierDoc struct {
	ID           string          `bson:"_id"`
	UserID       string          `bson:"userId"`
	CompanyName  string          `bson:"companyName"`
	Industry     string          `bson:"industry"`
	Location     entity.Location `bson:"location"`
	ProductTypes []string        `bson:"productTypes"`
	Description  string          `bson:"description"`
	Rating       float64         `bson:"rating"`
	ReviewCount  int             `bson:"reviewCount"`
	Verified     bool            `bson:"verified"`
	CreatedAt    time.Time       `bson:"createdAt"`
}

type orderLineDoc struct {
	ProductID string               `bson:"product"`
	Quantity  int                  `bson:"quantity"`
	Price     primitive.Decimal128 `bson:"price"`
}

type orderDoc struct {
	ID          string               `bson:"_id"`
	BuyerID     string               `bson:"buyer"`
	SupplierID  string               `bson:"supplier"`
	Products    []orderLineDoc       `bson:"products"`
	TotalAmount primitive.Decimal128 `bson:"totalAmount"`
	Status      string               `bson:"status"`
	CreatedAt   time.Time            `bson:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt"`
}

// toDecimal128 convierte sin pérdida vía representación textual.
func toDecimal128(d decimal.Decimal) primitive.Decimal128 {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.NewDecimal128(0, 0)
	}
	return v
}

func fromDecimal128(v primitive.Decimal128) decimal.Decimal {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func newUserDoc(u *entity.User) userDoc {
	return userDoc{
		ID:               u.ID,
		Email:            u.Email,
		Password:         u.PasswordHash,
		Role:             u.Role,
		Profile:          u.Profile,
		KYCVerified:      u.KYCVerified,
		FavoriteProducts: emptyIfNil(u.FavoriteProducts),
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

func (d userDoc) toEntity() *entity.User {
	return &entity.User{
		ID:               d.ID,
		Email:            d.Email,
		PasswordHash:     d.Password,
		Role:             d.Role,
		Profile:          d.Profile,
		KYCVerified:      d.KYCVerified,
		FavoriteProducts: emptyIfNil(d.FavoriteProducts),
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func newProductDoc(p *entity.Product) productDoc {
	discounts := make([]discountDoc, 0, len(p.Discounts))
	for _, d := range p.Discounts {
		discounts = append(discounts, discountDoc{MinQuantity: d.MinQuantity, DiscountPercentage: toDecimal128(d.Percentage)})
	}
	return productDoc{
		ID:          p.ID,
		SupplierID:  p.SupplierID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       toDecimal128(p.Price),
		Quantity:    p.Quantity,
		Images:      emptyIfNil(p.Images),
		Discounts:   discounts,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (d productDoc) toEntity() *entity.Product {
	discounts := make([]entity.Discount, 0, len(d.Discounts))
	for _, x := range d.Discounts {
		discounts = append(discounts, entity.Discount{MinQuantity: x.MinQuantity, Percentage: fromDecimal128(x.DiscountPercentage)})
	}
	return &entity.Product{
		ID:          d.ID,
		SupplierID:  d.SupplierID,
		Name:        d.Name,
		Description: d.Description,
		Category:    d.Category,
		Price:       fromDecimal128(d.Price),
		Quantity:    d.Quantity,
		Images:      emptyIfNil(d.Images),
		Discounts:   discounts,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func newSupplierDoc(s *entity.Supplier) supplierDoc {
	return supplierDoc{
		ID:           s.ID,
		UserID:       s.UserID,
		CompanyName:  s.CompanyName,
		Industry:     s.Industry,
		Location:     s.Location,
		ProductTypes: emptyIfNil(s.ProductTypes),
		Description:  s.Description,
		Rating:       s.Rating,
		ReviewCount:  s.ReviewCount,
		Verified:     s.Verified,
		CreatedAt:    s.CreatedAt,
	}
}

func (d supplierDoc) toEntity() *entity.Supplier {
	return &entity.Supplier{
		ID:           d.ID,
		UserID:       d.UserID,
		CompanyName:  d.CompanyName,
		Industry:     d.Industry,
		Location:     d.Location,
		ProductTypes: emptyIfNil(d.ProductTypes),
		Description:  d.Description,
		Rating:       d.Rating,
		ReviewCount:  d.ReviewCount,
		Verified:     d.Verified,
		CreatedAt:    d.CreatedAt,
	}
}

func newOrderDoc(o *entity.Order) orderDoc {
	lines := make([]orderLineDoc, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, orderLineDoc{ProductID: l.ProductID, Quantity: l.Quantity, Price: toDecimal128(l.Price)})
	}
	return orderDoc{
		ID:          o.ID,
		BuyerID:     o.BuyerID,
		SupplierID:  o.SupplierID,
		Products:    lines,
		TotalAmount: toDecimal128(o.TotalAmount),
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func (d orderDoc) toEntity() *entity.Order {
	lines := make([]entity.OrderLine, 0, len(d.Products))
	for _, l := range d.Products {
		lines = append(lines, entity.OrderLine{ProductID: l.ProductID, Quantity: l.Quantity, Price: fromDecimal128(l.Price)})
	}
	return &entity.Order{
		ID:          d.ID,
		BuyerID:     d.BuyerID,
		SupplierID:  d.SupplierID,
		Lines:       lines,
		TotalAmount: fromDecimal128(d.TotalAmount),
		Status:      d.Status,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
