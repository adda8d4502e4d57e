package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/wholesale-api/internal/application/dto"
	"github.com/jhoicas/wholesale-api/internal/application/ports"
	"github.com/jhoicas/wholesale-api/internal/application/usecase"
)

// SearchHandler búsqueda de productos.
type SearchHandler struct {
	uc *usecase.SearchUseCase
}

func NewSearchHandler(uc *usecase.SearchUseCase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

// Products godoc
// @Summary      Buscar productos
// @Description  Texto sobre nombre y descripción; los filtros ausentes se omiten.
// @Tags         search
// @Produce      json
// @Param        query     query  string  false  "texto"
// @Param        category  query  string  false  "categoría exacta"
// @Param        minPrice  query  number  false  "precio mínimo"
// @Param        maxPrice  query  number  false  "precio máximo"
// @Param        supplier  query  string  false  "ID del proveedor"
// @Success      200  {array}   dto.SearchHit
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /search/products [get]
func (h *SearchHandler) Products(c *fiber.Ctx) error {
	q := ports.SearchQuery{
		Text:       c.Query("query"),
		Category:   c.Query("category"),
		SupplierID: c.Query("supplier"),
		Limit:      c.QueryInt("limit", 0),
	}
	fields := map[string]string{}
	q.MinPrice = parsePrice(c.Query("minPrice"), "minPrice", fields)
	q.MaxPrice = parsePrice(c.Query("maxPrice"), "maxPrice", fields)
	if len(fields) > 0 {
		return badRequest(c, &dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Fields: fields})
	}

	hits, err := h.uc.Search(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(hits)
}

// parsePrice devuelve nil si raw está vacío; si no es numérico lo anota en fields.
func parsePrice(raw, name string, fields map[string]string) *decimal.Decimal {
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		fields[name] = "debe ser numérico"
		return nil
	}
	return &d
}
