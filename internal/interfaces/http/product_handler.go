package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wholesale-api/internal/application/dto"
	"github.com/jhoicas/wholesale-api/internal/application/usecase"
)

// ProductHandler catálogo público y favoritos del usuario.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        category    query  string  false  "categoría"
// @Param        supplierId  query  string  false  "proveedor"
// @Param        limit       query  int     false  "máximo 100"
// @Param        offset      query  int     false  "desplazamiento"
// @Success      200  {array}   dto.ProductResponse
// @Router       /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, &dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	if resp := validateStruct(&page); resp != nil {
		return badRequest(c, resp)
	}
	out, err := h.uc.List(c.UserContext(), usecase.ProductListFilter{
		Category:   c.Query("category"),
		SupplierID: c.Query("supplierId"),
		Page:       page,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Favorites productos marcados por el usuario autenticado.
func (h *ProductHandler) Favorites(c *fiber.Ctx) error {
	out, err := h.uc.Favorites(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *ProductHandler) AddFavorite(c *fiber.Ctx) error {
	if err := h.uc.AddFavorite(c.UserContext(), GetUserID(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "producto agregado a favoritos"})
}

func (h *ProductHandler) RemoveFavorite(c *fiber.Ctx) error {
	if err := h.uc.RemoveFavorite(c.UserContext(), GetUserID(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "producto quitado de favoritos"})
}
