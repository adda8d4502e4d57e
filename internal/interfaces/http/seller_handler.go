package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wholesale-api/internal/application/usecase"
)

// SellerHandler panel del vendedor.
type SellerHandler struct {
	uc *usecase.SellerUseCase
}

func NewSellerHandler(uc *usecase.SellerUseCase) *SellerHandler {
	return &SellerHandler{uc: uc}
}

// Profile godoc
// @Summary      Perfil del vendedor con sus proveedores
// @Tags         seller
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  usecase.SellerProfileResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /seller/profile [get]
func (h *SellerHandler) Profile(c *fiber.Ctx) error {
	out, err := h.uc.Profile(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *SellerHandler) Products(c *fiber.Ctx) error {
	out, err := h.uc.Products(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *SellerHandler) Orders(c *fiber.Ctx) error {
	out, err := h.uc.Orders(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
