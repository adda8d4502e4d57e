package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wholesale-api/internal/application/dto"
	"github.com/jhoicas/wholesale-api/internal/application/usecase"
)

// SupplierHandler directorio público de proveedores.
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// List godoc
// @Summary      Listar proveedores
// @Tags         suppliers
// @Produce      json
// @Param        industry  query  string  false  "industria"
// @Param        verified  query  bool    false  "solo verificados"
// @Success      200  {array}   dto.SupplierResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, &dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	if resp := validateStruct(&page); resp != nil {
		return badRequest(c, resp)
	}
	f := usecase.SupplierListFilter{Industry: c.Query("industry"), Page: page}
	if raw := c.Query("verified"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return badRequest(c, &dto.ErrorResponse{
				Code: "VALIDATION", Message: "datos inválidos",
				Fields: map[string]string{"verified": "debe ser true o false"},
			})
		}
		f.Verified = &v
	}
	out, err := h.uc.List(c.UserContext(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
