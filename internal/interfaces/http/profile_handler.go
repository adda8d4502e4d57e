package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wholesale-api/internal/application/dto"
	"github.com/jhoicas/wholesale-api/internal/application/usecase"
)

// ProfileHandler perfil, KYC y alta de negocio del usuario autenticado.
type ProfileHandler struct {
	uc *usecase.UserUseCase
}

func NewProfileHandler(uc *usecase.UserUseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// Get godoc
// @Summary      Perfil del usuario autenticado
// @Tags         profile
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetProfile(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update reemplaza el perfil embebido. Los campos de tienda solo se guardan para vendedores.
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var in dto.ProfileDTO
	if resp := bindBody(c, &in); resp != nil {
		return badRequest(c, resp)
	}
	out, err := h.uc.UpdateProfile(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *ProfileHandler) SubmitKYC(c *fiber.Ctx) error {
	out, err := h.uc.SubmitKYC(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RegisterBusiness godoc
// @Summary      Registrar negocio
// @Description  Completa los datos de empresa del perfil y crea un proveedor del usuario.
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterBusinessRequest  true  "datos del negocio"
// @Success      201   {object}  dto.RegisterBusinessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /auth/register-business [post]
func (h *ProfileHandler) RegisterBusiness(c *fiber.Ctx) error {
	var in dto.RegisterBusinessRequest
	if resp := bindBody(c, &in); resp != nil {
		return badRequest(c, resp)
	}
	out, err := h.uc.RegisterBusiness(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
