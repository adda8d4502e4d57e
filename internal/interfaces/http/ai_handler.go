package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wholesale-api/internal/application/dto"
	"github.com/jhoicas/wholesale-api/internal/application/usecase"
)

// AIHandler maneja los endpoints del asistente de IA.
// Sin proveedor configurado responde 503; si el modelo excede el timeout, 408.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// Chat godoc
// @Summary      Conversar con el asistente
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatRequest  true  "message"
// @Success      200   {object}  dto.ChatResponse
// @Failure      408   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /ai/chat [post]
func (h *AIHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if resp := bindBody(c, &req); resp != nil {
		return badRequest(c, resp)
	}
	out, err := h.uc.Chat(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Recommendations sugerencias de productos a partir de preferencias e historial.
func (h *AIHandler) Recommendations(c *fiber.Ctx) error {
	var req dto.RecommendationRequest
	if resp := bindBody(c, &req); resp != nil {
		return badRequest(c, resp)
	}
	out, err := h.uc.Recommendations(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *AIHandler) ProductDescription(c *fiber.Ctx) error {
	var req dto.ProductDescriptionRequest
	if resp := bindBody(c, &req); resp != nil {
		return badRequest(c, resp)
	}
	out, err := h.uc.ProductDescription(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
