package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/asset-ledger/internal/application/dto"
	"github.com/tu-usuario/asset-ledger/internal/application/usecase"
)

// BaseHandler maneja el dato de referencia de bases.
type BaseHandler struct {
	uc *usecase.BaseUseCase
}

// NewBaseHandler construye el handler.
func NewBaseHandler(uc *usecase.BaseUseCase) *BaseHandler {
	return &BaseHandler{uc: uc}
}

// Create crea una base (solo Admin; el router aplica RequireRole).
// POST /api/bases
func (h *BaseHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateBaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "body inválido",
		})
	}
	resp, err := h.uc.Create(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List devuelve todas las bases.
// GET /api/bases
func (h *BaseHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID devuelve una base por ID.
// GET /api/bases/:id
func (h *BaseHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
