package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/asset-ledger/internal/application/dto"
	"github.com/tu-usuario/asset-ledger/internal/application/ledger"
	"github.com/tu-usuario/asset-ledger/internal/domain/entity"
)

// TransactionHandler maneja los cuatro tipos de movimiento del ledger.
// Cada kind tiene su par POST (registro) + GET (listado filtrado).
type TransactionHandler struct {
	uc *ledger.RecordUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *ledger.RecordUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// actor arma la identidad del que escribe a partir de los Locals del JWT.
func actor(c *fiber.Ctx) ledger.Actor {
	return ledger.Actor{
		UserID: GetUserID(c),
		Role:   GetRole(c),
		BaseID: GetBaseID(c),
	}
}

// CreatePurchase registra una compra.
// POST /api/purchases
func (h *TransactionHandler) CreatePurchase(c *fiber.Ctx) error {
	var req dto.CreatePurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "body inválido",
		})
	}
	resp, err := h.uc.RecordPurchase(c.Context(), actor(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListPurchases lista compras dentro del alcance del actor.
// GET /api/purchases?base=&equipment=&fromDate=&toDate=&limit=&offset=
func (h *TransactionHandler) ListPurchases(c *fiber.Ctx) error {
	return h.list(c, entity.KindPurchase)
}

// CreateTransfer registra un traslado entre bases.
// POST /api/transfers
func (h *TransactionHandler) CreateTransfer(c *fiber.Ctx) error {
	var req dto.CreateTransferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "body inválido",
		})
	}
	resp, err := h.uc.RecordTransfer(c.Context(), actor(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListTransfers lista traslados que tocan la base del actor (origen o destino).
// GET /api/transfers
func (h *TransactionHandler) ListTransfers(c *fiber.Ctx) error {
	return h.list(c, entity.KindTransfer)
}

// CreateAssignment registra una asignación de equipo a personal.
// POST /api/assignments
func (h *TransactionHandler) CreateAssignment(c *fiber.Ctx) error {
	var req dto.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "body inválido",
		})
	}
	resp, err := h.uc.RecordAssignment(c.Context(), actor(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListAssignments lista asignaciones dentro del alcance del actor.
// GET /api/assignments
func (h *TransactionHandler) ListAssignments(c *fiber.Ctx) error {
	return h.list(c, entity.KindAssignment)
}

// CreateExpenditure registra un gasto/consumo de equipo.
// POST /api/expenditures
func (h *TransactionHandler) CreateExpenditure(c *fiber.Ctx) error {
	var req dto.CreateExpenditureRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "body inválido",
		})
	}
	resp, err := h.uc.RecordExpenditure(c.Context(), actor(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListExpenditures lista gastos dentro del alcance del actor.
// GET /api/expenditures
func (h *TransactionHandler) ListExpenditures(c *fiber.Ctx) error {
	return h.list(c, entity.KindExpenditure)
}

func (h *TransactionHandler) list(c *fiber.Ctx, kind string) error {
	var req dto.ListTransactionsRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "query params inválidos",
		})
	}
	list, err := h.uc.ListTransactions(c.Context(), actor(c), kind, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
