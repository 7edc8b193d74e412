package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/asset-ledger/internal/application/dto"
	"github.com/tu-usuario/asset-ledger/internal/application/ledger"
)

// DashboardHandler maneja los endpoints del dashboard de métricas.
type DashboardHandler struct {
	uc     *ledger.MetricsUseCase
	report ledger.ReportGenerator
}

// NewDashboardHandler construye el handler. report puede ser nil si no se
// expone la exportación a PDF.
func NewDashboardHandler(uc *ledger.MetricsUseCase, report ledger.ReportGenerator) *DashboardHandler {
	return &DashboardHandler{uc: uc, report: report}
}

// GetMetrics devuelve el snapshot de métricas del dashboard.
// GET /api/dashboard?base=&equipment=&fromDate=YYYY-MM-DD&toDate=YYYY-MM-DD
//
// Para roles no-Admin el parámetro base se ignora: la base efectiva siempre
// es la del token. fromDate y toDate son obligatorios.
func (h *DashboardHandler) GetMetrics(c *fiber.Ctx) error {
	var req dto.MetricsRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "query params inválidos",
		})
	}
	snap, err := h.uc.GetMetrics(c.Context(), GetRole(c), GetBaseID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(snap)
}

// GetReport genera el snapshot y lo devuelve como PDF descargable.
// GET /api/dashboard/report?base=&equipment=&fromDate=&toDate=
func (h *DashboardHandler) GetReport(c *fiber.Ctx) error {
	if h.report == nil {
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{
			Code: "NOT_IMPLEMENTED", Message: "exportación a PDF no habilitada",
		})
	}
	var req dto.MetricsRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "query params inválidos",
		})
	}
	snap, err := h.uc.GetMetrics(c.Context(), GetRole(c), GetBaseID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	pdf, err := h.report.GenerateSnapshotPDF(c.Context(), snap)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="movimientos_%s_%s.pdf"`, snap.FromDate, snap.ToDate))
	return c.Send(pdf)
}
