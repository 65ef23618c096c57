package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Recepcion-api/internal/application/analytics"
)

// DashboardHandler expone el resumen operativo de recepción (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetReceivingSummary godoc
// @Summary      Resumen del muelle de recepción
// @Description  Contadores de ASNs entrantes, recibos abiertos y tareas de
//
//	putaway pendientes o en curso.
//
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReceivingSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/receiving [get]
func (h *DashboardHandler) GetReceivingSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetReceivingSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
