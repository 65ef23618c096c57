package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Recepcion-api/internal/application/dto"
	"github.com/jhoicas/Recepcion-api/internal/application/receiving"
	"github.com/jhoicas/Recepcion-api/internal/domain/repository"
)

// PutawayHandler maneja las peticiones HTTP para tareas de putaway (protegido).
type PutawayHandler struct {
	uc *receiving.PutawayUseCase
}

// NewPutawayHandler construye el handler.
func NewPutawayHandler(uc *receiving.PutawayUseCase) *PutawayHandler {
	return &PutawayHandler{uc: uc}
}

// List godoc
// @Summary      Listar tareas de putaway
// @Tags         putaway
// @Security     Bearer
// @Produce      json
// @Param        status       query  string  false  "Filtrar por estado (PENDING, IN_PROGRESS, COMPLETED)"
// @Param        assigned_to  query  string  false  "Filtrar por usuario asignado"
// @Param        limit        query  int     false  "Límite"   default(20)
// @Param        offset       query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.PutawayTaskListResponse
// @Router       /api/putaway-tasks [get]
func (h *PutawayHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePage(c)
	filters := repository.PutawayTaskFilters{
		Status:     c.Query("status"),
		AssignedTo: c.Query("assigned_to"),
	}
	out, err := h.uc.List(c.Context(), filters, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Assign godoc
// @Summary      Reclamar una tarea de putaway
// @Description  Asigna la tarea al usuario autenticado y la pasa a IN_PROGRESS.
// @Tags         putaway
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la tarea"
// @Success      200  {object}  dto.PutawayTaskResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/putaway-tasks/{id}/assign [post]
func (h *PutawayHandler) Assign(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Assign(c.Context(), id, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateProgress godoc
// @Summary      Reportar avance de putaway
// @Description  Aplica el delta de cantidad guardada sobre la tarea. Al llegar
//
//	a la cantidad objetivo la tarea queda COMPLETED y el recibo se
//	cierra cuando era su última línea pendiente.
//
// @Tags         putaway
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                           true  "ID de la tarea"
// @Param        body  body  dto.UpdatePutawayProgressRequest true  "quantity_putaway (delta > 0)"
// @Success      200   {object}  dto.PutawayTaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/putaway-tasks/{id}/progress [patch]
func (h *PutawayHandler) UpdateProgress(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdatePutawayProgressRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateProgress(c.Context(), id, in.QuantityPutaway, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
