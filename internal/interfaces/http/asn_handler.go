package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Recepcion-api/internal/application/dto"
	"github.com/jhoicas/Recepcion-api/internal/application/receiving"
	"github.com/jhoicas/Recepcion-api/internal/domain/repository"
)

// ASNHandler maneja las peticiones HTTP para ASNs (protegido).
type ASNHandler struct {
	uc *receiving.ASNUseCase
}

// NewASNHandler construye el handler.
func NewASNHandler(uc *receiving.ASNUseCase) *ASNHandler {
	return &ASNHandler{uc: uc}
}

// Create godoc
// @Summary      Crear ASN
// @Tags         asns
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateASNRequest  true  "supplier_id, purchase_order_number, expected_arrival_date, line_items"
// @Success      201   {object}  dto.ASNResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/asns [post]
func (h *ASNHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateASNRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener ASN por ID
// @Tags         asns
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ASN"
// @Success      200  {object}  dto.ASNResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/asns/{id} [get]
func (h *ASNHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ASNs
// @Tags         asns
// @Security     Bearer
// @Produce      json
// @Param        status       query  string  false  "Filtrar por estado (PENDING, IN_TRANSIT, RECEIVED, CANCELLED)"
// @Param        supplier_id  query  string  false  "Filtrar por proveedor"
// @Param        limit        query  int     false  "Límite"   default(20)
// @Param        offset       query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.ASNListResponse
// @Router       /api/asns [get]
func (h *ASNHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePage(c)
	filters := repository.ASNFilters{
		Status:     c.Query("status"),
		SupplierID: c.Query("supplier_id"),
	}
	out, err := h.uc.List(c.Context(), filters, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Actualizar estado de un ASN
// @Description  Transiciona el ASN al estado indicado. Al pasar a RECEIVED se
//
//	estampa actual_arrival_date si no estaba fijada.
//
// @Tags         asns
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del ASN"
// @Param        body  body  dto.UpdateASNStatusRequest true  "status"
// @Success      200   {object}  dto.ASNResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/asns/{id}/status [patch]
func (h *ASNHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateASNStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateStatus(c.Context(), id, in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
