package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Recepcion-api/internal/application/dto"
	"github.com/jhoicas/Recepcion-api/internal/application/receiving"
)

// BinHandler maneja el registro SKU → ubicaciones (protegido).
type BinHandler struct {
	uc *receiving.BinUseCase
}

// NewBinHandler construye el handler.
func NewBinHandler(uc *receiving.BinUseCase) *BinHandler {
	return &BinHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar ubicación para un SKU
// @Tags         bins
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBinLocationRequest  true  "sku, bin_code, position"
// @Success      201   {object}  dto.BinLocationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/bins [post]
func (h *BinHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBinLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListBySKU godoc
// @Summary      Listar ubicaciones de un SKU
// @Tags         bins
// @Security     Bearer
// @Produce      json
// @Param        sku  query  string  true  "SKU"
// @Success      200  {array}   dto.BinLocationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/bins [get]
func (h *BinHandler) ListBySKU(c *fiber.Ctx) error {
	sku := c.Query("sku")
	if sku == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sku es requerido"})
	}
	out, err := h.uc.ListBySKU(c.Context(), sku)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
