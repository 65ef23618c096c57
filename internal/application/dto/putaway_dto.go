package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdatePutawayProgressRequest body para PATCH /api/putaway-tasks/:id/progress.
// QuantityPutaway es el delta reportado, no el total acumulado.
type UpdatePutawayProgressRequest struct {
	QuantityPutaway decimal.Decimal `json:"quantity_putaway" validate:"required"`
}

// PutawayTaskResponse salida de una tarea de putaway.
type PutawayTaskResponse struct {
	ID                string          `json:"id"`
	ReceiptLineID     string          `json:"receipt_line_id"`
	SKU               string          `json:"sku"`
	QuantityToPutaway decimal.Decimal `json:"quantity_to_putaway"`
	QuantityPutaway   decimal.Decimal `json:"quantity_putaway"`
	TargetBinLocation string          `json:"target_bin_location"`
	Status            string          `json:"status"`
	AssignedTo        *string         `json:"assigned_to,omitempty"`
	AssignedAt        *time.Time      `json:"assigned_at,omitempty"`
	CompletedAt       *time.Time      `json:"completed_at,omitempty"`
	CompletedBy       *string         `json:"completed_by,omitempty"`
	Priority          int             `json:"priority"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// PutawayTaskListResponse lista paginada de tareas.
type PutawayTaskListResponse struct {
	Items []PutawayTaskResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// CreateBinLocationRequest body para POST /api/bins.
type CreateBinLocationRequest struct {
	SKU      string `json:"sku" validate:"required"`
	BinCode  string `json:"bin_code" validate:"required"`
	Position int    `json:"position"`
}

// BinLocationResponse salida de una ubicación registrada.
type BinLocationResponse struct {
	SKU      string `json:"sku"`
	BinCode  string `json:"bin_code"`
	Position int    `json:"position"`
}
