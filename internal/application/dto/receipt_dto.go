package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateReceiptLineRequest línea recibida dentro de un CreateReceiptRequest.
type CreateReceiptLineRequest struct {
	ASNLineItemID    *string         `json:"asn_line_item_id,omitempty"`
	SKU              string          `json:"sku" validate:"required"`
	QuantityOrdered  decimal.Decimal `json:"quantity_ordered"`
	QuantityReceived decimal.Decimal `json:"quantity_received" validate:"required"`
	QuantityDamaged  decimal.Decimal `json:"quantity_damaged"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
}

// CreateReceiptRequest body para POST /api/receipts. ASNID nil = recibo
// independiente (devoluciones, traslados).
type CreateReceiptRequest struct {
	ASNID       *string                    `json:"asn_id,omitempty"`
	ReceiptType string                     `json:"receipt_type" validate:"required,oneof=PO RETURN TRANSFER"`
	LineItems   []CreateReceiptLineRequest `json:"line_items" validate:"required,min=1"`
}

// ReceiptLineItemResponse salida de una línea de recibo.
type ReceiptLineItemResponse struct {
	ID               string          `json:"id"`
	ASNLineItemID    *string         `json:"asn_line_item_id,omitempty"`
	SKU              string          `json:"sku"`
	QuantityOrdered  decimal.Decimal `json:"quantity_ordered"`
	QuantityReceived decimal.Decimal `json:"quantity_received"`
	QuantityDamaged  decimal.Decimal `json:"quantity_damaged"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
	TotalCost        decimal.Decimal `json:"total_cost"`
	QualityStatus    string          `json:"quality_status"`
	PutawayStatus    string          `json:"putaway_status"`
}

// ReceiptResponse salida de un recibo con sus líneas.
type ReceiptResponse struct {
	ID          string                    `json:"id"`
	ASNID       *string                   `json:"asn_id,omitempty"`
	ReceiptType string                    `json:"receipt_type"`
	Status      string                    `json:"status"`
	ReceivedBy  string                    `json:"received_by"`
	CreatedAt   time.Time                 `json:"created_at"`
	UpdatedAt   time.Time                 `json:"updated_at"`
	LineItems   []ReceiptLineItemResponse `json:"line_items"`
}

// ReceiptListResponse lista paginada de recibos.
type ReceiptListResponse struct {
	Items []ReceiptResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
