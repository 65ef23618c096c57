package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateASNLineRequest línea esperada dentro de un CreateASNRequest.
type CreateASNLineRequest struct {
	SKU              string          `json:"sku" validate:"required"`
	ExpectedQuantity decimal.Decimal `json:"expected_quantity" validate:"required"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
	LotNumber        *string         `json:"lot_number,omitempty"`
	ExpirationDate   *time.Time      `json:"expiration_date,omitempty"`
}

// CreateASNRequest body para POST /api/asns.
type CreateASNRequest struct {
	SupplierID          string                 `json:"supplier_id" validate:"required"`
	PurchaseOrderNumber string                 `json:"purchase_order_number" validate:"required"`
	ExpectedArrivalDate time.Time              `json:"expected_arrival_date" validate:"required"`
	Carrier             *string                `json:"carrier,omitempty"`
	TrackingNumber      *string                `json:"tracking_number,omitempty"`
	LineItems           []CreateASNLineRequest `json:"line_items" validate:"required,min=1"`
}

// UpdateASNStatusRequest body para PATCH /api/asns/:id/status.
type UpdateASNStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ASNLineItemResponse salida de una línea de ASN.
type ASNLineItemResponse struct {
	ID               string          `json:"id"`
	SKU              string          `json:"sku"`
	ExpectedQuantity decimal.Decimal `json:"expected_quantity"`
	ReceivedQuantity decimal.Decimal `json:"received_quantity"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
	LotNumber        *string         `json:"lot_number,omitempty"`
	ExpirationDate   *time.Time      `json:"expiration_date,omitempty"`
	ReceivingStatus  string          `json:"receiving_status"`
}

// ASNResponse salida de un ASN con sus líneas.
type ASNResponse struct {
	ID                  string                `json:"id"`
	SupplierID          string                `json:"supplier_id"`
	PurchaseOrderNumber string                `json:"purchase_order_number"`
	Status              string                `json:"status"`
	ExpectedArrivalDate time.Time             `json:"expected_arrival_date"`
	ActualArrivalDate   *time.Time            `json:"actual_arrival_date,omitempty"`
	Carrier             *string               `json:"carrier,omitempty"`
	TrackingNumber      *string               `json:"tracking_number,omitempty"`
	CreatedBy           string                `json:"created_by"`
	CreatedAt           time.Time             `json:"created_at"`
	UpdatedAt           time.Time             `json:"updated_at"`
	LineItems           []ASNLineItemResponse `json:"line_items"`
}

// ASNListResponse lista paginada de ASNs.
type ASNListResponse struct {
	Items []ASNResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}
