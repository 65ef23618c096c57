package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un ASN (Advance Shipment Notice).
const (
	ASNStatusPending   = "PENDING"
	ASNStatusInTransit = "IN_TRANSIT"
	ASNStatusReceived  = "RECEIVED"
	ASNStatusCancelled = "CANCELLED"
)

// Estados de recepción de una línea de ASN.
const (
	ASNLinePending  = "PENDING"
	ASNLinePartial  = "PARTIAL"
	ASNLineComplete = "COMPLETE"
)

// ValidASNStatus indica si s es un estado conocido de ASN.
func ValidASNStatus(s string) bool {
	switch s {
	case ASNStatusPending, ASNStatusInTransit, ASNStatusReceived, ASNStatusCancelled:
		return true
	}
	return false
}

// ASN representa un aviso anticipado de embarque: lo que el proveedor dice
// que viene en camino, antes de la llegada física.
type ASN struct {
	ID                  string
	SupplierID          string
	PurchaseOrderNumber string
	Status              string // PENDING, IN_TRANSIT, RECEIVED, CANCELLED
	ExpectedArrivalDate time.Time
	ActualArrivalDate   *time.Time
	Carrier             *string
	TrackingNumber      *string
	CreatedBy           string
	CreatedAt           time.Time
	UpdatedAt           time.Time
	LineItems           []*ASNLineItem
}

// ASNLineItem es una línea esperada del ASN. ReceivedQuantity se va
// acumulando a medida que los recibos postean contra la línea.
type ASNLineItem struct {
	ID               string
	ASNID            string
	SKU              string
	ExpectedQuantity decimal.Decimal
	ReceivedQuantity decimal.Decimal
	UnitCost         decimal.Decimal
	LotNumber        *string
	ExpirationDate   *time.Time
	ReceivingStatus  string // PENDING, PARTIAL, COMPLETE
}
