package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un recibo.
const (
	ReceiptStatusReceiving = "RECEIVING"
	ReceiptStatusCompleted = "COMPLETED"
)

// Tipos de recibo.
const (
	ReceiptTypePO       = "PO"       // contra orden de compra / ASN
	ReceiptTypeReturn   = "RETURN"   // devolución de cliente
	ReceiptTypeTransfer = "TRANSFER" // traslado entrante
)

// Estados de calidad de una línea recibida.
const (
	QualityPending = "PENDING"
	QualityPassed  = "PASSED"
	QualityFailed  = "FAILED"
)

// Estados de putaway de una línea recibida.
const (
	LinePutawayPending    = "PENDING"
	LinePutawayInProgress = "IN_PROGRESS"
	LinePutawayCompleted  = "COMPLETED"
)

// ValidReceiptType indica si t es un tipo de recibo conocido.
func ValidReceiptType(t string) bool {
	switch t {
	case ReceiptTypePO, ReceiptTypeReturn, ReceiptTypeTransfer:
		return true
	}
	return false
}

// Receipt registra la recepción física de mercancía, opcionalmente contra un
// ASN (ASNID nil = recibo independiente, p. ej. devoluciones).
type Receipt struct {
	ID          string
	ASNID       *string
	ReceiptType string // PO, RETURN, TRANSFER
	Status      string // RECEIVING, COMPLETED
	ReceivedBy  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	LineItems   []*ReceiptLineItem
}

// ReceiptLineItem es una línea recibida. PutawayStatus lo muta únicamente la
// ejecución de putaway; TotalCost = UnitCost * QuantityReceived.
type ReceiptLineItem struct {
	ID               string
	ReceiptID        string
	ASNLineItemID    *string
	SKU              string
	QuantityOrdered  decimal.Decimal
	QuantityReceived decimal.Decimal
	QuantityDamaged  decimal.Decimal
	UnitCost         decimal.Decimal
	TotalCost        decimal.Decimal
	QualityStatus    string // PENDING, PASSED, FAILED
	PutawayStatus    string // PENDING, IN_PROGRESS, COMPLETED
}
