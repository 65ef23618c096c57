package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una tarea de putaway. PENDING → IN_PROGRESS → COMPLETED (terminal).
const (
	PutawayTaskPending    = "PENDING"
	PutawayTaskInProgress = "IN_PROGRESS"
	PutawayTaskCompleted  = "COMPLETED"
)

// Prioridad por defecto de las tareas generadas al crear un recibo.
const DefaultPutawayPriority = 5

// PutawayTask es la directiva de guardar en ubicación lo recibido en una
// línea de recibo. Invariante: 0 <= QuantityPutaway <= QuantityToPutaway;
// Status es COMPLETED si y solo si QuantityPutaway == QuantityToPutaway.
type PutawayTask struct {
	ID                string
	ReceiptLineID     string
	SKU               string
	QuantityToPutaway decimal.Decimal
	QuantityPutaway   decimal.Decimal
	TargetBinLocation string
	Status            string // PENDING, IN_PROGRESS, COMPLETED
	AssignedTo        *string
	AssignedAt        *time.Time
	CompletedAt       *time.Time
	CompletedBy       *string
	Priority          int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
