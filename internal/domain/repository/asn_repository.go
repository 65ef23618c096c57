package repository

import (
	"time"

	"github.com/jhoicas/Recepcion-api/internal/domain/entity"
)

// ASNFilters filtros opcionales para listar ASNs.
type ASNFilters struct {
	Status     string
	SupplierID string
}

// ASNRepository define el puerto de persistencia para ASN y sus líneas (DIP).
// Los métodos *ForUpdate se usan dentro de transacciones para bloquear la fila
// (SELECT FOR UPDATE) mientras los recibos postean cantidades.
type ASNRepository interface {
	Create(asn *entity.ASN) error
	CreateLineItem(line *entity.ASNLineItem) error
	GetByID(id string) (*entity.ASN, error)
	ListLineItems(asnID string) ([]*entity.ASNLineItem, error)
	List(filters ASNFilters, limit, offset int) ([]*entity.ASN, error)
	Count(filters ASNFilters) (int, error)
	UpdateStatus(id, status string, actualArrival *time.Time) error
	GetLineItemForUpdate(id string) (*entity.ASNLineItem, error)
	UpdateLineItemReceiving(line *entity.ASNLineItem) error
}
