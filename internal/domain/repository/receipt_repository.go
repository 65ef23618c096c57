package repository

import "github.com/jhoicas/Recepcion-api/internal/domain/entity"

// ReceiptFilters filtros opcionales para listar recibos.
type ReceiptFilters struct {
	Status      string
	ASNID       string
	ReceiptType string
}

// ReceiptRepository define el puerto de persistencia para Receipt y sus
// líneas (DIP). El recibo posee sus líneas en exclusiva.
type ReceiptRepository interface {
	Create(receipt *entity.Receipt) error
	CreateLineItem(line *entity.ReceiptLineItem) error
	GetByID(id string) (*entity.Receipt, error)
	GetLineByID(lineID string) (*entity.ReceiptLineItem, error)
	ListLineItems(receiptID string) ([]*entity.ReceiptLineItem, error)
	List(filters ReceiptFilters, limit, offset int) ([]*entity.Receipt, error)
	Count(filters ReceiptFilters) (int, error)
	UpdateStatus(id, status string) error
	UpdateLinePutawayStatus(lineID, status string) error
	// CountLinesPutawayPending cuenta las líneas del recibo cuyo putaway aún
	// no está COMPLETED (para cerrar el recibo cuando llega a cero).
	CountLinesPutawayPending(receiptID string) (int, error)
}
