package receiving

import (
	"context"

	"github.com/jhoicas/Recepcion-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el pipeline de
// recepción: si fn devuelve error, todo lo escrito dentro se revierte.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		asnRepo repository.ASNRepository,
		receiptRepo repository.ReceiptRepository,
		taskRepo repository.PutawayTaskRepository,
		binRepo repository.BinLocationRepository,
	) error) error
}
