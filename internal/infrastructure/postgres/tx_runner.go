package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Recepcion-api/internal/application/receiving"
	"github.com/jhoicas/Recepcion-api/internal/domain/repository"
)

// Ensure TxRunner implements receiving.TxRunner.
var _ receiving.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// El Rollback diferido garantiza limpieza ante cualquier error o return temprano.
func (r *TxRunner) Run(ctx context.Context, fn func(
	asnRepo repository.ASNRepository,
	receiptRepo repository.ReceiptRepository,
	taskRepo repository.PutawayTaskRepository,
	binRepo repository.BinLocationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	asnRepo := NewASNRepository(tx)
	receiptRepo := NewReceiptRepository(tx)
	taskRepo := NewPutawayTaskRepository(tx)
	binRepo := NewBinLocationRepository(tx)

	if err := fn(asnRepo, receiptRepo, taskRepo, binRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
