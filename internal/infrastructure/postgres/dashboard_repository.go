package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Recepcion-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas read-only para el dashboard de recepción.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador de lectura del dashboard.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// CountASNsByStatus cuenta ASNs en cualquiera de los estados dados.
func (r *DashboardRepo) CountASNsByStatus(ctx context.Context, statuses ...string) (int, error) {
	query := `SELECT COUNT(*) FROM asns WHERE status = ANY($1)`
	var total int
	if err := r.pool.QueryRow(ctx, query, statuses).Scan(&total); err != nil {
		return 0, fmt.Errorf("count asns by status: %w", err)
	}
	return total, nil
}

// CountReceiptsByStatus cuenta recibos en el estado dado.
func (r *DashboardRepo) CountReceiptsByStatus(ctx context.Context, status string) (int, error) {
	query := `SELECT COUNT(*) FROM receipts WHERE status = $1`
	var total int
	if err := r.pool.QueryRow(ctx, query, status).Scan(&total); err != nil {
		return 0, fmt.Errorf("count receipts by status: %w", err)
	}
	return total, nil
}

// CountPutawayTasksByStatus cuenta tareas de putaway en el estado dado.
func (r *DashboardRepo) CountPutawayTasksByStatus(ctx context.Context, status string) (int, error) {
	query := `SELECT COUNT(*) FROM putaway_tasks WHERE status = $1`
	var total int
	if err := r.pool.QueryRow(ctx, query, status).Scan(&total); err != nil {
		return 0, fmt.Errorf("count putaway tasks by status: %w", err)
	}
	return total, nil
}
