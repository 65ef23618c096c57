package repository

import "context"

// DashboardRepository define las consultas de lectura para el dashboard de
// recepción. Las implementaciones son read-only (no modifican datos).
type DashboardRepository interface {
	// CountASNsByStatus cuenta ASNs en cualquiera de los estados dados.
	CountASNsByStatus(ctx context.Context, statuses ...string) (int, error)
	// CountReceiptsByStatus cuenta recibos en el estado dado.
	CountReceiptsByStatus(ctx context.Context, status string) (int, error)
	// CountPutawayTasksByStatus cuenta tareas de putaway en el estado dado.
	CountPutawayTasksByStatus(ctx context.Context, status string) (int, error)
}
