// Package analytics contiene los casos de uso de reportes: el resumen
// operativo del muelle de recepción.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/Recepcion-api/internal/application/dto"
	"github.com/jhoicas/Recepcion-api/internal/domain/entity"
	"github.com/jhoicas/Recepcion-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen del estado actual de recepción.
//
// Fuente de datos: DashboardRepository (consultas read-only).
// No accede directamente a las tablas; delega todo en el repositorio.
type DashboardUseCase struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashboardRepo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{dashboardRepo: dashboardRepo}
}

// GetReceivingSummary construye el ReceivingSummaryDTO.
//
// Cuatro llamadas en paralelo:
//  1. CountASNsByStatus(PENDING, IN_TRANSIT)      → InboundASNs
//  2. CountReceiptsByStatus(RECEIVING)            → OpenReceipts
//  3. CountPutawayTasksByStatus(PENDING)          → PendingPutaway
//  4. CountPutawayTasksByStatus(IN_PROGRESS)      → PutawayInProgress
func (uc *DashboardUseCase) GetReceivingSummary(ctx context.Context) (*dto.ReceivingSummaryDTO, error) {
	type countResult struct {
		n   int
		err error
	}

	asnCh := make(chan countResult, 1)
	receiptCh := make(chan countResult, 1)
	pendingCh := make(chan countResult, 1)
	inProgCh := make(chan countResult, 1)

	go func() {
		n, err := uc.dashboardRepo.CountASNsByStatus(ctx, entity.ASNStatusPending, entity.ASNStatusInTransit)
		asnCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.dashboardRepo.CountReceiptsByStatus(ctx, entity.ReceiptStatusReceiving)
		receiptCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.dashboardRepo.CountPutawayTasksByStatus(ctx, entity.PutawayTaskPending)
		pendingCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.dashboardRepo.CountPutawayTasksByStatus(ctx, entity.PutawayTaskInProgress)
		inProgCh <- countResult{n, err}
	}()

	asns := <-asnCh
	receipts := <-receiptCh
	pending := <-pendingCh
	inProg := <-inProgCh

	if asns.err != nil {
		return nil, fmt.Errorf("dashboard: ASNs entrantes: %w", asns.err)
	}
	if receipts.err != nil {
		return nil, fmt.Errorf("dashboard: recibos abiertos: %w", receipts.err)
	}
	if pending.err != nil {
		return nil, fmt.Errorf("dashboard: putaway pendiente: %w", pending.err)
	}
	if inProg.err != nil {
		return nil, fmt.Errorf("dashboard: putaway en curso: %w", inProg.err)
	}

	return &dto.ReceivingSummaryDTO{
		InboundASNs:       asns.n,
		OpenReceipts:      receipts.n,
		PendingPutaway:    pending.n,
		PutawayInProgress: inProg.n,
	}, nil
}
