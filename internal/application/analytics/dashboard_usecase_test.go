package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Recepcion-api/internal/application/analytics"
	"github.com/jhoicas/Recepcion-api/internal/domain/entity"
)

// fakeDashboardRepo devuelve contadores fijos por estado.
type fakeDashboardRepo struct {
	asnsByStatus     map[string]int
	receiptsByStatus map[string]int
	tasksByStatus    map[string]int
	err              error
}

func (r *fakeDashboardRepo) CountASNsByStatus(_ context.Context, statuses ...string) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	n := 0
	for _, s := range statuses {
		n += r.asnsByStatus[s]
	}
	return n, nil
}

func (r *fakeDashboardRepo) CountReceiptsByStatus(_ context.Context, status string) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	return r.receiptsByStatus[status], nil
}

func (r *fakeDashboardRepo) CountPutawayTasksByStatus(_ context.Context, status string) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	return r.tasksByStatus[status], nil
}

func TestGetReceivingSummary(t *testing.T) {
	repo := &fakeDashboardRepo{
		asnsByStatus: map[string]int{
			entity.ASNStatusPending:   3,
			entity.ASNStatusInTransit: 2,
			entity.ASNStatusReceived:  9, // no cuenta como entrante
		},
		receiptsByStatus: map[string]int{entity.ReceiptStatusReceiving: 4},
		tasksByStatus: map[string]int{
			entity.PutawayTaskPending:    7,
			entity.PutawayTaskInProgress: 5,
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetReceivingSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, out.InboundASNs, "PENDING + IN_TRANSIT")
	assert.Equal(t, 4, out.OpenReceipts)
	assert.Equal(t, 7, out.PendingPutaway)
	assert.Equal(t, 5, out.PutawayInProgress)
}

func TestGetReceivingSummary_PropagaError(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeDashboardRepo{err: errors.New("db caída")})

	_, err := uc.GetReceivingSummary(context.Background())
	assert.Error(t, err)
}
