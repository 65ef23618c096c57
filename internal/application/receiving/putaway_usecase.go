package receiving

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Recepcion-api/internal/application/dto"
	"github.com/jhoicas/Recepcion-api/internal/domain"
	"github.com/jhoicas/Recepcion-api/internal/domain/entity"
	"github.com/jhoicas/Recepcion-api/internal/domain/repository"
	"github.com/jhoicas/Recepcion-api/pkg/logger"
)

// PutawayUseCase ejecuta el ciclo de vida de las tareas de putaway:
// PENDING → IN_PROGRESS → COMPLETED (terminal). El avance se aplica como
// delta sobre la fila bloqueada (SELECT FOR UPDATE) para que dos operarios
// reportando sobre la misma tarea nunca se pisen un incremento.
type PutawayUseCase struct {
	txRunner TxRunner
	taskRepo repository.PutawayTaskRepository
	log      *logger.Logger
}

// NewPutawayUseCase construye el caso de uso.
func NewPutawayUseCase(txRunner TxRunner, taskRepo repository.PutawayTaskRepository, log *logger.Logger) *PutawayUseCase {
	return &PutawayUseCase{txRunner: txRunner, taskRepo: taskRepo, log: log}
}

// List lista tareas con filtros y paginación.
func (uc *PutawayUseCase) List(ctx context.Context, filters repository.PutawayTaskFilters, limit, offset int) (*dto.PutawayTaskListResponse, error) {
	list, err := uc.taskRepo.List(filters, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.taskRepo.Count(filters)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PutawayTaskResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toPutawayTaskResponse(t))
	}
	return &dto.PutawayTaskListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// Assign reclama la tarea para un usuario: assigned_to, assigned_at y estado
// IN_PROGRESS. El paso a IN_PROGRESS ocurre por el solo hecho de reclamar,
// independiente del avance de cantidad. NotFound si la tarea no existe.
func (uc *PutawayUseCase) Assign(ctx context.Context, taskID, userID string) (*dto.PutawayTaskResponse, error) {
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}
	var assigned *entity.PutawayTask
	err := uc.txRunner.Run(ctx, func(
		_ repository.ASNRepository,
		receiptRepo repository.ReceiptRepository,
		taskRepo repository.PutawayTaskRepository,
		_ repository.BinLocationRepository,
	) error {
		task, err := taskRepo.GetForUpdate(taskID)
		if err != nil {
			return err
		}
		if task == nil {
			return domain.NewNotFound("Putaway task", taskID)
		}
		now := time.Now()
		task.AssignedTo = &userID
		task.AssignedAt = &now
		if task.Status == entity.PutawayTaskPending {
			task.Status = entity.PutawayTaskInProgress
			if err := receiptRepo.UpdateLinePutawayStatus(task.ReceiptLineID, entity.LinePutawayInProgress); err != nil {
				return err
			}
		}
		if err := taskRepo.Update(task); err != nil {
			return err
		}
		assigned = task
		return nil
	})
	if err != nil {
		uc.log.Error().Err(err).Str("task_id", taskID).Str("user_id", userID).Msg("asignar tarea de putaway")
		return nil, err
	}

	uc.log.Info().Str("task_id", taskID).Str("user_id", userID).Msg("tarea de putaway asignada")
	return toPutawayTaskResponse(assigned), nil
}

// UpdateProgress aplica un delta de cantidad guardada sobre la tarea, dentro
// de una transacción con la fila bloqueada. Si el acumulado alcanza la
// cantidad objetivo se recorta al tope, la tarea queda COMPLETED (con
// completed_at/completed_by) y el estado de putaway de la línea del recibo se
// propaga; el recibo entero se cierra cuando era su última línea pendiente.
func (uc *PutawayUseCase) UpdateProgress(ctx context.Context, taskID string, delta decimal.Decimal, userID string) (*dto.PutawayTaskResponse, error) {
	if !delta.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.PutawayTask
	err := uc.txRunner.Run(ctx, func(
		_ repository.ASNRepository,
		receiptRepo repository.ReceiptRepository,
		taskRepo repository.PutawayTaskRepository,
		_ repository.BinLocationRepository,
	) error {
		task, err := taskRepo.GetForUpdate(taskID)
		if err != nil {
			return err
		}
		if task == nil {
			return domain.NewNotFound("Putaway task", taskID)
		}

		newTotal := task.QuantityPutaway.Add(delta)
		if newTotal.GreaterThanOrEqual(task.QuantityToPutaway) {
			task.QuantityPutaway = task.QuantityToPutaway
			if task.Status != entity.PutawayTaskCompleted {
				now := time.Now()
				task.Status = entity.PutawayTaskCompleted
				task.CompletedAt = &now
				task.CompletedBy = &userID
				if err := uc.completeReceiptLine(receiptRepo, task.ReceiptLineID); err != nil {
					return err
				}
			}
		} else {
			task.QuantityPutaway = newTotal
			task.Status = entity.PutawayTaskInProgress
			if err := receiptRepo.UpdateLinePutawayStatus(task.ReceiptLineID, entity.LinePutawayInProgress); err != nil {
				return err
			}
		}
		if err := taskRepo.Update(task); err != nil {
			return err
		}
		updated = task
		return nil
	})
	if err != nil {
		uc.log.Error().Err(err).Str("task_id", taskID).Str("user_id", userID).Msg("avance de putaway: rollback")
		return nil, err
	}

	uc.log.Info().
		Str("task_id", taskID).
		Str("quantity_putaway", updated.QuantityPutaway.String()).
		Str("status", updated.Status).
		Msg("avance de putaway registrado")
	return toPutawayTaskResponse(updated), nil
}

// completeReceiptLine propaga la finalización a la línea del recibo y cierra
// el recibo cuando no quedan líneas con putaway pendiente.
func (uc *PutawayUseCase) completeReceiptLine(receiptRepo repository.ReceiptRepository, lineID string) error {
	line, err := receiptRepo.GetLineByID(lineID)
	if err != nil {
		return err
	}
	if line == nil {
		return domain.NewNotFound("Receipt line", lineID)
	}
	if err := receiptRepo.UpdateLinePutawayStatus(lineID, entity.LinePutawayCompleted); err != nil {
		return err
	}
	pending, err := receiptRepo.CountLinesPutawayPending(line.ReceiptID)
	if err != nil {
		return err
	}
	if pending == 0 {
		return receiptRepo.UpdateStatus(line.ReceiptID, entity.ReceiptStatusCompleted)
	}
	return nil
}

func toPutawayTaskResponse(t *entity.PutawayTask) *dto.PutawayTaskResponse {
	if t == nil {
		return nil
	}
	return &dto.PutawayTaskResponse{
		ID:                t.ID,
		ReceiptLineID:     t.ReceiptLineID,
		SKU:               t.SKU,
		QuantityToPutaway: t.QuantityToPutaway,
		QuantityPutaway:   t.QuantityPutaway,
		TargetBinLocation: t.TargetBinLocation,
		Status:            t.Status,
		AssignedTo:        t.AssignedTo,
		AssignedAt:        t.AssignedAt,
		CompletedAt:       t.CompletedAt,
		CompletedBy:       t.CompletedBy,
		Priority:          t.Priority,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}
