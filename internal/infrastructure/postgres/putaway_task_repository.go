package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Recepcion-api/internal/domain/entity"
	"github.com/jhoicas/Recepcion-api/internal/domain/repository"
)

var _ repository.PutawayTaskRepository = (*PutawayTaskRepo)(nil)

// PutawayTaskRepo implementación del puerto PutawayTaskRepository sobre PostgreSQL (usable con pool o tx).
type PutawayTaskRepo struct {
	q Querier
}

// NewPutawayTaskRepository construye el adaptador de persistencia para tareas de putaway. Pasar pool o tx (Querier).
func NewPutawayTaskRepository(q Querier) *PutawayTaskRepo {
	return &PutawayTaskRepo{q: q}
}

const taskColumns = `id, receipt_line_id, sku, quantity_to_putaway, quantity_putaway, target_bin_location, status, assigned_to, assigned_at, completed_at, completed_by, priority, created_at, updated_at`

func scanTask(row pgx.Row) (*entity.PutawayTask, error) {
	var t entity.PutawayTask
	err := row.Scan(
		&t.ID, &t.ReceiptLineID, &t.SKU, &t.QuantityToPutaway, &t.QuantityPutaway,
		&t.TargetBinLocation, &t.Status, &t.AssignedTo, &t.AssignedAt,
		&t.CompletedAt, &t.CompletedBy, &t.Priority, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste una tarea de putaway.
func (r *PutawayTaskRepo) Create(task *entity.PutawayTask) error {
	query := `
		INSERT INTO putaway_tasks (id, receipt_line_id, sku, quantity_to_putaway, quantity_putaway, target_bin_location, status, assigned_to, assigned_at, completed_at, completed_by, priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		task.ID, task.ReceiptLineID, task.SKU, task.QuantityToPutaway, task.QuantityPutaway,
		task.TargetBinLocation, task.Status, task.AssignedTo, task.AssignedAt,
		task.CompletedAt, task.CompletedBy, task.Priority, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert putaway task: %w", err)
	}
	return nil
}

// GetByID obtiene una tarea por ID (nil si no existe).
func (r *PutawayTaskRepo) GetByID(id string) (*entity.PutawayTask, error) {
	query := `SELECT ` + taskColumns + ` FROM putaway_tasks WHERE id = $1`
	task, err := scanTask(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get putaway task: %w", err)
	}
	return task, nil
}

// GetForUpdate obtiene la tarea y bloquea su fila (SELECT FOR UPDATE). Dos
// operarios reportando avance sobre la misma tarea se serializan aquí: el
// segundo siempre ve el valor ya comprometido por el primero.
func (r *PutawayTaskRepo) GetForUpdate(id string) (*entity.PutawayTask, error) {
	query := `SELECT ` + taskColumns + ` FROM putaway_tasks WHERE id = $1 FOR UPDATE`
	task, err := scanTask(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get putaway task for update: %w", err)
	}
	return task, nil
}

// Update persiste los campos mutables de la tarea.
func (r *PutawayTaskRepo) Update(task *entity.PutawayTask) error {
	query := `
		UPDATE putaway_tasks SET quantity_putaway = $2, status = $3, assigned_to = $4,
			assigned_at = $5, completed_at = $6, completed_by = $7, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		task.ID, task.QuantityPutaway, task.Status, task.AssignedTo,
		task.AssignedAt, task.CompletedAt, task.CompletedBy,
	)
	if err != nil {
		return fmt.Errorf("update putaway task: %w", err)
	}
	return nil
}

// List lista tareas con filtros opcionales y paginación: primero por
// prioridad, luego más antiguas primero (orden de trabajo natural del muelle).
func (r *PutawayTaskRepo) List(filters repository.PutawayTaskFilters, limit, offset int) ([]*entity.PutawayTask, error) {
	query := `SELECT ` + taskColumns + ` FROM putaway_tasks WHERE 1=1`
	args := []any{}
	pos := 1
	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, filters.Status)
		pos++
	}
	if filters.AssignedTo != "" {
		query += fmt.Sprintf(" AND assigned_to = $%d", pos)
		args = append(args, filters.AssignedTo)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY priority, created_at LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list putaway tasks: %w", err)
	}
	defer rows.Close()
	var list []*entity.PutawayTask
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan putaway task: %w", err)
		}
		list = append(list, task)
	}
	return list, rows.Err()
}

// Count cuenta tareas que cumplan los filtros.
func (r *PutawayTaskRepo) Count(filters repository.PutawayTaskFilters) (int, error) {
	query := `SELECT COUNT(*) FROM putaway_tasks WHERE 1=1`
	args := []any{}
	pos := 1
	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, filters.Status)
		pos++
	}
	if filters.AssignedTo != "" {
		query += fmt.Sprintf(" AND assigned_to = $%d", pos)
		args = append(args, filters.AssignedTo)
	}
	var total int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count putaway tasks: %w", err)
	}
	return total, nil
}
