package repository

import "github.com/jhoicas/Recepcion-api/internal/domain/entity"

// PutawayTaskFilters filtros opcionales para listar tareas de putaway.
type PutawayTaskFilters struct {
	Status     string
	AssignedTo string
}

// PutawayTaskRepository define el puerto de persistencia para PutawayTask (DIP).
type PutawayTaskRepository interface {
	Create(task *entity.PutawayTask) error
	GetByID(id string) (*entity.PutawayTask, error)
	// GetForUpdate bloquea la fila de la tarea (SELECT FOR UPDATE) para
	// serializar reportes de avance concurrentes sobre la misma tarea.
	GetForUpdate(id string) (*entity.PutawayTask, error)
	Update(task *entity.PutawayTask) error
	List(filters PutawayTaskFilters, limit, offset int) ([]*entity.PutawayTask, error)
	Count(filters PutawayTaskFilters) (int, error)
}
