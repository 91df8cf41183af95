package db

import "todo-api/internal/domain/entity"

// TodoGateway owns the todo collection. Implementations must keep ids unique
// for the lifetime of the process and preserve insertion order in FindAll.
type TodoGateway interface {
	FindAll() ([]entity.Todo, error)
	FindByID(id int64) (*entity.Todo, error)
	Create(title string) (*entity.Todo, error)
	Toggle(id int64) (*entity.Todo, error)
	SetCompleted(id int64, completed bool) (*entity.Todo, error)
	DeleteByID(id int64) error
	Count() int
}
