package todo

import (
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type UseCase interface {
	FindAll() ([]entity.Todo, error)
	Create(dto model.CreateTodoDTO) (*entity.Todo, error)
	Update(id int64, dto model.UpdateTodoDTO) (*entity.Todo, error)
	DeleteByID(id int64) error
}
