package todo

import (
	"strings"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
)

type todoUseCase struct {
	gateway db.TodoGateway
}

func NewTodoUseCase(gateway db.TodoGateway) UseCase {
	return &todoUseCase{
		gateway: gateway,
	}
}

func (uc *todoUseCase) FindAll() ([]entity.Todo, error) {
	return uc.gateway.FindAll()
}

func (uc *todoUseCase) Create(dto model.CreateTodoDTO) (*entity.Todo, error) {
	title := strings.TrimSpace(dto.Title)
	if title == "" {
		return nil, model.ErrEmptyTitle
	}
	return uc.gateway.Create(title)
}

// Update flips the completed flag when the DTO carries no value, or sets it
// to the given value otherwise. No other field is mutable.
func (uc *todoUseCase) Update(id int64, dto model.UpdateTodoDTO) (*entity.Todo, error) {
	if dto.Completed == nil {
		return uc.gateway.Toggle(id)
	}
	return uc.gateway.SetCompleted(id, *dto.Completed)
}

func (uc *todoUseCase) DeleteByID(id int64) error {
	return uc.gateway.DeleteByID(id)
}
