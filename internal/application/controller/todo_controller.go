package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/pkg/util/numberutils"
)

type TodoController struct {
	api     *echo.Group
	useCase todo.UseCase
}

func NewTodoController(api *echo.Group, useCase todo.UseCase) *TodoController {
	return &TodoController{api: api, useCase: useCase}
}

// InitTodoRoutes initializes todo routes
func (controller *TodoController) InitTodoRoutes() {
	controller.api.GET("/todos", controller.FindAll)
	controller.api.POST("/todos", controller.Create)
	controller.api.PATCH("/todos/:id", controller.Update)
	controller.api.PUT("/todos/:id", controller.Update)
	controller.api.DELETE("/todos/:id", controller.Delete)
}

// FindAll godoc
// @Summary List all todos
// @Description Retrieve the full ordered todo collection
// @Tags todos
// @Produce json
// @Success 200 {array} entity.Todo "Todo collection, possibly empty"
// @Router /todos [get]
func (controller *TodoController) FindAll(c echo.Context) error {
	todos, err := controller.useCase.FindAll()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, todos)
}

// Create godoc
// @Summary Create a todo
// @Description Create a new todo from the given title
// @Tags todos
// @Accept json
// @Produce json
// @Param todo body model.CreateTodoDTO true "Todo creation data"
// @Success 201 {object} entity.Todo "Created todo"
// @Failure 400 {object} model.ErrorResponse "Empty or missing title"
// @Router /todos [post]
func (controller *TodoController) Create(c echo.Context) error {
	var dto model.CreateTodoDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request body"})
	}

	created, err := controller.useCase.Create(dto)
	if err != nil {
		if errors.Is(err, model.ErrEmptyTitle) {
			return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Toggle or set the completed flag
// @Description With an empty body the completed flag is flipped; a body with a completed field sets it explicitly
// @Tags todos
// @Accept json
// @Produce json
// @Param id path int true "Todo id"
// @Param todo body model.UpdateTodoDTO false "Explicit completed value"
// @Success 200 {object} entity.Todo "Updated todo"
// @Failure 400 {object} model.ErrorResponse "Malformed id or body"
// @Failure 404 {object} model.ErrorResponse "Todo not found"
// @Router /todos/{id} [patch]
func (controller *TodoController) Update(c echo.Context) error {
	id, err := numberutils.ToInt64WithError(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid todo id"})
	}

	var dto model.UpdateTodoDTO
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&dto); err != nil {
			return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request body"})
		}
	}

	updated, err := controller.useCase.Update(id, dto)
	if err != nil {
		if errors.Is(err, model.ErrTodoNotFound) {
			return c.JSON(http.StatusNotFound, model.ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a todo
// @Description Remove a todo by id
// @Tags todos
// @Param id path int true "Todo id"
// @Success 204 "Todo deleted"
// @Failure 400 {object} model.ErrorResponse "Malformed id"
// @Failure 404 {object} model.ErrorResponse "Todo not found"
// @Router /todos/{id} [delete]
func (controller *TodoController) Delete(c echo.Context) error {
	id, err := numberutils.ToInt64WithError(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid todo id"})
	}

	if err := controller.useCase.DeleteByID(id); err != nil {
		if errors.Is(err, model.ErrTodoNotFound) {
			return c.JSON(http.StatusNotFound, model.ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
