package db

import (
	"sync"
	"time"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type memoryTodoGateway struct {
	mu     sync.Mutex
	todos  []entity.Todo
	nextID int64
}

// NewMemoryTodoGateway creates an in-memory TodoGateway. The id counter is
// monotonic for the lifetime of the gateway, so deleting records never makes
// an id available again.
func NewMemoryTodoGateway() TodoGateway {
	return &memoryTodoGateway{
		todos:  make([]entity.Todo, 0),
		nextID: 1,
	}
}

func (g *memoryTodoGateway) FindAll() ([]entity.Todo, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	// Copy so callers never alias the guarded slice.
	out := make([]entity.Todo, len(g.todos))
	copy(out, g.todos)
	return out, nil
}

func (g *memoryTodoGateway) FindByID(id int64) (*entity.Todo, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	i := g.indexOf(id)
	if i < 0 {
		return nil, model.ErrTodoNotFound
	}
	todo := g.todos[i]
	return &todo, nil
}

func (g *memoryTodoGateway) Create(title string) (*entity.Todo, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	todo := entity.Todo{
		ID:        g.nextID,
		Title:     title,
		Completed: false,
		CreatedAt: time.Now().UTC(),
	}
	g.nextID++
	g.todos = append(g.todos, todo)
	return &todo, nil
}

func (g *memoryTodoGateway) Toggle(id int64) (*entity.Todo, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	i := g.indexOf(id)
	if i < 0 {
		return nil, model.ErrTodoNotFound
	}
	g.todos[i].Completed = !g.todos[i].Completed
	todo := g.todos[i]
	return &todo, nil
}

func (g *memoryTodoGateway) SetCompleted(id int64, completed bool) (*entity.Todo, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	i := g.indexOf(id)
	if i < 0 {
		return nil, model.ErrTodoNotFound
	}
	g.todos[i].Completed = completed
	todo := g.todos[i]
	return &todo, nil
}

func (g *memoryTodoGateway) DeleteByID(id int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	i := g.indexOf(id)
	if i < 0 {
		return model.ErrTodoNotFound
	}
	g.todos = append(g.todos[:i], g.todos[i+1:]...)
	return nil
}

func (g *memoryTodoGateway) Count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.todos)
}

// indexOf must be called with the mutex held.
func (g *memoryTodoGateway) indexOf(id int64) int {
	for i := range g.todos {
		if g.todos[i].ID == id {
			return i
		}
	}
	return -1
}
