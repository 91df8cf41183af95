package tui

import (
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/client/viewmodel"
	"todo-api/internal/domain/entity"
)

// stubAPI serves a mutable in-memory list without a server.
type stubAPI struct {
	mu      sync.Mutex
	todos   []entity.Todo
	listErr error
}

func (s *stubAPI) List() ([]entity.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]entity.Todo, len(s.todos))
	copy(out, s.todos)
	return out, nil
}

func (s *stubAPI) Create(title string) (*entity.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	todo := entity.Todo{ID: int64(len(s.todos) + 1), Title: title}
	s.todos = append(s.todos, todo)
	return &todo, nil
}

func (s *stubAPI) Toggle(id int64) (*entity.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos[i].Completed = !s.todos[i].Completed
			return &s.todos[i], nil
		}
	}
	return nil, nil
}

func (s *stubAPI) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *stubAPI) set(todos []entity.Todo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.todos = todos
}

// loadedModel builds a model whose view model already holds the stub's list.
func loadedModel(t *testing.T, stub *stubAPI) Model {
	t.Helper()
	vm := viewmodel.New(stub)
	vm.Load()

	m := NewModel(vm)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(Model)
	updated, _ = m.Update(syncMsg{})
	return updated.(Model)
}

func TestViewRendersItemsLeft(t *testing.T) {
	stub := &stubAPI{todos: []entity.Todo{
		{ID: 1, Title: "a", Completed: false},
		{ID: 2, Title: "b", Completed: false},
		{ID: 3, Title: "c", Completed: true},
	}}
	m := loadedModel(t, stub)

	view := m.View()
	assert.Contains(t, view, "2 items left")
}

func TestViewRendersCompletedCount(t *testing.T) {
	stub := &stubAPI{todos: []entity.Todo{
		{ID: 1, Title: "a", Completed: true},
		{ID: 2, Title: "b", Completed: true},
		{ID: 3, Title: "c", Completed: false},
	}}
	m := loadedModel(t, stub)

	view := m.View()
	assert.Contains(t, view, "2 completed")
}

func TestViewRendersEmptyState(t *testing.T) {
	stub := &stubAPI{}
	m := loadedModel(t, stub)

	view := m.View()
	assert.Contains(t, view, viewmodel.EmptyText)

	// Once a todo exists the empty indicator disappears.
	stub.set([]entity.Todo{{ID: 1, Title: "present"}})
	m.vm.Load()
	updated, _ := m.Update(syncMsg{})
	m = updated.(Model)

	view = m.View()
	assert.NotContains(t, view, viewmodel.EmptyText)
	assert.Contains(t, view, "present")
}

func TestViewRendersLoadFailure(t *testing.T) {
	stub := &stubAPI{listErr: assert.AnError}
	m := loadedModel(t, stub)

	view := m.View()
	assert.Greater(t, strings.Count(view, viewmodel.LoadErrorText), 0)
}

func TestToggleKeyIssuesCommand(t *testing.T) {
	stub := &stubAPI{todos: []entity.Todo{{ID: 1, Title: "a"}}}
	m := loadedModel(t, stub)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	require.NotNil(t, cmd, "toggle should issue a command when nothing is in flight")
}

func TestAddInputValidation(t *testing.T) {
	stub := &stubAPI{}
	m := loadedModel(t, stub)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m = updated.(Model)
	require.True(t, m.adding)

	// Enter with an empty title stays in add mode with a validation message.
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	assert.Nil(t, cmd)
	assert.True(t, m.adding)
	assert.Contains(t, m.View(), "Title cannot be empty")
}
