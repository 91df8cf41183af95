package viewmodel

import (
	"errors"
	"fmt"
	"sync"

	"todo-api/internal/client/api"
	"todo-api/internal/domain/entity"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

// CacheKey names the single cache entry this view model maintains.
const CacheKey = "todos"

// Contractual UI strings. Front ends must surface these verbatim.
const (
	LoadErrorText = "Failed to load todos"
	EmptyText     = "No todos yet"
)

// State is the lifecycle of the cached todo list.
type State int

const (
	StateLoading State = iota
	StateReady
	StateError
)

// Mutation identifies a mutation kind for the in-flight guard.
type Mutation string

const (
	MutationCreate Mutation = "create"
	MutationToggle Mutation = "toggle"
	MutationDelete Mutation = "delete"
)

// ErrRequestInFlight is returned when a mutation of the same kind is already
// outstanding; the trigger should be treated as a no-op.
var ErrRequestInFlight = errors.New("request already in flight")

// ViewModel keeps a client-side cached copy of the server's todo list and
// reconciles it after every mutation. The server stays the source of truth;
// the cache is only ever replaced wholesale from a List response.
type ViewModel struct {
	api api.TodoAPI

	mu       sync.Mutex
	state    State
	todos    []entity.Todo
	loadErr  error
	loadGen  uint64
	inFlight map[Mutation]bool
}

func New(todoAPI api.TodoAPI) *ViewModel {
	return &ViewModel{
		api:      todoAPI,
		state:    StateLoading,
		inFlight: make(map[Mutation]bool),
	}
}

// Load fetches the list and replaces the cache. Calls are generation-stamped:
// when several loads overlap, only the most recently issued one may write the
// cache, so a stale response never overwrites newer data.
func (vm *ViewModel) Load() {
	vm.mu.Lock()
	vm.loadGen++
	gen := vm.loadGen
	vm.mu.Unlock()

	todos, err := vm.api.List()

	vm.mu.Lock()
	defer vm.mu.Unlock()

	if gen != vm.loadGen {
		log.Debugw("discarding stale todo list response", "generation", gen, "latest", vm.loadGen)
		return
	}

	if err != nil {
		log.Errorw(msg.GetMessage("app.client.load-fail", err.Error()),
			"cache_key", CacheKey, "status", api.StatusOf(err), "transport", api.IsTransport(err))
		vm.state = StateError
		vm.loadErr = err
		return
	}

	vm.state = StateReady
	vm.todos = todos
	vm.loadErr = nil
}

// Create adds a todo with the given title, then re-syncs the cache.
// Validation failures are surfaced to the caller for inline display.
func (vm *ViewModel) Create(title string) error {
	if !vm.begin(MutationCreate) {
		return ErrRequestInFlight
	}
	defer vm.end(MutationCreate)

	if _, err := vm.api.Create(title); err != nil {
		if api.IsValidation(err) {
			return err
		}
		return vm.mutationFailed(MutationCreate, err)
	}

	vm.Load()
	return nil
}

// Toggle flips the completed flag of the given todo, then re-syncs the cache.
// A 404 is non-fatal: the record was already gone, so the cache is re-synced
// and no error is surfaced.
func (vm *ViewModel) Toggle(id int64) error {
	if !vm.begin(MutationToggle) {
		return ErrRequestInFlight
	}
	defer vm.end(MutationToggle)

	if _, err := vm.api.Toggle(id); err != nil {
		if api.IsNotFound(err) {
			log.Warnw(msg.GetMessage("app.client.resync", id), "mutation", MutationToggle)
			vm.Load()
			return nil
		}
		return vm.mutationFailed(MutationToggle, err)
	}

	vm.Load()
	return nil
}

// Delete removes the given todo, then re-syncs the cache. A 404 is treated
// like Toggle's.
func (vm *ViewModel) Delete(id int64) error {
	if !vm.begin(MutationDelete) {
		return ErrRequestInFlight
	}
	defer vm.end(MutationDelete)

	if err := vm.api.Delete(id); err != nil {
		if api.IsNotFound(err) {
			log.Warnw(msg.GetMessage("app.client.resync", id), "mutation", MutationDelete)
			vm.Load()
			return nil
		}
		return vm.mutationFailed(MutationDelete, err)
	}

	vm.Load()
	return nil
}

// InFlight reports whether a mutation of the given kind is outstanding.
// Front ends use this to disable the triggering control.
func (vm *ViewModel) InFlight(m Mutation) bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.inFlight[m]
}

func (vm *ViewModel) begin(m Mutation) bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.inFlight[m] {
		return false
	}
	vm.inFlight[m] = true
	return true
}

func (vm *ViewModel) end(m Mutation) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	delete(vm.inFlight, m)
}

func (vm *ViewModel) mutationFailed(m Mutation, err error) error {
	log.Errorw(msg.GetMessage("app.client.mutation-fail", string(m), api.StatusOf(err), err.Error()),
		"mutation", m, "status", api.StatusOf(err), "transport", api.IsTransport(err))
	return err
}

// Snapshot is an immutable view of the cache for rendering.
type Snapshot struct {
	State State
	Todos []entity.Todo
	Err   error
}

// Snapshot returns a copy of the current cache state.
func (vm *ViewModel) Snapshot() Snapshot {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	todos := make([]entity.Todo, len(vm.todos))
	copy(todos, vm.todos)
	return Snapshot{State: vm.state, Todos: todos, Err: vm.loadErr}
}

// ItemsLeft counts todos not yet completed. It is derived from the cached
// slice on every call so it can never drift from the list.
func (s Snapshot) ItemsLeft() int {
	n := 0
	for _, t := range s.Todos {
		if !t.Completed {
			n++
		}
	}
	return n
}

// CompletedCount counts completed todos.
func (s Snapshot) CompletedCount() int {
	return len(s.Todos) - s.ItemsLeft()
}

// ItemsLeftLabel renders the active-count label, e.g. "2 items left".
func (s Snapshot) ItemsLeftLabel() string {
	n := s.ItemsLeft()
	if n == 1 {
		return "1 item left"
	}
	return fmt.Sprintf("%d items left", n)
}

// CompletedLabel renders the completed-count label, e.g. "2 completed".
func (s Snapshot) CompletedLabel() string {
	return fmt.Sprintf("%d completed", s.CompletedCount())
}

// Empty reports whether the cache holds a present but empty list.
func (s Snapshot) Empty() bool {
	return s.State == StateReady && len(s.Todos) == 0
}
