package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

func newClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL+"/api", ClientOptions{
		ConnectionTimeout: time.Second,
		ReadTimeout:       time.Second,
	})
}

func TestListNeverReturnsNilSlice(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	})

	todos, err := client.List()
	require.NoError(t, err)
	assert.NotNil(t, todos)
	assert.Len(t, todos, 0)
}

func TestCreateSendsTitleAndDecodesTodo(t *testing.T) {
	var gotMethod, gotPath string
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		var dto model.CreateTodoDTO
		_ = json.NewDecoder(r.Body).Decode(&dto)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(entity.Todo{ID: 1, Title: dto.Title})
	})

	todo, err := client.Create("write tests")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/todos", gotPath)
	assert.Equal(t, "write tests", todo.Title)
}

func TestToggleInterpolatesIDIntoPath(t *testing.T) {
	var gotMethod, gotPath string
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(entity.Todo{ID: 17, Completed: true})
	})

	todo, err := client.Toggle(17)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/api/todos/17", gotPath)
	assert.True(t, todo.Completed)
}

func TestErrorClassification(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/todos":
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(model.ErrorResponse{Error: "title must not be empty"})
		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(model.ErrorResponse{Error: "todo not found"})
		}
	})

	_, err := client.Create("")
	assert.True(t, IsValidation(err))
	assert.Equal(t, http.StatusBadRequest, StatusOf(err))
	assert.Equal(t, "title must not be empty", err.Error())

	err = client.Delete(9)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsTransport(err))
}

func TestTransportErrorClassification(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL+"/api", ClientOptions{
		ConnectionTimeout: time.Second,
		ReadTimeout:       time.Second,
	})

	_, err := client.List()
	assert.True(t, IsTransport(err))
	assert.Equal(t, 0, StatusOf(err))
}
