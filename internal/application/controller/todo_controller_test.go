package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/todo"
)

// newTestServer wires a fresh echo instance with its own in-memory gateway so
// tests never share state.
func newTestServer() (*echo.Echo, db.TodoGateway) {
	e := echo.New()
	gateway := db.NewMemoryTodoGateway()
	useCase := todo.NewTodoUseCase(gateway)
	NewTodoController(e.Group("/api"), useCase).InitTodoRoutes()
	return e, gateway
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestListEmptyReturnsEmptyArray(t *testing.T) {
	e, _ := newTestServer()

	rec := doJSON(e, http.MethodGet, "/api/todos", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestCreateTodo(t *testing.T) {
	e, _ := newTestServer()

	rec := doJSON(e, http.MethodPost, "/api/todos", `{"title":"Test Todo"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created entity.Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Test Todo", created.Title)
	assert.False(t, created.Completed)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateTodoEmptyTitle(t *testing.T) {
	e, gateway := newTestServer()

	for _, body := range []string{`{"title":""}`, `{"title":"   "}`, `{}`} {
		rec := doJSON(e, http.MethodPost, "/api/todos", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)

		var errResp model.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
		assert.NotEmpty(t, errResp.Error)
	}
	assert.Equal(t, 0, gateway.Count())
}

func TestToggleTodo(t *testing.T) {
	e, _ := newTestServer()
	doJSON(e, http.MethodPost, "/api/todos", `{"title":"toggle me"}`)

	rec := doJSON(e, http.MethodPatch, "/api/todos/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var toggled entity.Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &toggled))
	assert.True(t, toggled.Completed)

	// PUT routes to the same handler.
	rec = doJSON(e, http.MethodPut, "/api/todos/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &toggled))
	assert.False(t, toggled.Completed)
}

func TestUpdateTodoExplicitCompleted(t *testing.T) {
	e, _ := newTestServer()
	doJSON(e, http.MethodPost, "/api/todos", `{"title":"set me"}`)

	rec := doJSON(e, http.MethodPatch, "/api/todos/1", `{"completed":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated entity.Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.True(t, updated.Completed)

	// Explicit value is idempotent.
	rec = doJSON(e, http.MethodPatch, "/api/todos/1", `{"completed":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.True(t, updated.Completed)
}

func TestToggleUnknownTodo(t *testing.T) {
	e, _ := newTestServer()

	rec := doJSON(e, http.MethodPatch, "/api/todos/42", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var errResp model.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.NotEmpty(t, errResp.Error)
}

func TestUpdateInvalidID(t *testing.T) {
	e, _ := newTestServer()

	rec := doJSON(e, http.MethodPatch, "/api/todos/not-a-number", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteTodo(t *testing.T) {
	e, gateway := newTestServer()
	doJSON(e, http.MethodPost, "/api/todos", `{"title":"delete me"}`)

	rec := doJSON(e, http.MethodDelete, "/api/todos/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, 0, gateway.Count())

	// Second delete is a 404, not a crash.
	rec = doJSON(e, http.MethodDelete, "/api/todos/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreatedAtSerializedAsISO8601(t *testing.T) {
	e, _ := newTestServer()
	doJSON(e, http.MethodPost, "/api/todos", `{"title":"timestamped"}`)

	rec := doJSON(e, http.MethodGet, "/api/todos", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var raw []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.Len(t, raw, 1)
	assert.Contains(t, string(raw[0]["createdAt"]), "T")
	assert.JSONEq(t, `false`, string(raw[0]["completed"]))
}
