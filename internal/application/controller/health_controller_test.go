package controller

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/health"
)

func TestCheckHealth(t *testing.T) {
	e := echo.New()
	gateway := db.NewMemoryTodoGateway()
	_, err := gateway.Create("one")
	require.NoError(t, err)

	NewHealthController(e.Group("/api"), health.NewHealthUseCase(gateway)).InitHealthRoutes()

	rec := doJSON(e, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, model.StatusUp, resp.Status)
	assert.Equal(t, model.StatusUp, resp.Store.Status)
	assert.Equal(t, "1", resp.Store.Details["todos"])
}
