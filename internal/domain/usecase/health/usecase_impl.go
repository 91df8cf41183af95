package health

import (
	"strconv"

	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
)

type healthUseCase struct {
	gateway db.TodoGateway
}

func NewHealthUseCase(gateway db.TodoGateway) UseCase {
	return &healthUseCase{
		gateway: gateway,
	}
}

func (uc *healthUseCase) CheckHealth() model.HealthResponse {
	storeStatus := model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"type":  "memory",
			"todos": strconv.Itoa(uc.gateway.Count()),
		},
	}

	return model.HealthResponse{
		Status: model.StatusUp,
		Store:  storeStatus,
	}
}
