package main

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "todo-api/configs"
	_ "todo-api/docs"
	"todo-api/internal/application/controller"
	"todo-api/internal/application/middleware"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/usecase/health"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/resource"
)

// @title todo-api
// @description Authoritative CRUD over an in-memory todo collection.
// @BasePath /api
func main() {
	log.Info(msg.GetMessage("app.start"))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)
	api := e.Group(resource.GetStringOrDefault("app.server.context-path", "/api"))

	// Init TodoGateway
	todoGateway := db.NewMemoryTodoGateway()

	// Init UseCase
	todoUseCase := todo.NewTodoUseCase(todoGateway)
	healthUseCase := health.NewHealthUseCase(todoGateway)

	// Init Controller
	todoController := controller.NewTodoController(api, todoUseCase)
	healthController := controller.NewHealthController(api, healthUseCase)

	// Init Routes
	todoController.InitTodoRoutes()
	healthController.InitHealthRoutes()
	api.GET("/swagger/*", echoSwagger.WrapHandler)

	// Start Routes
	port := resource.GetStringOrDefault("app.server.port", "8080")
	log.Info(msg.GetMessage("app.started", port))
	e.Logger.Fatal(e.Start(":" + port))
}
