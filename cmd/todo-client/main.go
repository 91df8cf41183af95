package main

import (
	tea "github.com/charmbracelet/bubbletea"

	_ "todo-api/configs"
	"todo-api/internal/client/api"
	"todo-api/internal/client/tui"
	"todo-api/internal/client/viewmodel"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/resource"
)

func main() {
	baseURL := resource.GetStringOrDefault("app.client.base-url", "http://localhost:8080")
	contextPath := resource.GetStringOrDefault("app.server.context-path", "/api")
	log.Info(msg.GetMessage("app.client.start", baseURL))

	client := api.NewClient(baseURL+contextPath, api.ClientOptions{
		ConnectionTimeout: resource.GetDuration("app.client.connection-timeout"),
		ReadTimeout:       resource.GetDuration("app.client.read-timeout"),
	})
	vm := viewmodel.New(client)

	p := tea.NewProgram(tui.NewModel(vm), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("client exited with error: %v", err)
	}
}
