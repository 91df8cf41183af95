package api

import (
	"fmt"
	"time"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
	pkghttp "todo-api/pkg/http"
)

// TodoAPI is the client-side view of the todo HTTP surface.
type TodoAPI interface {
	List() ([]entity.Todo, error)
	Create(title string) (*entity.Todo, error)
	Toggle(id int64) (*entity.Todo, error)
	Delete(id int64) error
}

type Client struct {
	http *pkghttp.Client
}

type ClientOptions struct {
	ConnectionTimeout time.Duration
	ReadTimeout       time.Duration
}

// NewClient creates a TodoAPI over the given base URL, which must include the
// server context path (e.g. http://localhost:8080/api). Retries are disabled.
func NewClient(baseURL string, opts ClientOptions) *Client {
	return &Client{
		http: pkghttp.NewHttpClient(baseURL, pkghttp.ClientOptions{
			ConnectionTimeout: opts.ConnectionTimeout,
			ReadTimeout:       opts.ReadTimeout,
			Logger:            pkghttp.ZapHTTPLogger{},
		}),
	}
}

func (c *Client) List() ([]entity.Todo, error) {
	var todos []entity.Todo
	var errResp model.ErrorResponse

	status, err := c.http.Get("/todos", nil, nil, &todos, &errResp)
	if err != nil {
		return nil, classify(status, errResp.Error, err)
	}
	if todos == nil {
		todos = make([]entity.Todo, 0)
	}
	return todos, nil
}

func (c *Client) Create(title string) (*entity.Todo, error) {
	var todo entity.Todo
	var errResp model.ErrorResponse

	dto := model.CreateTodoDTO{Title: title}
	status, err := c.http.Post("/todos", nil, nil, dto, &todo, &errResp)
	if err != nil {
		return nil, classify(status, errResp.Error, err)
	}
	return &todo, nil
}

func (c *Client) Toggle(id int64) (*entity.Todo, error) {
	var todo entity.Todo
	var errResp model.ErrorResponse

	status, err := c.http.Patch(fmt.Sprintf("/todos/%d", id), nil, nil, nil, &todo, &errResp)
	if err != nil {
		return nil, classify(status, errResp.Error, err)
	}
	return &todo, nil
}

func (c *Client) Delete(id int64) error {
	var errResp model.ErrorResponse

	status, err := c.http.Delete(fmt.Sprintf("/todos/%d", id), nil, nil, nil, nil, &errResp)
	if err != nil {
		return classify(status, errResp.Error, err)
	}
	return nil
}
