package model

type CreateTodoDTO struct {
	Title string `json:"title"`
}

// UpdateTodoDTO carries an explicit value for the completed flag. A nil
// Completed means the request body was empty and the flag should be flipped.
type UpdateTodoDTO struct {
	Completed *bool `json:"completed"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
