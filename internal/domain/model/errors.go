package model

import "errors"

var (
	// ErrEmptyTitle is returned by Create when the title is empty after trimming.
	ErrEmptyTitle = errors.New("title must not be empty")

	// ErrTodoNotFound is returned when the addressed todo id does not exist.
	ErrTodoNotFound = errors.New("todo not found")
)
