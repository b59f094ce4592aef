package dto

import (
	"time"

	"github.com/yukikurage/todolist-api/internal/models"
)

// CreateTodoRequest is the body of POST /todos
type CreateTodoRequest struct {
	Description string    `json:"description" binding:"required"`
	DueDate     *DateTime `json:"dueDate"`
	TagIDs      []uint64  `json:"tagIds"`
}

// UpdateTodoRequest is the body of PUT /todos/:id. Absent fields are left
// unchanged; a present tagIds replaces the todo's tags.
type UpdateTodoRequest struct {
	Description *string   `json:"description"`
	IsDone      *bool     `json:"isDone"`
	DueDate     *DateTime `json:"dueDate"`
	TagIDs      *[]uint64 `json:"tagIds"`
}

// TodoResponse represents a todo in API responses
type TodoResponse struct {
	ID          uint64        `json:"todoId"`
	Description string        `json:"description"`
	IsDone      bool          `json:"isDone"`
	DueDate     *time.Time    `json:"dueDate"`
	CreateAt    time.Time     `json:"createAt"`
	UpdateAt    time.Time     `json:"updateAt"`
	Tags        []TagResponse `json:"tags"`
}

// ToTodoResponse converts a Todo model to TodoResponse
func ToTodoResponse(todo models.Todo) TodoResponse {
	return TodoResponse{
		ID:          todo.ID,
		Description: todo.Description,
		IsDone:      todo.IsDone,
		DueDate:     todo.DueDate,
		CreateAt:    todo.CreatedAt,
		UpdateAt:    todo.UpdatedAt,
		Tags:        ToTagResponses(todo.Tags),
	}
}

// ToTodoResponses converts a slice of todos, never returning nil
func ToTodoResponses(todos []models.Todo) []TodoResponse {
	out := make([]TodoResponse, len(todos))
	for i, todo := range todos {
		out[i] = ToTodoResponse(todo)
	}
	return out
}
