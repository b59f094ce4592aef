package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todolist-api/internal/dto"
	apierrors "github.com/yukikurage/todolist-api/internal/errors"
	"github.com/yukikurage/todolist-api/internal/services"
)

// TodoHandler handles todo-related HTTP requests
type TodoHandler struct {
	todoService *services.TodoService
	logger      *slog.Logger
}

// NewTodoHandler creates a new TodoHandler
func NewTodoHandler(todoService *services.TodoService, logger *slog.Logger) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
		logger:      logger,
	}
}

// ListTodos returns the caller's todos
func (h *TodoHandler) ListTodos(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}

	todos, err := h.todoService.List(c.Request.Context(), subject)
	if err != nil {
		internalError(c, h.logger, "list todos", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoResponses(todos))
}

// GetTodo returns a single todo
func (h *TodoHandler) GetTodo(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}
	id, ok := requireID(c)
	if !ok {
		return
	}

	todo, err := h.todoService.Get(c.Request.Context(), subject, id)
	if err != nil {
		h.respondTodoError(c, "get todo", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoResponse(*todo))
}

// CreateTodo creates a todo and returns it with its location
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}

	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindingError(c, err)
		return
	}

	todo, err := h.todoService.Create(c.Request.Context(), subject, services.CreateTodoInput{
		Description: req.Description,
		DueDate:     req.DueDate.Ptr(),
		TagIDs:      req.TagIDs,
	})
	if err != nil {
		h.respondTodoError(c, "create todo", err)
		return
	}

	c.Header("Location", fmt.Sprintf("%s/%d", c.Request.URL.Path, todo.ID))
	c.JSON(http.StatusCreated, dto.ToTodoResponse(*todo))
}

// UpdateTodo applies a partial update
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}
	id, ok := requireID(c)
	if !ok {
		return
	}

	var req dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindingError(c, err)
		return
	}

	err := h.todoService.Update(c.Request.Context(), subject, id, services.UpdateTodoInput{
		Description: req.Description,
		IsDone:      req.IsDone,
		DueDate:     req.DueDate.Ptr(),
		TagIDs:      req.TagIDs,
	})
	if err != nil {
		h.respondTodoError(c, "update todo", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteTodo removes a todo
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}
	id, ok := requireID(c)
	if !ok {
		return
	}

	if err := h.todoService.Delete(c.Request.Context(), subject, id); err != nil {
		h.respondTodoError(c, "delete todo", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TodoHandler) respondTodoError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, services.ErrTodoNotFound):
		apierrors.NotFound(c, "Todo not found")
	case errors.Is(err, services.ErrDescriptionRequired):
		apierrors.BadRequestWithDetails(c, "Validation failed", map[string]string{
			"description": "is required",
		})
	default:
		internalError(c, h.logger, op, err)
	}
}
