package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todolist-api/internal/auth"
	"github.com/yukikurage/todolist-api/internal/constants"
	apierrors "github.com/yukikurage/todolist-api/internal/errors"
	"github.com/yukikurage/todolist-api/internal/utils"
)

// requireSubject returns the caller's subject, or writes a 401 and returns
// false. It runs before any data access.
func requireSubject(c *gin.Context) (string, bool) {
	subject := auth.SubjectFromHeader(c.GetHeader("Authorization"))
	if subject == "" {
		apierrors.Unauthorized(c, "")
		return "", false
	}
	return subject, true
}

// requireID parses the :id path parameter, or writes a 400 and returns false.
func requireID(c *gin.Context) (uint64, bool) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}

// internalError logs the cause and sends the generic 500 body.
func internalError(c *gin.Context, logger *slog.Logger, msg string, err error) {
	logger.Error(msg,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"request_id", c.GetString(constants.ContextKeyRequestID),
		"error", err,
	)
	apierrors.InternalError(c)
}
