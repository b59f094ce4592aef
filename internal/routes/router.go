// Package routes wires middleware and handlers into a gin engine.
package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/todolist-api/internal/errors"
	"github.com/yukikurage/todolist-api/internal/handlers"
	"github.com/yukikurage/todolist-api/internal/middleware"
)

// Dependencies holds everything the router needs.
type Dependencies struct {
	BasePath    string
	CORSOrigins []string
	Logger      *slog.Logger
	Verifier    middleware.TokenVerifier

	AuthHandler *handlers.AuthHandler
	TodoHandler *handlers.TodoHandler
	TagHandler  *handlers.TagHandler
}

// NewRouter builds the engine with all API routes registered.
func NewRouter(deps Dependencies) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		deps.Logger.Error("panic recovered",
			"path", c.Request.URL.Path,
			"panic", recovered,
		)
		apierrors.InternalError(c)
		c.Abort()
	}))

	config := cors.DefaultConfig()
	config.AllowOrigins = deps.CORSOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	config.ExposeHeaders = []string{"Location", "X-Request-ID"}
	config.AllowCredentials = true
	config.MaxAge = 12 * time.Hour
	r.Use(cors.New(config))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Todo List API is running",
		})
	})

	requireAuth := middleware.RequireAuth(deps.Verifier, deps.Logger)

	api := r.Group(deps.BasePath)
	{
		// Auth routes (public except profile)
		auth := api.Group("/auth")
		{
			auth.POST("/login", deps.AuthHandler.Login)
			auth.POST("/register", deps.AuthHandler.Register)
			auth.POST("/confirm", deps.AuthHandler.Confirm)
			auth.POST("/refresh", deps.AuthHandler.Refresh)
			auth.GET("/profile", requireAuth, deps.AuthHandler.Profile)
		}

		todos := api.Group("/todos")
		todos.Use(requireAuth)
		{
			todos.GET("", deps.TodoHandler.ListTodos)
			todos.POST("", deps.TodoHandler.CreateTodo)
			todos.GET("/:id", deps.TodoHandler.GetTodo)
			todos.PUT("/:id", deps.TodoHandler.UpdateTodo)
			todos.DELETE("/:id", deps.TodoHandler.DeleteTodo)
		}

		tags := api.Group("/tags")
		tags.Use(requireAuth)
		{
			tags.GET("", deps.TagHandler.ListTags)
			tags.POST("", deps.TagHandler.CreateTag)
			tags.GET("/:id", deps.TagHandler.GetTag)
			tags.PUT("/:id", deps.TagHandler.UpdateTag)
			tags.DELETE("/:id", deps.TagHandler.DeleteTag)
		}
	}

	return r
}
