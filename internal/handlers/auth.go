package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todolist-api/internal/auth"
	"github.com/yukikurage/todolist-api/internal/dto"
	apierrors "github.com/yukikurage/todolist-api/internal/errors"
	"github.com/yukikurage/todolist-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Login exchanges credentials for tokens.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.LoginResponse{
			Success: false,
			Message: "Identifier and password are required",
		})
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		var authErr *services.AuthError
		if errors.As(err, &authErr) && authErr.Rejected() {
			c.JSON(http.StatusBadRequest, dto.LoginResponse{
				Success: false,
				Message: authErr.Message,
			})
			return
		}
		internalError(c, h.logger, "login", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLoginResponse(result))
}

// Register creates an unconfirmed account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindingError(c, err)
		return
	}

	err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Password:   req.Password,
		Name:       req.Name,
		Identifier: req.Identifier,
		Contact:    req.Contact,
	})
	if err != nil {
		h.respondAuthError(c, "register", err)
		return
	}

	c.JSON(http.StatusOK, dto.RegisterResponse{
		Message:    "Registration successful. Check your phone for the confirmation code.",
		Identifier: req.Identifier,
	})
}

// Confirm completes a registration.
func (h *AuthHandler) Confirm(c *gin.Context) {
	var req dto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindingError(c, err)
		return
	}

	if err := h.authService.Confirm(c.Request.Context(), req.Identifier, req.ConfirmationCode); err != nil {
		h.respondAuthError(c, "confirm", err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Account confirmed"})
}

// Refresh issues new access and id tokens.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindingError(c, err)
		return
	}

	result, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.respondAuthError(c, "refresh", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRefreshResponse(result))
}

// Profile returns the caller's provider-side attributes.
func (h *AuthHandler) Profile(c *gin.Context) {
	token, ok := auth.BearerToken(c.GetHeader("Authorization"))
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	info, err := h.authService.GetProfile(c.Request.Context(), token)
	if err != nil {
		var authErr *services.AuthError
		if errors.As(err, &authErr) {
			switch authErr.Kind {
			case services.FailureInvalidCredentials:
				apierrors.Unauthorized(c, authErr.Message)
				return
			case services.FailureUserNotFound:
				apierrors.NotFound(c, authErr.Message)
				return
			}
		}
		h.respondAuthError(c, "get profile", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(info))
}

// respondAuthError sends provider rejections as 400 with the provider's
// message. Failures that never reached the provider are internal errors.
func (h *AuthHandler) respondAuthError(c *gin.Context, op string, err error) {
	var authErr *services.AuthError
	if errors.As(err, &authErr) && authErr.Rejected() {
		apierrors.AuthFailed(c, authErr.Message)
		return
	}
	internalError(c, h.logger, op, err)
}
