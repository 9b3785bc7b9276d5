package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avoronov/authgate/internal/logging"
	"github.com/avoronov/authgate/internal/server/models"
)

// AuthService is the slice of the user service the HTTP layer depends on.
type AuthService interface {
	Register(ctx context.Context, name, email, password, confirmPassword string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
}

type Handler struct {
	service AuthService
	logger  logging.Logger
}

func NewHandler(service AuthService, logger logging.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.With("module", "httpapi"),
	}
}

// Home is the public greeting route.
func (h *Handler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Msg: "welcome to the auth service"})
}

// Register handles POST /auth/register.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, MessageResponse{Msg: "invalid request body"})
		return
	}

	_, err := h.service.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		status, msg := statusForError(err)
		if status == http.StatusInternalServerError {
			h.logger.Error(c.Request.Context(), "registration failed", "error", err)
		}
		c.JSON(status, MessageResponse{Msg: msg})
		return
	}

	c.JSON(http.StatusCreated, MessageResponse{Msg: "user created successfully"})
}

// Login handles POST /auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, MessageResponse{Msg: "invalid request body"})
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		status, msg := statusForError(err)
		if status == http.StatusInternalServerError {
			h.logger.Error(c.Request.Context(), "login failed", "error", err)
		}
		c.JSON(status, MessageResponse{Msg: msg})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Msg: "authentication successful", Token: token})
}

// GetUser handles GET /user/:id behind the token gate. The stored password
// hash never appears in the response.
func (h *Handler) GetUser(c *gin.Context) {
	id := c.Param("id")

	user, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		status, msg := statusForError(err)
		if status == http.StatusInternalServerError {
			h.logger.Error(c.Request.Context(), "user lookup failed", "error", err)
		}
		c.JSON(status, MessageResponse{Msg: msg})
		return
	}

	c.JSON(http.StatusOK, UserResponse{User: UserPayload{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}})
}
