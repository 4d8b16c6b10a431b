package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/komisi-informasi/case-management-api/internal/dto"
	apierrors "github.com/komisi-informasi/case-management-api/internal/errors"
	"github.com/komisi-informasi/case-management-api/internal/middleware"
	"github.com/komisi-informasi/case-management-api/internal/models"
	"github.com/komisi-informasi/case-management-api/internal/services"
)

// UserHandler coordinates user management HTTP handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser registers a new staff or participant account.
func (h *UserHandler) CreateUser(c *gin.Context) {
	actor, exists := middleware.GetActor(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateUserRequest struct {
		Username string          `json:"username" binding:"required,min=3,max=50"`
		Email    string          `json:"email" binding:"required,email"`
		FullName string          `json:"full_name" binding:"required"`
		Role     models.UserRole `json:"role" binding:"required,oneof=staf_komisi komisioner panitera pemohon badan_publik"`
		Phone    *string         `json:"phone"`
		Password string          `json:"password" binding:"required,min=6"`
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	user, err := h.userService.CreateUser(actor, services.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Role:     req.Role,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// ListUsers returns all user accounts.
func (h *UserHandler) ListUsers(c *gin.Context) {
	actor, exists := middleware.GetActor(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	users, err := h.userService.ListUsers(actor)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTOs(users))
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPermissionDenied):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrUserAlreadyExists):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrFailedToHashPassword):
		apierrors.InternalError(c, err.Error())
	default:
		log.Printf("user handler: %v", err)
		apierrors.InternalError(c, "")
	}
}
