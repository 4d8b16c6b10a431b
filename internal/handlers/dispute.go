package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "github.com/komisi-informasi/case-management-api/internal/errors"
	"github.com/komisi-informasi/case-management-api/internal/middleware"
	"github.com/komisi-informasi/case-management-api/internal/models"
	"github.com/komisi-informasi/case-management-api/internal/optional"
	"github.com/komisi-informasi/case-management-api/internal/services"
)

// DisputeHandler coordinates dispute HTTP handlers.
type DisputeHandler struct {
	disputeService *services.DisputeService
}

// NewDisputeHandler creates a new DisputeHandler.
func NewDisputeHandler(disputeService *services.DisputeService) *DisputeHandler {
	return &DisputeHandler{
		disputeService: disputeService,
	}
}

// CreateDispute registers a new dispute with the actor as creator.
func (h *DisputeHandler) CreateDispute(c *gin.Context) {
	actor, exists := middleware.GetActor(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateDisputeRequest struct {
		DisputeNumber    string               `json:"dispute_number" binding:"required"`
		DisputeType      models.DisputeType   `json:"dispute_type" binding:"required,oneof=sengketa_informasi keberatan banding"`
		RegistrationDate time.Time            `json:"registration_date" binding:"required"`
		Description      *string              `json:"description"`
		Status           models.DisputeStatus `json:"status" binding:"omitempty,oneof=baru sedang_berjalan selesai ditutup"`
	}

	var req CreateDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	dispute, err := h.disputeService.CreateDispute(actor, services.CreateDisputeInput{
		DisputeNumber:    req.DisputeNumber,
		DisputeType:      req.DisputeType,
		RegistrationDate: req.RegistrationDate,
		Description:      req.Description,
		Status:           req.Status,
	})
	if err != nil {
		respondDisputeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dispute)
}

// ListDisputes returns every dispute.
func (h *DisputeHandler) ListDisputes(c *gin.Context) {
	disputes, err := h.disputeService.ListDisputes()
	if err != nil {
		respondDisputeError(c, err)
		return
	}

	c.JSON(http.StatusOK, disputes)
}

// GetDispute returns a single dispute, 404 when no such record exists.
func (h *DisputeHandler) GetDispute(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	dispute, err := h.disputeService.GetDispute(id)
	if err != nil {
		respondDisputeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dispute)
}

// UpdateDispute applies a sparse field set to an existing dispute.
func (h *DisputeHandler) UpdateDispute(c *gin.Context) {
	actor, exists := middleware.GetActor(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type UpdateDisputeRequest struct {
		DisputeNumber    optional.Field[string]               `json:"dispute_number"`
		DisputeType      optional.Field[models.DisputeType]   `json:"dispute_type"`
		RegistrationDate optional.Field[time.Time]            `json:"registration_date"`
		Description      optional.Field[string]               `json:"description"`
		Status           optional.Field[models.DisputeStatus] `json:"status"`
	}

	var req UpdateDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	dispute, err := h.disputeService.UpdateDispute(actor, id, services.UpdateDisputeInput{
		DisputeNumber:    req.DisputeNumber,
		DisputeType:      req.DisputeType,
		RegistrationDate: req.RegistrationDate,
		Description:      req.Description,
		Status:           req.Status,
	})
	if err != nil {
		respondDisputeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dispute)
}

func respondDisputeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPermissionDenied):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrDisputeNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrDisputeNumberTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrDisputeNumberEmpty),
		errors.Is(err, services.ErrInvalidDisputeType),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrRegistrationDateRequired):
		apierrors.BadRequest(c, err.Error())
	default:
		log.Printf("dispute handler: %v", err)
		apierrors.InternalError(c, "")
	}
}

// parseIDParam parses a numeric path parameter, responding 400 on failure.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}
