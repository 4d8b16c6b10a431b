package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "github.com/komisi-informasi/case-management-api/internal/errors"
	"github.com/komisi-informasi/case-management-api/internal/middleware"
	"github.com/komisi-informasi/case-management-api/internal/optional"
	"github.com/komisi-informasi/case-management-api/internal/services"
)

// HearingHandler coordinates hearing HTTP handlers.
type HearingHandler struct {
	hearingService *services.HearingService
}

// NewHearingHandler creates a new HearingHandler.
func NewHearingHandler(hearingService *services.HearingService) *HearingHandler {
	return &HearingHandler{
		hearingService: hearingService,
	}
}

// CreateHearing schedules a hearing for an existing dispute with the actor
// as creator.
func (h *HearingHandler) CreateHearing(c *gin.Context) {
	actor, exists := middleware.GetActor(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateHearingRequest struct {
		DisputeID   uint64    `json:"dispute_id" binding:"required"`
		HearingDate time.Time `json:"hearing_date" binding:"required"`
		Agenda      string    `json:"agenda" binding:"required"`
		Result      *string   `json:"result"`
		Decision    *string   `json:"decision"`
		Attendees   *string   `json:"attendees"`
	}

	var req CreateHearingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	hearing, err := h.hearingService.CreateHearing(actor, services.CreateHearingInput{
		DisputeID:   req.DisputeID,
		HearingDate: req.HearingDate,
		Agenda:      req.Agenda,
		Result:      req.Result,
		Decision:    req.Decision,
		Attendees:   req.Attendees,
	})
	if err != nil {
		respondHearingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, hearing)
}

// ListHearingsByDispute returns the hearings of a dispute in chronological
// order. An unknown dispute ID yields an empty list.
func (h *HearingHandler) ListHearingsByDispute(c *gin.Context) {
	disputeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	hearings, err := h.hearingService.ListHearingsByDispute(disputeID)
	if err != nil {
		respondHearingError(c, err)
		return
	}

	c.JSON(http.StatusOK, hearings)
}

// UpdateHearing applies a sparse field set to an existing hearing,
// typically recording result and decision after the session.
func (h *HearingHandler) UpdateHearing(c *gin.Context) {
	actor, exists := middleware.GetActor(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type UpdateHearingRequest struct {
		HearingDate optional.Field[time.Time] `json:"hearing_date"`
		Agenda      optional.Field[string]    `json:"agenda"`
		Result      optional.Field[string]    `json:"result"`
		Decision    optional.Field[string]    `json:"decision"`
		Attendees   optional.Field[string]    `json:"attendees"`
	}

	var req UpdateHearingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	hearing, err := h.hearingService.UpdateHearing(actor, id, services.UpdateHearingInput{
		HearingDate: req.HearingDate,
		Agenda:      req.Agenda,
		Result:      req.Result,
		Decision:    req.Decision,
		Attendees:   req.Attendees,
	})
	if err != nil {
		respondHearingError(c, err)
		return
	}

	c.JSON(http.StatusOK, hearing)
}

func respondHearingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPermissionDenied):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrDisputeNotFound),
		errors.Is(err, services.ErrHearingNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrAgendaEmpty),
		errors.Is(err, services.ErrHearingDateRequired):
		apierrors.BadRequest(c, err.Error())
	default:
		log.Printf("hearing handler: %v", err)
		apierrors.InternalError(c, "")
	}
}
