package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/komisi-informasi/case-management-api/internal/errors"
	"github.com/komisi-informasi/case-management-api/internal/middleware"
	"github.com/komisi-informasi/case-management-api/internal/models"
	"github.com/komisi-informasi/case-management-api/internal/services"
)

// PartyHandler coordinates party HTTP handlers.
type PartyHandler struct {
	partyService *services.PartyService
}

// NewPartyHandler creates a new PartyHandler.
func NewPartyHandler(partyService *services.PartyService) *PartyHandler {
	return &PartyHandler{
		partyService: partyService,
	}
}

// CreateParty registers a party to an existing dispute.
func (h *PartyHandler) CreateParty(c *gin.Context) {
	actor, exists := middleware.GetActor(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreatePartyRequest struct {
		Name      string           `json:"name" binding:"required"`
		PartyType models.PartyType `json:"party_type" binding:"required,oneof=individu badan_hukum"`
		Address   *string          `json:"address"`
		Phone     *string          `json:"phone"`
		Email     *string          `json:"email" binding:"omitempty,email"`
		Role      models.PartyRole `json:"role" binding:"required,oneof=pemohon termohon turut_termohon"`
		DisputeID uint64           `json:"dispute_id" binding:"required"`
	}

	var req CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	party, err := h.partyService.CreateParty(actor, services.CreatePartyInput{
		Name:      req.Name,
		PartyType: req.PartyType,
		Address:   req.Address,
		Phone:     req.Phone,
		Email:     req.Email,
		Role:      req.Role,
		DisputeID: req.DisputeID,
	})
	if err != nil {
		respondPartyError(c, err)
		return
	}

	c.JSON(http.StatusCreated, party)
}

// ListPartiesByDispute returns the parties of a dispute. An unknown
// dispute ID yields an empty list.
func (h *PartyHandler) ListPartiesByDispute(c *gin.Context) {
	disputeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	parties, err := h.partyService.ListPartiesByDispute(disputeID)
	if err != nil {
		respondPartyError(c, err)
		return
	}

	c.JSON(http.StatusOK, parties)
}

func respondPartyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPermissionDenied):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrDisputeNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		log.Printf("party handler: %v", err)
		apierrors.InternalError(c, "")
	}
}
