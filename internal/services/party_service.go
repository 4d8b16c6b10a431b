package services

import (
	"errors"
	"fmt"

	"github.com/komisi-informasi/case-management-api/internal/models"
	"github.com/komisi-informasi/case-management-api/internal/repository"
	"gorm.io/gorm"
)

// Parties are registered by commission staff and clerks.
var partyManagerRoles = []models.UserRole{
	models.RoleStafKomisi,
	models.RolePanitera,
}

// PartyService handles party business logic.
type PartyService struct {
	partyRepo   repository.PartyRepository
	disputeRepo repository.DisputeRepository
}

// NewPartyService creates a new PartyService.
func NewPartyService(partyRepo repository.PartyRepository, disputeRepo repository.DisputeRepository) *PartyService {
	return &PartyService{
		partyRepo:   partyRepo,
		disputeRepo: disputeRepo,
	}
}

// CreatePartyInput represents input for registering a party to a dispute.
type CreatePartyInput struct {
	Name      string
	PartyType models.PartyType
	Address   *string
	Phone     *string
	Email     *string
	Role      models.PartyRole
	DisputeID uint64
}

// CreateParty persists a new party after verifying the referenced dispute
// exists. The existence pre-check is the friendly error path; the database
// foreign key is the source of truth, and a constraint violation from a
// concurrent delete maps to the same not-found error.
func (s *PartyService) CreateParty(actor Actor, input CreatePartyInput) (*models.Party, error) {
	if !roleAllowed(actor.Role, partyManagerRoles...) {
		return nil, ErrPermissionDenied
	}

	exists, err := s.disputeRepo.Exists(input.DisputeID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify dispute: %w", err)
	}
	if !exists {
		return nil, ErrDisputeNotFound
	}

	party := &models.Party{
		Name:      input.Name,
		PartyType: input.PartyType,
		Address:   input.Address,
		Phone:     input.Phone,
		Email:     input.Email,
		Role:      input.Role,
		DisputeID: input.DisputeID,
	}

	if err := s.partyRepo.Create(party); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, ErrDisputeNotFound
		}
		return nil, fmt.Errorf("failed to create party: %w", err)
	}

	return party, nil
}

// ListPartiesByDispute returns the parties of a dispute. An unknown dispute
// ID yields an empty slice, not an error.
func (s *PartyService) ListPartiesByDispute(disputeID uint64) ([]models.Party, error) {
	parties, err := s.partyRepo.ListByDispute(disputeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}

	return parties, nil
}
