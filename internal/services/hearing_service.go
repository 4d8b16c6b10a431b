package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/komisi-informasi/case-management-api/internal/models"
	"github.com/komisi-informasi/case-management-api/internal/optional"
	"github.com/komisi-informasi/case-management-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrHearingNotFound     = errors.New("hearing not found")
	ErrAgendaEmpty         = errors.New("agenda cannot be empty")
	ErrHearingDateRequired = errors.New("hearing date is required")
)

// Hearings are managed by the same roles as disputes.
var hearingManagerRoles = disputeManagerRoles

// HearingService handles hearing business logic.
type HearingService struct {
	hearingRepo repository.HearingRepository
	disputeRepo repository.DisputeRepository
}

// NewHearingService creates a new HearingService.
func NewHearingService(hearingRepo repository.HearingRepository, disputeRepo repository.DisputeRepository) *HearingService {
	return &HearingService{
		hearingRepo: hearingRepo,
		disputeRepo: disputeRepo,
	}
}

// CreateHearingInput represents input for scheduling a hearing.
type CreateHearingInput struct {
	DisputeID   uint64
	HearingDate time.Time
	Agenda      string
	Result      *string
	Decision    *string
	Attendees   *string
}

// CreateHearing persists a new hearing after verifying the referenced
// dispute exists, recording the actor as creator. See CreateParty for the
// pre-check versus foreign-key contract.
func (s *HearingService) CreateHearing(actor Actor, input CreateHearingInput) (*models.Hearing, error) {
	if !roleAllowed(actor.Role, hearingManagerRoles...) {
		return nil, ErrPermissionDenied
	}

	exists, err := s.disputeRepo.Exists(input.DisputeID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify dispute: %w", err)
	}
	if !exists {
		return nil, ErrDisputeNotFound
	}

	hearing := &models.Hearing{
		DisputeID:   input.DisputeID,
		HearingDate: input.HearingDate,
		Agenda:      input.Agenda,
		Result:      input.Result,
		Decision:    input.Decision,
		Attendees:   input.Attendees,
		CreatedBy:   actor.ID,
	}

	if err := s.hearingRepo.Create(hearing); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, ErrDisputeNotFound
		}
		return nil, fmt.Errorf("failed to create hearing: %w", err)
	}

	return hearing, nil
}

// ListHearingsByDispute returns the hearings of a dispute in chronological
// order. An unknown dispute ID yields an empty slice, not an error.
func (s *HearingService) ListHearingsByDispute(disputeID uint64) ([]models.Hearing, error) {
	hearings, err := s.hearingRepo.ListByDispute(disputeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list hearings: %w", err)
	}

	return hearings, nil
}

// UpdateHearingInput carries the sparse field set of a hearing update.
// Result, decision and attendees may be cleared with an explicit null;
// hearing date and agenda may not.
type UpdateHearingInput struct {
	HearingDate optional.Field[time.Time]
	Agenda      optional.Field[string]
	Result      optional.Field[string]
	Decision    optional.Field[string]
	Attendees   optional.Field[string]
}

// UpdateHearing applies the supplied fields to an existing hearing and
// returns the full updated record. The dispute reference and creator are
// never part of the change-set.
func (s *HearingService) UpdateHearing(actor Actor, id uint64, input UpdateHearingInput) (*models.Hearing, error) {
	if !roleAllowed(actor.Role, hearingManagerRoles...) {
		return nil, ErrPermissionDenied
	}

	changes := map[string]interface{}{
		"updated_at": time.Now(),
	}

	if input.HearingDate.Present() {
		hearingDate, ok := input.HearingDate.Value()
		if !ok {
			return nil, ErrHearingDateRequired
		}
		changes["hearing_date"] = hearingDate
	}
	if input.Agenda.Present() {
		agenda, ok := input.Agenda.Value()
		if !ok || agenda == "" {
			return nil, ErrAgendaEmpty
		}
		changes["agenda"] = agenda
	}
	if input.Result.Present() {
		changes["result"] = input.Result.Ptr()
	}
	if input.Decision.Present() {
		changes["decision"] = input.Decision.Ptr()
	}
	if input.Attendees.Present() {
		changes["attendees"] = input.Attendees.Ptr()
	}

	rows, err := s.hearingRepo.UpdateFields(id, changes)
	if err != nil {
		return nil, fmt.Errorf("failed to update hearing: %w", err)
	}
	if rows == 0 {
		return nil, ErrHearingNotFound
	}

	hearing, err := s.hearingRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload hearing: %w", err)
	}

	return hearing, nil
}
