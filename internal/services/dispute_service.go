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
	ErrDisputeNotFound          = errors.New("dispute not found")
	ErrDisputeNumberTaken       = errors.New("dispute number already exists")
	ErrDisputeNumberEmpty       = errors.New("dispute number cannot be empty")
	ErrInvalidDisputeType       = errors.New("invalid dispute type")
	ErrInvalidStatus            = errors.New("invalid dispute status")
	ErrRegistrationDateRequired = errors.New("registration date is required")
)

// Dispute records are managed by commission staff, commissioners and clerks.
var disputeManagerRoles = []models.UserRole{
	models.RoleStafKomisi,
	models.RoleKomisioner,
	models.RolePanitera,
}

// DisputeService handles dispute business logic.
type DisputeService struct {
	disputeRepo repository.DisputeRepository
}

// NewDisputeService creates a new DisputeService.
func NewDisputeService(disputeRepo repository.DisputeRepository) *DisputeService {
	return &DisputeService{
		disputeRepo: disputeRepo,
	}
}

// CreateDisputeInput represents input for registering a dispute.
type CreateDisputeInput struct {
	DisputeNumber    string
	DisputeType      models.DisputeType
	RegistrationDate time.Time
	Description      *string
	Status           models.DisputeStatus
}

// CreateDispute registers a new dispute, recording the actor as creator.
// An empty status falls back to "baru".
func (s *DisputeService) CreateDispute(actor Actor, input CreateDisputeInput) (*models.Dispute, error) {
	if !roleAllowed(actor.Role, disputeManagerRoles...) {
		return nil, ErrPermissionDenied
	}

	if input.Status == "" {
		input.Status = models.DisputeStatusBaru
	}
	if !input.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	dispute := &models.Dispute{
		DisputeNumber:    input.DisputeNumber,
		DisputeType:      input.DisputeType,
		RegistrationDate: input.RegistrationDate,
		Description:      input.Description,
		Status:           input.Status,
		CreatedBy:        actor.ID,
	}

	if err := s.disputeRepo.Create(dispute); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDisputeNumberTaken
		}
		return nil, fmt.Errorf("failed to create dispute: %w", err)
	}

	return dispute, nil
}

// GetDispute returns the dispute with the given ID, or ErrDisputeNotFound.
func (s *DisputeService) GetDispute(id uint64) (*models.Dispute, error) {
	dispute, err := s.disputeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDisputeNotFound
		}
		return nil, fmt.Errorf("failed to find dispute: %w", err)
	}

	return dispute, nil
}

// ListDisputes returns every dispute, unfiltered, in storage order.
func (s *DisputeService) ListDisputes() ([]models.Dispute, error) {
	disputes, err := s.disputeRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list disputes: %w", err)
	}

	return disputes, nil
}

// UpdateDisputeInput carries the sparse field set of a dispute update.
// An absent field leaves the stored value untouched; only description may
// be cleared with an explicit null.
type UpdateDisputeInput struct {
	DisputeNumber    optional.Field[string]
	DisputeType      optional.Field[models.DisputeType]
	RegistrationDate optional.Field[time.Time]
	Description      optional.Field[string]
	Status           optional.Field[models.DisputeStatus]
}

// UpdateDispute applies the supplied fields to an existing dispute and
// returns the full updated record. The update timestamp advances on every
// call. Status transitions are deliberately unrestricted; only enum
// membership is checked.
func (s *DisputeService) UpdateDispute(actor Actor, id uint64, input UpdateDisputeInput) (*models.Dispute, error) {
	if !roleAllowed(actor.Role, disputeManagerRoles...) {
		return nil, ErrPermissionDenied
	}

	changes := map[string]interface{}{
		"updated_at": time.Now(),
	}

	if input.DisputeNumber.Present() {
		number, ok := input.DisputeNumber.Value()
		if !ok || number == "" {
			return nil, ErrDisputeNumberEmpty
		}
		changes["dispute_number"] = number
	}
	if input.DisputeType.Present() {
		disputeType, ok := input.DisputeType.Value()
		if !ok || !disputeType.Valid() {
			return nil, ErrInvalidDisputeType
		}
		changes["dispute_type"] = disputeType
	}
	if input.RegistrationDate.Present() {
		registrationDate, ok := input.RegistrationDate.Value()
		if !ok {
			return nil, ErrRegistrationDateRequired
		}
		changes["registration_date"] = registrationDate
	}
	if input.Description.Present() {
		changes["description"] = input.Description.Ptr()
	}
	if input.Status.Present() {
		status, ok := input.Status.Value()
		if !ok || !status.Valid() {
			return nil, ErrInvalidStatus
		}
		changes["status"] = status
	}

	rows, err := s.disputeRepo.UpdateFields(id, changes)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDisputeNumberTaken
		}
		return nil, fmt.Errorf("failed to update dispute: %w", err)
	}
	if rows == 0 {
		return nil, ErrDisputeNotFound
	}

	return s.GetDispute(id)
}
