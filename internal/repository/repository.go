package repository

import (
	"github.com/komisi-informasi/case-management-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// List retrieves every user in storage order
	List() ([]models.User, error)
}

// DisputeRepository defines the interface for dispute data access
type DisputeRepository interface {
	// Create creates a new dispute
	Create(dispute *models.Dispute) error

	// FindByID finds a dispute by ID
	FindByID(id uint64) (*models.Dispute, error)

	// List retrieves every dispute in storage order
	List() ([]models.Dispute, error)

	// Exists reports whether a dispute with the given ID exists
	Exists(id uint64) (bool, error)

	// UpdateFields applies a sparse change-set to a dispute and returns
	// the number of rows affected
	UpdateFields(id uint64, fields map[string]interface{}) (int64, error)
}

// PartyRepository defines the interface for party data access
type PartyRepository interface {
	// Create creates a new party
	Create(party *models.Party) error

	// ListByDispute retrieves all parties of a dispute in insertion order
	ListByDispute(disputeID uint64) ([]models.Party, error)
}

// HearingRepository defines the interface for hearing data access
type HearingRepository interface {
	// Create creates a new hearing
	Create(hearing *models.Hearing) error

	// FindByID finds a hearing by ID
	FindByID(id uint64) (*models.Hearing, error)

	// ListByDispute retrieves all hearings of a dispute in chronological
	// order of hearing date
	ListByDispute(disputeID uint64) ([]models.Hearing, error)

	// UpdateFields applies a sparse change-set to a hearing and returns
	// the number of rows affected
	UpdateFields(id uint64, fields map[string]interface{}) (int64, error)
}
