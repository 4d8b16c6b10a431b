package repository

import (
	"github.com/komisi-informasi/case-management-api/internal/models"
	"gorm.io/gorm"
)

// GormPartyRepository is a GORM implementation of PartyRepository
type GormPartyRepository struct {
	db *gorm.DB
}

// NewPartyRepository creates a new PartyRepository
func NewPartyRepository(db *gorm.DB) PartyRepository {
	return &GormPartyRepository{db: db}
}

// Create creates a new party
func (r *GormPartyRepository) Create(party *models.Party) error {
	return r.db.Create(party).Error
}

// ListByDispute retrieves all parties of a dispute. An unknown dispute ID
// yields an empty slice, not an error.
func (r *GormPartyRepository) ListByDispute(disputeID uint64) ([]models.Party, error) {
	var parties []models.Party
	if err := r.db.Where("dispute_id = ?", disputeID).Find(&parties).Error; err != nil {
		return nil, err
	}
	return parties, nil
}
