package repository

import (
	"github.com/komisi-informasi/case-management-api/internal/models"
	"gorm.io/gorm"
)

// GormHearingRepository is a GORM implementation of HearingRepository
type GormHearingRepository struct {
	db *gorm.DB
}

// NewHearingRepository creates a new HearingRepository
func NewHearingRepository(db *gorm.DB) HearingRepository {
	return &GormHearingRepository{db: db}
}

// Create creates a new hearing
func (r *GormHearingRepository) Create(hearing *models.Hearing) error {
	return r.db.Create(hearing).Error
}

// FindByID finds a hearing by ID
func (r *GormHearingRepository) FindByID(id uint64) (*models.Hearing, error) {
	var hearing models.Hearing
	if err := r.db.First(&hearing, id).Error; err != nil {
		return nil, err
	}
	return &hearing, nil
}

// ListByDispute retrieves all hearings of a dispute, oldest hearing date
// first. An unknown dispute ID yields an empty slice, not an error.
func (r *GormHearingRepository) ListByDispute(disputeID uint64) ([]models.Hearing, error) {
	var hearings []models.Hearing
	if err := r.db.Where("dispute_id = ?", disputeID).
		Order("hearing_date ASC").
		Find(&hearings).Error; err != nil {
		return nil, err
	}
	return hearings, nil
}

// UpdateFields applies a sparse change-set to a hearing. The caller puts
// updated_at into the change-set; see DisputeRepository.UpdateFields.
func (r *GormHearingRepository) UpdateFields(id uint64, fields map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.Hearing{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}
