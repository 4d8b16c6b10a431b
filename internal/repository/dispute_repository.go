package repository

import (
	"github.com/komisi-informasi/case-management-api/internal/models"
	"gorm.io/gorm"
)

// GormDisputeRepository is a GORM implementation of DisputeRepository
type GormDisputeRepository struct {
	db *gorm.DB
}

// NewDisputeRepository creates a new DisputeRepository
func NewDisputeRepository(db *gorm.DB) DisputeRepository {
	return &GormDisputeRepository{db: db}
}

// Create creates a new dispute
func (r *GormDisputeRepository) Create(dispute *models.Dispute) error {
	return r.db.Create(dispute).Error
}

// FindByID finds a dispute by ID
func (r *GormDisputeRepository) FindByID(id uint64) (*models.Dispute, error) {
	var dispute models.Dispute
	if err := r.db.First(&dispute, id).Error; err != nil {
		return nil, err
	}
	return &dispute, nil
}

// List retrieves every dispute in storage order
func (r *GormDisputeRepository) List() ([]models.Dispute, error) {
	var disputes []models.Dispute
	if err := r.db.Find(&disputes).Error; err != nil {
		return nil, err
	}
	return disputes, nil
}

// Exists reports whether a dispute with the given ID exists
func (r *GormDisputeRepository) Exists(id uint64) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Dispute{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateFields applies a sparse change-set to a dispute. The caller is
// responsible for putting updated_at into the change-set so the timestamp
// advances even when nothing else changed.
func (r *GormDisputeRepository) UpdateFields(id uint64, fields map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.Dispute{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}
