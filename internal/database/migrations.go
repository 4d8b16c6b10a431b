package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds the lookup indexes the by-dispute listings and status
// filters depend on.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		{"disputes", "idx_disputes_status", "status"},
		{"disputes", "idx_disputes_created_by", "created_by"},

		{"parties", "idx_parties_dispute_id", "dispute_id"},

		{"hearings", "idx_hearings_dispute_id", "dispute_id"},
		{"hearings", "idx_hearings_hearing_date", "hearing_date"},
	}

	for _, idx := range indexes {
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Count(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
