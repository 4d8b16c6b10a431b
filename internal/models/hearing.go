package models

import "time"

// Hearing is a scheduled or completed session belonging to a dispute.
// Attendees is an opaque text blob (the clients store a serialized list);
// the server never parses it.
type Hearing struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	DisputeID   uint64    `gorm:"not null" json:"dispute_id"`
	HearingDate time.Time `gorm:"not null" json:"hearing_date"`
	Agenda      string    `gorm:"type:text;not null" json:"agenda"`
	Result      *string   `gorm:"type:text" json:"result"`
	Decision    *string   `gorm:"type:text" json:"decision"`
	Attendees   *string   `gorm:"type:text" json:"attendees"`
	CreatedBy   uint64    `gorm:"not null" json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Dispute Dispute `gorm:"foreignKey:DisputeID" json:"-"`
	Creator User    `gorm:"foreignKey:CreatedBy" json:"-"`
}
