package models

import "time"

type DisputeStatus string

const (
	DisputeStatusBaru           DisputeStatus = "baru"
	DisputeStatusSedangBerjalan DisputeStatus = "sedang_berjalan"
	DisputeStatusSelesai        DisputeStatus = "selesai"
	DisputeStatusDitutup        DisputeStatus = "ditutup"
)

// Valid reports whether the status is one of the closed set.
func (s DisputeStatus) Valid() bool {
	switch s {
	case DisputeStatusBaru, DisputeStatusSedangBerjalan, DisputeStatusSelesai, DisputeStatusDitutup:
		return true
	}
	return false
}

type DisputeType string

const (
	DisputeTypeSengketaInformasi DisputeType = "sengketa_informasi"
	DisputeTypeKeberatan         DisputeType = "keberatan"
	DisputeTypeBanding           DisputeType = "banding"
)

// Valid reports whether the type is one of the closed set.
func (t DisputeType) Valid() bool {
	switch t {
	case DisputeTypeSengketaInformasi, DisputeTypeKeberatan, DisputeTypeBanding:
		return true
	}
	return false
}

type Dispute struct {
	ID               uint64        `gorm:"primarykey" json:"id"`
	DisputeNumber    string        `gorm:"type:varchar(100);uniqueIndex;not null" json:"dispute_number"`
	DisputeType      DisputeType   `gorm:"type:varchar(30);not null" json:"dispute_type"`
	RegistrationDate time.Time     `gorm:"not null" json:"registration_date"`
	Description      *string       `gorm:"type:text" json:"description"`
	Status           DisputeStatus `gorm:"type:varchar(20);not null;default:'baru'" json:"status"`
	CreatedBy        uint64        `gorm:"not null" json:"created_by"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`

	// Relations
	Creator  User      `gorm:"foreignKey:CreatedBy" json:"-"`
	Parties  []Party   `gorm:"foreignKey:DisputeID" json:"-"`
	Hearings []Hearing `gorm:"foreignKey:DisputeID" json:"-"`
}
