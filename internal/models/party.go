package models

import "time"

type PartyType string

const (
	PartyTypeIndividu   PartyType = "individu"
	PartyTypeBadanHukum PartyType = "badan_hukum"
)

// Valid reports whether the party type is one of the closed set.
func (t PartyType) Valid() bool {
	switch t {
	case PartyTypeIndividu, PartyTypeBadanHukum:
		return true
	}
	return false
}

type PartyRole string

const (
	PartyRolePemohon       PartyRole = "pemohon"
	PartyRoleTermohon      PartyRole = "termohon"
	PartyRoleTurutTermohon PartyRole = "turut_termohon"
)

// Valid reports whether the party role is one of the closed set.
func (r PartyRole) Valid() bool {
	switch r {
	case PartyRolePemohon, PartyRoleTermohon, PartyRoleTurutTermohon:
		return true
	}
	return false
}

type Party struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	PartyType PartyType `gorm:"type:varchar(20);not null" json:"party_type"`
	Address   *string   `gorm:"type:text" json:"address"`
	Phone     *string   `gorm:"type:varchar(50)" json:"phone"`
	Email     *string   `gorm:"type:varchar(255)" json:"email"`
	Role      PartyRole `gorm:"type:varchar(20);not null" json:"role"`
	DisputeID uint64    `gorm:"not null" json:"dispute_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Dispute Dispute `gorm:"foreignKey:DisputeID" json:"-"`
}
