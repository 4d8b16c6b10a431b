package models

import "time"

type UserRole string

const (
	RoleStafKomisi  UserRole = "staf_komisi"
	RoleKomisioner  UserRole = "komisioner"
	RolePanitera    UserRole = "panitera"
	RolePemohon     UserRole = "pemohon"
	RoleBadanPublik UserRole = "badan_publik"
)

// Valid reports whether the role is one of the closed set.
func (r UserRole) Valid() bool {
	switch r {
	case RoleStafKomisi, RoleKomisioner, RolePanitera, RolePemohon, RoleBadanPublik:
		return true
	}
	return false
}

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FullName     string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Role         UserRole  `gorm:"type:varchar(20);not null" json:"role"`
	Phone        *string   `gorm:"type:varchar(50)" json:"phone"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	CreatedDisputes []Dispute `gorm:"foreignKey:CreatedBy" json:"-"`
	CreatedHearings []Hearing `gorm:"foreignKey:CreatedBy" json:"-"`
}
