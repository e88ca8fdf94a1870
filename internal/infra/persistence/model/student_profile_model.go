package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentProfileModel mirrors the 'student_profiles' table. UserID references users.id (UUID).
type StudentProfileModel struct {
	UserID      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	User        *UserModel      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	InstituteID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Institute   *InstituteModel `gorm:"foreignKey:InstituteID;constraint:OnDelete:RESTRICT"`
	FullName    string          `gorm:"type:varchar(255);not null"`
	CreatedAt   time.Time       `gorm:"not null;default:now()"`
	UpdatedAt   time.Time       `gorm:"not null;default:now()"`
}

// TableName explicitly sets the table name for GORM.
func (StudentProfileModel) TableName() string {
	return "student_profiles"
}

// All lists every persisted model in dependency order for schema migration.
func All() []any {
	return []any{&UserModel{}, &InstituteModel{}, &StudentProfileModel{}}
}
