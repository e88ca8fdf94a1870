package model

import (
	"time"

	"github.com/google/uuid"
)

// InstituteSlugIndex is the partial unique index on institutes(slug) where slug is not null.
const InstituteSlugIndex = "institutes_slug_unique_idx"

// InstituteOwnerIndex enforces one institute per owner.
const InstituteOwnerIndex = "institutes_owner_id_key"

// InstituteModel mirrors the 'institutes' table. OwnerID references users.id.
type InstituteModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name            string     `gorm:"type:varchar(255);not null"`
	Slug            *string    `gorm:"type:varchar(255);uniqueIndex:institutes_slug_unique_idx,where:slug IS NOT NULL"`
	Description     *string    `gorm:"type:text"`
	OwnerID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:institutes_owner_id_key"`
	Owner           *UserModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:RESTRICT"`
	LogoURL         *string    `gorm:"type:text"`
	Address         *string    `gorm:"type:text"`
	Phone           *string    `gorm:"type:varchar(32)"`
	ShowInfoOnLogin bool       `gorm:"not null;default:false"`
	CreatedAt       time.Time  `gorm:"not null;default:now()"`
	UpdatedAt       time.Time  `gorm:"not null;default:now()"`
}

// TableName explicitly sets the table name for GORM.
func (InstituteModel) TableName() string {
	return "institutes"
}
