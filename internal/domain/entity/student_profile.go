package entity

import (
	"time"

	"github.com/google/uuid"
)

// StudentProfile links a STUDENT account to the institute it registered with.
type StudentProfile struct {
	UserID      uuid.UUID
	InstituteID uuid.UUID
	FullName    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
