package ds

import (
	"time"

	"agensi-backend/internal/app/role"
)

// UserRole is the role-assignment table. UserID is the identity-provider
// user id (uuid string); the provider owns everything else about the user.
// Exactly one row per user.
type UserRole struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    string    `gorm:"type:uuid;uniqueIndex;not null"`
	Role      role.Role `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time `gorm:"not null"`
}
