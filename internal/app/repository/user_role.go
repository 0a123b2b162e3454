package repository

import (
	"errors"

	"gorm.io/gorm"

	"agensi-backend/internal/app/ds"
	"agensi-backend/internal/app/role"
)

// Role-assignment table methods. UserID is the identity-provider uuid.

// HasRole reports whether the user holds the given role. A missing row is
// not an error, just false.
func (r *Repository) HasRole(userID string, want role.Role) (bool, error) {
	var row ds.UserRole
	err := r.db.Where("user_id = ? AND role = ?", userID, want).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// RoleOf returns the user's role row, or gorm.ErrRecordNotFound.
func (r *Repository) RoleOf(userID string) (*ds.UserRole, error) {
	var row ds.UserRole
	err := r.db.Where("user_id = ?", userID).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// AssignRole inserts the role row for a newly created identity.
func (r *Repository) AssignRole(userID string, assigned role.Role) error {
	row := ds.UserRole{
		UserID: userID,
		Role:   assigned,
	}
	return r.db.Create(&row).Error
}

// RemoveRole deletes the user's role row. Removing a non-existent row is a
// no-op, matching the best-effort semantics of account deletion.
func (r *Repository) RemoveRole(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&ds.UserRole{}).Error
}

// UserIDsWithRole lists user ids holding the given role, oldest first.
func (r *Repository) UserIDsWithRole(want role.Role) ([]string, error) {
	var ids []string
	err := r.db.Model(&ds.UserRole{}).
		Where("role = ?", want).
		Order("created_at asc").
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
