// Package entities contains core business entities.
package entities

import "time"

// Member is a workspace participant prompted for daily standups.
type Member struct {
	ID          string
	WorkspaceID string
	SlackUserID string
	DisplayName string
	Email       *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MemberUpdate enumerates the member fields that may change.
// Nil fields are left untouched.
type MemberUpdate struct {
	DisplayName *string
	Email       *string
	IsActive    *bool
}

// Empty reports whether no field is set.
func (u MemberUpdate) Empty() bool {
	return u.DisplayName == nil && u.Email == nil && u.IsActive == nil
}

// Deactivates reports whether the update turns the member inactive.
func (u MemberUpdate) Deactivates() bool {
	return u.IsActive != nil && !*u.IsActive
}
