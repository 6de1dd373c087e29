package service

import "reviewhub/internal/api/models"

// Actor is the authenticated caller as seen by the domain: identity plus the
// effective role from the token.
type Actor struct {
	UserID string
	Role   models.Role
}

// CanModerate reports whether the actor may edit or delete resources they do
// not own.
func (a Actor) CanModerate() bool {
	return a.Role.AtLeast(models.RoleModerator)
}
