package models

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the authorization level of a user. Roles form an order:
// user < moderator < admin.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

var roleRank = map[Role]int{
	RoleUser:      0,
	RoleModerator: 1,
	RoleAdmin:     2,
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r grants the privileges of min (admin implies
// moderator-and-up, moderator implies user-and-up).
func (r Role) AtLeast(min Role) bool {
	return roleRank[r] >= roleRank[min]
}

type User struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:32;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;size:254;not null" json:"email"`
	FirstName string    `gorm:"size:32" json:"first_name"`
	LastName  string    `gorm:"size:64" json:"last_name"`
	Bio       string    `gorm:"type:text" json:"bio"`
	Role      Role      `gorm:"size:16;default:'user';not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// ConfirmationCode holds the bcrypt hash of the latest signup code,
	// nil once the code has been exchanged for a token.
	ConfirmationCode *string `gorm:"size:255" json:"-"`

	// Legacy staff flags, kept because they imply admin privileges.
	IsSuperuser bool `gorm:"default:false;not null" json:"-"`
	IsStaff     bool `gorm:"default:false;not null" json:"-"`
}

// BeforeCreate assigns a UUID if the caller did not set one.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

func (User) TableName() string {
	return "users"
}

// EffectiveRole resolves the role the user actually acts with: superuser and
// staff accounts are admins regardless of the stored role (union, not override).
func (u *User) EffectiveRole() Role {
	if u.IsSuperuser || u.IsStaff {
		return RoleAdmin
	}
	return u.Role
}

func (u *User) IsAdmin() bool {
	return u.EffectiveRole() == RoleAdmin
}

func (u *User) IsModerator() bool {
	return u.EffectiveRole().AtLeast(RoleModerator)
}

var usernameCharRx = regexp.MustCompile(`^[A-Za-z0-9_.@+-]$`)

// ValidateUsername enforces the username rules: "me" is reserved, and only
// letters, digits and @ . + - _ are allowed. The returned error names the
// first offending character.
func ValidateUsername(value string) error {
	if value == "" {
		return fmt.Errorf("username must not be empty")
	}
	if value == "me" {
		return fmt.Errorf("username %q is reserved", value)
	}
	for _, ch := range value {
		if !usernameCharRx.MatchString(string(ch)) {
			return fmt.Errorf("character %q is not allowed in username: only letters, digits and @ . + - _ may be used", ch)
		}
	}
	return nil
}
