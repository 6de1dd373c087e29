package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleAtLeast(t *testing.T) {
	assert.True(t, RoleAdmin.AtLeast(RoleModerator))
	assert.True(t, RoleAdmin.AtLeast(RoleUser))
	assert.True(t, RoleModerator.AtLeast(RoleUser))
	assert.True(t, RoleUser.AtLeast(RoleUser))

	assert.False(t, RoleUser.AtLeast(RoleModerator))
	assert.False(t, RoleModerator.AtLeast(RoleAdmin))
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleModerator.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("root").Valid())
	assert.False(t, Role("").Valid())
}

func TestEffectiveRole(t *testing.T) {
	t.Run("PlainUser", func(t *testing.T) {
		u := User{Role: RoleUser}
		assert.Equal(t, RoleUser, u.EffectiveRole())
		assert.False(t, u.IsModerator())
	})

	t.Run("SuperuserIsAdmin", func(t *testing.T) {
		u := User{Role: RoleUser, IsSuperuser: true}
		assert.Equal(t, RoleAdmin, u.EffectiveRole())
		assert.True(t, u.IsAdmin())
	})

	t.Run("StaffIsAdmin", func(t *testing.T) {
		u := User{Role: RoleUser, IsStaff: true}
		assert.True(t, u.IsAdmin())
	})

	t.Run("FlagsNeverDemote", func(t *testing.T) {
		u := User{Role: RoleAdmin}
		assert.Equal(t, RoleAdmin, u.EffectiveRole())
	})
}

func TestValidateUsername(t *testing.T) {
	t.Run("Accepted", func(t *testing.T) {
		for _, name := range []string{"alice", "a.b+c-d_e@f", "User_99", "@handle"} {
			assert.NoError(t, ValidateUsername(name), name)
		}
	})

	t.Run("ReservedMe", func(t *testing.T) {
		err := ValidateUsername("me")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "reserved")
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Error(t, ValidateUsername(""))
	})

	t.Run("NamesFirstBadCharacter", func(t *testing.T) {
		err := ValidateUsername("bad name")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), `' '`)
	})

	t.Run("RejectsUnicodePunctuation", func(t *testing.T) {
		err := ValidateUsername("alice!")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), `'!'`)
	})
}
