package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateAndLogin(t *testing.T) {
	db := newTestDB(t)

	user, err := UserCreate(db, "Sam", "sam@club.test", "hunter2hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", user.Password, "password is stored hashed")
	assert.NotEmpty(t, user.PassSalt)

	_, success := UserLogin(db, "sam@club.test", "wrong")
	assert.False(t, success)
	loggedIn, success := UserLogin(db, "sam@club.test", "hunter2hunter2")
	assert.True(t, success)
	assert.Equal(t, user.ID, loggedIn.ID)

	_, err = UserCreate(db, "", "x@club.test", "pw")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAdminGrant(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "Sam", "sam@club.test")
	assert.False(t, UserIsAdmin(db, user.ID))

	require.NoError(t, user.Grant(db, user.ID, PermissionAdmin))
	assert.True(t, UserIsAdmin(db, user.ID))

	// Granting twice does not duplicate
	require.NoError(t, user.Grant(db, user.ID, PermissionAdmin))
	var grants int64
	db.Model(&Grant{}).Where("user_id = ?", user.ID).Count(&grants)
	assert.Equal(t, int64(1), grants)

	reloaded, success := UserLogin(db, "sam@club.test", "secret-password")
	require.True(t, success)
	assert.True(t, reloaded.IsAdmin())
	assert.True(t, reloaded.HasPermissions([]Permission{PermissionAdmin}))
	assert.Equal(t, []int{int(PermissionAdmin)}, reloaded.GetPermissions())
}
