package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	user, err := CreateUser("jane@example.com", "jane", "secret-password", "Jane Silva")
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, "jane", user.Username)
	assert.Equal(t, ROLE_USER, user.Role)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsAdmin())

	// Only the bcrypt hash is stored, never the raw password.
	assert.NotEqual(t, "secret-password", user.PasswordHash)
	assert.True(t, user.CheckPassword("secret-password"))
	assert.False(t, user.CheckPassword("wrong-password"))
}

func TestCreateUserValidation(t *testing.T) {
	_, err := CreateUser("not-an-email", "jane", "secret-password", "")
	assert.Error(t, err)

	_, err = CreateUser("jane@example.com", "ab", "secret-password", "")
	assert.Error(t, err)
}

func TestSetPassword(t *testing.T) {
	user, err := CreateUser("jane@example.com", "jane", "old-password", "")
	require.NoError(t, err)
	oldHash := user.PasswordHash

	require.NoError(t, user.SetPassword("new-password"))

	assert.NotEqual(t, oldHash, user.PasswordHash)
	assert.False(t, user.CheckPassword("old-password"))
	assert.True(t, user.CheckPassword("new-password"))
}

func TestIsAdmin(t *testing.T) {
	user := &User{Role: ROLE_USER}
	assert.False(t, user.IsAdmin())

	user.Role = ROLE_ADMIN
	assert.True(t, user.IsAdmin())
}
