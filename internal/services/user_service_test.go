package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Register("alice@example.com", "s3cret-pw")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotZero(t, user.ID)
	assert.Empty(t, user.PasswordHash)

	got, err := svc.Authenticate("alice@example.com", "s3cret-pw")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Empty(t, got.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register("bob@example.com", "first-pw")
	require.NoError(t, err)

	_, err = svc.Register("bob@example.com", "second-pw")
	require.ErrorIs(t, err, ErrEmailTaken)
	assert.Equal(t, 1, countRows(t, db, "users"))
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register("carol@example.com", "right-pw")
	require.NoError(t, err)

	_, wrongPw := svc.Authenticate("carol@example.com", "wrong-pw")
	_, unknownEmail := svc.Authenticate("nobody@example.com", "right-pw")

	require.ErrorIs(t, wrongPw, ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPw.Error(), unknownEmail.Error())
}

func TestGetUserByEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	created, err := svc.Register("dave@example.com", "pw-123456")
	require.NoError(t, err)

	user, err := svc.GetUserByEmail("dave@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Empty(t, user.PasswordHash)

	_, err = svc.GetUserByEmail("missing@example.com")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRegisterPasswordTooLong(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register("frank@example.com", strings.Repeat("x", 73))
	require.ErrorIs(t, err, ErrPasswordTooLong)
	assert.Equal(t, 0, countRows(t, db, "users"))
}

func TestStoredPasswordIsHashed(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register("erin@example.com", "plaintext-pw")
	require.NoError(t, err)

	var hash string
	require.NoError(t, db.QueryRow("SELECT password_hash FROM users WHERE email = ?", "erin@example.com").Scan(&hash))
	assert.NotEqual(t, "plaintext-pw", hash)
	assert.NotEmpty(t, hash)
}
