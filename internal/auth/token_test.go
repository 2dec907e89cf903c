package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harmony-store/internal/models"
)

func testUser() *models.User {
	return &models.User{
		ID:      "user-1",
		Name:    "John Doe",
		Email:   "john@example.com",
		IsAdmin: false,
	}
}

func TestIssuer_IssueAndVerify(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.UserID)
	assert.Equal(t, "john@example.com", identity.Email)
	assert.False(t, identity.IsAdmin)
}

func TestIssuer_Verify_EmptyToken(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	_, err := issuer.Verify("")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestIssuer_Verify_MalformedToken(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	_, err := issuer.Verify("not-a-jwt")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestIssuer_Verify_WrongSecret(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	other := NewIssuer("other-secret", time.Hour)

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestIssuer_Verify_ExpiredToken(t *testing.T) {
	issuer := NewIssuer("test-secret", -time.Minute)

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestIdentity_RequireAdmin(t *testing.T) {
	admin := Identity{UserID: "admin-1", IsAdmin: true}
	assert.NoError(t, admin.RequireAdmin())

	regular := Identity{UserID: "user-1"}
	assert.ErrorIs(t, regular.RequireAdmin(), ErrForbidden)
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)

	assert.NotEqual(t, "password123", hash)
	assert.True(t, CheckPassword(hash, "password123"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
