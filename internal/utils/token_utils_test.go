package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
	"github.com/AbdulmosenAlmuzaini/malek/internal/utils"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	user := &domain.User{
		UserID: 12,
		Name:   "Entry Clerk",
		Role:   domain.RoleEntry,
	}

	token, err := utils.IssueSessionToken(user, "test-secret", 24*time.Hour, "test-issuer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := utils.VerifySessionToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, int64(12), identity.UserID)
	assert.Equal(t, domain.RoleEntry, identity.Role)
	assert.Equal(t, "Entry Clerk", identity.Name)
}

func TestVerifySessionToken_WrongSecret(t *testing.T) {
	user := &domain.User{UserID: 1, Role: domain.RoleViewer}
	token, err := utils.IssueSessionToken(user, "secret-a", time.Hour, "issuer")
	require.NoError(t, err)

	identity, err := utils.VerifySessionToken(token, "secret-b")
	assert.Error(t, err)
	assert.Nil(t, identity)
}

func TestVerifySessionToken_Expired(t *testing.T) {
	user := &domain.User{UserID: 1, Role: domain.RoleAdmin}
	token, err := utils.IssueSessionToken(user, "secret", -time.Minute, "issuer")
	require.NoError(t, err)

	identity, err := utils.VerifySessionToken(token, "secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	assert.Nil(t, identity)
}

func TestVerifySessionToken_Garbage(t *testing.T) {
	identity, err := utils.VerifySessionToken("not-a-token", "secret")
	assert.Error(t, err)
	assert.Nil(t, identity)
}
