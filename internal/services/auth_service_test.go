// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tab1k/tbd-back/internal/config"
	"github.com/tab1k/tbd-back/internal/utils"
)

func newAuthService(db *gorm.DB) *AuthService {
	utils.SetJWTSecret("test-secret")
	return NewAuthService(db, &config.Config{
		JWT: config.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenTTL:  1,
			RefreshTokenTTL: 24,
		},
	})
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register(&RegisterRequest{Username: "editor1", Password: "password123"})
	require.NoError(t, err)
	assert.Empty(t, user.LastLoginAt)

	_, err = svc.Register(&RegisterRequest{Username: "editor1", Password: "otherpassword"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	tokens, err := svc.Login(&LoginRequest{Username: "editor1", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.Access)
	assert.NotEmpty(t, tokens.Refresh)

	claims, err := utils.ValidateJWT(tokens.Access)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, "editor1", claims.Username)

	got, err := svc.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.LastLoginAt, "login records the timestamp")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register(&RegisterRequest{Username: "editor1", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Login(&LoginRequest{Username: "editor1", Password: "wrongpassword"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&LoginRequest{Username: "nobody", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials, "unknown users get the same error as bad passwords")
}

func TestRefreshIssuesNewAccessToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register(&RegisterRequest{Username: "editor1", Password: "password123"})
	require.NoError(t, err)

	tokens, err := svc.Login(&LoginRequest{Username: "editor1", Password: "password123"})
	require.NoError(t, err)

	access, err := svc.Refresh(tokens.Refresh)
	require.NoError(t, err)

	claims, err := utils.ValidateJWT(access)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)

	_, err = svc.Refresh("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Deleting the user invalidates any further refresh
	require.NoError(t, db.Delete(user).Error)
	_, err = svc.Refresh(tokens.Refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register(&RegisterRequest{Username: "editor1", Password: "password123"})
	require.NoError(t, err)

	tokens, err := svc.Login(&LoginRequest{Username: "editor1", Password: "password123"})
	require.NoError(t, err)

	// An access token must not pass for a refresh token.
	_, err = svc.Refresh(tokens.Access)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// And a refresh token must not authenticate a request.
	_, err = utils.ValidateJWT(tokens.Refresh)
	assert.Error(t, err)
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register(&RegisterRequest{Username: "editor1", Password: "short"})
	assert.Error(t, err)

	_, err = svc.Register(&RegisterRequest{Username: "", Password: "password123"})
	assert.Error(t, err)
}
