package auth

import (
	"testing"
	"time"

	"vidtube/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"
	return cfg
}

func TestJWTService_IssueAndParsePair(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	userID := uuid.New()

	pair, err := jwtService.IssuePair(userID, "alice", "Alice Example")
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	// Parse access token
	accessClaims, err := jwtService.ParseAccessToken(pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, "alice", accessClaims.Username)
	assert.Equal(t, "Alice Example", accessClaims.FullName)
	assert.Equal(t, userID.String(), accessClaims.Subject)

	// Parse refresh token
	refreshClaims, err := jwtService.ParseRefreshToken(pair.RefreshToken)
	assert.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
}

func TestJWTService_CrossSecretRejection(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	pair, err := jwtService.IssuePair(uuid.New(), "alice", "")
	assert.NoError(t, err)

	// An access token must not verify as a refresh token and vice versa.
	_, err = jwtService.ParseRefreshToken(pair.AccessToken)
	assert.Error(t, err)

	_, err = jwtService.ParseAccessToken(pair.RefreshToken)
	assert.Error(t, err)
}

func TestJWTService_TypeClaimRejection(t *testing.T) {
	// The type claim guards cross-use on its own, even when both tokens
	// are signed with the same secret. Constructed directly because the
	// public constructor rejects identical secrets.
	jwtService := &jwtService{
		accessSecret:  "one_shared_secret_key_very_long_for_testing",
		refreshSecret: "one_shared_secret_key_very_long_for_testing",
		accessTTL:     15 * time.Minute,
		refreshTTL:    7 * 24 * time.Hour,
	}

	pair, err := jwtService.IssuePair(uuid.New(), "alice", "")
	assert.NoError(t, err)

	_, err = jwtService.ParseAccessToken(pair.RefreshToken)
	assert.Error(t, err)

	_, err = jwtService.ParseRefreshToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	claims, err := jwtService.ParseAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)

	// Token signed with a different secret
	other := testConfig()
	other.SecretKey.Access = "some_other_access_secret_entirely"
	other.SecretKey.Refresh = "some_other_refresh_secret_entirely"
	otherService, err := NewJWTService(other)
	assert.NoError(t, err)

	pair, err := otherService.IssuePair(uuid.New(), "bob", "")
	assert.NoError(t, err)

	_, err = jwtService.ParseAccessToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// Issue an already-expired access token by constructing the service
	// directly; the public constructor rejects non-positive expiries.
	jwtService := &jwtService{
		accessSecret:  "test_access_secret_key_very_long_for_testing",
		refreshSecret: "test_refresh_secret_key_very_long_for_testing",
		accessTTL:     -time.Minute,
		refreshTTL:    7 * 24 * time.Hour,
	}

	pair, err := jwtService.IssuePair(uuid.New(), "alice", "")
	assert.NoError(t, err)

	_, err = jwtService.ParseAccessToken(pair.AccessToken)
	assert.Error(t, err)

	// Refresh token still carries its own positive TTL.
	_, err = jwtService.ParseRefreshToken(pair.RefreshToken)
	assert.NoError(t, err)
}

func TestJWTService_ConstructorValidation(t *testing.T) {
	// Missing secrets
	cfg := testConfig()
	cfg.SecretKey.Access = ""
	_, err := NewJWTService(cfg)
	assert.Error(t, err)

	// Identical secrets
	cfg = testConfig()
	cfg.SecretKey.Refresh = cfg.SecretKey.Access
	_, err = NewJWTService(cfg)
	assert.Error(t, err)

	// Missing expiries
	cfg = testConfig()
	cfg.Auth = nil
	_, err = NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_Durations(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	assert.Equal(t, 15*time.Minute, jwtService.AccessTokenDuration())
	assert.Equal(t, 7*24*time.Hour, jwtService.RefreshTokenDuration())
}
