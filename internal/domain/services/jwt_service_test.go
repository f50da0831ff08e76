package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"osintranet-http-service/internal/domain/models"
	"osintranet-http-service/internal/error/code"
	"osintranet-http-service/internal/infrastructure/config"
	"osintranet-http-service/internal/infrastructure/database"
	"osintranet-http-service/pkg/utils"
)

func newTestJWTService(t *testing.T) (InterfaceJWTService, *gorm.DB) {
	t.Helper()
	pool := newTestPool(t, "auth")
	require.NoError(t, database.Migrate(pool.DB, database.MigrationAuto))

	for _, u := range []models.User{
		{Username: "ole", MailAddress: "ole@example.dk", Role: models.RoleAdmin, Status: "active"},
		{Username: "bente", MailAddress: "bente@example.dk", Role: models.RoleUser, Status: "locked"},
	} {
		hash, err := utils.HashPassword("hemmelig")
		require.NoError(t, err)
		u.Password = hash
		require.NoError(t, pool.DB.Create(&u).Error)
	}

	cfg := &config.Config{JWTSecretKey: "test-secret", JWTTTL: time.Hour}
	// tokens are validated against the wall clock
	return NewJWTService(cfg, pool.DB, UTCClock), pool.DB
}

func TestLogin(t *testing.T) {
	s, _ := newTestJWTService(t)
	ctx := context.Background()

	result, err := s.Login(ctx, "ole", "hemmelig")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, result.Role)
	assert.Equal(t, "ole@example.dk", result.MailAddress)
	assert.WithinDuration(t, time.Now().Add(time.Hour), result.ExpiresAt, time.Minute)

	claims, err := s.ExtractClaims(result.Token)
	require.NoError(t, err)
	principal := claims.Principal()
	assert.Equal(t, result.UserID, principal.UserID)
	assert.True(t, principal.IsAdmin())

	_, err = s.Login(ctx, "ole", "forkert")
	requireCode(t, err, code.ErrUserPasswordIncorrect)
	_, err = s.Login(ctx, "karen", "hemmelig")
	requireCode(t, err, code.ErrUserPasswordIncorrect)
	_, err = s.Login(ctx, "bente", "hemmelig")
	requireCode(t, err, code.ErrForbidden)
}

func TestExtractClaimsRejectsForeignTokens(t *testing.T) {
	s, _ := newTestJWTService(t)

	_, err := s.ExtractClaims("not-a-token")
	requireCode(t, err, code.ErrTokenInvalid)

	other := NewJWTService(&config.Config{JWTSecretKey: "other-secret"}, nil, UTCClock)
	token, err := other.GenerateToken(&models.User{Username: "ole", Role: models.RoleAdmin})
	require.NoError(t, err)
	_, err = s.ExtractClaims(token)
	requireCode(t, err, code.ErrTokenInvalid)

	// same secret, other issuer
	now := time.Now()
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, &JWTClaims{
		Username: "ole",
		Role:     models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "somebody-else",
		},
	})
	signed, err := foreign.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = s.ExtractClaims(signed)
	requireCode(t, err, code.ErrTokenInvalid)

	expired := NewJWTService(&config.Config{JWTSecretKey: "test-secret"}, nil, fixedClock)
	token, err = expired.GenerateToken(&models.User{Username: "ole"})
	require.NoError(t, err)
	_, err = s.ExtractClaims(token)
	requireCode(t, err, code.ErrTokenInvalid)
}
