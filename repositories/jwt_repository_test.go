package repositories

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/repositories/clock"
)

func TestJwtRepository_RoundTrip(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := NewJwtRepository([]byte("secret"), time.Hour, clock.NewMock(now))

	token, err := repo.EncodeAccessToken("admin@printfarm.local")
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)
	assert.Equal(t, now.Add(time.Hour), token.ExpiresAt)

	claims, err := repo.ValidateAccessToken(token.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@printfarm.local", claims.Email)
	assert.True(t, claims.ExpiresAt.Equal(now.Add(time.Hour)))
}

func TestJwtRepository_Expired(t *testing.T) {
	c := clock.NewMock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	repo := NewJwtRepository([]byte("secret"), time.Hour, c)

	token, err := repo.EncodeAccessToken("admin@printfarm.local")
	require.NoError(t, err)

	c.Advance(2 * time.Hour)
	_, err = repo.ValidateAccessToken(token.Token)
	assert.True(t, errors.Is(err, models.UnAuthorizedError))
}

func TestJwtRepository_WrongSignature(t *testing.T) {
	c := clock.NewMock(time.Now())
	token, err := NewJwtRepository([]byte("other"), time.Hour, c).EncodeAccessToken("admin@printfarm.local")
	require.NoError(t, err)

	_, err = NewJwtRepository([]byte("secret"), time.Hour, c).ValidateAccessToken(token.Token)
	assert.True(t, errors.Is(err, models.UnAuthorizedError))
}

func TestJwtRepository_MissingSubject(t *testing.T) {
	now := time.Now()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewJwtRepository([]byte("secret"), time.Hour, clock.NewMock(now)).ValidateAccessToken(signed)
	assert.True(t, errors.Is(err, models.ErrInvalidToken))
	assert.True(t, errors.Is(err, models.UnAuthorizedError))
}

func TestJwtRepository_Garbage(t *testing.T) {
	repo := NewJwtRepository([]byte("secret"), time.Hour, clock.New())

	_, err := repo.ValidateAccessToken("not-a-token")
	assert.True(t, errors.Is(err, models.UnAuthorizedError))
}
