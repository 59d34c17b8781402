package repositories

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/repositories/clock"
)

const jwtIssuer = "printfarm"

var ValidationAlgo = jwt.SigningMethodHS256

type JwtRepository interface {
	EncodeAccessToken(email string) (models.AccessToken, error)
	ValidateAccessToken(token string) (models.TokenClaims, error)
}

type HmacJwtRepository struct {
	signingKey []byte
	lifetime   time.Duration
	clock      clock.Clock
}

func NewJwtRepository(signingKey []byte, lifetime time.Duration, c clock.Clock) *HmacJwtRepository {
	return &HmacJwtRepository{
		signingKey: signingKey,
		lifetime:   lifetime,
		clock:      c,
	}
}

func (repo *HmacJwtRepository) EncodeAccessToken(email string) (models.AccessToken, error) {
	now := repo.clock.Now()
	expiresAt := now.Add(repo.lifetime)

	claims := jwt.RegisteredClaims{
		Subject:   email,
		Issuer:    jwtIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(ValidationAlgo, claims).SignedString(repo.signingKey)
	if err != nil {
		return models.AccessToken{}, errors.Wrap(err, "could not sign access token")
	}

	return models.AccessToken{
		Token:     signed,
		TokenType: "bearer",
		ExpiresAt: expiresAt,
	}, nil
}

func (repo *HmacJwtRepository) ValidateAccessToken(token string) (models.TokenClaims, error) {
	keyFunc := func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Wrapf(models.UnAuthorizedError,
				"unexpected signing method: %v", token.Header["alg"])
		}
		return repo.signingKey, nil
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, keyFunc,
		jwt.WithValidMethods([]string{ValidationAlgo.Alg()}),
		jwt.WithTimeFunc(repo.clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err == nil && !parsed.Valid {
		err = errors.New("token is not valid")
	}
	if err != nil {
		return models.TokenClaims{}, errors.Mark(
			errors.Wrap(err, "error parsing jwt token claims"),
			models.UnAuthorizedError,
		)
	}
	if claims.Subject == "" {
		return models.TokenClaims{}, errors.WithStack(models.ErrInvalidToken)
	}

	return models.TokenClaims{
		Email:     claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
