package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/printfarm/printfarm-backend/models"
)

type JwtRepository struct {
	mock.Mock
}

func (m *JwtRepository) EncodeAccessToken(email string) (models.AccessToken, error) {
	args := m.Called(email)
	return args.Get(0).(models.AccessToken), args.Error(1)
}

func (m *JwtRepository) ValidateAccessToken(token string) (models.TokenClaims, error) {
	args := m.Called(token)
	return args.Get(0).(models.TokenClaims), args.Error(1)
}
