package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/repositories"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetUserByEmail(ctx context.Context, exec repositories.Executor, email string) (models.User, error) {
	args := m.Called(ctx, exec, email)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *UserRepository) CreateUser(ctx context.Context, exec repositories.Executor, input models.CreateUserInput) (models.User, error) {
	args := m.Called(ctx, exec, input)
	return args.Get(0).(models.User), args.Error(1)
}
