package usecases

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/repositories"
	"github.com/printfarm/printfarm-backend/usecases/executor_factory"
)

type userRepository interface {
	GetUserByEmail(ctx context.Context, exec repositories.Executor, email string) (models.User, error)
	CreateUser(ctx context.Context, exec repositories.Executor, input models.CreateUserInput) (models.User, error)
}

type AuthUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	userRepository  userRepository
	jwtRepository   repositories.JwtRepository
}

// Login checks the credentials and issues an access token. Unknown users and wrong
// passwords return the same error.
func (usecase *AuthUsecase) Login(ctx context.Context, email, password string) (models.AccessToken, error) {
	user, err := usecase.userRepository.GetUserByEmail(ctx,
		usecase.executorFactory.NewExecutor(), strings.TrimSpace(email))
	if errors.Is(err, models.NotFoundError) {
		return models.AccessToken{}, errors.WithStack(models.ErrInvalidCredentials)
	} else if err != nil {
		return models.AccessToken{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return models.AccessToken{}, errors.WithStack(models.ErrInvalidCredentials)
	}

	return usecase.jwtRepository.EncodeAccessToken(user.Email)
}

// ValidateToken returns the user the token was issued to.
func (usecase *AuthUsecase) ValidateToken(ctx context.Context, token string) (models.User, error) {
	claims, err := usecase.jwtRepository.ValidateAccessToken(token)
	if err != nil {
		return models.User{}, err
	}

	user, err := usecase.userRepository.GetUserByEmail(ctx, usecase.executorFactory.NewExecutor(), claims.Email)
	if errors.Is(err, models.NotFoundError) {
		return models.User{}, errors.WithStack(models.ErrUnknownUser)
	}
	return user, err
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "could not hash password")
	}
	return string(hashed), nil
}
