package usecases

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/usecases/executor_factory"
	"github.com/printfarm/printfarm-backend/utils"
)

type SeedUseCase struct {
	executorFactory executor_factory.ExecutorFactory
	userRepository  userRepository
}

// SeedAdmin creates the admin user if it does not exist yet. An existing user keeps its password.
func (usecase *SeedUseCase) SeedAdmin(ctx context.Context, config models.SeedConfiguration) error {
	logger := utils.LoggerFromContext(ctx)
	if config.AdminEmail == "" {
		logger.WarnContext(ctx, "No admin email configured, skipping admin user creation")
		return nil
	}

	exec := usecase.executorFactory.NewExecutor()
	_, err := usecase.userRepository.GetUserByEmail(ctx, exec, config.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, models.NotFoundError) {
		return err
	}

	if config.AdminPassword == "" {
		return errors.Newf("admin user %s does not exist and no admin password is configured", config.AdminEmail)
	}
	hashed, err := HashPassword(config.AdminPassword)
	if err != nil {
		return err
	}

	_, err = usecase.userRepository.CreateUser(ctx, exec, models.CreateUserInput{
		Email:          config.AdminEmail,
		HashedPassword: hashed,
	})
	// ignore user created concurrently by another instance
	if errors.Is(err, models.ConflictError) {
		return nil
	}
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, fmt.Sprintf("Admin user %s created", config.AdminEmail))
	return nil
}
