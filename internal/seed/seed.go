// Package seed creates the initial teacher account on an empty database.
package seed

import (
	"context"
	"fmt"

	"github.com/okutan/lexbook/internal/app/models"
	"github.com/okutan/lexbook/internal/app/repositories"
	"github.com/okutan/lexbook/internal/config"
	"github.com/okutan/lexbook/internal/pkg/auth"
	"github.com/okutan/lexbook/internal/pkg/logger"
)

// SeedDefaultTeacher creates the configured teacher account when the user
// table is empty. Without a seeded teacher a fresh deployment has no account
// able to create word books or classes. A blank password disables seeding.
func SeedDefaultTeacher(ctx context.Context, cfg *config.Config, userRepo *repositories.UserRepository) error {
	if cfg.Seed.TeacherPassword == "" {
		logger.Debug().Msg("Teacher seeding disabled, no password configured")
		return nil
	}

	count, err := userRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := auth.HashPassword(cfg.Seed.TeacherPassword)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	teacher := &models.User{
		Username: cfg.Seed.TeacherUsername,
		Email:    cfg.Seed.TeacherEmail,
		Password: hashed,
		Role:     models.RoleTeacher,
	}
	if err := userRepo.Create(ctx, teacher); err != nil {
		return fmt.Errorf("failed to create seed teacher: %w", err)
	}

	logger.Info().Str("username", teacher.Username).Msg("Seeded default teacher account")
	return nil
}
