package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/adapter"
	domainerror "github.com/korven/backend/internal/domain/error"
)

// ChangePasswordInput represents a password change by the signed-in user.
type ChangePasswordInput struct {
	RequesterID     uuid.UUID
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// ChangePasswordUseCase replaces a password after checking the current one.
type ChangePasswordUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	clock           adapter.Clock
}

// NewChangePasswordUseCase creates a new ChangePasswordUseCase instance.
func NewChangePasswordUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	clock adapter.Clock,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		clock:           clock,
	}
}

// Execute performs the password change.
func (uc *ChangePasswordUseCase) Execute(ctx context.Context, input ChangePasswordInput) error {
	user, err := findOwnAccount(ctx, uc.userRepo, input.RequesterID, input.UserID)
	if err != nil {
		return err
	}

	if input.CurrentPassword == "" || input.NewPassword == "" {
		return domainerror.NewUserError(
			domainerror.ErrCodeMissingUserFields,
			"current and new password are required",
			domainerror.ErrMissingUserFields,
		)
	}
	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.CurrentPassword); err != nil {
		return domainerror.NewUserError(
			domainerror.ErrCodeWrongCurrentPassword,
			"current password is incorrect",
			domainerror.ErrWrongCurrentPassword,
		)
	}
	if err := uc.passwordService.ValidatePasswordStrength(input.NewPassword); err != nil {
		return domainerror.NewUserError(
			domainerror.ErrCodeUserWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = passwordHash
	user.UpdatedAt = uc.clock.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update user password: %w", err)
	}

	slog.Info("Password changed", "user_id", user.ID)
	return nil
}
