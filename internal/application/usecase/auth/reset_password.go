package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/korven/backend/internal/application/adapter"
	domainerror "github.com/korven/backend/internal/domain/error"
)

// ResetPasswordInput represents the input for password reset.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// ResetPasswordOutput represents the output of password reset.
type ResetPasswordOutput struct {
	Message string
}

// ResetPasswordUseCase handles password reset logic.
type ResetPasswordUseCase struct {
	userRepo          adapter.UserRepository
	passwordService   adapter.PasswordService
	resetTokenService adapter.PasswordResetTokenService
	txManager         adapter.TransactionManager
}

// NewResetPasswordUseCase creates a new ResetPasswordUseCase instance.
func NewResetPasswordUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	resetTokenService adapter.PasswordResetTokenService,
	txManager adapter.TransactionManager,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo:          userRepo,
		passwordService:   passwordService,
		resetTokenService: resetTokenService,
		txManager:         txManager,
	}
}

// Execute performs the password reset and consumes the token.
func (uc *ResetPasswordUseCase) Execute(ctx context.Context, input ResetPasswordInput) (*ResetPasswordOutput, error) {
	if err := uc.passwordService.ValidatePasswordStrength(input.NewPassword); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	resetToken, err := uc.resetTokenService.ValidateResetToken(ctx, input.Token)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidResetToken,
			"invalid or expired password reset token",
			domainerror.ErrInvalidResetToken,
		)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.NewPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	err = uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		user, err := uc.userRepo.FindByID(ctx, resetToken.UserID)
		if err != nil {
			return fmt.Errorf("failed to find user: %w", err)
		}

		user.PasswordHash = passwordHash
		user.UpdatedAt = time.Now().UTC()
		if err := uc.userRepo.Update(ctx, user); err != nil {
			return fmt.Errorf("failed to update user password: %w", err)
		}

		if err := uc.resetTokenService.InvalidateResetToken(ctx, input.Token); err != nil {
			return fmt.Errorf("failed to invalidate reset token: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Password reset", "user_id", resetToken.UserID)

	return &ResetPasswordOutput{
		Message: "Password has been successfully reset",
	}, nil
}
