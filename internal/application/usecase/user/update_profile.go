package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
	domainerror "github.com/korven/backend/internal/domain/error"
	"github.com/korven/backend/internal/domain/valueobject"
)

// UpdateProfileInput represents a profile change. Nil fields are left unchanged.
type UpdateProfileInput struct {
	RequesterID uuid.UUID
	UserID      uuid.UUID
	Name        *string
	Email       *string
}

// UpdateProfileOutput represents the output of a profile change.
// EmailChanged tells clients to sign in again with the new address.
type UpdateProfileOutput struct {
	User         *entity.User
	EmailChanged bool
}

// UpdateProfileUseCase lets users rename themselves and change their email.
type UpdateProfileUseCase struct {
	userRepo adapter.UserRepository
	clock    adapter.Clock
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository, clock adapter.Clock) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
		clock:    clock,
	}
}

// Execute performs the profile change.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	user, err := findOwnAccount(ctx, uc.userRepo, input.RequesterID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeMissingUserFields,
				"name must not be blank",
				domainerror.ErrMissingUserFields,
			)
		}
		user.Name = name
	}

	emailChanged := false
	if input.Email != nil {
		email := valueobject.NormalizeEmail(*input.Email)
		if !valueobject.IsValidEmail(email) {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeUserInvalidEmail,
				"invalid email format",
				domainerror.ErrInvalidEmail,
			)
		}
		if email != user.Email {
			exists, err := uc.userRepo.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, fmt.Errorf("failed to check email existence: %w", err)
			}
			if exists {
				return nil, emailTakenError()
			}
			user.Email = email
			emailChanged = true
		}
	}

	user.UpdatedAt = uc.clock.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			return nil, emailTakenError()
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	slog.Info("Profile updated", "user_id", user.ID, "email_changed", emailChanged)

	return &UpdateProfileOutput{
		User:         user,
		EmailChanged: emailChanged,
	}, nil
}

func emailTakenError() error {
	return domainerror.NewUserError(
		domainerror.ErrCodeUserEmailTaken,
		"email is already in use",
		domainerror.ErrEmailAlreadyExists,
	)
}

// findOwnAccount loads userID after checking that the requester is that user.
func findOwnAccount(ctx context.Context, userRepo adapter.UserRepository, requesterID, userID uuid.UUID) (*entity.User, error) {
	if requesterID != userID {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeForeignAccount,
			"you can only modify your own account",
			domainerror.ErrForeignAccount,
		)
	}

	user, err := userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeUserAccountNotFound,
				"user not found",
				err,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
