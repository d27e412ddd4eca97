package business

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
	domainerror "github.com/korven/backend/internal/domain/error"
)

const (
	// MaxBusinessNameLength is the maximum allowed length for business names.
	MaxBusinessNameLength = 120

	joinCodeLength   = 8
	joinCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	joinCodeAttempts = 5
)

// CreateBusinessInput represents the input for business creation.
type CreateBusinessInput struct {
	Name   string
	UserID uuid.UUID
}

// CreateBusinessOutput represents the output of business creation.
type CreateBusinessOutput struct {
	Business   *entity.Business
	Membership *entity.Membership
}

// CreateBusinessUseCase handles business creation logic.
type CreateBusinessUseCase struct {
	businessRepo adapter.BusinessRepository
}

// NewCreateBusinessUseCase creates a new CreateBusinessUseCase instance.
func NewCreateBusinessUseCase(businessRepo adapter.BusinessRepository) *CreateBusinessUseCase {
	return &CreateBusinessUseCase{
		businessRepo: businessRepo,
	}
}

// Execute creates the business and makes the caller its owner.
func (uc *CreateBusinessUseCase) Execute(ctx context.Context, input CreateBusinessInput) (*CreateBusinessOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || len(name) > MaxBusinessNameLength {
		return nil, domainerror.NewBusinessError(
			domainerror.ErrCodeMissingBusinessFields,
			fmt.Sprintf("business name is required and must not exceed %d characters", MaxBusinessNameLength),
			domainerror.ErrMissingBusinessFields,
		)
	}

	code, err := uc.uniqueJoinCode(ctx)
	if err != nil {
		return nil, err
	}

	business := entity.NewBusiness(name, code)
	owner := entity.NewMembership(business.ID, input.UserID, entity.MembershipRoleOwner)

	if err := uc.businessRepo.Create(ctx, business, owner); err != nil {
		return nil, fmt.Errorf("failed to create business: %w", err)
	}

	slog.Info("Business created", "business_id", business.ID, "owner_id", input.UserID)

	return &CreateBusinessOutput{
		Business:   business,
		Membership: owner,
	}, nil
}

func (uc *CreateBusinessUseCase) uniqueJoinCode(ctx context.Context) (string, error) {
	for i := 0; i < joinCodeAttempts; i++ {
		code, err := generateJoinCode()
		if err != nil {
			return "", fmt.Errorf("failed to generate join code: %w", err)
		}
		taken, err := uc.businessRepo.ExistsByJoinCode(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check join code: %w", err)
		}
		if !taken {
			return code, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique join code after %d attempts", joinCodeAttempts)
}

// generateJoinCode returns a random code without look-alike characters.
func generateJoinCode() (string, error) {
	buf := make([]byte, joinCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = joinCodeAlphabet[int(b)%len(joinCodeAlphabet)]
	}
	return string(buf), nil
}
