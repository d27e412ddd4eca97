package business

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
	domainerror "github.com/korven/backend/internal/domain/error"
)

// GetBusinessDetailInput represents the input for a business overview.
type GetBusinessDetailInput struct {
	UserID     uuid.UUID
	BusinessID uuid.UUID
}

// GetBusinessDetailOutput gathers a business with its active members, catalog and counters.
type GetBusinessDetailOutput struct {
	Business   *entity.Business
	Caller     *entity.Membership
	Members    []*entity.Membership
	Categories []*entity.Category
	Products   []*entity.Product
	Stats      *entity.BusinessStats
}

// GetBusinessDetailUseCase assembles the business overview shown to members.
type GetBusinessDetailUseCase struct {
	gate         *MembershipGate
	businessRepo adapter.BusinessRepository
	categoryRepo adapter.CategoryRepository
	productRepo  adapter.ProductRepository
}

// NewGetBusinessDetailUseCase creates a new GetBusinessDetailUseCase instance.
func NewGetBusinessDetailUseCase(
	gate *MembershipGate,
	businessRepo adapter.BusinessRepository,
	categoryRepo adapter.CategoryRepository,
	productRepo adapter.ProductRepository,
) *GetBusinessDetailUseCase {
	return &GetBusinessDetailUseCase{
		gate:         gate,
		businessRepo: businessRepo,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

// Execute loads the overview. The parts are read concurrently.
func (uc *GetBusinessDetailUseCase) Execute(ctx context.Context, input GetBusinessDetailInput) (*GetBusinessDetailOutput, error) {
	caller, err := uc.gate.CheckActiveMembership(ctx, input.UserID, input.BusinessID)
	if err != nil {
		return nil, err
	}

	out := &GetBusinessDetailOutput{Caller: caller}
	active := entity.MembershipStatusActive

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		business, err := uc.businessRepo.FindByID(gctx, input.BusinessID)
		if errors.Is(err, domainerror.ErrBusinessNotFound) {
			return domainerror.NewBusinessError(
				domainerror.ErrCodeBusinessNotFound,
				"business not found",
				err,
			)
		}
		if err != nil {
			return fmt.Errorf("failed to find business: %w", err)
		}
		out.Business = business
		return nil
	})
	g.Go(func() error {
		members, err := uc.businessRepo.FindMembers(gctx, adapter.MemberFilter{BusinessID: input.BusinessID, Status: &active})
		if err != nil {
			return fmt.Errorf("failed to list members: %w", err)
		}
		out.Members = members
		return nil
	})
	g.Go(func() error {
		categories, err := uc.categoryRepo.FindByBusiness(gctx, input.BusinessID)
		if err != nil {
			return fmt.Errorf("failed to list categories: %w", err)
		}
		out.Categories = categories
		return nil
	})
	g.Go(func() error {
		products, err := uc.productRepo.FindByBusiness(gctx, input.BusinessID)
		if err != nil {
			return fmt.Errorf("failed to list products: %w", err)
		}
		out.Products = products
		return nil
	})
	g.Go(func() error {
		stats, err := uc.businessRepo.Stats(gctx, input.BusinessID)
		if err != nil {
			return fmt.Errorf("failed to compute business stats: %w", err)
		}
		out.Stats = stats
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
