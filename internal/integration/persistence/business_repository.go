// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
	domainerror "github.com/korven/backend/internal/domain/error"
	"github.com/korven/backend/internal/integration/persistence/model"
)

// ownersFirst sorts owner memberships ahead of employees.
const ownersFirst = "CASE WHEN business_memberships.role = 'OWNER' THEN 0 ELSE 1 END"

// businessRepository implements the adapter.BusinessRepository interface.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository creates a new business repository instance.
func NewBusinessRepository(db *gorm.DB) adapter.BusinessRepository {
	return &businessRepository{
		db: db,
	}
}

// Create persists a business together with its owner membership.
func (r *businessRepository) Create(ctx context.Context, business *entity.Business, owner *entity.Membership) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.BusinessFromEntity(business)).Error; err != nil {
			return err
		}
		return tx.Create(model.MembershipFromEntity(owner)).Error
	})
}

// FindByID retrieves a business by its ID.
func (r *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	var businessModel model.BusinessModel
	result := conn(ctx, r.db).Where("id = ?", id).First(&businessModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBusinessNotFound
		}
		return nil, result.Error
	}
	return businessModel.ToEntity(), nil
}

// FindByJoinCode retrieves the business whose enabled join code matches code.
func (r *businessRepository) FindByJoinCode(ctx context.Context, code string) (*entity.Business, error) {
	var businessModel model.BusinessModel
	result := conn(ctx, r.db).
		Where("join_code = ? AND join_code_enabled = ?", code, true).
		First(&businessModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBusinessNotFound
		}
		return nil, result.Error
	}
	return businessModel.ToEntity(), nil
}

// ExistsByJoinCode checks whether a join code is already taken.
func (r *businessRepository) ExistsByJoinCode(ctx context.Context, code string) (bool, error) {
	var count int64
	result := conn(ctx, r.db).
		Model(&model.BusinessModel{}).
		Where("join_code = ?", code).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Delete removes a business and every row that belongs to it.
func (r *businessRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		goalIDs := tx.Model(&model.GoalModel{}).Select("id").Where("business_id = ?", id)
		saleIDs := tx.Model(&model.SaleModel{}).Select("id").Where("business_id = ?", id)

		steps := []struct {
			model any
			query string
			arg   any
		}{
			{&model.GoalCategoryTargetModel{}, "goal_id IN (?)", goalIDs},
			{&model.GoalModel{}, "business_id = ?", id},
			{&model.SaleItemModel{}, "sale_id IN (?)", saleIDs},
			{&model.SaleModel{}, "business_id = ?", id},
			{&model.ProductModel{}, "business_id = ?", id},
			{&model.CategoryModel{}, "business_id = ?", id},
			{&model.MembershipModel{}, "business_id = ?", id},
		}
		for _, step := range steps {
			if err := tx.Where(step.query, step.arg).Delete(step.model).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&model.BusinessModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrBusinessNotFound
		}
		return nil
	})
}

// AddMembership persists a new membership.
func (r *businessRepository) AddMembership(ctx context.Context, membership *entity.Membership) error {
	result := conn(ctx, r.db).Create(model.MembershipFromEntity(membership))
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerror.ErrAlreadyMember
		}
		return result.Error
	}
	return nil
}

// FindMembership retrieves the membership of a user in a business.
func (r *businessRepository) FindMembership(ctx context.Context, businessID, userID uuid.UUID) (*entity.Membership, error) {
	var membershipModel model.MembershipModel
	result := conn(ctx, r.db).
		Where("business_id = ? AND user_id = ?", businessID, userID).
		First(&membershipModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMembershipNotFound
		}
		return nil, result.Error
	}
	return membershipModel.ToEntity(), nil
}

// FindMembershipsByUser lists a user's memberships with their business names.
func (r *businessRepository) FindMembershipsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Membership, error) {
	var rows []model.MembershipWithBusiness
	result := conn(ctx, r.db).
		Model(&model.MembershipModel{}).
		Select("business_memberships.*, businesses.name AS business_name").
		Joins("JOIN businesses ON businesses.id = business_memberships.business_id").
		Where("business_memberships.user_id = ?", userID).
		Order("businesses.name ASC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	memberships := make([]*entity.Membership, len(rows))
	for i := range rows {
		memberships[i] = rows[i].ToEntity()
		memberships[i].BusinessName = rows[i].BusinessName
	}
	return memberships, nil
}

// UpdateMembership saves role and status of a membership.
func (r *businessRepository) UpdateMembership(ctx context.Context, membership *entity.Membership) error {
	result := conn(ctx, r.db).
		Model(&model.MembershipModel{}).
		Where("id = ?", membership.ID).
		Updates(map[string]any{
			"role":   string(membership.Role),
			"status": string(membership.Status),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrMembershipNotFound
	}
	return nil
}

// FindMembers lists the memberships of a business, owners first, then by user name.
func (r *businessRepository) FindMembers(ctx context.Context, filter adapter.MemberFilter) ([]*entity.Membership, error) {
	query := conn(ctx, r.db).
		Model(&model.MembershipModel{}).
		Select("business_memberships.*, users.name AS user_name, users.email AS user_email").
		Joins("JOIN users ON users.id = business_memberships.user_id").
		Where("business_memberships.business_id = ?", filter.BusinessID)
	if filter.Role != nil {
		query = query.Where("business_memberships.role = ?", string(*filter.Role))
	}
	if filter.Status != nil {
		query = query.Where("business_memberships.status = ?", string(*filter.Status))
	}

	var rows []model.MembershipWithUser
	result := query.
		Order(ownersFirst).
		Order("users.name ASC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	members := make([]*entity.Membership, len(rows))
	for i := range rows {
		members[i] = rows[i].ToEntity()
		members[i].UserName = rows[i].UserName
		members[i].UserEmail = rows[i].UserEmail
	}
	return members, nil
}

// Stats counts members, catalog entries and sales of a business.
func (r *businessRepository) Stats(ctx context.Context, businessID uuid.UUID) (*entity.BusinessStats, error) {
	db := conn(ctx, r.db)
	stats := &entity.BusinessStats{}

	var members struct {
		Total  int64 `gorm:"column:total"`
		Active int64 `gorm:"column:active"`
	}
	err := db.Model(&model.MembershipModel{}).
		Select("COUNT(*) AS total, COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS active", string(entity.MembershipStatusActive)).
		Where("business_id = ?", businessID).
		Scan(&members).Error
	if err != nil {
		return nil, err
	}
	stats.TotalMembers = members.Total
	stats.ActiveMembers = members.Active

	if err := db.Model(&model.CategoryModel{}).Where("business_id = ?", businessID).Count(&stats.TotalCategories).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.ProductModel{}).Where("business_id = ?", businessID).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}

	var sales struct {
		Count   int64           `gorm:"column:count"`
		Revenue decimal.Decimal `gorm:"column:revenue"`
	}
	err = db.Model(&model.SaleModel{}).
		Select("COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS revenue").
		Where("business_id = ?", businessID).
		Scan(&sales).Error
	if err != nil {
		return nil, err
	}
	stats.TotalSales = sales.Count
	stats.TotalRevenue = sales.Revenue

	return stats, nil
}
