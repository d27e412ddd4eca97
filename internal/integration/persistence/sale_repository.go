// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/entity"
	domainerror "github.com/korven/backend/internal/domain/error"
	"github.com/korven/backend/internal/integration/persistence/model"
)

// saleRepository implements the adapter.SaleRepository interface.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository instance.
func NewSaleRepository(db *gorm.DB) adapter.SaleRepository {
	return &saleRepository{
		db: db,
	}
}

// Create persists a sale together with its items.
func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	saleModel := model.SaleFromEntity(sale)
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(saleModel).Error; err != nil {
			return err
		}
		if len(saleModel.Items) == 0 {
			return nil
		}
		return tx.Create(&saleModel.Items).Error
	})
}

// FindByIDAndBusiness retrieves a sale of the business with its items.
func (r *saleRepository) FindByIDAndBusiness(ctx context.Context, id, businessID uuid.UUID) (*entity.Sale, error) {
	var saleModel model.SaleModel
	result := conn(ctx, r.db).
		Preload("Items").
		Where("id = ? AND business_id = ?", id, businessID).
		First(&saleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSaleNotFound
		}
		return nil, result.Error
	}
	return saleModel.ToEntity(), nil
}

// List retrieves the sales matching filter, newest first.
func (r *saleRepository) List(ctx context.Context, filter adapter.SaleFilter) ([]*entity.Sale, error) {
	query := conn(ctx, r.db).
		Preload("Items").
		Where("business_id = ?", filter.BusinessID)
	if filter.CreatedBy != nil {
		query = query.Where("created_by_user_id = ?", *filter.CreatedBy)
	}
	if filter.From != nil {
		query = query.Where("occurred_at >= ?", filter.From.UTC())
	}
	if filter.To != nil {
		query = query.Where("occurred_at < ?", filter.To.UTC())
	}

	var saleModels []model.SaleModel
	if err := query.Order("occurred_at DESC").Find(&saleModels).Error; err != nil {
		return nil, err
	}

	sales := make([]*entity.Sale, len(saleModels))
	for i := range saleModels {
		sales[i] = saleModels[i].ToEntity()
	}
	return sales, nil
}
