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

// productRepository implements the adapter.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository instance.
func NewProductRepository(db *gorm.DB) adapter.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Create creates a new product in the database.
func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(model.ProductFromEntity(product)).Error
}

// FindByID retrieves a product with its category name.
func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productModel model.ProductModel
	result := conn(ctx, r.db).Preload("Category").Where("id = ?", id).First(&productModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProductNotFound
		}
		return nil, result.Error
	}
	return productModel.ToEntity(), nil
}

// FindByIDs retrieves the products with the given IDs. Unknown IDs are skipped.
func (r *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productModels []model.ProductModel
	result := conn(ctx, r.db).Preload("Category").Where("id IN ?", ids).Find(&productModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toProductEntities(productModels), nil
}

// FindByBusiness retrieves the catalog of a business ordered by name.
func (r *productRepository) FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Product, error) {
	var productModels []model.ProductModel
	result := conn(ctx, r.db).
		Preload("Category").
		Where("business_id = ?", businessID).
		Order("name ASC").
		Find(&productModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toProductEntities(productModels), nil
}

// Update updates an existing product in the database.
func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	return conn(ctx, r.db).Omit(clause.Associations).Save(model.ProductFromEntity(product)).Error
}

// Delete removes a product. Past sale items keep their snapshot.
func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).Delete(&model.ProductModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrProductNotFound
	}
	return nil
}

// ExistsByNameAndBusiness checks case-insensitively whether the business already uses the name.
func (r *productRepository) ExistsByNameAndBusiness(ctx context.Context, name string, businessID uuid.UUID, excludeID *uuid.UUID) (bool, error) {
	query := conn(ctx, r.db).
		Model(&model.ProductModel{}).
		Where("business_id = ? AND LOWER(name) = LOWER(?)", businessID, name)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByCategory reports whether any product references the category.
func (r *productRepository) ExistsByCategory(ctx context.Context, categoryID uuid.UUID) (bool, error) {
	var count int64
	result := conn(ctx, r.db).
		Model(&model.ProductModel{}).
		Where("category_id = ?", categoryID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

func toProductEntities(productModels []model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, len(productModels))
	for i := range productModels {
		products[i] = productModels[i].ToEntity()
	}
	return products
}
