package persistence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/korven/backend/internal/domain/entity"
	"github.com/korven/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.AllModels()...))
	return db
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type seed struct {
	t          *testing.T
	db         *gorm.DB
	businessID uuid.UUID
	ownerID    uuid.UUID
}

func newSeed(t *testing.T, db *gorm.DB) *seed {
	t.Helper()

	owner := entity.NewUser(uuid.NewString()+"@korven.test", "Owner", "hash")
	require.NoError(t, NewUserRepository(db).Create(context.Background(), owner))

	business := entity.NewBusiness("Cafe", uuid.NewString()[:8])
	membership := entity.NewMembership(business.ID, owner.ID, entity.MembershipRoleOwner)
	require.NoError(t, NewBusinessRepository(db).Create(context.Background(), business, membership))

	return &seed{t: t, db: db, businessID: business.ID, ownerID: owner.ID}
}

func (s *seed) category(name string) *entity.Category {
	s.t.Helper()
	category := entity.NewCategory(s.businessID, name, entity.DefaultCategoryIcon)
	require.NoError(s.t, NewCategoryRepository(s.db).Create(context.Background(), category))
	return category
}

func (s *seed) product(category *entity.Category, name, price, cost string) *entity.Product {
	s.t.Helper()
	product := entity.NewProduct(s.businessID, category.ID, name, "", money(price), money(cost))
	require.NoError(s.t, NewProductRepository(s.db).Create(context.Background(), product))
	product.CategoryName = category.Name
	return product
}

func (s *seed) sale(at time.Time, product *entity.Product, qty int) *entity.Sale {
	s.t.Helper()
	sale := entity.NewSale(s.businessID, s.ownerID, at)
	sale.AddItem(product, product.CategoryName, qty)
	require.NoError(s.t, NewSaleRepository(s.db).Create(context.Background(), sale))
	return sale
}

func (s *seed) goal(name, start, end string, targets map[*entity.Category]string) *entity.Goal {
	s.t.Helper()
	goal := entity.NewGoal(s.businessID, name, day(start), day(end), nil, time.Now())
	for category, amount := range targets {
		goal.AddCategoryTarget(category, money(amount))
	}
	require.NoError(s.t, NewGoalRepository(s.db).Create(context.Background(), goal))
	return goal
}
