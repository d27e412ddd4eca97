// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/korven/backend/config"
	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/application/usecase/analytics"
	"github.com/korven/backend/internal/application/usecase/auth"
	"github.com/korven/backend/internal/application/usecase/business"
	"github.com/korven/backend/internal/application/usecase/category"
	"github.com/korven/backend/internal/application/usecase/goal"
	"github.com/korven/backend/internal/application/usecase/product"
	"github.com/korven/backend/internal/application/usecase/sale"
	"github.com/korven/backend/internal/application/usecase/user"
	"github.com/korven/backend/internal/infra/server/router"
	"github.com/korven/backend/internal/integration/adapters"
	"github.com/korven/backend/internal/integration/email"
	"github.com/korven/backend/internal/integration/email/templates"
	"github.com/korven/backend/internal/integration/entrypoint/controller"
	"github.com/korven/backend/internal/integration/entrypoint/middleware"
	"github.com/korven/backend/internal/integration/export"
	"github.com/korven/backend/internal/integration/lock"
	"github.com/korven/backend/internal/integration/persistence"
)

// Externals are the process-level resources the injector wires against.
// Redis and Sender may be nil: a nil Redis selects the in-process locker
// and a nil Sender selects Resend, or the recording sender without an API key.
type Externals struct {
	DB     *gorm.DB
	Redis  redis.UniversalClient
	Clock  adapter.Clock
	Sender adapter.EmailSender
}

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, ext Externals) (*Injector, error) {
	db := ext.DB
	clock := ext.Clock
	if clock == nil {
		loc, err := cfg.App.Location()
		if err != nil {
			return nil, fmt.Errorf("failed to load timezone: %w", err)
		}
		clock = adapters.NewSystemClock(loc)
	}

	// Repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	businessRepo := persistence.NewBusinessRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	productRepo := persistence.NewProductRepository(db)
	saleRepo := persistence.NewSaleRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	ledger := persistence.NewRevenueLedger(db, clock.Location())
	analyticsRepo := persistence.NewAnalyticsRepository(db, clock.Location())
	emailQueueRepo := persistence.NewEmailQueueRepository(db)
	txManager := persistence.NewTransactionManager(db)

	// Adapters
	passwordService := adapters.NewPasswordService(cfg.App.BcryptCost)
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, clock)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo, clock)
	locker := newLocker(cfg.Redis, ext.Redis)
	gate := business.NewMembershipGate(businessRepo)
	calculator := goal.NewProgressCalculator(ledger, cfg.App.GoalConcurrency)

	// Email
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	sender := ext.Sender
	if sender == nil {
		sender, err = newEmailSender(cfg.Email)
		if err != nil {
			return nil, err
		}
	}
	emailService := email.NewService(emailQueueRepo, clock)
	emailWorker := email.NewWorker(emailQueueRepo, sender, renderer, clock, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Auth use cases
	authController := controller.NewAuthController(
		auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService),
		auth.NewLoginUserUseCase(userRepo, passwordService, tokenService),
		auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, cfg.App.FrontendBaseURL),
		auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService, txManager),
	)

	businessController := controller.NewBusinessController(
		business.NewCreateBusinessUseCase(businessRepo),
		business.NewListBusinessesUseCase(businessRepo),
		business.NewJoinBusinessUseCase(businessRepo),
		business.NewDeleteBusinessUseCase(gate, businessRepo),
		business.NewUpdateMembershipUseCase(gate, businessRepo),
		business.NewGetBusinessDetailUseCase(gate, businessRepo, categoryRepo, productRepo),
		business.NewListMembersUseCase(gate, businessRepo),
	)

	userController := controller.NewUserController(
		user.NewGetUserUseCase(userRepo, businessRepo),
		user.NewUpdateProfileUseCase(userRepo, clock),
		user.NewChangePasswordUseCase(userRepo, passwordService, clock),
	)

	categoryController := controller.NewCategoryController(
		category.NewListCategoriesUseCase(gate, categoryRepo),
		category.NewCreateCategoryUseCase(gate, categoryRepo),
		category.NewUpdateCategoryUseCase(gate, categoryRepo),
		category.NewDeleteCategoryUseCase(gate, categoryRepo, productRepo),
	)

	productController := controller.NewProductController(
		product.NewListProductsUseCase(gate, productRepo),
		product.NewCreateProductUseCase(gate, productRepo, categoryRepo),
		product.NewUpdateProductUseCase(gate, productRepo, categoryRepo),
		product.NewDeleteProductUseCase(gate, productRepo),
	)

	saleController := controller.NewSaleController(
		sale.NewCreateSaleUseCase(gate, saleRepo, productRepo, clock),
		sale.NewListSalesUseCase(gate, saleRepo, clock),
		sale.NewGetSaleUseCase(gate, saleRepo),
	)

	analyticsController := controller.NewAnalyticsController(
		analytics.NewGetCategoryBreakdownUseCase(gate, analyticsRepo, clock),
		analytics.NewGetMonthlyTotalsUseCase(gate, analyticsRepo, clock),
	)

	// Goal use cases
	getGoalUseCase := goal.NewGetGoalUseCase(gate, goalRepo, calculator, clock)
	goalController := controller.NewGoalController(
		goal.NewListGoalsUseCase(gate, goalRepo, calculator, clock),
		goal.NewCreateGoalUseCase(gate, goalRepo, categoryRepo, txManager, locker, calculator, clock),
		getGoalUseCase,
		goal.NewUpdateGoalUseCase(gate, goalRepo, categoryRepo, txManager, locker, calculator, clock),
		goal.NewDeleteGoalUseCase(gate, goalRepo, txManager),
		goal.NewExportGoalReportUseCase(getGoalUseCase, export.NewGoalReportWorkbook()),
	)

	healthController := controller.NewHealthController(healthCheckers(db, ext.Redis))

	authRateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	memberMiddleware := middleware.NewMembershipMiddleware(gate)

	r := router.NewRouter(
		healthController,
		authController,
		userController,
		businessController,
		categoryController,
		productController,
		saleController,
		analyticsController,
		goalController,
		authRateLimiter,
		authMiddleware,
		memberMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}

// NewRedisClient connects to the configured Redis URL.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (redis.UniversalClient, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

func newLocker(cfg config.RedisConfig, client redis.UniversalClient) adapter.BusinessLocker {
	if client == nil {
		slog.Warn("Redis unavailable, business locks are process-local")
		return lock.NewLocalLocker()
	}
	return lock.NewRedisLocker(client, lock.Config{
		TTL:           cfg.LockTTL,
		RetryInterval: cfg.LockRetryInterval,
		MaxRetries:    cfg.LockMaxRetries,
	})
}

func newEmailSender(cfg config.EmailConfig) (adapter.EmailSender, error) {
	switch {
	case cfg.ResendAPIKey == "":
		slog.Warn("RESEND_API_KEY not set, emails are recorded instead of sent")
		return email.NewRecordingSender(), nil
	case cfg.ResendBaseURL != "":
		return email.NewResendClientAt(cfg.ResendBaseURL, cfg.ResendAPIKey, cfg.FromName, cfg.FromEmail)
	default:
		return email.NewResendClient(cfg.ResendAPIKey, cfg.FromName, cfg.FromEmail), nil
	}
}

func healthCheckers(db *gorm.DB, client redis.UniversalClient) map[string]controller.HealthChecker {
	checkers := map[string]controller.HealthChecker{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if client != nil {
		checkers["redis"] = func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}
	}
	return checkers
}
