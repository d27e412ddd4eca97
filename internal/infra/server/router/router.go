// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/korven/backend/internal/application/usecase/analytics"
	"github.com/korven/backend/internal/integration/entrypoint/controller"
	"github.com/korven/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	userController      *controller.UserController
	businessController  *controller.BusinessController
	categoryController  *controller.CategoryController
	productController   *controller.ProductController
	saleController      *controller.SaleController
	analyticsController *controller.AnalyticsController
	goalController      *controller.GoalController
	authRateLimiter     *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
	memberMiddleware    *middleware.MembershipMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	businessController *controller.BusinessController,
	categoryController *controller.CategoryController,
	productController *controller.ProductController,
	saleController *controller.SaleController,
	analyticsController *controller.AnalyticsController,
	goalController *controller.GoalController,
	authRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	memberMiddleware *middleware.MembershipMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		userController:      userController,
		businessController:  businessController,
		categoryController:  categoryController,
		productController:   productController,
		saleController:      saleController,
		analyticsController: analyticsController,
		goalController:      goalController,
		authRateLimiter:     authRateLimiter,
		authMiddleware:      authMiddleware,
		memberMiddleware:    memberMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery(), middleware.RequestLogger())

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.authController.Register)
		auth.POST("/login", r.authRateLimiter.Middleware(), r.authController.Login)
		auth.POST("/forgot-password", r.authRateLimiter.Middleware(), r.authController.ForgotPassword)
		auth.POST("/reset-password", r.authController.ResetPassword)
	}

	users := v1.Group("/users")
	users.Use(r.authMiddleware.Authenticate())
	{
		users.GET("/me", r.userController.Me)
		users.GET("/:userId", r.userController.Get)
		users.PUT("/:userId/profile", r.userController.UpdateProfile)
		users.PUT("/:userId/password", r.userController.ChangePassword)
	}

	businesses := v1.Group("/businesses")
	businesses.Use(r.authMiddleware.Authenticate())
	{
		businesses.POST("", r.businessController.Create)
		businesses.GET("", r.businessController.List)
		businesses.POST("/join", r.businessController.Join)
	}

	// Membership is checked before any scoped handler binds its body.
	scoped := businesses.Group("/:businessId")
	scoped.Use(r.memberMiddleware.RequireMembership())
	{
		scoped.DELETE("", r.businessController.Delete)
		scoped.GET("/detail", r.businessController.Detail)
		scoped.GET("/members", r.businessController.Members)
		scoped.GET("/employees", r.businessController.Employees)
		scoped.PATCH("/members/:userId/status", r.businessController.UpdateMemberStatus)
		scoped.PATCH("/members/:userId/role", r.businessController.UpdateMemberRole)
	}
	r.setupCatalogRoutes(scoped)
	r.setupSaleRoutes(scoped)
	r.setupAnalyticsRoutes(scoped)
	r.setupGoalRoutes(scoped)
}

func (r *Router) setupCatalogRoutes(scoped *gin.RouterGroup) {
	categories := scoped.Group("/categories")
	{
		categories.GET("", r.categoryController.List)
		categories.POST("", r.categoryController.Create)
		categories.PATCH("/:categoryId", r.categoryController.Update)
		categories.DELETE("/:categoryId", r.categoryController.Delete)
	}

	products := scoped.Group("/products")
	{
		products.GET("", r.productController.List)
		products.POST("", r.productController.Create)
		products.PUT("/:productId", r.productController.Update)
		products.DELETE("/:productId", r.productController.Delete)
	}
}

func (r *Router) setupSaleRoutes(scoped *gin.RouterGroup) {
	sales := scoped.Group("/sales")
	{
		sales.GET("", r.saleController.List)
		sales.POST("", r.saleController.Create)
		sales.GET("/:saleId", r.saleController.Get)
	}
}

func (r *Router) setupAnalyticsRoutes(scoped *gin.RouterGroup) {
	stats := scoped.Group("/analytics")
	{
		stats.GET("/revenue/by-category", r.analyticsController.CategoryBreakdown(analytics.MeasureRevenue))
		stats.GET("/profit/by-category", r.analyticsController.CategoryBreakdown(analytics.MeasureProfit))
		stats.GET("/revenue/total", r.analyticsController.MonthlyTotals(analytics.MeasureRevenue))
		stats.GET("/profit/total", r.analyticsController.MonthlyTotals(analytics.MeasureProfit))
	}
}

// setupGoalRoutes registers the goal endpoints. Static segments such as
// /summary take precedence over /:goalId.
func (r *Router) setupGoalRoutes(scoped *gin.RouterGroup) {
	goals := scoped.Group("/goals")
	{
		goals.GET("", r.goalController.List)
		goals.POST("", r.goalController.Create)
		goals.GET("/summary", r.goalController.Summary)
		goals.GET("/historical", r.goalController.Historical)
		goals.GET("/:goalId", r.goalController.Get)
		goals.GET("/:goalId/report", r.goalController.Report)
		goals.GET("/:goalId/report.xlsx", r.goalController.Export)
		goals.PUT("/:goalId", r.goalController.Update)
		goals.DELETE("/:goalId", r.goalController.Delete)
	}
}
