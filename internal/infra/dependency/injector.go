// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/mos3c/budget-guy/config"
	"github.com/mos3c/budget-guy/internal/application/usecase/analytics"
	"github.com/mos3c/budget-guy/internal/application/usecase/auth"
	"github.com/mos3c/budget-guy/internal/application/usecase/budget"
	"github.com/mos3c/budget-guy/internal/application/usecase/category"
	"github.com/mos3c/budget-guy/internal/application/usecase/investment"
	"github.com/mos3c/budget-guy/internal/application/usecase/transaction"
	"github.com/mos3c/budget-guy/internal/infra/server/router"
	"github.com/mos3c/budget-guy/internal/integration/adapters"
	"github.com/mos3c/budget-guy/internal/integration/entrypoint/controller"
	"github.com/mos3c/budget-guy/internal/integration/entrypoint/middleware"
	"github.com/mos3c/budget-guy/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	investmentRepo := persistence.NewInvestmentRepository(db)
	analyticsRepo := persistence.NewAnalyticsRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenBlacklist := adapters.NewRedisTokenBlacklist(redisClient)
	tokenService := adapters.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
		tokenRepo,
		tokenBlacklist,
	)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create category use cases
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deactivateCategoryUseCase := category.NewDeactivateCategoryUseCase(categoryRepo)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	exportTransactionsUseCase := transaction.NewExportTransactionsUseCase(transactionRepo)

	// Create budget use cases
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, categoryRepo)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

	// Create investment use cases
	createInvestmentUseCase := investment.NewCreateInvestmentUseCase(investmentRepo)
	listInvestmentsUseCase := investment.NewListInvestmentsUseCase(investmentRepo)
	updateInvestmentUseCase := investment.NewUpdateInvestmentUseCase(investmentRepo)
	deleteInvestmentUseCase := investment.NewDeleteInvestmentUseCase(investmentRepo)

	// Create analytics use cases
	dashboardUseCase := analytics.NewGetDashboardUseCase(analyticsRepo, investmentRepo)
	monthlySummaryUseCase := analytics.NewGetMonthlySummaryUseCase(analyticsRepo)
	categoryBreakdownUseCase := analytics.NewGetCategoryBreakdownUseCase(analyticsRepo)
	investmentPerformanceUseCase := analytics.NewGetInvestmentPerformanceUseCase(investmentRepo)
	budgetProgressUseCase := analytics.NewGetBudgetProgressUseCase(analyticsRepo)

	// Create controllers
	healthController := controller.NewHealthController()

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		updateCategoryUseCase,
		deactivateCategoryUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		exportTransactionsUseCase,
	)

	budgetController := controller.NewBudgetController(
		createBudgetUseCase,
		listBudgetsUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
	)

	investmentController := controller.NewInvestmentController(
		createInvestmentUseCase,
		listInvestmentsUseCase,
		updateInvestmentUseCase,
		deleteInvestmentUseCase,
	)

	analyticsController := controller.NewAnalyticsController(
		dashboardUseCase,
		monthlySummaryUseCase,
		categoryBreakdownUseCase,
		investmentPerformanceUseCase,
		budgetProgressUseCase,
	)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		transactionController,
		budgetController,
		investmentController,
		analyticsController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
