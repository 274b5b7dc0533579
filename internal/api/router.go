package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/storelane/catalog-system/internal/api/handler"
	"github.com/storelane/catalog-system/internal/api/middleware"
	"github.com/storelane/catalog-system/internal/core/domain"
	"github.com/storelane/catalog-system/internal/core/service"
	"github.com/storelane/catalog-system/internal/infrastructure/config"
	mongodb "github.com/storelane/catalog-system/internal/infrastructure/db/mongo"
	redisdb "github.com/storelane/catalog-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	roleRepo := mongodb.NewRoleRepository(db)
	userRepo := mongodb.NewUserRepository(db, roleRepo)
	productRepo := mongodb.NewProductRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.Throttle.MaxAttempts, cfg.Throttle.Window)

	authService := service.NewAuthService(userRepo, throttle, cfg.JWTSecret, cfg.TokenTTL, log)
	productService := service.NewProductService(productRepo, log)
	userService := service.NewUserService(userRepo, roleRepo, log)

	authHandler := handler.NewAuthHandler(authService, userService)
	productHandler := handler.NewProductHandler(productService, cfg.Paging.DefaultSize, cfg.Paging.DefaultPage)
	userHandler := handler.NewUserHandler(userService)

	auth := middleware.Auth(cfg.JWTSecret)
	staff := middleware.RBAC(domain.RoleWorker, domain.RoleAdmin)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, auth)

	// --- Product catalog ---
	e.GET("/products", productHandler.Index)
	e.GET("/products/:id", productHandler.Show)
	e.POST("/products", productHandler.Store, auth, staff)
	e.PUT("/products/:id", productHandler.Update, auth, staff)
	e.DELETE("/products/:id", productHandler.Destroy, auth, adminOnly)

	// --- User directory ---
	e.GET("/users", userHandler.Index, auth, staff)
	e.GET("/users/:id", userHandler.Show, auth, staff)
	e.PUT("/users/:id/roles", userHandler.UpdateRoles, auth, staff)

	// --- Operational surface ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
