package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/northmart/commerce-system/docs"
	"github.com/northmart/commerce-system/internal/api/handler"
	"github.com/northmart/commerce-system/internal/api/middleware"
	"github.com/northmart/commerce-system/internal/core/domain"
	"github.com/northmart/commerce-system/internal/core/service"
	mongodb "github.com/northmart/commerce-system/internal/infrastructure/db/mongo"
	redisdb "github.com/northmart/commerce-system/internal/infrastructure/db/redis"
	"github.com/northmart/commerce-system/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, log zerolog.Logger, db *mongo.Database, rdb *redis.Client) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.RateLimiter(echomiddleware.NewRateLimiterMemoryStore(20)))
	e.Use(echoprometheus.NewMiddleware("commerce"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	catalogCache := redisdb.NewCatalogCache(rdb, cfg.CatalogCacheTTL)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.SessionTTL())
	authService := service.NewAuthService(userRepo, tokenService, log)
	productService := service.NewProductService(productRepo, catalogCache, log)

	authHandler := handler.NewAuthHandler(authService, cfg.SessionTTL(), cfg.IsProduction())
	productHandler := handler.NewProductHandler(productService)

	authenticated := middleware.Auth(tokenService, userRepo)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me, authenticated)

	// --- Public catalog routes ---
	e.GET("/products", productHandler.List)
	e.GET("/product/:id", productHandler.Get)

	// --- Admin routes ---
	admin := e.Group("/admin", authenticated, adminOnly)
	admin.POST("/product/new", productHandler.Create)
	admin.PUT("/product/:id", productHandler.Update)
	admin.DELETE("/product/:id", productHandler.Delete)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	return e
}
