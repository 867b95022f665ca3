package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/arleti/materials-system/docs"
	"github.com/arleti/materials-system/internal/api/handler"
	"github.com/arleti/materials-system/internal/api/middleware"
	"github.com/arleti/materials-system/internal/core/domain"
	"github.com/arleti/materials-system/internal/core/ports"
	"github.com/arleti/materials-system/internal/core/service"
	"github.com/arleti/materials-system/internal/infrastructure/crypto"
	mongodb "github.com/arleti/materials-system/internal/infrastructure/db/mongo"
	redisdb "github.com/arleti/materials-system/internal/infrastructure/db/redis"
	"github.com/arleti/materials-system/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit recorder is created by the caller so its worker pool lifecycle is
// tied to the process context.
func NewRouter(db *mongo.Database, rdb *redis.Client, audit ports.AuditRecorder, auditStore ports.AuditRepository, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("inventory"))

	// --- Dependencies ---
	hasher := crypto.NewBcryptHasher(cfg.Auth.BcryptCost)
	accountRepo := mongodb.NewAccountRepository(db)
	accountService := service.NewAccountService(accountRepo, hasher, audit, log)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindow)

	materialRepo := mongodb.NewMaterialRepository(db)
	materialService := service.NewMaterialService(materialRepo, log)

	accountHandler := handler.NewAccountHandler(accountService, throttle)
	adminHandler := handler.NewAdminHandler(accountService, auditStore)
	materialHandler := handler.NewMaterialHandler(materialService)

	authRequired := middleware.Auth(accountService)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public account routes ---
	e.POST("/api/register", accountHandler.Register)
	e.POST("/api/login", accountHandler.Login)

	// --- Worker administration (admin only) ---
	workers := e.Group("/api/workers", authRequired, adminOnly)
	workers.GET("", accountHandler.ListWorkers)
	workers.PUT("/:id/approve", accountHandler.Approve)
	workers.DELETE("/:id", accountHandler.Remove)

	// --- Administrator self-service (admin only) ---
	admin := e.Group("/api/admin", authRequired, adminOnly)
	admin.PUT("/change-password", adminHandler.ChangePassword)
	admin.GET("/audit", adminHandler.Audit)

	// --- Materials (any active account) ---
	materials := e.Group("/api/materials", authRequired)
	materials.GET("", materialHandler.List)
	materials.GET("/:id", materialHandler.Get)
	materials.POST("", materialHandler.Create)
	materials.PUT("/:id", materialHandler.Update)
	materials.DELETE("/:id", materialHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
