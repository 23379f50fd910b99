package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/userhub/user-management-api/internal/api/handler"
	"github.com/userhub/user-management-api/internal/api/middleware"
	"github.com/userhub/user-management-api/internal/core/domain"
	"github.com/userhub/user-management-api/internal/core/ports"
	"github.com/userhub/user-management-api/internal/core/service"
	"github.com/userhub/user-management-api/internal/infrastructure/db/redis"
)

// Dependencies carries everything the router needs to wire the handlers.
type Dependencies struct {
	Mongo    *mongodriver.Database
	Redis    *goredis.Client
	Tokens   ports.TokenService
	UserRepo ports.UserRepository
	RoleRepo ports.RoleRepository
	Logger   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("usermgmt"))

	// --- Dependencies ---
	roleRepo := redis.NewCachedRoleRepository(deps.RoleRepo, deps.Redis)
	hasher := service.NewBcryptHasher()
	authService := service.NewAuthService(deps.UserRepo, roleRepo, hasher, deps.Tokens, deps.Logger)
	userService := service.NewUserService(deps.UserRepo, deps.Logger)
	roleService := service.NewRoleService(roleRepo, deps.Logger)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, authService)
	roleHandler := handler.NewRoleHandler(roleService)

	authGuard := middleware.Auth(deps.Tokens)
	adminGuard := middleware.RequireRoles(deps.Tokens, domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, authGuard)

	// --- Admin routes (role-gated) ---
	admin := e.Group("/admin", adminGuard)
	admin.GET("/users", userHandler.List)
	admin.POST("/users", userHandler.Create)
	admin.GET("/users/:id", userHandler.Get)
	admin.PUT("/users/:id", userHandler.Update)
	admin.DELETE("/users/:id", userHandler.Delete)

	admin.GET("/roles", roleHandler.List)
	admin.POST("/roles", roleHandler.Create)
	admin.GET("/roles/:id", roleHandler.Get)
	admin.PUT("/roles/:id", roleHandler.Update)
	admin.DELETE("/roles/:id", roleHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
