package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/blogit/blogit-api/docs"
	"github.com/blogit/blogit-api/internal/api/handler"
	"github.com/blogit/blogit-api/internal/api/middleware"
	"github.com/blogit/blogit-api/internal/core/ports"
	"github.com/blogit/blogit-api/internal/core/service"
	"github.com/blogit/blogit-api/internal/infrastructure/db/postgres"
	redisdb "github.com/blogit/blogit-api/internal/infrastructure/db/redis"
	"github.com/blogit/blogit-api/internal/pkg/config"
)

// Dependencies carries everything NewRouter needs to wire the application.
type Dependencies struct {
	Config *config.Config
	Logger zerolog.Logger
	DB     *sql.DB
	Redis  *redis.Client
	Images ports.ImageStore
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
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("blogit"))

	// --- Dependencies ---
	cfg := deps.Config
	userRepo := postgres.NewUserRepository(deps.DB)
	blogRepo := postgres.NewBlogRepository(deps.DB)
	denylist := redisdb.NewTokenDenylist(deps.Redis)
	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	accountService := service.NewAccountService(userRepo, tokens, denylist, service.PasswordPolicy{
		MinLength:  cfg.PasswordMinLen,
		BcryptCost: cfg.BcryptCost,
	}, deps.Logger)
	blogService := service.NewBlogService(blogRepo, deps.Logger)

	authHandler := handler.NewAuthHandler(accountService, tokens, handler.CookieOptions{
		TTL:    cfg.TokenTTL,
		Secure: cfg.Production(),
	})
	blogHandler := handler.NewBlogHandler(blogService)
	uploadHandler := handler.NewUploadHandler(deps.Images)
	session := middleware.Session(tokens, denylist)

	// --- API routes ---
	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	// Logout stays unguarded so a stale cookie still logs out cleanly.
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/profile", authHandler.Profile, session)
	auth.PUT("/profile", authHandler.UpdateProfile, session)
	auth.PUT("/password", authHandler.UpdatePassword, session)

	api.GET("/blogs", blogHandler.List)
	api.GET("/blogs/:id", blogHandler.Get)
	api.POST("/blogs", blogHandler.Create, session)
	api.PUT("/blogs/:id", blogHandler.Update, session)
	api.DELETE("/blogs/:id", blogHandler.Delete, session)

	api.POST("/uploads", uploadHandler.Presign, session)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
