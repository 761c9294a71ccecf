package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/quickride/ride-api/docs"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/quickride/ride-api/internal/api/handler"
	"github.com/quickride/ride-api/internal/api/middleware"
	"github.com/quickride/ride-api/internal/core/domain"
	"github.com/quickride/ride-api/internal/core/ports"
	"github.com/quickride/ride-api/internal/core/service"
	mongodb "github.com/quickride/ride-api/internal/infrastructure/db/mongo"
	redisdb "github.com/quickride/ride-api/internal/infrastructure/db/redis"
	"github.com/quickride/ride-api/internal/pkg/config"
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
	e.Use(echoprometheus.NewMiddleware("quickride"))

	// --- Dependencies ---
	var blacklist ports.TokenBlacklist
	if cfg.BlacklistBackend == "mongo" {
		blacklist = mongodb.NewBlacklistRepository(db)
	} else {
		blacklist = redisdb.NewBlacklist(rdb)
	}

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)

	userRepo := mongodb.NewUserRepository(db)
	captainRepo := mongodb.NewCaptainRepository(db)

	userAuth := service.NewAuthService(domain.KindUser, userRepo, tokens, blacklist)
	captainAuth := service.NewAuthService(domain.KindCaptain, captainRepo, tokens, blacklist)

	userHandler := handler.NewUserHandler(userAuth)
	captainHandler := handler.NewCaptainHandler(captainAuth)

	authUser := middleware.AuthUser(tokens, blacklist, userRepo).Middleware()
	authCaptain := middleware.AuthCaptain(tokens, blacklist, captainRepo).Middleware()

	// --- User routes ---
	users := e.Group("/api/users")
	users.POST("/register", userHandler.Register)
	users.POST("/login", userHandler.Login)
	users.GET("/profile", userHandler.Profile, authUser)
	users.GET("/logout", userHandler.Logout, authUser)

	// --- Captain routes ---
	captains := e.Group("/api/captains")
	captains.POST("/register", captainHandler.Register)
	captains.POST("/login", captainHandler.Login)
	captains.GET("/profile", captainHandler.Profile, authCaptain)
	captains.GET("/logout", captainHandler.Logout, authCaptain)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
