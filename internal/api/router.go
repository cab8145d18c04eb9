package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/playgroundlabs/playground-api/internal/api/handler"
	"github.com/playgroundlabs/playground-api/internal/api/middleware"
	"github.com/playgroundlabs/playground-api/internal/core/ports"
	"github.com/playgroundlabs/playground-api/internal/core/service"
	"github.com/playgroundlabs/playground-api/internal/infrastructure/config"
	redisdb "github.com/playgroundlabs/playground-api/internal/infrastructure/db/redis"
	"github.com/playgroundlabs/playground-api/internal/infrastructure/piston"
	"github.com/playgroundlabs/playground-api/internal/infrastructure/whisper"
)

// Deps carries everything the router needs to assemble the handler graph.
// Verifier and Audit may be nil: Google routes then accept only pre-verified
// claims, and no audit trail is written.
type Deps struct {
	Config   *config.Config
	DB       *mongo.Database
	Redis    *redis.Client
	Accounts ports.AccountRepository
	Verifier ports.IdentityVerifier
	Audit    ports.AuthEventSink
	Logger   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{d.Config.CORSOrigin},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("playground"))

	// --- Core auth wiring ---
	tokens := service.NewJWTIssuer(d.Config.JWTSecret, d.Config.TokenTTL)
	authService := service.NewAuthService(d.Accounts, service.NewBcryptHasher(), tokens, d.Audit)
	authHandler := handler.NewAuthHandler(authService, d.Verifier, d.Config.CookieMaxAge)
	sessionGate := middleware.Session(tokens)

	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/google-signup", authHandler.GoogleSignup)
	e.POST("/auth/google-login", authHandler.GoogleLogin)
	e.GET("/auth/profile", authHandler.Profile, sessionGate)
	e.GET("/auth/logout", authHandler.Logout, sessionGate)

	// --- Code execution ---
	runner := piston.NewClient(d.Config.Piston.URL, d.Config.Piston.Timeout)
	codeService := service.NewCodeService(runner, redisdb.NewExecCache(d.Redis), d.Logger)
	codeHandler := handler.NewCodeHandler(codeService)

	e.POST("/code/execute", codeHandler.Execute)

	// --- Audio transcription ---
	processor := whisper.NewClient(d.Config.Whisper.URL, d.Config.Whisper.Timeout)
	audioHandler := handler.NewAudioHandler(service.NewAudioService(processor))

	e.POST("/audio/upload-audio", audioHandler.Upload)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.DB, d.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
