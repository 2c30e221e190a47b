package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/braizerecords/label-api/docs"
	"github.com/braizerecords/label-api/internal/api/handler"
	"github.com/braizerecords/label-api/internal/api/middleware"
	"github.com/braizerecords/label-api/internal/core/domain"
	"github.com/braizerecords/label-api/internal/core/ports"
	"github.com/braizerecords/label-api/internal/core/service"
	"github.com/braizerecords/label-api/internal/infrastructure/config"
	mongodb "github.com/braizerecords/label-api/internal/infrastructure/db/mongo"
	redisdb "github.com/braizerecords/label-api/internal/infrastructure/db/redis"
)

// Deps bundles the wired services the router and background workers share.
type Deps struct {
	Identity ports.IdentityService
	Users    ports.UserService
	Artists  ports.ArtistService
	Files    ports.FileService
	Social   ports.SocialService
	Stats    ports.StatsService
}

// NewDeps wires repositories and services against the given handles.
func NewDeps(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *Deps {
	identity := service.NewIdentityService(cfg.JWTSecret, 0)

	userRepo := mongodb.NewUserRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb, 0)

	return &Deps{
		Identity: identity,
		Users:    service.NewUserService(userRepo, identity, throttle),
		Artists:  service.NewArtistService(mongodb.NewArtistRepository(db), log),
		Files:    service.NewFileService(mongodb.NewFileRepository(db), log),
		Social:   service.NewSocialService(mongodb.NewSocialRepository(db), log),
		Stats:    service.NewStatsService(mongodb.NewStreamRepository(db), redisdb.NewStatsCache(rdb), log),
	}
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps *Deps, db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("label"))
	e.Use(middleware.SessionBoundary())

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Users, cfg.IsProduction())
	userHandler := handler.NewUserHandler(deps.Users)
	artistHandler := handler.NewArtistHandler(deps.Artists)
	fileHandler := handler.NewFileHandler(deps.Files)
	socialHandler := handler.NewSocialHandler(deps.Social)
	statsHandler := handler.NewStatsHandler(deps.Stats)

	authMW := middleware.Auth(deps.Identity)
	superadminOnly := middleware.RBAC(deps.Identity) // superadmin passes implicitly
	contentRoles := middleware.RBAC(deps.Identity, domain.RoleEmployee)
	financeRoles := middleware.RBAC(deps.Identity, domain.RoleAccountant)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me, authMW)

	// --- User administration (superadmin only) ---
	users := e.Group("/users", authMW, superadminOnly)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.PATCH("", userHandler.Update)
	users.DELETE("", userHandler.Delete)

	// --- Artist catalog: public reads, gated writes ---
	e.GET("/artists", artistHandler.List)
	e.GET("/artists/:slug", artistHandler.Get)
	e.POST("/artists", artistHandler.Create, authMW, contentRoles)
	e.PATCH("/artists/:id", artistHandler.Update, authMW, contentRoles)
	e.DELETE("/artists/:id", artistHandler.Delete, authMW, contentRoles)
	e.GET("/calendar", artistHandler.Calendar, authMW)

	// --- Files: session-gated, plus the public expiring share link ---
	e.GET("/files", fileHandler.List, authMW)
	e.POST("/files", fileHandler.Create, authMW)
	e.DELETE("/files/:id", fileHandler.Delete, authMW)
	e.GET("/files/link/:token", fileHandler.ResolveLink)

	// --- Social posts ---
	e.GET("/social", socialHandler.List, authMW, contentRoles)
	e.POST("/social", socialHandler.Create, authMW, contentRoles)
	e.POST("/social/:id/schedule", socialHandler.Schedule, authMW, contentRoles)

	// --- Streaming analytics ---
	e.POST("/stats/streams", statsHandler.RecordStream, authMW, financeRoles)
	e.GET("/stats/dashboard", statsHandler.Dashboard, authMW)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
