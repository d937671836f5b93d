// Package bootstrap assembles the application from its parts: configuration,
// logging, database, repositories, services, controllers and routes.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	authz "github.com/okutan/lexbook/internal/app/auth"
	"github.com/okutan/lexbook/internal/app/controllers"
	"github.com/okutan/lexbook/internal/app/migrations"
	"github.com/okutan/lexbook/internal/app/repositories"
	"github.com/okutan/lexbook/internal/app/routes"
	"github.com/okutan/lexbook/internal/app/services"
	"github.com/okutan/lexbook/internal/config"
	"github.com/okutan/lexbook/internal/db"
	"github.com/okutan/lexbook/internal/middleware"
	"github.com/okutan/lexbook/internal/pkg/auth"
	"github.com/okutan/lexbook/internal/pkg/crawler"
	"github.com/okutan/lexbook/internal/pkg/helpers"
	"github.com/okutan/lexbook/internal/pkg/logger"
	"github.com/okutan/lexbook/internal/seed"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	defaultTokenExpiration   = 168 * time.Hour
	defaultNavigationTimeout = 30 * time.Second
	migrationsDir            = "migrations"
)

// Dependencies holds everything the server needs to run
type Dependencies struct {
	Config       *config.Config
	DB           *db.PostgresDB
	Repositories *repositories.Repositories
	Services     *services.Services
	Controllers  *controllers.Controllers
	AuthMW       *middleware.AuthMiddleware
}

// LoadConfigAndSetupLogger loads configuration and configures global logging
func LoadConfigAndSetupLogger(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format == "console",
	})

	return cfg, nil
}

// SetupDatabase connects to Postgres and applies pending migrations
func SetupDatabase(cfg *config.Config) (*db.PostgresDB, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	migrator := migrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return database, nil
}

// BuildDependencies wires repositories, services, controllers and middleware
func BuildDependencies(cfg *config.Config, database *db.PostgresDB) (*Dependencies, error) {
	repos := repositories.NewRepositories(database.Pool)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, defaultTokenExpiration),
		TokenIssuer: cfg.JWT.Issuer,
	})

	fetcher := crawler.NewFetcher(crawler.FetcherConfig{
		NavigationTimeout: helpers.ParseDuration(cfg.Crawler.NavigationTimeout, defaultNavigationTimeout),
		ExecPath:          cfg.Crawler.ExecPath,
		Headless:          cfg.Crawler.Headless,
	}, componentLogger("crawler"))

	guard := authz.NewGuardService(repos.ClassRepository)

	svcs := &services.Services{
		Auth:        services.NewAuthService(repos.UserRepository, jwtService, componentLogger("auth_service")),
		WordBook:    services.NewWordBookService(database, repos.WordBookRepository, repos.WordRepository, componentLogger("wordbook_service")),
		Word:        services.NewWordService(repos.WordRepository, repos.WordBookRepository, componentLogger("word_service")),
		Class:       services.NewClassService(repos.ClassRepository, repos.UserRepository, guard, componentLogger("class_service")),
		Acquisition: services.NewAcquisitionService(fetcher, repos.WordBookRepository, repos.WordRepository, componentLogger("acquisition_service")),
	}

	ctrls := &controllers.Controllers{
		Auth:     controllers.NewAuthController(svcs.Auth, componentLogger("auth_controller")),
		WordBook: controllers.NewWordBookController(svcs.WordBook, svcs.Acquisition, componentLogger("wordbook_controller")),
		Word:     controllers.NewWordController(svcs.Word, componentLogger("word_controller")),
		Class:    controllers.NewClassController(svcs.Class, componentLogger("class_controller")),
	}

	authMW := middleware.NewAuthMiddleware(jwtService, repos.UserRepository, componentLogger("auth_middleware"))

	return &Dependencies{
		Config:       cfg,
		DB:           database,
		Repositories: repos,
		Services:     svcs,
		Controllers:  ctrls,
		AuthMW:       authMW,
	}, nil
}

// SeedData creates initial records on an empty database
func SeedData(ctx context.Context, deps *Dependencies) error {
	return seed.SeedDefaultTeacher(ctx, deps.Config, deps.Repositories.UserRepository)
}

// SetupRouter creates the Gin engine with the full route table mounted
func SetupRouter(deps *Dependencies) *gin.Engine {
	if deps.Config.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	routes.RegisterRoutes(router, deps.Controllers, deps.AuthMW)

	return router
}

func componentLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
