package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/sd13/academy/internal/app/controllers"
	appMigrations "github.com/sd13/academy/internal/app/migrations"
	appRepos "github.com/sd13/academy/internal/app/repositories"
	appRoutes "github.com/sd13/academy/internal/app/routes"
	appServices "github.com/sd13/academy/internal/app/services"
	"github.com/sd13/academy/internal/config"
	"github.com/sd13/academy/internal/db"
	appMiddleware "github.com/sd13/academy/internal/middleware"
	pkgAuth "github.com/sd13/academy/internal/pkg/auth"
	"github.com/sd13/academy/internal/pkg/email"
	"github.com/sd13/academy/internal/pkg/filestorage"
	"github.com/sd13/academy/internal/pkg/logger"
	"github.com/sd13/academy/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            appServices.AuthService
	HeroService            appServices.HeroService
	ProgramService         appServices.ProgramService
	CoachService           appServices.CoachService
	TestimonialService     appServices.TestimonialService
	GalleryService         appServices.GalleryService
	EventService           appServices.EventService
	NotificationService    appServices.NotificationService
	SubscriptionService    appServices.SubscriptionService
	SettingsService        appServices.SettingsService
	ContactService         appServices.ContactService
	AuthController         *appControllers.AuthController
	HeroController         *appControllers.HeroController
	ProgramController      *appControllers.ProgramController
	CoachController        *appControllers.CoachController
	TestimonialController  *appControllers.TestimonialController
	GalleryController      *appControllers.GalleryController
	EventController        *appControllers.EventController
	SubscriptionController *appControllers.SubscriptionController
	SettingsController     *appControllers.SettingsController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	Mailer                 email.Service
	Logger                 zerolog.Logger
	FileStorage            *filestorage.LocalStorage
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default content set.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Seed failures are logged but never block startup.
	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, cfg.Server.MediaPath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	accessTokenExp, err := time.ParseDuration(cfg.JWT.AccessTokenExpiration)
	if err != nil {
		// LoadConfig already validated the format; keep a sane fallback anyway.
		accessTokenExp = 12 * time.Hour
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: accessTokenExp,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Mailer = email.NewSMTPService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
	}, lgr)

	// Initialize services. The notification service must exist before the
	// event service, which reports event changes through it.
	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService)
	deps.HeroService = appServices.NewHeroService(deps.Repos.HeroRepository, deps.FileStorage)
	deps.ProgramService = appServices.NewProgramService(deps.Repos.ProgramRepository, deps.FileStorage)
	deps.CoachService = appServices.NewCoachService(deps.Repos.CoachRepository, deps.FileStorage)
	deps.TestimonialService = appServices.NewTestimonialService(deps.Repos.TestimonialRepository, deps.FileStorage)
	deps.GalleryService = appServices.NewGalleryService(deps.Repos.GalleryRepository, deps.FileStorage)
	deps.NotificationService = appServices.NewNotificationService(
		deps.Repos.SubscriptionRepository,
		deps.Repos.NotificationRepository,
		deps.Mailer,
	)
	deps.EventService = appServices.NewEventService(deps.Repos.EventRepository, deps.NotificationService)
	deps.SubscriptionService = appServices.NewSubscriptionService(deps.Repos.SubscriptionRepository)
	deps.SettingsService = appServices.NewSettingsService(deps.Repos.SettingsRepository)
	deps.ContactService = appServices.NewContactService(deps.Repos.ContactRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.HeroController = appControllers.NewHeroController(deps.HeroService)
	deps.ProgramController = appControllers.NewProgramController(deps.ProgramService)
	deps.CoachController = appControllers.NewCoachController(deps.CoachService)
	deps.TestimonialController = appControllers.NewTestimonialController(deps.TestimonialService)
	deps.GalleryController = appControllers.NewGalleryController(deps.GalleryService)
	deps.EventController = appControllers.NewEventController(deps.EventService, deps.NotificationService)
	deps.SubscriptionController = appControllers.NewSubscriptionController(deps.SubscriptionService)
	deps.SettingsController = appControllers.NewSettingsController(deps.SettingsService, deps.ContactService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger())
	router.Use(gin.Recovery())

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.HeroController,
		deps.ProgramController,
		deps.CoachController,
		deps.TestimonialController,
		deps.GalleryController,
		deps.EventController,
		deps.SubscriptionController,
		deps.SettingsController,
		deps.AuthMiddleware,
	)

	return router
}
