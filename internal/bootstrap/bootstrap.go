package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appControllers "github.com/okandemir/studytrack/internal/app/controllers"
	appMigrations "github.com/okandemir/studytrack/internal/app/migrations"
	appRepos "github.com/okandemir/studytrack/internal/app/repositories"
	appRoutes "github.com/okandemir/studytrack/internal/app/routes"
	appServices "github.com/okandemir/studytrack/internal/app/services"
	"github.com/okandemir/studytrack/internal/config"
	"github.com/okandemir/studytrack/internal/db"
	appMiddleware "github.com/okandemir/studytrack/internal/middleware"
	pkgAuth "github.com/okandemir/studytrack/internal/pkg/auth"
	"github.com/okandemir/studytrack/internal/pkg/helpers"
	"github.com/okandemir/studytrack/internal/pkg/logger"
	"github.com/okandemir/studytrack/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	AuthService          *appServices.AuthService
	ProfileService       *appServices.ProfileService
	CourseService        *appServices.CourseService
	AssignmentService    *appServices.AssignmentService
	ProjectService       *appServices.ProjectService
	InternshipService    *appServices.InternshipService
	AttendanceService    *appServices.AttendanceService
	DashboardService     *appServices.DashboardService
	AnalyticsService     *appServices.AnalyticsService
	ExportService        *appServices.ExportService
	AuthController       *appControllers.AuthController
	ProfileController    *appControllers.ProfileController
	CourseController     *appControllers.CourseController
	AssignmentController *appControllers.AssignmentController
	ProjectController    *appControllers.ProjectController
	InternshipController *appControllers.InternshipController
	AttendanceController *appControllers.AttendanceController
	DashboardController  *appControllers.DashboardController
	AnalyticsController  *appControllers.AnalyticsController
	ExportController     *appControllers.ExportController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Logger               zerolog.Logger
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

// SetupDatabase establishes the database connection and runs migrations.
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
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed {
		if err := seed.CreateDemoData(context.Background(), dbPool, lgr); err != nil {
			// Demo data is a convenience, not a startup requirement.
			lgr.Error().Err(err).Msg("Failed to create demo data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)
	recordStore := appRepos.NewRecordStore(deps.Repos)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.Repos.ProfileRepository,
		deps.JWTService,
		lgr,
	)
	deps.ProfileService = appServices.NewProfileService(deps.Repos.ProfileRepository, lgr)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository, lgr)
	deps.AssignmentService = appServices.NewAssignmentService(deps.Repos.AssignmentRepository, deps.Repos.CourseRepository, lgr)
	deps.ProjectService = appServices.NewProjectService(deps.Repos.ProjectRepository, lgr)
	deps.InternshipService = appServices.NewInternshipService(deps.Repos.InternshipRepository, lgr)
	deps.AttendanceService = appServices.NewAttendanceService(deps.Repos.AttendanceRepository, deps.Repos.CourseRepository, lgr)
	deps.DashboardService = appServices.NewDashboardService(deps.Repos.AnalyticsRepository, deps.Repos.ProfileRepository, lgr)
	deps.AnalyticsService = appServices.NewAnalyticsService(recordStore, lgr)
	deps.ExportService = appServices.NewExportService(recordStore, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.ProfileController = appControllers.NewProfileController(deps.ProfileService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.AssignmentController = appControllers.NewAssignmentController(deps.AssignmentService)
	deps.ProjectController = appControllers.NewProjectController(deps.ProjectService)
	deps.InternshipController = appControllers.NewInternshipController(deps.InternshipService)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.AttendanceService)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService)
	deps.AnalyticsController = appControllers.NewAnalyticsController(deps.AnalyticsService)
	deps.ExportController = appControllers.NewExportController(deps.ExportService)

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

	router := gin.Default()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ProfileController,
		deps.CourseController,
		deps.AssignmentController,
		deps.ProjectController,
		deps.InternshipController,
		deps.AttendanceController,
		deps.DashboardController,
		deps.AnalyticsController,
		deps.ExportController,
		deps.AuthMiddleware,
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
