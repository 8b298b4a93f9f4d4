package bootstrap

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go-medical-seeder/config"
	"go-medical-seeder/internal/domain/repository"
	"go-medical-seeder/internal/infrastructure/blob"
	"go-medical-seeder/internal/infrastructure/cache"
	"go-medical-seeder/internal/infrastructure/database"
	repoImpl "go-medical-seeder/internal/repository"
	"go-medical-seeder/internal/seed"
	"go-medical-seeder/internal/service"
	"go-medical-seeder/internal/usecase"
	"go-medical-seeder/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	Validator   *validator.CustomValidator
	Store       repository.Store
	RedisClient *redis.Client
}

// New loads configuration and sets up logging. Connections are opened by Connect.
func New() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig builds an App from an already loaded configuration
func NewWithConfig(cfg *config.Config) (*App, error) {
	log, err := setupLogger(cfg.Log)
	if err != nil {
		return nil, err
	}
	log.Debug("Configuration loaded successfully")

	return &App{
		Config:    cfg,
		Log:       log,
		Validator: validator.NewValidator(),
	}, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.LogConfig) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	log := logrus.StandardLogger()
	if strings.EqualFold(cfg.Format, "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	log.SetOutput(os.Stdout)
	log.SetLevel(level)
	return log, nil
}

// Connect opens the store selected by the configured driver and, when
// DB_AUTO_MIGRATE is set, creates the tables and indexes seeding relies on.
func (app *App) Connect(ctx context.Context) error {
	return app.connect(ctx, app.Config.DB.AutoMigrate)
}

// ConnectReadOnly opens the store without touching its schema
func (app *App) ConnectReadOnly(ctx context.Context) error {
	return app.connect(ctx, false)
}

func (app *App) connect(ctx context.Context, migrate bool) error {
	store, err := openStore(ctx, app.Config.DB)
	if err != nil {
		return err
	}
	app.Store = store
	app.Log.WithField("driver", store.Driver()).Info("Database connected successfully")

	if migrate {
		if err := store.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("failed to prepare schema: %w", err)
		}
	}
	return nil
}

// UseStore replaces the configured store, e.g. with a memory store for dry runs
func (app *App) UseStore(store repository.Store) {
	app.Store = store
}

func openStore(ctx context.Context, cfg config.DBConfig) (repository.Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := database.NewPostgresConnection(cfg)
		if err != nil {
			return nil, err
		}
		return repoImpl.NewGormStore(db), nil
	case config.DriverSQLite:
		db, err := database.NewSQLiteConnection(cfg.SQLitePath())
		if err != nil {
			return nil, err
		}
		return repoImpl.NewGormStore(db), nil
	case config.DriverMongo:
		client, db, err := database.NewMongoConnection(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return repoImpl.NewMongoStore(client, db), nil
	case config.DriverMemory:
		return repoImpl.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// RunLock returns the redis lock when redis is configured, a no-op lock otherwise
func (app *App) RunLock(ctx context.Context) (service.RunLock, error) {
	if !app.Config.Redis.Enabled() {
		return service.NewNoopRunLock(), nil
	}
	if app.RedisClient == nil {
		client, err := cache.NewRedisClient(ctx, app.Config.Redis, app.Log)
		if err != nil {
			return nil, err
		}
		app.RedisClient = client
	}
	return service.NewRedisRunLock(app.RedisClient, app.Log, app.Config.Redis.LockTTL), nil
}

// SeedUsecase wires the orchestrator against the connected store
func (app *App) SeedUsecase(policy seed.Policy) (usecase.SeedUsecase, error) {
	credentials, err := service.NewCredentialService(app.Config.Seed.DefaultPassword, app.Config.Seed.BcryptCost)
	if err != nil {
		return nil, err
	}
	return usecase.NewSeedUsecase(app.Store, app.Log, app.Validator, credentials, policy, seed.Default()), nil
}

// ReportSinks returns the file sink and, when a bucket is configured, the S3 sink
func (app *App) ReportSinks(ctx context.Context) ([]repository.ReportSink, error) {
	sinks := []repository.ReportSink{blob.NewFileReportSink(app.Config.Report.Path)}
	if app.Config.Report.S3Bucket != "" {
		s3Sink, err := blob.NewS3ReportSink(ctx, app.Config.Report)
		if err != nil {
			return sinks, err
		}
		sinks = append(sinks, s3Sink)
	}
	return sinks, nil
}

// Close closes all connections (database, redis)
func (app *App) Close() {
	ctx := context.Background()

	if app.Store != nil {
		if err := app.Store.Close(ctx); err != nil {
			app.Log.Warnf("Failed to close database: %+v", err)
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
