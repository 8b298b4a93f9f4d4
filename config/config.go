package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Supported store drivers
const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongodb"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

type Config struct {
	App    AppConfig
	Log    LogConfig
	DB     DBConfig
	Redis  RedisConfig
	Seed   SeedConfig
	Report ReportConfig
}

type AppConfig struct {
	Env string
}

type LogConfig struct {
	Level  string
	Format string
}

type DBConfig struct {
	Driver        string
	URL           string
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	SSLMode       string
	MongoDatabase string
	AutoMigrate   bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	LockTTL  time.Duration
}

// Enabled reports whether a redis server is configured
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

type SeedConfig struct {
	DefaultPassword string
	BcryptCost      int
}

type ReportConfig struct {
	Path        string
	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3Prefix    string
	S3PathStyle bool
}

func LoadConfig() (*Config, error) {
	return load(viper.New(), ".env")
}

func load(v *viper.Viper, file string) (*Config, error) {
	v.SetConfigFile(file)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SEED_DEFAULT_PASSWORD", "password123")
	v.SetDefault("SEED_BCRYPT_COST", 10)
	v.SetDefault("REPORT_PATH", "verification_result.txt")
	v.SetDefault("REPORT_S3_REGION", "us-east-1")

	// The .env file is optional; the environment alone is enough
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	lockTTL, err := time.ParseDuration(v.GetString("SEED_LOCK_TTL"))
	if err != nil {
		lockTTL = 5 * time.Minute
	}

	dbURL := v.GetString("DATABASE_URL")
	if dbURL == "" {
		dbURL = v.GetString("MONGO_URI")
	}

	config := &Config{
		App: AppConfig{
			Env: v.GetString("APP_ENV"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		DB: DBConfig{
			Driver:        v.GetString("DB_DRIVER"),
			URL:           dbURL,
			Host:          v.GetString("DB_HOST"),
			Port:          v.GetString("DB_PORT"),
			User:          v.GetString("DB_USER"),
			Password:      v.GetString("DB_PASSWORD"),
			Name:          v.GetString("DB_NAME"),
			SSLMode:       v.GetString("DB_SSLMODE"),
			MongoDatabase: v.GetString("MONGO_DATABASE"),
			AutoMigrate:   v.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			LockTTL:  lockTTL,
		},
		Seed: SeedConfig{
			DefaultPassword: v.GetString("SEED_DEFAULT_PASSWORD"),
			BcryptCost:      v.GetInt("SEED_BCRYPT_COST"),
		},
		Report: ReportConfig{
			Path:        v.GetString("REPORT_PATH"),
			S3Bucket:    v.GetString("REPORT_S3_BUCKET"),
			S3Region:    v.GetString("REPORT_S3_REGION"),
			S3Endpoint:  v.GetString("REPORT_S3_ENDPOINT"),
			S3Prefix:    v.GetString("REPORT_S3_PREFIX"),
			S3PathStyle: v.GetBool("REPORT_S3_PATH_STYLE"),
		},
	}

	if config.DB.Driver == "" {
		config.DB.Driver = config.DB.InferDriver()
	}

	return config, nil
}

// InferDriver derives the store driver from the connection string scheme.
// With no URL the postgres parts (DB_HOST...) are used.
func (c DBConfig) InferDriver() string {
	if c.URL == "" {
		return DriverPostgres
	}
	scheme := c.URL
	if i := strings.Index(scheme, "://"); i >= 0 {
		scheme = scheme[:i]
	} else {
		// key=value DSN
		return DriverPostgres
	}
	switch strings.ToLower(scheme) {
	case "mongodb", "mongodb+srv":
		return DriverMongo
	case "sqlite", "file":
		return DriverSQLite
	case "memory":
		return DriverMemory
	default:
		return DriverPostgres
	}
}

// PostgresDSN returns the connection string for the postgres driver
func (c DBConfig) PostgresDSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

// SQLitePath returns the database file of a sqlite://<path> URL
func (c DBConfig) SQLitePath() string {
	for _, prefix := range []string{"sqlite://", "file://"} {
		if strings.HasPrefix(c.URL, prefix) {
			return strings.TrimPrefix(c.URL, prefix)
		}
	}
	return c.URL
}

// MongoDatabaseName picks MONGO_DATABASE, then the URI path, then a default
func (c DBConfig) MongoDatabaseName() string {
	if c.MongoDatabase != "" {
		return c.MongoDatabase
	}
	if u, err := url.Parse(c.URL); err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			return name
		}
	}
	return "triksha"
}
