package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go-medical-seeder/cmd/bootstrap"
	"go-medical-seeder/config"
	"go-medical-seeder/internal/infrastructure/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test"},
		Log: config.LogConfig{Level: "error", Format: "text"},
		DB: config.DBConfig{
			Driver:      config.DriverMemory,
			URL:         "memory://",
			AutoMigrate: true,
		},
		Seed: config.SeedConfig{
			DefaultPassword: "password123",
			BcryptCost:      bcrypt.MinCost,
		},
		Report: config.ReportConfig{
			Path: filepath.Join(t.TempDir(), "verification_result.txt"),
		},
	}
}

func factory(cfg *config.Config) AppFactory {
	return func() (*bootstrap.App, error) {
		return bootstrap.NewWithConfig(cfg)
	}
}

func execute(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand(factory(cfg))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestEnvCommand(t *testing.T) {
	cfg := testConfig(t)
	out, err := execute(t, cfg, "env")
	require.NoError(t, err)

	assert.Contains(t, out, "APP_ENV: test")
	assert.Contains(t, out, "DATABASE_URL: Found")
	assert.Contains(t, out, "REDIS_HOST: Missing")
	assert.Contains(t, out, "REPORT_S3_BUCKET: Missing")
}

func TestSeedDryRun(t *testing.T) {
	cfg := testConfig(t)
	out, err := execute(t, cfg, "seed", "--dry-run")
	require.NoError(t, err)

	assert.Contains(t, out, "Users created: 10")
	assert.Contains(t, out, "Appointments created: 10")
	assert.Contains(t, out, "Seeding completed successfully (40 new records).")
	assert.NotContains(t, out, "LabReports created")
}

func TestVerifyEmptyStoreWritesReport(t *testing.T) {
	cfg := testConfig(t)
	out, err := execute(t, cfg, "verify")
	require.NoError(t, err, "an unhealthy judgement is not a failure without --strict")

	assert.Contains(t, out, "Connected to memory for verification")
	assert.Contains(t, out, "Users: 0")

	saved, err := os.ReadFile(cfg.Report.Path)
	require.NoError(t, err)
	assert.Equal(t, out, string(saved))
}

func TestVerifyStrict(t *testing.T) {
	cfg := testConfig(t)
	_, err := execute(t, cfg, "verify", "--strict")

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.Code)
	assert.ErrorIs(t, err, errUnhealthy)
}

func TestVerifyUnreachableStore(t *testing.T) {
	cfg := testConfig(t)
	cfg.DB.Driver = "oracle"

	out, err := execute(t, cfg, "verify")
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, out, "Verification failed: unsupported database driver \"oracle\"")

	saved, err := os.ReadFile(cfg.Report.Path)
	require.NoError(t, err)
	assert.Equal(t, out, string(saved))
}

func sqliteTables(t *testing.T, path string) []string {
	t.Helper()
	db, err := database.NewSQLiteConnection(path)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	var names []string
	require.NoError(t, db.Raw("SELECT name FROM sqlite_master WHERE type = 'table'").Scan(&names).Error)
	return names
}

func TestVerifyDoesNotCreateSchema(t *testing.T) {
	cfg := testConfig(t)
	path := filepath.Join(t.TempDir(), "empty.db")
	cfg.DB.Driver = config.DriverSQLite
	cfg.DB.URL = "sqlite://" + path

	out, err := execute(t, cfg, "verify")
	require.NoError(t, err)
	assert.Contains(t, out, "Connected to sqlite for verification")
	assert.Contains(t, out, "Users: 0")
	assert.NotContains(t, out, "Verification failed")

	assert.Empty(t, sqliteTables(t, path))
}

func TestSeedCreatesSchema(t *testing.T) {
	cfg := testConfig(t)
	path := filepath.Join(t.TempDir(), "seed.db")
	cfg.DB.Driver = config.DriverSQLite
	cfg.DB.URL = "sqlite://" + path

	_, err := execute(t, cfg, "seed")
	require.NoError(t, err)
	assert.Contains(t, sqliteTables(t, path), "appointments")

	out, err := execute(t, cfg, "verify", "--strict")
	require.NoError(t, err)
	assert.Contains(t, out, "Appointments: 10")
}
