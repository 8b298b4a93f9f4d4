package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-medical-seeder/internal/domain/entity"
	domainRepo "go-medical-seeder/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type gormStore struct {
	db     *gorm.DB
	driver string
}

// NewGormStore wraps a gorm connection (postgres or sqlite)
func NewGormStore(db *gorm.DB) domainRepo.Store {
	return &gormStore{db: db, driver: db.Dialector.Name()}
}

func (s *gormStore) Driver() string {
	return s.driver
}

func (s *gormStore) FindOne(ctx context.Context, key entity.NaturalKey, dest entity.Document) (bool, error) {
	if key.IsZero() {
		return false, fmt.Errorf("empty natural key for %s", dest.Kind())
	}
	err := s.db.WithContext(ctx).Where(key.Map()).First(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *gormStore) Insert(ctx context.Context, doc entity.Document) error {
	err := s.db.WithContext(ctx).Create(doc).Error
	if err != nil && isDuplicateKeyError(err) {
		return fmt.Errorf("%w: %s %s", domainRepo.ErrDuplicateKey, doc.Kind(), doc.NaturalKey())
	}
	return err
}

// Count reports 0 for a kind whose table does not exist yet, like a missing mongo collection
func (s *gormStore) Count(ctx context.Context, kind entity.Kind) (int64, error) {
	db := s.db.WithContext(ctx)
	if !db.Migrator().HasTable(kind.Collection()) {
		return 0, nil
	}

	var n int64
	err := db.Table(kind.Collection()).Count(&n).Error
	return n, err
}

func (s *gormStore) EnsureSchema(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(entity.Documents()...)
}

func (s *gormStore) Close(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// isDuplicateKeyError checks for a unique violation from any gorm dialect
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
