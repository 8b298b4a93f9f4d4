package repository

import (
	"context"
	"errors"

	"go-medical-seeder/internal/domain/entity"
)

// ErrDuplicateKey is returned by Insert when a unique natural key already exists
var ErrDuplicateKey = errors.New("duplicate natural key")

// Store is the document store the seeder and the auditor work against.
// Implementations never update or delete.
type Store interface {
	// Driver names the backend, e.g. "postgres" or "mongodb"
	Driver() string

	// FindOne loads the document matching key into dest and reports whether one was found.
	// Not found is not an error.
	FindOne(ctx context.Context, key entity.NaturalKey, dest entity.Document) (bool, error)

	// Insert persists a new document
	Insert(ctx context.Context, doc entity.Document) error

	// Count returns the number of stored documents of kind
	Count(ctx context.Context, kind entity.Kind) (int64, error)

	// EnsureSchema creates the tables / indexes the natural keys rely on
	EnsureSchema(ctx context.Context) error

	Close(ctx context.Context) error
}
