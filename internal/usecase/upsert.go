package usecase

import (
	"context"
	"errors"
	"fmt"

	"go-medical-seeder/internal/domain/entity"
	"go-medical-seeder/internal/domain/repository"
	"go-medical-seeder/pkg/validator"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidRecord = errors.New("invalid record")
	ErrKeyMismatch   = errors.New("built record does not match its lookup key")
)

// document is satisfied by *T for every entity type T the seeder creates
type document[T any] interface {
	*T
	entity.Document
}

// Resolve looks a document up by natural key. It returns nil, nil when absent.
// Store errors are returned unchanged.
func Resolve[T any, PT document[T]](ctx context.Context, store repository.Store, key entity.NaturalKey) (PT, error) {
	dest := PT(new(T))
	if dest.Kind() != key.Kind() {
		return nil, fmt.Errorf("%w: looking up %s with a %s key", ErrKeyMismatch, dest.Kind(), key.Kind())
	}

	found, err := store.FindOne(ctx, key, dest)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return dest, nil
}

// Upserter creates documents only when their natural key is absent.
// Existing documents are returned as stored, never updated.
type Upserter struct {
	store    repository.Store
	validate *validator.CustomValidator
	log      *logrus.Logger
	created  map[entity.Kind]int
}

func NewUpserter(store repository.Store, validate *validator.CustomValidator, log *logrus.Logger) *Upserter {
	return &Upserter{
		store:    store,
		validate: validate,
		log:      log,
		created:  make(map[entity.Kind]int),
	}
}

// Created returns how many documents of each kind this upserter inserted
func (u *Upserter) Created() map[entity.Kind]int {
	out := make(map[entity.Kind]int, len(u.created))
	for k, v := range u.created {
		out[k] = v
	}
	return out
}

// Upsert resolves key and, when absent, builds, validates and inserts a new
// document. build is only called when the key is absent. The returned bool
// reports whether a document was created.
func Upsert[T any, PT document[T]](ctx context.Context, u *Upserter, key entity.NaturalKey, build func() (PT, error)) (PT, bool, error) {
	kind := key.Kind()

	existing, err := Resolve[T, PT](ctx, u.store, key)
	if err != nil {
		u.log.Warnf("Failed to resolve %s %s: %+v", kind, key, err)
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	doc, err := build()
	if err != nil {
		return nil, false, fmt.Errorf("failed to build %s %s: %w", kind, key, err)
	}
	if !doc.NaturalKey().Equal(key) {
		return nil, false, fmt.Errorf("%w: %s built as %s, looked up as %s", ErrKeyMismatch, kind, doc.NaturalKey(), key)
	}
	if err := u.validate.Validate(doc); err != nil {
		return nil, false, fmt.Errorf("%w: %s %s: %s", ErrInvalidRecord, kind, key, u.validate.Describe(err))
	}

	if err := u.store.Insert(ctx, doc); err != nil {
		u.log.Warnf("Failed to create %s %s: %+v", kind, key, err)
		return nil, false, fmt.Errorf("failed to create %s %s: %w", kind, key, err)
	}

	u.created[kind]++
	u.log.WithFields(logrus.Fields{
		"kind": string(kind),
		"key":  key.String(),
	}).Infof("Created %s: %s", kind.Label(), key)

	return doc, true, nil
}
