package repository

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"go-medical-seeder/internal/domain/entity"
	domainRepo "go-medical-seeder/internal/domain/repository"
)

// DriverMemory is the in-process store used for dry runs
const DriverMemory = "memory"

type memoryStore struct {
	mu   sync.RWMutex
	docs map[entity.Kind][]entity.Document
}

// NewMemoryStore returns an empty store that lives for the process only.
// Unique kinds are enforced the same way the database indexes enforce them.
func NewMemoryStore() domainRepo.Store {
	return &memoryStore{docs: make(map[entity.Kind][]entity.Document)}
}

func (s *memoryStore) Driver() string {
	return DriverMemory
}

func (s *memoryStore) FindOne(ctx context.Context, key entity.NaturalKey, dest entity.Document) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if key.IsZero() {
		return false, fmt.Errorf("empty natural key for %s", dest.Kind())
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.docs[key.Kind()] {
		if doc.NaturalKey().Equal(key) {
			return true, copyDocument(dest, doc)
		}
	}
	return false, nil
}

func (s *memoryStore) Insert(ctx context.Context, doc entity.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kind := doc.Kind()
	if kind.Spec().Unique {
		key := doc.NaturalKey()
		for _, existing := range s.docs[kind] {
			if existing.NaturalKey().Equal(key) {
				return fmt.Errorf("%w: %s %s", domainRepo.ErrDuplicateKey, kind, key)
			}
		}
	}

	stored, ok := reflect.New(reflect.TypeOf(doc).Elem()).Interface().(entity.Document)
	if !ok {
		return fmt.Errorf("cannot store %T", doc)
	}
	if err := copyDocument(stored, doc); err != nil {
		return err
	}
	s.docs[kind] = append(s.docs[kind], stored)
	return nil
}

func (s *memoryStore) Count(ctx context.Context, kind entity.Kind) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.docs[kind])), nil
}

func (s *memoryStore) EnsureSchema(ctx context.Context) error {
	return nil
}

func (s *memoryStore) Close(ctx context.Context) error {
	return nil
}

// copyDocument copies the struct behind src into the struct behind dst
func copyDocument(dst, src entity.Document) error {
	dv := reflect.ValueOf(dst)
	sv := reflect.ValueOf(src)
	if dv.Kind() != reflect.Ptr || sv.Kind() != reflect.Ptr || dv.Type() != sv.Type() {
		return fmt.Errorf("cannot copy %T into %T", src, dst)
	}
	dv.Elem().Set(sv.Elem())
	return nil
}
