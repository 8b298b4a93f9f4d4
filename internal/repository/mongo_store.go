package repository

import (
	"context"
	"errors"
	"fmt"

	"go-medical-seeder/internal/domain/entity"
	domainRepo "go-medical-seeder/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DriverMongo names the document-store backend
const DriverMongo = "mongodb"

type mongoStore struct {
	client   *mongo.Client
	database *mongo.Database
}

// NewMongoStore stores one collection per kind in database
func NewMongoStore(client *mongo.Client, database *mongo.Database) domainRepo.Store {
	return &mongoStore{client: client, database: database}
}

func (s *mongoStore) Driver() string {
	return DriverMongo
}

func (s *mongoStore) collection(kind entity.Kind) *mongo.Collection {
	return s.database.Collection(kind.Collection())
}

func (s *mongoStore) FindOne(ctx context.Context, key entity.NaturalKey, dest entity.Document) (bool, error) {
	if key.IsZero() {
		return false, fmt.Errorf("empty natural key for %s", dest.Kind())
	}
	err := s.collection(key.Kind()).FindOne(ctx, keyFilter(key)).Decode(dest)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *mongoStore) Insert(ctx context.Context, doc entity.Document) error {
	_, err := s.collection(doc.Kind()).InsertOne(ctx, doc)
	if err != nil && mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %s %s", domainRepo.ErrDuplicateKey, doc.Kind(), doc.NaturalKey())
	}
	return err
}

func (s *mongoStore) Count(ctx context.Context, kind entity.Kind) (int64, error) {
	return s.collection(kind).CountDocuments(ctx, bson.D{})
}

func (s *mongoStore) EnsureSchema(ctx context.Context) error {
	for _, kind := range entity.AuditedKinds {
		model, ok := indexModel(kind)
		if !ok {
			continue
		}
		if _, err := s.collection(kind).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", kind, err)
		}
	}
	return nil
}

func (s *mongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// keyFilter turns a natural key into an equality filter in key-field order
func keyFilter(key entity.NaturalKey) bson.D {
	fields := key.Fields()
	filter := make(bson.D, 0, len(fields))
	for _, f := range fields {
		filter = append(filter, bson.E{Key: f.Name, Value: f.Value})
	}
	return filter
}

// indexModel returns the natural-key index for kind, unique when the kind registers it so
func indexModel(kind entity.Kind) (mongo.IndexModel, bool) {
	spec := kind.Spec()
	if len(spec.KeyFields) == 0 {
		return mongo.IndexModel{}, false
	}

	keys := make(bson.D, 0, len(spec.KeyFields))
	for _, field := range spec.KeyFields {
		keys = append(keys, bson.E{Key: field, Value: 1})
	}
	opts := options.Index()
	if spec.Unique {
		opts.SetUnique(true)
	}
	return mongo.IndexModel{Keys: keys, Options: opts}, true
}
