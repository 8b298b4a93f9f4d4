package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go-medical-seeder/internal/domain/entity"
	"go-medical-seeder/internal/domain/repository"
	"go-medical-seeder/internal/infrastructure/database"
	repoImpl "go-medical-seeder/internal/repository"
	"go-medical-seeder/internal/seed"
	"go-medical-seeder/internal/service"
	"go-medical-seeder/internal/usecase"
	"go-medical-seeder/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var errStoreDown = errors.New("store unavailable")

var fixedNow = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

// fixedPolicy makes every choice deterministic
type fixedPolicy struct {
	pick   int
	past   int
	future int
	rating int
}

func defaultPolicy() fixedPolicy {
	return fixedPolicy{pick: 1, past: 3, future: 7, rating: 5}
}

func (p fixedPolicy) PickPractitioner(n int) int {
	return p.pick % n
}

func (p fixedPolicy) PastOffsetDays() int {
	return p.past
}

func (p fixedPolicy) FutureOffsetDays() int {
	return p.future
}

func (p fixedPolicy) Rating() int {
	return p.rating
}

func (p fixedPolicy) Now() time.Time {
	return fixedNow
}

// faultyStore fails Insert for one kind, or every FindOne when findErr is set
type faultyStore struct {
	repository.Store
	failInsert entity.Kind
	findErr    error
	countErr   error
}

func (s *faultyStore) FindOne(ctx context.Context, key entity.NaturalKey, dest entity.Document) (bool, error) {
	if s.findErr != nil {
		return false, s.findErr
	}
	return s.Store.FindOne(ctx, key, dest)
}

func (s *faultyStore) Insert(ctx context.Context, doc entity.Document) error {
	if s.failInsert != "" && doc.Kind() == s.failInsert {
		return errStoreDown
	}
	return s.Store.Insert(ctx, doc)
}

func (s *faultyStore) Count(ctx context.Context, kind entity.Kind) (int64, error) {
	if s.countErr != nil {
		return 0, s.countErr
	}
	return s.Store.Count(ctx, kind)
}

func newLogger() (*logrus.Logger, *test.Hook) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	return log, hook
}

func newSeedUsecase(t *testing.T, store repository.Store, log *logrus.Logger, policy seed.Policy) usecase.SeedUsecase {
	t.Helper()
	credentials, err := service.NewCredentialService("password123", bcrypt.MinCost)
	require.NoError(t, err)
	return usecase.NewSeedUsecase(store, log, validator.NewValidator(), credentials, policy, seed.Default())
}

func newSQLiteStore(t *testing.T) (repository.Store, *gorm.DB) {
	t.Helper()
	db, err := database.NewSQLiteConnection(filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)

	store := repoImpl.NewGormStore(db)
	require.NoError(t, store.EnsureSchema(context.Background()))
	t.Cleanup(func() { _ = store.Close(context.Background()) })
	return store, db
}

func createdEntries(hook *test.Hook) int {
	n := 0
	for _, e := range hook.AllEntries() {
		if strings.HasPrefix(e.Message, "Created ") {
			n++
		}
	}
	return n
}

// expectedCounts is the store content after seeding the default dataset
var expectedCounts = map[entity.Kind]int64{
	entity.KindUser:          10,
	entity.KindHospital:      1,
	entity.KindLab:           1,
	entity.KindDoctor:        3,
	entity.KindPatient:       5,
	entity.KindAppointment:   10,
	entity.KindMedicalRecord: 5,
	entity.KindReview:        5,
	entity.KindLabReport:     0,
	entity.KindVitalStats:    0,
}

func requireCounts(t *testing.T, store repository.Store, want map[entity.Kind]int64) {
	t.Helper()
	for kind, n := range want {
		got, err := store.Count(context.Background(), kind)
		require.NoError(t, err)
		require.Equal(t, n, got, "count of %s", kind)
	}
}
