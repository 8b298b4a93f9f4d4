package usecase_test

import (
	"context"
	"testing"

	"go-medical-seeder/internal/domain/entity"
	repoImpl "go-medical-seeder/internal/repository"
	"go-medical-seeder/internal/seed"
	"go-medical-seeder/internal/service"
	"go-medical-seeder/internal/usecase"
	"go-medical-seeder/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedEmptyStore(t *testing.T) {
	store := repoImpl.NewMemoryStore()
	log, hook := newLogger()

	seedUsecase := newSeedUsecase(t, store, log, defaultPolicy())
	result, err := seedUsecase.Run(context.Background())
	require.NoError(t, err)

	requireCounts(t, store, expectedCounts)
	assert.Equal(t, seedUsecase.Stages(), result.Stages)
	assert.Equal(t, 10, result.NewAppointments)
	assert.Equal(t, 5, result.Patients)
	assert.Equal(t, 40, result.TotalCreated())
	assert.Equal(t, 40, createdEntries(hook))
	assert.Equal(t, []string{
		usecase.StageIdentities,
		usecase.StageFacilities,
		usecase.StagePractitionerProfiles,
		usecase.StagePatientProfiles,
		usecase.StageAppointments,
		usecase.StageClinicalRecords,
	}, result.Stages)
	assert.Equal(t, "Seeded/Verified 10 new appointments across 5 patients.", hook.LastEntry().Message)
}

func TestSeedIsIdempotent(t *testing.T) {
	store := repoImpl.NewMemoryStore()
	log, hook := newLogger()

	_, err := newSeedUsecase(t, store, log, defaultPolicy()).Run(context.Background())
	require.NoError(t, err)
	hook.Reset()

	// different choices on the second run must not matter
	policy := fixedPolicy{pick: 2, past: 9, future: 1, rating: 4}
	result, err := newSeedUsecase(t, store, log, policy).Run(context.Background())
	require.NoError(t, err)

	requireCounts(t, store, expectedCounts)
	assert.Zero(t, result.TotalCreated())
	assert.Zero(t, result.NewAppointments)
	assert.Zero(t, createdEntries(hook))
	assert.Equal(t, "Seeded/Verified 0 new appointments across 5 patients.", hook.LastEntry().Message)
}

func TestSeedKeepsExistingUserUntouched(t *testing.T) {
	ctx := context.Background()
	store := repoImpl.NewMemoryStore()
	log, _ := newLogger()

	existing := &entity.User{
		ID:       uuid.New(),
		Name:     "Someone Else",
		Email:    "amit.sharma@gmail.com",
		Role:     entity.RolePatient,
		Password: "already-hashed",
	}
	require.NoError(t, store.Insert(ctx, existing))

	result, err := newSeedUsecase(t, store, log, defaultPolicy()).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9, result.Created[entity.KindUser])

	got, err := usecase.Resolve[entity.User](ctx, store, entity.UserKey("amit.sharma@gmail.com"))
	require.NoError(t, err)
	assert.Equal(t, existing.ID, got.ID)
	assert.Equal(t, "Someone Else", got.Name)
	assert.Equal(t, "already-hashed", got.Password)

	// the existing identity still gets its profile and appointments
	profile, err := usecase.Resolve[entity.Patient](ctx, store, entity.PatientKey(existing.ID))
	require.NoError(t, err)
	require.NotNil(t, profile)
	appt, err := usecase.Resolve[entity.Appointment](ctx, store, entity.AppointmentKey(existing.ID, entity.AppointmentStatusCompleted))
	require.NoError(t, err)
	require.NotNil(t, appt)
}

func TestSeedRecoversAfterPartialFailure(t *testing.T) {
	ctx := context.Background()
	memory := repoImpl.NewMemoryStore()
	log, hook := newLogger()

	broken := &faultyStore{Store: memory, failInsert: entity.KindReview}
	result, err := newSeedUsecase(t, broken, log, defaultPolicy()).Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, errStoreDown)
	assert.Contains(t, err.Error(), "stage "+usecase.StageClinicalRecords)
	require.NotNil(t, result)
	assert.Equal(t, 10, result.NewAppointments)
	assert.Equal(t, 1, result.Created[entity.KindMedicalRecord])
	assert.NotContains(t, result.Stages, usecase.StageClinicalRecords)

	hook.Reset()
	result, err = newSeedUsecase(t, memory, log, defaultPolicy()).Run(ctx)
	require.NoError(t, err)

	requireCounts(t, memory, expectedCounts)
	assert.Zero(t, result.NewAppointments)
	assert.Equal(t, map[entity.Kind]int{
		entity.KindMedicalRecord: 4,
		entity.KindReview:        5,
	}, result.Created)
}

func TestSeedUsesPolicy(t *testing.T) {
	ctx := context.Background()
	store := repoImpl.NewMemoryStore()
	log, _ := newLogger()
	policy := fixedPolicy{pick: 2, past: 4, future: 6, rating: 4}

	_, err := newSeedUsecase(t, store, log, policy).Run(ctx)
	require.NoError(t, err)

	strange, err := usecase.Resolve[entity.User](ctx, store, entity.UserKey("dr.strange@triksha.com"))
	require.NoError(t, err)
	doctor, err := usecase.Resolve[entity.Doctor](ctx, store, entity.DoctorKey(strange.ID))
	require.NoError(t, err)
	patient, err := usecase.Resolve[entity.User](ctx, store, entity.UserKey("priya.singh@gmail.com"))
	require.NoError(t, err)

	completed, err := usecase.Resolve[entity.Appointment](ctx, store, entity.AppointmentKey(patient.ID, entity.AppointmentStatusCompleted))
	require.NoError(t, err)
	booked, err := usecase.Resolve[entity.Appointment](ctx, store, entity.AppointmentKey(patient.ID, entity.AppointmentStatusBooked))
	require.NoError(t, err)

	assert.Equal(t, doctor.ID, completed.DoctorID)
	assert.Equal(t, doctor.HospitalID, completed.HospitalID)
	assert.True(t, completed.Date.Equal(fixedNow.AddDate(0, 0, -4)))
	assert.True(t, booked.Date.Equal(fixedNow.AddDate(0, 0, 6)))
	assert.Equal(t, entity.PaymentStatusPaid, booked.PaymentStatus)
	assert.Equal(t, entity.ForPatientSelf, booked.ForPatientType)

	review, err := usecase.Resolve[entity.Review](ctx, store, entity.ReviewKey(completed.ID))
	require.NoError(t, err)
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, doctor.ID, review.DoctorID)

	record, err := usecase.Resolve[entity.MedicalRecord](ctx, store, entity.MedicalRecordKey(completed.ID))
	require.NoError(t, err)
	assert.True(t, record.PrescribedAt.Equal(completed.Date))
	require.Len(t, record.Medicines, 1)
	assert.Equal(t, "Paracetamol", record.Medicines[0].Name)

	none, err := usecase.Resolve[entity.MedicalRecord](ctx, store, entity.MedicalRecordKey(booked.ID))
	require.NoError(t, err)
	assert.Nil(t, none, "booked appointments get no medical record")
}

func TestSeedHashesPasswords(t *testing.T) {
	ctx := context.Background()
	store := repoImpl.NewMemoryStore()
	log, _ := newLogger()

	_, err := newSeedUsecase(t, store, log, defaultPolicy()).Run(ctx)
	require.NoError(t, err)

	user, err := usecase.Resolve[entity.User](ctx, store, entity.UserKey("hospital_admin@triksha.com"))
	require.NoError(t, err)
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	assert.Equal(t, entity.RoleHospitalAdmin, user.Role)
	assert.True(t, user.IsVerified)
}

func TestSeedRejectsInvalidDataset(t *testing.T) {
	store := repoImpl.NewMemoryStore()
	log, hook := newLogger()
	credentials, err := service.NewCredentialService("password123", bcrypt.MinCost)
	require.NoError(t, err)

	dataset := seed.Default()
	dataset.Patients[0].Email = "not-an-email"

	_, err = usecase.NewSeedUsecase(store, log, validator.NewValidator(), credentials, defaultPolicy(), dataset).Run(context.Background())
	require.ErrorIs(t, err, usecase.ErrInvalidDataset)
	assert.Contains(t, err.Error(), "Dataset.Patients[0].Email must be a valid email address")
	assert.Zero(t, createdEntries(hook))
}

func TestSeedRejectsDanglingHospital(t *testing.T) {
	store := repoImpl.NewMemoryStore()
	log, _ := newLogger()
	credentials, err := service.NewCredentialService("password123", bcrypt.MinCost)
	require.NoError(t, err)

	dataset := seed.Default()
	dataset.Practitioners[1].HospitalLicense = "HOSP-000000"

	_, err = usecase.NewSeedUsecase(store, log, validator.NewValidator(), credentials, defaultPolicy(), dataset).Run(context.Background())
	require.ErrorIs(t, err, usecase.ErrDanglingReference)
	assert.Contains(t, err.Error(), "stage "+usecase.StagePractitionerProfiles)
}

func TestSeedSQLiteReferentialCompleteness(t *testing.T) {
	ctx := context.Background()
	store, db := newSQLiteStore(t)
	log, _ := newLogger()

	_, err := newSeedUsecase(t, store, log, defaultPolicy()).Run(ctx)
	require.NoError(t, err)
	requireCounts(t, store, expectedCounts)

	var users []entity.User
	require.NoError(t, db.Find(&users).Error)
	userIDs := make(map[uuid.UUID]entity.Role, len(users))
	for _, u := range users {
		userIDs[u.ID] = u.Role
	}

	var doctors []entity.Doctor
	require.NoError(t, db.Find(&doctors).Error)
	doctorIDs := make(map[uuid.UUID]bool)
	for _, d := range doctors {
		assert.Equal(t, entity.RoleDoctor, userIDs[d.UserID])
		doctorIDs[d.ID] = true
	}

	var hospital entity.Hospital
	require.NoError(t, db.First(&hospital).Error)
	assert.Equal(t, entity.RoleHospitalAdmin, userIDs[hospital.UserID])
	assert.Len(t, hospital.Location.Coordinates, 2)

	var lab entity.Lab
	require.NoError(t, db.First(&lab).Error)
	assert.Equal(t, entity.RoleLabAdmin, userIDs[lab.UserID])
	assert.Equal(t, []string{"Blood Test", "Urine Test", "Diabetes"}, lab.TestTypes)
	assert.Equal(t, "450", lab.AveragePrice.String())

	var appointments []entity.Appointment
	require.NoError(t, db.Find(&appointments).Error)
	completed := make(map[uuid.UUID]entity.Appointment)
	for _, a := range appointments {
		assert.Equal(t, entity.RolePatient, userIDs[a.BookedBy])
		assert.True(t, doctorIDs[a.DoctorID])
		assert.Equal(t, hospital.ID, a.HospitalID)
		if a.IsCompleted() {
			completed[a.ID] = a
			assert.True(t, a.Date.Before(fixedNow))
		} else {
			assert.True(t, a.IsBooked())
			assert.True(t, a.Date.After(fixedNow))
		}
	}
	assert.Len(t, completed, 5)

	var records []entity.MedicalRecord
	require.NoError(t, db.Find(&records).Error)
	for _, r := range records {
		appt, ok := completed[r.AppointmentID]
		require.True(t, ok, "record for a non-completed appointment")
		assert.Equal(t, appt.DoctorID, r.DoctorID)
		assert.Equal(t, appt.HospitalID, r.HospitalID)
		assert.Len(t, r.Medicines, 1)
	}

	var reviews []entity.Review
	require.NoError(t, db.Find(&reviews).Error)
	for _, r := range reviews {
		appt, ok := completed[r.AppointmentID]
		require.True(t, ok, "review for a non-completed appointment")
		assert.Equal(t, appt.DoctorID, r.DoctorID)
		assert.GreaterOrEqual(t, r.Rating, seed.MinRating)
		assert.LessOrEqual(t, r.Rating, seed.MaxRating)
	}

	// a second run against the database creates nothing
	result, err := newSeedUsecase(t, store, log, fixedPolicy{pick: 0, past: 1, future: 1, rating: 4}).Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, result.TotalCreated())
	requireCounts(t, store, expectedCounts)
}

func TestSeedRejectsFacilityWithoutAdmin(t *testing.T) {
	store := repoImpl.NewMemoryStore()
	log, _ := newLogger()
	credentials, err := service.NewCredentialService("password123", bcrypt.MinCost)
	require.NoError(t, err)

	dataset := seed.Default()
	dataset.Labs[0].AdminEmail = "amit.sharma@gmail.com"

	_, err = usecase.NewSeedUsecase(store, log, validator.NewValidator(), credentials, defaultPolicy(), dataset).Run(context.Background())
	require.ErrorIs(t, err, usecase.ErrInvalidDataset)
	assert.Contains(t, err.Error(), "stage "+usecase.StageFacilities)
	assert.Contains(t, err.Error(), "role patient")

	n, err := store.Count(context.Background(), entity.KindLab)
	require.NoError(t, err)
	assert.Zero(t, n)
}
