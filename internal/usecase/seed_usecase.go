package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-medical-seeder/internal/converter"
	"go-medical-seeder/internal/domain/entity"
	"go-medical-seeder/internal/domain/repository"
	"go-medical-seeder/internal/seed"
	"go-medical-seeder/internal/service"
	"go-medical-seeder/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidDataset    = errors.New("invalid seed dataset")
	ErrDanglingReference = errors.New("dangling reference")
)

// Stages in dependency order. Every stage only references documents
// resolved by the stages before it.
const (
	StageIdentities           = "identities"
	StageFacilities           = "facilities"
	StagePractitionerProfiles = "practitioner-profiles"
	StagePatientProfiles      = "patient-profiles"
	StageAppointments         = "appointments"
	StageClinicalRecords      = "clinical-records"
)

// SeedResult summarises one run. On failure it holds what was created before the error.
type SeedResult struct {
	Created         map[entity.Kind]int
	NewAppointments int
	Patients        int
	Stages          []string
}

// TotalCreated is the number of documents inserted by the run
func (r *SeedResult) TotalCreated() int {
	total := 0
	for _, n := range r.Created {
		total += n
	}
	return total
}

type SeedUsecase interface {
	// Run materialises the dataset. Running it again against the same store creates nothing.
	Run(ctx context.Context) (*SeedResult, error)
	Stages() []string
}

type seedUsecase struct {
	store       repository.Store
	log         *logrus.Logger
	validate    *validator.CustomValidator
	credentials service.CredentialService
	policy      seed.Policy
	dataset     seed.Dataset
}

func NewSeedUsecase(
	store repository.Store,
	log *logrus.Logger,
	validate *validator.CustomValidator,
	credentials service.CredentialService,
	policy seed.Policy,
	dataset seed.Dataset,
) SeedUsecase {
	return &seedUsecase{
		store:       store,
		log:         log,
		validate:    validate,
		credentials: credentials,
		policy:      policy,
		dataset:     dataset,
	}
}

type stage struct {
	name string
	run  func(ctx context.Context, run *seedRun) error
}

func (u *seedUsecase) stages() []stage {
	return []stage{
		{name: StageIdentities, run: u.seedIdentities},
		{name: StageFacilities, run: u.seedFacilities},
		{name: StagePractitionerProfiles, run: u.seedPractitionerProfiles},
		{name: StagePatientProfiles, run: u.seedPatientProfiles},
		{name: StageAppointments, run: u.seedAppointments},
		{name: StageClinicalRecords, run: u.seedClinicalRecords},
	}
}

func (u *seedUsecase) Stages() []string {
	stages := u.stages()
	names := make([]string, len(stages))
	for i, st := range stages {
		names[i] = st.name
	}
	return names
}

// seedRun carries the documents resolved by earlier stages to later ones
type seedRun struct {
	upserter *Upserter
	now      time.Time

	users        map[string]*entity.User // by email
	hospitals    map[string]*entity.Hospital
	labs         map[string]*entity.Lab
	doctors      []*entity.Doctor
	patientUsers []*entity.User
	patients     map[uuid.UUID]*entity.Patient // by owning user
	completed    []*entity.Appointment

	newAppointments int
}

func (u *seedUsecase) Run(ctx context.Context) (*SeedResult, error) {
	if err := u.validate.Validate(u.dataset); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDataset, u.validate.Describe(err))
	}

	run := &seedRun{
		upserter:  NewUpserter(u.store, u.validate, u.log),
		now:       u.policy.Now(),
		users:     make(map[string]*entity.User),
		hospitals: make(map[string]*entity.Hospital),
		labs:      make(map[string]*entity.Lab),
		patients:  make(map[uuid.UUID]*entity.Patient),
	}
	result := &SeedResult{}

	for _, st := range u.stages() {
		u.log.WithField("stage", st.name).Debug("Seeding stage started")
		if err := st.run(ctx, run); err != nil {
			result.Created = run.upserter.Created()
			result.NewAppointments = run.newAppointments
			return result, fmt.Errorf("stage %s: %w", st.name, err)
		}
		result.Stages = append(result.Stages, st.name)
	}

	result.Created = run.upserter.Created()
	result.NewAppointments = run.newAppointments
	result.Patients = len(run.patientUsers)

	u.log.Infof("Seeded/Verified %d new appointments across %d patients.", result.NewAppointments, result.Patients)
	return result, nil
}

// upsertUser hashes a credential only when the user does not exist yet
func (u *seedUsecase) upsertUser(ctx context.Context, run *seedRun, email, password string, build func(passwordHash string) *entity.User) (*entity.User, error) {
	user, _, err := Upsert(ctx, run.upserter, entity.UserKey(email), func() (*entity.User, error) {
		hash, err := u.credentials.Prepare(password)
		if err != nil {
			return nil, err
		}
		return build(hash), nil
	})
	if err != nil {
		return nil, err
	}
	run.users[email] = user
	return user, nil
}

// seedIdentities creates admins, then practitioners, then patients
func (u *seedUsecase) seedIdentities(ctx context.Context, run *seedRun) error {
	for _, admin := range u.dataset.Admins {
		if _, err := u.upsertUser(ctx, run, admin.Email, admin.Password, func(hash string) *entity.User {
			return converter.AdminToUser(admin, hash, run.now)
		}); err != nil {
			return err
		}
	}

	for idx, p := range u.dataset.Practitioners {
		if _, err := u.upsertUser(ctx, run, p.Email, p.Password, func(hash string) *entity.User {
			return converter.PractitionerToUser(idx, p, hash, run.now)
		}); err != nil {
			return err
		}
	}

	for idx, p := range u.dataset.Patients {
		user, err := u.upsertUser(ctx, run, p.Email, p.Password, func(hash string) *entity.User {
			return converter.PatientToUser(idx, p, hash, run.now)
		})
		if err != nil {
			return err
		}
		run.patientUsers = append(run.patientUsers, user)
	}

	return nil
}

func (u *seedUsecase) seedFacilities(ctx context.Context, run *seedRun) error {
	for _, f := range u.dataset.Hospitals {
		admin, err := run.admin(f)
		if err != nil {
			return err
		}
		hospital, _, err := Upsert(ctx, run.upserter, entity.HospitalKey(f.LicenseNumber), func() (*entity.Hospital, error) {
			return converter.FacilityToHospital(f, admin, run.now), nil
		})
		if err != nil {
			return err
		}
		run.hospitals[f.LicenseNumber] = hospital
	}

	for _, f := range u.dataset.Labs {
		admin, err := run.admin(f)
		if err != nil {
			return err
		}
		lab, _, err := Upsert(ctx, run.upserter, entity.LabKey(f.LicenseNumber), func() (*entity.Lab, error) {
			return converter.FacilityToLab(f, admin, run.now), nil
		})
		if err != nil {
			return err
		}
		run.labs[f.LicenseNumber] = lab
	}

	return nil
}

func (u *seedUsecase) seedPractitionerProfiles(ctx context.Context, run *seedRun) error {
	for idx, p := range u.dataset.Practitioners {
		user, err := run.user(p.Email)
		if err != nil {
			return err
		}
		hospital, ok := run.hospitals[p.HospitalLicense]
		if !ok {
			return fmt.Errorf("%w: practitioner %s references unknown hospital %s", ErrDanglingReference, p.Email, p.HospitalLicense)
		}

		doctor, _, err := Upsert(ctx, run.upserter, entity.DoctorKey(user.ID), func() (*entity.Doctor, error) {
			return converter.PractitionerToDoctor(idx, p, user, hospital, run.now), nil
		})
		if err != nil {
			return err
		}
		run.doctors = append(run.doctors, doctor)
	}
	return nil
}

func (u *seedUsecase) seedPatientProfiles(ctx context.Context, run *seedRun) error {
	for _, p := range u.dataset.Patients {
		user, err := run.user(p.Email)
		if err != nil {
			return err
		}

		profile, _, err := Upsert(ctx, run.upserter, entity.PatientKey(user.ID), func() (*entity.Patient, error) {
			return converter.PatientToProfile(p, user, run.now), nil
		})
		if err != nil {
			return err
		}
		run.patients[user.ID] = profile
	}
	return nil
}

// seedAppointments ensures one completed (past) and one booked (future)
// appointment per patient user, each with a practitioner picked by the policy.
func (u *seedUsecase) seedAppointments(ctx context.Context, run *seedRun) error {
	if len(run.doctors) == 0 {
		return fmt.Errorf("%w: no practitioner profiles to book appointments with", ErrDanglingReference)
	}

	for _, patient := range run.patientUsers {
		doctor := run.doctors[u.policy.PickPractitioner(len(run.doctors))]
		past := run.now.AddDate(0, 0, -u.policy.PastOffsetDays())
		future := run.now.AddDate(0, 0, u.policy.FutureOffsetDays())

		completed, created, err := Upsert(ctx, run.upserter, entity.AppointmentKey(patient.ID, entity.AppointmentStatusCompleted), func() (*entity.Appointment, error) {
			return converter.CompletedAppointment(patient, doctor, past, run.now), nil
		})
		if err != nil {
			return err
		}
		if created {
			run.newAppointments++
		}
		run.completed = append(run.completed, completed)

		_, created, err = Upsert(ctx, run.upserter, entity.AppointmentKey(patient.ID, entity.AppointmentStatusBooked), func() (*entity.Appointment, error) {
			return converter.BookedAppointment(patient, doctor, future, run.now), nil
		})
		if err != nil {
			return err
		}
		if created {
			run.newAppointments++
		}
	}
	return nil
}

// seedClinicalRecords gives every completed appointment exactly one medical
// record and one review. Both are keyed by appointment, so an appointment left
// without them by an interrupted run gets them on the next run.
func (u *seedUsecase) seedClinicalRecords(ctx context.Context, run *seedRun) error {
	for _, appt := range run.completed {
		patient, ok := run.patients[appt.BookedBy]
		if !ok {
			return fmt.Errorf("%w: appointment %s booked by %s has no patient profile", ErrDanglingReference, appt.ID, appt.BookedBy)
		}

		if _, _, err := Upsert(ctx, run.upserter, entity.MedicalRecordKey(appt.ID), func() (*entity.MedicalRecord, error) {
			return converter.AppointmentToMedicalRecord(appt, patient, run.now), nil
		}); err != nil {
			return err
		}

		if _, _, err := Upsert(ctx, run.upserter, entity.ReviewKey(appt.ID), func() (*entity.Review, error) {
			return converter.AppointmentToReview(appt, patient, u.policy.Rating(), run.now), nil
		}); err != nil {
			return err
		}
	}
	return nil
}

func (r *seedRun) user(email string) (*entity.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, fmt.Errorf("%w: no identity with email %s", ErrDanglingReference, email)
	}
	return user, nil
}

// admin resolves the facility's administrator, which must hold an admin role
func (r *seedRun) admin(f seed.Facility) (*entity.User, error) {
	user, err := r.user(f.AdminEmail)
	if err != nil {
		return nil, err
	}
	if !user.Role.IsAdmin() {
		return nil, fmt.Errorf("%w: facility %s is administered by %s with role %s", ErrInvalidDataset, f.LicenseNumber, user.Email, user.Role)
	}
	return user, nil
}
