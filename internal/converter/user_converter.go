package converter

import (
	"fmt"
	"time"

	"go-medical-seeder/internal/domain/entity"
	"go-medical-seeder/internal/seed"

	"github.com/google/uuid"
)

// Phone numbers are derived from the position in the dataset
const (
	practitionerPhonePrefix = "987654322"
	patientPhonePrefix      = "998877665"
)

// AdminToUser converts an admin descriptor into a new, verified User
func AdminToUser(admin seed.Admin, passwordHash string, now time.Time) *entity.User {
	return newUser(admin.Name, admin.Email, admin.Phone, entity.Role(admin.Role), passwordHash, now)
}

// PractitionerToUser converts the idx-th practitioner descriptor into its identity
func PractitionerToUser(idx int, p seed.Practitioner, passwordHash string, now time.Time) *entity.User {
	phone := fmt.Sprintf("%s%d", practitionerPhonePrefix, idx)
	return newUser(p.Name, p.Email, phone, entity.RoleDoctor, passwordHash, now)
}

// PatientToUser converts the idx-th patient descriptor into its identity
func PatientToUser(idx int, p seed.Patient, passwordHash string, now time.Time) *entity.User {
	phone := fmt.Sprintf("%s%d", patientPhonePrefix, idx)
	return newUser(p.Name, p.Email, phone, entity.RolePatient, passwordHash, now)
}

func newUser(name, email, phone string, role entity.Role, passwordHash string, now time.Time) *entity.User {
	return &entity.User{
		ID:         uuid.New(),
		Name:       name,
		Email:      email,
		Phone:      phone,
		Role:       role,
		IsVerified: true,
		Password:   passwordHash,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
