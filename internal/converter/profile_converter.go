package converter

import (
	"fmt"
	"time"

	"go-medical-seeder/internal/domain/entity"
	"go-medical-seeder/internal/seed"

	"github.com/google/uuid"
)

const doctorEducation = "MBBS, MD"

// PractitionerToDoctor converts the idx-th practitioner descriptor into the
// profile of user, practising at hospital. Rating and review count grow with idx.
func PractitionerToDoctor(idx int, p seed.Practitioner, user *entity.User, hospital *entity.Hospital, now time.Time) *entity.Doctor {
	gender := entity.GenderMale
	if idx%2 != 0 {
		gender = entity.GenderFemale
	}

	return &entity.Doctor{
		ID:              uuid.New(),
		UserID:          user.ID,
		Gender:          gender,
		Specialization:  p.Specialization,
		Experience:      p.Experience,
		LicenseNumber:   fmt.Sprintf("DOC-00%d", idx+1),
		HospitalID:      hospital.ID,
		IsVerified:      true,
		Education:       doctorEducation,
		ConsultationFee: p.ConsultationFee,
		AverageRating:   4.5 + float64(idx)*0.1,
		TotalReviews:    10 + idx*5,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// PatientToProfile converts a patient descriptor into the profile of user
func PatientToProfile(p seed.Patient, user *entity.User, now time.Time) *entity.Patient {
	return &entity.Patient{
		ID:        uuid.New(),
		UserID:    user.ID,
		Gender:    p.Gender,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
