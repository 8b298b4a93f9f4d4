package entity

import (
	"time"

	"github.com/google/uuid"
)

// Medicine is one prescribed item on a medical record
type Medicine struct {
	Name      string `json:"name" bson:"name" validate:"required"`
	Dosage    string `json:"dosage" bson:"dosage" validate:"required"`
	Frequency string `json:"frequency" bson:"frequency" validate:"required"`
	Duration  string `json:"duration" bson:"duration" validate:"required"`
}

// MedicalRecord is the clinical note written for a completed appointment.
// At most one record exists per appointment.
type MedicalRecord struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id" bson:"_id"`
	PatientID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id" bson:"patient_id" validate:"required"`
	AppointmentID  uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"appointment_id" bson:"appointment_id" validate:"required"`
	DoctorID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"doctor_id" bson:"doctor_id" validate:"required"`
	HospitalID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"hospital_id" bson:"hospital_id" validate:"required"`
	Type           string     `gorm:"type:varchar(50);not null" json:"type" bson:"type" validate:"required"`
	ForPatientType string     `gorm:"type:varchar(20);not null;default:'self'" json:"for_patient_type" bson:"for_patient_type" validate:"oneof=self dependent"`
	Medicines      []Medicine `gorm:"type:text;serializer:json" json:"medicines" bson:"medicines" validate:"dive"`
	Notes          string     `gorm:"type:text" json:"notes" bson:"notes"`
	PrescribedAt   time.Time  `gorm:"not null" json:"prescribed_at" bson:"prescribed_at"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at" bson:"updated_at"`
}

func (MedicalRecord) TableName() string {
	return KindMedicalRecord.Collection()
}

func (*MedicalRecord) Kind() Kind {
	return KindMedicalRecord
}

func (m *MedicalRecord) NaturalKey() NaturalKey {
	return MedicalRecordKey(m.AppointmentID)
}

func MedicalRecordKey(appointmentID uuid.UUID) NaturalKey {
	return mustKeyOf(KindMedicalRecord, appointmentID)
}
