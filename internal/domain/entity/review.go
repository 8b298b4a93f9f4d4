package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is the patient's rating of a doctor for one appointment
type Review struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id" bson:"_id"`
	PatientID     uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id" bson:"patient_id" validate:"required"`
	DoctorID      uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id" bson:"doctor_id" validate:"required"`
	AppointmentID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"appointment_id" bson:"appointment_id" validate:"required"`
	Rating        int       `gorm:"not null" json:"rating" bson:"rating" validate:"gte=1,lte=5"`
	Comment       string    `gorm:"type:text" json:"comment" bson:"comment"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at" bson:"updated_at"`
}

func (Review) TableName() string {
	return KindReview.Collection()
}

func (*Review) Kind() Kind {
	return KindReview
}

func (r *Review) NaturalKey() NaturalKey {
	return ReviewKey(r.AppointmentID)
}

func ReviewKey(appointmentID uuid.UUID) NaturalKey {
	return mustKeyOf(KindReview, appointmentID)
}
