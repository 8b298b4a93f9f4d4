package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents patient-specific profile data, 1:1 with its User
type Patient struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id" bson:"_id"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id" bson:"user_id" validate:"required"`
	Gender    string    `gorm:"type:varchar(10)" json:"gender" bson:"gender" validate:"omitempty,oneof=male female other"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at" bson:"updated_at"`
}

func (Patient) TableName() string {
	return KindPatient.Collection()
}

func (*Patient) Kind() Kind {
	return KindPatient
}

func (p *Patient) NaturalKey() NaturalKey {
	return PatientKey(p.UserID)
}

func PatientKey(userID uuid.UUID) NaturalKey {
	return mustKeyOf(KindPatient, userID)
}

// Gender constants
const (
	GenderMale   = "male"
	GenderFemale = "female"
)
