package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Doctor represents the practitioner profile owned by a User (1:1 by UserID)
type Doctor struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id" bson:"_id"`
	UserID          uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"user_id" bson:"user_id" validate:"required"`
	Gender          string          `gorm:"type:varchar(10)" json:"gender" bson:"gender" validate:"omitempty,oneof=male female"`
	Specialization  string          `gorm:"type:varchar(100);not null;index" json:"specialization" bson:"specialization" validate:"required"`
	Experience      int             `gorm:"not null;default:0" json:"experience" bson:"experience" validate:"gte=0"`
	LicenseNumber   string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number" bson:"license_number" validate:"required"`
	HospitalID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"hospital_id" bson:"hospital_id" validate:"required"`
	IsVerified      bool            `gorm:"not null;default:false" json:"is_verified" bson:"is_verified"`
	Education       string          `gorm:"type:varchar(100)" json:"education" bson:"education"`
	ConsultationFee decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"consultation_fee" bson:"consultation_fee"`
	AverageRating   float64         `gorm:"not null;default:0" json:"average_rating" bson:"average_rating" validate:"gte=0,lte=5"`
	TotalReviews    int             `gorm:"not null;default:0" json:"total_reviews" bson:"total_reviews" validate:"gte=0"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at" bson:"updated_at"`
}

func (Doctor) TableName() string {
	return KindDoctor.Collection()
}

func (*Doctor) Kind() Kind {
	return KindDoctor
}

func (d *Doctor) NaturalKey() NaturalKey {
	return DoctorKey(d.UserID)
}

func DoctorKey(userID uuid.UUID) NaturalKey {
	return mustKeyOf(KindDoctor, userID)
}
