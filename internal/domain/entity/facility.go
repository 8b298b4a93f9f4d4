package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GeoPoint is a GeoJSON point. Coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates" validate:"len=2"`
}

func NewGeoPoint(lng, lat float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lng, lat}}
}

// Hospital is a facility administered by a hospitalAdmin user
type Hospital struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id" bson:"_id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id" bson:"user_id" validate:"required"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name" bson:"name" validate:"required"`
	Phone         string    `gorm:"type:varchar(20)" json:"phone" bson:"phone"`
	Address       string    `gorm:"type:text" json:"address" bson:"address" validate:"required"`
	LicenseNumber string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number" bson:"license_number" validate:"required"`
	IsVerified    bool      `gorm:"not null;default:false" json:"is_verified" bson:"is_verified"`
	Location      GeoPoint  `gorm:"type:text;serializer:json" json:"location" bson:"location"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at" bson:"updated_at"`
}

func (Hospital) TableName() string {
	return KindHospital.Collection()
}

func (*Hospital) Kind() Kind {
	return KindHospital
}

func (h *Hospital) NaturalKey() NaturalKey {
	return HospitalKey(h.LicenseNumber)
}

func HospitalKey(licenseNumber string) NaturalKey {
	return mustKeyOf(KindHospital, licenseNumber)
}

// Lab is a diagnostic facility administered by a labAdmin user
type Lab struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id" bson:"_id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id" bson:"user_id" validate:"required"`
	Name          string          `gorm:"type:varchar(255);not null" json:"name" bson:"name" validate:"required"`
	Phone         string          `gorm:"type:varchar(20)" json:"phone" bson:"phone"`
	Address       string          `gorm:"type:text" json:"address" bson:"address" validate:"required"`
	LicenseNumber string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number" bson:"license_number" validate:"required"`
	IsVerified    bool            `gorm:"not null;default:false" json:"is_verified" bson:"is_verified"`
	Location      GeoPoint        `gorm:"type:text;serializer:json" json:"location" bson:"location"`
	TestTypes     []string        `gorm:"type:text;serializer:json" json:"test_types" bson:"test_types"`
	AveragePrice  decimal.Decimal `gorm:"type:decimal(10,2)" json:"average_price" bson:"average_price"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at" bson:"updated_at"`
}

func (Lab) TableName() string {
	return KindLab.Collection()
}

func (*Lab) Kind() Kind {
	return KindLab
}

func (l *Lab) NaturalKey() NaturalKey {
	return LabKey(l.LicenseNumber)
}

func LabKey(licenseNumber string) NaturalKey {
	return mustKeyOf(KindLab, licenseNumber)
}
