package entity

import (
	"time"

	"github.com/google/uuid"
)

// VitalStats is counted by the auditor but never seeded
type VitalStats struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id" bson:"_id"`
	PatientID     uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id" bson:"patient_id"`
	BloodPressure string    `gorm:"type:varchar(20)" json:"blood_pressure" bson:"blood_pressure"`
	HeartRate     int       `json:"heart_rate" bson:"heart_rate"`
	Weight        float64   `json:"weight" bson:"weight"`
	RecordedAt    time.Time `json:"recorded_at" bson:"recorded_at"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at" bson:"created_at"`
}

func (VitalStats) TableName() string {
	return KindVitalStats.Collection()
}
