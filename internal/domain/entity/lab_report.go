package entity

import (
	"time"

	"github.com/google/uuid"
)

// LabReport is counted by the auditor but never seeded
type LabReport struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id" bson:"_id"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id" bson:"patient_id"`
	LabID     uuid.UUID `gorm:"type:uuid;not null;index" json:"lab_id" bson:"lab_id"`
	TestType  string    `gorm:"type:varchar(100)" json:"test_type" bson:"test_type"`
	ReportURL string    `gorm:"type:text" json:"report_url" bson:"report_url"`
	Status    string    `gorm:"type:varchar(20)" json:"status" bson:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at" bson:"updated_at"`
}

func (LabReport) TableName() string {
	return KindLabReport.Collection()
}
