package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusBooked    AppointmentStatus = "booked"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

type AppointmentMode string

const (
	AppointmentModeOffline AppointmentMode = "offline"
	AppointmentModeOnline  AppointmentMode = "online"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Who the appointment is for: the booking user or one of their dependents
const (
	ForPatientSelf      = "self"
	ForPatientDependent = "dependent"
)

// Appointment is booked by a User with a Doctor at a Hospital.
// PatientID is only set for dependent bookings.
type Appointment struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id" bson:"_id"`
	BookedBy       uuid.UUID         `gorm:"type:uuid;not null;index:idx_appointments_booked_by_status" json:"booked_by" bson:"booked_by" validate:"required"`
	ForPatientType string            `gorm:"type:varchar(20);not null;default:'self'" json:"for_patient_type" bson:"for_patient_type" validate:"required,oneof=self dependent"`
	PatientID      *uuid.UUID        `gorm:"type:uuid;index" json:"patient_id,omitempty" bson:"patient_id"`
	Age            string            `gorm:"type:varchar(10)" json:"age" bson:"age"`
	Gender         string            `gorm:"type:varchar(10)" json:"gender" bson:"gender"`
	DoctorID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id" bson:"doctor_id" validate:"required"`
	HospitalID     uuid.UUID         `gorm:"type:uuid;not null;index" json:"hospital_id" bson:"hospital_id" validate:"required"`
	Date           time.Time         `gorm:"not null" json:"date" bson:"date" validate:"required"`
	Contact        string            `gorm:"type:varchar(20)" json:"contact" bson:"contact"`
	TimeSlot       string            `gorm:"type:varchar(20);not null" json:"time_slot" bson:"time_slot" validate:"required"`
	Mode           AppointmentMode   `gorm:"type:varchar(10);not null" json:"mode" bson:"mode" validate:"required,oneof=offline online"`
	Status         AppointmentStatus `gorm:"type:varchar(20);not null;index:idx_appointments_booked_by_status" json:"status" bson:"status" validate:"required,oneof=booked completed cancelled"`
	PaymentStatus  PaymentStatus     `gorm:"type:varchar(20);not null" json:"payment_status" bson:"payment_status" validate:"required,oneof=pending paid"`
	CreatedAt      time.Time         `gorm:"autoCreateTime" json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime" json:"updated_at" bson:"updated_at"`
}

func (Appointment) TableName() string {
	return KindAppointment.Collection()
}

func (*Appointment) Kind() Kind {
	return KindAppointment
}

// NaturalKey is the seeding identity (booking user, status), not a store constraint
func (a *Appointment) NaturalKey() NaturalKey {
	return AppointmentKey(a.BookedBy, a.Status)
}

func AppointmentKey(bookedBy uuid.UUID, status AppointmentStatus) NaturalKey {
	return mustKeyOf(KindAppointment, bookedBy, status)
}

func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

func (a *Appointment) IsBooked() bool {
	return a.Status == AppointmentStatusBooked
}
