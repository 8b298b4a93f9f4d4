package converter

import (
	"time"

	"go-medical-seeder/internal/domain/entity"

	"github.com/google/uuid"
)

// Fixed attributes of seeded appointments and their clinical records
const (
	appointmentAge    = "30"
	completedTimeSlot = "10:00 AM"
	bookedTimeSlot    = "04:00 PM"
	completedGender   = "Male"
	bookedGender      = "Female"
	recordTypeConsult = "Consultation"
	consultationNotes = "Patient visited for general checkup. Diagnosis: Seasonal Viral."
	reviewComment     = "Good experience."
)

// CompletedAppointment builds the paid, past appointment of patient with doctor
func CompletedAppointment(patient *entity.User, doctor *entity.Doctor, date time.Time, now time.Time) *entity.Appointment {
	return newSelfAppointment(patient, doctor, date, now, entity.AppointmentStatusCompleted, completedTimeSlot, completedGender)
}

// BookedAppointment builds the paid, upcoming appointment of patient with doctor
func BookedAppointment(patient *entity.User, doctor *entity.Doctor, date time.Time, now time.Time) *entity.Appointment {
	return newSelfAppointment(patient, doctor, date, now, entity.AppointmentStatusBooked, bookedTimeSlot, bookedGender)
}

func newSelfAppointment(patient *entity.User, doctor *entity.Doctor, date, now time.Time, status entity.AppointmentStatus, slot, gender string) *entity.Appointment {
	return &entity.Appointment{
		ID:             uuid.New(),
		BookedBy:       patient.ID,
		ForPatientType: entity.ForPatientSelf,
		PatientID:      nil,
		Age:            appointmentAge,
		Gender:         gender,
		DoctorID:       doctor.ID,
		HospitalID:     doctor.HospitalID,
		Date:           date,
		Contact:        patient.Phone,
		TimeSlot:       slot,
		Mode:           entity.AppointmentModeOffline,
		Status:         status,
		PaymentStatus:  entity.PaymentStatusPaid,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// AppointmentToMedicalRecord builds the consultation record of a completed appointment.
// Doctor and hospital are taken from the appointment itself.
func AppointmentToMedicalRecord(appt *entity.Appointment, patient *entity.Patient, now time.Time) *entity.MedicalRecord {
	return &entity.MedicalRecord{
		ID:             uuid.New(),
		PatientID:      patient.ID,
		AppointmentID:  appt.ID,
		DoctorID:       appt.DoctorID,
		HospitalID:     appt.HospitalID,
		Type:           recordTypeConsult,
		ForPatientType: appt.ForPatientType,
		Medicines: []entity.Medicine{
			{Name: "Paracetamol", Dosage: "500mg", Frequency: "BD", Duration: "3 days"},
		},
		Notes:        consultationNotes,
		PrescribedAt: appt.Date,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// AppointmentToReview builds the patient's review of a completed appointment
func AppointmentToReview(appt *entity.Appointment, patient *entity.Patient, rating int, now time.Time) *entity.Review {
	return &entity.Review{
		ID:            uuid.New(),
		PatientID:     patient.ID,
		DoctorID:      appt.DoctorID,
		AppointmentID: appt.ID,
		Rating:        rating,
		Comment:       reviewComment,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
