package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyOf(t *testing.T) {
	key, err := KeyOf(KindUser, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, KindUser, key.Kind())
	assert.Equal(t, map[string]interface{}{"email": "a@example.com"}, key.Map())
	assert.Equal(t, "email=a@example.com", key.String())
	assert.True(t, key.Equal(UserKey("a@example.com")))
	assert.False(t, key.Equal(UserKey("b@example.com")))

	_, err = KeyOf(KindUser)
	assert.Error(t, err)

	_, err = KeyOf(KindVitalStats, "x")
	assert.Error(t, err, "vital stats have no natural key")

	_, err = KeyOf(Kind("invoices"), "x")
	assert.Error(t, err)
}

func TestKeysOfDifferentKindsDiffer(t *testing.T) {
	assert.False(t, HospitalKey("LIC-1").Equal(LabKey("LIC-1")))
	assert.True(t, NaturalKey{}.IsZero())
}

func TestDocumentsReportTheirOwnKey(t *testing.T) {
	bookedBy := uuid.New()
	appt := &Appointment{BookedBy: bookedBy, Status: AppointmentStatusCompleted}

	assert.True(t, appt.NaturalKey().Equal(AppointmentKey(bookedBy, AppointmentStatusCompleted)))
	assert.Equal(t, []KeyField{
		{Name: "booked_by", Value: bookedBy},
		{Name: "status", Value: AppointmentStatusCompleted},
	}, appt.NaturalKey().Fields())

	apptID := uuid.New()
	assert.True(t, (&MedicalRecord{AppointmentID: apptID}).NaturalKey().Equal(MedicalRecordKey(apptID)))
	assert.True(t, (&Review{AppointmentID: apptID}).NaturalKey().Equal(ReviewKey(apptID)))
	assert.True(t, (&Lab{LicenseNumber: "LAB-1"}).NaturalKey().Equal(LabKey("LAB-1")))
}

func TestRegistryCoversAuditedKinds(t *testing.T) {
	assert.Len(t, AuditedKinds, 10)
	assert.Len(t, Documents(), len(AuditedKinds))
	for _, kind := range AuditedKinds {
		_, ok := registry[kind]
		assert.True(t, ok, kind)
	}
	assert.Equal(t, "MedicalRecords", KindMedicalRecord.Label())
	assert.False(t, KindAppointment.Spec().Unique)
	assert.True(t, KindReview.Spec().Unique)
}

func TestRole(t *testing.T) {
	assert.True(t, RoleLabAdmin.IsAdmin())
	assert.False(t, RoleDoctor.IsAdmin())
	assert.False(t, RolePatient.IsAdmin())
}
