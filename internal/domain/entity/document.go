package entity

import (
	"fmt"
	"strings"
)

// Kind names a document collection (table) in the store
type Kind string

const (
	KindUser          Kind = "users"
	KindDoctor        Kind = "doctors"
	KindHospital      Kind = "hospitals"
	KindLab           Kind = "labs"
	KindPatient       Kind = "patients"
	KindAppointment   Kind = "appointments"
	KindMedicalRecord Kind = "medical_records"
	KindLabReport     Kind = "lab_reports"
	KindReview        Kind = "reviews"
	KindVitalStats    Kind = "vital_stats"
)

// KindSpec is the registration of a kind: its display label and the
// fields that make up its natural key.
type KindSpec struct {
	Label     string
	KeyFields []string
	// Unique reports whether the store enforces the natural key with a unique index.
	Unique bool
}

var registry = map[Kind]KindSpec{
	KindUser:          {Label: "Users", KeyFields: []string{"email"}, Unique: true},
	KindDoctor:        {Label: "Doctors", KeyFields: []string{"user_id"}, Unique: true},
	KindHospital:      {Label: "Hospitals", KeyFields: []string{"license_number"}, Unique: true},
	KindLab:           {Label: "Labs", KeyFields: []string{"license_number"}, Unique: true},
	KindPatient:       {Label: "Patients", KeyFields: []string{"user_id"}, Unique: true},
	KindAppointment:   {Label: "Appointments", KeyFields: []string{"booked_by", "status"}},
	KindMedicalRecord: {Label: "MedicalRecords", KeyFields: []string{"appointment_id"}, Unique: true},
	KindLabReport:     {Label: "LabReports"},
	KindReview:        {Label: "Reviews", KeyFields: []string{"appointment_id"}, Unique: true},
	KindVitalStats:    {Label: "VitalStats"},
}

// AuditedKinds lists every kind in the order the auditor reports them
var AuditedKinds = []Kind{
	KindUser,
	KindDoctor,
	KindHospital,
	KindLab,
	KindPatient,
	KindAppointment,
	KindMedicalRecord,
	KindLabReport,
	KindReview,
	KindVitalStats,
}

func (k Kind) Spec() KindSpec {
	return registry[k]
}

func (k Kind) Label() string {
	if spec, ok := registry[k]; ok {
		return spec.Label
	}
	return string(k)
}

// Collection returns the table / collection name backing the kind
func (k Kind) Collection() string {
	return string(k)
}

// Document is implemented by every entity the seeder can resolve and create
type Document interface {
	Kind() Kind
	NaturalKey() NaturalKey
}

// KeyField is one column of a natural key
type KeyField struct {
	Name  string
	Value interface{}
}

// NaturalKey identifies a document by business fields rather than by ID
type NaturalKey struct {
	kind   Kind
	fields []KeyField
}

// KeyOf builds the natural key of kind from values given in registration order.
func KeyOf(kind Kind, values ...interface{}) (NaturalKey, error) {
	spec, ok := registry[kind]
	if !ok {
		return NaturalKey{}, fmt.Errorf("unknown kind %q", kind)
	}
	if len(spec.KeyFields) == 0 {
		return NaturalKey{}, fmt.Errorf("kind %q has no natural key", kind)
	}
	if len(values) != len(spec.KeyFields) {
		return NaturalKey{}, fmt.Errorf("kind %q expects %d key values, got %d", kind, len(spec.KeyFields), len(values))
	}

	fields := make([]KeyField, len(values))
	for i, v := range values {
		fields[i] = KeyField{Name: spec.KeyFields[i], Value: v}
	}
	return NaturalKey{kind: kind, fields: fields}, nil
}

// mustKeyOf is used by the entity key helpers whose arity is fixed at compile time
func mustKeyOf(kind Kind, values ...interface{}) NaturalKey {
	key, err := KeyOf(kind, values...)
	if err != nil {
		panic(err)
	}
	return key
}

func (k NaturalKey) Kind() Kind {
	return k.kind
}

func (k NaturalKey) Fields() []KeyField {
	out := make([]KeyField, len(k.fields))
	copy(out, k.fields)
	return out
}

func (k NaturalKey) IsZero() bool {
	return k.kind == "" || len(k.fields) == 0
}

// Map returns the key as column -> value, the shape gorm's Where accepts
func (k NaturalKey) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(k.fields))
	for _, f := range k.fields {
		m[f.Name] = f.Value
	}
	return m
}

func (k NaturalKey) Equal(other NaturalKey) bool {
	if k.kind != other.kind || len(k.fields) != len(other.fields) {
		return false
	}
	for i := range k.fields {
		if k.fields[i].Name != other.fields[i].Name || k.fields[i].Value != other.fields[i].Value {
			return false
		}
	}
	return true
}

func (k NaturalKey) String() string {
	parts := make([]string, len(k.fields))
	for i, f := range k.fields {
		parts[i] = fmt.Sprintf("%s=%v", f.Name, f.Value)
	}
	return strings.Join(parts, ",")
}

// Documents returns one zero value of every stored kind, for schema creation
func Documents() []interface{} {
	return []interface{}{
		&User{},
		&Hospital{},
		&Lab{},
		&Doctor{},
		&Patient{},
		&Appointment{},
		&MedicalRecord{},
		&LabReport{},
		&Review{},
		&VitalStats{},
	}
}
