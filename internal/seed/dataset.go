// Package seed holds the compiled-in sample dataset and the selection
// policy used when generating appointments.
package seed

import "github.com/shopspring/decimal"

// Admin administers exactly one facility
type Admin struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
	Phone string `validate:"required,numeric"`
	Role  string `validate:"required,oneof=hospitalAdmin labAdmin"`

	// Password is optional; the configured default secret is used when empty
	Password string
}

// Facility describes a hospital or a lab
type Facility struct {
	Name          string `validate:"required"`
	Phone         string `validate:"omitempty,numeric"`
	Address       string `validate:"required"`
	LicenseNumber string `validate:"required"`
	AdminEmail    string `validate:"required,email"`
	IsVerified    bool

	Longitude float64 `validate:"gte=-180,lte=180"`
	Latitude  float64 `validate:"gte=-90,lte=90"`

	// Lab only
	TestTypes    []string
	AveragePrice decimal.Decimal
}

type Practitioner struct {
	Name            string `validate:"required"`
	Email           string `validate:"required,email"`
	Specialization  string `validate:"required"`
	Experience      int    `validate:"gte=0"`
	ConsultationFee decimal.Decimal
	HospitalLicense string `validate:"required"`
	Password        string
}

type Patient struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Gender   string `validate:"required,oneof=male female"`
	Password string
}

// Dataset is the full fixture. Order within each list is significant:
// it drives phone numbers, license numbers and the order of creation.
type Dataset struct {
	Admins        []Admin        `validate:"required,dive"`
	Hospitals     []Facility     `validate:"required,dive"`
	Labs          []Facility     `validate:"dive"`
	Practitioners []Practitioner `validate:"required,dive"`
	Patients      []Patient      `validate:"required,dive"`
}

// Default returns the sample dataset: 2 admins, 1 hospital, 1 lab,
// 3 practitioners and 5 patients.
func Default() Dataset {
	return Dataset{
		Admins: []Admin{
			{Name: "Dr. Admin Singh", Email: "hospital_admin@triksha.com", Phone: "9876543210", Role: "hospitalAdmin"},
			{Name: "Lab Admin Verma", Email: "lab_admin@triksha.com", Phone: "9876543211", Role: "labAdmin"},
		},
		Hospitals: []Facility{
			{
				Name:          "City Care Hospital",
				Phone:         "9876543210",
				Address:       "Sector 62, Noida, UP",
				LicenseNumber: "HOSP-123456",
				IsVerified:    true,
				Longitude:     77.3639,
				Latitude:      28.6208,
				AdminEmail:    "hospital_admin@triksha.com",
			},
		},
		Labs: []Facility{
			{
				Name:          "Pathkind Labs",
				Phone:         "9876543211",
				Address:       "Sector 18, Noida, UP",
				LicenseNumber: "LAB-987654",
				IsVerified:    true,
				Longitude:     77.3240,
				Latitude:      28.5708,
				AdminEmail:    "lab_admin@triksha.com",
				TestTypes:     []string{"Blood Test", "Urine Test", "Diabetes"},
				AveragePrice:  decimal.NewFromInt(450),
			},
		},
		Practitioners: []Practitioner{
			{Name: "Dr. Rajesh Koothrappali", Email: "dr.rajesh@triksha.com", Specialization: "Cardiologist", Experience: 12, ConsultationFee: decimal.NewFromInt(1000), HospitalLicense: "HOSP-123456"},
			{Name: "Dr. Meredith Grey", Email: "dr.meredith@triksha.com", Specialization: "General Physician", Experience: 8, ConsultationFee: decimal.NewFromInt(500), HospitalLicense: "HOSP-123456"},
			{Name: "Dr. Strange", Email: "dr.strange@triksha.com", Specialization: "Neurologist", Experience: 15, ConsultationFee: decimal.NewFromInt(2000), HospitalLicense: "HOSP-123456"},
		},
		Patients: []Patient{
			{Name: "Amit Sharma", Email: "amit.sharma@gmail.com", Gender: "male"},
			{Name: "Priya Singh", Email: "priya.singh@gmail.com", Gender: "female"},
			{Name: "Rahul Verma", Email: "rahul.verma@gmail.com", Gender: "male"},
			{Name: "Anjali Gupta", Email: "anjali.gupta@gmail.com", Gender: "female"},
			{Name: "Vikram Malhotra", Email: "vikram.m@gmail.com", Gender: "male"},
		},
	}
}
