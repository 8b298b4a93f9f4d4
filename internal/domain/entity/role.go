package entity

// Role is the role tag carried by a User
type Role string

const (
	RoleHospitalAdmin Role = "hospitalAdmin"
	RoleLabAdmin      Role = "labAdmin"
	RoleDoctor        Role = "doctor"
	RolePatient       Role = "patient"
)

// IsAdmin reports whether the role administers a facility
func (r Role) IsAdmin() bool {
	return r == RoleHospitalAdmin || r == RoleLabAdmin
}
