package models

// Role is the typed role enumeration used by the authorization gate.
// Roles are fixed at registration time and never change afterwards.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// Valid reports whether the role is one of the known values
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RolePatient:
		return true
	}
	return false
}

// DashboardPath returns the role-specific landing page used by login dispatch
func (r Role) DashboardPath() string {
	switch r {
	case RoleAdmin:
		return "/admin/dashboard"
	case RoleDoctor:
		return "/doctor/dashboard"
	default:
		return "/patient/dashboard"
	}
}
