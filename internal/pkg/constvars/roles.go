package constvars

// Roles stored on a Profile. Patient principals exist in the identity
// provider without a stored role; they are handled as claims-only.
const (
	RoleSuperadmin = "superadmin"
	RoleDoctor     = "doctor"
	RoleAssistant  = "assistant"
	RolePatient    = "patient"
)

// Appointment lifecycle.
const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusCompleted = "completed"
)
