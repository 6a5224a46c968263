package requests

type BookAppointment struct {
	DoctorID     string `json:"doctorId" validate:"required"`
	StartTime    string `json:"startTime" validate:"required"`
	PatientName  string `json:"patientName" validate:"required,min=2,max=120"`
	PatientEmail string `json:"patientEmail" validate:"required,email"`
	PatientPhone string `json:"patientPhone" validate:"omitempty,min=7,max=20"`
	Reason       string `json:"reason" validate:"omitempty,max=500"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}
