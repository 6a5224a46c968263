package responses

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
	ClinicID string `json:"clinicId,omitempty"`
}

type StaffMember struct {
	ProfileID        string `json:"profileId"`
	Email            string `json:"email"`
	FullName         string `json:"fullName"`
	Role             string `json:"role"`
	Active           bool   `json:"active"`
	DoctorID         string `json:"doctorId,omitempty"`
	Specialization   string `json:"specialization,omitempty"`
	AssistantID      string `json:"assistantId,omitempty"`
	AssignedDoctorID string `json:"assignedDoctorId,omitempty"`
}
