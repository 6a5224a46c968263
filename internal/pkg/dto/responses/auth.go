package responses

type Login struct {
	Token      string `json:"token"`
	Role       string `json:"role"`
	ClinicID   string `json:"clinicId,omitempty"`
	ClinicSlug string `json:"clinicSlug,omitempty"`
	FullName   string `json:"fullName"`
	Dashboard  string `json:"dashboard"`
}

type Me struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	Active           bool   `json:"active"`
	FullName         string `json:"fullName"`
	ClinicID         string `json:"clinicId,omitempty"`
	ClinicName       string `json:"clinicName,omitempty"`
	DoctorID         string `json:"doctorId,omitempty"`
	IsClinicOwner    bool   `json:"isClinicOwner"`
	AssistantID      string `json:"assistantId,omitempty"`
	AssignedDoctorID string `json:"assignedDoctorId,omitempty"`
	PictureUrl       string `json:"pictureUrl,omitempty"`
}
