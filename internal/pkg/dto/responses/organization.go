package responses

type Organization struct {
	ID             string `json:"id"`
	Slug           string `json:"slug"`
	Name           string `json:"name"`
	Active         bool   `json:"active"`
	OwnerProfileID string `json:"ownerProfileId,omitempty"`
	LoginPath      string `json:"loginPath"`
}

type ClinicPublicPage struct {
	Slug    string         `json:"slug"`
	Name    string         `json:"name"`
	Doctors []ClinicDoctor `json:"doctors"`
}

type ClinicDoctor struct {
	DoctorID       string `json:"doctorId"`
	FullName       string `json:"fullName"`
	Specialization string `json:"specialization"`
}
