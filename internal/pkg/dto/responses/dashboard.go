package responses

type Dashboard struct {
	Role          string `json:"role"`
	FullName      string `json:"fullName"`
	ClinicID      string `json:"clinicId,omitempty"`
	ClinicName    string `json:"clinicName,omitempty"`
	IsClinicOwner bool   `json:"isClinicOwner,omitempty"`
	ClaimsSynced  bool   `json:"claimsSynced"`
}
