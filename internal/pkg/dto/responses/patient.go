package responses

type Patient struct {
	ID          string `json:"id"`
	PrincipalID string `json:"principalId,omitempty"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
}
