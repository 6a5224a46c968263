package requests

type CreatePatient struct {
	FullName    string `json:"fullName" validate:"required,min=2,max=120"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"omitempty,min=7,max=20"`
	DateOfBirth string `json:"dateOfBirth" validate:"omitempty"`
	PrincipalID string `json:"principalId" validate:"omitempty"`
}
