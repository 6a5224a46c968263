package requests

type CreateDoctor struct {
	Email              string `json:"email" validate:"required,email"`
	Password           string `json:"password" validate:"required,password"`
	FullName           string `json:"fullName" validate:"required,min=2,max=120"`
	Specialization     string `json:"specialization" validate:"required"`
	RegistrationNumber string `json:"registrationNumber" validate:"required"`
}

type CreateAssistant struct {
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,password"`
	FullName         string `json:"fullName" validate:"required,min=2,max=120"`
	AssignedDoctorID string `json:"assignedDoctorId" validate:"required"`
}
