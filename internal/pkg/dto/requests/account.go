package requests

type CreateUser struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,password"`
	FullName string  `json:"fullName" validate:"required,min=2,max=120"`
	Role     string  `json:"role" validate:"required,oneof=superadmin doctor assistant"`
	ClinicID *string `json:"clinicId,omitempty"`
}

type UpdateUser struct {
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=superadmin doctor assistant"`
	ClinicID *string `json:"clinicId,omitempty"`
	Active   *bool   `json:"active,omitempty"`
	FullName *string `json:"fullName,omitempty" validate:"omitempty,min=2,max=120"`
}

type AdminResetPassword struct {
	NewPassword string `json:"newPassword" validate:"required,password"`
}
