package constvars

const (
	LoginSuccessMessage                = "successfully logged in"
	LogoutSuccessMessage               = "successfully logged out"
	RefreshSessionSuccessMessage       = "session refreshed"
	ForgotPasswordSuccessMessage       = "if the email exists, a reset link has been sent"
	ResetPasswordSuccessMessage        = "password has been reset"
	UpdatePasswordSuccessMessage       = "password updated"
	GetProfileSuccessMessage           = "successfully fetched profile"
	CreateOrganizationSuccessMessage   = "organization created"
	UpdateOrganizationSuccessMessage   = "organization updated"
	GetOrganizationSuccessMessage      = "successfully fetched organizations"
	CreateUserSuccessMessage           = "user created"
	UpdateUserSuccessMessage           = "user updated"
	GetUsersSuccessMessage             = "successfully fetched users"
	CreateStaffSuccessMessage          = "staff member created"
	GetStaffSuccessMessage             = "successfully fetched staff"
	BookAppointmentSuccessMessage      = "appointment requested"
	GetAppointmentsSuccessMessage      = "successfully fetched appointments"
	UpdateAppointmentSuccessMessage    = "appointment updated"
	CreatePrescriptionSuccessMessage   = "prescription created"
	GetPrescriptionsSuccessMessage     = "successfully fetched prescriptions"
	CreatePatientSuccessMessage        = "patient created"
	GetPatientsSuccessMessage          = "successfully fetched patients"
	UploadProfilePictureSuccessMessage = "profile picture uploaded"
	GetBookingSlotsSuccessMessage      = "successfully fetched booking slots"
	GetDashboardSuccessMessage         = "successfully fetched dashboard"
)
