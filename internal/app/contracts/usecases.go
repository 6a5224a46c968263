package contracts

import (
	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/dto/responses"
	"context"
	"io"
)

type AuthUsecase interface {
	// Login authenticates through the generic login page. Tenant-scoped
	// staff are rejected here and told to use their clinic login path.
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	// LoginToClinic authenticates through /clinic/{slug}/login and
	// verifies the principal belongs to that clinic.
	LoginToClinic(ctx context.Context, slug string, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, sessionID string) error
	// Refresh re-signs a token for a session that is still alive. The
	// session's own expiry caps the total lifetime.
	Refresh(ctx context.Context, session *models.Session) (*responses.Login, error)
	Me(ctx context.Context, session *models.Session) (*responses.Me, error)
	ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error
	ResetPassword(ctx context.Context, request *requests.ResetPassword) error
	UpdatePassword(ctx context.Context, session *models.Session, request *requests.UpdatePassword) error
	UploadProfilePicture(ctx context.Context, session *models.Session, fileName string, reader io.Reader, size int64, contentType string) (string, error)
}

// DirectoryGuard layers authorization assertions over profile
// resolution. A non-nil redirect diverts the caller; profile and
// redirect are never both set.
type DirectoryGuard interface {
	RequireRole(ctx context.Context, principalID string, allowedRoles ...string) (*models.EnrichedProfile, *models.Redirect, error)
	RequireDoctorWithClinic(ctx context.Context, principalID string) (*models.EnrichedProfile, *models.Redirect, error)
	RequireClinicOwner(ctx context.Context, principalID string) (*models.EnrichedProfile, *models.Redirect, error)
	// RequireClinicID panics for a tenant-less superadmin: superadmins
	// are tenant-less by definition, so reaching here is a routing bug.
	RequireClinicID(ctx context.Context, principalID string) (*models.EnrichedProfile, *models.Redirect, error)
}

// SessionSynchronizer re-issues session-cached claims when they drift
// from the authoritative directory record. Returns whether a sync was
// performed.
type SessionSynchronizer interface {
	Sync(ctx context.Context, session *models.Session, profile *models.EnrichedProfile) (bool, error)
}

type OrganizationUsecase interface {
	Create(ctx context.Context, request *requests.CreateOrganization) (*responses.Organization, error)
	Update(ctx context.Context, orgID string, request *requests.UpdateOrganization) (*responses.Organization, error)
	SetOwner(ctx context.Context, orgID string, request *requests.SetOrganizationOwner) (*responses.Organization, error)
	FindAll(ctx context.Context, pagination *requests.Pagination) ([]responses.Organization, int, error)
	FindByID(ctx context.Context, orgID string) (*responses.Organization, error)
	PublicPage(ctx context.Context, slug string) (*responses.ClinicPublicPage, error)
}

type AccountUsecase interface {
	CreateUser(ctx context.Context, request *requests.CreateUser) (*responses.User, error)
	UpdateUser(ctx context.Context, profileID string, request *requests.UpdateUser) (*responses.User, error)
	FindAllUsers(ctx context.Context, pagination *requests.Pagination) ([]responses.User, int, error)
	FindUserByID(ctx context.Context, profileID string) (*responses.User, error)
	ResetUserPassword(ctx context.Context, profileID string, request *requests.AdminResetPassword) error
	DeactivateUser(ctx context.Context, profileID string) error
}

type StaffUsecase interface {
	CreateDoctor(ctx context.Context, owner *models.EnrichedProfile, request *requests.CreateDoctor) (*responses.StaffMember, error)
	CreateAssistant(ctx context.Context, owner *models.EnrichedProfile, request *requests.CreateAssistant) (*responses.StaffMember, error)
	ListStaff(ctx context.Context, clinicID string) ([]responses.StaffMember, error)
	// RepairSubIdentity heals a profile whose role-specific record is
	// missing after a partial provisioning failure. Called at login.
	RepairSubIdentity(ctx context.Context, profile *models.Profile) error
}

type PatientUsecase interface {
	Create(ctx context.Context, clinicID string, request *requests.CreatePatient) (*responses.Patient, error)
	FindByClinic(ctx context.Context, clinicID string, pagination *requests.Pagination) ([]responses.Patient, int, error)
	FindByID(ctx context.Context, clinicID, patientID string) (*responses.Patient, error)
}

type AppointmentUsecase interface {
	Book(ctx context.Context, slug string, request *requests.BookAppointment) (*responses.Appointment, error)
	Slots(ctx context.Context, slug, day string) (*responses.BookingSlots, error)
	FindByClinic(ctx context.Context, clinicID string, pagination *requests.Pagination) ([]responses.Appointment, int, error)
	FindByDoctor(ctx context.Context, doctorID string, pagination *requests.Pagination) ([]responses.Appointment, int, error)
	UpdateStatus(ctx context.Context, clinicID, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error)
}

type PrescriptionUsecase interface {
	Create(ctx context.Context, doctor *models.EnrichedProfile, request *requests.CreatePrescription) (*responses.Prescription, error)
	FindByClinic(ctx context.Context, clinicID string, pagination *requests.Pagination) ([]responses.Prescription, int, error)
	FindByAppointment(ctx context.Context, clinicID, appointmentID string) ([]responses.Prescription, error)
}
