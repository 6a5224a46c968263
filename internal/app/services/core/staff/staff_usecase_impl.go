package staff

import (
	"context"
	"sync"

	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/dto/responses"
	"clinicdesk-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// staffUsecase lets a clinic owner provision doctors and assistants for
// their own clinic. Identity user, profile and sub-identity are three
// writes with no transaction across them; RepairSubIdentity heals the
// known partial-failure case on the staff member's next login.
type staffUsecase struct {
	IdentityProvider       contracts.IdentityProvider
	ProfileRepository      contracts.ProfileRepository
	DoctorRepository       contracts.DoctorRepository
	AssistantRepository    contracts.AssistantRepository
	OrganizationRepository contracts.OrganizationRepository
	Log                    *zap.Logger
}

var (
	staffUsecaseInstance contracts.StaffUsecase
	onceStaffUsecase     sync.Once
)

func NewStaffUsecase(
	identityProvider contracts.IdentityProvider,
	profileRepository contracts.ProfileRepository,
	doctorRepository contracts.DoctorRepository,
	assistantRepository contracts.AssistantRepository,
	organizationRepository contracts.OrganizationRepository,
	logger *zap.Logger,
) contracts.StaffUsecase {
	onceStaffUsecase.Do(func() {
		staffUsecaseInstance = &staffUsecase{
			IdentityProvider:       identityProvider,
			ProfileRepository:      profileRepository,
			DoctorRepository:       doctorRepository,
			AssistantRepository:    assistantRepository,
			OrganizationRepository: organizationRepository,
			Log:                    logger,
		}
	})
	return staffUsecaseInstance
}

func (uc *staffUsecase) CreateDoctor(ctx context.Context, owner *models.EnrichedProfile, request *requests.CreateDoctor) (*responses.StaffMember, error) {
	clinicID := *owner.ClinicID

	profile, err := uc.provisionStaffProfile(ctx, clinicID, constvars.RoleDoctor, request.Email, request.Password, request.FullName)
	if err != nil {
		return nil, err
	}

	doctor := &models.Doctor{
		ID:                 uuid.NewString(),
		ProfileID:          profile.ID,
		ClinicID:           clinicID,
		Specialization:     request.Specialization,
		RegistrationNumber: request.RegistrationNumber,
	}
	if err := uc.DoctorRepository.Create(ctx, doctor); err != nil {
		uc.logPartialProvisioning(ctx, profile.ID, err)
		return nil, err
	}

	return &responses.StaffMember{
		ProfileID:      profile.ID,
		Email:          profile.Email,
		FullName:       profile.FullName,
		Role:           constvars.RoleDoctor,
		Active:         true,
		DoctorID:       doctor.ID,
		Specialization: doctor.Specialization,
	}, nil
}

func (uc *staffUsecase) CreateAssistant(ctx context.Context, owner *models.EnrichedProfile, request *requests.CreateAssistant) (*responses.StaffMember, error) {
	clinicID := *owner.ClinicID

	assignedDoctor, err := uc.DoctorRepository.FindByID(ctx, request.AssignedDoctorID)
	if err != nil {
		return nil, err
	}
	if assignedDoctor == nil || assignedDoctor.ClinicID != clinicID {
		return nil, exceptions.ErrAssistantClinicMismatch(nil)
	}

	profile, err := uc.provisionStaffProfile(ctx, clinicID, constvars.RoleAssistant, request.Email, request.Password, request.FullName)
	if err != nil {
		return nil, err
	}

	assistant := &models.Assistant{
		ID:               uuid.NewString(),
		ProfileID:        profile.ID,
		ClinicID:         clinicID,
		AssignedDoctorID: assignedDoctor.ID,
	}
	if err := uc.AssistantRepository.Create(ctx, assistant); err != nil {
		uc.logPartialProvisioning(ctx, profile.ID, err)
		return nil, err
	}

	return &responses.StaffMember{
		ProfileID:        profile.ID,
		Email:            profile.Email,
		FullName:         profile.FullName,
		Role:             constvars.RoleAssistant,
		Active:           true,
		AssistantID:      assistant.ID,
		AssignedDoctorID: assistant.AssignedDoctorID,
	}, nil
}

func (uc *staffUsecase) ListStaff(ctx context.Context, clinicID string) ([]responses.StaffMember, error) {
	doctors, err := uc.DoctorRepository.FindByClinicID(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	assistants, err := uc.AssistantRepository.FindByClinicID(ctx, clinicID)
	if err != nil {
		return nil, err
	}

	members := make([]responses.StaffMember, 0, len(doctors)+len(assistants))
	for _, doctor := range doctors {
		member := responses.StaffMember{
			ProfileID:      doctor.ProfileID,
			Role:           constvars.RoleDoctor,
			DoctorID:       doctor.ID,
			Specialization: doctor.Specialization,
		}
		if err := uc.fillProfileFields(ctx, &member); err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	for _, assistant := range assistants {
		member := responses.StaffMember{
			ProfileID:        assistant.ProfileID,
			Role:             constvars.RoleAssistant,
			AssistantID:      assistant.ID,
			AssignedDoctorID: assistant.AssignedDoctorID,
		}
		if err := uc.fillProfileFields(ctx, &member); err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, nil
}

// RepairSubIdentity heals a doctor profile left without its doctor row
// by a partial provisioning failure. Assistants cannot be healed
// automatically because the doctor assignment is unknown; those are
// logged for an administrator.
func (uc *staffUsecase) RepairSubIdentity(ctx context.Context, profile *models.Profile) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if profile.ClinicID == nil || *profile.ClinicID == "" {
		return nil
	}

	switch profile.Role {
	case constvars.RoleDoctor:
		doctor, err := uc.DoctorRepository.FindByProfileID(ctx, profile.ID)
		if err != nil {
			return err
		}
		if doctor != nil {
			return nil
		}
		uc.Log.Warn("staffUsecase.RepairSubIdentity healing orphaned doctor profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPrincipalKey, profile.ID),
		)
		return uc.DoctorRepository.Create(ctx, &models.Doctor{
			ID:        uuid.NewString(),
			ProfileID: profile.ID,
			ClinicID:  *profile.ClinicID,
		})
	case constvars.RoleAssistant:
		assistant, err := uc.AssistantRepository.FindByProfileID(ctx, profile.ID)
		if err != nil {
			return err
		}
		if assistant == nil {
			uc.Log.Warn("staffUsecase.RepairSubIdentity assistant profile lacks assignment, needs admin",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingPrincipalKey, profile.ID),
			)
		}
	}
	return nil
}

func (uc *staffUsecase) provisionStaffProfile(ctx context.Context, clinicID, role, email, password, fullName string) (*models.Profile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	org, err := uc.OrganizationRepository.FindByID(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, exceptions.ErrClinicNotFound(nil)
	}

	claims := models.SessionClaims{Role: role, ClinicID: org.ID, ClinicSlug: org.Slug}
	userID, err := uc.IdentityProvider.CreateUser(ctx, email, password, claims)
	if err != nil {
		return nil, err
	}

	profile := &models.Profile{
		ID:       userID,
		Email:    email,
		Role:     role,
		Active:   true,
		ClinicID: &org.ID,
		FullName: fullName,
	}
	if err := uc.ProfileRepository.Create(ctx, profile); err != nil {
		uc.Log.Error("staffUsecase profile insert failed after identity create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPrincipalKey, userID),
			zap.Error(err),
		)
		return nil, err
	}
	return profile, nil
}

func (uc *staffUsecase) fillProfileFields(ctx context.Context, member *responses.StaffMember) error {
	profile, err := uc.ProfileRepository.FindByID(ctx, member.ProfileID)
	if err != nil {
		return err
	}
	if profile != nil {
		member.Email = profile.Email
		member.FullName = profile.FullName
		member.Active = profile.Active
	}
	return nil
}

func (uc *staffUsecase) logPartialProvisioning(ctx context.Context, profileID string, err error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Error("staffUsecase sub-identity insert failed, profile left orphaned until next login",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrincipalKey, profileID),
		zap.Error(err),
	)
}
