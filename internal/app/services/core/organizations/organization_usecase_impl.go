package organizations

import (
	"context"
	"fmt"
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

type organizationUsecase struct {
	OrganizationRepository contracts.OrganizationRepository
	DoctorRepository       contracts.DoctorRepository
	ProfileRepository      contracts.ProfileRepository
	Log                    *zap.Logger
}

var (
	organizationUsecaseInstance contracts.OrganizationUsecase
	onceOrganizationUsecase     sync.Once
)

func NewOrganizationUsecase(
	organizationRepository contracts.OrganizationRepository,
	doctorRepository contracts.DoctorRepository,
	profileRepository contracts.ProfileRepository,
	logger *zap.Logger,
) contracts.OrganizationUsecase {
	onceOrganizationUsecase.Do(func() {
		organizationUsecaseInstance = &organizationUsecase{
			OrganizationRepository: organizationRepository,
			DoctorRepository:       doctorRepository,
			ProfileRepository:      profileRepository,
			Log:                    logger,
		}
	})
	return organizationUsecaseInstance
}

func (uc *organizationUsecase) Create(ctx context.Context, request *requests.CreateOrganization) (*responses.Organization, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	org := &models.Organization{
		ID:     uuid.NewString(),
		Slug:   request.Slug,
		Name:   request.Name,
		Active: true,
	}
	if err := uc.OrganizationRepository.Create(ctx, org); err != nil {
		uc.Log.Error("organizationUsecase.Create error creating organization",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("slug", request.Slug),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("organizationUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicKey, org.ID),
	)
	return buildOrganizationResponse(org), nil
}

func (uc *organizationUsecase) Update(ctx context.Context, orgID string, request *requests.UpdateOrganization) (*responses.Organization, error) {
	org, err := uc.OrganizationRepository.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, exceptions.ErrClinicNotFound(nil)
	}

	if request.Name != nil {
		org.Name = *request.Name
	}
	if request.Active != nil {
		org.Active = *request.Active
	}
	if err := uc.OrganizationRepository.Update(ctx, org); err != nil {
		return nil, err
	}
	return buildOrganizationResponse(org), nil
}

// SetOwner assigns the owning doctor. The owner reference must resolve
// to a doctor whose clinic id equals this organization.
func (uc *organizationUsecase) SetOwner(ctx context.Context, orgID string, request *requests.SetOrganizationOwner) (*responses.Organization, error) {
	org, err := uc.OrganizationRepository.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, exceptions.ErrClinicNotFound(nil)
	}

	doctor, err := uc.DoctorRepository.FindByProfileID(ctx, request.OwnerProfileID)
	if err != nil {
		return nil, err
	}
	if doctor == nil || doctor.ClinicID != org.ID {
		return nil, exceptions.ErrOwnerMustBeDoctor(nil)
	}

	org.OwnerProfileID = &request.OwnerProfileID
	if err := uc.OrganizationRepository.Update(ctx, org); err != nil {
		return nil, err
	}
	return buildOrganizationResponse(org), nil
}

func (uc *organizationUsecase) FindAll(ctx context.Context, pagination *requests.Pagination) ([]responses.Organization, int, error) {
	orgs, total, err := uc.OrganizationRepository.FindAll(ctx, pagination.Page, pagination.PageSize)
	if err != nil {
		return nil, 0, err
	}

	response := make([]responses.Organization, len(orgs))
	for i := range orgs {
		response[i] = *buildOrganizationResponse(&orgs[i])
	}
	return response, total, nil
}

func (uc *organizationUsecase) FindByID(ctx context.Context, orgID string) (*responses.Organization, error) {
	org, err := uc.OrganizationRepository.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, exceptions.ErrClinicNotFound(nil)
	}
	return buildOrganizationResponse(org), nil
}

// PublicPage is the anonymous clinic landing view used by the booking
// flow: clinic display data plus its doctors.
func (uc *organizationUsecase) PublicPage(ctx context.Context, slug string) (*responses.ClinicPublicPage, error) {
	org, err := uc.OrganizationRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if org == nil || !org.Active {
		return nil, exceptions.ErrClinicNotFound(nil)
	}

	doctors, err := uc.DoctorRepository.FindByClinicID(ctx, org.ID)
	if err != nil {
		return nil, err
	}

	page := &responses.ClinicPublicPage{
		Slug:    org.Slug,
		Name:    org.Name,
		Doctors: make([]responses.ClinicDoctor, 0, len(doctors)),
	}
	for _, doctor := range doctors {
		entry := responses.ClinicDoctor{
			DoctorID:       doctor.ID,
			Specialization: doctor.Specialization,
		}
		profile, err := uc.ProfileRepository.FindByID(ctx, doctor.ProfileID)
		if err != nil {
			return nil, err
		}
		if profile != nil {
			if !profile.Active {
				continue
			}
			entry.FullName = profile.FullName
		}
		page.Doctors = append(page.Doctors, entry)
	}
	return page, nil
}

func buildOrganizationResponse(org *models.Organization) *responses.Organization {
	response := &responses.Organization{
		ID:        org.ID,
		Slug:      org.Slug,
		Name:      org.Name,
		Active:    org.Active,
		LoginPath: fmt.Sprintf(constvars.PathClinicLoginFormat, org.Slug),
	}
	if org.OwnerProfileID != nil {
		response.OwnerProfileID = *org.OwnerProfileID
	}
	return response
}
