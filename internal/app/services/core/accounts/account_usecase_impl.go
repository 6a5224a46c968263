package accounts

import (
	"context"
	"sync"

	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/dto/responses"
	"clinicdesk-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

// accountUsecase is the superadmin console: it provisions and mutates
// principals across all tenants. Identity user and profile are created
// as one logical unit without a cross-store transaction; a failure
// between the two writes leaves an orphan that the login-time repair
// and the synchronizer compensate for.
type accountUsecase struct {
	IdentityProvider       contracts.IdentityProvider
	ProfileRepository      contracts.ProfileRepository
	OrganizationRepository contracts.OrganizationRepository
	Log                    *zap.Logger
}

var (
	accountUsecaseInstance contracts.AccountUsecase
	onceAccountUsecase     sync.Once
)

func NewAccountUsecase(
	identityProvider contracts.IdentityProvider,
	profileRepository contracts.ProfileRepository,
	organizationRepository contracts.OrganizationRepository,
	logger *zap.Logger,
) contracts.AccountUsecase {
	onceAccountUsecase.Do(func() {
		accountUsecaseInstance = &accountUsecase{
			IdentityProvider:       identityProvider,
			ProfileRepository:      profileRepository,
			OrganizationRepository: organizationRepository,
			Log:                    logger,
		}
	})
	return accountUsecaseInstance
}

func (uc *accountUsecase) CreateUser(ctx context.Context, request *requests.CreateUser) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	claims := models.SessionClaims{Role: request.Role}
	if request.ClinicID != nil && *request.ClinicID != "" {
		org, err := uc.OrganizationRepository.FindByID(ctx, *request.ClinicID)
		if err != nil {
			return nil, err
		}
		if org == nil {
			return nil, exceptions.ErrClinicNotFound(nil)
		}
		claims.ClinicID = org.ID
		claims.ClinicSlug = org.Slug
	}

	userID, err := uc.IdentityProvider.CreateUser(ctx, request.Email, request.Password, claims)
	if err != nil {
		return nil, err
	}

	profile := &models.Profile{
		ID:       userID,
		Email:    request.Email,
		Role:     request.Role,
		Active:   true,
		FullName: request.FullName,
	}
	if claims.ClinicID != "" {
		profile.ClinicID = &claims.ClinicID
	}
	if err := uc.ProfileRepository.Create(ctx, profile); err != nil {
		// The identity user already exists; the principal stays unusable
		// until an administrator re-provisions the profile row.
		uc.Log.Error("accountUsecase.CreateUser profile insert failed after identity create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPrincipalKey, userID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("accountUsecase.CreateUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrincipalKey, userID),
		zap.String(constvars.LoggingRoleKey, request.Role),
	)
	return buildUserResponse(profile), nil
}

func (uc *accountUsecase) UpdateUser(ctx context.Context, profileID string, request *requests.UpdateUser) (*responses.User, error) {
	profile, err := uc.ProfileRepository.FindByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrProfileNotFound(nil)
	}

	if request.Role != nil {
		profile.Role = *request.Role
	}
	if request.ClinicID != nil {
		if *request.ClinicID == "" {
			profile.ClinicID = nil
		} else {
			org, err := uc.OrganizationRepository.FindByID(ctx, *request.ClinicID)
			if err != nil {
				return nil, err
			}
			if org == nil {
				return nil, exceptions.ErrClinicNotFound(nil)
			}
			profile.ClinicID = &org.ID
		}
	}
	if request.Active != nil {
		profile.Active = *request.Active
	}
	if request.FullName != nil {
		profile.FullName = *request.FullName
	}

	// Cached session claims are not touched here; the synchronizer
	// re-issues them on the principal's next resolution.
	if err := uc.ProfileRepository.Update(ctx, profile); err != nil {
		return nil, err
	}
	return buildUserResponse(profile), nil
}

func (uc *accountUsecase) FindAllUsers(ctx context.Context, pagination *requests.Pagination) ([]responses.User, int, error) {
	profiles, total, err := uc.ProfileRepository.FindAll(ctx, pagination.Page, pagination.PageSize)
	if err != nil {
		return nil, 0, err
	}

	response := make([]responses.User, len(profiles))
	for i := range profiles {
		response[i] = *buildUserResponse(&profiles[i])
	}
	return response, total, nil
}

func (uc *accountUsecase) FindUserByID(ctx context.Context, profileID string) (*responses.User, error) {
	profile, err := uc.ProfileRepository.FindByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrProfileNotFound(nil)
	}
	return buildUserResponse(profile), nil
}

func (uc *accountUsecase) ResetUserPassword(ctx context.Context, profileID string, request *requests.AdminResetPassword) error {
	profile, err := uc.ProfileRepository.FindByID(ctx, profileID)
	if err != nil {
		return err
	}
	if profile == nil {
		return exceptions.ErrProfileNotFound(nil)
	}
	return uc.IdentityProvider.UpdatePassword(ctx, profile.ID, request.NewPassword)
}

// DeactivateUser flips the active flag; profiles are never physically
// deleted.
func (uc *accountUsecase) DeactivateUser(ctx context.Context, profileID string) error {
	profile, err := uc.ProfileRepository.FindByID(ctx, profileID)
	if err != nil {
		return err
	}
	if profile == nil {
		return exceptions.ErrProfileNotFound(nil)
	}
	profile.Active = false
	return uc.ProfileRepository.Update(ctx, profile)
}

func buildUserResponse(profile *models.Profile) *responses.User {
	response := &responses.User{
		ID:       profile.ID,
		Email:    profile.Email,
		FullName: profile.FullName,
		Role:     profile.Role,
		Active:   profile.Active,
	}
	if profile.ClinicID != nil {
		response.ClinicID = *profile.ClinicID
	}
	return response
}
