package directory

import (
	"context"
	"sync"

	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/constvars"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type directoryUsecase struct {
	ProfileRepository      contracts.ProfileRepository
	DoctorRepository       contracts.DoctorRepository
	AssistantRepository    contracts.AssistantRepository
	OrganizationRepository contracts.OrganizationRepository
	Log                    *zap.Logger
}

var (
	directoryUsecaseInstance contracts.Directory
	onceDirectoryUsecase     sync.Once
)

func NewDirectoryUsecase(
	profileRepository contracts.ProfileRepository,
	doctorRepository contracts.DoctorRepository,
	assistantRepository contracts.AssistantRepository,
	organizationRepository contracts.OrganizationRepository,
	logger *zap.Logger,
) contracts.Directory {
	onceDirectoryUsecase.Do(func() {
		directoryUsecaseInstance = &directoryUsecase{
			ProfileRepository:      profileRepository,
			DoctorRepository:       doctorRepository,
			AssistantRepository:    assistantRepository,
			OrganizationRepository: organizationRepository,
			Log:                    logger,
		}
	})
	return directoryUsecaseInstance
}

// ResolveProfile returns the enriched directory view for a principal, or
// nil when no profile row exists. The result is memoized per request;
// identical calls within one request hit the cache, never the backend.
func (uc *directoryUsecase) ResolveProfile(ctx context.Context, principalID string) (*models.EnrichedProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	cache := cacheFromContext(ctx)
	if cache != nil {
		if profile, ok := cache.get(principalID); ok {
			return profile, nil
		}
	}

	profile, err := uc.ProfileRepository.FindByID(ctx, principalID)
	if err != nil {
		uc.Log.Error("directoryUsecase.ResolveProfile error fetching profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPrincipalKey, principalID),
			zap.Error(err),
		)
		return nil, err
	}
	if profile == nil {
		if cache != nil {
			cache.put(principalID, nil)
		}
		return nil, nil
	}

	enriched := &models.EnrichedProfile{Profile: *profile}
	switch profile.Role {
	case constvars.RoleDoctor:
		err = uc.enrichDoctor(ctx, enriched)
	case constvars.RoleAssistant:
		err = uc.enrichAssistant(ctx, enriched)
	}
	if err != nil {
		uc.Log.Error("directoryUsecase.ResolveProfile error enriching profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPrincipalKey, principalID),
			zap.String(constvars.LoggingRoleKey, profile.Role),
			zap.Error(err),
		)
		return nil, err
	}

	if cache != nil {
		cache.put(principalID, enriched)
	}
	return enriched, nil
}

// enrichDoctor resolves the doctor record, the ownership test and the
// clinic display name concurrently. A missing row yields an absent
// value; only transport failures propagate.
func (uc *directoryUsecase) enrichDoctor(ctx context.Context, enriched *models.EnrichedProfile) error {
	var (
		doctor  *models.Doctor
		isOwner bool
		org     *models.Organization
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		doctor, err = uc.DoctorRepository.FindByProfileID(groupCtx, enriched.ID)
		return err
	})
	if enriched.ClinicID != nil && *enriched.ClinicID != "" {
		clinicID := *enriched.ClinicID
		group.Go(func() error {
			var err error
			isOwner, err = uc.OrganizationRepository.IsOwnedBy(groupCtx, clinicID, enriched.ID)
			return err
		})
		group.Go(func() error {
			var err error
			org, err = uc.OrganizationRepository.FindByID(groupCtx, clinicID)
			return err
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	if doctor != nil {
		enriched.Doctor = &models.DoctorContext{
			DoctorID:      doctor.ID,
			IsClinicOwner: isOwner,
		}
	}
	if org != nil {
		enriched.ClinicName = org.Name
	}
	return nil
}

func (uc *directoryUsecase) enrichAssistant(ctx context.Context, enriched *models.EnrichedProfile) error {
	var (
		assistant *models.Assistant
		org       *models.Organization
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		assistant, err = uc.AssistantRepository.FindByProfileID(groupCtx, enriched.ID)
		return err
	})
	if enriched.ClinicID != nil && *enriched.ClinicID != "" {
		clinicID := *enriched.ClinicID
		group.Go(func() error {
			var err error
			org, err = uc.OrganizationRepository.FindByID(groupCtx, clinicID)
			return err
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	if assistant != nil {
		enriched.Assistant = &models.AssistantContext{
			AssistantID:      assistant.ID,
			AssignedDoctorID: assistant.AssignedDoctorID,
		}
	}
	if org != nil {
		enriched.ClinicName = org.Name
	}
	return nil
}
