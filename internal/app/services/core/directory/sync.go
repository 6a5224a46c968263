package directory

import (
	"context"
	"sync"

	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// sessionSynchronizer closes the consistency gap the gate leaves open:
// the gate reads only session-cached claims, so after an administrator
// moves a principal between roles or clinics the cached claims lag until
// this re-issues them. It runs on login and on directory resolutions
// that detect drift, never on every request.
type sessionSynchronizer struct {
	IdentityProvider       contracts.IdentityProvider
	OrganizationRepository contracts.OrganizationRepository
	Log                    *zap.Logger
}

var (
	sessionSynchronizerInstance contracts.SessionSynchronizer
	onceSessionSynchronizer     sync.Once
)

func NewSessionSynchronizer(
	identityProvider contracts.IdentityProvider,
	organizationRepository contracts.OrganizationRepository,
	logger *zap.Logger,
) contracts.SessionSynchronizer {
	onceSessionSynchronizer.Do(func() {
		sessionSynchronizerInstance = &sessionSynchronizer{
			IdentityProvider:       identityProvider,
			OrganizationRepository: organizationRepository,
			Log:                    logger,
		}
	})
	return sessionSynchronizerInstance
}

// Sync compares cached claims against the authoritative profile and,
// when stale, writes fresh claims to the identity store and the live
// session. The slug lookup only happens when a sync is actually needed.
func (s *sessionSynchronizer) Sync(ctx context.Context, session *models.Session, profile *models.EnrichedProfile) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	clinicID := ""
	if profile.ClinicID != nil {
		clinicID = *profile.ClinicID
	}

	cached := session.Claims
	stale := cached.Role != profile.Role ||
		cached.ClinicID != clinicID ||
		(clinicID != "" && cached.ClinicSlug == "")
	if !stale {
		return false, nil
	}

	fresh := models.SessionClaims{
		Role:     profile.Role,
		ClinicID: clinicID,
	}
	if clinicID != "" {
		if clinicID == cached.ClinicID && cached.ClinicSlug != "" {
			fresh.ClinicSlug = cached.ClinicSlug
		} else {
			org, err := s.OrganizationRepository.FindByID(ctx, clinicID)
			if err != nil {
				s.Log.Error("sessionSynchronizer.Sync error resolving clinic slug",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingClinicKey, clinicID),
					zap.Error(err),
				)
				return false, err
			}
			if org != nil {
				fresh.ClinicSlug = org.Slug
			}
		}
	}

	if err := s.IdentityProvider.UpdateClaims(ctx, session.UserID, fresh); err != nil {
		return false, err
	}
	if err := s.IdentityProvider.RefreshSessionClaims(ctx, session.SessionID, fresh); err != nil {
		return false, err
	}
	session.Claims = fresh

	s.Log.Info("sessionSynchronizer.Sync re-issued session claims",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrincipalKey, session.UserID),
		zap.String(constvars.LoggingRoleKey, fresh.Role),
		zap.String(constvars.LoggingClinicKey, fresh.ClinicID),
	)
	return true, nil
}
