package directory

import (
	"context"
	"net/url"
	"testing"

	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/app/services/core/gate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestSynchronizer() (*sessionSynchronizer, *MockIdentityProvider, *MockOrganizationRepository) {
	identityProvider := new(MockIdentityProvider)
	orgRepo := new(MockOrganizationRepository)
	sync := &sessionSynchronizer{
		IdentityProvider:       identityProvider,
		OrganizationRepository: orgRepo,
		Log:                    zap.NewNop(),
	}
	return sync, identityProvider, orgRepo
}

func doctorProfile(clinicID string) *models.EnrichedProfile {
	return &models.EnrichedProfile{
		Profile: models.Profile{
			ID:       "profile-1",
			Role:     "doctor",
			Active:   true,
			ClinicID: strPtr(clinicID),
		},
	}
}

func TestSync_NoDriftNoWrites(t *testing.T) {
	sync, identityProvider, orgRepo := newTestSynchronizer()

	session := &models.Session{
		SessionID: "sess-1",
		UserID:    "profile-1",
		Claims:    models.SessionClaims{Role: "doctor", ClinicID: "org-1", ClinicSlug: "downtown-ortho"},
		ExpiresAt: sessionExpiry(),
	}

	synced, err := sync.Sync(context.Background(), session, doctorProfile("org-1"))
	require.NoError(t, err)
	assert.False(t, synced)
	identityProvider.AssertNotCalled(t, "UpdateClaims")
	identityProvider.AssertNotCalled(t, "RefreshSessionClaims")
	orgRepo.AssertNotCalled(t, "FindByID")
}

func TestSync_MissingSlugResolvedAndReissued(t *testing.T) {
	sync, identityProvider, orgRepo := newTestSynchronizer()

	session := &models.Session{
		SessionID: "sess-1",
		UserID:    "profile-1",
		Claims:    models.SessionClaims{Role: "doctor", ClinicID: "org-1"},
		ExpiresAt: sessionExpiry(),
	}
	orgRepo.On("FindByID", mock.Anything, "org-1").Return(&models.Organization{
		ID:   "org-1",
		Slug: "downtown-ortho",
		Name: "Downtown Ortho",
	}, nil)

	expected := models.SessionClaims{Role: "doctor", ClinicID: "org-1", ClinicSlug: "downtown-ortho"}
	identityProvider.On("UpdateClaims", mock.Anything, "profile-1", expected).Return(nil)
	identityProvider.On("RefreshSessionClaims", mock.Anything, "sess-1", expected).Return(nil)

	synced, err := sync.Sync(context.Background(), session, doctorProfile("org-1"))
	require.NoError(t, err)
	assert.True(t, synced)
	assert.Equal(t, expected, session.Claims)
	identityProvider.AssertExpectations(t)

	// The gate, still claims-only, now resolves the tenant login path.
	g, err := gate.NewGate()
	require.NoError(t, err)
	decision := g.Evaluate("/superadmin/dashboard", url.Values{}, &session.Claims)
	assert.False(t, decision.Allow)
	assert.Equal(t, "/clinic/downtown-ortho/login?error=unauthorized", decision.Redirect)
}

func TestSync_RoleDriftKeepsKnownSlug(t *testing.T) {
	sync, identityProvider, orgRepo := newTestSynchronizer()

	session := &models.Session{
		SessionID: "sess-1",
		UserID:    "profile-1",
		Claims:    models.SessionClaims{Role: "assistant", ClinicID: "org-1", ClinicSlug: "downtown-ortho"},
		ExpiresAt: sessionExpiry(),
	}

	expected := models.SessionClaims{Role: "doctor", ClinicID: "org-1", ClinicSlug: "downtown-ortho"}
	identityProvider.On("UpdateClaims", mock.Anything, "profile-1", expected).Return(nil)
	identityProvider.On("RefreshSessionClaims", mock.Anything, "sess-1", expected).Return(nil)

	synced, err := sync.Sync(context.Background(), session, doctorProfile("org-1"))
	require.NoError(t, err)
	assert.True(t, synced)
	orgRepo.AssertNotCalled(t, "FindByID")
}

func TestSync_ClinicChangeResolvesNewSlug(t *testing.T) {
	sync, identityProvider, orgRepo := newTestSynchronizer()

	session := &models.Session{
		SessionID: "sess-1",
		UserID:    "profile-1",
		Claims:    models.SessionClaims{Role: "doctor", ClinicID: "org-1", ClinicSlug: "downtown-ortho"},
		ExpiresAt: sessionExpiry(),
	}
	orgRepo.On("FindByID", mock.Anything, "org-2").Return(&models.Organization{
		ID:   "org-2",
		Slug: "uptown-derm",
	}, nil)

	expected := models.SessionClaims{Role: "doctor", ClinicID: "org-2", ClinicSlug: "uptown-derm"}
	identityProvider.On("UpdateClaims", mock.Anything, "profile-1", expected).Return(nil)
	identityProvider.On("RefreshSessionClaims", mock.Anything, "sess-1", expected).Return(nil)

	synced, err := sync.Sync(context.Background(), session, doctorProfile("org-2"))
	require.NoError(t, err)
	assert.True(t, synced)
	identityProvider.AssertExpectations(t)
}

func TestSync_ClinicRemovedClearsClaims(t *testing.T) {
	sync, identityProvider, orgRepo := newTestSynchronizer()

	session := &models.Session{
		SessionID: "sess-1",
		UserID:    "profile-1",
		Claims:    models.SessionClaims{Role: "doctor", ClinicID: "org-1", ClinicSlug: "downtown-ortho"},
		ExpiresAt: sessionExpiry(),
	}
	profile := &models.EnrichedProfile{
		Profile: models.Profile{ID: "profile-1", Role: "doctor"},
	}

	expected := models.SessionClaims{Role: "doctor"}
	identityProvider.On("UpdateClaims", mock.Anything, "profile-1", expected).Return(nil)
	identityProvider.On("RefreshSessionClaims", mock.Anything, "sess-1", expected).Return(nil)

	synced, err := sync.Sync(context.Background(), session, profile)
	require.NoError(t, err)
	assert.True(t, synced)
	orgRepo.AssertNotCalled(t, "FindByID")
}
