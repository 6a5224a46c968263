package directory

import (
	"context"
	"testing"

	"clinicdesk-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestDirectory() (*directoryUsecase, *MockProfileRepository, *MockDoctorRepository, *MockAssistantRepository, *MockOrganizationRepository) {
	profileRepo := new(MockProfileRepository)
	doctorRepo := new(MockDoctorRepository)
	assistantRepo := new(MockAssistantRepository)
	orgRepo := new(MockOrganizationRepository)
	uc := &directoryUsecase{
		ProfileRepository:      profileRepo,
		DoctorRepository:       doctorRepo,
		AssistantRepository:    assistantRepo,
		OrganizationRepository: orgRepo,
		Log:                    zap.NewNop(),
	}
	return uc, profileRepo, doctorRepo, assistantRepo, orgRepo
}

func TestResolveProfile_NoProfileRow(t *testing.T) {
	uc, profileRepo, _, _, _ := newTestDirectory()
	profileRepo.On("FindByID", mock.Anything, "principal-1").Return(nil, nil)

	profile, err := uc.ResolveProfile(context.Background(), "principal-1")
	assert.NoError(t, err)
	assert.Nil(t, profile)
}

func TestResolveProfile_DoctorOwnerFullEnrichment(t *testing.T) {
	uc, profileRepo, doctorRepo, _, orgRepo := newTestDirectory()

	profileRepo.On("FindByID", mock.Anything, "profile-1").Return(&models.Profile{
		ID:       "profile-1",
		Email:    "doc@ortho.example",
		Role:     "doctor",
		Active:   true,
		ClinicID: strPtr("org-1"),
		FullName: "Dr. Example",
	}, nil)
	doctorRepo.On("FindByProfileID", mock.Anything, "profile-1").Return(&models.Doctor{
		ID:        "doc-9",
		ProfileID: "profile-1",
		ClinicID:  "org-1",
	}, nil)
	orgRepo.On("IsOwnedBy", mock.Anything, "org-1", "profile-1").Return(true, nil)
	orgRepo.On("FindByID", mock.Anything, "org-1").Return(&models.Organization{
		ID:   "org-1",
		Slug: "ortho",
		Name: "Ortho Clinic",
	}, nil)

	profile, err := uc.ResolveProfile(context.Background(), "profile-1")
	require.NoError(t, err)
	require.NotNil(t, profile)
	require.NotNil(t, profile.Doctor)
	assert.Equal(t, "doc-9", profile.Doctor.DoctorID)
	assert.True(t, profile.Doctor.IsClinicOwner)
	assert.Equal(t, "Ortho Clinic", profile.ClinicName)
	assert.Nil(t, profile.Assistant)
}

func TestResolveProfile_DoctorWithoutClinicSkipsOwnershipLookup(t *testing.T) {
	uc, profileRepo, doctorRepo, _, orgRepo := newTestDirectory()

	profileRepo.On("FindByID", mock.Anything, "profile-2").Return(&models.Profile{
		ID:   "profile-2",
		Role: "doctor",
	}, nil)
	doctorRepo.On("FindByProfileID", mock.Anything, "profile-2").Return(nil, nil)

	profile, err := uc.ResolveProfile(context.Background(), "profile-2")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Nil(t, profile.Doctor)
	assert.Empty(t, profile.ClinicName)
	orgRepo.AssertNotCalled(t, "IsOwnedBy")
	orgRepo.AssertNotCalled(t, "FindByID")
}

func TestResolveProfile_AssistantEnrichment(t *testing.T) {
	uc, profileRepo, _, assistantRepo, orgRepo := newTestDirectory()

	profileRepo.On("FindByID", mock.Anything, "profile-3").Return(&models.Profile{
		ID:       "profile-3",
		Role:     "assistant",
		ClinicID: strPtr("org-1"),
	}, nil)
	assistantRepo.On("FindByProfileID", mock.Anything, "profile-3").Return(&models.Assistant{
		ID:               "asst-4",
		ProfileID:        "profile-3",
		ClinicID:         "org-1",
		AssignedDoctorID: "doc-9",
	}, nil)
	orgRepo.On("FindByID", mock.Anything, "org-1").Return(&models.Organization{
		ID:   "org-1",
		Name: "Ortho Clinic",
	}, nil)

	profile, err := uc.ResolveProfile(context.Background(), "profile-3")
	require.NoError(t, err)
	require.NotNil(t, profile.Assistant)
	assert.Equal(t, "asst-4", profile.Assistant.AssistantID)
	assert.Equal(t, "doc-9", profile.Assistant.AssignedDoctorID)
	assert.Equal(t, "Ortho Clinic", profile.ClinicName)
	assert.Nil(t, profile.Doctor)
}

func TestResolveProfile_SuperadminSkipsEnrichment(t *testing.T) {
	uc, profileRepo, doctorRepo, assistantRepo, orgRepo := newTestDirectory()

	profileRepo.On("FindByID", mock.Anything, "profile-5").Return(&models.Profile{
		ID:     "profile-5",
		Role:   "superadmin",
		Active: true,
	}, nil)

	profile, err := uc.ResolveProfile(context.Background(), "profile-5")
	require.NoError(t, err)
	assert.Nil(t, profile.Doctor)
	assert.Nil(t, profile.Assistant)
	assert.False(t, profile.IsClinicOwner())
	doctorRepo.AssertNotCalled(t, "FindByProfileID")
	assistantRepo.AssertNotCalled(t, "FindByProfileID")
	orgRepo.AssertNotCalled(t, "FindByID")
}

func TestResolveProfile_MemoizedWithinRequest(t *testing.T) {
	uc, profileRepo, _, _, _ := newTestDirectory()

	profileRepo.On("FindByID", mock.Anything, "profile-5").Return(&models.Profile{
		ID:   "profile-5",
		Role: "superadmin",
	}, nil)

	ctx := WithRequestCache(context.Background())

	first, err := uc.ResolveProfile(ctx, "profile-5")
	require.NoError(t, err)
	second, err := uc.ResolveProfile(ctx, "profile-5")
	require.NoError(t, err)

	assert.Same(t, first, second)
	profileRepo.AssertNumberOfCalls(t, "FindByID", 1)
}

func TestResolveProfile_MemoizationDoesNotCrossRequests(t *testing.T) {
	uc, profileRepo, _, _, _ := newTestDirectory()

	profileRepo.On("FindByID", mock.Anything, "profile-5").Return(&models.Profile{
		ID:   "profile-5",
		Role: "superadmin",
	}, nil)

	_, err := uc.ResolveProfile(WithRequestCache(context.Background()), "profile-5")
	require.NoError(t, err)
	_, err = uc.ResolveProfile(WithRequestCache(context.Background()), "profile-5")
	require.NoError(t, err)

	profileRepo.AssertNumberOfCalls(t, "FindByID", 2)
}

func TestResolveProfile_MissingProfileMemoized(t *testing.T) {
	uc, profileRepo, _, _, _ := newTestDirectory()

	profileRepo.On("FindByID", mock.Anything, "ghost").Return(nil, nil)

	ctx := WithRequestCache(context.Background())
	profile, err := uc.ResolveProfile(ctx, "ghost")
	require.NoError(t, err)
	assert.Nil(t, profile)

	profile, err = uc.ResolveProfile(ctx, "ghost")
	require.NoError(t, err)
	assert.Nil(t, profile)
	profileRepo.AssertNumberOfCalls(t, "FindByID", 1)
}
