package organizations

import (
	"context"
	"errors"
	"testing"

	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockOrganizationRepository struct {
	mock.Mock
}

func (m *MockOrganizationRepository) FindByID(ctx context.Context, id string) (*models.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) FindBySlug(ctx context.Context, slug string) (*models.Organization, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Organization, int, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]models.Organization), args.Int(1), args.Error(2)
}

func (m *MockOrganizationRepository) IsOwnedBy(ctx context.Context, orgID, profileID string) (bool, error) {
	args := m.Called(ctx, orgID, profileID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrganizationRepository) Create(ctx context.Context, org *models.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockOrganizationRepository) Update(ctx context.Context, org *models.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) FindByProfileID(ctx context.Context, profileID string) (*models.Doctor, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, id string) (*models.Doctor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindByClinicID(ctx context.Context, clinicID string) ([]models.Doctor, error) {
	args := m.Called(ctx, clinicID)
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	args := m.Called(ctx, doctor)
	return args.Error(0)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindByID(ctx context.Context, id string) (*models.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindByClinicID(ctx context.Context, clinicID string, page, pageSize int) ([]models.Profile, int, error) {
	args := m.Called(ctx, clinicID, page, pageSize)
	return args.Get(0).([]models.Profile), args.Int(1), args.Error(2)
}

func (m *MockProfileRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Profile, int, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]models.Profile), args.Int(1), args.Error(2)
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func newTestOrganizationUsecase() (*organizationUsecase, *MockOrganizationRepository, *MockDoctorRepository, *MockProfileRepository) {
	orgRepo := new(MockOrganizationRepository)
	doctorRepo := new(MockDoctorRepository)
	profileRepo := new(MockProfileRepository)
	uc := &organizationUsecase{
		OrganizationRepository: orgRepo,
		DoctorRepository:       doctorRepo,
		ProfileRepository:      profileRepo,
		Log:                    zap.NewNop(),
	}
	return uc, orgRepo, doctorRepo, profileRepo
}

func TestCreateOrganization(t *testing.T) {
	t.Run("builds tenant login path", func(t *testing.T) {
		uc, orgRepo, _, _ := newTestOrganizationUsecase()
		orgRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Organization")).Return(nil)

		response, err := uc.Create(context.Background(), &requests.CreateOrganization{Slug: "downtown-ortho", Name: "Downtown Ortho"})
		require.NoError(t, err)
		assert.Equal(t, "/clinic/downtown-ortho/login", response.LoginPath)
		assert.True(t, response.Active)
		assert.NotEmpty(t, response.ID)
	})

	t.Run("slug collision surfaces a specific message", func(t *testing.T) {
		uc, orgRepo, _, _ := newTestOrganizationUsecase()
		orgRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Organization")).
			Return(exceptions.ErrSlugAlreadyTaken(errors.New("E11000 duplicate key error")))

		response, err := uc.Create(context.Background(), &requests.CreateOrganization{Slug: "downtown-ortho", Name: "Another"})
		assert.Nil(t, response)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, 409, customErr.StatusCode)
		assert.Equal(t, "slug already taken", customErr.ClientMessage)
	})
}

func TestSetOwner(t *testing.T) {
	org := &models.Organization{ID: "org-1", Slug: "downtown-ortho", Name: "Downtown Ortho", Active: true}

	t.Run("doctor of the clinic becomes owner", func(t *testing.T) {
		uc, orgRepo, doctorRepo, _ := newTestOrganizationUsecase()
		orgRepo.On("FindByID", mock.Anything, "org-1").Return(org, nil)
		doctorRepo.On("FindByProfileID", mock.Anything, "profile-1").Return(&models.Doctor{
			ID:        "doc-9",
			ProfileID: "profile-1",
			ClinicID:  "org-1",
		}, nil)
		orgRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.Organization")).Return(nil)

		response, err := uc.SetOwner(context.Background(), "org-1", &requests.SetOrganizationOwner{OwnerProfileID: "profile-1"})
		require.NoError(t, err)
		assert.Equal(t, "profile-1", response.OwnerProfileID)
	})

	t.Run("doctor of another clinic rejected", func(t *testing.T) {
		uc, orgRepo, doctorRepo, _ := newTestOrganizationUsecase()
		orgRepo.On("FindByID", mock.Anything, "org-1").Return(org, nil)
		doctorRepo.On("FindByProfileID", mock.Anything, "profile-2").Return(&models.Doctor{
			ID:        "doc-2",
			ProfileID: "profile-2",
			ClinicID:  "org-2",
		}, nil)

		_, err := uc.SetOwner(context.Background(), "org-1", &requests.SetOrganizationOwner{OwnerProfileID: "profile-2"})
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, "owner must be a doctor of this clinic", customErr.ClientMessage)
		orgRepo.AssertNotCalled(t, "Update")
	})

	t.Run("non-doctor rejected", func(t *testing.T) {
		uc, orgRepo, doctorRepo, _ := newTestOrganizationUsecase()
		orgRepo.On("FindByID", mock.Anything, "org-1").Return(org, nil)
		doctorRepo.On("FindByProfileID", mock.Anything, "profile-3").Return(nil, nil)

		_, err := uc.SetOwner(context.Background(), "org-1", &requests.SetOrganizationOwner{OwnerProfileID: "profile-3"})
		assert.Error(t, err)
	})
}

func TestPublicPage(t *testing.T) {
	t.Run("inactive clinic hidden", func(t *testing.T) {
		uc, orgRepo, _, _ := newTestOrganizationUsecase()
		orgRepo.On("FindBySlug", mock.Anything, "closed").Return(&models.Organization{
			ID: "org-9", Slug: "closed", Active: false,
		}, nil)

		_, err := uc.PublicPage(context.Background(), "closed")
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, 404, customErr.StatusCode)
	})

	t.Run("lists active doctors with names", func(t *testing.T) {
		uc, orgRepo, doctorRepo, profileRepo := newTestOrganizationUsecase()
		orgRepo.On("FindBySlug", mock.Anything, "downtown-ortho").Return(&models.Organization{
			ID: "org-1", Slug: "downtown-ortho", Name: "Downtown Ortho", Active: true,
		}, nil)
		doctorRepo.On("FindByClinicID", mock.Anything, "org-1").Return([]models.Doctor{
			{ID: "doc-9", ProfileID: "profile-1", ClinicID: "org-1", Specialization: "Orthopedics"},
			{ID: "doc-2", ProfileID: "profile-2", ClinicID: "org-1", Specialization: "Physio"},
		}, nil)
		profileRepo.On("FindByID", mock.Anything, "profile-1").Return(&models.Profile{
			ID: "profile-1", FullName: "Dr. Example", Active: true,
		}, nil)
		profileRepo.On("FindByID", mock.Anything, "profile-2").Return(&models.Profile{
			ID: "profile-2", FullName: "Dr. Disabled", Active: false,
		}, nil)

		page, err := uc.PublicPage(context.Background(), "downtown-ortho")
		require.NoError(t, err)
		require.Len(t, page.Doctors, 1)
		assert.Equal(t, "Dr. Example", page.Doctors[0].FullName)
		assert.Equal(t, "Orthopedics", page.Doctors[0].Specialization)
	})
}
