package directory

import (
	"context"
	"time"

	"clinicdesk-service/internal/app/models"

	"github.com/stretchr/testify/mock"
)

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

type MockAssistantRepository struct {
	mock.Mock
}

func (m *MockAssistantRepository) FindByProfileID(ctx context.Context, profileID string) (*models.Assistant, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Assistant), args.Error(1)
}

func (m *MockAssistantRepository) FindByClinicID(ctx context.Context, clinicID string) ([]models.Assistant, error) {
	args := m.Called(ctx, clinicID)
	return args.Get(0).([]models.Assistant), args.Error(1)
}

func (m *MockAssistantRepository) Create(ctx context.Context, assistant *models.Assistant) error {
	args := m.Called(ctx, assistant)
	return args.Error(0)
}

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

type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) SignIn(ctx context.Context, email, password string) (*models.Session, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.Session), args.String(1), args.Error(2)
}

func (m *MockIdentityProvider) GetSession(ctx context.Context, token string) (*models.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockIdentityProvider) SignOut(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockIdentityProvider) RefreshSessionClaims(ctx context.Context, sessionID string, claims models.SessionClaims) error {
	args := m.Called(ctx, sessionID, claims)
	return args.Error(0)
}

func (m *MockIdentityProvider) CreateUser(ctx context.Context, email, password string, claims models.SessionClaims) (string, error) {
	args := m.Called(ctx, email, password, claims)
	return args.String(0), args.Error(1)
}

func (m *MockIdentityProvider) FindUserByEmail(ctx context.Context, email string) (*models.IdentityUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.IdentityUser), args.Error(1)
}

func (m *MockIdentityProvider) UpdateClaims(ctx context.Context, userID string, claims models.SessionClaims) error {
	args := m.Called(ctx, userID, claims)
	return args.Error(0)
}

func (m *MockIdentityProvider) UpdatePassword(ctx context.Context, userID, newPassword string) error {
	args := m.Called(ctx, userID, newPassword)
	return args.Error(0)
}

func (m *MockIdentityProvider) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func strPtr(s string) *string {
	return &s
}

func sessionExpiry() time.Time {
	return time.Now().Add(time.Hour)
}
