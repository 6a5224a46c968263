package auth

import (
	"context"
	"io"
	"time"

	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

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

type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) ResolveProfile(ctx context.Context, principalID string) (*models.EnrichedProfile, error) {
	args := m.Called(ctx, principalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EnrichedProfile), args.Error(1)
}

type MockSynchronizer struct {
	mock.Mock
}

func (m *MockSynchronizer) Sync(ctx context.Context, session *models.Session, profile *models.EnrichedProfile) (bool, error) {
	args := m.Called(ctx, session, profile)
	return args.Bool(0), args.Error(1)
}

type MockStaffUsecase struct {
	mock.Mock
}

func (m *MockStaffUsecase) CreateDoctor(ctx context.Context, owner *models.EnrichedProfile, request *requests.CreateDoctor) (*responses.StaffMember, error) {
	args := m.Called(ctx, owner, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.StaffMember), args.Error(1)
}

func (m *MockStaffUsecase) CreateAssistant(ctx context.Context, owner *models.EnrichedProfile, request *requests.CreateAssistant) (*responses.StaffMember, error) {
	args := m.Called(ctx, owner, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.StaffMember), args.Error(1)
}

func (m *MockStaffUsecase) ListStaff(ctx context.Context, clinicID string) ([]responses.StaffMember, error) {
	args := m.Called(ctx, clinicID)
	return args.Get(0).([]responses.StaffMember), args.Error(1)
}

func (m *MockStaffUsecase) RepairSubIdentity(ctx context.Context, profile *models.Profile) error {
	args := m.Called(ctx, profile)
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

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockMailPublisher struct {
	mock.Mock
}

func (m *MockMailPublisher) Publish(ctx context.Context, message contracts.MailMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, objectName, reader, size, contentType)
	return args.Error(0)
}

func (m *MockStorage) PresignedURL(ctx context.Context, objectName string) (string, error) {
	args := m.Called(ctx, objectName)
	return args.String(0), args.Error(1)
}

func strPtr(s string) *string {
	return &s
}
