package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinicdesk-service/internal/app/config"
	"clinicdesk-service/internal/app/delivery/http/controllers"
	"clinicdesk-service/internal/app/delivery/http/middlewares"
	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/app/services/core/gate"
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/dto/responses"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
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

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Login), args.Error(1)
}

func (m *MockAuthUsecase) LoginToClinic(ctx context.Context, slug string, request *requests.Login) (*responses.Login, error) {
	args := m.Called(ctx, slug, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Login), args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockAuthUsecase) Refresh(ctx context.Context, session *models.Session) (*responses.Login, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Login), args.Error(1)
}

func (m *MockAuthUsecase) Me(ctx context.Context, session *models.Session) (*responses.Me, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Me), args.Error(1)
}

func (m *MockAuthUsecase) ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockAuthUsecase) ResetPassword(ctx context.Context, request *requests.ResetPassword) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockAuthUsecase) UpdatePassword(ctx context.Context, session *models.Session, request *requests.UpdatePassword) error {
	args := m.Called(ctx, session, request)
	return args.Error(0)
}

func (m *MockAuthUsecase) UploadProfilePicture(ctx context.Context, session *models.Session, fileName string, reader io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, session, fileName, reader, size, contentType)
	return args.String(0), args.Error(1)
}

type MockOrganizationUsecase struct {
	mock.Mock
}

func (m *MockOrganizationUsecase) Create(ctx context.Context, request *requests.CreateOrganization) (*responses.Organization, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Organization), args.Error(1)
}

func (m *MockOrganizationUsecase) Update(ctx context.Context, orgID string, request *requests.UpdateOrganization) (*responses.Organization, error) {
	args := m.Called(ctx, orgID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Organization), args.Error(1)
}

func (m *MockOrganizationUsecase) SetOwner(ctx context.Context, orgID string, request *requests.SetOrganizationOwner) (*responses.Organization, error) {
	args := m.Called(ctx, orgID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Organization), args.Error(1)
}

func (m *MockOrganizationUsecase) FindAll(ctx context.Context, pagination *requests.Pagination) ([]responses.Organization, int, error) {
	args := m.Called(ctx, pagination)
	return args.Get(0).([]responses.Organization), args.Int(1), args.Error(2)
}

func (m *MockOrganizationUsecase) FindByID(ctx context.Context, orgID string) (*responses.Organization, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Organization), args.Error(1)
}

func (m *MockOrganizationUsecase) PublicPage(ctx context.Context, slug string) (*responses.ClinicPublicPage, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ClinicPublicPage), args.Error(1)
}

type MockDirectoryGuard struct {
	mock.Mock
}

func (m *MockDirectoryGuard) RequireRole(ctx context.Context, principalID string, allowedRoles ...string) (*models.EnrichedProfile, *models.Redirect, error) {
	args := m.Called(ctx, principalID, allowedRoles)
	return guardResult(args)
}

func (m *MockDirectoryGuard) RequireDoctorWithClinic(ctx context.Context, principalID string) (*models.EnrichedProfile, *models.Redirect, error) {
	args := m.Called(ctx, principalID)
	return guardResult(args)
}

func (m *MockDirectoryGuard) RequireClinicOwner(ctx context.Context, principalID string) (*models.EnrichedProfile, *models.Redirect, error) {
	args := m.Called(ctx, principalID)
	return guardResult(args)
}

func (m *MockDirectoryGuard) RequireClinicID(ctx context.Context, principalID string) (*models.EnrichedProfile, *models.Redirect, error) {
	args := m.Called(ctx, principalID)
	return guardResult(args)
}

func guardResult(args mock.Arguments) (*models.EnrichedProfile, *models.Redirect, error) {
	var profile *models.EnrichedProfile
	if args.Get(0) != nil {
		profile = args.Get(0).(*models.EnrichedProfile)
	}
	var redirect *models.Redirect
	if args.Get(1) != nil {
		redirect = args.Get(1).(*models.Redirect)
	}
	return profile, redirect, args.Error(2)
}

type routerFixture struct {
	router       *chi.Mux
	identity     *MockIdentityProvider
	authUsecase  *MockAuthUsecase
	organization *MockOrganizationUsecase
	guard        *MockDirectoryGuard
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	logger := zap.NewNop()

	requestGate, err := gate.NewGate()
	require.NoError(t, err)

	internalConfig := &config.InternalConfig{
		App: config.App{
			MaxRequests:                100,
			RequestBodyLimitInMegabyte: 5,
		},
	}

	f := &routerFixture{
		router:       chi.NewRouter(),
		identity:     new(MockIdentityProvider),
		authUsecase:  new(MockAuthUsecase),
		organization: new(MockOrganizationUsecase),
		guard:        new(MockDirectoryGuard),
	}

	middlewareInstance := middlewares.NewMiddlewares(logger, internalConfig, f.identity, requestGate)

	SetupRoutes(
		f.router,
		internalConfig,
		middlewareInstance,
		controllers.NewAuthController(logger, f.authUsecase),
		controllers.NewOrganizationController(logger, f.organization, f.guard),
		controllers.NewAccountController(logger, nil, f.guard),
		controllers.NewStaffController(logger, nil, nil),
		controllers.NewPatientController(logger, nil, nil),
		controllers.NewAppointmentController(logger, nil, nil),
		controllers.NewPrescriptionController(logger, nil, nil),
		controllers.NewDashboardController(logger, nil, nil, nil),
	)
	return f
}

func doctorSession() *models.Session {
	return &models.Session{
		SessionID: "sess-1",
		UserID:    "profile-1",
		Email:     "doc@clinic.example",
		Claims:    models.SessionClaims{Role: "doctor", ClinicID: "org-1", ClinicSlug: "downtown-ortho"},
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestRouter_AnonymousProtectedPathRedirectsToLogin(t *testing.T) {
	f := newRouterFixture(t)

	req := httptest.NewRequest("GET", "/doctor/dashboard", nil)
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
}

func TestRouter_RoleMismatchRedirectsToTenantLogin(t *testing.T) {
	f := newRouterFixture(t)
	f.identity.On("GetSession", mock.Anything, "tok-doctor").Return(doctorSession(), nil)

	req := httptest.NewRequest("GET", "/superadmin/users", nil)
	req.Header.Set("Authorization", "Bearer tok-doctor")
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/clinic/downtown-ortho/login?error=unauthorized", rr.Header().Get("Location"))
}

func TestRouter_LoggedInStaffBouncedFromLogin(t *testing.T) {
	f := newRouterFixture(t)
	f.identity.On("GetSession", mock.Anything, "tok-doctor").Return(doctorSession(), nil)

	req := httptest.NewRequest("POST", "/login", bytes.NewBufferString(`{}`))
	req.Header.Set("Authorization", "Bearer tok-doctor")
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/doctor/dashboard", rr.Header().Get("Location"))
	f.authUsecase.AssertNotCalled(t, "Login")
}

func TestRouter_AnonymousLoginSucceeds(t *testing.T) {
	f := newRouterFixture(t)
	f.authUsecase.On("Login", mock.Anything, mock.AnythingOfType("*requests.Login")).Return(&responses.Login{
		Token:     "tok",
		Role:      "superadmin",
		Dashboard: "/superadmin/dashboard",
	}, nil)

	body, _ := json.Marshal(requests.Login{Email: "admin@clinicdesk.example", Password: "Sup3r!Secret"})
	req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	f.authUsecase.AssertExpectations(t)
}

func superadminSession() *models.Session {
	return &models.Session{
		SessionID: "sess-9",
		UserID:    "profile-9",
		Email:     "admin@clinicdesk.example",
		Claims:    models.SessionClaims{Role: "superadmin"},
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestRouter_StaleSuperadminClaimsBlockedByDirectory(t *testing.T) {
	f := newRouterFixture(t)
	f.identity.On("GetSession", mock.Anything, "tok-admin").Return(superadminSession(), nil)
	f.guard.On("RequireRole", mock.Anything, "profile-9", []string{"superadmin"}).
		Return(nil, &models.Redirect{Target: "/login?error=unauthorized"}, nil)

	req := httptest.NewRequest("GET", "/superadmin/users", nil)
	req.Header.Set("Authorization", "Bearer tok-admin")
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/login?error=unauthorized", rr.Header().Get("Location"))
	f.guard.AssertExpectations(t)
}

func TestRouter_StaleSuperadminClaimsBlockedFromOrganizations(t *testing.T) {
	f := newRouterFixture(t)
	f.identity.On("GetSession", mock.Anything, "tok-admin").Return(superadminSession(), nil)
	f.guard.On("RequireRole", mock.Anything, "profile-9", []string{"superadmin"}).
		Return(nil, &models.Redirect{Target: "/login?error=unauthorized"}, nil)

	body, _ := json.Marshal(requests.CreateOrganization{Slug: "new-clinic", Name: "New Clinic"})
	req := httptest.NewRequest("POST", "/superadmin/organizations", bytes.NewBuffer(body))
	req.Header.Set("Authorization", "Bearer tok-admin")
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusFound, rr.Code)
	f.organization.AssertNotCalled(t, "Create")
}

func TestRouter_AnonymousForgotPasswordReachable(t *testing.T) {
	f := newRouterFixture(t)
	f.authUsecase.On("ForgotPassword", mock.Anything, mock.AnythingOfType("*requests.ForgotPassword")).Return(nil)

	body, _ := json.Marshal(requests.ForgotPassword{Email: "locked-out@clinic.example"})
	req := httptest.NewRequest("POST", "/auth/forgot-password", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	f.authUsecase.AssertExpectations(t)
}

func TestRouter_AnonymousResetPasswordReachable(t *testing.T) {
	f := newRouterFixture(t)
	f.authUsecase.On("ResetPassword", mock.Anything, mock.AnythingOfType("*requests.ResetPassword")).Return(nil)

	body, _ := json.Marshal(requests.ResetPassword{Token: "cafe", NewPassword: "N3w!Passw0rd"})
	req := httptest.NewRequest("POST", "/auth/reset-password", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	f.authUsecase.AssertExpectations(t)
}

func TestRouter_PublicClinicPageNeedsNoSession(t *testing.T) {
	f := newRouterFixture(t)
	f.organization.On("PublicPage", mock.Anything, "downtown-ortho").Return(&responses.ClinicPublicPage{
		Slug: "downtown-ortho",
		Name: "Downtown Ortho",
	}, nil)

	req := httptest.NewRequest("GET", "/clinic/downtown-ortho", nil)
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	f.organization.AssertExpectations(t)
}
