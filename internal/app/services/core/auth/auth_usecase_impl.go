package auth

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	"clinicdesk-service/internal/app/config"
	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/app/services/core/gate"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/dto/responses"
	"clinicdesk-service/internal/pkg/exceptions"
	"clinicdesk-service/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type authUsecase struct {
	IdentityProvider       contracts.IdentityProvider
	Directory              contracts.Directory
	Synchronizer           contracts.SessionSynchronizer
	StaffUsecase           contracts.StaffUsecase
	ProfileRepository      contracts.ProfileRepository
	OrganizationRepository contracts.OrganizationRepository
	RedisRepository        contracts.RedisRepository
	MailPublisher          contracts.MailPublisher
	MinioStorage           contracts.Storage
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	identityProvider contracts.IdentityProvider,
	directory contracts.Directory,
	synchronizer contracts.SessionSynchronizer,
	staffUsecase contracts.StaffUsecase,
	profileRepository contracts.ProfileRepository,
	organizationRepository contracts.OrganizationRepository,
	redisRepository contracts.RedisRepository,
	mailPublisher contracts.MailPublisher,
	minioStorage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			IdentityProvider:       identityProvider,
			Directory:              directory,
			Synchronizer:           synchronizer,
			StaffUsecase:           staffUsecase,
			ProfileRepository:      profileRepository,
			OrganizationRepository: organizationRepository,
			RedisRepository:        redisRepository,
			MailPublisher:          mailPublisher,
			MinioStorage:           minioStorage,
			InternalConfig:         internalConfig,
			Log:                    logger,
			limiters:               make(map[string]*rate.Limiter),
		}
	})
	return authUsecaseInstance
}

// Login authenticates through the generic login page. Staff scoped to a
// tenant never get a usable session here: they are signed back out and
// told to use their clinic's login path.
func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if !uc.allowLoginAttempt(request.Email) {
		return nil, exceptions.ErrTooManyLoginAttempts(nil)
	}

	session, token, err := uc.IdentityProvider.SignIn(ctx, request.Email, request.Password)
	if err != nil {
		return nil, err
	}

	profile, err := uc.resolveLoginProfile(ctx, session)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		// Patient principals have no directory row; their session claims
		// are the whole story.
		return uc.buildLoginResponse(token, session, nil), nil
	}

	if _, err := uc.Synchronizer.Sync(ctx, session, profile); err != nil {
		uc.Log.Error("authUsecase.Login error syncing session claims",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPrincipalKey, session.UserID),
			zap.Error(err),
		)
		return nil, err
	}

	if profile.HasClinic() &&
		(profile.Role == constvars.RoleDoctor || profile.Role == constvars.RoleAssistant) {
		uc.signOutQuietly(ctx, session.SessionID)
		return nil, exceptions.ErrUseTenantLogin(session.Claims.ClinicSlug)
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrincipalKey, session.UserID),
		zap.String(constvars.LoggingRoleKey, profile.Role),
	)
	return uc.buildLoginResponse(token, session, profile), nil
}

// LoginToClinic authenticates through /clinic/{slug}/login and rejects
// principals that do not belong to that clinic.
func (uc *authUsecase) LoginToClinic(ctx context.Context, slug string, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	org, err := uc.OrganizationRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if org == nil || !org.Active {
		return nil, exceptions.ErrClinicNotFound(nil)
	}

	if !uc.allowLoginAttempt(request.Email) {
		return nil, exceptions.ErrTooManyLoginAttempts(nil)
	}

	session, token, err := uc.IdentityProvider.SignIn(ctx, request.Email, request.Password)
	if err != nil {
		return nil, err
	}

	profile, err := uc.resolveLoginProfile(ctx, session)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		uc.signOutQuietly(ctx, session.SessionID)
		return nil, exceptions.ErrProfileNotFound(nil)
	}

	staffRole := profile.Role == constvars.RoleDoctor || profile.Role == constvars.RoleAssistant
	if !staffRole || !profile.HasClinic() || *profile.ClinicID != org.ID {
		uc.signOutQuietly(ctx, session.SessionID)
		return nil, exceptions.ErrClinicMismatch(nil)
	}

	if err := uc.StaffUsecase.RepairSubIdentity(ctx, &profile.Profile); err != nil {
		uc.Log.Error("authUsecase.LoginToClinic error repairing sub-identity",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPrincipalKey, session.UserID),
			zap.Error(err),
		)
	}

	if _, err := uc.Synchronizer.Sync(ctx, session, profile); err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.LoginToClinic succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrincipalKey, session.UserID),
		zap.String(constvars.LoggingClinicKey, org.ID),
	)
	return uc.buildLoginResponse(token, session, profile), nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	return uc.IdentityProvider.SignOut(ctx, sessionID)
}

// Refresh re-signs a token for the current session. The Redis session
// keeps its original expiry, so refreshing never extends the overall
// login lifetime.
func (uc *authUsecase) Refresh(ctx context.Context, session *models.Session) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	profile, err := uc.resolveLoginProfile(ctx, session)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.Log.Info("authUsecase.Refresh succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrincipalKey, session.UserID),
	)
	return uc.buildLoginResponse(token, session, profile), nil
}

func (uc *authUsecase) Me(ctx context.Context, session *models.Session) (*responses.Me, error) {
	profile, err := uc.Directory.ResolveProfile(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return &responses.Me{
			ID:    session.UserID,
			Email: session.Email,
			Role:  session.Claims.Role,
		}, nil
	}

	if _, err := uc.Synchronizer.Sync(ctx, session, profile); err != nil {
		return nil, err
	}

	me := &responses.Me{
		ID:            profile.ID,
		Email:         profile.Email,
		Role:          profile.Role,
		Active:        profile.Active,
		FullName:      profile.FullName,
		ClinicName:    profile.ClinicName,
		IsClinicOwner: profile.IsClinicOwner(),
	}
	if profile.ClinicID != nil {
		me.ClinicID = *profile.ClinicID
	}
	if profile.Doctor != nil {
		me.DoctorID = profile.Doctor.DoctorID
	}
	if profile.Assistant != nil {
		me.AssistantID = profile.Assistant.AssistantID
		me.AssignedDoctorID = profile.Assistant.AssignedDoctorID
	}
	if profile.PictureObjectName != "" {
		url, err := uc.MinioStorage.PresignedURL(ctx, profile.PictureObjectName)
		if err == nil {
			me.PictureUrl = url
		}
	}
	return me, nil
}

func (uc *authUsecase) ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	user, err := uc.IdentityProvider.FindUserByEmail(ctx, request.Email)
	if err != nil {
		return err
	}
	if user == nil {
		// Same response either way so the endpoint cannot be used to
		// probe which emails exist.
		return nil
	}

	token, err := utils.GenerateResetToken(constvars.ResetPasswordTokenByteCount)
	if err != nil {
		return exceptions.ErrServerProcess(err)
	}

	tokenTTL := time.Duration(uc.InternalConfig.App.ResetPasswordTokenExpTimeInMinutes) * time.Minute
	if err := uc.RedisRepository.Set(ctx, constvars.RedisResetTokenKeyPrefix+token, user.ID, tokenTTL); err != nil {
		return err
	}

	body := fmt.Sprintf(constvars.MailerResetPasswordBodyFormat,
		uc.InternalConfig.App.ResetPasswordTokenExpTimeInMinutes,
		uc.InternalConfig.Mailer.ResetPasswordUrl,
		token,
	)
	err = uc.MailPublisher.Publish(ctx, contracts.MailMessage{
		To:      user.Email,
		Subject: constvars.MailerResetPasswordSubject,
		Body:    body,
	})
	if err != nil {
		uc.Log.Error("authUsecase.ForgotPassword error publishing reset mail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (uc *authUsecase) ResetPassword(ctx context.Context, request *requests.ResetPassword) error {
	userID, err := uc.RedisRepository.Get(ctx, constvars.RedisResetTokenKeyPrefix+request.Token)
	if err != nil {
		return err
	}
	if userID == "" {
		return exceptions.ErrResetTokenExpired(nil)
	}

	if err := uc.IdentityProvider.UpdatePassword(ctx, userID, request.NewPassword); err != nil {
		return err
	}
	return uc.RedisRepository.Delete(ctx, constvars.RedisResetTokenKeyPrefix+request.Token)
}

func (uc *authUsecase) UpdatePassword(ctx context.Context, session *models.Session, request *requests.UpdatePassword) error {
	user, err := uc.IdentityProvider.FindUserByEmail(ctx, session.Email)
	if err != nil {
		return err
	}
	if user == nil || !utils.CheckPasswordHash(request.CurrentPassword, user.PasswordHash) {
		return exceptions.ErrInvalidEmailOrPassword(nil)
	}
	return uc.IdentityProvider.UpdatePassword(ctx, user.ID, request.NewPassword)
}

func (uc *authUsecase) UploadProfilePicture(ctx context.Context, session *models.Session, fileName string, reader io.Reader, size int64, contentType string) (string, error) {
	maxSize := uc.InternalConfig.App.ProfilePictureMaxUploadSizeInMB * 1024 * 1024
	if size <= 0 || size > maxSize {
		return "", exceptions.ErrImageValidation(nil)
	}

	profile, err := uc.ProfileRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return "", err
	}
	if profile == nil {
		return "", exceptions.ErrProfileNotFound(nil)
	}

	objectName := utils.GenerateFileName("profile_picture", session.UserID, filepath.Ext(fileName))
	if err := uc.MinioStorage.Upload(ctx, objectName, reader, size, contentType); err != nil {
		return "", err
	}

	profile.PictureObjectName = objectName
	if err := uc.ProfileRepository.Update(ctx, profile); err != nil {
		return "", err
	}
	return uc.MinioStorage.PresignedURL(ctx, objectName)
}

// resolveLoginProfile loads the directory record for a fresh session and
// enforces the login-time account checks. Disabled accounts and staff
// without a profile row are signed out immediately.
func (uc *authUsecase) resolveLoginProfile(ctx context.Context, session *models.Session) (*models.EnrichedProfile, error) {
	profile, err := uc.Directory.ResolveProfile(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		if session.Claims.Role == "" || session.Claims.Role == constvars.RolePatient {
			return nil, nil
		}
		uc.signOutQuietly(ctx, session.SessionID)
		return nil, exceptions.ErrProfileNotFound(nil)
	}
	if !profile.Active {
		uc.signOutQuietly(ctx, session.SessionID)
		return nil, exceptions.ErrAccountDisabled(nil)
	}
	return profile, nil
}

func (uc *authUsecase) buildLoginResponse(token string, session *models.Session, profile *models.EnrichedProfile) *responses.Login {
	response := &responses.Login{
		Token:      token,
		Role:       session.Claims.Role,
		ClinicID:   session.Claims.ClinicID,
		ClinicSlug: session.Claims.ClinicSlug,
		Dashboard:  gate.DashboardPath(session.Claims.Role),
	}
	if profile != nil {
		response.FullName = profile.FullName
	}
	return response
}

// allowLoginAttempt throttles per email address, in process. A burst of
// LoginAttemptsPerMinute is allowed before attempts are refused.
func (uc *authUsecase) allowLoginAttempt(email string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	limiter, ok := uc.limiters[email]
	if !ok {
		perMinute := uc.InternalConfig.App.LoginAttemptsPerMinute
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
		uc.limiters[email] = limiter
	}
	return limiter.Allow()
}

func (uc *authUsecase) signOutQuietly(ctx context.Context, sessionID string) {
	if err := uc.IdentityProvider.SignOut(ctx, sessionID); err != nil {
		uc.Log.Warn("authUsecase failed to sign out session",
			zap.Error(err),
		)
	}
}
