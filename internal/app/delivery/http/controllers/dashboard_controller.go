package controllers

import (
	"context"
	"net/http"
	"time"

	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/dto/responses"
	"clinicdesk-service/internal/pkg/exceptions"
	"clinicdesk-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// DashboardController backs the role dashboards. Each handler resolves
// the authoritative profile through a guard and then lets the
// synchronizer repair any drifted session claims, so the dashboard a
// principal lands on is always computed from directory state.
type DashboardController struct {
	Log                 *zap.Logger
	Directory           contracts.Directory
	DirectoryGuard      contracts.DirectoryGuard
	SessionSynchronizer contracts.SessionSynchronizer
}

func NewDashboardController(
	logger *zap.Logger,
	directory contracts.Directory,
	directoryGuard contracts.DirectoryGuard,
	sessionSynchronizer contracts.SessionSynchronizer,
) *DashboardController {
	return &DashboardController{
		Log:                 logger,
		Directory:           directory,
		DirectoryGuard:      directoryGuard,
		SessionSynchronizer: sessionSynchronizer,
	}
}

func (ctrl *DashboardController) Superadmin(w http.ResponseWriter, r *http.Request) {
	ctrl.roleDashboard(w, r, constvars.RoleSuperadmin)
}

func (ctrl *DashboardController) Doctor(w http.ResponseWriter, r *http.Request) {
	ctrl.roleDashboard(w, r, constvars.RoleDoctor)
}

func (ctrl *DashboardController) Assistant(w http.ResponseWriter, r *http.Request) {
	ctrl.roleDashboard(w, r, constvars.RoleAssistant)
}

// Fallback serves /dashboard for principals without a role-scoped home:
// patients and claims-only sessions.
func (ctrl *DashboardController) Fallback(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	if session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	profile, err := ctrl.Directory.ResolveProfile(ctx, session.UserID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	dashboard := &responses.Dashboard{Role: session.Claims.Role}
	if profile != nil {
		dashboard = ctrl.buildDashboard(ctx, session, profile)
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDashboardSuccessMessage, dashboard)
}

func (ctrl *DashboardController) roleDashboard(w http.ResponseWriter, r *http.Request, role string) {
	session := sessionFrom(r)
	if session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	profile, redirect, err := ctrl.DirectoryGuard.RequireRole(ctx, session.UserID, role)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if redirect != nil {
		utils.BuildRedirectResponse(w, r, redirect.Target)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDashboardSuccessMessage, ctrl.buildDashboard(ctx, session, profile))
}

func (ctrl *DashboardController) buildDashboard(ctx context.Context, session *models.Session, profile *models.EnrichedProfile) *responses.Dashboard {
	synced, err := ctrl.SessionSynchronizer.Sync(ctx, session, profile)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		ctrl.Log.Warn("DashboardController claims sync failed, serving from directory state",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPrincipalKey, profile.ID),
			zap.Error(err),
		)
	}

	dashboard := &responses.Dashboard{
		Role:          profile.Role,
		FullName:      profile.FullName,
		ClinicName:    profile.ClinicName,
		IsClinicOwner: profile.IsClinicOwner(),
		ClaimsSynced:  synced,
	}
	if profile.ClinicID != nil {
		dashboard.ClinicID = *profile.ClinicID
	}
	return dashboard
}
