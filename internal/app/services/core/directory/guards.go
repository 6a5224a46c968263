package directory

import (
	"context"
	"fmt"
	"sync"

	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/app/services/core/gate"
	"clinicdesk-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// directoryGuard asserts authorization invariants on top of profile
// resolution. Failures divert control flow via Redirect instead of
// returning a forbidden value the caller could accidentally use.
type directoryGuard struct {
	Directory contracts.Directory
	Log       *zap.Logger
}

var (
	directoryGuardInstance contracts.DirectoryGuard
	onceDirectoryGuard     sync.Once
)

func NewDirectoryGuard(directory contracts.Directory, logger *zap.Logger) contracts.DirectoryGuard {
	onceDirectoryGuard.Do(func() {
		directoryGuardInstance = &directoryGuard{
			Directory: directory,
			Log:       logger,
		}
	})
	return directoryGuardInstance
}

func (g *directoryGuard) RequireRole(ctx context.Context, principalID string, allowedRoles ...string) (*models.EnrichedProfile, *models.Redirect, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	profile, err := g.Directory.ResolveProfile(ctx, principalID)
	if err != nil {
		return nil, nil, err
	}
	if profile == nil {
		g.Log.Warn("directoryGuard.RequireRole principal has no profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPrincipalKey, principalID),
		)
		return nil, unauthorizedRedirect(), nil
	}
	for _, role := range allowedRoles {
		if profile.Role == role {
			return profile, nil, nil
		}
	}
	g.Log.Warn("directoryGuard.RequireRole role not allowed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrincipalKey, principalID),
		zap.String(constvars.LoggingRoleKey, profile.Role),
	)
	return nil, unauthorizedRedirect(), nil
}

// RequireDoctorWithClinic asserts a doctor profile whose doctor record
// exists and whose clinic assignment is set.
func (g *directoryGuard) RequireDoctorWithClinic(ctx context.Context, principalID string) (*models.EnrichedProfile, *models.Redirect, error) {
	profile, redirect, err := g.RequireRole(ctx, principalID, constvars.RoleDoctor)
	if err != nil || redirect != nil {
		return nil, redirect, err
	}
	if profile.Doctor == nil || !profile.HasClinic() {
		return nil, noClinicRedirect(), nil
	}
	return profile, nil, nil
}

// RequireClinicOwner narrows RequireDoctorWithClinic to the doctor that
// owns the clinic.
func (g *directoryGuard) RequireClinicOwner(ctx context.Context, principalID string) (*models.EnrichedProfile, *models.Redirect, error) {
	profile, redirect, err := g.RequireDoctorWithClinic(ctx, principalID)
	if err != nil || redirect != nil {
		return nil, redirect, err
	}
	if !profile.IsClinicOwner() {
		return nil, &models.Redirect{
			Target: gate.WithErrorMarker(constvars.PathDoctorDashboard, constvars.ErrMarkerUnauthorized),
		}, nil
	}
	return profile, nil, nil
}

// RequireClinicID asserts a tenant assignment for any role that can have
// one. A superadmin reaching this guard is a routing bug, not a user
// error: superadmins are tenant-less by definition, so this panics.
func (g *directoryGuard) RequireClinicID(ctx context.Context, principalID string) (*models.EnrichedProfile, *models.Redirect, error) {
	profile, err := g.Directory.ResolveProfile(ctx, principalID)
	if err != nil {
		return nil, nil, err
	}
	if profile == nil {
		return nil, unauthorizedRedirect(), nil
	}
	if !profile.HasClinic() {
		if profile.Role == constvars.RoleSuperadmin {
			panic(fmt.Sprintf("RequireClinicID called for tenant-less superadmin %s", principalID))
		}
		return nil, noClinicRedirect(), nil
	}
	return profile, nil, nil
}

func unauthorizedRedirect() *models.Redirect {
	return &models.Redirect{
		Target: gate.WithErrorMarker(constvars.PathLogin, constvars.ErrMarkerUnauthorized),
	}
}

func noClinicRedirect() *models.Redirect {
	return &models.Redirect{
		Target: gate.WithErrorMarker(constvars.PathFallbackDashboard, constvars.ErrMarkerNoClinic),
	}
}
