package controllers

import (
	"context"
	"net/http"

	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/exceptions"
	"clinicdesk-service/internal/pkg/utils"

	"go.uber.org/zap"
)

func sessionFrom(r *http.Request) *models.Session {
	session, _ := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	return session
}

// requireSuperadmin asserts the authoritative directory record still
// carries the superadmin role. The gate decides from session-cached
// claims, which lag behind a mid-session demotion or deactivation;
// console handlers must check the directory themselves. Returns false
// after writing the response when the request may not proceed.
func requireSuperadmin(ctx context.Context, log *zap.Logger, guard contracts.DirectoryGuard, w http.ResponseWriter, r *http.Request) bool {
	session := sessionFrom(r)
	if session == nil {
		utils.BuildErrorResponse(log, w, exceptions.ErrTokenMissing(nil))
		return false
	}

	_, redirect, err := guard.RequireRole(ctx, session.UserID, constvars.RoleSuperadmin)
	if err != nil {
		utils.BuildErrorResponse(log, w, err)
		return false
	}
	if redirect != nil {
		utils.BuildRedirectResponse(w, r, redirect.Target)
		return false
	}
	return true
}
