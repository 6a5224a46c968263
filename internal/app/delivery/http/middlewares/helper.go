package middlewares

import (
	"context"

	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/constvars"
)

// SessionFromContext returns the request's session, or nil for an
// anonymous request.
func SessionFromContext(ctx context.Context) *models.Session {
	session, _ := ctx.Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	return session
}
