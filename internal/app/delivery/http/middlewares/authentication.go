package middlewares

import (
	"context"
	"net/http"
	"strings"

	"clinicdesk-service/internal/app/services/core/directory"
	"clinicdesk-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// Authentication resolves the bearer token to its live session when one
// accompanies the request. A missing or dead session is not an error
// here; the gate decides what anonymous requests may reach. The request
// also gets its per-request profile cache attached.
func (m *Middlewares) Authentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := directory.WithRequestCache(r.Context())

		if token := bearerToken(r); token != "" {
			session, err := m.IdentityProvider.GetSession(ctx, token)
			if err != nil {
				requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
				m.Log.Warn("Authentication middleware could not resolve session",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
			}
			if session != nil {
				ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_KEY, session)
			}
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get(constvars.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
