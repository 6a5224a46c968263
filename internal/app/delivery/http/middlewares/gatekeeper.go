package middlewares

import (
	"net/http"

	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/utils"
)

// Gatekeeper runs the request gate on every request, using only the
// claims cached in the session. Denials leave as redirects, never as
// 403 bodies.
func (m *Middlewares) Gatekeeper(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var claims *models.SessionClaims
		if session := SessionFromContext(r.Context()); session != nil {
			claims = &session.Claims
		}

		decision := m.Gate.Evaluate(r.URL.Path, r.URL.Query(), claims)
		if !decision.Allow {
			utils.BuildRedirectResponse(w, r, decision.Redirect)
			return
		}
		next.ServeHTTP(w, r)
	})
}
