package gate

import (
	"fmt"
	"net/url"
	"strings"

	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/constvars"

	"github.com/casbin/casbin/v2"
	casbinmodel "github.com/casbin/casbin/v2/model"
	"github.com/casbin/casbin/v2/util"
)

// Decision is the gate's verdict for one request. Allow true means the
// request proceeds to its handler; otherwise Redirect carries the target.
type Decision struct {
	Allow    bool
	Redirect string
}

// roleModel maps a role-scoped path prefix to the single role allowed
// under it. Paths outside the table only require an authenticated session.
const roleModel = `
[request_definition]
r = sub, obj

[policy_definition]
p = sub, obj

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && keyMatch2(r.obj, p.obj)
`

var rolePolicies = [][]string{
	{constvars.RoleSuperadmin, constvars.PathPrefixSuperadmin + "/*"},
	{constvars.RoleDoctor, constvars.PathPrefixDoctor + "/*"},
	{constvars.RoleAssistant, constvars.PathPrefixAssistant + "/*"},
}

// Password recovery is only ever needed by principals who cannot log
// in, so both reset paths must stay reachable without a session.
var publicPrefixes = []string{
	constvars.PathLogin,
	constvars.PathAuthCallback,
	constvars.PathForgotPassword,
	constvars.PathResetPassword,
	constvars.PathContact,
	constvars.PathPrefixBooking,
	constvars.PathPrefixLegal,
	constvars.PathPrefixClinic,
}

// Gate evaluates every inbound request against session-cached claims
// only. It never consults the directory, so its decisions can lag behind
// directory state until the synchronizer re-issues claims.
type Gate struct {
	enforcer *casbin.Enforcer
}

func NewGate() (*Gate, error) {
	model, err := casbinmodel.NewModelFromString(roleModel)
	if err != nil {
		return nil, err
	}
	enforcer, err := casbin.NewEnforcer(model)
	if err != nil {
		return nil, err
	}
	if _, err := enforcer.AddPolicies(rolePolicies); err != nil {
		return nil, err
	}
	return &Gate{enforcer: enforcer}, nil
}

// Evaluate classifies the path and returns a Decision. A nil claims
// pointer means no valid session accompanies the request.
func (g *Gate) Evaluate(path string, query url.Values, claims *models.SessionClaims) Decision {
	if isPublicPath(path) {
		if claims != nil && !query.Has(constvars.QueryParamError) && shouldBounceToDashboard(path, claims) {
			return Decision{Redirect: DashboardPath(claims.Role)}
		}
		return Decision{Allow: true}
	}

	if claims == nil {
		return Decision{Redirect: constvars.PathLogin}
	}

	// A session without a role claim belongs to a principal still being
	// provisioned. Role checks are skipped; page logic resolves the
	// authoritative profile itself.
	if claims.Role == "" {
		return Decision{Allow: true}
	}

	if g.isRoleScoped(path) {
		allowed, err := g.enforcer.Enforce(claims.Role, path)
		if err != nil || !allowed {
			return Decision{Redirect: WithErrorMarker(LoginPath(claims), constvars.ErrMarkerUnauthorized)}
		}
	}
	return Decision{Allow: true}
}

func (g *Gate) isRoleScoped(path string) bool {
	for _, policy := range rolePolicies {
		if util.KeyMatch2(path, policy[1]) {
			return true
		}
	}
	return false
}

func isPublicPath(path string) bool {
	if path == constvars.PathHome {
		return true
	}
	for _, prefix := range publicPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

// shouldBounceToDashboard reports whether a logged-in principal on a
// public path gets sent to its dashboard instead: always from login
// pages, and from home for tenant-scoped staff.
func shouldBounceToDashboard(path string, claims *models.SessionClaims) bool {
	if isLoginPath(path) {
		return true
	}
	if path == constvars.PathHome && claims.ClinicID != "" &&
		(claims.Role == constvars.RoleDoctor || claims.Role == constvars.RoleAssistant) {
		return true
	}
	return false
}

func isLoginPath(path string) bool {
	return path == constvars.PathLogin ||
		(strings.HasPrefix(path, constvars.PathPrefixClinic+"/") && strings.HasSuffix(path, "/login"))
}

// DashboardPath maps a cached role to its dashboard.
func DashboardPath(role string) string {
	switch role {
	case constvars.RoleSuperadmin:
		return constvars.PathSuperadminDashboard
	case constvars.RoleDoctor:
		return constvars.PathDoctorDashboard
	case constvars.RoleAssistant:
		return constvars.PathAssistantDashboard
	default:
		return constvars.PathFallbackDashboard
	}
}

// LoginPath resolves the login page a principal should use. Tenant-scoped
// staff with a known slug get the tenant login path.
func LoginPath(claims *models.SessionClaims) string {
	if claims != nil && claims.ClinicSlug != "" &&
		(claims.Role == constvars.RoleDoctor || claims.Role == constvars.RoleAssistant) {
		return fmt.Sprintf(constvars.PathClinicLoginFormat, claims.ClinicSlug)
	}
	return constvars.PathLogin
}

// WithErrorMarker appends the error query marker that both suppresses
// the logged-in dashboard bounce and tells the target page what failed.
func WithErrorMarker(path, marker string) string {
	values := url.Values{}
	values.Set(constvars.QueryParamError, marker)
	return path + "?" + values.Encode()
}
