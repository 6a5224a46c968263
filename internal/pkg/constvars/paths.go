package constvars

// Login and dashboard path conventions. The gate and the directory guards
// both redirect into these; staff members scoped to a tenant authenticate
// through the tenant login path, never the generic one.
const (
	PathHome                = "/"
	PathLogin               = "/login"
	PathClinicLoginFormat   = "/clinic/%s/login"
	PathAuthCallback        = "/auth/callback"
	PathForgotPassword      = "/auth/forgot-password"
	PathResetPassword       = "/auth/reset-password"
	PathContact             = "/contact"
	PathFallbackDashboard   = "/dashboard"
	PathSuperadminDashboard = "/superadmin/dashboard"
	PathDoctorDashboard     = "/doctor/dashboard"
	PathAssistantDashboard  = "/assistant/dashboard"

	PathPrefixSuperadmin = "/superadmin"
	PathPrefixDoctor     = "/doctor"
	PathPrefixAssistant  = "/assistant"
	PathPrefixBooking    = "/book"
	PathPrefixLegal      = "/legal"
	PathPrefixClinic     = "/clinic"
)

// Query-string error markers carried on redirects. Presence of the marker
// on a public path suppresses the logged-in dashboard bounce, so redirect
// chains always terminate.
const (
	QueryParamError         = "error"
	ErrMarkerUnauthorized   = "unauthorized"
	ErrMarkerNoClinic       = "no_clinic"
	ErrMarkerSessionExpired = "session_expired"
	ErrMarkerAuthCode       = "auth-code-error"
)
