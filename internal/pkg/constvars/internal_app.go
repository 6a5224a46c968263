package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_KEY              ContextKey = "session"
	CONTEXT_PROFILE_CACHE_KEY        ContextKey = "profile_cache"
)

const (
	REQUEST_ID_PREFIX = "CLNDSK_SVC_"
)

const (
	MongoCollectionIdentityUsers = "identity_users"
	MongoCollectionProfiles      = "profiles"
	MongoCollectionDoctors       = "doctors"
	MongoCollectionAssistants    = "assistants"
	MongoCollectionOrganizations = "organizations"
	MongoCollectionPatients      = "patients"
	MongoCollectionAppointments  = "appointments"
	MongoCollectionPrescriptions = "prescriptions"
)

const (
	RedisSessionKeyPrefix       = "session:"
	RedisResetTokenKeyPrefix    = "reset_token:"
	AppPaginationUrlFormat      = "%s?page=%d&page_size=%d"
	ResetPasswordTokenByteCount = 32
)

const (
	MailerResetPasswordSubject    = "Reset your ClinicDesk password"
	MailerResetPasswordBodyFormat = "A password reset was requested for your account. Open the link below to choose a new password. The link expires in %d minutes.\n\n%s?token=%s\n\nIf you did not request this, ignore this email."
)
