package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"eqfield":  "must match %s",
	"oneof":    "must be one of [%s]",
	"uuid":     "must be a valid UUID",
	"slug":     "must contain only lowercase letters, digits and hyphens",
	"password": "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"eqfield": true,
	"oneof":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientAccountDisabled               = "Account is disabled. Contact admin."
	ErrClientProfileNotFound               = "Profile not found. Please contact support."
	ErrClientUseTenantLogin                = "please sign in through your clinic's login page"
	ErrClientSlugAlreadyTaken              = "slug already taken"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientTooManyLoginAttempts          = "too many login attempts, try again shortly"
	ErrClientResetTokenExpired             = "reset link expired, please request a new one"
	ErrClientClinicNotFound                = "clinic not found"
	ErrClientOwnerMustBeDoctor             = "owner must be a doctor of this clinic"
	ErrClientAssistantWrongClinic          = "assistant must belong to the assigned doctor's clinic"
	ErrClientInvalidImageFormat            = "invalid image format"
	ErrClientDoctorNotFound                = "doctor not found"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientSlotTaken                     = "that time slot is already booked"
	ErrClientInvalidStartTime              = "invalid appointment start time"
	ErrClientInvalidDay                    = "invalid day, use YYYY-MM-DD"
	ErrClientPrescribeOwnAppointments      = "you can only prescribe for your own appointments"
)

// Error messages for developers
const (
	ErrDevValidationFailed        = "validation failed"
	ErrDevCannotParseJSON         = "cannot parse JSON"
	ErrDevCannotMarshalJSON       = "cannot marshal JSON"
	ErrDevCannotParseMultipart    = "cannot parse multipart form"
	ErrDevInvalidCredentials      = "invalid credentials"
	ErrDevProfileNotFound         = "no profile row for principal"
	ErrDevProfileInactive         = "profile is deactivated"
	ErrDevStaffOnGenericLogin     = "tenant-scoped staff attempted generic login"
	ErrDevClinicMismatch          = "profile clinic does not match login tenant"
	ErrDevLoginThrottled          = "login attempts throttled"
	ErrDevResetTokenInvalid       = "reset token invalid or expired"
	ErrDevServerProcess           = "internal server process failed"
	ErrDevServerDeadlineExceeded  = "deadline exceeded"
	ErrDevURLParamValidationFail  = "failed to validate URL param %s"
	ErrDevOwnerNotClinicDoctor    = "owner profile is not a doctor of the organization"
	ErrDevAssistantClinicMismatch = "assistant clinic differs from assigned doctor clinic"

	// Scheduling messages
	ErrDevDoctorNotFound             = "no doctor row for id"
	ErrDevPatientNotFound            = "no patient row for id in clinic"
	ErrDevAppointmentNotFound        = "no appointment row for id in clinic"
	ErrDevSlotConflict               = "requested slot overlaps an existing appointment"
	ErrDevInvalidStartTime           = "start time is not RFC3339"
	ErrDevInvalidDay                 = "day is not YYYY-MM-DD"
	ErrDevPrescriptionDoctorMismatch = "appointment belongs to a different doctor or clinic"

	// Authentication messages
	ErrDevAuthSigningMethod        = "unexpected signing method"
	ErrDevAuthTokenInvalid         = "invalid token"
	ErrDevAuthTokenMissing         = "token missing"
	ErrDevAuthTokenInvalidExpired  = "token invalid or expired"
	ErrDevAuthGenerateToken        = "failed to generate token"
	ErrDevAuthSessionNotFound      = "session not found in store"
	ErrDevAuthFailedToHashPassword = "failed to hash password"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document in database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document from database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBDuplicateKey             = "unique index violation"

	// Redis messages
	ErrDevRedisSetData    = "failed to set data into redis"
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublish = "failed to publish message to queue %s"

	// Minio messages
	ErrDevMinioCreateObject = "failed to create object in bucket %s"
)
