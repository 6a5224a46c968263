package config

import (
	"clinicdesk-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "clinicdesk"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "clinicdesk"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                                 utils.GetEnvString("APP_ENV", "development"),
			Port:                                utils.GetEnvString("APP_PORT", ":8080"),
			Version:                             utils.GetEnvString("APP_VERSION", "v1"),
			BaseUrl:                             utils.GetEnvString("APP_BASE_URL", "http://localhost:8080"),
			Timezone:                            utils.GetEnvString("APP_TIMEZONE", "Asia/Jakarta"),
			EndpointPrefix:                      utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			FrontendDomain:                      utils.GetEnvString("APP_FRONTEND_DOMAIN", "http://localhost:3000"),
			MaxRequests:                         utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeoutInSeconds:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			LoginSessionExpiredTimeInHours:      utils.GetEnvInt("APP_LOGIN_SESSION_EXPIRED_TIME_IN_HOURS", 12),
			LoginAttemptsPerMinute:              utils.GetEnvInt("APP_LOGIN_ATTEMPTS_PER_MINUTE", 5),
			ResetPasswordTokenExpTimeInMinutes:  utils.GetEnvInt("APP_RESET_PASSWORD_TOKEN_EXP_TIME_IN_MINUTES", 30),
			RequestBodyLimitInMegabyte:          utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			ProfilePictureMaxUploadSizeInMB:     utils.GetEnvInt64("APP_PROFILE_PICTURE_UPLOAD_MAX_SIZE_IN_MB", 2),
			RabbitMQMailerQueue:                 utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "clinicdesk-mailer"),
			DefaultAppointmentDurationInMinutes: utils.GetEnvInt("APP_DEFAULT_APPOINTMENT_DURATION_IN_MINUTES", 30),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 12),
		},
		Mailer: Mailer{
			EmailSender:      utils.GetEnvString("MAILER_EMAIL_SENDER", "no-reply@clinicdesk.local"),
			ResetPasswordUrl: utils.GetEnvString("MAILER_RESET_PASSWORD_URL", "http://localhost:3000/reset-password"),
		},
	}
}
