package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
)

type InternalConfig struct {
	App    App
	JWT    JWT
	Mailer Mailer
}

type App struct {
	Env                                 string
	Port                                string
	Version                             string
	BaseUrl                             string
	Timezone                            string
	EndpointPrefix                      string
	FrontendDomain                      string
	MaxRequests                         int
	ShutdownTimeoutInSeconds            int
	LoginSessionExpiredTimeInHours      int
	LoginAttemptsPerMinute              int
	ResetPasswordTokenExpTimeInMinutes  int
	RequestBodyLimitInMegabyte          int
	ProfilePictureMaxUploadSizeInMB     int64
	RabbitMQMailerQueue                 string
	DefaultAppointmentDurationInMinutes int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}

type Mailer struct {
	EmailSender      string
	ResetPasswordUrl string
}
