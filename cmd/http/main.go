package main

import (
	"clinicdesk-service/internal/app/config"
	"clinicdesk-service/internal/app/delivery/http/controllers"
	"clinicdesk-service/internal/app/delivery/http/middlewares"
	"clinicdesk-service/internal/app/delivery/http/routers"
	"clinicdesk-service/internal/app/drivers/database"
	"clinicdesk-service/internal/app/drivers/logger"
	"clinicdesk-service/internal/app/drivers/messaging"
	"clinicdesk-service/internal/app/drivers/storage"
	"clinicdesk-service/internal/app/services/core/accounts"
	"clinicdesk-service/internal/app/services/core/appointments"
	"clinicdesk-service/internal/app/services/core/auth"
	"clinicdesk-service/internal/app/services/core/directory"
	"clinicdesk-service/internal/app/services/core/gate"
	"clinicdesk-service/internal/app/services/core/organizations"
	"clinicdesk-service/internal/app/services/core/patients"
	"clinicdesk-service/internal/app/services/core/prescriptions"
	"clinicdesk-service/internal/app/services/core/staff"
	"clinicdesk-service/internal/app/services/shared/mailer"
	"clinicdesk-service/internal/app/services/shared/redis"
	sharedstorage "clinicdesk-service/internal/app/services/shared/storage"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQConnection(driverConfig)
	minioClient := storage.NewMinioClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(bootstrap, minioClient)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()
	logrus.Printf("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Error closing connections: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap, minioClient *minio.Client) {
	// Shared infrastructure
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	minioStorage := sharedstorage.NewMinioStorage(minioClient, bootstrap.DriverConfig.Minio.BucketName)
	mailPublisher := mailer.NewRabbitMQPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.RabbitMQMailerQueue)

	// Repositories
	dbName := bootstrap.DriverConfig.MongoDB.DbName
	profileRepository := directory.NewProfileMongoRepository(bootstrap.MongoDB, dbName)
	doctorRepository := directory.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	assistantRepository := directory.NewAssistantMongoRepository(bootstrap.MongoDB, dbName)
	organizationRepository := organizations.NewOrganizationMongoRepository(bootstrap.MongoDB, dbName)
	patientRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	prescriptionRepository := prescriptions.NewPrescriptionMongoRepository(bootstrap.MongoDB, dbName)

	// Identity and directory
	identityProvider := auth.NewIdentityProvider(bootstrap.MongoDB, dbName, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	directoryUsecase := directory.NewDirectoryUsecase(profileRepository, doctorRepository, assistantRepository, organizationRepository, bootstrap.Logger)
	directoryGuard := directory.NewDirectoryGuard(directoryUsecase, bootstrap.Logger)
	sessionSynchronizer := directory.NewSessionSynchronizer(identityProvider, organizationRepository, bootstrap.Logger)

	// Usecases
	staffUsecase := staff.NewStaffUsecase(identityProvider, profileRepository, doctorRepository, assistantRepository, organizationRepository, bootstrap.Logger)
	authUsecase := auth.NewAuthUsecase(
		identityProvider,
		directoryUsecase,
		sessionSynchronizer,
		staffUsecase,
		profileRepository,
		organizationRepository,
		redisRepository,
		mailPublisher,
		minioStorage,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	organizationUsecase := organizations.NewOrganizationUsecase(organizationRepository, doctorRepository, profileRepository, bootstrap.Logger)
	accountUsecase := accounts.NewAccountUsecase(identityProvider, profileRepository, organizationRepository, bootstrap.Logger)
	patientUsecase := patients.NewPatientUsecase(patientRepository, profileRepository, bootstrap.Logger)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentRepository, organizationRepository, doctorRepository, bootstrap.InternalConfig, bootstrap.Logger)
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(prescriptionRepository, appointmentRepository, bootstrap.Logger)

	// Gate and middlewares
	requestGate, err := gate.NewGate()
	if err != nil {
		logrus.Fatalf("Error building request gate: %v", err)
	}
	middlewareInstance := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig, identityProvider, requestGate)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewareInstance,
		controllers.NewAuthController(bootstrap.Logger, authUsecase),
		controllers.NewOrganizationController(bootstrap.Logger, organizationUsecase, directoryGuard),
		controllers.NewAccountController(bootstrap.Logger, accountUsecase, directoryGuard),
		controllers.NewStaffController(bootstrap.Logger, staffUsecase, directoryGuard),
		controllers.NewPatientController(bootstrap.Logger, patientUsecase, directoryGuard),
		controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase, directoryGuard),
		controllers.NewPrescriptionController(bootstrap.Logger, prescriptionUsecase, directoryGuard),
		controllers.NewDashboardController(bootstrap.Logger, directoryUsecase, directoryGuard, sessionSynchronizer),
	)
}
