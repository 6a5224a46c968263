package routers

import (
	"clinicdesk-service/internal/app/config"
	"clinicdesk-service/internal/app/delivery/http/controllers"
	"clinicdesk-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// SetupRoutes mounts every surface at the root so request paths match
// the gate's path conventions exactly.
func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	organizationController *controllers.OrganizationController,
	accountController *controllers.AccountController,
	staffController *controllers.StaffController,
	patientController *controllers.PatientController,
	appointmentController *controllers.AppointmentController,
	prescriptionController *controllers.PrescriptionController,
	dashboardController *controllers.DashboardController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RateLimiter())
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.BodyLimit)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.Authentication)
	router.Use(middlewares.Gatekeeper)

	attachPublicRoutes(router, authController, organizationController, appointmentController)
	attachAuthRoutes(router, authController)
	attachSuperadminRoutes(router, dashboardController, organizationController, accountController)
	attachDoctorRoutes(router, dashboardController, staffController, patientController, appointmentController, prescriptionController)
	attachAssistantRoutes(router, dashboardController, patientController, appointmentController, prescriptionController)

	router.Get("/dashboard", dashboardController.Fallback)
}
