package routers

import (
	"clinicdesk-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

// Assistants see the whole clinic schedule but cannot prescribe or
// manage staff.
func attachAssistantRoutes(
	router chi.Router,
	dashboardController *controllers.DashboardController,
	patientController *controllers.PatientController,
	appointmentController *controllers.AppointmentController,
	prescriptionController *controllers.PrescriptionController,
) {
	router.Route("/assistant", func(r chi.Router) {
		r.Get("/dashboard", dashboardController.Assistant)

		r.Route("/appointments", func(r chi.Router) {
			r.Get("/", appointmentController.FindForClinic)
			r.Put("/{appointmentID}", appointmentController.UpdateStatus)
		})

		r.Route("/patients", func(r chi.Router) {
			r.Post("/", patientController.Create)
			r.Get("/", patientController.FindByClinic)
			r.Get("/{patientID}", patientController.FindByID)
		})

		r.Get("/prescriptions/appointment/{appointmentID}", prescriptionController.FindForAppointment)
	})
}
