package routers

import (
	"clinicdesk-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(
	router chi.Router,
	dashboardController *controllers.DashboardController,
	staffController *controllers.StaffController,
	patientController *controllers.PatientController,
	appointmentController *controllers.AppointmentController,
	prescriptionController *controllers.PrescriptionController,
) {
	router.Route("/doctor", func(r chi.Router) {
		r.Get("/dashboard", dashboardController.Doctor)

		r.Route("/staff", func(r chi.Router) {
			r.Get("/", staffController.ListStaff)
			r.Post("/doctors", staffController.CreateDoctor)
			r.Post("/assistants", staffController.CreateAssistant)
		})

		r.Route("/appointments", func(r chi.Router) {
			r.Get("/", appointmentController.FindForDoctor)
			r.Put("/{appointmentID}", appointmentController.UpdateStatus)
		})

		r.Route("/patients", func(r chi.Router) {
			r.Post("/", patientController.Create)
			r.Get("/", patientController.FindByClinic)
			r.Get("/{patientID}", patientController.FindByID)
		})

		r.Route("/prescriptions", func(r chi.Router) {
			r.Post("/", prescriptionController.Create)
			r.Get("/", prescriptionController.FindForClinic)
			r.Get("/appointment/{appointmentID}", prescriptionController.FindForAppointment)
		})
	})
}
