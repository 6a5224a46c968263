package routers

import (
	"clinicdesk-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

// attachPublicRoutes covers everything reachable without a session:
// the two login surfaces, the clinic landing page and the booking flow.
func attachPublicRoutes(
	router chi.Router,
	authController *controllers.AuthController,
	organizationController *controllers.OrganizationController,
	appointmentController *controllers.AppointmentController,
) {
	router.Post("/login", authController.Login)
	router.Post("/clinic/{slug}/login", authController.LoginToClinic)
	router.Get("/clinic/{slug}", organizationController.PublicPage)

	router.Route("/book/{slug}", func(r chi.Router) {
		r.Get("/slots", appointmentController.Slots)
		r.Post("/", appointmentController.Book)
	})
}
