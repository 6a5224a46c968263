package routers

import (
	"clinicdesk-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachSuperadminRoutes(
	router chi.Router,
	dashboardController *controllers.DashboardController,
	organizationController *controllers.OrganizationController,
	accountController *controllers.AccountController,
) {
	router.Route("/superadmin", func(r chi.Router) {
		r.Get("/dashboard", dashboardController.Superadmin)

		r.Route("/organizations", func(r chi.Router) {
			r.Post("/", organizationController.Create)
			r.Get("/", organizationController.FindAll)
			r.Get("/{orgID}", organizationController.FindByID)
			r.Put("/{orgID}", organizationController.Update)
			r.Put("/{orgID}/owner", organizationController.SetOwner)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", accountController.CreateUser)
			r.Get("/", accountController.FindAllUsers)
			r.Get("/{profileID}", accountController.FindUserByID)
			r.Put("/{profileID}", accountController.UpdateUser)
			r.Post("/{profileID}/reset-password", accountController.ResetUserPassword)
			r.Delete("/{profileID}", accountController.DeactivateUser)
		})
	})
}
