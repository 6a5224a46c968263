package routers

import (
	"clinicdesk-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, authController *controllers.AuthController) {
	router.Route("/auth", func(r chi.Router) {
		r.Post("/forgot-password", authController.ForgotPassword)
		r.Post("/reset-password", authController.ResetPassword)
		r.Post("/logout", authController.Logout)
		r.Post("/refresh", authController.Refresh)
		r.Get("/me", authController.Me)
		r.Put("/password", authController.UpdatePassword)
		r.Post("/profile-picture", authController.UploadProfilePicture)
	})
}
