package wire

import (
	"book-my-property/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireUser configures user management routes with role-based access control
func wireUser(r chi.Router, userHandler *adaptor.UserHandler, g guards) {
	r.With(g.authn).Route("/api/users", func(r chi.Router) {
		// ==================== OWN PROFILE ====================
		r.Get("/me", userHandler.GetProfile)
		r.Put("/me", userHandler.UpdateProfile)

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(g.admin)
			r.Get("/", userHandler.GetAllUsers) // GET /api/users?page=1&per_page=10&include_deleted=true
			r.Get("/{id}", userHandler.GetUser)
			r.Patch("/{id}/active", userHandler.SetActive)
			r.Delete("/{id}", userHandler.DeleteUser)
		})
	})
}
