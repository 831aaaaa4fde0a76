package wire

import (
	"book-my-property/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireAuth configures public authentication routes
func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, g guards) {
	r.With(g.rateLimit).Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})
}
