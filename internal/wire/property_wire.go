package wire

import (
	"book-my-property/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireProperty configures listing routes: public reads, agent writes
func wireProperty(r chi.Router, h *adaptor.Handler, g guards) {
	r.Route("/api/properties", func(r chi.Router) {
		// ==================== PUBLIC ====================
		r.Get("/", h.Property.GetProperties)
		r.Get("/search", h.Property.SearchProperties)
		r.Get("/{id}", h.Property.GetProperty)
		r.Get("/{id}/amenities", h.Property.GetAmenities)
		r.Get("/{id}/images", h.Image.GetPropertyImages)

		// ==================== AGENT / ADMIN ====================
		r.Group(func(r chi.Router) {
			r.Use(g.authn, g.agent)
			r.Post("/", h.Property.CreateProperty)
			r.Put("/{id}", h.Property.UpdateProperty)
			r.Delete("/{id}", h.Property.DeleteProperty)
			r.Put("/{id}/amenities", h.Property.SetAmenities)
			r.Get("/{id}/inquiries", h.Inquiry.GetPropertyInquiries)
		})
	})

	r.With(g.authn, g.agent).Route("/api/property-images", func(r chi.Router) {
		r.Post("/", h.Image.CreateImage)
		r.Get("/{id}", h.Image.GetImage)
		r.Put("/{id}", h.Image.UpdateImage)
		r.Delete("/{id}", h.Image.DeleteImage)
	})
}
