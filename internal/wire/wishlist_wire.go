package wire

import (
	"book-my-property/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireWishlist configures the caller's saved properties
func wireWishlist(r chi.Router, h *adaptor.WishlistHandler, g guards) {
	r.With(g.authn).Route("/api/wishlist", func(r chi.Router) {
		r.Get("/", h.GetWishlist)
		r.Post("/{propertyId}", h.AddToWishlist)
		r.Delete("/{propertyId}", h.RemoveFromWishlist)
	})
}
