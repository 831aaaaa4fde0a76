package adaptor

import (
	"net/http"

	"book-my-property/internal/usecase"
	"book-my-property/pkg/utils"

	"go.uber.org/zap"
)

type WishlistHandler struct {
	service usecase.WishlistService
	log     *zap.Logger
}

func NewWishlistHandler(service usecase.WishlistService, log *zap.Logger) *WishlistHandler {
	return &WishlistHandler{
		service: service,
		log:     log.With(zap.String("handler", "wishlist")),
	}
}

// GetWishlist handles GET /api/wishlist
func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, r, h.log, err, "list wishlist")
		return
	}

	utils.ResponseSuccess(w, "success", entries)
}

// AddToWishlist handles POST /api/wishlist/{propertyId}
func (h *WishlistHandler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	propertyID, ok := pathID(w, r, "propertyId")
	if !ok {
		return
	}

	if err := h.service.Add(r.Context(), propertyID); err != nil {
		writeError(w, r, h.log, err, "add to wishlist")
		return
	}

	utils.ResponseCreated(w, "Added to wishlist", nil)
}

// RemoveFromWishlist handles DELETE /api/wishlist/{propertyId}
func (h *WishlistHandler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	propertyID, ok := pathID(w, r, "propertyId")
	if !ok {
		return
	}

	if err := h.service.Remove(r.Context(), propertyID); err != nil {
		writeError(w, r, h.log, err, "remove from wishlist")
		return
	}

	utils.ResponseSuccess(w, "Removed from wishlist", nil)
}
