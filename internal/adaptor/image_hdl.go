package adaptor

import (
	"net/http"

	"book-my-property/internal/dto/request"
	"book-my-property/internal/usecase"
	"book-my-property/pkg/utils"

	"go.uber.org/zap"
)

type ImageHandler struct {
	service usecase.ImageService
	log     *zap.Logger
}

func NewImageHandler(service usecase.ImageService, log *zap.Logger) *ImageHandler {
	return &ImageHandler{
		service: service,
		log:     log.With(zap.String("handler", "image")),
	}
}

// GetPropertyImages handles GET /api/properties/{id}/images
func (h *ImageHandler) GetPropertyImages(w http.ResponseWriter, r *http.Request) {
	propertyID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	images, err := h.service.ListByProperty(r.Context(), propertyID)
	if err != nil {
		writeError(w, r, h.log, err, "list property images")
		return
	}

	utils.ResponseSuccess(w, "success", images)
}

// GetImage handles GET /api/property-images/{id}
func (h *ImageHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	image, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err, "get image")
		return
	}

	utils.ResponseSuccess(w, "success", image)
}

// CreateImage handles POST /api/property-images
func (h *ImageHandler) CreateImage(w http.ResponseWriter, r *http.Request) {
	var req request.CreateImageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	image, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, err, "create image")
		return
	}

	utils.ResponseCreated(w, "Image added", image)
}

// UpdateImage handles PUT /api/property-images/{id}
func (h *ImageHandler) UpdateImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.UpdateImageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	image, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, r, h.log, err, "update image")
		return
	}

	utils.ResponseSuccess(w, "Image updated", image)
}

// DeleteImage handles DELETE /api/property-images/{id}
func (h *ImageHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.log, err, "delete image")
		return
	}

	utils.ResponseSuccess(w, "Image deleted", nil)
}
