package adaptor

import (
	"net/http"

	"book-my-property/internal/dto/request"
	"book-my-property/internal/usecase"
	"book-my-property/pkg/utils"

	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// ------------- Locations -------------

func (h *CatalogHandler) GetLocations(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.ListLocations(r.Context(), pageRequest(r))
	if err != nil {
		writeError(w, r, h.log, err, "list locations")
		return
	}
	utils.ResponsePaginated(w, "success", page.Data, page.Pagination)
}

func (h *CatalogHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	loc, err := h.service.GetLocation(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err, "get location")
		return
	}
	utils.ResponseSuccess(w, "success", loc)
}

func (h *CatalogHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req request.LocationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	loc, err := h.service.CreateLocation(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, err, "create location")
		return
	}
	utils.ResponseCreated(w, "Location created", loc)
}

func (h *CatalogHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req request.LocationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	loc, err := h.service.UpdateLocation(r.Context(), id, &req)
	if err != nil {
		writeError(w, r, h.log, err, "update location")
		return
	}
	utils.ResponseSuccess(w, "Location updated", loc)
}

func (h *CatalogHandler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteLocation(r.Context(), id); err != nil {
		writeError(w, r, h.log, err, "delete location")
		return
	}
	utils.ResponseSuccess(w, "Location deleted", nil)
}

// ------------- Amenities -------------

func (h *CatalogHandler) GetAmenities(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.ListAmenities(r.Context(), pageRequest(r))
	if err != nil {
		writeError(w, r, h.log, err, "list amenities")
		return
	}
	utils.ResponsePaginated(w, "success", page.Data, page.Pagination)
}

func (h *CatalogHandler) GetAmenity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	a, err := h.service.GetAmenity(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err, "get amenity")
		return
	}
	utils.ResponseSuccess(w, "success", a)
}

func (h *CatalogHandler) CreateAmenity(w http.ResponseWriter, r *http.Request) {
	var req request.AmenityRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	a, err := h.service.CreateAmenity(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, err, "create amenity")
		return
	}
	utils.ResponseCreated(w, "Amenity created", a)
}

func (h *CatalogHandler) UpdateAmenity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req request.AmenityRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	a, err := h.service.UpdateAmenity(r.Context(), id, &req)
	if err != nil {
		writeError(w, r, h.log, err, "update amenity")
		return
	}
	utils.ResponseSuccess(w, "Amenity updated", a)
}

func (h *CatalogHandler) DeleteAmenity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteAmenity(r.Context(), id); err != nil {
		writeError(w, r, h.log, err, "delete amenity")
		return
	}
	utils.ResponseSuccess(w, "Amenity deleted", nil)
}

// ------------- Property types -------------

func (h *CatalogHandler) GetPropertyTypes(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.ListPropertyTypes(r.Context(), pageRequest(r))
	if err != nil {
		writeError(w, r, h.log, err, "list property types")
		return
	}
	utils.ResponsePaginated(w, "success", page.Data, page.Pagination)
}

func (h *CatalogHandler) GetPropertyType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	t, err := h.service.GetPropertyType(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err, "get property type")
		return
	}
	utils.ResponseSuccess(w, "success", t)
}

func (h *CatalogHandler) CreatePropertyType(w http.ResponseWriter, r *http.Request) {
	var req request.PropertyTypeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	t, err := h.service.CreatePropertyType(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, err, "create property type")
		return
	}
	utils.ResponseCreated(w, "Property type created", t)
}

func (h *CatalogHandler) UpdatePropertyType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req request.PropertyTypeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	t, err := h.service.UpdatePropertyType(r.Context(), id, &req)
	if err != nil {
		writeError(w, r, h.log, err, "update property type")
		return
	}
	utils.ResponseSuccess(w, "Property type updated", t)
}

func (h *CatalogHandler) DeletePropertyType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.DeletePropertyType(r.Context(), id); err != nil {
		writeError(w, r, h.log, err, "delete property type")
		return
	}
	utils.ResponseSuccess(w, "Property type deleted", nil)
}
