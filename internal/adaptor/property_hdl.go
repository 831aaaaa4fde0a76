package adaptor

import (
	"net/http"
	"strconv"
	"strings"

	"book-my-property/internal/dto/request"
	"book-my-property/internal/usecase"
	"book-my-property/pkg/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type PropertyHandler struct {
	service usecase.PropertyService
	log     *zap.Logger
}

func NewPropertyHandler(service usecase.PropertyService, log *zap.Logger) *PropertyHandler {
	return &PropertyHandler{
		service: service,
		log:     log.With(zap.String("handler", "property")),
	}
}

// GetProperties handles GET /api/properties
func (h *PropertyHandler) GetProperties(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.ListAvailable(r.Context(), pageRequest(r))
	if err != nil {
		writeError(w, r, h.log, err, "list properties")
		return
	}

	utils.ResponsePaginated(w, "success", page.Data, page.Pagination)
}

// SearchProperties handles GET /api/properties/search
func (h *PropertyHandler) SearchProperties(w http.ResponseWriter, r *http.Request) {
	req, fields := parseSearch(r)
	if len(fields) > 0 {
		utils.ResponseBadRequest(w, "Invalid search parameters", fields)
		return
	}

	page, err := h.service.Search(r.Context(), req)
	if err != nil {
		writeError(w, r, h.log, err, "search properties")
		return
	}

	utils.ResponsePaginated(w, "success", page.Data, page.Pagination)
}

func parseSearch(r *http.Request) (*request.SearchPropertyRequest, map[string]string) {
	q := r.URL.Query()
	fields := make(map[string]string)

	req := &request.SearchPropertyRequest{PaginatedRequest: pageRequest(r)}

	if loc := strings.TrimSpace(q.Get("location")); loc != "" {
		req.Location = &loc
	}

	if raw := q.Get("property_type"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			fields["property_type"] = "Must be a number"
		} else {
			req.PropertyTypeID = &id
		}
	}

	parsePrice := func(name string) *decimal.Decimal {
		raw := q.Get(name)
		if raw == "" {
			return nil
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			fields[name] = "Must be a decimal number"
			return nil
		}
		return &d
	}
	req.MinPrice = parsePrice("min_price")
	req.MaxPrice = parsePrice("max_price")

	return req, fields
}

// GetProperty handles GET /api/properties/{id}
func (h *PropertyHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	property, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err, "get property")
		return
	}

	utils.ResponseSuccess(w, "success", property)
}

// CreateProperty handles POST /api/properties
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePropertyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	property, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, err, "create property")
		return
	}

	utils.ResponseCreated(w, "Property created", property)
}

// UpdateProperty handles PUT /api/properties/{id}
func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.UpdatePropertyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	property, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, r, h.log, err, "update property")
		return
	}

	utils.ResponseSuccess(w, "Property updated", property)
}

// DeleteProperty handles DELETE /api/properties/{id}
func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.log, err, "delete property")
		return
	}

	utils.ResponseSuccess(w, "Property deleted", nil)
}

// GetAmenities handles GET /api/properties/{id}/amenities
func (h *PropertyHandler) GetAmenities(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	amenities, err := h.service.ListAmenities(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err, "list property amenities")
		return
	}

	utils.ResponseSuccess(w, "success", amenities)
}

// SetAmenities handles PUT /api/properties/{id}/amenities
func (h *PropertyHandler) SetAmenities(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.SetAmenitiesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	amenities, err := h.service.SetAmenities(r.Context(), id, &req)
	if err != nil {
		writeError(w, r, h.log, err, "set property amenities")
		return
	}

	utils.ResponseSuccess(w, "Amenities updated", amenities)
}
