package adaptor

import (
	"net/http"

	"book-my-property/internal/dto/request"
	"book-my-property/internal/usecase"
	"book-my-property/pkg/utils"

	"go.uber.org/zap"
)

type InquiryHandler struct {
	service usecase.InquiryService
	log     *zap.Logger
}

func NewInquiryHandler(service usecase.InquiryService, log *zap.Logger) *InquiryHandler {
	return &InquiryHandler{
		service: service,
		log:     log.With(zap.String("handler", "inquiry")),
	}
}

// CreateInquiry handles POST /api/inquiries
func (h *InquiryHandler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	var req request.CreateInquiryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	inquiry, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, err, "create inquiry")
		return
	}

	utils.ResponseCreated(w, "Inquiry sent", inquiry)
}

// GetInquiries handles GET /api/inquiries
func (h *InquiryHandler) GetInquiries(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(r.Context(), pageRequest(r))
	if err != nil {
		writeError(w, r, h.log, err, "list inquiries")
		return
	}

	utils.ResponsePaginated(w, "success", page.Data, page.Pagination)
}

// GetPropertyInquiries handles GET /api/properties/{id}/inquiries
func (h *InquiryHandler) GetPropertyInquiries(w http.ResponseWriter, r *http.Request) {
	propertyID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	inquiries, err := h.service.ListByProperty(r.Context(), propertyID)
	if err != nil {
		writeError(w, r, h.log, err, "list property inquiries")
		return
	}

	utils.ResponseSuccess(w, "success", inquiries)
}

// GetInquiry handles GET /api/inquiries/{id}
func (h *InquiryHandler) GetInquiry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	inquiry, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err, "get inquiry")
		return
	}

	utils.ResponseSuccess(w, "success", inquiry)
}

// DeleteInquiry handles DELETE /api/inquiries/{id}
func (h *InquiryHandler) DeleteInquiry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.log, err, "delete inquiry")
		return
	}

	utils.ResponseSuccess(w, "Inquiry deleted", nil)
}
