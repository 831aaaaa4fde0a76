package wire

import (
	"book-my-property/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireInquiry configures contact inquiries: anyone may send, agents read, admins delete
func wireInquiry(r chi.Router, h *adaptor.InquiryHandler, g guards) {
	r.Route("/api/inquiries", func(r chi.Router) {
		r.Post("/", h.CreateInquiry)

		r.Group(func(r chi.Router) {
			r.Use(g.authn, g.agent)
			r.Get("/", h.GetInquiries)
			r.Get("/{id}", h.GetInquiry)
		})

		r.With(g.authn, g.admin).Delete("/{id}", h.DeleteInquiry)
	})
}
