package response

import (
	"time"

	"book-my-property/internal/data/entity"

	"github.com/samber/lo"
)

type InquiryResponse struct {
	ID         int64     `json:"id"`
	PropertyID int64     `json:"property_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

func InquiryToResponse(c *entity.ContactInquiry) InquiryResponse {
	return InquiryResponse{
		ID:         c.ID,
		PropertyID: c.PropertyID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Message:    c.Message,
		CreatedAt:  c.CreatedAt,
	}
}

func InquiriesToResponse(items []*entity.ContactInquiry) []InquiryResponse {
	return lo.Map(items, func(c *entity.ContactInquiry, _ int) InquiryResponse { return InquiryToResponse(c) })
}
