package response

import (
	"time"

	"book-my-property/internal/data/entity"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type WishlistResponse struct {
	ID            int64                 `json:"id"`
	PropertyID    int64                 `json:"property_id"`
	PropertyTitle string                `json:"property_title"`
	Price         decimal.Decimal       `json:"price"`
	Status        entity.PropertyStatus `json:"status"`
	City          string                `json:"city,omitempty"`
	AddedAt       time.Time             `json:"added_at"`
}

func WishlistToResponse(items []*entity.WishlistEntry) []WishlistResponse {
	return lo.Map(items, func(e *entity.WishlistEntry, _ int) WishlistResponse {
		return WishlistResponse{
			ID:            e.ID,
			PropertyID:    e.PropertyID,
			PropertyTitle: e.PropertyTitle,
			Price:         e.Price,
			Status:        e.Status,
			City:          e.City,
			AddedAt:       e.AddedAt,
		}
	})
}
