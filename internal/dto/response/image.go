package response

import (
	"time"

	"book-my-property/internal/data/entity"

	"github.com/samber/lo"
)

type ImageResponse struct {
	ID         int64     `json:"id"`
	PropertyID int64     `json:"property_id"`
	ImageURL   string    `json:"image_url"`
	IsPrimary  bool      `json:"is_primary"`
	CreatedAt  time.Time `json:"created_at"`
}

func ImageToResponse(i *entity.PropertyImage) ImageResponse {
	return ImageResponse{
		ID:         i.ID,
		PropertyID: i.PropertyID,
		ImageURL:   i.ImageURL,
		IsPrimary:  i.IsPrimary,
		CreatedAt:  i.CreatedAt,
	}
}

func ImagesToResponse(items []*entity.PropertyImage) []ImageResponse {
	return lo.Map(items, func(i *entity.PropertyImage, _ int) ImageResponse { return ImageToResponse(i) })
}
