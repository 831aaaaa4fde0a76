package response

import (
	"time"

	"book-my-property/internal/data/entity"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type PropertyResponse struct {
	ID               int64                 `json:"id"`
	Title            string                `json:"title"`
	Description      string                `json:"description"`
	Price            decimal.Decimal       `json:"price"`
	PropertyTypeID   int64                 `json:"property_type_id"`
	PropertyTypeName string                `json:"property_type,omitempty"`
	LocationID       int64                 `json:"location_id"`
	City             string                `json:"city,omitempty"`
	State            string                `json:"state,omitempty"`
	AreaSqFt         float64               `json:"area_sq_ft"`
	Bedrooms         int                   `json:"bedrooms"`
	Bathrooms        int                   `json:"bathrooms"`
	Parking          int                   `json:"parking"`
	Status           entity.PropertyStatus `json:"status"`
	IsFeatured       bool                  `json:"is_featured"`
	AgentID          int64                 `json:"agent_id"`
	PrimaryImageURL  *string               `json:"primary_image_url,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
}

func ListingToResponse(l *entity.PropertyListing) PropertyResponse {
	return PropertyResponse{
		ID:               l.ID,
		Title:            l.Title,
		Description:      l.Description,
		Price:            l.Price,
		PropertyTypeID:   l.PropertyTypeID,
		PropertyTypeName: l.PropertyTypeName,
		LocationID:       l.LocationID,
		City:             l.City,
		State:            l.State,
		AreaSqFt:         l.AreaSqFt,
		Bedrooms:         l.Bedrooms,
		Bathrooms:        l.Bathrooms,
		Parking:          l.Parking,
		Status:           l.Status,
		IsFeatured:       l.IsFeatured,
		AgentID:          l.AgentID,
		PrimaryImageURL:  l.PrimaryImageURL,
		CreatedAt:        l.CreatedAt,
	}
}

func ListingsToResponse(items []*entity.PropertyListing) []PropertyResponse {
	return lo.Map(items, func(l *entity.PropertyListing, _ int) PropertyResponse {
		return ListingToResponse(l)
	})
}

func PropertyToResponse(p *entity.Property) PropertyResponse {
	return PropertyResponse{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		Price:          p.Price,
		PropertyTypeID: p.PropertyTypeID,
		LocationID:     p.LocationID,
		AreaSqFt:       p.AreaSqFt,
		Bedrooms:       p.Bedrooms,
		Bathrooms:      p.Bathrooms,
		Parking:        p.Parking,
		Status:         p.Status,
		IsFeatured:     p.IsFeatured,
		AgentID:        p.AgentID,
		CreatedAt:      p.CreatedAt,
	}
}
