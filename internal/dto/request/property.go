package request

import (
	"book-my-property/internal/data/entity"

	"github.com/shopspring/decimal"
)

type CreatePropertyRequest struct {
	Title          string                `json:"title" validate:"required,max=200"`
	Description    string                `json:"description" validate:"max=4000"`
	Price          decimal.Decimal       `json:"price" validate:"decimal2,gt=0"`
	PropertyTypeID int64                 `json:"property_type_id" validate:"required,gt=0"`
	LocationID     int64                 `json:"location_id" validate:"required,gt=0"`
	AreaSqFt       float64               `json:"area_sq_ft" validate:"gte=0"`
	Bedrooms       int                   `json:"bedrooms" validate:"gte=0,lte=50"`
	Bathrooms      int                   `json:"bathrooms" validate:"gte=0,lte=50"`
	Parking        int                   `json:"parking" validate:"gte=0,lte=50"`
	Status         entity.PropertyStatus `json:"status" validate:"omitempty,oneof=Available Pending Sold Rented"`
	IsFeatured     bool                  `json:"is_featured"`
	AmenityIDs     []int64               `json:"amenity_ids" validate:"omitempty,dive,gt=0"`
	ImageURLs      []string              `json:"image_urls" validate:"omitempty,max=20,dive,url"`
}

type UpdatePropertyRequest struct {
	Title          string                `json:"title" validate:"required,max=200"`
	Description    string                `json:"description" validate:"max=4000"`
	Price          decimal.Decimal       `json:"price" validate:"decimal2,gt=0"`
	PropertyTypeID int64                 `json:"property_type_id" validate:"required,gt=0"`
	LocationID     int64                 `json:"location_id" validate:"required,gt=0"`
	AreaSqFt       float64               `json:"area_sq_ft" validate:"gte=0"`
	Bedrooms       int                   `json:"bedrooms" validate:"gte=0,lte=50"`
	Bathrooms      int                   `json:"bathrooms" validate:"gte=0,lte=50"`
	Parking        int                   `json:"parking" validate:"gte=0,lte=50"`
	Status         entity.PropertyStatus `json:"status" validate:"required,oneof=Available Pending Sold Rented"`
	IsFeatured     bool                  `json:"is_featured"`
}

type SetAmenitiesRequest struct {
	AmenityIDs []int64 `json:"amenity_ids" validate:"dive,gt=0"`
}

// SearchPropertyRequest is built from query parameters; nil means not given.
type SearchPropertyRequest struct {
	Location       *string
	PropertyTypeID *int64
	MinPrice       *decimal.Decimal
	MaxPrice       *decimal.Decimal
	PaginatedRequest
}
