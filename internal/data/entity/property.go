package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "Available"
	PropertyStatusPending   PropertyStatus = "Pending"
	PropertyStatusSold      PropertyStatus = "Sold"
	PropertyStatusRented    PropertyStatus = "Rented"
)

type Property struct {
	Base
	Title          string          `db:"title"`
	Description    string          `db:"description"`
	Price          decimal.Decimal `db:"price"`
	PropertyTypeID int64           `db:"property_type_id"`
	LocationID     int64           `db:"location_id"`
	AreaSqFt       float64         `db:"area_sq_ft"`
	Bedrooms       int             `db:"bedrooms"`
	Bathrooms      int             `db:"bathrooms"`
	Parking        int             `db:"parking"`
	Status         PropertyStatus  `db:"status"`
	IsFeatured     bool            `db:"is_featured"`
	AgentID        int64           `db:"agent_id"`
}

// PropertyListing is a property row joined with the names shown in lists.
type PropertyListing struct {
	ID               int64
	Title            string
	Description      string
	Price            decimal.Decimal
	PropertyTypeID   int64
	PropertyTypeName string
	LocationID       int64
	City             string
	State            string
	AreaSqFt         float64
	Bedrooms         int
	Bathrooms        int
	Parking          int
	Status           PropertyStatus
	IsFeatured       bool
	AgentID          int64
	PrimaryImageURL  *string
	CreatedAt        time.Time
}

// PropertyAmenity links a property to an amenity. Rows are replaced as a set.
type PropertyAmenity struct {
	PropertyID int64 `db:"property_id"`
	AmenityID  int64 `db:"amenity_id"`
}

type PropertyImage struct {
	Base
	PropertyID int64  `db:"property_id"`
	ImageURL   string `db:"image_url"`
	IsPrimary  bool   `db:"is_primary"`
}
