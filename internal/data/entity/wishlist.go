package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Wishlist struct {
	Base
	UserID     int64 `db:"user_id"`
	PropertyID int64 `db:"property_id"`
}

// WishlistEntry is a wishlist row joined with the property it points to.
type WishlistEntry struct {
	ID            int64
	UserID        int64
	PropertyID    int64
	PropertyTitle string
	Price         decimal.Decimal
	Status        PropertyStatus
	City          string
	AddedAt       time.Time
}
