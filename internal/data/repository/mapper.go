package repository

import (
	"book-my-property/internal/data/entity"
)

// Mapper describes how an entity maps onto its table. Base columns are
// handled by the repository; a mapper lists only the entity's own columns.
type Mapper[T any] interface {
	Table() string
	Name() string
	Columns() []string
	Values(e *T) []any
	Targets(e *T) []any
	Base(e *T) *entity.Base
}

var baseColumns = []string{"id", "created_at", "created_by", "modified_at", "modified_by", "is_deleted"}

func baseTargets(b *entity.Base) []any {
	return []any{&b.ID, &b.CreatedAt, &b.CreatedBy, &b.ModifiedAt, &b.ModifiedBy, &b.IsDeleted}
}

type tableMapper[T any] struct {
	table   string
	name    string
	columns []string
	values  func(*T) []any
	targets func(*T) []any
	base    func(*T) *entity.Base
}

func (m tableMapper[T]) Table() string          { return m.table }
func (m tableMapper[T]) Name() string           { return m.name }
func (m tableMapper[T]) Columns() []string      { return m.columns }
func (m tableMapper[T]) Values(e *T) []any      { return m.values(e) }
func (m tableMapper[T]) Targets(e *T) []any     { return m.targets(e) }
func (m tableMapper[T]) Base(e *T) *entity.Base { return m.base(e) }

var roleMapper = tableMapper[entity.Role]{
	table:   "roles",
	name:    "role",
	columns: []string{"name"},
	values:  func(r *entity.Role) []any { return []any{r.Name} },
	targets: func(r *entity.Role) []any { return []any{&r.Name} },
	base:    func(r *entity.Role) *entity.Base { return &r.Base },
}

var userMapper = tableMapper[entity.User]{
	table:   "users",
	name:    "user",
	columns: []string{"first_name", "last_name", "email", "password_hash", "phone_number", "role_id", "is_active"},
	values: func(u *entity.User) []any {
		return []any{u.FirstName, u.LastName, u.Email, u.PasswordHash, u.PhoneNumber, u.RoleID, u.IsActive}
	},
	targets: func(u *entity.User) []any {
		return []any{&u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.PhoneNumber, &u.RoleID, &u.IsActive}
	},
	base: func(u *entity.User) *entity.Base { return &u.Base },
}

var propertyTypeMapper = tableMapper[entity.PropertyType]{
	table:   "property_types",
	name:    "property type",
	columns: []string{"name"},
	values:  func(p *entity.PropertyType) []any { return []any{p.Name} },
	targets: func(p *entity.PropertyType) []any { return []any{&p.Name} },
	base:    func(p *entity.PropertyType) *entity.Base { return &p.Base },
}

var locationMapper = tableMapper[entity.Location]{
	table:   "locations",
	name:    "location",
	columns: []string{"city", "state", "country", "zip_code"},
	values: func(l *entity.Location) []any {
		return []any{l.City, l.State, l.Country, l.ZipCode}
	},
	targets: func(l *entity.Location) []any {
		return []any{&l.City, &l.State, &l.Country, &l.ZipCode}
	},
	base: func(l *entity.Location) *entity.Base { return &l.Base },
}

var amenityMapper = tableMapper[entity.Amenity]{
	table:   "amenities",
	name:    "amenity",
	columns: []string{"name"},
	values:  func(a *entity.Amenity) []any { return []any{a.Name} },
	targets: func(a *entity.Amenity) []any { return []any{&a.Name} },
	base:    func(a *entity.Amenity) *entity.Base { return &a.Base },
}

var propertyMapper = tableMapper[entity.Property]{
	table: "properties",
	name:  "property",
	columns: []string{
		"title", "description", "price", "property_type_id", "location_id", "area_sq_ft",
		"bedrooms", "bathrooms", "parking", "status", "is_featured", "agent_id",
	},
	values: func(p *entity.Property) []any {
		return []any{
			p.Title, p.Description, p.Price, p.PropertyTypeID, p.LocationID, p.AreaSqFt,
			p.Bedrooms, p.Bathrooms, p.Parking, p.Status, p.IsFeatured, p.AgentID,
		}
	},
	targets: func(p *entity.Property) []any {
		return []any{
			&p.Title, &p.Description, &p.Price, &p.PropertyTypeID, &p.LocationID, &p.AreaSqFt,
			&p.Bedrooms, &p.Bathrooms, &p.Parking, &p.Status, &p.IsFeatured, &p.AgentID,
		}
	},
	base: func(p *entity.Property) *entity.Base { return &p.Base },
}

var propertyImageMapper = tableMapper[entity.PropertyImage]{
	table:   "property_images",
	name:    "property image",
	columns: []string{"property_id", "image_url", "is_primary"},
	values: func(i *entity.PropertyImage) []any {
		return []any{i.PropertyID, i.ImageURL, i.IsPrimary}
	},
	targets: func(i *entity.PropertyImage) []any {
		return []any{&i.PropertyID, &i.ImageURL, &i.IsPrimary}
	},
	base: func(i *entity.PropertyImage) *entity.Base { return &i.Base },
}

var contactInquiryMapper = tableMapper[entity.ContactInquiry]{
	table:   "contact_inquiries",
	name:    "inquiry",
	columns: []string{"property_id", "name", "email", "phone", "message"},
	values: func(c *entity.ContactInquiry) []any {
		return []any{c.PropertyID, c.Name, c.Email, c.Phone, c.Message}
	},
	targets: func(c *entity.ContactInquiry) []any {
		return []any{&c.PropertyID, &c.Name, &c.Email, &c.Phone, &c.Message}
	},
	base: func(c *entity.ContactInquiry) *entity.Base { return &c.Base },
}

var wishlistMapper = tableMapper[entity.Wishlist]{
	table:   "wishlists",
	name:    "wishlist item",
	columns: []string{"user_id", "property_id"},
	values:  func(w *entity.Wishlist) []any { return []any{w.UserID, w.PropertyID} },
	targets: func(w *entity.Wishlist) []any { return []any{&w.UserID, &w.PropertyID} },
	base:    func(w *entity.Wishlist) *entity.Base { return &w.Base },
}
