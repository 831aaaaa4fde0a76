package repository

import (
	"context"
	"fmt"
	"strings"

	"book-my-property/internal/data/entity"
	"book-my-property/pkg/apperr"
	"book-my-property/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SearchFilter holds the optional search criteria. Absent options add no
// constraint; present ones are ANDed.
type SearchFilter struct {
	Location       mo.Option[string]
	PropertyTypeID mo.Option[int64]
	MinPrice       mo.Option[decimal.Decimal]
	MaxPrice       mo.Option[decimal.Decimal]
}

func (f SearchFilter) Validate() error {
	minPrice, hasMin := f.MinPrice.Get()
	maxPrice, hasMax := f.MaxPrice.Get()

	if hasMin && minPrice.IsNegative() {
		return apperr.InvalidArgument("min price must not be negative")
	}
	if hasMax && maxPrice.IsNegative() {
		return apperr.InvalidArgument("max price must not be negative")
	}
	if hasMin && hasMax && minPrice.GreaterThan(maxPrice) {
		return apperr.InvalidArgument("min price must not exceed max price")
	}
	if id, ok := f.PropertyTypeID.Get(); ok && id <= 0 {
		return apperr.InvalidArgument("property type must be a positive id")
	}
	return nil
}

func (f SearchFilter) where() Where {
	var ws []Where
	if loc, ok := f.Location.Get(); ok && strings.TrimSpace(loc) != "" {
		ws = append(ws, ContainsFold("l.city", strings.TrimSpace(loc)))
	}
	if id, ok := f.PropertyTypeID.Get(); ok {
		ws = append(ws, Eq("p.property_type_id", id))
	}
	if v, ok := f.MinPrice.Get(); ok {
		ws = append(ws, Gte("p.price", v))
	}
	if v, ok := f.MaxPrice.Get(); ok {
		ws = append(ws, Lte("p.price", v))
	}
	return And(ws...)
}

type PropertyRepository interface {
	SoftDeleteRepository[entity.Property]
	// ListAvailable pages through available properties, newest first.
	ListAvailable(ctx context.Context, pageNumber, pageSize int) (*Page[*entity.PropertyListing], error)
	// Search applies filter on top of the ListAvailable visibility rules.
	Search(ctx context.Context, filter SearchFilter, pageNumber, pageSize int) (*Page[*entity.PropertyListing], error)
	// GetListing returns nil, nil when the property is missing or deleted.
	GetListing(ctx context.Context, id int64) (*entity.PropertyListing, error)
	ListAmenities(ctx context.Context, propertyID int64) ([]*entity.Amenity, error)
	// SetAmenities replaces the property's amenity links with amenityIDs.
	SetAmenities(ctx context.Context, propertyID int64, amenityIDs []int64) error
}

type propertyRepository struct {
	*softDeleteRepository[entity.Property]
	amenities *softDeleteRepository[entity.Amenity]
}

func newPropertyRepository(s session, log *zap.Logger) PropertyRepository {
	return &propertyRepository{
		softDeleteRepository: newSoftDeleteRepository[entity.Property](s, propertyMapper, log),
		amenities:            newSoftDeleteRepository[entity.Amenity](s, amenityMapper, log),
	}
}

const listingFrom = "properties p " +
	"LEFT JOIN locations l ON l.id = p.location_id AND l.is_deleted = FALSE " +
	"LEFT JOIN property_types pt ON pt.id = p.property_type_id AND pt.is_deleted = FALSE"

var listingColumns = []string{
	"p.id", "p.title", "p.description", "p.price",
	"p.property_type_id", "COALESCE(pt.name, '')",
	"p.location_id", "COALESCE(l.city, '')", "COALESCE(l.state, '')",
	"p.area_sq_ft", "p.bedrooms", "p.bathrooms", "p.parking",
	"p.status", "p.is_featured", "p.agent_id",
	"(SELECT pi.image_url FROM property_images pi WHERE pi.property_id = p.id AND pi.is_deleted = FALSE " +
		"ORDER BY pi.is_primary DESC, pi.id LIMIT 1)",
	"p.created_at",
}

const listingOrder = "p.created_at DESC, p.id DESC"

func availableWhere() Where {
	return And(NotDeleted("p"), Eq("p.status", entity.PropertyStatusAvailable))
}

func scanListing(row pgx.Row) (*entity.PropertyListing, error) {
	var l entity.PropertyListing
	err := row.Scan(
		&l.ID,
		&l.Title,
		&l.Description,
		&l.Price,
		&l.PropertyTypeID,
		&l.PropertyTypeName,
		&l.LocationID,
		&l.City,
		&l.State,
		&l.AreaSqFt,
		&l.Bedrooms,
		&l.Bathrooms,
		&l.Parking,
		&l.Status,
		&l.IsFeatured,
		&l.AgentID,
		&l.PrimaryImageURL,
		&l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *propertyRepository) ListAvailable(ctx context.Context, pageNumber, pageSize int) (*Page[*entity.PropertyListing], error) {
	return r.listings(ctx, availableWhere(), pageNumber, pageSize)
}

func (r *propertyRepository) Search(ctx context.Context, filter SearchFilter, pageNumber, pageSize int) (*Page[*entity.PropertyListing], error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return r.listings(ctx, And(availableWhere(), filter.where()), pageNumber, pageSize)
}

func (r *propertyRepository) listings(ctx context.Context, where Where, pageNumber, pageSize int) (*Page[*entity.PropertyListing], error) {
	if err := ValidatePage(pageNumber, pageSize); err != nil {
		return nil, err
	}

	total, err := r.count(ctx, listingFrom, where)
	if err != nil {
		return nil, err
	}

	sql, args := Select(listingColumns...).
		From(listingFrom).
		Where(where).
		OrderBy(listingOrder).
		Page(pageNumber, pageSize).
		Build()

	rows, err := r.s.db().Query(ctx, sql, args...)
	if err != nil {
		r.log.Error("Failed to query property listings",
			zap.Error(err),
			zap.Int("page", pageNumber),
			zap.Int("page_size", pageSize),
		)
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	items := make([]*entity.PropertyListing, 0, pageSize)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			r.log.Error("Failed to scan property row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		items = append(items, l)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	r.log.Debug("Properties found",
		zap.Int("count", len(items)),
		zap.Int64("total", total),
		zap.Int("page", pageNumber),
	)

	return NewPage(items, pageNumber, pageSize, total), nil
}

func (r *propertyRepository) GetListing(ctx context.Context, id int64) (*entity.PropertyListing, error) {
	sql, args := Select(listingColumns...).
		From(listingFrom).
		Where(And(Eq("p.id", id), NotDeleted("p"))).
		Build()

	l, err := scanListing(r.s.db().QueryRow(ctx, sql, args...))
	if database.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find property listing", zap.Error(err), zap.Int64("property_id", id))
		return nil, fmt.Errorf("failed to find property: %w", err)
	}
	return l, nil
}

func (r *propertyRepository) ListAmenities(ctx context.Context, propertyID int64) ([]*entity.Amenity, error) {
	sql, args := Select(r.amenities.columns("a")...).
		From("amenities a JOIN property_amenities pa ON pa.amenity_id = a.id").
		Where(And(Eq("pa.property_id", propertyID), NotDeleted("a"))).
		OrderBy("a.name").
		Build()
	return r.amenities.queryList(ctx, sql, args...)
}

func (r *propertyRepository) SetAmenities(ctx context.Context, propertyID int64, amenityIDs []int64) error {
	tag, err := r.s.db().Exec(ctx, `DELETE FROM property_amenities WHERE property_id = $1`, propertyID)
	if err != nil {
		r.log.Error("Failed to clear property amenities", zap.Error(err), zap.Int64("property_id", propertyID))
		return fmt.Errorf("failed to clear amenities: %w", err)
	}
	r.s.track(tag.RowsAffected())

	ids := lo.Uniq(amenityIDs)
	if len(ids) == 0 {
		return nil
	}

	values := make([]string, 0, len(ids))
	args := make([]any, 0, len(ids)*2)
	for _, id := range ids {
		values = append(values, "(?, ?)")
		args = append(args, propertyID, id)
	}
	sql := rebind("INSERT INTO property_amenities (property_id, amenity_id) VALUES " + strings.Join(values, ", "))

	tag, err = r.s.db().Exec(ctx, sql, args...)
	if err != nil {
		return r.writeError("link amenities to", err)
	}
	r.s.track(tag.RowsAffected())
	return nil
}
