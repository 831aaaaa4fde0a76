package repository

import (
	"testing"
	"time"

	"book-my-property/internal/data/entity"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newMockUnitOfWork(t *testing.T) (*unitOfWork, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	uow := newUnitOfWork(mock, func() time.Time { return fixedNow }, zap.NewNop())
	return uow, mock
}

var amenityRowColumns = []string{"id", "created_at", "created_by", "modified_at", "modified_by", "is_deleted", "name"}

func amenityRows(ids ...int64) *pgxmock.Rows {
	rows := pgxmock.NewRows(amenityRowColumns)
	for _, id := range ids {
		rows.AddRow(id, fixedNow, nil, nil, nil, false, "Amenity")
	}
	return rows
}

var listingRowColumns = []string{
	"id", "title", "description", "price", "property_type_id", "type_name",
	"location_id", "city", "state", "area_sq_ft", "bedrooms", "bathrooms", "parking",
	"status", "is_featured", "agent_id", "primary_image", "created_at",
}

func listingRow(rows *pgxmock.Rows, l entity.PropertyListing) *pgxmock.Rows {
	return rows.AddRow(
		l.ID, l.Title, l.Description, l.Price, l.PropertyTypeID, l.PropertyTypeName,
		l.LocationID, l.City, l.State, l.AreaSqFt, l.Bedrooms, l.Bathrooms, l.Parking,
		l.Status, l.IsFeatured, l.AgentID, l.PrimaryImageURL, l.CreatedAt,
	)
}
