package usecase

import (
	"context"
	"testing"

	"book-my-property/internal/data/entity"
	"book-my-property/internal/data/repository"
	"book-my-property/internal/data/repository/mocks"
	"book-my-property/internal/dto/request"
	"book-my-property/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCatalogService_Locations(t *testing.T) {
	ctx := asUser(1, entity.RoleAdmin)

	t.Run("list pages", func(t *testing.T) {
		store := mocks.NewMockStore()
		locs := []*entity.Location{{Base: entity.Base{ID: 1}, City: "Mumbai"}, {Base: entity.Base{ID: 2}, City: "Pune"}}
		store.UoW.LocationRepo.On("GetPaged", mockCtx, 1, 2).Return(repository.NewPage(locs, 1, 2, 4), nil)

		resp, err := NewCatalogService(store, zap.NewNop()).ListLocations(ctx, request.PaginatedRequest{Page: 1, PerPage: 2})

		require.NoError(t, err)
		assert.Len(t, resp.Data, 2)
		assert.Equal(t, 2, resp.Pagination.TotalPages)
	})

	t.Run("invalid page is passed through", func(t *testing.T) {
		store := mocks.NewMockStore()
		store.UoW.LocationRepo.On("GetPaged", mockCtx, 0, 10).
			Return(nil, apperr.InvalidArgument("page number must be at least 1"))

		_, err := NewCatalogService(store, zap.NewNop()).ListLocations(ctx, request.PaginatedRequest{Page: 0, PerPage: 10})

		assert.True(t, apperr.Is(err, apperr.KindInvalidArgument))
	})

	t.Run("create trims input", func(t *testing.T) {
		store := mocks.NewMockStore()
		store.UoW.LocationRepo.On("Add", mockCtx, mock.MatchedBy(func(l *entity.Location) bool {
			return l.City == "Goa" && l.Country == "India"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Location).ID = 5
		}).Return(nil)

		resp, err := NewCatalogService(store, zap.NewNop()).CreateLocation(ctx, &request.LocationRequest{
			City: " Goa ", State: "GA", Country: "India", ZipCode: "403001",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.ID)
		assert.Equal(t, "Goa", resp.City)
	})

	t.Run("delete missing", func(t *testing.T) {
		store := mocks.NewMockStore()
		store.UoW.LocationRepo.On("DeleteByID", mockCtx, int64(8)).Return(false, nil)

		err := NewCatalogService(store, zap.NewNop()).DeleteLocation(ctx, 8)

		assert.True(t, apperr.Is(err, apperr.KindNotFound))
	})
}

func TestCatalogService_Amenities(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate name", func(t *testing.T) {
		store := mocks.NewMockStore()
		store.UoW.AmenityRepo.On("Add", mockCtx, mock.Anything).Return(apperr.Conflict("amenity already exists"))

		_, err := NewCatalogService(store, zap.NewNop()).CreateAmenity(ctx, &request.AmenityRequest{Name: "Gym"})

		assert.True(t, apperr.Is(err, apperr.KindConflict))
	})

	t.Run("update", func(t *testing.T) {
		store := mocks.NewMockStore()
		store.UoW.AmenityRepo.On("GetByID", mockCtx, int64(2)).Return(&entity.Amenity{Base: entity.Base{ID: 2}, Name: "Gym"}, nil)
		store.UoW.AmenityRepo.On("Update", mockCtx, mock.MatchedBy(func(a *entity.Amenity) bool { return a.Name == "Fitness Centre" })).Return(nil)

		resp, err := NewCatalogService(store, zap.NewNop()).UpdateAmenity(ctx, 2, &request.AmenityRequest{Name: "Fitness Centre"})

		require.NoError(t, err)
		assert.Equal(t, "Fitness Centre", resp.Name)
	})
}

func TestCatalogService_PropertyTypes(t *testing.T) {
	store := mocks.NewMockStore()
	store.UoW.PropertyTypeRepo.On("GetByID", mockCtx, int64(4)).Return(nil, nil)

	_, err := NewCatalogService(store, zap.NewNop()).GetPropertyType(context.Background(), 4)

	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}
