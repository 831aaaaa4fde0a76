package usecase

import (
	"context"
	"errors"
	"testing"

	"book-my-property/internal/data/entity"
	"book-my-property/internal/data/repository"
	"book-my-property/internal/data/repository/mocks"
	"book-my-property/internal/dto/request"
	"book-my-property/pkg/apperr"

	"github.com/samber/mo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func createRequest() *request.CreatePropertyRequest {
	return &request.CreatePropertyRequest{
		Title:          "Sea View Villa",
		Description:    "Four bedrooms by the beach",
		Price:          decimal.RequireFromString("1250000"),
		PropertyTypeID: 3,
		LocationID:     1,
		AreaSqFt:       3200,
		Bedrooms:       4,
		Bathrooms:      3,
		Parking:        2,
		AmenityIDs:     []int64{1, 2},
		ImageURLs:      []string{"https://img.example.com/a.jpg", "https://img.example.com/b.jpg"},
	}
}

// expectReferences stubs the location and property type lookups.
func expectReferences(uow *mocks.MockUnitOfWork, locationID, propertyTypeID int64) {
	uow.LocationRepo.On("GetByID", mockCtx, locationID).
		Return(&entity.Location{Base: entity.Base{ID: locationID}, City: "Mumbai"}, nil)
	uow.PropertyTypeRepo.On("GetByID", mockCtx, propertyTypeID).
		Return(&entity.PropertyType{Base: entity.Base{ID: propertyTypeID}, Name: "Villa"}, nil)
}

func TestPropertyService_Create(t *testing.T) {
	t.Run("writes everything in one transaction", func(t *testing.T) {
		store := mocks.NewMockStore()
		uow := store.UoW
		svc := NewPropertyService(store, zap.NewNop())
		ctx := asUser(2, entity.RoleAgent)

		expectCommit(uow)
		expectReferences(uow, 1, 3)
		uow.PropertyRepo.On("Add", mockCtx, mock.MatchedBy(func(p *entity.Property) bool {
			return p.AgentID == 2 && p.Status == entity.PropertyStatusAvailable
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Property).ID = 40
		}).Return(nil)
		uow.PropertyRepo.On("SetAmenities", mockCtx, int64(40), []int64{1, 2}).Return(nil)
		uow.ImageRepo.On("Add", mockCtx, mock.MatchedBy(func(i *entity.PropertyImage) bool {
			return i.PropertyID == 40 && i.IsPrimary && i.ImageURL == "https://img.example.com/a.jpg"
		})).Return(nil).Once()
		uow.ImageRepo.On("Add", mockCtx, mock.MatchedBy(func(i *entity.PropertyImage) bool {
			return i.PropertyID == 40 && !i.IsPrimary
		})).Return(nil).Once()

		resp, err := svc.Create(ctx, createRequest())

		require.NoError(t, err)
		assert.Equal(t, int64(40), resp.ID)
		assert.Equal(t, int64(2), resp.AgentID)
		uow.AssertExpectations(t)
		uow.AssertRepositories(t)
		assert.Equal(t, repository.StateCommitted, uow.State())
	})

	t.Run("failure rolls back", func(t *testing.T) {
		store := mocks.NewMockStore()
		uow := store.UoW
		svc := NewPropertyService(store, zap.NewNop())
		ctx := asUser(2, entity.RoleAgent)

		uow.On("BeginTransaction", mockCtx).Return(nil).Once()
		uow.On("Rollback", mockCtx).Return(nil).Once()
		expectReferences(uow, 1, 3)
		uow.PropertyRepo.On("Add", mockCtx, mock.Anything).Return(nil)
		uow.PropertyRepo.On("SetAmenities", mockCtx, mock.Anything, mock.Anything).
			Return(apperr.InvalidArgument("amenity references a record that does not exist"))

		resp, err := svc.Create(ctx, createRequest())

		assert.Nil(t, resp)
		assert.True(t, apperr.Is(err, apperr.KindInvalidArgument))
		uow.AssertNotCalled(t, "Commit", mock.Anything)
		uow.ImageRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		assert.Equal(t, repository.StateRolledBack, uow.State())
	})

	t.Run("soft-deleted location is rejected", func(t *testing.T) {
		store := mocks.NewMockStore()
		uow := store.UoW
		svc := NewPropertyService(store, zap.NewNop())

		uow.On("BeginTransaction", mockCtx).Return(nil).Once()
		uow.On("Rollback", mockCtx).Return(nil).Once()
		uow.LocationRepo.On("GetByID", mockCtx, int64(1)).Return(nil, nil)
		uow.PropertyTypeRepo.On("GetByID", mockCtx, int64(3)).
			Return(&entity.PropertyType{Base: entity.Base{ID: 3}, Name: "Villa"}, nil)

		resp, err := svc.Create(asUser(2, entity.RoleAgent), createRequest())

		assert.Nil(t, resp)
		assert.True(t, apperr.Is(err, apperr.KindInvalidArgument))
		assert.Equal(t, map[string]string{"location_id": "Location does not exist"}, apperr.FieldsOf(err))
		uow.PropertyRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		assert.Equal(t, repository.StateRolledBack, uow.State())
	})

	t.Run("requires a caller", func(t *testing.T) {
		svc := NewPropertyService(mocks.NewMockStore(), zap.NewNop())

		resp, err := svc.Create(context.Background(), createRequest())

		assert.Nil(t, resp)
		assert.True(t, apperr.Is(err, apperr.KindUnauthorized))
	})

	t.Run("rejects a non-positive price", func(t *testing.T) {
		svc := NewPropertyService(mocks.NewMockStore(), zap.NewNop())
		req := createRequest()
		req.Price = decimal.Zero

		_, err := svc.Create(asUser(2, entity.RoleAgent), req)

		assert.True(t, apperr.Is(err, apperr.KindInvalidArgument))
		assert.Contains(t, apperr.FieldsOf(err), "price")
	})

	t.Run("rejects sub-cent prices", func(t *testing.T) {
		svc := NewPropertyService(mocks.NewMockStore(), zap.NewNop())

		for _, price := range []string{"0.001", "1234.567"} {
			req := createRequest()
			req.Price = decimal.RequireFromString(price)

			resp, err := svc.Create(asUser(2, entity.RoleAgent), req)

			assert.Nil(t, resp)
			assert.True(t, apperr.Is(err, apperr.KindInvalidArgument), price)
			assert.Equal(t, "At most 2 decimal places are allowed", apperr.FieldsOf(err)["price"], price)
		}
	})
}

func TestPropertyService_UpdateOwnership(t *testing.T) {
	req := &request.UpdatePropertyRequest{
		Title:          "Renamed",
		Price:          decimal.NewFromInt(100),
		PropertyTypeID: 1,
		LocationID:     1,
		Status:         entity.PropertyStatusSold,
	}

	t.Run("other agent is forbidden", func(t *testing.T) {
		store := mocks.NewMockStore()
		store.UoW.PropertyRepo.On("GetByID", mockCtx, int64(5)).Return(ownedProperty(5, 2), nil)
		svc := NewPropertyService(store, zap.NewNop())

		_, err := svc.Update(asUser(3, entity.RoleAgent), 5, req)

		assert.True(t, apperr.Is(err, apperr.KindForbidden))
		store.UoW.PropertyRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("admin may update any property", func(t *testing.T) {
		store := mocks.NewMockStore()
		store.UoW.PropertyRepo.On("GetByID", mockCtx, int64(5)).Return(ownedProperty(5, 2), nil)
		expectReferences(store.UoW, 1, 1)
		store.UoW.PropertyRepo.On("Update", mockCtx, mock.MatchedBy(func(p *entity.Property) bool {
			return p.Title == "Renamed" && p.Status == entity.PropertyStatusSold
		})).Return(nil)
		svc := NewPropertyService(store, zap.NewNop())

		resp, err := svc.Update(asUser(1, entity.RoleAdmin), 5, req)

		require.NoError(t, err)
		assert.Equal(t, "Renamed", resp.Title)
	})

	t.Run("soft-deleted property type is rejected", func(t *testing.T) {
		store := mocks.NewMockStore()
		store.UoW.PropertyRepo.On("GetByID", mockCtx, int64(5)).Return(ownedProperty(5, 2), nil)
		store.UoW.LocationRepo.On("GetByID", mockCtx, int64(1)).
			Return(&entity.Location{Base: entity.Base{ID: 1}, City: "Mumbai"}, nil)
		store.UoW.PropertyTypeRepo.On("GetByID", mockCtx, int64(1)).Return(nil, nil)
		svc := NewPropertyService(store, zap.NewNop())

		_, err := svc.Update(asUser(2, entity.RoleAgent), 5, req)

		assert.True(t, apperr.Is(err, apperr.KindInvalidArgument))
		assert.Equal(t, "Property type does not exist", apperr.FieldsOf(err)["property_type_id"])
		store.UoW.PropertyRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("missing property", func(t *testing.T) {
		store := mocks.NewMockStore()
		store.UoW.PropertyRepo.On("GetByID", mockCtx, int64(9)).Return(nil, nil)
		svc := NewPropertyService(store, zap.NewNop())

		_, err := svc.Update(asUser(1, entity.RoleAdmin), 9, req)

		assert.True(t, apperr.Is(err, apperr.KindNotFound))
	})
}

func TestPropertyService_Search(t *testing.T) {
	store := mocks.NewMockStore()
	svc := NewPropertyService(store, zap.NewNop())
	ctx := context.Background()

	city := "Mumbai"
	minPrice := decimal.NewFromInt(1000)
	want := repository.SearchFilter{
		Location: mo.Some(city),
		MinPrice: mo.Some(minPrice),
	}
	listing := &entity.PropertyListing{ID: 1, Title: "Flat", City: "Mumbai", Price: decimal.NewFromInt(5000)}
	store.UoW.PropertyRepo.On("Search", mockCtx, want, 1, 10).
		Return(repository.NewPage([]*entity.PropertyListing{listing}, 1, 10, 11), nil)

	resp, err := svc.Search(ctx, &request.SearchPropertyRequest{
		Location:         &city,
		MinPrice:         &minPrice,
		PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 10},
	})

	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Mumbai", resp.Data[0].City)
	assert.Equal(t, int64(11), resp.Pagination.Total)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
}

func TestPropertyService_GetByID(t *testing.T) {
	store := mocks.NewMockStore()
	svc := NewPropertyService(store, zap.NewNop())
	ctx := context.Background()

	store.UoW.PropertyRepo.On("GetListing", mockCtx, int64(1)).Return(&entity.PropertyListing{ID: 1}, nil)
	store.UoW.PropertyRepo.On("GetListing", mockCtx, int64(2)).Return(nil, nil)
	store.UoW.PropertyRepo.On("GetListing", mockCtx, int64(3)).Return(nil, errors.New("boom"))

	resp, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)

	_, err = svc.GetByID(ctx, 2)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	_, err = svc.GetByID(ctx, 3)
	assert.Equal(t, apperr.KindInfrastructure, apperr.KindOf(err))
}
