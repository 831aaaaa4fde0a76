package mocks

import (
	"context"

	"book-my-property/internal/data/entity"
	"book-my-property/internal/data/repository"
)

type MockUserRepository struct {
	MockSoftDeleteRepository[entity.User]
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.MethodCalled("FindByEmail", ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

type MockRoleRepository struct {
	MockSoftDeleteRepository[entity.Role]
}

func (m *MockRoleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	args := m.MethodCalled("FindByName", ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Role), args.Error(1)
}

type MockPropertyRepository struct {
	MockSoftDeleteRepository[entity.Property]
}

func (m *MockPropertyRepository) ListAvailable(ctx context.Context, pageNumber, pageSize int) (*repository.Page[*entity.PropertyListing], error) {
	args := m.MethodCalled("ListAvailable", ctx, pageNumber, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Page[*entity.PropertyListing]), args.Error(1)
}

func (m *MockPropertyRepository) Search(ctx context.Context, filter repository.SearchFilter, pageNumber, pageSize int) (*repository.Page[*entity.PropertyListing], error) {
	args := m.MethodCalled("Search", ctx, filter, pageNumber, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Page[*entity.PropertyListing]), args.Error(1)
}

func (m *MockPropertyRepository) GetListing(ctx context.Context, id int64) (*entity.PropertyListing, error) {
	args := m.MethodCalled("GetListing", ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PropertyListing), args.Error(1)
}

func (m *MockPropertyRepository) ListAmenities(ctx context.Context, propertyID int64) ([]*entity.Amenity, error) {
	args := m.MethodCalled("ListAmenities", ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Amenity), args.Error(1)
}

func (m *MockPropertyRepository) SetAmenities(ctx context.Context, propertyID int64, amenityIDs []int64) error {
	args := m.MethodCalled("SetAmenities", ctx, propertyID, amenityIDs)
	return args.Error(0)
}

type MockPropertyImageRepository struct {
	MockSoftDeleteRepository[entity.PropertyImage]
}

func (m *MockPropertyImageRepository) ListByProperty(ctx context.Context, propertyID int64) ([]*entity.PropertyImage, error) {
	args := m.MethodCalled("ListByProperty", ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.PropertyImage), args.Error(1)
}

func (m *MockPropertyImageRepository) ClearPrimary(ctx context.Context, propertyID int64) error {
	args := m.MethodCalled("ClearPrimary", ctx, propertyID)
	return args.Error(0)
}

type MockContactInquiryRepository struct {
	MockSoftDeleteRepository[entity.ContactInquiry]
}

func (m *MockContactInquiryRepository) ListByProperty(ctx context.Context, propertyID int64) ([]*entity.ContactInquiry, error) {
	args := m.MethodCalled("ListByProperty", ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ContactInquiry), args.Error(1)
}

type MockWishlistRepository struct {
	MockSoftDeleteRepository[entity.Wishlist]
}

func (m *MockWishlistRepository) FindByUserAndProperty(ctx context.Context, userID, propertyID int64) (*entity.Wishlist, error) {
	args := m.MethodCalled("FindByUserAndProperty", ctx, userID, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Wishlist), args.Error(1)
}

func (m *MockWishlistRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.WishlistEntry, error) {
	args := m.MethodCalled("ListByUser", ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.WishlistEntry), args.Error(1)
}
