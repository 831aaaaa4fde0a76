package mocks

import (
	"context"

	"book-my-property/internal/dto/request"
	"book-my-property/internal/dto/response"

	"github.com/stretchr/testify/mock"
)

// returnOrNil type-asserts a mocked return value, tolerating untyped nil.
func returnOrNil[T any](args mock.Arguments, i int) T {
	var zero T
	if v, ok := args.Get(i).(T); ok {
		return v
	}
	return zero
}

type MockAuthService struct{ mock.Mock }

func (m *MockAuthService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResult, error) {
	args := m.Called(ctx, req)
	return returnOrNil[*response.AuthResult](args, 0), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResult, error) {
	args := m.Called(ctx, req)
	return returnOrNil[*response.AuthResult](args, 0), args.Error(1)
}

type MockUserService struct{ mock.Mock }

func (m *MockUserService) GetProfile(ctx context.Context) (*response.UserResponse, error) {
	args := m.Called(ctx)
	return returnOrNil[*response.UserResponse](args, 0), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	args := m.Called(ctx, req)
	return returnOrNil[*response.UserResponse](args, 0), args.Error(1)
}

func (m *MockUserService) GetAllUsers(ctx context.Context, req request.PaginatedRequest, includeDeleted bool) (*response.PaginatedResponse[response.UserResponse], error) {
	args := m.Called(ctx, req, includeDeleted)
	return returnOrNil[*response.PaginatedResponse[response.UserResponse]](args, 0), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, id int64) (*response.UserResponse, error) {
	args := m.Called(ctx, id)
	return returnOrNil[*response.UserResponse](args, 0), args.Error(1)
}

func (m *MockUserService) SetActive(ctx context.Context, id int64, req *request.SetActiveRequest) (*response.UserResponse, error) {
	args := m.Called(ctx, id, req)
	return returnOrNil[*response.UserResponse](args, 0), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockPropertyService struct{ mock.Mock }

func (m *MockPropertyService) ListAvailable(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.PropertyResponse], error) {
	args := m.Called(ctx, req)
	return returnOrNil[*response.PaginatedResponse[response.PropertyResponse]](args, 0), args.Error(1)
}

func (m *MockPropertyService) Search(ctx context.Context, req *request.SearchPropertyRequest) (*response.PaginatedResponse[response.PropertyResponse], error) {
	args := m.Called(ctx, req)
	return returnOrNil[*response.PaginatedResponse[response.PropertyResponse]](args, 0), args.Error(1)
}

func (m *MockPropertyService) GetByID(ctx context.Context, id int64) (*response.PropertyResponse, error) {
	args := m.Called(ctx, id)
	return returnOrNil[*response.PropertyResponse](args, 0), args.Error(1)
}

func (m *MockPropertyService) Create(ctx context.Context, req *request.CreatePropertyRequest) (*response.PropertyResponse, error) {
	args := m.Called(ctx, req)
	return returnOrNil[*response.PropertyResponse](args, 0), args.Error(1)
}

func (m *MockPropertyService) Update(ctx context.Context, id int64, req *request.UpdatePropertyRequest) (*response.PropertyResponse, error) {
	args := m.Called(ctx, id, req)
	return returnOrNil[*response.PropertyResponse](args, 0), args.Error(1)
}

func (m *MockPropertyService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPropertyService) ListAmenities(ctx context.Context, id int64) ([]response.AmenityResponse, error) {
	args := m.Called(ctx, id)
	return returnOrNil[[]response.AmenityResponse](args, 0), args.Error(1)
}

func (m *MockPropertyService) SetAmenities(ctx context.Context, id int64, req *request.SetAmenitiesRequest) ([]response.AmenityResponse, error) {
	args := m.Called(ctx, id, req)
	return returnOrNil[[]response.AmenityResponse](args, 0), args.Error(1)
}

type MockCatalogService struct{ mock.Mock }

func (m *MockCatalogService) ListLocations(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.LocationResponse], error) {
	args := m.Called(ctx, req)
	return returnOrNil[*response.PaginatedResponse[response.LocationResponse]](args, 0), args.Error(1)
}

func (m *MockCatalogService) GetLocation(ctx context.Context, id int64) (*response.LocationResponse, error) {
	args := m.Called(ctx, id)
	return returnOrNil[*response.LocationResponse](args, 0), args.Error(1)
}

func (m *MockCatalogService) CreateLocation(ctx context.Context, req *request.LocationRequest) (*response.LocationResponse, error) {
	args := m.Called(ctx, req)
	return returnOrNil[*response.LocationResponse](args, 0), args.Error(1)
}

func (m *MockCatalogService) UpdateLocation(ctx context.Context, id int64, req *request.LocationRequest) (*response.LocationResponse, error) {
	args := m.Called(ctx, id, req)
	return returnOrNil[*response.LocationResponse](args, 0), args.Error(1)
}

func (m *MockCatalogService) DeleteLocation(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCatalogService) ListAmenities(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.AmenityResponse], error) {
	args := m.Called(ctx, req)
	return returnOrNil[*response.PaginatedResponse[response.AmenityResponse]](args, 0), args.Error(1)
}

func (m *MockCatalogService) GetAmenity(ctx context.Context, id int64) (*response.AmenityResponse, error) {
	args := m.Called(ctx, id)
	return returnOrNil[*response.AmenityResponse](args, 0), args.Error(1)
}

func (m *MockCatalogService) CreateAmenity(ctx context.Context, req *request.AmenityRequest) (*response.AmenityResponse, error) {
	args := m.Called(ctx, req)
	return returnOrNil[*response.AmenityResponse](args, 0), args.Error(1)
}

func (m *MockCatalogService) UpdateAmenity(ctx context.Context, id int64, req *request.AmenityRequest) (*response.AmenityResponse, error) {
	args := m.Called(ctx, id, req)
	return returnOrNil[*response.AmenityResponse](args, 0), args.Error(1)
}

func (m *MockCatalogService) DeleteAmenity(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCatalogService) ListPropertyTypes(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.PropertyTypeResponse], error) {
	args := m.Called(ctx, req)
	return returnOrNil[*response.PaginatedResponse[response.PropertyTypeResponse]](args, 0), args.Error(1)
}

func (m *MockCatalogService) GetPropertyType(ctx context.Context, id int64) (*response.PropertyTypeResponse, error) {
	args := m.Called(ctx, id)
	return returnOrNil[*response.PropertyTypeResponse](args, 0), args.Error(1)
}

func (m *MockCatalogService) CreatePropertyType(ctx context.Context, req *request.PropertyTypeRequest) (*response.PropertyTypeResponse, error) {
	args := m.Called(ctx, req)
	return returnOrNil[*response.PropertyTypeResponse](args, 0), args.Error(1)
}

func (m *MockCatalogService) UpdatePropertyType(ctx context.Context, id int64, req *request.PropertyTypeRequest) (*response.PropertyTypeResponse, error) {
	args := m.Called(ctx, id, req)
	return returnOrNil[*response.PropertyTypeResponse](args, 0), args.Error(1)
}

func (m *MockCatalogService) DeletePropertyType(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockImageService struct{ mock.Mock }

func (m *MockImageService) ListByProperty(ctx context.Context, propertyID int64) ([]response.ImageResponse, error) {
	args := m.Called(ctx, propertyID)
	return returnOrNil[[]response.ImageResponse](args, 0), args.Error(1)
}

func (m *MockImageService) GetByID(ctx context.Context, id int64) (*response.ImageResponse, error) {
	args := m.Called(ctx, id)
	return returnOrNil[*response.ImageResponse](args, 0), args.Error(1)
}

func (m *MockImageService) Create(ctx context.Context, req *request.CreateImageRequest) (*response.ImageResponse, error) {
	args := m.Called(ctx, req)
	return returnOrNil[*response.ImageResponse](args, 0), args.Error(1)
}

func (m *MockImageService) Update(ctx context.Context, id int64, req *request.UpdateImageRequest) (*response.ImageResponse, error) {
	args := m.Called(ctx, id, req)
	return returnOrNil[*response.ImageResponse](args, 0), args.Error(1)
}

func (m *MockImageService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockInquiryService struct{ mock.Mock }

func (m *MockInquiryService) Create(ctx context.Context, req *request.CreateInquiryRequest) (*response.InquiryResponse, error) {
	args := m.Called(ctx, req)
	return returnOrNil[*response.InquiryResponse](args, 0), args.Error(1)
}

func (m *MockInquiryService) List(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.InquiryResponse], error) {
	args := m.Called(ctx, req)
	return returnOrNil[*response.PaginatedResponse[response.InquiryResponse]](args, 0), args.Error(1)
}

func (m *MockInquiryService) ListByProperty(ctx context.Context, propertyID int64) ([]response.InquiryResponse, error) {
	args := m.Called(ctx, propertyID)
	return returnOrNil[[]response.InquiryResponse](args, 0), args.Error(1)
}

func (m *MockInquiryService) GetByID(ctx context.Context, id int64) (*response.InquiryResponse, error) {
	args := m.Called(ctx, id)
	return returnOrNil[*response.InquiryResponse](args, 0), args.Error(1)
}

func (m *MockInquiryService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockWishlistService struct{ mock.Mock }

func (m *MockWishlistService) List(ctx context.Context) ([]response.WishlistResponse, error) {
	args := m.Called(ctx)
	return returnOrNil[[]response.WishlistResponse](args, 0), args.Error(1)
}

func (m *MockWishlistService) Add(ctx context.Context, propertyID int64) error {
	return m.Called(ctx, propertyID).Error(0)
}

func (m *MockWishlistService) Remove(ctx context.Context, propertyID int64) error {
	return m.Called(ctx, propertyID).Error(0)
}
