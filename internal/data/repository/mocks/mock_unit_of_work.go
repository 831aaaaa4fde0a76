package mocks

import (
	"context"

	"book-my-property/internal/data/entity"
	"book-my-property/internal/data/repository"

	"github.com/stretchr/testify/mock"
)

// MockUnitOfWork hands out mock repositories and records transaction calls.
// Transaction methods must be stubbed with On before use.
type MockUnitOfWork struct {
	mock.Mock

	UserRepo         *MockUserRepository
	RoleRepo         *MockRoleRepository
	PropertyRepo     *MockPropertyRepository
	PropertyTypeRepo *MockSoftDeleteRepository[entity.PropertyType]
	LocationRepo     *MockSoftDeleteRepository[entity.Location]
	AmenityRepo      *MockSoftDeleteRepository[entity.Amenity]
	ImageRepo        *MockPropertyImageRepository
	InquiryRepo      *MockContactInquiryRepository
	WishlistRepo     *MockWishlistRepository

	state repository.TxState
}

func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		UserRepo:         &MockUserRepository{},
		RoleRepo:         &MockRoleRepository{},
		PropertyRepo:     &MockPropertyRepository{},
		PropertyTypeRepo: &MockSoftDeleteRepository[entity.PropertyType]{},
		LocationRepo:     &MockSoftDeleteRepository[entity.Location]{},
		AmenityRepo:      &MockSoftDeleteRepository[entity.Amenity]{},
		ImageRepo:        &MockPropertyImageRepository{},
		InquiryRepo:      &MockContactInquiryRepository{},
		WishlistRepo:     &MockWishlistRepository{},
	}
}

func (m *MockUnitOfWork) Users() repository.UserRepository               { return m.UserRepo }
func (m *MockUnitOfWork) Roles() repository.RoleRepository               { return m.RoleRepo }
func (m *MockUnitOfWork) Properties() repository.PropertyRepository      { return m.PropertyRepo }
func (m *MockUnitOfWork) Images() repository.PropertyImageRepository     { return m.ImageRepo }
func (m *MockUnitOfWork) Inquiries() repository.ContactInquiryRepository { return m.InquiryRepo }
func (m *MockUnitOfWork) Wishlists() repository.WishlistRepository       { return m.WishlistRepo }

func (m *MockUnitOfWork) PropertyTypes() repository.SoftDeleteRepository[entity.PropertyType] {
	return m.PropertyTypeRepo
}

func (m *MockUnitOfWork) Locations() repository.SoftDeleteRepository[entity.Location] {
	return m.LocationRepo
}

func (m *MockUnitOfWork) Amenities() repository.SoftDeleteRepository[entity.Amenity] {
	return m.AmenityRepo
}

func (m *MockUnitOfWork) BeginTransaction(ctx context.Context) error {
	err := m.Called(ctx).Error(0)
	if err == nil {
		m.state = repository.StateActive
	}
	return err
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	err := m.Called(ctx).Error(0)
	if err == nil {
		m.state = repository.StateCommitted
	} else {
		m.state = repository.StateRolledBack
	}
	return err
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	m.state = repository.StateRolledBack
	return m.Called(ctx).Error(0)
}

func (m *MockUnitOfWork) SaveChanges(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUnitOfWork) State() repository.TxState { return m.state }

// AssertRepositories checks the expectations of every repository mock.
func (m *MockUnitOfWork) AssertRepositories(t mock.TestingT) bool {
	return mock.AssertExpectationsForObjects(t,
		m.UserRepo, m.RoleRepo, m.PropertyRepo, m.PropertyTypeRepo, m.LocationRepo,
		m.AmenityRepo, m.ImageRepo, m.InquiryRepo, m.WishlistRepo,
	)
}

// MockStore returns the same unit of work on every call.
type MockStore struct {
	UoW *MockUnitOfWork
}

func NewMockStore() *MockStore {
	return &MockStore{UoW: NewMockUnitOfWork()}
}

func (s *MockStore) NewUnitOfWork() repository.UnitOfWork { return s.UoW }
