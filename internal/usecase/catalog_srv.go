package usecase

import (
	"context"
	"strings"

	"book-my-property/internal/data/entity"
	"book-my-property/internal/data/repository"
	"book-my-property/internal/dto/request"
	"book-my-property/internal/dto/response"
	"book-my-property/pkg/apperr"

	"go.uber.org/zap"
)

// CatalogService manages the lookup tables properties point at.
type CatalogService interface {
	ListLocations(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.LocationResponse], error)
	GetLocation(ctx context.Context, id int64) (*response.LocationResponse, error)
	CreateLocation(ctx context.Context, req *request.LocationRequest) (*response.LocationResponse, error)
	UpdateLocation(ctx context.Context, id int64, req *request.LocationRequest) (*response.LocationResponse, error)
	DeleteLocation(ctx context.Context, id int64) error

	ListAmenities(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.AmenityResponse], error)
	GetAmenity(ctx context.Context, id int64) (*response.AmenityResponse, error)
	CreateAmenity(ctx context.Context, req *request.AmenityRequest) (*response.AmenityResponse, error)
	UpdateAmenity(ctx context.Context, id int64, req *request.AmenityRequest) (*response.AmenityResponse, error)
	DeleteAmenity(ctx context.Context, id int64) error

	ListPropertyTypes(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.PropertyTypeResponse], error)
	GetPropertyType(ctx context.Context, id int64) (*response.PropertyTypeResponse, error)
	CreatePropertyType(ctx context.Context, req *request.PropertyTypeRequest) (*response.PropertyTypeResponse, error)
	UpdatePropertyType(ctx context.Context, id int64, req *request.PropertyTypeRequest) (*response.PropertyTypeResponse, error)
	DeletePropertyType(ctx context.Context, id int64) error
}

type catalogService struct {
	store repository.Store
	log   *zap.Logger
}

func NewCatalogService(store repository.Store, log *zap.Logger) CatalogService {
	return &catalogService{
		store: store,
		log:   log.With(zap.String("service", "catalog")),
	}
}

// ------------- Locations -------------

func (s *catalogService) ListLocations(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.LocationResponse], error) {
	page, err := s.store.NewUnitOfWork().Locations().GetPaged(ctx, req.Page, req.PerPage)
	if err != nil {
		return nil, err
	}
	return toPaginated(page, response.LocationToResponse), nil
}

func (s *catalogService) GetLocation(ctx context.Context, id int64) (*response.LocationResponse, error) {
	loc, err := mustFind(ctx, s.store.NewUnitOfWork().Locations(), id, "location")
	if err != nil {
		return nil, err
	}
	resp := response.LocationToResponse(loc)
	return &resp, nil
}

func (s *catalogService) CreateLocation(ctx context.Context, req *request.LocationRequest) (*response.LocationResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	loc := &entity.Location{}
	applyLocation(loc, req)
	if err := s.store.NewUnitOfWork().Locations().Add(ctx, loc); err != nil {
		return nil, err
	}

	s.log.Info("Location created", zap.Int64("location_id", loc.ID), zap.String("city", loc.City))
	resp := response.LocationToResponse(loc)
	return &resp, nil
}

func (s *catalogService) UpdateLocation(ctx context.Context, id int64, req *request.LocationRequest) (*response.LocationResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	uow := s.store.NewUnitOfWork()
	loc, err := mustFind(ctx, uow.Locations(), id, "location")
	if err != nil {
		return nil, err
	}

	applyLocation(loc, req)
	if err := uow.Locations().Update(ctx, loc); err != nil {
		return nil, err
	}

	s.log.Info("Location updated", zap.Int64("location_id", id))
	resp := response.LocationToResponse(loc)
	return &resp, nil
}

func (s *catalogService) DeleteLocation(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, s.store.NewUnitOfWork().Locations().DeleteByID, id, "location")
}

func applyLocation(loc *entity.Location, req *request.LocationRequest) {
	loc.City = strings.TrimSpace(req.City)
	loc.State = strings.TrimSpace(req.State)
	loc.Country = strings.TrimSpace(req.Country)
	loc.ZipCode = strings.TrimSpace(req.ZipCode)
}

// ------------- Amenities -------------

func (s *catalogService) ListAmenities(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.AmenityResponse], error) {
	page, err := s.store.NewUnitOfWork().Amenities().GetPaged(ctx, req.Page, req.PerPage)
	if err != nil {
		return nil, err
	}
	return toPaginated(page, response.AmenityToResponse), nil
}

func (s *catalogService) GetAmenity(ctx context.Context, id int64) (*response.AmenityResponse, error) {
	a, err := mustFind(ctx, s.store.NewUnitOfWork().Amenities(), id, "amenity")
	if err != nil {
		return nil, err
	}
	resp := response.AmenityToResponse(a)
	return &resp, nil
}

func (s *catalogService) CreateAmenity(ctx context.Context, req *request.AmenityRequest) (*response.AmenityResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	a := &entity.Amenity{Name: strings.TrimSpace(req.Name)}
	if err := s.store.NewUnitOfWork().Amenities().Add(ctx, a); err != nil {
		return nil, err
	}

	s.log.Info("Amenity created", zap.Int64("amenity_id", a.ID), zap.String("name", a.Name))
	resp := response.AmenityToResponse(a)
	return &resp, nil
}

func (s *catalogService) UpdateAmenity(ctx context.Context, id int64, req *request.AmenityRequest) (*response.AmenityResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	uow := s.store.NewUnitOfWork()
	a, err := mustFind(ctx, uow.Amenities(), id, "amenity")
	if err != nil {
		return nil, err
	}

	a.Name = strings.TrimSpace(req.Name)
	if err := uow.Amenities().Update(ctx, a); err != nil {
		return nil, err
	}

	resp := response.AmenityToResponse(a)
	return &resp, nil
}

func (s *catalogService) DeleteAmenity(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, s.store.NewUnitOfWork().Amenities().DeleteByID, id, "amenity")
}

// ------------- Property types -------------

func (s *catalogService) ListPropertyTypes(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.PropertyTypeResponse], error) {
	page, err := s.store.NewUnitOfWork().PropertyTypes().GetPaged(ctx, req.Page, req.PerPage)
	if err != nil {
		return nil, err
	}
	return toPaginated(page, response.PropertyTypeToResponse), nil
}

func (s *catalogService) GetPropertyType(ctx context.Context, id int64) (*response.PropertyTypeResponse, error) {
	t, err := mustFind(ctx, s.store.NewUnitOfWork().PropertyTypes(), id, "property type")
	if err != nil {
		return nil, err
	}
	resp := response.PropertyTypeToResponse(t)
	return &resp, nil
}

func (s *catalogService) CreatePropertyType(ctx context.Context, req *request.PropertyTypeRequest) (*response.PropertyTypeResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	t := &entity.PropertyType{Name: strings.TrimSpace(req.Name)}
	if err := s.store.NewUnitOfWork().PropertyTypes().Add(ctx, t); err != nil {
		return nil, err
	}

	s.log.Info("Property type created", zap.Int64("property_type_id", t.ID), zap.String("name", t.Name))
	resp := response.PropertyTypeToResponse(t)
	return &resp, nil
}

func (s *catalogService) UpdatePropertyType(ctx context.Context, id int64, req *request.PropertyTypeRequest) (*response.PropertyTypeResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	uow := s.store.NewUnitOfWork()
	t, err := mustFind(ctx, uow.PropertyTypes(), id, "property type")
	if err != nil {
		return nil, err
	}

	t.Name = strings.TrimSpace(req.Name)
	if err := uow.PropertyTypes().Update(ctx, t); err != nil {
		return nil, err
	}

	resp := response.PropertyTypeToResponse(t)
	return &resp, nil
}

func (s *catalogService) DeletePropertyType(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, s.store.NewUnitOfWork().PropertyTypes().DeleteByID, id, "property type")
}

func (s *catalogService) deleteByID(ctx context.Context, del func(context.Context, int64) (bool, error), id int64, name string) error {
	deleted, err := del(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("%s not found", name)
	}
	s.log.Info(name+" deleted", zap.Int64("id", id))
	return nil
}
