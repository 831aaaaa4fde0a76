package usecase

import (
	"context"
	"fmt"
	"strings"

	"book-my-property/internal/data/entity"
	"book-my-property/internal/data/repository"
	"book-my-property/internal/dto/request"
	"book-my-property/internal/dto/response"
	"book-my-property/pkg/apperr"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"go.uber.org/zap"
)

type PropertyService interface {
	ListAvailable(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.PropertyResponse], error)
	Search(ctx context.Context, req *request.SearchPropertyRequest) (*response.PaginatedResponse[response.PropertyResponse], error)
	GetByID(ctx context.Context, id int64) (*response.PropertyResponse, error)
	Create(ctx context.Context, req *request.CreatePropertyRequest) (*response.PropertyResponse, error)
	Update(ctx context.Context, id int64, req *request.UpdatePropertyRequest) (*response.PropertyResponse, error)
	Delete(ctx context.Context, id int64) error
	ListAmenities(ctx context.Context, id int64) ([]response.AmenityResponse, error)
	SetAmenities(ctx context.Context, id int64, req *request.SetAmenitiesRequest) ([]response.AmenityResponse, error)
}

type propertyService struct {
	store repository.Store
	log   *zap.Logger
}

func NewPropertyService(store repository.Store, log *zap.Logger) PropertyService {
	return &propertyService{
		store: store,
		log:   log.With(zap.String("service", "property")),
	}
}

func (s *propertyService) ListAvailable(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.PropertyResponse], error) {
	page, err := s.store.NewUnitOfWork().Properties().ListAvailable(ctx, req.Page, req.PerPage)
	if err != nil {
		return nil, err
	}

	s.log.Debug("Properties retrieved",
		zap.Int("count", len(page.Items)),
		zap.Int64("total", page.Total),
		zap.Int("page", req.Page),
		zap.Int("per_page", req.PerPage),
	)

	return toPaginated(page, func(l *entity.PropertyListing) response.PropertyResponse {
		return response.ListingToResponse(l)
	}), nil
}

func (s *propertyService) Search(ctx context.Context, req *request.SearchPropertyRequest) (*response.PaginatedResponse[response.PropertyResponse], error) {
	filter := repository.SearchFilter{
		Location:       mo.PointerToOption(req.Location),
		PropertyTypeID: mo.PointerToOption(req.PropertyTypeID),
		MinPrice:       mo.PointerToOption(req.MinPrice),
		MaxPrice:       mo.PointerToOption(req.MaxPrice),
	}

	page, err := s.store.NewUnitOfWork().Properties().Search(ctx, filter, req.Page, req.PerPage)
	if err != nil {
		return nil, err
	}

	s.log.Debug("Property search",
		zap.Stringp("location", req.Location),
		zap.Int64p("property_type_id", req.PropertyTypeID),
		zap.Int64("total", page.Total),
	)

	return toPaginated(page, func(l *entity.PropertyListing) response.PropertyResponse {
		return response.ListingToResponse(l)
	}), nil
}

func (s *propertyService) GetByID(ctx context.Context, id int64) (*response.PropertyResponse, error) {
	listing, err := s.store.NewUnitOfWork().Properties().GetListing(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, apperr.NotFound("property not found")
	}

	resp := response.ListingToResponse(listing)
	return &resp, nil
}

// Create writes the property, its amenity links and its images in one transaction.
func (s *propertyService) Create(ctx context.Context, req *request.CreatePropertyRequest) (*response.PropertyResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	agentID, _, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = entity.PropertyStatusAvailable
	}

	property := &entity.Property{
		Title:          strings.TrimSpace(req.Title),
		Description:    req.Description,
		Price:          req.Price,
		PropertyTypeID: req.PropertyTypeID,
		LocationID:     req.LocationID,
		AreaSqFt:       req.AreaSqFt,
		Bedrooms:       req.Bedrooms,
		Bathrooms:      req.Bathrooms,
		Parking:        req.Parking,
		Status:         status,
		IsFeatured:     req.IsFeatured,
		AgentID:        agentID,
	}

	uow := s.store.NewUnitOfWork()
	err = repository.InTransaction(ctx, uow, func(tx repository.UnitOfWork) error {
		if err := checkReferences(ctx, tx, req.LocationID, req.PropertyTypeID); err != nil {
			return err
		}
		if err := tx.Properties().Add(ctx, property); err != nil {
			return err
		}
		if len(req.AmenityIDs) > 0 {
			if err := tx.Properties().SetAmenities(ctx, property.ID, req.AmenityIDs); err != nil {
				return err
			}
		}
		for i, url := range lo.Uniq(req.ImageURLs) {
			img := &entity.PropertyImage{PropertyID: property.ID, ImageURL: url, IsPrimary: i == 0}
			if err := tx.Images().Add(ctx, img); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.Warn("Failed to create property", zap.Error(err), zap.Int64("agent_id", agentID))
		return nil, err
	}

	s.log.Info("Property created",
		zap.Int64("property_id", property.ID),
		zap.Int64("agent_id", agentID),
		zap.Int("amenities", len(req.AmenityIDs)),
		zap.Int("images", len(req.ImageURLs)),
	)

	resp := response.PropertyToResponse(property)
	return &resp, nil
}

func (s *propertyService) Update(ctx context.Context, id int64, req *request.UpdatePropertyRequest) (*response.PropertyResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	uow := s.store.NewUnitOfWork()
	property, err := s.ownedProperty(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	if err := checkReferences(ctx, uow, req.LocationID, req.PropertyTypeID); err != nil {
		return nil, err
	}

	property.Title = strings.TrimSpace(req.Title)
	property.Description = req.Description
	property.Price = req.Price
	property.PropertyTypeID = req.PropertyTypeID
	property.LocationID = req.LocationID
	property.AreaSqFt = req.AreaSqFt
	property.Bedrooms = req.Bedrooms
	property.Bathrooms = req.Bathrooms
	property.Parking = req.Parking
	property.Status = req.Status
	property.IsFeatured = req.IsFeatured

	if err := uow.Properties().Update(ctx, property); err != nil {
		return nil, err
	}

	s.log.Info("Property updated", zap.Int64("property_id", id))

	resp := response.PropertyToResponse(property)
	return &resp, nil
}

func (s *propertyService) Delete(ctx context.Context, id int64) error {
	uow := s.store.NewUnitOfWork()
	property, err := s.ownedProperty(ctx, uow, id)
	if err != nil {
		return err
	}

	if err := uow.Properties().Delete(ctx, property); err != nil {
		return err
	}

	s.log.Info("Property deleted", zap.Int64("property_id", id))
	return nil
}

func (s *propertyService) ListAmenities(ctx context.Context, id int64) ([]response.AmenityResponse, error) {
	uow := s.store.NewUnitOfWork()
	if _, err := mustFind(ctx, uow.Properties(), id, "property"); err != nil {
		return nil, err
	}

	amenities, err := uow.Properties().ListAmenities(ctx, id)
	if err != nil {
		return nil, err
	}
	return response.AmenitiesToResponse(amenities), nil
}

func (s *propertyService) SetAmenities(ctx context.Context, id int64, req *request.SetAmenitiesRequest) ([]response.AmenityResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	uow := s.store.NewUnitOfWork()
	if _, err := s.ownedProperty(ctx, uow, id); err != nil {
		return nil, err
	}

	err := repository.InTransaction(ctx, uow, func(tx repository.UnitOfWork) error {
		return tx.Properties().SetAmenities(ctx, id, req.AmenityIDs)
	})
	if err != nil {
		return nil, fmt.Errorf("set amenities: %w", err)
	}

	s.log.Info("Property amenities replaced", zap.Int64("property_id", id), zap.Int64s("amenity_ids", req.AmenityIDs))

	amenities, err := uow.Properties().ListAmenities(ctx, id)
	if err != nil {
		return nil, err
	}
	return response.AmenitiesToResponse(amenities), nil
}

// checkReferences rejects a location or property type that is missing or
// soft-deleted; the foreign keys alone still accept deleted rows.
func checkReferences(ctx context.Context, uow repository.UnitOfWork, locationID, propertyTypeID int64) error {
	fields := make(map[string]string)

	location, err := uow.Locations().GetByID(ctx, locationID)
	if err != nil {
		return err
	}
	if location == nil {
		fields["location_id"] = "Location does not exist"
	}

	propertyType, err := uow.PropertyTypes().GetByID(ctx, propertyTypeID)
	if err != nil {
		return err
	}
	if propertyType == nil {
		fields["property_type_id"] = "Property type does not exist"
	}

	if len(fields) > 0 {
		return apperr.Validation(fields)
	}
	return nil
}

// ownedProperty loads a property the caller may change.
func (s *propertyService) ownedProperty(ctx context.Context, uow repository.UnitOfWork, id int64) (*entity.Property, error) {
	property, err := mustFind(ctx, uow.Properties(), id, "property")
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(ctx, property.AgentID); err != nil {
		s.log.Warn("Property change denied", zap.Int64("property_id", id))
		return nil, err
	}
	return property, nil
}
