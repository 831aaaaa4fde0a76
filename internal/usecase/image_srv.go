package usecase

import (
	"context"

	"book-my-property/internal/data/entity"
	"book-my-property/internal/data/repository"
	"book-my-property/internal/dto/request"
	"book-my-property/internal/dto/response"

	"go.uber.org/zap"
)

type ImageService interface {
	ListByProperty(ctx context.Context, propertyID int64) ([]response.ImageResponse, error)
	GetByID(ctx context.Context, id int64) (*response.ImageResponse, error)
	Create(ctx context.Context, req *request.CreateImageRequest) (*response.ImageResponse, error)
	Update(ctx context.Context, id int64, req *request.UpdateImageRequest) (*response.ImageResponse, error)
	Delete(ctx context.Context, id int64) error
}

type imageService struct {
	store repository.Store
	log   *zap.Logger
}

func NewImageService(store repository.Store, log *zap.Logger) ImageService {
	return &imageService{
		store: store,
		log:   log.With(zap.String("service", "image")),
	}
}

func (s *imageService) ListByProperty(ctx context.Context, propertyID int64) ([]response.ImageResponse, error) {
	uow := s.store.NewUnitOfWork()
	if _, err := mustFind(ctx, uow.Properties(), propertyID, "property"); err != nil {
		return nil, err
	}

	images, err := uow.Images().ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	return response.ImagesToResponse(images), nil
}

func (s *imageService) GetByID(ctx context.Context, id int64) (*response.ImageResponse, error) {
	img, err := mustFind(ctx, s.store.NewUnitOfWork().Images(), id, "image")
	if err != nil {
		return nil, err
	}
	resp := response.ImageToResponse(img)
	return &resp, nil
}

// Create adds an image; a new primary image demotes the previous one in the same transaction.
func (s *imageService) Create(ctx context.Context, req *request.CreateImageRequest) (*response.ImageResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	uow := s.store.NewUnitOfWork()
	property, err := mustFind(ctx, uow.Properties(), req.PropertyID, "property")
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(ctx, property.AgentID); err != nil {
		return nil, err
	}

	img := &entity.PropertyImage{PropertyID: req.PropertyID, ImageURL: req.ImageURL, IsPrimary: req.IsPrimary}
	err = repository.InTransaction(ctx, uow, func(tx repository.UnitOfWork) error {
		if img.IsPrimary {
			if err := tx.Images().ClearPrimary(ctx, img.PropertyID); err != nil {
				return err
			}
		}
		return tx.Images().Add(ctx, img)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Image added", zap.Int64("image_id", img.ID), zap.Int64("property_id", img.PropertyID))
	resp := response.ImageToResponse(img)
	return &resp, nil
}

func (s *imageService) Update(ctx context.Context, id int64, req *request.UpdateImageRequest) (*response.ImageResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	uow := s.store.NewUnitOfWork()
	img, err := s.ownedImage(ctx, uow, id)
	if err != nil {
		return nil, err
	}

	promote := req.IsPrimary && !img.IsPrimary
	img.ImageURL = req.ImageURL
	img.IsPrimary = req.IsPrimary

	err = repository.InTransaction(ctx, uow, func(tx repository.UnitOfWork) error {
		if promote {
			if err := tx.Images().ClearPrimary(ctx, img.PropertyID); err != nil {
				return err
			}
		}
		return tx.Images().Update(ctx, img)
	})
	if err != nil {
		return nil, err
	}

	resp := response.ImageToResponse(img)
	return &resp, nil
}

func (s *imageService) Delete(ctx context.Context, id int64) error {
	uow := s.store.NewUnitOfWork()
	img, err := s.ownedImage(ctx, uow, id)
	if err != nil {
		return err
	}

	if err := uow.Images().Delete(ctx, img); err != nil {
		return err
	}

	s.log.Info("Image deleted", zap.Int64("image_id", id))
	return nil
}

func (s *imageService) ownedImage(ctx context.Context, uow repository.UnitOfWork, id int64) (*entity.PropertyImage, error) {
	img, err := mustFind(ctx, uow.Images(), id, "image")
	if err != nil {
		return nil, err
	}
	property, err := mustFind(ctx, uow.Properties(), img.PropertyID, "property")
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(ctx, property.AgentID); err != nil {
		return nil, err
	}
	return img, nil
}
