package usecase

import (
	"context"

	"book-my-property/internal/data/entity"
	"book-my-property/internal/data/repository"
	"book-my-property/internal/dto/response"
	"book-my-property/pkg/apperr"

	"go.uber.org/zap"
)

type WishlistService interface {
	List(ctx context.Context) ([]response.WishlistResponse, error)
	Add(ctx context.Context, propertyID int64) error
	Remove(ctx context.Context, propertyID int64) error
}

type wishlistService struct {
	store repository.Store
	log   *zap.Logger
}

func NewWishlistService(store repository.Store, log *zap.Logger) WishlistService {
	return &wishlistService{
		store: store,
		log:   log.With(zap.String("service", "wishlist")),
	}
}

func (s *wishlistService) List(ctx context.Context) ([]response.WishlistResponse, error) {
	userID, _, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.store.NewUnitOfWork().Wishlists().ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return response.WishlistToResponse(entries), nil
}

// Add saves a property for the caller. The partial unique index on
// (user_id, property_id) settles concurrent adds.
func (s *wishlistService) Add(ctx context.Context, propertyID int64) error {
	userID, _, err := caller(ctx)
	if err != nil {
		return err
	}

	uow := s.store.NewUnitOfWork()
	if _, err := mustFind(ctx, uow.Properties(), propertyID, "property"); err != nil {
		return err
	}

	existing, err := uow.Wishlists().FindByUserAndProperty(ctx, userID, propertyID)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperr.Conflict("property is already in the wishlist")
	}

	if err := uow.Wishlists().Add(ctx, &entity.Wishlist{UserID: userID, PropertyID: propertyID}); err != nil {
		if apperr.Is(err, apperr.KindConflict) {
			return apperr.Wrap(apperr.KindConflict, "property is already in the wishlist", err)
		}
		return err
	}

	s.log.Info("Wishlist item added", zap.Int64("user_id", userID), zap.Int64("property_id", propertyID))
	return nil
}

func (s *wishlistService) Remove(ctx context.Context, propertyID int64) error {
	userID, _, err := caller(ctx)
	if err != nil {
		return err
	}

	uow := s.store.NewUnitOfWork()
	item, err := uow.Wishlists().FindByUserAndProperty(ctx, userID, propertyID)
	if err != nil {
		return err
	}
	if item == nil {
		return apperr.NotFound("property is not in the wishlist")
	}

	if err := uow.Wishlists().Delete(ctx, item); err != nil {
		return err
	}

	s.log.Info("Wishlist item removed", zap.Int64("user_id", userID), zap.Int64("property_id", propertyID))
	return nil
}
