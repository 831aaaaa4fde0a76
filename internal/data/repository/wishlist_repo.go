package repository

import (
	"context"
	"fmt"

	"book-my-property/internal/data/entity"

	"go.uber.org/zap"
)

type WishlistRepository interface {
	SoftDeleteRepository[entity.Wishlist]
	FindByUserAndProperty(ctx context.Context, userID, propertyID int64) (*entity.Wishlist, error)
	// ListByUser returns the user's entries joined with the listed property, newest first.
	ListByUser(ctx context.Context, userID int64) ([]*entity.WishlistEntry, error)
}

type wishlistRepository struct {
	*softDeleteRepository[entity.Wishlist]
}

func newWishlistRepository(s session, log *zap.Logger) WishlistRepository {
	return &wishlistRepository{
		softDeleteRepository: newSoftDeleteRepository[entity.Wishlist](s, wishlistMapper, log),
	}
}

func (r *wishlistRepository) FindByUserAndProperty(ctx context.Context, userID, propertyID int64) (*entity.Wishlist, error) {
	sql, args := Select(r.columns("")...).
		From(r.m.Table()).
		Where(And(Eq("user_id", userID), Eq("property_id", propertyID), NotDeleted(""))).
		Build()
	return r.queryOne(ctx, sql, args...)
}

func (r *wishlistRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.WishlistEntry, error) {
	sql, args := Select(
		"w.id", "w.property_id", "w.created_at",
		"p.title", "p.price", "p.status", "COALESCE(l.city, '')",
	).
		From("wishlists w " +
			"JOIN properties p ON p.id = w.property_id AND p.is_deleted = FALSE " +
			"LEFT JOIN locations l ON l.id = p.location_id AND l.is_deleted = FALSE").
		Where(And(Eq("w.user_id", userID), NotDeleted("w"))).
		OrderBy("w.created_at DESC, w.id DESC").
		Build()

	rows, err := r.s.db().Query(ctx, sql, args...)
	if err != nil {
		r.log.Error("Failed to list wishlist", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to list wishlist: %w", err)
	}
	defer rows.Close()

	entries := make([]*entity.WishlistEntry, 0)
	for rows.Next() {
		e := &entity.WishlistEntry{UserID: userID}
		if err := rows.Scan(&e.ID, &e.PropertyID, &e.AddedAt, &e.PropertyTitle, &e.Price, &e.Status, &e.City); err != nil {
			r.log.Error("Failed to scan wishlist row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan wishlist: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return entries, nil
}
