package repository

import (
	"context"
	"fmt"

	"book-my-property/internal/data/entity"

	"go.uber.org/zap"
)

type PropertyImageRepository interface {
	SoftDeleteRepository[entity.PropertyImage]
	ListByProperty(ctx context.Context, propertyID int64) ([]*entity.PropertyImage, error)
	// ClearPrimary unsets the primary flag on every image of a property.
	ClearPrimary(ctx context.Context, propertyID int64) error
}

type propertyImageRepository struct {
	*softDeleteRepository[entity.PropertyImage]
}

func newPropertyImageRepository(s session, log *zap.Logger) PropertyImageRepository {
	return &propertyImageRepository{
		softDeleteRepository: newSoftDeleteRepository[entity.PropertyImage](s, propertyImageMapper, log),
	}
}

func (r *propertyImageRepository) ListByProperty(ctx context.Context, propertyID int64) ([]*entity.PropertyImage, error) {
	sql, args := Select(r.columns("")...).
		From(r.m.Table()).
		Where(And(Eq("property_id", propertyID), NotDeleted(""))).
		OrderBy("is_primary DESC, id").
		Build()
	return r.queryList(ctx, sql, args...)
}

func (r *propertyImageRepository) ClearPrimary(ctx context.Context, propertyID int64) error {
	clause, whereArgs := And(Eq("property_id", propertyID), Eq("is_primary", true), NotDeleted("")).Build()
	sql := rebind("UPDATE property_images SET is_primary = FALSE, modified_at = ? WHERE " + clause)

	tag, err := r.s.db().Exec(ctx, sql, append([]any{r.s.now()}, whereArgs...)...)
	if err != nil {
		r.log.Error("Failed to clear primary image", zap.Error(err), zap.Int64("property_id", propertyID))
		return fmt.Errorf("failed to clear primary image: %w", err)
	}
	r.s.track(tag.RowsAffected())
	return nil
}
