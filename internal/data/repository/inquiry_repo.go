package repository

import (
	"context"

	"book-my-property/internal/data/entity"

	"go.uber.org/zap"
)

type ContactInquiryRepository interface {
	SoftDeleteRepository[entity.ContactInquiry]
	ListByProperty(ctx context.Context, propertyID int64) ([]*entity.ContactInquiry, error)
}

type contactInquiryRepository struct {
	*softDeleteRepository[entity.ContactInquiry]
}

func newContactInquiryRepository(s session, log *zap.Logger) ContactInquiryRepository {
	return &contactInquiryRepository{
		softDeleteRepository: newSoftDeleteRepository[entity.ContactInquiry](s, contactInquiryMapper, log),
	}
}

func (r *contactInquiryRepository) ListByProperty(ctx context.Context, propertyID int64) ([]*entity.ContactInquiry, error) {
	sql, args := Select(r.columns("")...).
		From(r.m.Table()).
		Where(And(Eq("property_id", propertyID), NotDeleted(""))).
		OrderBy("created_at DESC, id DESC").
		Build()
	return r.queryList(ctx, sql, args...)
}
