package repository

import (
	"context"

	"book-my-property/internal/data/entity"

	"go.uber.org/zap"
)

type UserRepository interface {
	SoftDeleteRepository[entity.User]
	// FindByEmail matches the stored (normalised) email of a non-deleted user.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

type userRepository struct {
	*softDeleteRepository[entity.User]
}

func newUserRepository(s session, log *zap.Logger) UserRepository {
	return &userRepository{
		softDeleteRepository: newSoftDeleteRepository[entity.User](s, userMapper, log),
	}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	sql, args := Select(r.columns("")...).
		From(r.m.Table()).
		Where(And(Eq("email", email), NotDeleted(""))).
		Build()
	return r.queryOne(ctx, sql, args...)
}
