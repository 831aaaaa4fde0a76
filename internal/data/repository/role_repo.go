package repository

import (
	"context"

	"book-my-property/internal/data/entity"

	"go.uber.org/zap"
)

type RoleRepository interface {
	SoftDeleteRepository[entity.Role]
	FindByName(ctx context.Context, name string) (*entity.Role, error)
}

type roleRepository struct {
	*softDeleteRepository[entity.Role]
}

func newRoleRepository(s session, log *zap.Logger) RoleRepository {
	return &roleRepository{
		softDeleteRepository: newSoftDeleteRepository[entity.Role](s, roleMapper, log),
	}
}

func (r *roleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	sql, args := Select(r.columns("")...).
		From(r.m.Table()).
		Where(And(Eq("name", name), NotDeleted(""))).
		Build()
	return r.queryOne(ctx, sql, args...)
}
