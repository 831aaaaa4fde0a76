package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"book-my-property/pkg/apperr"
	"book-my-property/pkg/database"
	"book-my-property/pkg/utils"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// SoftDeleteRepository is the CRUD contract every entity repository offers.
// Reads never return rows flagged is_deleted unless the method says so, and
// deletes only set the flag.
type SoftDeleteRepository[T any] interface {
	// GetByID returns nil, nil when the row is missing or soft-deleted.
	GetByID(ctx context.Context, id int64) (*T, error)
	GetAll(ctx context.Context) ([]*T, error)
	GetAllIncludingDeleted(ctx context.Context) ([]*T, error)
	GetPaged(ctx context.Context, pageNumber, pageSize int) (*Page[*T], error)
	Add(ctx context.Context, e *T) error
	Update(ctx context.Context, e *T) error
	Delete(ctx context.Context, e *T) error
	// DeleteByID reports false when there was nothing to delete.
	DeleteByID(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type softDeleteRepository[T any] struct {
	s   session
	m   Mapper[T]
	log *zap.Logger
}

func newSoftDeleteRepository[T any](s session, m Mapper[T], log *zap.Logger) *softDeleteRepository[T] {
	return &softDeleteRepository[T]{
		s:   s,
		m:   m,
		log: log.With(zap.String("repository", m.Table())),
	}
}

// columns returns base plus entity columns, qualified with alias when set.
func (r *softDeleteRepository[T]) columns(alias string) []string {
	all := make([]string, 0, len(baseColumns)+len(r.m.Columns()))
	for _, c := range baseColumns {
		all = append(all, qualify(alias, c))
	}
	for _, c := range r.m.Columns() {
		all = append(all, qualify(alias, c))
	}
	return all
}

func (r *softDeleteRepository[T]) scan(row pgx.Row) (*T, error) {
	var e T
	dest := append(baseTargets(r.m.Base(&e)), r.m.Targets(&e)...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *softDeleteRepository[T]) queryOne(ctx context.Context, sql string, args ...any) (*T, error) {
	e, err := r.scan(r.s.db().QueryRow(ctx, sql, args...))
	if database.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to load "+r.m.Name(), zap.Error(err))
		return nil, fmt.Errorf("failed to load %s: %w", r.m.Name(), err)
	}
	return e, nil
}

func (r *softDeleteRepository[T]) queryList(ctx context.Context, sql string, args ...any) ([]*T, error) {
	rows, err := r.s.db().Query(ctx, sql, args...)
	if err != nil {
		r.log.Error("Failed to list "+r.m.Name(), zap.Error(err))
		return nil, fmt.Errorf("failed to list %s: %w", r.m.Name(), err)
	}
	defer rows.Close()

	items := make([]*T, 0)
	for rows.Next() {
		e, err := r.scan(rows)
		if err != nil {
			r.log.Error("Failed to scan "+r.m.Name()+" row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan %s: %w", r.m.Name(), err)
		}
		items = append(items, e)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return items, nil
}

func (r *softDeleteRepository[T]) count(ctx context.Context, from string, where Where) (int64, error) {
	sql, args := Select("COUNT(*)").From(from).Where(where).Build()

	var total int64
	if err := r.s.db().QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count "+r.m.Name(), zap.Error(err))
		return 0, fmt.Errorf("failed to count %s: %w", r.m.Name(), err)
	}
	return total, nil
}

func (r *softDeleteRepository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	sql, args := Select(r.columns("")...).
		From(r.m.Table()).
		Where(And(Eq("id", id), NotDeleted(""))).
		Build()
	return r.queryOne(ctx, sql, args...)
}

func (r *softDeleteRepository[T]) GetAll(ctx context.Context) ([]*T, error) {
	sql, args := Select(r.columns("")...).
		From(r.m.Table()).
		Where(NotDeleted("")).
		OrderBy("id").
		Build()
	return r.queryList(ctx, sql, args...)
}

func (r *softDeleteRepository[T]) GetAllIncludingDeleted(ctx context.Context) ([]*T, error) {
	sql, args := Select(r.columns("")...).
		From(r.m.Table()).
		OrderBy("id").
		Build()
	return r.queryList(ctx, sql, args...)
}

func (r *softDeleteRepository[T]) GetPaged(ctx context.Context, pageNumber, pageSize int) (*Page[*T], error) {
	if err := ValidatePage(pageNumber, pageSize); err != nil {
		return nil, err
	}

	total, err := r.count(ctx, r.m.Table(), NotDeleted(""))
	if err != nil {
		return nil, err
	}

	sql, args := Select(r.columns("")...).
		From(r.m.Table()).
		Where(NotDeleted("")).
		OrderBy("id").
		Page(pageNumber, pageSize).
		Build()
	items, err := r.queryList(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	return NewPage(items, pageNumber, pageSize, total), nil
}

func (r *softDeleteRepository[T]) Add(ctx context.Context, e *T) error {
	base := r.m.Base(e)
	base.MarkCreated(r.s.now(), utils.ActorFromContext(ctx))

	cols := append([]string{"created_at", "created_by", "modified_at", "modified_by", "is_deleted"}, r.m.Columns()...)
	args := append([]any{base.CreatedAt, base.CreatedBy, base.ModifiedAt, base.ModifiedBy, base.IsDeleted}, r.m.Values(e)...)

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	sql := rebind(fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		r.m.Table(), strings.Join(cols, ", "), placeholders))

	if err := r.s.db().QueryRow(ctx, sql, args...).Scan(&base.ID); err != nil {
		return r.writeError("add", err)
	}

	r.s.track(1)
	r.log.Debug(r.m.Name()+" added", zap.Int64("id", base.ID))
	return nil
}

func (r *softDeleteRepository[T]) Update(ctx context.Context, e *T) error {
	base := r.m.Base(e)
	base.MarkModified(r.s.now(), utils.ActorFromContext(ctx))

	sets := make([]string, 0, len(r.m.Columns())+2)
	for _, c := range r.m.Columns() {
		sets = append(sets, c+" = ?")
	}
	sets = append(sets, "modified_at = ?", "modified_by = ?")
	args := append(r.m.Values(e), base.ModifiedAt, base.ModifiedBy)

	clause, whereArgs := And(Eq("id", base.ID), NotDeleted("")).Build()
	sql := rebind(fmt.Sprintf("UPDATE %s SET %s WHERE %s", r.m.Table(), strings.Join(sets, ", "), clause))
	args = append(args, whereArgs...)

	tag, err := r.s.db().Exec(ctx, sql, args...)
	if err != nil {
		return r.writeError("update", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("%s not found", r.m.Name())
	}

	r.s.track(tag.RowsAffected())
	return nil
}

func (r *softDeleteRepository[T]) Delete(ctx context.Context, e *T) error {
	base := r.m.Base(e)
	at, by := r.s.now(), utils.ActorFromContext(ctx)

	deleted, err := r.softDelete(ctx, base.ID, at, by)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("%s not found", r.m.Name())
	}
	base.MarkDeleted(at, by)
	return nil
}

func (r *softDeleteRepository[T]) DeleteByID(ctx context.Context, id int64) (bool, error) {
	return r.softDelete(ctx, id, r.s.now(), utils.ActorFromContext(ctx))
}

func (r *softDeleteRepository[T]) softDelete(ctx context.Context, id int64, at time.Time, by *string) (bool, error) {
	clause, whereArgs := And(Eq("id", id), NotDeleted("")).Build()
	sql := rebind(fmt.Sprintf("UPDATE %s SET is_deleted = TRUE, modified_at = ?, modified_by = ? WHERE %s",
		r.m.Table(), clause))
	args := append([]any{at, by}, whereArgs...)

	tag, err := r.s.db().Exec(ctx, sql, args...)
	if err != nil {
		r.log.Error("Failed to delete "+r.m.Name(), zap.Error(err), zap.Int64("id", id))
		return false, fmt.Errorf("failed to delete %s: %w", r.m.Name(), err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	r.s.track(tag.RowsAffected())
	r.log.Info(r.m.Name()+" soft deleted", zap.Int64("id", id))
	return true, nil
}

func (r *softDeleteRepository[T]) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, r.m.Table(), NotDeleted(""))
}

// writeError classifies constraint violations raised by inserts and updates.
func (r *softDeleteRepository[T]) writeError(action string, err error) error {
	switch {
	case database.IsUniqueViolation(err):
		r.log.Warn(r.m.Name()+" "+action+" rejected by unique constraint",
			zap.String("constraint", database.ConstraintName(err)))
		return apperr.Wrap(apperr.KindConflict, r.m.Name()+" already exists", err)
	case database.IsForeignKeyViolation(err):
		r.log.Warn(r.m.Name()+" "+action+" references a missing record",
			zap.String("constraint", database.ConstraintName(err)))
		return apperr.Wrap(apperr.KindInvalidArgument, r.m.Name()+" references a record that does not exist", err)
	}
	r.log.Error("Failed to "+action+" "+r.m.Name(), zap.Error(err))
	return fmt.Errorf("failed to %s %s: %w", action, r.m.Name(), err)
}
