package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"book-my-property/internal/data/entity"
	"book-my-property/pkg/apperr"
	"book-my-property/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var (
	ErrTransactionActive = errors.New("unit of work: transaction already active")
	ErrNoTransaction     = errors.New("unit of work: no active transaction")
)

type TxState int

const (
	StateIdle TxState = iota
	StateActive
	StateCommitted
	StateRolledBack
)

func (s TxState) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateCommitted:
		return "committed"
	case StateRolledBack:
		return "rolled_back"
	default:
		return "idle"
	}
}

// UnitOfWork groups repository mutations into one transaction. Outside a
// transaction every mutation commits on its own. A unit of work belongs to a
// single request and is not safe for concurrent use.
type UnitOfWork interface {
	Users() UserRepository
	Roles() RoleRepository
	Properties() PropertyRepository
	PropertyTypes() SoftDeleteRepository[entity.PropertyType]
	Locations() SoftDeleteRepository[entity.Location]
	Amenities() SoftDeleteRepository[entity.Amenity]
	Images() PropertyImageRepository
	Inquiries() ContactInquiryRepository
	Wishlists() WishlistRepository

	BeginTransaction(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	// SaveChanges returns the rows written since the previous call.
	SaveChanges(ctx context.Context) (int64, error)
	State() TxState
}

// session is what repositories need from their unit of work.
type session interface {
	db() database.DBTX
	now() time.Time
	track(rows int64)
}

type unitOfWork struct {
	pool    database.PgxIface
	tx      pgx.Tx
	state   TxState
	pending int64
	clock   func() time.Time
	log     *zap.Logger

	users         UserRepository
	roles         RoleRepository
	properties    PropertyRepository
	propertyTypes SoftDeleteRepository[entity.PropertyType]
	locations     SoftDeleteRepository[entity.Location]
	amenities     SoftDeleteRepository[entity.Amenity]
	images        PropertyImageRepository
	inquiries     ContactInquiryRepository
	wishlists     WishlistRepository
}

func newUnitOfWork(pool database.PgxIface, clock func() time.Time, log *zap.Logger) *unitOfWork {
	u := &unitOfWork{
		pool:  pool,
		clock: clock,
		log:   log.With(zap.String("component", "unit_of_work")),
	}
	u.users = newUserRepository(u, log)
	u.roles = newRoleRepository(u, log)
	u.properties = newPropertyRepository(u, log)
	u.propertyTypes = newSoftDeleteRepository[entity.PropertyType](u, propertyTypeMapper, log)
	u.locations = newSoftDeleteRepository[entity.Location](u, locationMapper, log)
	u.amenities = newSoftDeleteRepository[entity.Amenity](u, amenityMapper, log)
	u.images = newPropertyImageRepository(u, log)
	u.inquiries = newContactInquiryRepository(u, log)
	u.wishlists = newWishlistRepository(u, log)
	return u
}

func (u *unitOfWork) Users() UserRepository          { return u.users }
func (u *unitOfWork) Roles() RoleRepository          { return u.roles }
func (u *unitOfWork) Properties() PropertyRepository { return u.properties }
func (u *unitOfWork) PropertyTypes() SoftDeleteRepository[entity.PropertyType] {
	return u.propertyTypes
}
func (u *unitOfWork) Locations() SoftDeleteRepository[entity.Location] { return u.locations }
func (u *unitOfWork) Amenities() SoftDeleteRepository[entity.Amenity]  { return u.amenities }
func (u *unitOfWork) Images() PropertyImageRepository                  { return u.images }
func (u *unitOfWork) Inquiries() ContactInquiryRepository              { return u.inquiries }
func (u *unitOfWork) Wishlists() WishlistRepository                    { return u.wishlists }

func (u *unitOfWork) State() TxState { return u.state }

func (u *unitOfWork) db() database.DBTX {
	if u.state == StateActive {
		return u.tx
	}
	return u.pool
}

func (u *unitOfWork) now() time.Time { return u.clock() }

func (u *unitOfWork) track(rows int64) { u.pending += rows }

func (u *unitOfWork) BeginTransaction(ctx context.Context) error {
	if u.state == StateActive {
		return ErrTransactionActive
	}

	tx, err := u.pool.Begin(ctx)
	if err != nil {
		u.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin transaction: %w", err)
	}

	u.tx = tx
	u.pending = 0
	u.state = StateActive
	return nil
}

func (u *unitOfWork) SaveChanges(ctx context.Context) (int64, error) {
	if u.state == StateActive {
		// deferred foreign keys are checked here instead of at commit
		if _, err := u.tx.Exec(ctx, "SET CONSTRAINTS ALL IMMEDIATE"); err != nil {
			return 0, classifyConstraintError(err, "save changes")
		}
	}

	n := u.pending
	u.pending = 0
	return n, nil
}

func (u *unitOfWork) Commit(ctx context.Context) error {
	if u.state != StateActive {
		return ErrNoTransaction
	}

	if _, err := u.SaveChanges(ctx); err != nil {
		u.abort(ctx, err)
		return err
	}

	if err := u.tx.Commit(ctx); err != nil {
		u.abort(ctx, err)
		return classifyConstraintError(err, "commit transaction")
	}

	u.release(StateCommitted)
	return nil
}

func (u *unitOfWork) Rollback(ctx context.Context) error {
	if u.state != StateActive {
		return ErrNoTransaction
	}

	err := u.tx.Rollback(ctx)
	u.release(StateRolledBack)
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		u.log.Error("Failed to roll back transaction", zap.Error(err))
		return fmt.Errorf("rollback transaction: %w", err)
	}
	return nil
}

// abort rolls back after a failed flush or commit. The original error wins.
func (u *unitOfWork) abort(ctx context.Context, cause error) {
	u.log.Warn("Commit failed, rolling back", zap.Error(cause))
	if err := u.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		u.log.Error("Rollback after failed commit also failed", zap.Error(err))
	}
	u.release(StateRolledBack)
}

func (u *unitOfWork) release(final TxState) {
	u.tx = nil
	u.pending = 0
	u.state = final
}

func classifyConstraintError(err error, action string) error {
	switch {
	case database.IsForeignKeyViolation(err):
		return apperr.Wrap(apperr.KindInvalidArgument, "referenced record does not exist", err)
	case database.IsUniqueViolation(err):
		return apperr.Wrap(apperr.KindConflict, "record already exists", err)
	}
	return fmt.Errorf("%s: %w", action, err)
}

// InTransaction runs fn inside a transaction on uow. fn's error triggers a
// rollback; otherwise the transaction commits.
func InTransaction(ctx context.Context, uow UnitOfWork, fn func(UnitOfWork) error) error {
	if err := uow.BeginTransaction(ctx); err != nil {
		return err
	}

	if err := fn(uow); err != nil {
		if rbErr := uow.Rollback(ctx); rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return err
	}

	return uow.Commit(ctx)
}
