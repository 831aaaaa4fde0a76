package repository

import (
	"time"

	"book-my-property/pkg/database"

	"go.uber.org/zap"
)

// Store hands out units of work. Each request takes its own.
type Store interface {
	NewUnitOfWork() UnitOfWork
}

type Repository struct {
	db    database.PgxIface
	clock func() time.Time
	log   *zap.Logger
}

type Option func(*Repository)

// WithClock overrides the UTC clock used for audit timestamps.
func WithClock(clock func() time.Time) Option {
	return func(r *Repository) { r.clock = clock }
}

func NewRepository(db database.PgxIface, log *zap.Logger, opts ...Option) *Repository {
	r := &Repository{
		db:    db,
		clock: func() time.Time { return time.Now().UTC() },
		log:   log,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Repository) NewUnitOfWork() UnitOfWork {
	return newUnitOfWork(r.db, r.clock, r.log)
}
