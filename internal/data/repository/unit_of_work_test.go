package repository

import (
	"context"
	"errors"
	"testing"

	"book-my-property/internal/data/entity"
	"book-my-property/pkg/apperr"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWork_CommitFlushesAndCommits(t *testing.T) {
	uow, mock := newMockUnitOfWork(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO locations").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(5)))
	mock.ExpectExec("SET CONSTRAINTS ALL IMMEDIATE").
		WillReturnResult(pgxmock.NewResult("SET", 0))
	mock.ExpectCommit()

	require.NoError(t, uow.BeginTransaction(ctx))
	assert.Equal(t, StateActive, uow.State())

	loc := &entity.Location{City: "Austin", State: "TX", Country: "USA", ZipCode: "73301"}
	require.NoError(t, uow.Locations().Add(ctx, loc))
	require.NoError(t, uow.Commit(ctx))

	assert.Equal(t, StateCommitted, uow.State())
	assert.Equal(t, int64(5), loc.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_BeginTwiceFails(t *testing.T) {
	uow, mock := newMockUnitOfWork(t)
	ctx := context.Background()

	mock.ExpectBegin()
	require.NoError(t, uow.BeginTransaction(ctx))

	assert.ErrorIs(t, uow.BeginTransaction(ctx), ErrTransactionActive)
	assert.Equal(t, StateActive, uow.State())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_CommitWithoutTransaction(t *testing.T) {
	uow, _ := newMockUnitOfWork(t)

	assert.ErrorIs(t, uow.Commit(context.Background()), ErrNoTransaction)
	assert.ErrorIs(t, uow.Rollback(context.Background()), ErrNoTransaction)
	assert.Equal(t, StateIdle, uow.State())
}

func TestUnitOfWork_RollbackDiscardsPending(t *testing.T) {
	uow, mock := newMockUnitOfWork(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO amenities").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(8)))
	mock.ExpectRollback()

	require.NoError(t, uow.BeginTransaction(ctx))
	require.NoError(t, uow.Amenities().Add(ctx, &entity.Amenity{Name: "Garden"}))
	require.NoError(t, uow.Rollback(ctx))

	assert.Equal(t, StateRolledBack, uow.State())
	n, err := uow.SaveChanges(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_DeferredConstraintFailureRollsBack(t *testing.T) {
	uow, mock := newMockUnitOfWork(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO property_images").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))
	mock.ExpectExec("SET CONSTRAINTS ALL IMMEDIATE").
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "property_images_property_id_fkey"})
	mock.ExpectRollback()

	require.NoError(t, uow.BeginTransaction(ctx))
	require.NoError(t, uow.Images().Add(ctx, &entity.PropertyImage{PropertyID: 404, ImageURL: "https://img.example.com/x.jpg"}))

	err := uow.Commit(ctx)

	assert.True(t, apperr.Is(err, apperr.KindInvalidArgument))
	assert.Equal(t, StateRolledBack, uow.State())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_CommitFailureRollsBack(t *testing.T) {
	uow, mock := newMockUnitOfWork(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("SET CONSTRAINTS ALL IMMEDIATE").
		WillReturnResult(pgxmock.NewResult("SET", 0))
	mock.ExpectCommit().WillReturnError(errors.New("connection lost"))
	mock.ExpectRollback()

	require.NoError(t, uow.BeginTransaction(ctx))
	err := uow.Commit(ctx)

	assert.ErrorContains(t, err, "connection lost")
	assert.Equal(t, StateRolledBack, uow.State())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_AutoCommitOutsideTransaction(t *testing.T) {
	uow, mock := newMockUnitOfWork(t)
	ctx := context.Background()

	mock.ExpectExec("UPDATE amenities SET is_deleted = TRUE").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	deleted, err := uow.Amenities().DeleteByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	n, err := uow.SaveChanges(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, StateIdle, uow.State())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		uow, mock := newMockUnitOfWork(t)
		mock.ExpectBegin()
		mock.ExpectExec("SET CONSTRAINTS ALL IMMEDIATE").
			WillReturnResult(pgxmock.NewResult("SET", 0))
		mock.ExpectCommit()

		err := InTransaction(ctx, uow, func(UnitOfWork) error { return nil })

		assert.NoError(t, err)
		assert.Equal(t, StateCommitted, uow.State())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on error", func(t *testing.T) {
		uow, mock := newMockUnitOfWork(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := apperr.NotFound("location not found")
		err := InTransaction(ctx, uow, func(UnitOfWork) error { return boom })

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, StateRolledBack, uow.State())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
