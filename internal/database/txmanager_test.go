package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTx_Commit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close() //nolint:errcheck

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	txManager := NewTxManager(db)
	err = txManager.WithTx(context.Background(), func(ctx context.Context) error {
		_, err := GetTx(ctx, db).ExecContext(ctx, "UPDATE users SET active = true")
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollbackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close() //nolint:errcheck

	mock.ExpectBegin()
	mock.ExpectRollback()

	fnErr := errors.New("boom")
	err = NewTxManager(db).WithTx(context.Background(), func(ctx context.Context) error {
		return fnErr
	})

	assert.ErrorIs(t, err, fnErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_BeginError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close() //nolint:errcheck

	beginErr := errors.New("begin failed")
	mock.ExpectBegin().WillReturnError(beginErr)

	called := false
	err = NewTxManager(db).WithTx(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, beginErr)
	assert.False(t, called)
}

func TestGetTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close() //nolint:errcheck

	assert.Equal(t, db, GetTx(context.Background(), db))

	mock.ExpectBegin()
	mock.ExpectCommit()

	err = NewTxManager(db).WithTx(context.Background(), func(ctx context.Context) error {
		querier := GetTx(ctx, db)
		assert.NotEqual(t, db, querier)
		return nil
	})
	require.NoError(t, err)
}

func TestWithTx_NestedJoinsOuter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close() //nolint:errcheck

	mock.ExpectBegin()
	mock.ExpectCommit()

	txManager := NewTxManager(db)
	err = txManager.WithTx(context.Background(), func(ctx context.Context) error {
		assert.True(t, InTx(ctx))
		return txManager.WithTx(ctx, func(inner context.Context) error {
			assert.Equal(t, GetTx(ctx, db), GetTx(inner, db))
			return nil
		})
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollbackFailureIsJoined(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close() //nolint:errcheck

	mock.ExpectBegin()
	mock.ExpectRollback().WillReturnError(errors.New("connection lost"))

	fnErr := errors.New("boom")
	err = NewTxManager(db).WithTx(context.Background(), func(ctx context.Context) error {
		return fnErr
	})

	assert.ErrorIs(t, err, fnErr)
	assert.ErrorContains(t, err, "failed to rollback transaction")
}

func TestWithTx_PanicRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close() //nolint:errcheck

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = NewTxManager(db).WithTx(context.Background(), func(ctx context.Context) error {
			panic("unexpected")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
