package sqlstore_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/sneaker-inventory/internal/storage"
	"github.com/aaravmahajanofficial/sneaker-inventory/internal/storage/sqlstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (*sqlstore.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")
	t.Cleanup(func() { db.Close() })

	return sqlstore.New(db, sqlstore.DialectPostgres), mock
}

func TestPostgresStore(t *testing.T) {
	ctx := t.Context()

	selectSQL := `SELECT storage_value FROM kv_store WHERE storage_key = \$1`
	upsertSQL := `INSERT INTO kv_store \(storage_key, storage_value, updated_at\) VALUES \(\$1, \$2, \$3\)`
	deleteSQL := `DELETE FROM kv_store WHERE storage_key = \$1`

	t.Run("Get", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			store, mock := setupMock(t)
			mock.ExpectQuery(selectSQL).
				WithArgs("sneaker_inventory_users").
				WillReturnRows(sqlmock.NewRows([]string{"storage_value"}).AddRow(`[{"id":"1"}]`))

			// Act
			value, found, err := store.Get(ctx, "sneaker_inventory_users")

			// Assert
			require.NoError(t, err)
			assert.True(t, found)
			assert.JSONEq(t, `[{"id":"1"}]`, string(value))
			assert.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Not Found", func(t *testing.T) {
			store, mock := setupMock(t)
			mock.ExpectQuery(selectSQL).
				WithArgs("missing").
				WillReturnRows(sqlmock.NewRows([]string{"storage_value"}))

			value, found, err := store.Get(ctx, "missing")

			require.NoError(t, err)
			assert.False(t, found)
			assert.Nil(t, value)
			assert.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Query Error", func(t *testing.T) {
			store, mock := setupMock(t)
			dbErr := errors.New("connection reset")
			mock.ExpectQuery(selectSQL).WithArgs("k").WillReturnError(dbErr)

			_, found, err := store.Get(ctx, "k")

			require.Error(t, err)
			assert.False(t, found)
			assert.ErrorIs(t, err, dbErr)
			assert.Contains(t, err.Error(), "failed to get key k")
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("Set", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			store, mock := setupMock(t)
			mock.ExpectExec(upsertSQL).
				WithArgs("k", `{"a":1}`, sqlmock.AnyArg()).
				WillReturnResult(sqlmock.NewResult(0, 1))

			err := store.Set(ctx, "k", []byte(`{"a":1}`))

			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Exec Error", func(t *testing.T) {
			store, mock := setupMock(t)
			dbErr := errors.New("disk full")
			mock.ExpectExec(upsertSQL).
				WithArgs("k", "v", sqlmock.AnyArg()).
				WillReturnError(dbErr)

			err := store.Set(ctx, "k", []byte("v"))

			require.Error(t, err)
			assert.ErrorIs(t, err, dbErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("Delete", func(t *testing.T) {
		store, mock := setupMock(t)
		mock.ExpectExec(deleteSQL).WithArgs("k").WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, store.Delete(ctx, "k"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Migrate", func(t *testing.T) {
		store, mock := setupMock(t)
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS kv_store`).WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, store.Migrate(ctx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSQLiteStore(t *testing.T) {
	ctx := t.Context()
	path := filepath.Join(t.TempDir(), "inventory.db")

	store, err := sqlstore.Open(ctx, sqlstore.DialectSQLite, path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	_, found, err := store.Get(ctx, storage.UsersKey)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, storage.UsersKey, []byte(`[]`)))
	require.NoError(t, store.Set(ctx, storage.UsersKey, []byte(`[{"id":"u1"}]`)))

	value, found, err := store.Get(ctx, storage.UsersKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"u1"}]`, string(value))

	require.NoError(t, store.Delete(ctx, storage.UsersKey))
	require.NoError(t, store.Delete(ctx, storage.UsersKey))

	_, found, err = store.Get(ctx, storage.UsersKey)
	require.NoError(t, err)
	assert.False(t, found)

	t.Run("Data survives reopen", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, storage.CurrentUserKey, []byte(`{"id":"u2"}`)))
		require.NoError(t, store.Close())

		reopened, err := sqlstore.Open(ctx, sqlstore.DialectSQLite, path)
		require.NoError(t, err)
		t.Cleanup(func() { reopened.Close() })

		value, found, err := reopened.Get(ctx, storage.CurrentUserKey)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, `{"id":"u2"}`, string(value))
	})
}
