package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/diet-tracker/internal/config"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubDatabase(t *testing.T, migrate func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error) sqlmock.Sqlmock {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	origOpen, origUp := openDB, gooseUpContext
	t.Cleanup(func() {
		openDB, gooseUpContext = origOpen, origUp
		db.Close()
	})

	openDB = func(string) (*sql.DB, error) { return db, nil }
	gooseUpContext = migrate

	return mock
}

func TestNew(t *testing.T) {
	cfg := &config.Config{Database: config.Database{MaxOpenConns: 5, MaxIdleConns: 5}}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		var migratedDir string
		mock := stubDatabase(t, func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
			migratedDir = dir
			return nil
		})
		mock.ExpectPing()

		// Act
		repo, err := New(t.Context(), cfg)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, ".", migratedDir)
		assert.NotNil(t, repo.Users)
		assert.NotNil(t, repo.Products)
		assert.NotNil(t, repo.Meals)
		assert.NotNil(t, repo.Carts)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Ping", func(t *testing.T) {
		// Arrange
		mock := stubDatabase(t, func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
			t.Fatal("migrations must not run when ping fails")
			return nil
		})
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
		mock.ExpectClose()

		// Act
		repo, err := New(t.Context(), cfg)

		// Assert
		assert.Nil(t, repo)
		assert.ErrorContains(t, err, "failed to connect to database")
	})

	t.Run("Failure - Migrations", func(t *testing.T) {
		// Arrange
		migrationErr := errors.New("bad migration")
		mock := stubDatabase(t, func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
			return migrationErr
		})
		mock.ExpectPing()
		mock.ExpectClose()

		// Act
		repo, err := New(t.Context(), cfg)

		// Assert
		assert.Nil(t, repo)
		assert.ErrorIs(t, err, migrationErr)
	})

	t.Run("Failure - Open", func(t *testing.T) {
		// Arrange
		origOpen := openDB
		t.Cleanup(func() { openDB = origOpen })
		openDB = func(string) (*sql.DB, error) { return nil, errors.New("unknown driver") }

		// Act
		repo, err := New(t.Context(), cfg)

		// Assert
		assert.Nil(t, repo)
		assert.ErrorContains(t, err, "failed to open database")
	})
}
