// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_ = mock // goose talks to the DB itself; every unexpected call fails

	err = Migrate(context.Background(), db, DialectPostgres)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(context.Background(), db, DialectPostgres)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(context.Background(), db, "mysql")
	assert.ErrorIs(t, err, ErrUnsupportedDialect)
}

// TestEmbeddedMigrations_SameVersions checks that both dialects ship the same
// migration versions.
func TestEmbeddedMigrations_SameVersions(t *testing.T) {
	pg, err := fs.Glob(embedMigrations, "postgres/*.sql")
	require.NoError(t, err)
	lite, err := fs.Glob(embedMigrations, "sqlite/*.sql")
	require.NoError(t, err)

	require.NotEmpty(t, pg)
	require.Len(t, lite, len(pg))

	for i := range pg {
		assert.Equal(t,
			strings.TrimPrefix(pg[i], "postgres/"),
			strings.TrimPrefix(lite[i], "sqlite/"),
		)
	}
}

func TestCuratedEvents(t *testing.T) {
	events := CuratedEvents()
	require.Len(t, events, 3)

	seed, err := fs.ReadFile(embedMigrations, "postgres/00005_seed_events.sql")
	require.NoError(t, err)

	for _, e := range events {
		assert.NotEmpty(t, e.Name)
		assert.GreaterOrEqual(t, e.Price, 0.0)
		assert.Equal(t, 2025, e.StartsAt.Year())
		assert.Contains(t, string(seed), e.Name)
	}
}
