package database

import (
	"context"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, cleanupFunc := SetupTestDBContainer(t, ctx)
	t.Cleanup(cleanupFunc)

	connString := db.Config().ConnString()

	m, err := GetMigrate(connString)
	require.NoError(t, err)
	defer func() {
		_, _ = m.Close()
	}()

	fnames, err := fs.Glob(migrationsFS, "migrations/*.up.sql")
	require.NoError(t, err)
	require.NotEmpty(t, fnames)

	for range fnames {
		err = m.Steps(1)
		assert.NoError(t, err)

		err = m.Steps(-1)
		assert.NoError(t, err)

		err = m.Steps(1)
		assert.NoError(t, err)
	}

	version, dirty, err := m.Version()
	require.NoError(t, err)
	assert.False(t, dirty)
	assert.Equal(t, uint(len(fnames)), version)

	require.NoError(t, MigrateUp(m), "an up-to-date schema is not an error")

	var primaryIndex bool
	err = db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'addresses_one_primary_idx')`,
	).Scan(&primaryIndex)
	require.NoError(t, err)
	assert.True(t, primaryIndex)

	require.NoError(t, MigrateDown(m, 0))
	var tables int
	err = db.QueryRow(ctx,
		`SELECT count(*) FROM information_schema.tables WHERE table_schema = 'public' AND table_name <> 'schema_migrations'`,
	).Scan(&tables)
	require.NoError(t, err)
	assert.Zero(t, tables)
}
