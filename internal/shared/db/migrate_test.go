package db

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	assert.Contains(t, names, "000001_init.up.sql")
	assert.Contains(t, names, "000001_init.down.sql")
}

func TestNewMigrator_UnknownDriver(t *testing.T) {
	_, err := NewMigrator("nope://localhost/bets")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create migrator")

	err = MigrateUp("nope://localhost/bets")
	assert.ErrorContains(t, err, "create migrator")
}
