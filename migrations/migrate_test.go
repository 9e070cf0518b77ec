package migrations

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesItemsTable(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(db))

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='items'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "items", name)

	// Re-running must be a no-op, not an error.
	require.NoError(t, Migrate(db))
}
