package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE teams (id TEXT PRIMARY KEY, name TEXT NOT NULL, apa_team_id TEXT)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "teams")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	byName := make(map[string]ColumnInfo)
	for _, col := range columns {
		byName[col.Field] = col
	}

	assert.Equal(t, "text", byName["id"].Type)
	assert.Equal(t, "PRI", byName["id"].Key)
	assert.Equal(t, "NO", byName["name"].Null)
	assert.Equal(t, "YES", byName["apa_team_id"].Null)

	// PRAGMA table_info returns no rows for unknown tables.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE players (id TEXT PRIMARY KEY, first_name TEXT)").Error)

	missing, err := MissingColumns(db, "players", []string{"id", "first_name", "last_name", "apa_number"})
	require.NoError(t, err)
	assert.Equal(t, []string{"last_name", "apa_number"}, missing)

	missing, err = MissingColumns(db, "absent", []string{"id"})
	require.NoError(t, err)
	assert.Equal(t, []string{"id"}, missing)
}
