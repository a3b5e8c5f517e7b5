package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationSource(t *testing.T) {
	migrations, err := MigrationSource().FindMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	first := migrations[0]
	assert.Equal(t, "0001_interview_sessions.sql", first.Id)
	require.NotEmpty(t, first.Up)
	assert.Contains(t, first.Up[0], "CREATE TABLE IF NOT EXISTS interview_sessions")
	require.NotEmpty(t, first.Down)
	assert.Contains(t, first.Down[0], "DROP TABLE")
}
