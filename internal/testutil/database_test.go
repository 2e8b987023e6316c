package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTestDSN(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("TEST_POSTGRES_DSN", "")
		t.Setenv("TEST_MYSQL_DSN", "")
		assert.Equal(t, defaultPostgresTestDSN, GetPostgresTestDSN())
		assert.Equal(t, defaultMySQLTestDSN, GetMySQLTestDSN())
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("TEST_POSTGRES_DSN", "postgres://other")
		t.Setenv("TEST_MYSQL_DSN", "other@tcp(db)/x")
		assert.Equal(t, "postgres://other", GetPostgresTestDSN())
		assert.Equal(t, "other@tcp(db)/x", GetMySQLTestDSN())
	})
}

func TestGetMigrationsPath(t *testing.T) {
	path, err := getMigrationsPath("postgresql")
	require.NoError(t, err)
	assert.Equal(t, "postgresql", filepath.Base(path))

	entries, err := os.ReadDir(path)
	require.NoError(t, err)
	assert.NotEmpty(t, entries)

	_, err = getMigrationsPath("oracle")
	assert.Error(t, err)
}

func TestUUIDToDriverValue(t *testing.T) {
	id := uuid.Must(uuid.NewV7())

	value, err := uuidToDriverValue(id, "postgres")
	require.NoError(t, err)
	assert.Equal(t, id, value)

	value, err = uuidToDriverValue(id, "mysql")
	require.NoError(t, err)
	assert.Len(t, value, 16)
}
