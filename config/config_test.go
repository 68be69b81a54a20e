package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Empty(t, cfg.DSN())
}

func TestDSNFromURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://shop:secret@db:5432/freshharvest")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://shop:secret@db:5432/freshharvest", cfg.DSN())
}

func TestDSNFromParts(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "shop")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "freshharvest")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t,
		"host=localhost user=shop password=secret dbname=freshharvest port=5432 sslmode=disable",
		cfg.DSN())
}
