package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setCredentials(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIDEXAMPLE")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
}

func TestLoadDefaults(t *testing.T) {
	setCredentials(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DefaultTables, cfg.Tables)
	assert.Equal(t, 30*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 10*time.Second, cfg.StoreTimeout)
	assert.False(t, cfg.RollbackOnFailure)
	assert.Equal(t, time.UTC, cfg.Location)
}

func TestLoadOverrides(t *testing.T) {
	setCredentials(t)
	t.Setenv("TABLE_VAWC", "vawc_test")
	t.Setenv("STORE_TIMEOUT", "3")
	t.Setenv("STORE_ROLLBACK_ON_FAILURE", "true")
	t.Setenv("TIMEZONE", "Asia/Manila")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "vawc_test", cfg.Tables.VAWC)
	assert.Equal(t, 3*time.Second, cfg.StoreTimeout)
	assert.True(t, cfg.RollbackOnFailure)
	assert.Equal(t, "Asia/Manila", cfg.Location.String())
}

func TestLoadInvalid(t *testing.T) {
	t.Run("bad cache size", func(t *testing.T) {
		setCredentials(t)
		t.Setenv("CACHE_SIZE", "many")
		_, err := Load()
		assert.ErrorContains(t, err, "CACHE_SIZE")
	})

	t.Run("bad rollback flag", func(t *testing.T) {
		setCredentials(t)
		t.Setenv("STORE_ROLLBACK_ON_FAILURE", "sometimes")
		_, err := Load()
		assert.ErrorContains(t, err, "STORE_ROLLBACK_ON_FAILURE")
	})
}

func TestLoadWithoutCredentials(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.AWSAccessKeyID)
	assert.Empty(t, cfg.AWSSecretAccessKey)
}
