package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnit_ParseFetchMode(t *testing.T) {
	for in, want := range map[string]FetchMode{"": FetchModeProxy, "Direct": FetchModeDirect, " browser ": FetchModeBrowser} {
		got, err := ParseFetchMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseFetchMode("carrier-pigeon")
	assert.Error(t, err)
}

func TestUnit_LoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("BMS_BOOKER_TEST_A=from-file\nBMS_BOOKER_TEST_B=from-file\n"), 0o600))

	t.Setenv("BMS_BOOKER_TEST_B", "from-env")
	t.Cleanup(func() { _ = os.Unsetenv("BMS_BOOKER_TEST_A") })

	require.NoError(t, LoadDotEnv(path, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "from-file", os.Getenv("BMS_BOOKER_TEST_A"))
	assert.Equal(t, "from-env", os.Getenv("BMS_BOOKER_TEST_B"), "environment wins over .env")
}

func TestUnit_Env(t *testing.T) {
	assert.Equal(t, []string{"BMS_BOOKER_AUTH_TOKEN", "AUTH_TOKEN"}, Env("AUTH_TOKEN", "AUTH_TOKEN"))
}

func TestUnit_Validate(t *testing.T) {
	cfg := Default()
	assert.ErrorContains(t, cfg.ValidateFetch(), "scrape token")

	cfg.FetchMode = FetchModeDirect
	assert.NoError(t, cfg.ValidateFetch())

	err := cfg.ValidateServe()
	assert.ErrorContains(t, err, "auth token")
	assert.ErrorContains(t, err, "owner number")

	cfg.AuthToken, cfg.OwnerNumber = "t", "1"
	assert.NoError(t, cfg.ValidateServe())

	cfg.MatchCutoff = 2
	assert.ErrorContains(t, cfg.ValidateServe(), "cutoff")
}
