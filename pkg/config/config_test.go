package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	dir := writeConfig(t, "client:\n  token: tok\n")

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultHost, cfg.Client.URL)
	assert.Equal(t, "cloud", cfg.Client.Hosting)
	assert.Equal(t, 120*time.Second, cfg.Client.Timeout)
	assert.Equal(t, 3, cfg.Client.MaxRetries)
	assert.Equal(t, time.Second, cfg.Client.RetryDelay)
	assert.False(t, cfg.Breaker.Enabled)
}

func TestLoadFullConfig(t *testing.T) {
	dir := writeConfig(t, `
client:
  url: https://api.example.com
  token: tok
  model: luminous-base
  timeout: 30s
  max_retries: 5
breaker:
  enabled: true
  timeout: 10s
  max_failures: 3
defaults:
  temperature: 0.7
  maximum_tokens: 128
  stop_sequences: ["\n"]
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.Client.URL)
	assert.Equal(t, "luminous-base", cfg.Client.Model)
	assert.Equal(t, 30*time.Second, cfg.Client.Timeout)
	assert.Equal(t, 5, cfg.Client.MaxRetries)
	assert.True(t, cfg.Breaker.Enabled)
	assert.Equal(t, uint32(3), cfg.Breaker.MaxFailures)

	req, err := cfg.CompletionDefaults()
	require.NoError(t, err)
	assert.InDelta(t, 0.7, req.Temperature, 1e-9)
	assert.Equal(t, 128, req.MaximumTokens)
	assert.Equal(t, []string{"\n"}, req.StopSequences)
	assert.Equal(t, "cloud", req.Hosting)
}

func TestCompletionDefaultsRejectsUnknownKeys(t *testing.T) {
	cfg := &Config{Defaults: map[string]interface{}{"temprature": 0.7}}
	_, err := cfg.CompletionDefaults()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "temprature")
}

func TestCompletionDefaultsEmpty(t *testing.T) {
	cfg := &Config{}
	req, err := cfg.CompletionDefaults()
	require.NoError(t, err)
	assert.Equal(t, 64, req.MaximumTokens)
	assert.Equal(t, 1, req.N)
}

func TestValidate(t *testing.T) {
	t.Run("token suffices", func(t *testing.T) {
		cfg := &Config{Client: ClientConfig{URL: DefaultHost, Token: "tok"}}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("credentials suffice", func(t *testing.T) {
		cfg := &Config{Client: ClientConfig{URL: DefaultHost, Email: "a@b.c", Password: "pw"}}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing auth", func(t *testing.T) {
		cfg := &Config{Client: ClientConfig{URL: DefaultHost}}
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing url", func(t *testing.T) {
		cfg := &Config{Client: ClientConfig{Token: "tok"}}
		assert.Error(t, cfg.Validate())
	})
}
