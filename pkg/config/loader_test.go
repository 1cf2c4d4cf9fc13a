package config

import (
	"context"
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
	err := os.WriteFile(filepath.Join(dir, "inquira.yaml"), []byte(content), 0o644)
	require.NoError(t, err)
	return dir
}

func TestInitialize_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Queue.WorkerCount)
	assert.Equal(t, 10*time.Minute, cfg.Queue.SessionTimeout)
	assert.Equal(t, "gpt-4o", cfg.Providers.OpenAI.Model)
	assert.Equal(t, "gemini-2.0-flash", cfg.Providers.Gemini.Model)
	assert.Equal(t, "openai", cfg.Providers.Refinement.Provider)
	assert.Equal(t, "SENDGRID_API_KEY", cfg.Mailer.APIKeyEnv)
	assert.Equal(t, 30, cfg.Retention.SessionRetentionDays)
	assert.Equal(t, 1*time.Hour, cfg.Retention.CleanupInterval)
}

func TestInitialize_FileOverridesDefaults(t *testing.T) {
	dir := writeConfig(t, `
queue:
  worker_count: 7
providers:
  openai:
    model: gpt-5
  refinement:
    provider: gemini
system:
  dashboard_url: https://app.example.com
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Queue.WorkerCount)
	// Unset fields keep their defaults
	assert.Equal(t, 5, cfg.Queue.MaxConcurrentSessions)
	assert.Equal(t, "gpt-5", cfg.Providers.OpenAI.Model)
	assert.Equal(t, "gemini-2.0-flash", cfg.Providers.Gemini.Model)
	assert.Equal(t, "gemini", cfg.Providers.Refinement.Provider)
	assert.Equal(t, "https://app.example.com", cfg.DashboardURL)
}

func TestInitialize_ValidationRejectsBadConfig(t *testing.T) {
	dir := writeConfig(t, `
providers:
  refinement:
    provider: claude
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorContains(t, err, "refinement.provider")
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("INQUIRA_TEST_FROM", "reports@example.com")

	expanded := ExpandEnv([]byte("from_email: {{.INQUIRA_TEST_FROM}}"))
	assert.Equal(t, "from_email: reports@example.com", string(expanded))

	// Missing variables expand to empty
	expanded = ExpandEnv([]byte("value: {{.INQUIRA_TEST_UNSET_VAR}}"))
	assert.Equal(t, "value: ", string(expanded))

	// Content without template syntax passes through untouched
	plain := []byte("plain: value")
	assert.Equal(t, plain, ExpandEnv(plain))
}
