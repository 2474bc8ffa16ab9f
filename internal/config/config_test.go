package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DISCORD_CLIENT_ID", "client")
	t.Setenv("DISCORD_CLIENT_SECRET", "secret")
	t.Setenv("DISCORD_REDIRECT_URI", "http://localhost:5000/callback")
	t.Setenv("SECRET_KEY", "session-secret")
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("SELLHUB_SECRET", "hook")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "client", cfg.Discord.ClientID)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "hook", cfg.Webhook.Secret)
	assert.Equal(t, "sqlite:iceai.db", cfg.Database.URL)
	assert.Equal(t, 10*time.Second, cfg.Discord.Timeout)
	assert.Equal(t, []string{"identify", "guilds"}, cfg.Discord.Scopes)
}

func TestLoadConfig_FileThenEnvOverride(t *testing.T) {
	setRequiredEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  port: 9000
  env: production
discord:
  timeout: 3s
database:
  url: "postgres://u:p@localhost/db"
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("DATABASE_URL", "sqlite:override.db")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 3*time.Second, cfg.Discord.Timeout)
	assert.Equal(t, "sqlite:override.db", cfg.Database.URL)
}

func TestValidate_ListsEveryMissingVariable(t *testing.T) {
	cfg := Default()

	err := cfg.Validate()
	require.Error(t, err)
	for _, name := range []string{"DISCORD_CLIENT_ID", "DISCORD_CLIENT_SECRET", "DISCORD_REDIRECT_URI", "SECRET_KEY"} {
		assert.Contains(t, err.Error(), name)
	}
}

func TestValidate_WebhookSecretOptional(t *testing.T) {
	cfg := Default()
	cfg.Discord.ClientID = "a"
	cfg.Discord.ClientSecret = "b"
	cfg.Discord.RedirectURI = "c"
	cfg.Session.Secret = "d"

	assert.NoError(t, cfg.Validate())
	assert.Empty(t, cfg.Webhook.Secret)
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("SERVER_PORT", "abc")

	_, err := LoadConfig()
	assert.Error(t, err)
}
