package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
environment:
  log_level: debug
league:
  admin: Tyson
  humans: [Tyson, Jas, Sam]
  bots:
    - name: Alex
      strategy: momentum
    - name: Jordan
      strategy: blueChip
  starting_cash: 10000
  total_rounds: 10
storage:
  path: sportfolio.json
server:
  port: 3000
  auth_token: secret
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadValidConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Environment.LogLevel)
	assert.Equal(t, "Tyson", cfg.League.Admin)
	assert.Len(t, cfg.League.Humans, 3)
	assert.Len(t, cfg.League.Bots, 2)
	assert.Equal(t, "momentum", cfg.League.Bots[0].Strategy)
	assert.Equal(t, 10000.0, cfg.League.StartingCash)
	assert.Equal(t, "sportfolio.json", cfg.Storage.Path)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	yaml := validYAML + "\nbroker:\n  api_key: abc\n"
	_, err := Load(writeConfig(t, yaml))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoadExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("SPORTFOLIO_TOKEN", "from-env")
	yaml := `
league:
  admin: Tyson
  humans: [Tyson]
storage:
  path: sportfolio.json
server:
  auth_token: ${SPORTFOLIO_TOKEN}
`
	cfg, err := Load(writeConfig(t, yaml))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Server.AuthToken)
}

func TestDefaults(t *testing.T) {
	yaml := `
league:
  admin: Tyson
  humans: [Tyson]
storage:
  path: sportfolio.json
`
	cfg, err := Load(writeConfig(t, yaml))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Environment.LogLevel)
	assert.Equal(t, 10, cfg.League.TotalRounds)
	assert.Equal(t, 10000.0, cfg.League.StartingCash)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestValidateRejections(t *testing.T) {
	base := func() *Config {
		return &Config{
			League: LeagueConfig{
				Admin:  "Tyson",
				Humans: []string{"Tyson", "Jas"},
				Bots:   []BotConfig{{Name: "Alex", Strategy: "momentum"}},
			},
			Storage: StorageConfig{Path: "sportfolio.json"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Environment.LogLevel = "verbose" },
			wantErr: "log_level",
		},
		{
			name:    "missing admin",
			mutate:  func(c *Config) { c.League.Admin = "" },
			wantErr: "admin is required",
		},
		{
			name:    "admin not a participant",
			mutate:  func(c *Config) { c.League.Admin = "Michael" },
			wantErr: "must be one of league.humans",
		},
		{
			name:    "no humans",
			mutate:  func(c *Config) { c.League.Humans = nil },
			wantErr: "at least one participant",
		},
		{
			name:    "duplicate human",
			mutate:  func(c *Config) { c.League.Humans = []string{"Tyson", "Tyson"} },
			wantErr: "duplicate participant",
		},
		{
			name: "bot shadows a human",
			mutate: func(c *Config) {
				c.League.Bots = []BotConfig{{Name: "Jas", Strategy: "momentum"}}
			},
			wantErr: "duplicate participant",
		},
		{
			name: "unknown strategy",
			mutate: func(c *Config) {
				c.League.Bots = []BotConfig{{Name: "Alex", Strategy: "arbitrage"}}
			},
			wantErr: "strategy must be one of",
		},
		{
			name:    "negative starting cash",
			mutate:  func(c *Config) { c.League.StartingCash = -5 },
			wantErr: "starting_cash",
		},
		{
			name:    "negative rounds",
			mutate:  func(c *Config) { c.League.TotalRounds = -1 },
			wantErr: "total_rounds",
		},
		{
			name:    "missing storage path",
			mutate:  func(c *Config) { c.Storage.Path = "" },
			wantErr: "storage.path",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "server.port",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSeedsOrder(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)

	seeds := cfg.Seeds()
	require.Len(t, seeds, 5)
	assert.Equal(t, "Tyson", seeds[0].Name)
	assert.True(t, seeds[0].IsHuman)
	assert.Equal(t, "Alex", seeds[3].Name)
	assert.False(t, seeds[3].IsHuman)
	assert.Equal(t, "momentum", seeds[3].Strategy)

	assert.Equal(t, []string{"Alex", "Jordan"}, cfg.BotOrder())
}
