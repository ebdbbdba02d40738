// Package config provides configuration management for the exchange server.
package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/tysonmb/sportfolio/internal/models"
	"github.com/tysonmb/sportfolio/internal/strategy"
)

const (
	// defaultTotalRounds is used when league.total_rounds is unset.
	defaultTotalRounds = 10
	// defaultStartingCash is used when league.starting_cash is unset.
	defaultStartingCash = 10000
	// defaultPort is used when server.port is unset.
	defaultPort = 3000
)

// Config represents the complete application configuration.
type Config struct {
	Environment EnvironmentConfig `yaml:"environment"`
	League      LeagueConfig      `yaml:"league"`
	Storage     StorageConfig     `yaml:"storage"`
	Server      ServerConfig      `yaml:"server"`
}

// EnvironmentConfig defines the environment settings.
type EnvironmentConfig struct {
	LogLevel string `yaml:"log_level"` // debug | info | warn | error
}

// LeagueConfig defines the season's participants and economy settings.
type LeagueConfig struct {
	Admin        string      `yaml:"admin"`
	Humans       []string    `yaml:"humans"`
	Bots         []BotConfig `yaml:"bots"`
	StartingCash float64     `yaml:"starting_cash"`
	TotalRounds  int         `yaml:"total_rounds"`
}

// BotConfig names one automated participant and its fixed strategy.
type BotConfig struct {
	Name     string `yaml:"name"`
	Strategy string `yaml:"strategy"`
}

// StorageConfig defines storage settings for the game-state snapshot.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig defines HTTP server settings.
type ServerConfig struct {
	Port      int    `yaml:"port"`
	AuthToken string `yaml:"auth_token"`
}

// Load reads and parses the configuration file from the specified path.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config.yaml"
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- configPath is a user-provided config file path
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var config Config
	dec := yaml.NewDecoder(strings.NewReader(expanded))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate checks that all configuration values are valid and consistent.
// Out-of-range values are rejected, never silently replaced.
func (c *Config) Validate() error {
	c.normalize()

	switch c.Environment.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("environment.log_level must be one of debug|info|warn|error")
	}

	if c.League.Admin == "" {
		return fmt.Errorf("league.admin is required")
	}
	if len(c.League.Humans) == 0 {
		return fmt.Errorf("league.humans must name at least one participant")
	}
	if !slices.Contains(c.League.Humans, c.League.Admin) {
		return fmt.Errorf("league.admin %q must be one of league.humans", c.League.Admin)
	}

	seen := make(map[string]bool)
	for _, name := range c.League.Humans {
		if name == "" {
			return fmt.Errorf("league.humans must not contain empty names")
		}
		if seen[name] {
			return fmt.Errorf("duplicate participant name %q", name)
		}
		seen[name] = true
	}
	for _, bot := range c.League.Bots {
		if bot.Name == "" {
			return fmt.Errorf("league.bots entries require a name")
		}
		if seen[bot.Name] {
			return fmt.Errorf("duplicate participant name %q", bot.Name)
		}
		seen[bot.Name] = true
		if !slices.Contains(strategy.ValidNames(), bot.Strategy) {
			return fmt.Errorf("league.bots.%s: strategy must be one of %s, got %q",
				bot.Name, strings.Join(strategy.ValidNames(), "|"), bot.Strategy)
		}
	}

	if c.League.StartingCash <= 0 {
		return fmt.Errorf("league.starting_cash must be > 0")
	}
	if c.League.TotalRounds <= 0 {
		return fmt.Errorf("league.total_rounds must be > 0")
	}

	if c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535")
	}

	return nil
}

// normalize fills defaults for unset optional values.
func (c *Config) normalize() {
	if c.Environment.LogLevel == "" {
		c.Environment.LogLevel = "info"
	}
	if c.League.TotalRounds == 0 {
		c.League.TotalRounds = defaultTotalRounds
	}
	if c.League.StartingCash == 0 {
		c.League.StartingCash = defaultStartingCash
	}
	if c.Server.Port == 0 {
		c.Server.Port = defaultPort
	}
}

// Seeds returns the participant seeds for a fresh season, humans first in
// configured order.
func (c *Config) Seeds() []models.PlayerSeed {
	seeds := make([]models.PlayerSeed, 0, len(c.League.Humans)+len(c.League.Bots))
	for _, name := range c.League.Humans {
		seeds = append(seeds, models.PlayerSeed{Name: name, IsHuman: true})
	}
	for _, bot := range c.League.Bots {
		seeds = append(seeds, models.PlayerSeed{Name: bot.Name, Strategy: bot.Strategy})
	}
	return seeds
}

// BotOrder returns the automated participants in configured order, which
// fixes the order their strategies run each round.
func (c *Config) BotOrder() []string {
	names := make([]string, 0, len(c.League.Bots))
	for _, bot := range c.League.Bots {
		names = append(names, bot.Name)
	}
	return names
}
