package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DBPath      string `env:"DB_PATH" envDefault:"/tmp/submission_service_db.sqlite"`
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`
	OwnerID     string `env:"OWNER_ID"`

	DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"en"`
	AutoMigrate   bool   `env:"AUTO_MIGRATE" envDefault:"true"`

	SubmissionEditPolicy   string `env:"SUBMISSION_EDIT_POLICY" envDefault:"silent"`
	BlockClosedEventDrafts bool   `env:"BLOCK_CLOSED_EVENT_DRAFTS" envDefault:"false"`

	DiscordToken      string `env:"DISCORD_TOKEN"`
	AnnounceChannelID string `env:"DISCORD_ANNOUNCE_CHANNEL_ID"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	// .env is optional when the variables come from the environment (Docker, CI).
	_ = godotenv.Load()
	return parse(env.Options{})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// StorageURL is DATABASE_URL when set, else the SQLite file at DB_PATH.
func (c *Config) StorageURL() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return "sqlite://" + c.DBPath
}

// AnnouncementsEnabled reports whether a Discord token was provided.
func (c *Config) AnnouncementsEnabled() bool {
	return c.DiscordToken != ""
}

func (c *Config) validate() error {
	c.OwnerID = strings.TrimSpace(c.OwnerID)
	if c.OwnerID == "" {
		return fmt.Errorf("config: OWNER_ID is required")
	}

	c.DatabaseURL = strings.TrimSpace(c.DatabaseURL)
	if c.DatabaseURL != "" &&
		!strings.HasPrefix(c.DatabaseURL, "postgres://") && !strings.HasPrefix(c.DatabaseURL, "postgresql://") {
		return fmt.Errorf("config: DATABASE_URL must be a postgres:// URL (got %q)", c.DatabaseURL)
	}
	if c.DatabaseURL == "" && strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("config: DB_PATH cannot be empty")
	}

	switch c.SubmissionEditPolicy {
	case "silent", "strict":
	default:
		return fmt.Errorf("config: SUBMISSION_EDIT_POLICY must be silent or strict (got %q)", c.SubmissionEditPolicy)
	}

	if c.AnnouncementsEnabled() {
		if strings.TrimSpace(c.AnnounceChannelID) == "" {
			return fmt.Errorf("config: DISCORD_ANNOUNCE_CHANNEL_ID is required with DISCORD_TOKEN")
		}
		for _, r := range c.AnnounceChannelID {
			if r < '0' || r > '9' {
				return fmt.Errorf("config: DISCORD_ANNOUNCE_CHANNEL_ID must be a Discord channel ID (digits only)")
			}
		}
	}
	return nil
}
