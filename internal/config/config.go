// Package config loads the bot configuration from defaults, an optional
// config.yaml, a .env file and the environment, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/diegoclair/slack-announcement-bot/internal/domain"
	"github.com/diegoclair/slack-announcement-bot/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultStoreDriver  = "file"
	DefaultStorePath    = "./announcements.json"
	DefaultPort         = "3000"
	DefaultTickInterval = domain.DefaultTickInterval
	DefaultDrainTimeout = domain.DefaultDrainTimeout
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
	DefaultDeliveryRate = 1.0
)

type Config struct {
	SlackBotToken      string `mapstructure:"slack_bot_token"      validate:"required"`
	SlackSigningSecret string `mapstructure:"slack_signing_secret" validate:"required"`
	SlackChannelID     string `mapstructure:"slack_channel_id"     validate:"required"`

	StoreDriver string `mapstructure:"store_driver" validate:"required,oneof=file json sqlite sqlite3"`
	StorePath   string `mapstructure:"store_path"   validate:"required"`

	Port string `mapstructure:"port" validate:"required,numeric"`

	TickInterval time.Duration `mapstructure:"tick_interval" validate:"min=1s,max=1m"`
	DrainTimeout time.Duration `mapstructure:"drain_timeout" validate:"min=0s"`
	// Timezone is an IANA name; empty means the host's local zone.
	Timezone string `mapstructure:"timezone"`

	LogLevel  string `mapstructure:"log_level"  validate:"required,oneof=debug info warn warning error"`
	LogFormat string `mapstructure:"log_format" validate:"required,oneof=console json"`

	// DeliveryRate caps Slack posts per second; 0 disables the limit.
	DeliveryRate    float64 `mapstructure:"delivery_rate" validate:"gte=0"`
	AnnounceOnStart bool    `mapstructure:"announce_on_start"`

	Location *time.Location `mapstructure:"-" validate:"-"`
}

var defaults = map[string]any{
	"slack_bot_token":      "",
	"slack_signing_secret": "",
	"slack_channel_id":     "",
	"store_driver":         DefaultStoreDriver,
	"store_path":           DefaultStorePath,
	"port":                 DefaultPort,
	"tick_interval":        DefaultTickInterval,
	"drain_timeout":        DefaultDrainTimeout,
	"timezone":             "",
	"log_level":            DefaultLogLevel,
	"log_format":           DefaultLogFormat,
	"delivery_rate":        DefaultDeliveryRate,
	"announce_on_start":    false,
}

// Load reads configuration relative to the working directory.
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom reads dir/.env and dir/config.yaml when present, then the
// environment. Environment variables use the upper-case key names, e.g.
// SLACK_BOT_TOKEN.
func LoadFrom(dir string) (*Config, error) {
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errs.NewConfigError("failed to load .env file", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errs.NewConfigError("failed to read config file", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errs.NewConfigError("failed to parse config", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field and resolves Location.
func (c *Config) Validate() error {
	c.StoreDriver = strings.ToLower(strings.TrimSpace(c.StoreDriver))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))

	if err := validator.New().Struct(c); err != nil {
		return errs.NewConfigError(describe(err), err)
	}

	loc := time.Local
	if tz := strings.TrimSpace(c.Timezone); tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			return errs.NewConfigError(fmt.Sprintf("invalid timezone %q", tz), err)
		}
		loc = l
	}
	c.Location = loc

	return nil
}

// describe names the offending keys the way they are set in the environment.
func describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return "invalid configuration"
	}

	keys := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		keys = append(keys, fmt.Sprintf("%s (%s)", envName(fe.StructField()), fe.Tag()))
	}
	return "invalid configuration: " + strings.Join(keys, ", ")
}

var envNames = map[string]string{
	"SlackBotToken":      "SLACK_BOT_TOKEN",
	"SlackSigningSecret": "SLACK_SIGNING_SECRET",
	"SlackChannelID":     "SLACK_CHANNEL_ID",
	"StoreDriver":        "STORE_DRIVER",
	"StorePath":          "STORE_PATH",
	"Port":               "PORT",
	"TickInterval":       "TICK_INTERVAL",
	"DrainTimeout":       "DRAIN_TIMEOUT",
	"LogLevel":           "LOG_LEVEL",
	"LogFormat":          "LOG_FORMAT",
	"DeliveryRate":       "DELIVERY_RATE",
}

func envName(field string) string {
	if name, ok := envNames[field]; ok {
		return name
	}
	return field
}
