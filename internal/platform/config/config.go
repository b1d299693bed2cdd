package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL    string `mapstructure:"PGSQL_URL"`
	Port           string `mapstructure:"PORT"`
	IsProduction   bool   `mapstructure:"IS_PRODUCTION"`
	EnableDBCheck  bool   `mapstructure:"ENABLE_DB_CHECK"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
	MigrationsPath string `mapstructure:"MIGRATIONS_PATH"`

	JWTSecret       string        `mapstructure:"JWT_SECRET"`
	JWTIssuer       string        `mapstructure:"JWT_ISSUER"`
	AccessTokenTTL  time.Duration `mapstructure:"ACCESS_TOKEN_TTL"`
	RefreshTokenTTL time.Duration `mapstructure:"REFRESH_TOKEN_TTL"`
	LoginRateLimit  string        `mapstructure:"LOGIN_RATE_LIMIT"`

	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	// External OAuth Providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`

	PosthogAPIKey   string `mapstructure:"POSTHOG_API_KEY"`
	PosthogEndpoint string `mapstructure:"POSTHOG_ENDPOINT"`

	FeedConfig   `mapstructure:",squash"`
	IngestConfig `mapstructure:",squash"`
}

// FeedConfig describes the remote rate feed.
type FeedConfig struct {
	FeedDailyURL          string        `mapstructure:"FEED_DAILY_URL"`
	FeedArchiveBaseURL    string        `mapstructure:"FEED_ARCHIVE_BASE_URL"`
	FeedArchiveSuffix     string        `mapstructure:"FEED_ARCHIVE_SUFFIX"`
	FeedCurrencyKey       string        `mapstructure:"FEED_CURRENCY_KEY"`
	FeedTimeout           time.Duration `mapstructure:"FEED_TIMEOUT"`
	FeedRequestsPerSecond float64       `mapstructure:"FEED_REQUESTS_PER_SECOND"`
}

// IngestConfig governs the daily ingestion schedule.
type IngestConfig struct {
	IngestEnabled   bool   `mapstructure:"INGEST_ENABLED"`
	IngestDays      int    `mapstructure:"INGEST_DAYS"`
	IngestHour      int    `mapstructure:"INGEST_HOUR"`
	IngestMinute    int    `mapstructure:"INGEST_MINUTE"`
	IngestTimezone  string `mapstructure:"INGEST_TIMEZONE"`
	IngestOnStartup bool   `mapstructure:"INGEST_ON_STARTUP"`

	// IngestLocation is resolved from IngestTimezone by Validate.
	IngestLocation *time.Location `mapstructure:"-"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, decodeHook()); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set.")
	}
	if cfg.JWTSecret == defaultJWTSecret {
		slog.Warn("JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" || cfg.GoogleRedirectURL == "" {
		slog.Warn("Google OAuth is not fully configured; code exchange will fail.")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")

	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", "currency-rates-app")
	v.SetDefault("ACCESS_TOKEN_TTL", "5m")
	v.SetDefault("REFRESH_TOKEN_TTL", "24h")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("GOOGLE_CLIENT_ID", "")
	v.SetDefault("GOOGLE_CLIENT_SECRET", "")
	v.SetDefault("GOOGLE_REDIRECT_URL", "")

	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://us.i.posthog.com")

	v.SetDefault("FEED_DAILY_URL", "https://www.cbr-xml-daily.ru/daily_json.js")
	v.SetDefault("FEED_ARCHIVE_BASE_URL", "https://www.cbr-xml-daily.ru/archive")
	v.SetDefault("FEED_ARCHIVE_SUFFIX", "daily_json.js")
	v.SetDefault("FEED_CURRENCY_KEY", "Valute")
	v.SetDefault("FEED_TIMEOUT", "10s")
	v.SetDefault("FEED_REQUESTS_PER_SECOND", 2.0)

	v.SetDefault("INGEST_ENABLED", true)
	v.SetDefault("INGEST_DAYS", 30)
	v.SetDefault("INGEST_HOUR", 12)
	v.SetDefault("INGEST_MINUTE", 0)
	v.SetDefault("INGEST_TIMEZONE", "Europe/Moscow")
	v.SetDefault("INGEST_ON_STARTUP", false)
}

func decodeHook() viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}
}

// Validate performs basic sanity checks on the configuration values and resolves the ingestion location.
func (c *Config) Validate() error {
	if c.AccessTokenTTL <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_TTL must be greater than zero")
	}
	if c.RefreshTokenTTL <= 0 {
		return fmt.Errorf("REFRESH_TOKEN_TTL must be greater than zero")
	}
	if c.FeedTimeout <= 0 {
		return fmt.Errorf("FEED_TIMEOUT must be greater than zero")
	}
	if c.FeedRequestsPerSecond <= 0 {
		return fmt.Errorf("FEED_REQUESTS_PER_SECOND must be greater than zero")
	}
	if c.FeedCurrencyKey == "" {
		return fmt.Errorf("FEED_CURRENCY_KEY cannot be empty")
	}
	if c.IngestDays <= 0 {
		return fmt.Errorf("INGEST_DAYS must be greater than zero")
	}
	if c.IngestHour < 0 || c.IngestHour > 23 {
		return fmt.Errorf("INGEST_HOUR must be between 0 and 23, got %d", c.IngestHour)
	}
	if c.IngestMinute < 0 || c.IngestMinute > 59 {
		return fmt.Errorf("INGEST_MINUTE must be between 0 and 59, got %d", c.IngestMinute)
	}

	loc, err := time.LoadLocation(c.IngestTimezone)
	if err != nil {
		return fmt.Errorf("INGEST_TIMEZONE %q: %w", c.IngestTimezone, err)
	}
	c.IngestLocation = loc
	return nil
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
