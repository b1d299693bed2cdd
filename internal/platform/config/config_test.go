package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 24*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, "5-M", cfg.LoginRateLimit)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)

	assert.Equal(t, "https://www.cbr-xml-daily.ru/daily_json.js", cfg.FeedDailyURL)
	assert.Equal(t, "Valute", cfg.FeedCurrencyKey)
	assert.Equal(t, 10*time.Second, cfg.FeedTimeout)

	assert.Equal(t, 30, cfg.IngestDays)
	require.NotNil(t, cfg.IngestLocation)
	assert.Equal(t, "Europe/Moscow", cfg.IngestLocation.String())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ACCESS_TOKEN_TTL", "15m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example,http://b.example")
	t.Setenv("INGEST_DAYS", "7")
	t.Setenv("INGEST_TIMEZONE", "UTC")
	t.Setenv("FEED_CURRENCY_KEY", "Rates")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 7, cfg.IngestDays)
	assert.Equal(t, time.UTC, cfg.IngestLocation)
	assert.Equal(t, "Rates", cfg.FeedCurrencyKey)
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"zero days":    {"INGEST_DAYS", "0"},
		"bad hour":     {"INGEST_HOUR", "24"},
		"bad minute":   {"INGEST_MINUTE", "60"},
		"bad timezone": {"INGEST_TIMEZONE", "Mars/Olympus"},
		"zero timeout": {"FEED_TIMEOUT", "0s"},
	}

	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, (&Config{LogLevel: "debug"}).SlogLevel())
	assert.Equal(t, slog.LevelWarn, (&Config{LogLevel: "WARN"}).SlogLevel())
	assert.Equal(t, slog.LevelInfo, (&Config{LogLevel: "nonsense"}).SlogLevel())
}
