package config

import (
	"fmt"
	"time"

	"github.com/Joseph25Rejo/quarks-inngest/pkg/redis"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config represents the application configuration.
type Config struct {
	App     AppConfig     `envPrefix:"APP_"`
	Yahoo   YahooConfig   `envPrefix:"YAHOO_"`
	History HistoryConfig `envPrefix:"HISTORY_"`
	Stream  StreamConfig  `envPrefix:"STREAM_"`
	Redis   redis.Config  `envPrefix:"REDIS_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name        string `env:"NAME" envDefault:"quarks-gateway"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Host        string `env:"HOST" envDefault:"0.0.0.0"`
	Port        int    `env:"PORT" envDefault:"5000"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// AllowedOrigins is honored only in production; development allows all.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"https://quarks-nu.vercel.app,http://localhost:3000,http://localhost:3001,http://localhost:5000"`
}

// IsProduction reports whether the gateway runs with production settings.
func (a AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

// YahooConfig represents the upstream provider configuration.
type YahooConfig struct {
	ChartBaseURL string        `env:"CHART_BASE_URL" envDefault:"https://query1.finance.yahoo.com/v8/finance/chart"`
	QuoteBaseURL string        `env:"QUOTE_BASE_URL" envDefault:"https://query1.finance.yahoo.com/v7/finance/quote"`
	Timeout      time.Duration `env:"TIMEOUT" envDefault:"30s"`
	UserAgent    string        `env:"USER_AGENT" envDefault:"Mozilla/5.0"`
}

// HistoryConfig represents the historical aggregator configuration.
type HistoryConfig struct {
	// PacingDelay is slept between successive provider calls within one
	// bundle fetch to respect upstream rate limits.
	PacingDelay time.Duration `env:"PACING_DELAY" envDefault:"1s"`

	// CacheBackend selects the bundle cache implementation: memory or redis.
	CacheBackend string `env:"CACHE_BACKEND" envDefault:"memory"`
	// CacheTTL of zero keeps bundles for the process lifetime.
	CacheTTL        time.Duration `env:"CACHE_TTL" envDefault:"0"`
	CacheMaxEntries int           `env:"CACHE_MAX_ENTRIES" envDefault:"256"`
}

// StreamConfig represents the live stream controller configuration.
type StreamConfig struct {
	BasePollInterval time.Duration `env:"BASE_POLL_INTERVAL" envDefault:"30s"`
	MaxPollInterval  time.Duration `env:"MAX_POLL_INTERVAL" envDefault:"5m"`
	RetryDelayStep   time.Duration `env:"RETRY_DELAY_STEP" envDefault:"30s"`
	MaxRetryDelay    time.Duration `env:"MAX_RETRY_DELAY" envDefault:"2m"`
	MaxErrors        int           `env:"MAX_ERRORS" envDefault:"5"`

	// QuietPollLimit bounds consecutive polls that return neither a price
	// nor an error before the session counts one as a provider failure.
	QuietPollLimit int `env:"QUIET_POLL_LIMIT" envDefault:"10"`
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
