package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

var (
	ErrUnknownEnvironment = errors.New("unknown environment")
	ErrInvalidTimeout     = errors.New("timeout must be positive")
	ErrInvalidPort        = errors.New("port out of range")
)

type Config struct {
	Server     ServerConfig
	App        AppConfig
	Log        LogConfig
	External   ExternalConfig
	Shutdown   ShutdownConfig
	HTTP       HTTPConfig
	RateLimit  RateLimitConfig
	Pprof      PprofConfig
	Monitoring MonitoringConfig
}

type ServerConfig struct {
	Host           string `env:"HOST" envDefault:"0.0.0.0"`
	Port           int    `env:"PORT" envDefault:"3000"`
	MaxConnections int    `env:"MAX_CONNECTIONS" envDefault:"0"`
}

type AppConfig struct {
	Name          string `env:"APP_NAME" envDefault:"sample-app"`
	Version       string `env:"APP_VERSION" envDefault:"1.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"development"`
	BuildDate     string `env:"BUILD_DATE"`
	DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"ko"`
}

func (a AppConfig) IsProduction() bool {
	return a.Environment == EnvProduction
}

type LogConfig struct {
	Level      string `env:"LOG_LEVEL"`
	Dir        string `env:"LOG_DIR" envDefault:"/var/log/app"`
	MaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"5"`
	MaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"5"`
}

type ExternalConfig struct {
	SampleAppURL string        `env:"SAMPLE2_APP_URL" envDefault:"http://sample2-app:3000"`
	Timeout      time.Duration `env:"EXTERNAL_TIMEOUT" envDefault:"5s"`
}

type ShutdownConfig struct {
	Timeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

type HTTPConfig struct {
	BodyLimit    string        `env:"BODY_LIMIT" envDefault:"10M"`
	CORSOrigins  []string      `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
}

type RateLimitConfig struct {
	Enabled       bool    `env:"RATE_LIMIT_ENABLED" envDefault:"false"`
	RPS           float64 `env:"RATE_LIMIT_RPS" envDefault:"100"`
	Burst         int     `env:"RATE_LIMIT_BURST" envDefault:"200"`
	ExpireMinutes int     `env:"RATE_LIMIT_EXPIRE_MINUTES" envDefault:"3"`
	BypassSecret  string  `env:"RATE_LIMIT_BYPASS_SECRET"`
}

type PprofConfig struct {
	Enabled bool   `env:"PPROF_ENABLED" envDefault:"false"`
	Secret  string `env:"PPROF_SECRET"`
}

type MonitoringConfig struct {
	BufferSize int `env:"MONITORING_BUFFER_SIZE" envDefault:"1024"`
}

// Load reads the optional .env files and then the process environment.
// Variables already present in the environment win over file values.
func Load(envFiles ...string) (*Config, error) {
	if err := loadEnvFiles(envFiles); err != nil {
		return nil, err
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if cfg.App.BuildDate == "" {
		cfg.App.BuildDate = time.Now().UTC().Format(time.RFC3339)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		files = []string{".env"}
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("failed to load env files: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.App.Environment {
	case EnvDevelopment, EnvStaging, EnvProduction:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEnvironment, c.App.Environment)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Server.Port)
	}
	if c.External.Timeout <= 0 {
		return fmt.Errorf("external: %w", ErrInvalidTimeout)
	}
	if c.Shutdown.Timeout <= 0 {
		return fmt.Errorf("shutdown: %w", ErrInvalidTimeout)
	}
	return nil
}
