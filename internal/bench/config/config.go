package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	BaseURL            string        `env:"BASE_URL" envDefault:"http://localhost:3000"`
	Rate               int           `env:"RATE" envDefault:"100"`
	Duration           time.Duration `env:"DURATION" envDefault:"30s"`
	BenchType          string        `env:"BENCH_TYPE" envDefault:"mixed"`
	RateLimitBypass    string        `env:"RATE_LIMIT_BYPASS_SECRET"`
	InsecureSkipVerify bool          `env:"INSECURE_SKIP_VERIFY" envDefault:"false"`
	Connections        int           `env:"CONNECTIONS" envDefault:"1000"`
	MaxWorkers         uint64        `env:"MAX_WORKERS" envDefault:"0"`
	Timeout            time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	PreflightTimeout   time.Duration `env:"PREFLIGHT_TIMEOUT" envDefault:"10s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
