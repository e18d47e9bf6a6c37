package attack

import (
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

type Config struct {
	BaseURL            string
	Rate               int
	Duration           time.Duration
	Type               string
	RateLimitBypass    string
	InsecureSkipVerify bool
	Connections        int
	MaxWorkers         uint64
	Timeout            time.Duration
}

// ErrorRate tallies /api/error outcomes: 500 is the simulated failure, 200
// the normal answer, anything else is unexpected.
type ErrorRate struct {
	Total      int
	Failures   int
	Unexpected int
}

func (e *ErrorRate) Add(res *vegeta.Result) {
	if !strings.HasSuffix(res.URL, PathError) {
		return
	}
	e.Total++
	switch res.Code {
	case http.StatusOK:
	case http.StatusInternalServerError:
		e.Failures++
	default:
		e.Unexpected++
	}
}

func (e *ErrorRate) Ratio() float64 {
	if e.Total == 0 {
		return 0
	}
	return float64(e.Failures) / float64(e.Total)
}

func (e *ErrorRate) Report(w io.Writer) error {
	if e.Total == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "%s failure rate: %.2f%% (%d/%d, unexpected %d)\n",
		PathError, e.Ratio()*100, e.Failures, e.Total, e.Unexpected)
	return err
}

func Targeter(cfg *Config) (vegeta.Targeter, error) {
	switch cfg.Type {
	case "health":
		return PathTargeter(cfg.BaseURL, PathHealth, cfg.RateLimitBypass), nil
	case "users":
		return PathTargeter(cfg.BaseURL, PathUsers, cfg.RateLimitBypass), nil
	case "status":
		return PathTargeter(cfg.BaseURL, PathStatus, cfg.RateLimitBypass), nil
	case "error":
		return PathTargeter(cfg.BaseURL, PathError, cfg.RateLimitBypass), nil
	case "mixed":
		return MixedTargeter(cfg.BaseURL, cfg.RateLimitBypass), nil
	default:
		return nil, fmt.Errorf("unknown attack type: %s", cfg.Type)
	}
}

func Run(cfg *Config) error {
	targeter, err := Targeter(cfg)
	if err != nil {
		return err
	}

	opts := []func(*vegeta.Attacker){
		vegeta.Redirects(-1),
		vegeta.KeepAlive(true),
		vegeta.Connections(cfg.Connections),
		vegeta.Timeout(cfg.Timeout),
		vegeta.MaxBody(0),
		vegeta.HTTP2(false),
		vegeta.TLSConfig(&tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify}),
	}
	if cfg.MaxWorkers > 0 {
		opts = append(opts, vegeta.MaxWorkers(cfg.MaxWorkers))
	}
	attacker := vegeta.NewAttacker(opts...)

	rate := vegeta.Rate{Freq: cfg.Rate, Per: time.Second}
	fmt.Printf("Starting %s attack: rate=%d/s duration=%s\n", cfg.Type, cfg.Rate, cfg.Duration)

	var metrics vegeta.Metrics
	var errorRate ErrorRate
	for res := range attacker.Attack(targeter, rate, cfg.Duration, cfg.Type) {
		metrics.Add(res)
		errorRate.Add(res)
	}
	metrics.Close()

	reporter := vegeta.NewTextReporter(&metrics)
	if err := reporter.Report(os.Stdout); err != nil {
		return err
	}
	return errorRate.Report(os.Stdout)
}
