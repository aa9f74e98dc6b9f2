// Package config collects the command-line tunables of the selector.
package config

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"wifisim/connection"
	"wifisim/netsource"
)

// Config holds every tunable of a run.
type Config struct {
	ScanDelay    time.Duration
	ConnectDelay time.Duration
	FailureDelay time.Duration
	MinNetworks  int
	MaxNetworks  int
	SecureRatio  float64
	Seed         uint64
	Pool         []string

	LogFile  string
	LogLevel string
	Inline   bool
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		ScanDelay:    netsource.DefaultScanDelay,
		ConnectDelay: connection.DefaultConnectDelay,
		FailureDelay: connection.DefaultFailureDelay,
		MinNetworks:  netsource.DefaultMinCount,
		MaxNetworks:  netsource.DefaultMaxCount,
		SecureRatio:  netsource.DefaultSecureRatio,
		Pool:         append([]string(nil), netsource.DefaultPool...),
	}
}

// BindFlags registers flags on fs that write into c. Current field values
// become the flag defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.DurationVar(&c.ScanDelay, "scan-delay", c.ScanDelay, "simulated scan duration")
	fs.DurationVar(&c.ConnectDelay, "connect-delay", c.ConnectDelay, "time from connecting to connected")
	fs.DurationVar(&c.FailureDelay, "failure-delay", c.FailureDelay, "how long a failed attempt stays on screen")
	fs.IntVar(&c.MinNetworks, "min-networks", c.MinNetworks, "fewest networks a scan returns")
	fs.IntVar(&c.MaxNetworks, "max-networks", c.MaxNetworks, "most networks a scan returns")
	fs.Float64Var(&c.SecureRatio, "secure-ratio", c.SecureRatio, "probability that a network is secured")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one)")
	fs.StringSliceVar(&c.Pool, "ssid", c.Pool, "candidate SSIDs (repeatable)")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "log file path (default: XDG state dir)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error (default: $LOG_LEVEL or info)")
	fs.BoolVar(&c.Inline, "inline", c.Inline, "render inline instead of using the alternate screen")
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.ScanDelay <= 0:
		return errors.Errorf("scan delay must be positive, got %s", c.ScanDelay)
	case c.ConnectDelay <= 0:
		return errors.Errorf("connect delay must be positive, got %s", c.ConnectDelay)
	case c.FailureDelay <= 0:
		return errors.Errorf("failure delay must be positive, got %s", c.FailureDelay)
	case c.MinNetworks < 1:
		return errors.Errorf("min networks must be at least 1, got %d", c.MinNetworks)
	case c.MaxNetworks < c.MinNetworks:
		return errors.Errorf("max networks (%d) below min networks (%d)", c.MaxNetworks, c.MinNetworks)
	case c.SecureRatio < 0 || c.SecureRatio > 1:
		return errors.Errorf("secure ratio must be within [0,1], got %v", c.SecureRatio)
	case len(c.Pool) == 0:
		return errors.New("SSID pool is empty")
	}
	return nil
}

// MockConfig projects c onto the mock network source.
func (c Config) MockConfig() netsource.MockConfig {
	return netsource.MockConfig{
		Pool:        append([]string(nil), c.Pool...),
		Delay:       c.ScanDelay,
		MinCount:    c.MinNetworks,
		MaxCount:    c.MaxNetworks,
		SecureRatio: c.SecureRatio,
		Seed:        c.Seed,
	}
}

// Delays projects c onto the connection controller.
func (c Config) Delays() connection.Delays {
	return connection.Delays{Connect: c.ConnectDelay, FailureClear: c.FailureDelay}
}
