package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	ErrMissingPrime    = errors.New("missing prime")
	ErrMismatchedPairs = errors.New("number of p and q values differ")
	ErrInvalidOption   = errors.New("invalid option")
)

type Config struct {
	P           []string
	Q           []string
	Timeout     time.Duration
	Workers     int
	Fingerprint bool
	LogLevel    string
}

// Configuration options
const (
	PrimeP      = "prime-p"
	PrimeQ      = "prime-q"
	Timeout     = "timeout"
	Workers     = "workers"
	Fingerprint = "fingerprint"
	LogLevel    = "log-level"
)

// EnvPrefix is prepended to every option when read from the environment,
// e.g. --prime-p is configurable using RSAKEYS_PRIME_P.
const EnvPrefix = "RSAKEYS"

func flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SortFlags = false

	fs.StringSliceP(PrimeP, "p", nil, "A prime number. Comma separated values generate one key per (p, q) pair")
	fs.StringSliceP(PrimeQ, "q", nil, "A different prime number, paired with the value of p at the same position")
	fs.Duration(Timeout, 0, "Give up on key generation after this long (0 waits forever)")
	fs.Int(Workers, 0, "Maximum number of keys generated concurrently (0 means one per pair)")
	fs.Bool(Fingerprint, false, "Also print a fingerprint of each public key")
	fs.String(LogLevel, "warn", "Log level (debug, info, warn, error)")
	return fs
}

// New parses args into a Config.
//
// Options given as flags take precedence over environment variables.
// No configuration file is read.
func New(name string, args []string) (*Config, error) {
	fs := flags(name)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	cfg := &Config{
		P:           splitList(v.GetStringSlice(PrimeP)),
		Q:           splitList(v.GetStringSlice(PrimeQ)),
		Timeout:     v.GetDuration(Timeout),
		Workers:     v.GetInt(Workers),
		Fingerprint: v.GetBool(Fingerprint),
		LogLevel:    v.GetString(LogLevel),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// splitList flattens comma separated entries, which is how lists arrive from
// the environment.
func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		for _, s := range strings.Split(value, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func (c Config) Validate() error {
	if len(c.P) == 0 {
		return fmt.Errorf("required key '%s' not configured: %w", PrimeP, ErrMissingPrime)
	}
	if len(c.Q) == 0 {
		return fmt.Errorf("required key '%s' not configured: %w", PrimeQ, ErrMissingPrime)
	}
	if len(c.P) != len(c.Q) {
		return fmt.Errorf("%d values for p, %d for q: %w", len(c.P), len(c.Q), ErrMismatchedPairs)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%s must not be negative: %w", Workers, ErrInvalidOption)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%s must not be negative: %w", Timeout, ErrInvalidOption)
	}
	return nil
}
