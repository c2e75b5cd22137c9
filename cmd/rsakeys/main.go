package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/taurusgroup/textbook-rsa/pkg/config"
	"github.com/taurusgroup/textbook-rsa/pkg/logger"
	"github.com/taurusgroup/textbook-rsa/pkg/rsa"
)

func main() {
	err := run(context.Background(), os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "rsakeys:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, err := config.New("rsakeys", args)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("unable to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	pairs, err := parsePairs(cfg.P, cfg.Q)
	if err != nil {
		log.Error("invalid input", zap.Error(err))
		return err
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	log.Debug("generating keys",
		zap.Int("pairs", len(pairs)),
		zap.Int("workers", cfg.Workers),
		zap.Duration("timeout", cfg.Timeout),
	)
	keys, err := rsa.KeyGenBatch(ctx, pairs, cfg.Workers)
	if err != nil {
		log.Error("key generation failed", zap.Error(err))
		return err
	}

	for i, sk := range keys {
		if i > 0 {
			if _, err := fmt.Fprintln(stdout); err != nil {
				return err
			}
		}
		if err := render(stdout, sk, cfg.Fingerprint); err != nil {
			return err
		}
		log.Info("generated key", zap.Int("index", i), zap.Int("bits", sk.N().TrueLen()))
	}
	return nil
}

// parsePairs parses every prime before any key is generated.
func parsePairs(ps, qs []string) ([]rsa.PrimePair, error) {
	pairs := make([]rsa.PrimePair, len(ps))
	for i := range ps {
		p, err := rsa.ParsePrime(ps[i])
		if err != nil {
			return nil, fmt.Errorf("p: %w", err)
		}
		q, err := rsa.ParsePrime(qs[i])
		if err != nil {
			return nil, fmt.Errorf("q: %w", err)
		}
		pairs[i] = rsa.PrimePair{P: p, Q: q}
	}
	return pairs, nil
}

func render(w io.Writer, sk *rsa.SecretKey, fingerprint bool) error {
	if _, err := fmt.Fprintf(w, "n: %s\ne: %s\nd: %s\n", sk.N().Big(), sk.E().Big(), sk.D().Big()); err != nil {
		return err
	}
	if !fingerprint {
		return nil
	}
	f, err := sk.Fingerprint()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "fingerprint: %s\n", hex.EncodeToString(f))
	return err
}
