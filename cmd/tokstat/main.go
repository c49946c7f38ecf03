package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"

	"github.com/pavanmanishd/slotarena/internal/config"
	"github.com/pavanmanishd/slotarena/internal/logging"
)

var (
	Version   string = "develop"
	Buildtime string = "undefined"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		os.Exit(loadFailed(os.Stderr, err))
	}

	logger, err := logging.New(&cfg.Logging)
	if err != nil {
		log.Fatalf("failed to set up logging: %v", err)
	}
	defer logger.Close()

	logger.WithFields(log.Fields{
		"version":   Version,
		"buildtime": Buildtime,
		"workers":   cfg.Workers,
		"capacity":  cfg.Arena.Capacity,
	}).Debug("starting tokstat")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := run(ctx, cfg, sources(cfg.Args.Files), logger)
	if err != nil {
		logger.Errorf("tokstat failed: %v", err)
		logger.Close()
		os.Exit(1)
	}
	report.print(os.Stdout)
}

// loadFailed reports a config.Load error and returns the exit status.
// Parse errors were already printed by the flags parser.
func loadFailed(w io.Writer, err error) int {
	if errors.Is(err, config.ErrHelp) {
		return 0
	}
	var flagsErr *flags.Error
	if !errors.As(err, &flagsErr) {
		fmt.Fprintf(w, "tokstat: %v\n", err)
	}
	return 1
}

// sources maps file names to inputs; no names means stdin.
func sources(files []string) []source {
	if len(files) == 0 {
		return []source{{
			name: "-",
			open: func() (io.ReadCloser, error) { return io.NopCloser(os.Stdin), nil },
		}}
	}
	out := make([]source, 0, len(files))
	for _, name := range files {
		out = append(out, source{
			name: name,
			open: func() (io.ReadCloser, error) { return os.Open(name) },
		})
	}
	return out
}
