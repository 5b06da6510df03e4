// Command csvedit loads a comma-delimited file, edits one cell and writes the
// result back out.
package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	if err := loadDotEnv(".env"); err != nil {
		reportError(os.Stderr, err, isTerminal(os.Stderr))
		os.Exit(1)
	}

	ctx, stop := signalContext(context.Background())

	cmd := newRootCmd(os.Stdout, os.Stderr)
	err := cmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		reportError(os.Stderr, err, isTerminal(os.Stderr))
		os.Exit(1)
	}
}

// loadDotEnv seeds the environment from path. Variables already set win.
// A missing file is not an error; an unreadable or malformed one is.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// signalContext returns a context cancelled on Ctrl-C or SIGTERM, so a run
// stops before its next step.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
