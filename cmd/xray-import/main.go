// Package main holds the main command line interface for xray-import. The package itself is mainly concerned with
// configuring the necessary options before passing control to `internal/cli`, which holds the business logic itself.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rwx-research/xray-import/internal/errors"
)

func main() {
	if err := configureRootCmd(rootCmd); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(formatsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	// Logging is expected to take place in `internal/cli`. Errors that never reached the service (i.e. invalid flags
	// or config files) are printed here instead.
	if err != nil {
		var logged loggedError
		if !errors.As(err, &logged) {
			fmt.Fprintln(os.Stderr, errors.WithDecoration(err))
		}

		os.Exit(1)
	}
}

// loggedError marks errors that were already reported by the service.
type loggedError struct {
	error
}

func (e loggedError) Unwrap() error { return e.error }

func markLogged(err error) error {
	if err == nil {
		return nil
	}

	return loggedError{err}
}
