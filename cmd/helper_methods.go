package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PolarWolf314/shush/internal/utils"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

// startSpinner shows a spinner with the given message on stderr while a KMS
// round trip is in flight. It stays hidden in verbose or debug mode and when
// stderr is not a terminal, so piped output is never polluted.
// Returns the spinner and a function that should be deferred to stop it.
// The stop function is safe to call more than once.
func startSpinner(message string) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriterFile(os.Stderr))
	s.Suffix = " " + message

	// Ignore color errors - continue without colored spinner if it fails.
	_ = s.Color("cyan")

	active := !verbose && !debug && utils.IsStderrTerminal()
	if active {
		s.Start()
	} else {
		Logger.Infof("%s", message)
	}

	cleanup := func() {
		if active {
			s.Stop()
			active = false
		}
	}

	return s, cleanup
}

// signalContext derives a context that is cancelled on interrupt, so an
// in-flight KMS call is abandoned instead of leaving the terminal hanging.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}
