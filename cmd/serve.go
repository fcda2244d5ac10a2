// =============================================================================
// Election Results Verifier - Serve Command
// =============================================================================
//
// This file defines the 'serve' command, which runs the HTTP verification
// service.
//
// COMMAND USAGE:
//   verifier serve [--addr :8080]
//
// ENDPOINTS:
//   GET  /healthz            : Liveness check
//   POST /verify/{filename}  : Verify the request body as the named CSV file
//
// =============================================================================

package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ginjaninja78/election-results-verifier/internal/server"
	"github.com/ginjaninja78/election-results-verifier/internal/validation"
	"github.com/spf13/cobra"
)

// listenAddr overrides server.addr when set.
var listenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Verify uploaded results files over HTTP",
	Long: `The serve command starts an HTTP server that verifies CSV files posted
to /verify/{filename}. The filename in the URL plays the same role as the
file name on the command line: it selects the rules and supplies the state
and county. The response is the plain-text findings report.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		if listenAddr != "" {
			cfg.Server.Addr = listenAddr
		}
		return runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(
		&listenAddr,
		"addr",
		"",
		"Listen address (overrides server.addr)",
	)
}

// runServe starts the server and stops it on SIGINT or SIGTERM.
func runServe() error {
	srv := server.New(cfg.Server, validation.Options{
		StrictFilenames: cfg.Verify.StrictFilenames,
	}, slog.Default())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
	}

	slog.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(ctx)
}
