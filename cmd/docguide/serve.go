package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the guides over HTTP",
	RunE:  runServe,
}

func init() {
	f := serveCmd.Flags()
	f.String("addr", "", `Listen address (default ":3000")`)
	f.Duration("ttl", 0, "How long prepared pages are cached (default 5m)")
	f.Int("rate-limit", 0, "Requests per minute per client IP (0 disables)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	app, log, err := newApp()
	if err != nil {
		return err
	}
	defer log.Sync()
	defer app.Close()

	errCh := make(chan error, 1)
	go func() { errCh <- app.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-cmd.Context().Done():
	}

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return app.Shutdown(ctx)
}
