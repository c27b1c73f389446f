package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/walletfeed/internal/pkg/logger"

	"github.com/urfave/cli/v3"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// serveCommand returns a CLI command that runs the HTTP API.
//
// Usage example:
//
//	walletfeed serve --addr :8080
//
// The server runs until it receives an interrupt (SIGINT or SIGTERM) and then
// drains in-flight requests.
func serveCommand(api http.Handler, defaultAddr string) *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Description: "Serve transaction history over HTTP.",
		Usage:       "Runs the HTTP API. Terminates gracefully on Ctrl+C or termination signals.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "Address to listen on",
				Value: defaultAddr,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := &http.Server{
				Addr:              c.String("addr"),
				Handler:           api,
				ReadHeaderTimeout: readHeaderTimeout,
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.ListenAndServe()
			}()

			logger.Info(ctx, "http server started", "http.addr", srv.Addr)

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			logger.Info(ctx, "http server shutting down")

			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
			defer cancel()

			return srv.Shutdown(shutdownCtx)
		},
	}
}
