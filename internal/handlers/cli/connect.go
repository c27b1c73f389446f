package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/gabapcia/walletfeed/internal/pkg/logger"
	"github.com/gabapcia/walletfeed/internal/txhistory"
	"github.com/gabapcia/walletfeed/internal/wallet"

	"github.com/urfave/cli/v3"
)

// connectCommand returns a CLI command that connects the configured wallet
// provider and prints the history of the active account.
//
// Usage example:
//
//	walletfeed connect --watch
//
// With --watch it keeps running until interrupted and prints the history
// again whenever the wallet switches account or network.
func connectCommand(ws wallet.Service, hs txhistory.Service) *cli.Command {
	return &cli.Command{
		Name:        "connect",
		Description: "Connect a wallet and print the history of its active account.",
		Usage:       "Requests accounts from the wallet provider. Terminates gracefully on Ctrl+C when watching.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "Follow account and network changes",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print JSON instead of a table",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			w := c.Root().Writer
			asJSON := c.Bool("json")

			session, err := ws.Connect(ctx)
			if err != nil {
				return &describedError{message: wallet.Describe(err), err: err}
			}

			fmt.Fprintf(w, "Connected %s on %s\n", wallet.ShortAddress(session.Address), session.Network)
			if err := printHistory(ctx, w, hs, session.Address, session.Network, asJSON); err != nil {
				return err
			}

			if !c.Bool("watch") {
				return nil
			}

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			err = ws.Watch(ctx, func(s wallet.Session) {
				switch {
				case !s.Connected:
					hs.ClearTransactions()
					fmt.Fprintln(w, "Wallet disconnected")
				case s.Error != "":
					fmt.Fprintln(w, s.Error)
				default:
					fmt.Fprintf(w, "Switched to %s on %s\n", wallet.ShortAddress(s.Address), s.Network)
					if err := printHistory(ctx, w, hs, s.Address, s.Network, asJSON); err != nil {
						logger.Warn(ctx, "history refresh failed", "wallet.address", s.Address, "network", s.Network, "error", err)
						fmt.Fprintln(w, err)
					}
				}
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}

			return err
		},
	}
}
