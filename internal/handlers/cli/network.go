package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/walletfeed/internal/network"
	"github.com/gabapcia/walletfeed/internal/wallet"

	"github.com/urfave/cli/v3"
)

// networkCommand groups the commands that read and change the preferred
// network.
//
// Usage example:
//
//	walletfeed network show
//	walletfeed network select --network arbitrum
func networkCommand(ws wallet.Service) *cli.Command {
	return &cli.Command{
		Name:        "network",
		Description: "Inspect and change the preferred network.",
		Usage:       "Manages the network used when no other is given.",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Lists the supported networks.",
				Action: func(ctx context.Context, c *cli.Command) error {
					for _, cfg := range network.All() {
						fmt.Fprintf(c.Root().Writer, "%-10s chain %-6d %s\n", cfg.ID, cfg.ChainID, cfg.NativeSymbol)
					}
					return nil
				},
			},
			{
				Name:  "show",
				Usage: "Prints the preferred network.",
				Action: func(ctx context.Context, c *cli.Command) error {
					session, err := ws.Restore(ctx)
					if err != nil {
						return err
					}

					fmt.Fprintf(c.Root().Writer, "%s (chain %d)\n", session.Network, session.ChainID)
					return nil
				},
			},
			{
				Name:  "select",
				Usage: "Stores a new preferred network.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "network",
						Usage:    "Network name (ethereum, polygon, arbitrum)",
						Required: true,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					n, err := network.Parse(c.String("network"))
					if err != nil {
						return err
					}

					session, err := ws.SelectNetwork(ctx, n)
					if err != nil {
						return &describedError{message: wallet.Describe(err), err: err}
					}

					fmt.Fprintf(c.Root().Writer, "Selected %s (chain %d)\n", session.Network, session.ChainID)
					return nil
				},
			},
		},
	}
}
