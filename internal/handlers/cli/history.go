package cli

import (
	"context"
	"io"

	"github.com/gabapcia/walletfeed/internal/network"
	"github.com/gabapcia/walletfeed/internal/txhistory"

	"github.com/urfave/cli/v3"
)

// resolveNetwork reads --chain-id when set, --network otherwise.
func resolveNetwork(c *cli.Command) (network.Network, error) {
	if c.IsSet("chain-id") {
		return network.FromChainID(c.Int64("chain-id"))
	}

	return network.Parse(c.String("network"))
}

// printHistory fetches and renders the history of address on n.
func printHistory(ctx context.Context, w io.Writer, hs txhistory.Service, address string, n network.Network, asJSON bool) error {
	txs, err := hs.FetchTransactionHistory(ctx, address, n)
	if err != nil {
		return &describedError{message: txhistory.Describe(err), err: err}
	}

	return renderTransactions(w, txs, asJSON)
}

// historyCommand returns a CLI command that prints the most recent
// transactions of an address on one network.
//
// Usage example:
//
//	walletfeed history --address 0xABC123... --network polygon
//	walletfeed history --address 0xABC123... --chain-id 42161 --json
func historyCommand(hs txhistory.Service) *cli.Command {
	return &cli.Command{
		Name:        "history",
		Description: "Print the ten most recent transactions of a wallet on a network.",
		Usage:       "Fetches recent transactions. Select the network by name or by chain id.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address to look up",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "network",
				Usage: "Network name (ethereum, polygon, arbitrum)",
				Value: network.Default.String(),
			},
			&cli.Int64Flag{
				Name:  "chain-id",
				Usage: "EVM chain id, overrides --network",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print JSON instead of a table",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			n, err := resolveNetwork(c)
			if err != nil {
				return err
			}

			return printHistory(ctx, c.Root().Writer, hs, c.String("address"), n, c.Bool("json"))
		},
	}
}
