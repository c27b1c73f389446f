// Package cli exposes walletfeed as a command-line application built on
// urfave/cli.
package cli

import (
	"context"
	"net/http"
	"os"

	"github.com/gabapcia/walletfeed/internal/txhistory"
	"github.com/gabapcia/walletfeed/internal/wallet"

	"github.com/urfave/cli/v3"
)

// describedError prints a user-facing message while keeping its cause
// reachable through errors.Is.
type describedError struct {
	message string
	err     error
}

func (e *describedError) Error() string { return e.message }
func (e *describedError) Unwrap() error { return e.err }

// newApp builds the command tree. It is split from Run so tests can supply
// their own arguments and writer.
func newApp(hs txhistory.Service, ws wallet.Service, api http.Handler, httpAddr string) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "walletfeed",
		Description:           "Recent transaction history of EVM wallets across Ethereum, Polygon and Arbitrum.",
		Usage:                 "walletfeed [command] [flags]",
		Commands: []*cli.Command{
			historyCommand(hs),
			connectCommand(ws, hs),
			networkCommand(ws),
			serveCommand(api, httpAddr),
		},
	}
}

// Run initializes and executes the walletfeed CLI application.
//
// It registers all available commands, including:
//
//   - `history`: Prints the recent transactions of an address.
//   - `connect`: Connects a wallet and prints its history, optionally following changes.
//   - `network`: Shows, lists or selects the preferred network.
//   - `serve`: Runs the HTTP API.
func Run(ctx context.Context, hs txhistory.Service, ws wallet.Service, api http.Handler, httpAddr string) error {
	return newApp(hs, ws, api, httpAddr).Run(ctx, os.Args)
}
