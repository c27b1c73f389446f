package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/gabapcia/walletfeed/internal/txhistory"
	"github.com/gabapcia/walletfeed/internal/wallet"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const timeLayout = "2006-01-02 15:04:05"

var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// transactionRow formats one transaction for the history table.
func transactionRow(tx txhistory.Transaction) []string {
	symbol := tx.TokenSymbol
	if symbol == "" {
		symbol = "NATIVE"
	}

	usd := "-"
	if tx.USD != nil {
		usd = fmt.Sprintf("$%.2f", *tx.USD)
	}

	return []string{
		wallet.ShortAddress(tx.Hash),
		string(tx.Direction),
		wallet.ShortAddress(tx.From),
		wallet.ShortAddress(tx.To),
		time.Unix(tx.Timestamp, 0).Local().Format(timeLayout),
		tx.AmountDisplay,
		symbol,
		tx.Network.String(),
		usd,
	}
}

// renderTransactions writes txs as a bordered table, or as indented JSON.
func renderTransactions(w io.Writer, txs []txhistory.Transaction, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if txs == nil {
			txs = []txhistory.Transaction{}
		}
		return enc.Encode(txs)
	}

	if len(txs) == 0 {
		_, err := fmt.Fprintln(w, "No transactions found")
		return err
	}

	rows := make([][]string, len(txs))
	for i, tx := range txs {
		rows[i] = transactionRow(tx)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("HASH", "DIRECTION", "FROM", "TO", "TIME", "AMOUNT", "SYMBOL", "NETWORK", "USD").
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
