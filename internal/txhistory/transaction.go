package txhistory

import (
	"slices"

	"github.com/gabapcia/walletfeed/internal/network"
)

// Direction is the side of a transfer the queried address is on.
type Direction string

const (
	DirectionSent     Direction = "sent"
	DirectionReceived Direction = "received"
)

// Status is the confirmation state of a transaction.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
)

// Transaction is a transfer ready for display.
type Transaction struct {
	Hash          string          `json:"hash"`
	From          string          `json:"from"`
	To            string          `json:"to"`
	Value         string          `json:"value"`
	AmountDisplay string          `json:"amount_display"`
	TokenSymbol   string          `json:"token_symbol,omitempty"` // empty for the native asset
	Timestamp     int64           `json:"timestamp"`              // unix seconds
	Status        Status          `json:"status"`
	Network       network.Network `json:"network"`
	Direction     Direction       `json:"direction"`
	USD           *float64        `json:"usd"`
}

// CloneTransactions deep-copies a list, including the USD pointers.
func CloneTransactions(txs []Transaction) []Transaction {
	if txs == nil {
		return nil
	}

	out := slices.Clone(txs)
	for i := range out {
		if out[i].USD != nil {
			usd := *out[i].USD
			out[i].USD = &usd
		}
	}

	return out
}
