package txhistory

import (
	"strings"
	"time"

	"github.com/gabapcia/walletfeed/internal/network"

	"github.com/shopspring/decimal"
)

// nativeDecimals is the exponent between base units and display units.
const nativeDecimals = 18

// defaultNativeSymbol is used for external transfers that carry no asset name.
const defaultNativeSymbol = "ETH"

// Normalize converts raw transfers into display transactions for address on
// network n. It does no I/O and keeps the input order.
func Normalize(raws []RawTransfer, address string, n network.Network, price Price, now time.Time) []Transaction {
	txs := make([]Transaction, 0, len(raws))
	for _, raw := range raws {
		txs = append(txs, normalizeOne(raw, address, n, price, now))
	}

	return txs
}

func normalizeOne(raw RawTransfer, address string, n network.Network, price Price, now time.Time) Transaction {
	value, display := amountOf(raw.Amount)

	return Transaction{
		Hash:          raw.Hash,
		From:          raw.From,
		To:            raw.To,
		Value:         value,
		AmountDisplay: display,
		TokenSymbol:   tokenSymbolOf(raw),
		Timestamp:     timestampOf(raw, now),
		Status:        statusOf(raw.Status),
		Network:       n,
		Direction:     directionOf(raw.From, address),
		USD:           usdValue(display, price),
	}
}

// directionOf reports sent when from is the queried address, ignoring case.
// A self-transfer therefore counts as sent.
func directionOf(from, address string) Direction {
	if strings.EqualFold(from, address) {
		return DirectionSent
	}

	return DirectionReceived
}

func tokenSymbolOf(raw RawTransfer) string {
	switch {
	case raw.Asset != "":
		return raw.Asset
	case raw.TokenSymbol != "":
		return raw.TokenSymbol
	case raw.Category == CategoryExternal:
		return defaultNativeSymbol
	default:
		return ""
	}
}

// amountOf returns the raw value and the display amount of a.
func amountOf(a RawAmount) (value, display string) {
	switch a.Kind {
	case AmountBaseUnits:
		return a.Value, FormatBaseUnits(a.Value)
	case AmountDisplay:
		return a.Value, a.Value
	default:
		return "0", "0"
	}
}

// FormatBaseUnits scales an integer count of 10^-18 units for display. Values
// below one keep 6 decimal places and larger ones keep 4, then trailing zeros
// and a dangling decimal point are removed. Unparseable input yields "0".
func FormatBaseUnits(v string) string {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return "0"
	}

	d = d.Shift(-nativeDecimals)

	places := int32(4)
	if d.LessThan(decimal.NewFromInt(1)) {
		places = 6
	}

	s := d.StringFixed(places)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}

	return s
}

func timestampOf(raw RawTransfer, now time.Time) int64 {
	ts := now
	if !raw.BlockTimestamp.IsZero() {
		ts = raw.BlockTimestamp
	}

	return max(ts.Unix(), 0)
}

func statusOf(s string) Status {
	if s == "PENDING" {
		return StatusPending
	}

	return StatusConfirmed
}

// usdValue multiplies the display amount by the native price. It is nil when
// the price is unknown or zero, or when display is not a number.
func usdValue(display string, price Price) *float64 {
	if !price.Known || price.USD == 0 {
		return nil
	}

	amount, err := decimal.NewFromString(display)
	if err != nil {
		return nil
	}

	usd, _ := amount.Mul(decimal.NewFromFloat(price.USD)).Float64()
	return &usd
}
