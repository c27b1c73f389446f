package alchemy

import (
	"encoding/json"
	"time"

	"github.com/gabapcia/walletfeed/internal/pkg/types"
	"github.com/gabapcia/walletfeed/internal/txhistory"
)

type (
	// transfersRequest is the single positional parameter of alchemy_getAssetTransfers.
	transfersRequest struct {
		Category     []txhistory.Category `json:"category"`
		WithMetadata bool                 `json:"withMetadata"`
		MaxCount     types.Hex            `json:"maxCount"`
		Order        string               `json:"order"`
		FromAddress  string               `json:"fromAddress,omitempty"`
		ToAddress    string               `json:"toAddress,omitempty"`
	}

	// TransferResponse is a transfer as returned by alchemy_getAssetTransfers.
	TransferResponse struct {
		Hash        string      `json:"hash"`
		From        string      `json:"from"`
		To          string      `json:"to"`
		Category    string      `json:"category"`
		Value       json.Number `json:"value"`
		Amount      string      `json:"amount"`
		Asset       string      `json:"asset"`
		TokenSymbol string      `json:"tokenSymbol"`
		Status      string      `json:"status"`
		Metadata    struct {
			BlockTimestamp string `json:"blockTimestamp"`
		} `json:"metadata"`
	}

	// TransfersResponse is the result object of alchemy_getAssetTransfers.
	TransfersResponse struct {
		Transfers []TransferResponse `json:"transfers"`
		PageKey   string             `json:"pageKey"`
	}
)

// amount picks the representation the record actually carries: a non-zero
// value first, then a display amount.
func (t TransferResponse) amount() txhistory.RawAmount {
	if t.Value != "" && t.Value != "0" {
		return txhistory.BaseUnits(t.Value.String())
	}

	if t.Amount != "" {
		return txhistory.DisplayAmount(t.Amount)
	}

	return txhistory.RawAmount{}
}

// blockTimestamp parses the RFC 3339 metadata timestamp. It returns the zero
// time when the field is missing or malformed.
func (t TransferResponse) blockTimestamp() time.Time {
	if t.Metadata.BlockTimestamp == "" {
		return time.Time{}
	}

	ts, err := time.Parse(time.RFC3339, t.Metadata.BlockTimestamp)
	if err != nil {
		return time.Time{}
	}

	return ts
}

// toRawTransfer converts a TransferResponse to a txhistory.RawTransfer.
func (t TransferResponse) toRawTransfer() txhistory.RawTransfer {
	return txhistory.RawTransfer{
		Hash:           t.Hash,
		From:           t.From,
		To:             t.To,
		Category:       txhistory.Category(t.Category),
		Asset:          t.Asset,
		TokenSymbol:    t.TokenSymbol,
		Status:         t.Status,
		BlockTimestamp: t.blockTimestamp(),
		Amount:         t.amount(),
	}
}

// toRawTransfers converts every transfer of the response.
func (r TransfersResponse) toRawTransfers() []txhistory.RawTransfer {
	raws := make([]txhistory.RawTransfer, len(r.Transfers))
	for i, t := range r.Transfers {
		raws[i] = t.toRawTransfer()
	}

	return raws
}
