package alchemy

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/gabapcia/walletfeed/internal/txhistory"
)

// fixture serves transfers from a JSON file shaped like the indexer's
// "transfers" array, for offline runs and demos.
type fixture struct {
	transfers []TransferResponse
}

// Compile-time assertion that fixture implements the txhistory.TransferSource interface.
var _ txhistory.TransferSource = (*fixture)(nil)

// NewFixture loads the transfers stored at path.
func NewFixture(path string) (*fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transfers fixture: %w", err)
	}

	var transfers []TransferResponse
	if err := json.Unmarshal(data, &transfers); err != nil {
		return nil, fmt.Errorf("decode transfers fixture: %w", err)
	}

	return &fixture{transfers: transfers}, nil
}

// GetAssetTransfers implements the txhistory.TransferSource interface. It
// returns the fixture records matching the queried direction, in file order,
// capped at q.MaxCount. The network is ignored.
func (f *fixture) GetAssetTransfers(_ context.Context, q txhistory.TransferQuery) ([]txhistory.RawTransfer, error) {
	var raws []txhistory.RawTransfer
	for _, t := range f.transfers {
		if len(raws) >= q.MaxCount {
			break
		}

		if q.FromAddress != "" && !strings.EqualFold(t.From, q.FromAddress) {
			continue
		}

		if q.ToAddress != "" && !strings.EqualFold(t.To, q.ToAddress) {
			continue
		}

		raws = append(raws, t.toRawTransfer())
	}

	return raws, nil
}
