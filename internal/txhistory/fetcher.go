package txhistory

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/gabapcia/walletfeed/internal/network"
	"github.com/gabapcia/walletfeed/internal/pkg/logger"
	"github.com/gabapcia/walletfeed/internal/pkg/types"
	"github.com/gabapcia/walletfeed/internal/pkg/validator"

	"golang.org/x/sync/errgroup"
)

// fetchRequest is validated before any query is issued.
type fetchRequest struct {
	Address  string `validate:"required"`
	MaxCount int    `validate:"gt=0"`
}

// transferKey identifies a transfer across the inbound and outbound queries.
type transferKey struct {
	hash, from, to string
}

// fetcher merges the inbound and outbound transfer lists of an address.
type fetcher struct {
	source TransferSource
	now    func() time.Time
}

// FetchTransfers queries inbound and outbound transfers of address
// concurrently, deduplicates them by (hash, from, to) keeping the first
// occurrence, sorts them newest first and truncates to maxCount.
//
// Records without a block timestamp sort as if they happened now. Records
// that fail validation are dropped.
func (f *fetcher) FetchTransfers(ctx context.Context, n network.Network, address string, maxCount int) ([]RawTransfer, error) {
	if _, err := network.Lookup(n); err != nil {
		return nil, err
	}

	if err := validator.Validate(fetchRequest{Address: address, MaxCount: maxCount}); err != nil {
		return nil, errors.Join(ErrInvalidQuery, err)
	}

	var inbound, outbound []RawTransfer

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		inbound, err = f.source.GetAssetTransfers(gctx, TransferQuery{
			Network:    n,
			ToAddress:  address,
			Categories: queriedCategories,
			MaxCount:   maxCount,
		})
		return err
	})
	g.Go(func() (err error) {
		outbound, err = f.source.GetAssetTransfers(gctx, TransferQuery{
			Network:     n,
			FromAddress: address,
			Categories:  queriedCategories,
			MaxCount:    maxCount,
		})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, classifyFetchError(err)
	}

	merged := f.merge(ctx, inbound, outbound)
	sortByTimestampDesc(merged, f.now())

	if len(merged) > maxCount {
		merged = merged[:maxCount]
	}

	return merged, nil
}

// merge concatenates the lists in order, dropping invalid records and
// repeated (hash, from, to) keys.
func (f *fetcher) merge(ctx context.Context, lists ...[]RawTransfer) []RawTransfer {
	seen := types.NewSet[transferKey]()

	var merged []RawTransfer
	for _, list := range lists {
		for _, raw := range list {
			if err := raw.Validate(); err != nil {
				logger.Warn(ctx, "dropping malformed transfer",
					"transfer.hash", raw.Hash,
					"error", err,
				)
				continue
			}

			key := transferKey{hash: raw.Hash, from: raw.From, to: raw.To}
			if seen.Contains(key) {
				continue
			}

			seen.Add(key)
			merged = append(merged, raw)
		}
	}

	return merged
}

// sortByTimestampDesc orders transfers newest first without reordering equal
// timestamps. A zero timestamp counts as now.
func sortByTimestampDesc(transfers []RawTransfer, now time.Time) {
	effective := func(t RawTransfer) time.Time {
		if t.BlockTimestamp.IsZero() {
			return now
		}
		return t.BlockTimestamp
	}

	slices.SortStableFunc(transfers, func(a, b RawTransfer) int {
		return effective(b).Compare(effective(a))
	})
}
