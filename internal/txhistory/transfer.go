package txhistory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/walletfeed/internal/network"
	"github.com/gabapcia/walletfeed/internal/pkg/validator"

	"github.com/shopspring/decimal"
)

// Category is the indexer's classification of a transfer.
type Category string

const (
	CategoryExternal   Category = "external"
	CategoryInternal   Category = "internal"
	CategoryERC20      Category = "erc20"
	CategoryERC721     Category = "erc721"
	CategoryERC1155    Category = "erc1155"
	CategorySpecialNFT Category = "specialnft"
)

// queriedCategories are requested for both directions.
var queriedCategories = []Category{
	CategoryExternal,
	CategoryERC20,
	CategoryERC721,
	CategoryERC1155,
	CategoryInternal,
}

// AmountKind tells which representation a RawAmount carries.
type AmountKind int

const (
	// AmountNone means the record carried no amount at all.
	AmountNone AmountKind = iota
	// AmountBaseUnits is an integer count of 10^-18 native units.
	AmountBaseUnits
	// AmountDisplay is an amount already scaled for display.
	AmountDisplay
)

// RawAmount is the amount of a raw transfer in whichever form the indexer
// returned it. Value is a decimal string and is empty for AmountNone.
type RawAmount struct {
	Kind  AmountKind
	Value string
}

// BaseUnits builds a RawAmount holding a base-unit integer string.
func BaseUnits(v string) RawAmount {
	return RawAmount{Kind: AmountBaseUnits, Value: v}
}

// DisplayAmount builds a RawAmount holding a display amount.
func DisplayAmount(v string) RawAmount {
	return RawAmount{Kind: AmountDisplay, Value: v}
}

// RawTransfer is one transfer record as returned by a TransferSource.
type RawTransfer struct {
	Hash           string   `validate:"required"`
	From           string   `validate:"required"`
	To             string   // empty for contract creations
	Category       Category `validate:"required,oneof=external internal erc20 erc721 erc1155 specialnft"`
	Asset          string
	TokenSymbol    string
	Status         string
	BlockTimestamp time.Time // zero when the indexer did not report it
	Amount         RawAmount
}

// Validate reports whether the record can be normalized. Failures wrap
// ErrInvalidTransfer.
func (r RawTransfer) Validate() error {
	if err := validator.Validate(r); err != nil {
		return errors.Join(ErrInvalidTransfer, err)
	}

	switch r.Amount.Kind {
	case AmountNone:
	case AmountBaseUnits:
		if _, err := decimal.NewFromString(r.Amount.Value); err != nil {
			return errors.Join(ErrInvalidTransfer, fmt.Errorf("base-unit amount %q: %w", r.Amount.Value, err))
		}
	case AmountDisplay:
		if r.Amount.Value == "" {
			return errors.Join(ErrInvalidTransfer, errors.New("empty display amount"))
		}
	default:
		return errors.Join(ErrInvalidTransfer, fmt.Errorf("unknown amount kind %d", r.Amount.Kind))
	}

	return nil
}

// TransferQuery asks a TransferSource for transfers in one direction. Exactly
// one of FromAddress and ToAddress is set.
type TransferQuery struct {
	Network     network.Network
	FromAddress string
	ToAddress   string
	Categories  []Category
	MaxCount    int
}

// TransferSource is an indexer able to list asset transfers.
type TransferSource interface {
	// GetAssetTransfers returns at most q.MaxCount transfers matching q.
	// Errors should be *FetchError values when the failure can be classified.
	GetAssetTransfers(ctx context.Context, q TransferQuery) ([]RawTransfer, error)
}
