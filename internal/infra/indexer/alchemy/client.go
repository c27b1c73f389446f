// Package alchemy implements the txhistory.TransferSource interface over the
// alchemy_getAssetTransfers JSON-RPC method.
package alchemy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/walletfeed/internal/network"
	"github.com/gabapcia/walletfeed/internal/pkg/transport/http"
	"github.com/gabapcia/walletfeed/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/walletfeed/internal/pkg/types"
	"github.com/gabapcia/walletfeed/internal/txhistory"
)

const (
	methodGetAssetTransfers = "alchemy_getAssetTransfers"
	orderDescending         = "desc"
)

// client queries one JSON-RPC endpoint per network.
type client struct {
	conns map[network.Network]jsonrpc.Client
}

// Compile-time assertion that client implements the txhistory.TransferSource interface.
var _ txhistory.TransferSource = (*client)(nil)

// New returns a TransferSource backed by the given per-network connections.
func New(conns map[network.Network]jsonrpc.Client) *client {
	return &client{conns: conns}
}

// NewClient builds a connection for every supported network from its
// indexer base URL and apiKey.
func NewClient(apiKey string, opts ...http.Option) *client {
	conns := make(map[network.Network]jsonrpc.Client)
	for _, cfg := range network.All() {
		conns[cfg.ID] = jsonrpc.NewClient(cfg.IndexerBaseURL+apiKey, opts...)
	}

	return New(conns)
}

// GetAssetTransfers implements the txhistory.TransferSource interface.
func (c *client) GetAssetTransfers(ctx context.Context, q txhistory.TransferQuery) ([]txhistory.RawTransfer, error) {
	conn, ok := c.conns[q.Network]
	if !ok {
		return nil, fmt.Errorf("%w: %s", network.ErrUnsupported, q.Network)
	}

	data, err := conn.Fetch(ctx, methodGetAssetTransfers, transfersRequest{
		Category:     q.Categories,
		WithMetadata: true,
		MaxCount:     types.HexFromInt(int64(q.MaxCount)),
		Order:        orderDescending,
		FromAddress:  q.FromAddress,
		ToAddress:    q.ToAddress,
	})
	if err != nil {
		return nil, toFetchError(err)
	}

	var res TransfersResponse
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, txhistory.NewFetchError(0, 0, "malformed indexer response", err)
	}

	return res.toRawTransfers(), nil
}

// toFetchError classifies a transport failure.
func toFetchError(err error) error {
	var rpcErr *jsonrpc.Error
	if errors.As(err, &rpcErr) {
		return txhistory.NewFetchError(rpcErr.HTTPStatus, rpcErr.Code, rpcErr.Message, err)
	}

	return txhistory.NewFetchError(0, 0, err.Error(), err)
}
