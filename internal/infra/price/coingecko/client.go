// Package coingecko implements the txhistory.PriceSource interface over the
// CoinGecko simple price endpoint.
package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	transporthttp "github.com/gabapcia/walletfeed/internal/pkg/transport/http"
	"github.com/gabapcia/walletfeed/internal/txhistory"

	"github.com/hashicorp/go-retryablehttp"
)

// DefaultBaseURL is the public CoinGecko API.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

const (
	apiKeyHeader = "x-cg-demo-api-key"
	vsCurrency   = "usd"
)

var (
	// ErrUnexpectedStatus is returned for any non-2xx response.
	ErrUnexpectedStatus = errors.New("unexpected price api status")

	// ErrPriceMissing is returned when the response has no USD price for the asset.
	ErrPriceMissing = errors.New("price missing from response")
)

// client queries the simple price endpoint of a CoinGecko compatible API.
type client struct {
	baseURL    string
	apiKey     string
	httpClient *retryablehttp.Client
}

// Compile-time assertion that client implements the txhistory.PriceSource interface.
var _ txhistory.PriceSource = (*client)(nil)

// Option configures a client.
type Option func(*client)

// WithAPIKey sends key in the demo API key header.
func WithAPIKey(key string) Option {
	return func(c *client) {
		c.apiKey = key
	}
}

// WithHTTPOptions forwards options to the shared HTTP client factory.
func WithHTTPOptions(opts ...transporthttp.Option) Option {
	return func(c *client) {
		c.httpClient = transporthttp.NewClient(opts...)
	}
}

// NewClient returns a PriceSource for the API at baseURL. An empty baseURL
// selects DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) *client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: transporthttp.NewClient(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// USDPrice implements the txhistory.PriceSource interface.
func (c *client) USDPrice(ctx context.Context, assetID string) (float64, error) {
	query := url.Values{}
	query.Set("ids", assetID)
	query.Set("vs_currencies", vsCurrency)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/simple/price?"+query.Encode(), nil)
	if err != nil {
		return 0, err
	}

	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return 0, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	var data map[string]map[string]*float64
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return 0, err
	}

	price := data[assetID][vsCurrency]
	if price == nil {
		return 0, fmt.Errorf("%w: %s", ErrPriceMissing, assetID)
	}

	return *price, nil
}
