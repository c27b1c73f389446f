package txhistory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/gabapcia/walletfeed/internal/network"
	"github.com/gabapcia/walletfeed/internal/pkg/logger"
	"github.com/gabapcia/walletfeed/internal/pkg/x/join"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"
)

const (
	// fetchCount is how many transfers are requested per direction. It is
	// larger than displayCount so deduplication still leaves a full page.
	fetchCount = 12

	// displayCount is the maximum length of a returned history.
	displayCount = 10

	instrumentationName = "github.com/gabapcia/walletfeed/internal/txhistory"
)

// Service serves recent transaction history for an address.
type Service interface {
	// FetchTransactionHistory returns up to ten transactions of address on
	// network n, newest first. Results are served from the cache while fresh.
	FetchTransactionHistory(ctx context.Context, address string, n network.Network) ([]Transaction, error)

	// State reports the outcome of the most recent request.
	State() State

	// ClearTransactions resets State to idle with no items.
	ClearTransactions()

	// ClearCache drops every cached history.
	ClearCache()
}

type service struct {
	fetcher *fetcher
	prices  *priceLookup
	cache   Cache
	now     func() time.Time

	requestTimeout time.Duration
	inflight       singleflight.Group

	mu      sync.Mutex
	state   State
	lastSeq uint64

	tracer      trace.Tracer
	cacheHits   metric.Int64Counter
	cacheMisses metric.Int64Counter
}

var _ Service = (*service)(nil)

func (s *service) FetchTransactionHistory(ctx context.Context, address string, n network.Network) ([]Transaction, error) {
	seq := s.begin()

	txs, err := s.load(ctx, address, n)
	if err != nil {
		s.reject(seq, err)
		return nil, err
	}

	s.fulfill(seq, txs)
	return txs, nil
}

// load serves (address, n) from the cache or from a fresh provider round.
func (s *service) load(ctx context.Context, address string, n network.Network) ([]Transaction, error) {
	ctx, span := s.tracer.Start(ctx, "txhistory.FetchTransactionHistory",
		trace.WithAttributes(
			attribute.String("network", n.String()),
			attribute.String("address", address),
		),
	)
	defer span.End()

	if _, err := network.Lookup(n); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	attrs := metric.WithAttributes(attribute.String("network", n.String()))

	if txs, ok := s.cache.Get(address, n); ok {
		s.cacheHits.Add(ctx, 1, attrs)
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return txs, nil
	}

	s.cacheMisses.Add(ctx, 1, attrs)
	span.SetAttributes(attribute.Bool("cache.hit", false))

	// The shared round must not die with the first caller's context, so it
	// only inherits values and is bounded by the request timeout.
	v, err, shared := s.inflight.Do(address+"\x00"+n.String(), func() (any, error) {
		return s.fetchFresh(context.WithoutCancel(ctx), address, n)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Error(ctx, "transaction history fetch failed",
			"wallet.address", address,
			"network", n,
			"error", err,
		)
		return nil, err
	}

	span.SetAttributes(attribute.Bool("inflight.shared", shared))
	return CloneTransactions(v.([]Transaction)), nil
}

// fetchFresh runs one provider round and caches its result.
func (s *service) fetchFresh(ctx context.Context, address string, n network.Network) ([]Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	var (
		raws  []RawTransfer
		price Price
	)

	err := join.All(ctx,
		join.Required("transfers", func(ctx context.Context) (err error) {
			raws, err = s.fetcher.FetchTransfers(ctx, n, address, fetchCount)
			return err
		}),
		join.BestEffort("native-price", func(ctx context.Context) error {
			price = s.prices.NativePriceUSD(ctx, n)
			if !price.Known {
				return ErrPriceUnavailable
			}
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	txs := Normalize(raws, address, n, price, s.now())
	slices.SortStableFunc(txs, func(a, b Transaction) int {
		return cmp.Compare(b.Timestamp, a.Timestamp)
	})
	if len(txs) > displayCount {
		txs = txs[:displayCount]
	}

	s.cache.Put(address, n, txs)

	logger.Debug(ctx, "transaction history fetched",
		"wallet.address", address,
		"network", n,
		"transfers.raw", len(raws),
		"transactions", len(txs),
		"price.known", price.Known,
	)

	return txs, nil
}

// begin marks a new request as pending and returns its sequence number.
func (s *service) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeq++
	s.state.Status = FetchPending
	s.state.Error = ""
	return s.lastSeq
}

// fulfill records a successful result unless a newer request has started.
func (s *service) fulfill(seq uint64, txs []Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.lastSeq {
		return
	}

	s.state.Status = FetchFulfilled
	s.state.Items = CloneTransactions(txs)
	s.state.Error = ""
}

// reject records a failure unless a newer request has started.
func (s *service) reject(seq uint64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.lastSeq {
		return
	}

	s.state.Status = FetchRejected
	s.state.Error = Describe(err)
}

func (s *service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	st.Items = CloneTransactions(s.state.Items)
	if st.Items == nil {
		st.Items = []Transaction{}
	}
	return st
}

func (s *service) ClearTransactions() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeq++
	s.state = State{Status: FetchIdle}
}

func (s *service) ClearCache() {
	s.cache.Clear()
}

type config struct {
	priceSource    PriceSource
	cache          Cache
	requestTimeout time.Duration
	now            func() time.Time
}

// Option configures the service.
type Option func(*config)

// New builds the history service on top of an indexer. Without options it
// does not cache, does not price transactions and bounds each provider round
// to 15 seconds.
func New(source TransferSource, opts ...Option) *service {
	cfg := config{
		cache:          nopCache{},
		requestTimeout: 15 * time.Second,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	meter := otel.Meter(instrumentationName)
	hits, err := meter.Int64Counter("walletfeed.history.cache.hits",
		metric.WithDescription("History requests served from the cache"))
	if err != nil {
		otel.Handle(err)
	}
	misses, err := meter.Int64Counter("walletfeed.history.cache.misses",
		metric.WithDescription("History requests that needed a provider round"))
	if err != nil {
		otel.Handle(err)
	}

	return &service{
		fetcher:        &fetcher{source: source, now: cfg.now},
		prices:         &priceLookup{source: cfg.priceSource},
		cache:          cfg.cache,
		now:            cfg.now,
		requestTimeout: cfg.requestTimeout,
		state:          State{Status: FetchIdle},
		tracer:         otel.Tracer(instrumentationName),
		cacheHits:      hits,
		cacheMisses:    misses,
	}
}

// WithPriceSource enables USD valuation.
func WithPriceSource(ps PriceSource) Option {
	return func(c *config) {
		c.priceSource = ps
	}
}

// WithCache sets the cache used to memoize histories.
func WithCache(cache Cache) Option {
	return func(c *config) {
		c.cache = cache
	}
}

// WithRequestTimeout bounds each provider round.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *config) {
		c.requestTimeout = d
	}
}

// WithClock replaces the time source used for undated transfers.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}
