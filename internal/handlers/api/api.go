// Package api serves transaction history over HTTP.
package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gabapcia/walletfeed/internal/network"
	"github.com/gabapcia/walletfeed/internal/pkg/logger"
	"github.com/gabapcia/walletfeed/internal/pkg/metrics"
	"github.com/gabapcia/walletfeed/internal/pkg/validator"
	"github.com/gabapcia/walletfeed/internal/txhistory"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcomes recorded for history requests.
const (
	outcomeOK          = "ok"
	outcomeInvalid     = "invalid"
	outcomeRateLimited = "rate_limited"
	outcomeFailed      = "failed"
)

type handler struct {
	history txhistory.Service
	metrics *metrics.Metrics
}

// New returns the HTTP handler of the API. Collectors registered on gatherer
// are exposed at /metrics.
func New(hs txhistory.Service, m *metrics.Metrics, gatherer prometheus.Gatherer) http.Handler {
	h := &handler{history: hs, metrics: m}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.With(metrics.Middleware(m, "/healthz")).Get("/healthz", h.health)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.With(metrics.Middleware(m, "/v1/networks")).Get("/networks", h.listNetworks)

		r.With(metrics.Middleware(m, "/v1/transactions")).Get("/transactions", h.getTransactions)
		r.With(metrics.Middleware(m, "/v1/transactions")).Delete("/transactions", h.clearTransactions)
		r.With(metrics.Middleware(m, "/v1/transactions/state")).Get("/transactions/state", h.getState)

		r.With(metrics.Middleware(m, "/v1/cache")).Delete("/cache", h.clearCache)
	})

	return r
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeObject(w, map[string]string{"status": "ok"})
}

func (h *handler) listNetworks(w http.ResponseWriter, _ *http.Request) {
	writeArray(w, network.All())
}

// requestNetwork reads the network from ?chainId= or ?network=, defaulting
// to ethereum.
func requestNetwork(r *http.Request) (network.Network, error) {
	if raw := r.URL.Query().Get("chainId"); raw != "" {
		chainID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return "", errors.Join(txhistory.ErrInvalidQuery, err)
		}

		return network.FromChainID(chainID)
	}

	if name := r.URL.Query().Get("network"); name != "" {
		return network.Parse(name)
	}

	return network.Default, nil
}

// statusFor maps a service error to its HTTP status and metric outcome.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, txhistory.ErrUnsupportedNetwork),
		errors.Is(err, txhistory.ErrInvalidQuery),
		errors.Is(err, txhistory.ErrInvalidRequest),
		errors.Is(err, validator.ErrValidationFailed):
		return http.StatusBadRequest, outcomeInvalid
	case errors.Is(err, txhistory.ErrRateLimited):
		return http.StatusTooManyRequests, outcomeRateLimited
	case errors.Is(err, txhistory.ErrFetchFailed):
		return http.StatusBadGateway, outcomeFailed
	default:
		return http.StatusInternalServerError, outcomeFailed
	}
}

func (h *handler) getTransactions(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")

	n, err := requestNetwork(r)
	if err != nil {
		h.fail(w, r, address, n, err)
		return
	}

	if err := validator.Var(address, "required,eth_addr"); err != nil {
		h.fail(w, r, address, n, err)
		return
	}

	txs, err := h.history.FetchTransactionHistory(r.Context(), address, n)
	if err != nil {
		h.fail(w, r, address, n, err)
		return
	}

	h.record(n, outcomeOK, len(txs))
	writeArray(w, txs)
}

// fail records and writes a failed history request.
func (h *handler) fail(w http.ResponseWriter, r *http.Request, address string, n network.Network, err error) {
	status, outcome := statusFor(err)
	h.record(n, outcome, 0)

	message := txhistory.Describe(err)
	if errors.Is(err, validator.ErrValidationFailed) {
		message = txhistory.Describe(txhistory.ErrInvalidQuery)
	}

	logger.Warn(r.Context(), "history request failed",
		"wallet.address", address,
		"network", n,
		"http.status", status,
		"error", err,
	)

	writeError(w, status, message)
}

func (h *handler) record(n network.Network, outcome string, items int) {
	if h.metrics == nil {
		return
	}

	label := n.String()
	if label == "" {
		label = "unknown"
	}

	h.metrics.RecordHistoryRequest(label, outcome, items)
}

func (h *handler) getState(w http.ResponseWriter, _ *http.Request) {
	writeObject(w, h.history.State())
}

func (h *handler) clearTransactions(w http.ResponseWriter, _ *http.Request) {
	h.history.ClearTransactions()
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) clearCache(w http.ResponseWriter, _ *http.Request) {
	h.history.ClearCache()
	w.WriteHeader(http.StatusNoContent)
}
