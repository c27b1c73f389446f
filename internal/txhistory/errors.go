package txhistory

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gabapcia/walletfeed/internal/network"
)

var (
	// ErrUnsupportedNetwork is returned when a query names a network outside
	// the configured set.
	ErrUnsupportedNetwork = network.ErrUnsupported

	// ErrInvalidQuery is returned when the address is empty or the requested
	// count is not positive.
	ErrInvalidQuery = errors.New("invalid transfer query")

	// ErrRateLimited is returned when the indexer throttles the caller.
	ErrRateLimited = errors.New("rate limited")

	// ErrFetchFailed covers every other indexer failure.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrInvalidRequest is an ErrFetchFailed the indexer rejected as malformed (HTTP 400).
	ErrInvalidRequest = fmt.Errorf("%w: invalid request", ErrFetchFailed)

	// ErrProviderUnavailable is an ErrFetchFailed caused by an indexer server error (HTTP 5xx).
	ErrProviderUnavailable = fmt.Errorf("%w: provider unavailable", ErrFetchFailed)

	// ErrPriceUnavailable marks a failed price lookup. It is logged and never
	// returned by the service.
	ErrPriceUnavailable = errors.New("price unavailable")

	// ErrInvalidTransfer marks a raw record that failed validation. Such
	// records are dropped.
	ErrInvalidTransfer = errors.New("invalid transfer record")
)

const (
	msgRateLimited         = "Rate limit exceeded. Please wait a moment and try again."
	msgInvalidRequest      = "Invalid request. Please check your wallet address."
	msgProviderUnavailable = "Server error. Please try again later."
	msgFetchFailed         = "Failed to fetch transactions"
)

// FetchError is an indexer failure with its classified kind and the message
// the provider reported.
type FetchError struct {
	Kind    error
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	if e.Message == "" {
		return e.Kind.Error()
	}

	return e.Kind.Error() + ": " + e.Message
}

func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}

// NewFetchError classifies an indexer failure from its HTTP status, its
// JSON-RPC error code and its message. Either number may be zero when unknown.
func NewFetchError(httpStatus, code int, message string, cause error) *FetchError {
	kind := ErrFetchFailed
	switch {
	case httpStatus == http.StatusTooManyRequests,
		code == http.StatusTooManyRequests,
		strings.Contains(strings.ToLower(message), "rate limit"):
		kind = ErrRateLimited
	case httpStatus == http.StatusBadRequest:
		kind = ErrInvalidRequest
	case httpStatus >= http.StatusInternalServerError:
		kind = ErrProviderUnavailable
	}

	return &FetchError{Kind: kind, Message: message, Err: cause}
}

// classifyFetchError makes sure every error leaving the fetcher carries one
// of the fetch kinds.
func classifyFetchError(err error) error {
	if errors.Is(err, ErrRateLimited) || errors.Is(err, ErrFetchFailed) ||
		errors.Is(err, ErrUnsupportedNetwork) || errors.Is(err, ErrInvalidQuery) {
		return err
	}

	return NewFetchError(0, 0, err.Error(), err)
}

// Describe turns an error returned by the service into the message shown to
// users.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrRateLimited):
		return msgRateLimited
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrInvalidQuery):
		return msgInvalidRequest
	case errors.Is(err, ErrProviderUnavailable):
		return msgProviderUnavailable
	case errors.Is(err, ErrUnsupportedNetwork):
		return ErrUnsupportedNetwork.Error()
	}

	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		if fetchErr.Message != "" {
			return fetchErr.Message
		}
		return msgFetchFailed
	}

	return err.Error()
}
