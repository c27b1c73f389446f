package txhistory

// FetchStatus is the lifecycle of the most recent history request.
type FetchStatus string

const (
	FetchIdle      FetchStatus = "idle"
	FetchPending   FetchStatus = "pending"
	FetchFulfilled FetchStatus = "fulfilled"
	FetchRejected  FetchStatus = "rejected"
)

// State is the observable result of the most recent history request. Items
// keep the last successful list while a new request is pending or after it
// failed. Error holds the user-facing message of the last failure.
type State struct {
	Status FetchStatus   `json:"status"`
	Items  []Transaction `json:"items"`
	Error  string        `json:"error,omitempty"`
}
