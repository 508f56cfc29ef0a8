package domain

import "time"

const (
	IntentSearch = "search"
	IntentFilter = "filter"
	IntentAll    = "all"
)

// SearchEvent records one completed fetch for analytics.
type SearchEvent struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"sessionId,omitempty"`
	Intent      string    `json:"intent"`
	Query       string    `json:"query,omitempty"`
	Location    string    `json:"location,omitempty"`
	Category    string    `json:"category,omitempty"`
	ResultCount int       `json:"resultCount"`
	LatencyMs   int64     `json:"latencyMs"`
	ErrorKind   string    `json:"errorKind,omitempty"`
	Generation  uint64    `json:"generation"`
	Stale       bool      `json:"stale"`
	CreatedAt   time.Time `json:"createdAt"`
}
