// Package api exposes the search pipeline over HTTP. The API layer only
// decodes requests, delegates to the searcher, and serializes results;
// it performs no pricing logic of its own.
package api

import (
	"ratefinder/core/types"
)

// SearchRequest is the body for POST /search.
type SearchRequest struct {
	// Query is the free-text price query.
	Query string `json:"query"`

	// UseCache controls whether the result cache is consulted.
	UseCache bool `json:"use_cache"`
}

// SearchResponse is the reply for POST /search.
type SearchResponse struct {
	// Success is false when Error is set.
	Success bool `json:"success"`

	// Result carries the priced result on success.
	Result *types.SearchResult `json:"result,omitempty"`

	// Error is the human-readable failure message.
	Error string `json:"error,omitempty"`

	// ErrorType is the failure category, e.g. INVALID_QUERY.
	ErrorType string `json:"error_type,omitempty"`

	// SearchTimeMs is the server-side search duration.
	SearchTimeMs float64 `json:"search_time_ms"`
}

// LoadRequest is the body for POST /load.
type LoadRequest struct {
	// Path is the rate-sheet PDF to load.
	Path string `json:"path"`
}

// LoadResponse is the reply for POST /load.
type LoadResponse struct {
	Success  bool     `json:"success"`
	Services []string `json:"services,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// ServicesResponse is the reply for GET /services.
type ServicesResponse struct {
	Services []types.ServiceInfo `json:"services"`
}

// HealthResponse is the reply for GET /health.
type HealthResponse struct {
	Status     string `json:"status"`
	DataLoaded bool   `json:"data_loaded"`
	Services   int    `json:"services"`
}
