// Package cache provides the result cache shared by the braidkit CLI and API.
//
// Entropy and complexity runs on long words are expensive, and their results
// are pure functions of the word and the analysis options, which makes them
// ideal cache entries. The same interface backs a local file cache for the
// CLI and a redis cache for the API; a null implementation disables caching
// without branching at the call sites.
package cache

import (
	"context"
	"time"
)

// TTLAnalysis is how long cached analysis results live. Results never go
// stale on their own, but bounding their lifetime keeps file caches from
// accumulating entries for words nobody asks about twice.
const TTLAnalysis = 7 * 24 * time.Hour

// Cache stores serialized analysis results under derived keys.
type Cache interface {
	// Get retrieves a value; the second result reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL; ttl <= 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// AnalysisKeyOpts pins every option that changes an analysis result. Two
// runs with equal word, operation and opts may share a cache entry.
type AnalysisKeyOpts struct {
	Strands int    `json:"strands"`
	Backend string `json:"backend"`
	Basis   string `json:"basis,omitempty"`
	Measure string `json:"measure,omitempty"`
	Iters   int    `json:"iters,omitempty"`
}

// Keyer derives cache keys for braidkit's cacheable products.
type Keyer interface {
	// AnalysisKey derives the key for an analysis of a braid word.
	AnalysisKey(op, word string, opts AnalysisKeyOpts) string

	// RawKey derives a passthrough key within a namespace.
	RawKey(namespace, key string) string
}

// DefaultKeyer hashes word and options into fixed-width keys, so arbitrarily
// long words never produce oversized keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// AnalysisKey generates a key for an analysis result.
func (k *DefaultKeyer) AnalysisKey(op, word string, opts AnalysisKeyOpts) string {
	return hashKey("analysis:"+op, word, opts)
}

// RawKey generates a namespaced passthrough key.
func (k *DefaultKeyer) RawKey(namespace, key string) string {
	return "raw:" + namespace + ":" + key
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
