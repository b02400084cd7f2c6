package cache

// ScopedKeyer wraps a Keyer with a prefix so separate deployments or users
// can share one store without key collisions.
//
// Example usage:
//
//	// Per-user keys for a multi-tenant API
//	userKeyer := NewScopedKeyer(NewDefaultKeyer(), "user:abc123:")
//
//	// Global keys for shared results
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// AnalysisKey generates a prefixed key for an analysis result.
func (k *ScopedKeyer) AnalysisKey(op, word string, opts AnalysisKeyOpts) string {
	return k.prefix + k.inner.AnalysisKey(op, word, opts)
}

// RawKey generates a prefixed passthrough key.
func (k *ScopedKeyer) RawKey(namespace, key string) string {
	return k.prefix + k.inner.RawKey(namespace, key)
}
