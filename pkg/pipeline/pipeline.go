// Package pipeline provides the analysis runner shared by the braidkit CLI
// and API.
//
// This package implements the complete parse → compute → encode flow for a
// single braid analysis. By centralizing this logic, we ensure consistent
// behavior across all entry points and avoid code duplication: both the CLI
// and the HTTP handlers hand a serializable Options to a Runner and get back
// a serializable Result.
//
// # Usage
//
// Create a Runner and execute an analysis:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Op:   pipeline.OpEntropy,
//	    Word: "1 -2",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(*result.Entropy)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/topodyn/braidkit/pkg/dynamics"
	"github.com/topodyn/braidkit/pkg/errors"
	"github.com/topodyn/braidkit/pkg/loop"
	"github.com/topodyn/braidkit/pkg/numeric"
)

// Operation constants for the analysis to run.
const (
	OpAct        = "act"
	OpEq         = "eq"
	OpEntropy    = "entropy"
	OpComplexity = "complexity"
)

// ValidOps is the set of supported operations.
var ValidOps = map[string]bool{
	OpAct:        true,
	OpEq:         true,
	OpEntropy:    true,
	OpComplexity: true,
}

// DefaultFiniteIters is the iteration count used by the finite entropy
// estimate when none is given.
const DefaultFiniteIters = 20

// Options contains all configuration for one analysis run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Op selects the analysis: act, eq, entropy or complexity.
	Op string `json:"op"`

	// Word is the braid word as whitespace- or comma-separated signed
	// generator indices, e.g. "1 -2 3".
	Word string `json:"word"`

	// Other is the second word for eq.
	Other string `json:"other,omitempty"`

	// Coords are the loop coordinates acted on by act. Empty means the
	// canonical basis loop for the word's strand count.
	Coords string `json:"coords,omitempty"`

	// Strands forces a strand count larger than the word requires.
	Strands int `json:"strands,omitempty"`

	// Backend names the scalar representation: fixed32, fixed64, big, float.
	Backend string `json:"backend,omitempty"`

	// Basis names the canonical basis for eq: default, left, dehornoy, bp.
	Basis string `json:"basis,omitempty"`

	// Measure names the length functional: intaxis or minlength.
	Measure string `json:"measure,omitempty"`

	// Finite switches entropy to the fixed-iteration estimate.
	Finite bool `json:"finite,omitempty"`

	// Iters is the iteration count for the finite entropy estimate.
	Iters int `json:"iters,omitempty"`

	// Tol, MaxIter and ConvReq tune the iterative entropy estimate.
	Tol     float64 `json:"tol,omitempty"`
	MaxIter int     `json:"max_iter,omitempty"`
	ConvReq int     `json:"conv_req,omitempty"`

	// Base is the logarithm base for complexity; 0 means natural log.
	Base float64 `json:"base,omitempty"`

	// Refresh bypasses the cache and recomputes.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of an analysis run.
// Only the fields for the requested operation are populated.
type Result struct {
	// ID identifies this run; cache hits get a fresh ID.
	ID string `json:"id"`

	// Op and Word echo the request.
	Op   string `json:"op"`
	Word string `json:"word"`

	// Strands is the strand count the analysis ran with.
	Strands int `json:"strands"`

	// Coords are the loop coordinates after act.
	Coords []int64 `json:"coords,omitempty"`

	// Equal is the eq verdict.
	Equal *bool `json:"equal,omitempty"`

	// Entropy is the entropy estimate; Iterations and Converged record the
	// power iteration's stopping state (iterative estimate only).
	Entropy    *float64 `json:"entropy,omitempty"`
	Iterations int      `json:"iterations,omitempty"`
	Converged  bool     `json:"converged,omitempty"`

	// Complexity is the complexity value.
	Complexity *float64 `json:"complexity,omitempty"`

	// Warning carries a non-fatal arithmetic note, typically an overflow in
	// a fixed-width representation.
	Warning string `json:"warning,omitempty"`

	// Stats contains timing information. Not cached.
	Stats Stats `json:"-"`

	// CacheInfo tracks whether the result came from cache. Not cached.
	CacheInfo CacheInfo `json:"-"`
}

// Stats contains execution statistics.
type Stats struct {
	ParseTime   time.Duration
	ComputeTime time.Duration
}

// CacheInfo tracks cache behavior for the run.
type CacheInfo struct {
	Hit bool // Whether the result came from cache
}

// ValidateOp checks that an operation is valid.
func ValidateOp(op string) error {
	if !ValidOps[op] {
		return errors.New(errors.ErrCodeUnsupported,
			"invalid op: %q (must be one of: act, eq, entropy, complexity)", op)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := ValidateOp(o.Op); err != nil {
		return err
	}
	if err := errors.ValidateWordString(o.Word); err != nil {
		return err
	}
	if o.Op == OpEq {
		if o.Other == "" {
			return errors.New(errors.ErrCodeInvalidInput, "eq requires a second word")
		}
		if err := errors.ValidateWordString(o.Other); err != nil {
			return err
		}
	}
	if o.Coords != "" {
		if o.Op != OpAct {
			return errors.New(errors.ErrCodeInvalidInput, "coords only apply to act")
		}
		if err := errors.ValidateCoordsString(o.Coords); err != nil {
			return err
		}
	}
	if o.Strands != 0 {
		if err := errors.ValidateStrandCount(o.Strands); err != nil {
			return err
		}
	}
	if _, err := numeric.ParseKind(o.Backend); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidBackend, err, "backend %q", o.Backend)
	}
	if _, err := loop.ParseBasis(o.Basis); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidBasis, err, "basis %q", o.Basis)
	}
	if _, err := dynamics.ParseMeasure(o.Measure); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidMeasure, err, "measure %q", o.Measure)
	}
	if o.Iters < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "iters must be positive, got %d", o.Iters)
	}
	if o.Finite && o.Iters == 0 {
		o.Iters = DefaultFiniteIters
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}
