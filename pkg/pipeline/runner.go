package pipeline

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/topodyn/braidkit/pkg/braid"
	"github.com/topodyn/braidkit/pkg/cache"
	"github.com/topodyn/braidkit/pkg/dynamics"
	"github.com/topodyn/braidkit/pkg/errors"
	"github.com/topodyn/braidkit/pkg/loop"
	"github.com/topodyn/braidkit/pkg/numeric"
	"github.com/topodyn/braidkit/pkg/observability"
)

// Runner encapsulates analysis execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store analysis results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs one analysis with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	cacheKey := r.cacheKey(opts)

	// Try cache first (unless refresh requested). The redis backend tags
	// transport failures Retryable, so a flaky connection gets the backoff
	// instead of silently recomputing.
	if !opts.Refresh {
		var data []byte
		var hit bool
		getErr := cache.RetryWithBackoff(ctx, func() error {
			var err error
			data, hit, err = r.Cache.Get(ctx, cacheKey)
			return err
		})
		if getErr == nil && hit {
			var cached Result
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, cacheKey)
				cached.ID = uuid.NewString()
				cached.CacheInfo.Hit = true
				r.Logger.Debug("analysis cache hit", "op", opts.Op, "key", cacheKey)
				return &cached, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, cacheKey)
	}

	parseStart := time.Now()
	w, err := ParseWord(opts.Word, opts.Strands)
	if err != nil {
		return nil, err
	}
	parseTime := time.Since(parseStart)

	result := &Result{
		ID:      uuid.NewString(),
		Op:      opts.Op,
		Word:    opts.Word,
		Strands: w.Strands(),
	}
	result.Stats.ParseTime = parseTime

	observability.Analysis().OnAnalysisStart(ctx, opts.Op, w.Strands(), w.Len())
	computeStart := time.Now()

	switch opts.Op {
	case OpAct:
		err = r.runAct(w, opts, result)
	case OpEq:
		err = r.runEq(w, opts, result)
	case OpEntropy:
		err = r.runEntropy(w, opts, result)
	case OpComplexity:
		err = r.runComplexity(w, opts, result)
	}
	result.Stats.ComputeTime = time.Since(computeStart)
	observability.Analysis().OnAnalysisComplete(ctx, opts.Op, result.Stats.ComputeTime, err)
	if err != nil {
		return nil, err
	}

	r.Logger.Info("analysis complete",
		"op", opts.Op,
		"strands", result.Strands,
		"word_len", w.Len(),
		"duration", result.Stats.ComputeTime)

	// Cache the result
	if data, err := json.Marshal(result); err == nil {
		setErr := cache.RetryWithBackoff(ctx, func() error {
			return r.Cache.Set(ctx, cacheKey, data, cache.TTLAnalysis)
		})
		if setErr == nil {
			observability.Cache().OnCacheSet(ctx, cacheKey, len(data))
		}
	}

	return result, nil
}

func (r *Runner) runAct(w braid.Word, opts Options, result *Result) error {
	kind, _ := numeric.ParseKind(opts.Backend)

	var l *loop.Loop
	var err error
	if opts.Coords != "" {
		var coords []int64
		coords, err = ParseCoords(opts.Coords)
		if err != nil {
			return err
		}
		l, err = loop.FromCoords(coords, kind)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidLoop, err, "coords %q", opts.Coords)
		}
		if l.Strands() < w.Strands() {
			return errors.New(errors.ErrCodeInvalidLoop,
				"loop has %d strands but word needs %d", l.Strands(), w.Strands())
		}
	} else {
		basis, _ := loop.ParseBasis(opts.Basis)
		l, err = loop.Canonical(w.Strands(), basis, kind)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidLoop, err, "canonical loop")
		}
	}
	result.Strands = l.Strands()

	out, err := l.Apply(w)
	if err := r.note(result, err); err != nil {
		return err
	}
	coords, exact := out.Int64Coords()
	if !exact {
		return errors.New(errors.ErrCodeOverflow,
			"resulting coordinates exceed the int64 range; rerun with a narrower word")
	}
	result.Coords = coords
	return nil
}

func (r *Runner) runEq(w braid.Word, opts Options, result *Result) error {
	other, err := ParseWord(opts.Other, opts.Strands)
	if err != nil {
		return err
	}
	// Lift both words to a common strand count so that eq compares the
	// mapping classes rather than failing on the bookkeeping.
	n := w.Strands()
	if other.Strands() > n {
		n = other.Strands()
	}
	if w, err = w.WithStrands(n); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidWord, err, "word %q", opts.Word)
	}
	if other, err = other.WithStrands(n); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidWord, err, "word %q", opts.Other)
	}
	result.Strands = n

	kind, _ := numeric.ParseKind(opts.Backend)
	basis, _ := loop.ParseBasis(opts.Basis)
	equal, err := dynamics.Eq(w, other, dynamics.Options{Basis: basis, Kind: kind})
	if err := r.note(result, err); err != nil {
		return err
	}
	result.Equal = &equal
	return nil
}

func (r *Runner) runEntropy(w braid.Word, opts Options, result *Result) error {
	if opts.Finite {
		kind, _ := numeric.ParseKind(opts.Backend)
		measure, _ := dynamics.ParseMeasure(opts.Measure)
		entr, err := dynamics.EntropyFinite(w, opts.Iters, dynamics.FiniteOptions{
			Kind:    kind,
			Measure: measure,
		})
		if err != nil {
			return errors.Wrap(errors.ErrCodeOverflow, err,
				"finite entropy after %d iterations", opts.Iters)
		}
		result.Entropy = &entr
		result.Iterations = opts.Iters
		result.Converged = true
		return nil
	}

	res, err := dynamics.Entropy(w, dynamics.EntropyOptions{
		Tol:     opts.Tol,
		MaxIter: opts.MaxIter,
		ConvReq: opts.ConvReq,
	})
	if err := r.note(result, err); err != nil {
		return err
	}
	result.Entropy = &res.Entropy
	result.Iterations = res.Iterations
	result.Converged = res.Converged
	return nil
}

func (r *Runner) runComplexity(w braid.Word, opts Options, result *Result) error {
	kind, _ := numeric.ParseKind(opts.Backend)
	measure, _ := dynamics.ParseMeasure(opts.Measure)
	c, err := dynamics.Complexity(w, dynamics.ComplexityOptions{
		Kind:    kind,
		Measure: measure,
		Base:    opts.Base,
	})
	if err := r.note(result, err); err != nil {
		return err
	}
	result.Complexity = &c
	return nil
}

// note records a non-fatal arithmetic condition on the result and returns
// nil; any other error is returned for the caller to fail on. Overflow in a
// fixed-width representation and non-convergence of the power iteration both
// leave a usable best-effort value behind.
func (r *Runner) note(result *Result, err error) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, numeric.ErrOverflow) || stderrors.Is(err, dynamics.ErrNoConvergence) {
		result.Warning = err.Error()
		r.Logger.Warn("analysis warning", "op", result.Op, "warning", err)
		return nil
	}
	return err
}

// cacheKey folds every result-changing option into the key. Inputs that the
// Keyer doesn't model directly (second word, explicit coordinates, solver
// tuning) are appended to the word component before hashing.
func (r *Runner) cacheKey(opts Options) string {
	word := opts.Word
	if opts.Other != "" {
		word += "|" + opts.Other
	}
	if opts.Coords != "" {
		word += "@" + opts.Coords
	}
	if opts.Tol != 0 || opts.MaxIter != 0 || opts.ConvReq != 0 || opts.Base != 0 || opts.Finite {
		word += fmt.Sprintf("#%v:%g:%d:%d:%g",
			opts.Finite, opts.Tol, opts.MaxIter, opts.ConvReq, opts.Base)
	}
	return r.Keyer.AnalysisKey(opts.Op, word, cache.AnalysisKeyOpts{
		Strands: opts.Strands,
		Backend: opts.Backend,
		Basis:   opts.Basis,
		Measure: opts.Measure,
		Iters:   opts.Iters,
	})
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
