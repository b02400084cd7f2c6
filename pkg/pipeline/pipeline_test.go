package pipeline

import (
	"context"
	"math"
	"testing"

	"github.com/topodyn/braidkit/pkg/cache"
	"github.com/topodyn/braidkit/pkg/errors"
)

func TestValidateOp(t *testing.T) {
	tests := []struct {
		op      string
		wantErr bool
	}{
		{"act", false},
		{"eq", false},
		{"entropy", false},
		{"complexity", false},
		{"invalid", true},
		{"Entropy", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateOp(tt.op)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateOp(%q) error = %v, wantErr %v", tt.op, err, tt.wantErr)
		}
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		wantCode errors.Code
	}{
		{"entropy ok", Options{Op: OpEntropy, Word: "1 -2"}, ""},
		{"missing word", Options{Op: OpEntropy}, errors.ErrCodeInvalidWord},
		{"bad op", Options{Op: "spin", Word: "1"}, errors.ErrCodeUnsupported},
		{"eq missing other", Options{Op: OpEq, Word: "1"}, errors.ErrCodeInvalidInput},
		{"eq ok", Options{Op: OpEq, Word: "1 2 1", Other: "2 1 2"}, ""},
		{"coords on entropy", Options{Op: OpEntropy, Word: "1", Coords: "0 -1"}, errors.ErrCodeInvalidInput},
		{"bad backend", Options{Op: OpEntropy, Word: "1", Backend: "decimal"}, errors.ErrCodeInvalidBackend},
		{"bad basis", Options{Op: OpEq, Word: "1", Other: "1", Basis: "right"}, errors.ErrCodeInvalidBasis},
		{"bad measure", Options{Op: OpComplexity, Word: "1", Measure: "girth"}, errors.ErrCodeInvalidMeasure},
		{"negative strands", Options{Op: OpEntropy, Word: "1", Strands: -3}, errors.ErrCodeInvalidWord},
		{"negative iters", Options{Op: OpEntropy, Word: "1", Iters: -1}, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if got := errors.GetCode(err); got != tt.wantCode {
				t.Errorf("code = %v, want %v", got, tt.wantCode)
			}
		})
	}
}

func TestValidateAndSetDefaultsFiniteIters(t *testing.T) {
	opts := Options{Op: OpEntropy, Word: "1 -2", Finite: true}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if opts.Iters != DefaultFiniteIters {
		t.Errorf("Iters = %d, want %d", opts.Iters, DefaultFiniteIters)
	}
	if opts.Logger == nil {
		t.Error("expected default logger")
	}
}

func TestValidateIdempotent(t *testing.T) {
	opts := Options{Op: OpEntropy, Word: "1 -2", Finite: true, Iters: 7}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("first validate: %v", err)
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second validate: %v", err)
	}
	if opts.Iters != 7 {
		t.Errorf("Iters changed on revalidation: %d", opts.Iters)
	}
}

func TestParseWord(t *testing.T) {
	w, err := ParseWord("1, -2,3", 0)
	if err != nil {
		t.Fatalf("ParseWord: %v", err)
	}
	if w.Strands() != 4 || w.Len() != 3 {
		t.Errorf("got %d strands, %d gens", w.Strands(), w.Len())
	}

	w, err = ParseWord("1 -2", 6)
	if err != nil {
		t.Fatalf("ParseWord with strands: %v", err)
	}
	if w.Strands() != 6 {
		t.Errorf("strands = %d, want 6", w.Strands())
	}

	if _, err := ParseWord("1 0 2", 0); err == nil {
		t.Error("expected error for generator 0")
	}
	if _, err := ParseWord("1 -3", 2); err == nil {
		t.Error("expected error for word too wide for strand count")
	}
	if _, err := ParseWord("one two", 0); err == nil {
		t.Error("expected error for non-numeric input")
	}
}

func TestParseTimes(t *testing.T) {
	times, err := ParseTimes("0.5, 1.25 3e-1")
	if err != nil {
		t.Fatalf("ParseTimes: %v", err)
	}
	want := []float64{0.5, 1.25, 0.3}
	if len(times) != len(want) {
		t.Fatalf("got %d times, want %d", len(times), len(want))
	}
	for i := range want {
		if math.Abs(times[i]-want[i]) > 1e-12 {
			t.Errorf("times[%d] = %v, want %v", i, times[i], want[i])
		}
	}

	if _, err := ParseTimes("0.5 noon"); err == nil {
		t.Error("expected error for non-numeric time")
	}
}

func TestParseCoords(t *testing.T) {
	coords, err := ParseCoords("0 0 -1 -1")
	if err != nil {
		t.Fatalf("ParseCoords: %v", err)
	}
	if len(coords) != 4 || coords[2] != -1 {
		t.Errorf("coords = %v", coords)
	}

	if _, err := ParseCoords("1 x"); err == nil {
		t.Error("expected error for non-numeric coordinate")
	}
}

func TestCacheKeyDistinguishesInputs(t *testing.T) {
	r := NewRunner(nil, nil, nil)

	base := Options{Op: OpEntropy, Word: "1 -2"}
	variants := []Options{
		{Op: OpComplexity, Word: "1 -2"},
		{Op: OpEntropy, Word: "1 2"},
		{Op: OpEntropy, Word: "1 -2", Strands: 5},
		{Op: OpEntropy, Word: "1 -2", Backend: "big"},
		{Op: OpEntropy, Word: "1 -2", Finite: true, Iters: 20},
		{Op: OpEntropy, Word: "1 -2", Tol: 1e-4},
	}

	baseKey := r.cacheKey(base)
	seen := map[string]bool{baseKey: true}
	for i, v := range variants {
		key := r.cacheKey(v)
		if seen[key] {
			t.Errorf("variant %d collides with an earlier key", i)
		}
		seen[key] = true
	}

	if r.cacheKey(base) != baseKey {
		t.Error("cache key is not deterministic")
	}
}

func TestCacheKeyEqOrderSensitive(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	k1 := r.cacheKey(Options{Op: OpEq, Word: "1 2", Other: "2 1"})
	k2 := r.cacheKey(Options{Op: OpEq, Word: "2 1", Other: "1 2"})
	if k1 == k2 {
		t.Error("swapped eq operands should not share a key")
	}
}

func TestRunnerClose(t *testing.T) {
	r := NewRunner(cache.NewNullCache(), nil, nil)
	if err := r.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

// helper shared by the runner tests
func mustExecute(t *testing.T, r *Runner, opts Options) *Result {
	t.Helper()
	res, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute(%s): %v", opts.Op, err)
	}
	return res
}
