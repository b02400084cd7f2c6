package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinnerStartStop(t *testing.T) {
	s := newSpinner("Estimating entropy...")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	// A plain Stop is not a cancellation; Cancelled only reports true when
	// the spinner's context ended before Stop was called.
	if s.Cancelled() {
		t.Error("Stop() should not mark the spinner as cancelled")
	}
}

func TestSpinnerContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinnerWithContext(ctx, "Analyzing words...")
	s.Start()
	cancel()

	// Give the render goroutine time to observe the cancellation.
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("spinner should report cancelled after context cancellation")
	}
}

func TestSpinnerContextTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s := newSpinnerWithContext(ctx, "Iterating action...")
	s.Start()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("spinner should report cancelled after context timeout")
	}
}

func TestSpinnerStopIdempotent(t *testing.T) {
	s := newSpinner("Comparing braids...")
	s.Start()

	// Repeated stops must not panic or double-close.
	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithOutcome(t *testing.T) {
	s := newSpinner("Analyzing 3 words...")
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.StopWithSuccess("Analyzed 3 words")

	s = newSpinner("Estimating entropy...")
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.StopWithError("estimation did not converge")
}

func TestNewSpinnerWithContextBackground(t *testing.T) {
	s := newSpinnerWithContext(context.Background(), "Working...")
	s.Start()
	s.Stop()
}
