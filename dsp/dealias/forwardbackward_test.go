package dealias

import "testing"

// TestNewForwardBackwardDefaultsAB checks the original's ForwardBackward
// default of 2 forward passes and 1 backward pass when the caller
// supplies non-positive counts.
func TestNewForwardBackwardDefaultsAB(t *testing.T) {
	g, err := newGeometry(4, 4, 1, 4, 1, 1, false)
	if err != nil {
		t.Fatalf("newGeometry: %v", err)
	}

	fft, err := NewPadFFT[complex128](g)
	if err != nil {
		t.Fatalf("NewPadFFT: %v", err)
	}

	fb := NewForwardBackward[complex128](fft, 0, -1)
	if fb.a != 2 || fb.b != 1 {
		t.Errorf("a=%d b=%d, want a=2 b=1", fb.a, fb.b)
	}
}

// TestForwardBackwardInitRejectsMismatchedGeometry checks Init's guard
// that the geometry passed in must match the one the bound engine was
// constructed for.
func TestForwardBackwardInitRejectsMismatchedGeometry(t *testing.T) {
	g, err := newGeometry(4, 4, 1, 4, 1, 1, false)
	if err != nil {
		t.Fatalf("newGeometry: %v", err)
	}
	other, err := newGeometry(8, 8, 1, 8, 1, 1, false)
	if err != nil {
		t.Fatalf("newGeometry: %v", err)
	}

	fft, err := NewPadFFT[complex128](g)
	if err != nil {
		t.Fatalf("NewPadFFT: %v", err)
	}

	fb := NewForwardBackward[complex128](fft, 2, 1)
	if err := fb.Init(other); err == nil {
		t.Fatal("expected an error for a mismatched geometry")
	}
}

// TestForwardBackwardTimeRunsResidueLoop exercises Init/Time/Clear's full
// lifecycle over an explicit (q=1) geometry: Time must run without error
// and report a non-negative duration, and Clear must drop every scratch
// buffer so a cleared harness can't be timed again without re-Init.
func TestForwardBackwardTimeRunsResidueLoop(t *testing.T) {
	g, err := newGeometry(4, 4, 1, 4, 1, 1, false)
	if err != nil {
		t.Fatalf("newGeometry: %v", err)
	}

	fft, err := NewPadFFT[complex128](g)
	if err != nil {
		t.Fatalf("NewPadFFT: %v", err)
	}

	fb := NewForwardBackward[complex128](fft, 2, 1)
	if err := fb.Init(g); err != nil {
		t.Fatalf("Init: %v", err)
	}

	seconds, err := fb.Time(3)
	if err != nil {
		t.Fatalf("Time: %v", err)
	}
	if seconds < 0 {
		t.Errorf("Time returned negative duration %v", seconds)
	}

	fb.Clear()
	if fb.f != nil || fb.g != nil || fb.h != nil || fb.w != nil {
		t.Error("Clear did not drop every scratch buffer")
	}
}
