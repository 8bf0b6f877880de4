package dealias

import (
	"testing"

	"github.com/cwbudde/dealias/dsp/core"
)

// TestPadFFTHermitianExplicitRoundTrip exercises the explicit (q=1) real
// engine path. algofft's FastPlanReal64.Inverse is itself normalised
// (Inverse(Forward(x)) == x, see the underlying library's own
// TestFastPlanReal64_RoundTrip); internal/subfft.RealEngine64.Inverse
// undoes that 1/n so PadFFTHermitian presents the same unnormalised
// convention as the complex PadFFT explicit path
// (TestPadFFTExplicitRoundTrip): Backward(Forward(x)) == m*x, leaving the
// 1/N scaling to the convolution driver.
func TestPadFFTHermitianExplicitRoundTrip(t *testing.T) {
	g, err := newGeometry(8, 8, 1, 8, 1, 1, false)
	if err != nil {
		t.Fatalf("newGeometry: %v", err)
	}
	if !g.Explicit {
		t.Fatal("expected an Explicit geometry")
	}

	h, err := NewPadFFTHermitian[float64, complex128](g)
	if err != nil {
		t.Fatalf("NewPadFFTHermitian: %v", err)
	}

	in := []float64{1, 2, 3, 4, 5, 6, 7, 8}

	spectrum := make([]complex128, g.m/2+1)
	if err := h.Forward(in, spectrum); err != nil {
		t.Fatalf("Forward: %v", err)
	}

	out := make([]float64, g.m)
	if err := h.Backward(spectrum, out); err != nil {
		t.Fatalf("Backward: %v", err)
	}

	m := float64(g.m)
	for i, v := range in {
		want := v * m
		if !core.NearlyEqual(out[i], want, 1e-9) {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want)
		}
	}
}

// TestPadFFTHermitianP2RoundTrip exercises the non-explicit (p=2) residue
// path, which delegates to the already round-trip-verified complex PadFFT
// p=2 kernel (TestPadFFTP2RoundTrip) over a zero-imaginary-part view of
// the real input. Worksize accounts for both active residues (Q=2), the
// buffer a prior revision's WorksizeF-sized spectrum would have overrun.
func TestPadFFTHermitianP2RoundTrip(t *testing.T) {
	g, err := newGeometry(3, 4, 1, 2, 2, 1, false)
	if err != nil {
		t.Fatalf("newGeometry: %v", err)
	}
	if g.Explicit || g.p != 2 {
		t.Fatalf("geometry = %+v, want non-explicit p=2", g)
	}

	h, err := NewPadFFTHermitian[float64, complex128](g)
	if err != nil {
		t.Fatalf("NewPadFFTHermitian: %v", err)
	}

	in := []float64{1, 2, 3}

	spectrum := make([]complex128, h.Worksize())
	if err := h.Forward(in, spectrum); err != nil {
		t.Fatalf("Forward: %v", err)
	}

	out := make([]float64, len(in))
	if err := h.Backward(spectrum, out); err != nil {
		t.Fatalf("Backward: %v", err)
	}

	n := float64(g.Size())
	for i, v := range in {
		want := v * n
		if !core.NearlyEqual(out[i], want, 1e-9) {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want)
		}
	}
}

// TestPadFFTHermitianRejectsOddM checks the even-m precondition fftPadHermitian
// enforces (e = m/2 must be an integer).
func TestPadFFTHermitianRejectsOddM(t *testing.T) {
	g, err := newGeometry(7, 7, 1, 7, 1, 1, false)
	if err != nil {
		t.Fatalf("newGeometry: %v", err)
	}

	if _, err := NewPadFFTHermitian[float64, complex128](g); err == nil {
		t.Fatal("expected an error for odd m")
	}
}
