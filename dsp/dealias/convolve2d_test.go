package dealias

import (
	"testing"

	"github.com/cwbudde/dealias/internal/testutil"
)

// TestConvolve2DExplicitImpulseChecksum is a small, hand-verifiable
// analogue of the original's hybridconvh2.cc golden scenario: run a 2-D
// convolution and report a checksum (the sum of one output block), the
// same sanity check hybridconvh2.cc prints as "sum=...". That scenario
// convolves two L=512 Hermitian-symmetric fields and its exact sum can
// only be reproduced by actually running FFTW; here both dimensions use
// the degenerate explicit (q=1) kernel proven exact in
// TestPadFFTExplicitRoundTrip, and the inputs are impulses at the
// origin, so the convolution's result is hand-computable exactly: the
// convolution of two origin impulses is again an origin impulse scaled
// by the product of their values, independent of the padded size chosen
// for either dimension.
func TestConvolve2DExplicitImpulseChecksum(t *testing.T) {
	const lx, ly = 2, 2

	gy, err := newGeometry(ly, ly, 1, ly, 1, 1, false)
	if err != nil {
		t.Fatalf("newGeometry(y): %v", err)
	}

	gx, err := newGeometry(lx, lx, ly, lx, 1, 1, false)
	if err != nil {
		t.Fatalf("newGeometry(x): %v", err)
	}

	cv, err := NewConvolve2D[complex128](gx, gy, MultBinary[complex128], 2, 1, DefaultOptions())
	if err != nil {
		t.Fatalf("NewConvolve2D: %v", err)
	}

	impulse0 := testutil.Impulse(lx*ly, 0) // unit impulse at (x=0, y=0)
	f0 := make([]complex128, lx*ly)
	f1 := make([]complex128, lx*ly)
	for i, v := range impulse0 {
		f0[i] = complex(3*v, 0) // (x=0, y=0) = 3
		f1[i] = complex(5*v, 0) // (x=0, y=0) = 5
	}

	h0 := make([]complex128, lx*ly)
	if err := cv.Convolve([][]complex128{f0, f1}, [][]complex128{h0}); err != nil {
		t.Fatalf("Convolve: %v", err)
	}

	gotRe := make([]float64, lx*ly)
	gotIm := make([]float64, lx*ly)
	for i, v := range h0 {
		gotRe[i], gotIm[i] = real(v), imag(v)
	}
	testutil.RequireFinite(t, gotRe)
	testutil.RequireFinite(t, gotIm)

	wantRe := testutil.Impulse(lx*ly, 0)
	wantRe[0] = 15 // convolving two origin impulses scales the product into the origin bin
	testutil.RequireSliceNearlyEqual(t, gotRe, wantRe, 1e-6)
	testutil.RequireSliceNearlyEqual(t, gotIm, make([]float64, lx*ly), 1e-6)

	var sum complex128
	for _, v := range h0 {
		sum += v
	}
	if !nearlyEqualComplex(sum, 15, 1e-6) {
		t.Errorf("checksum sum=%v, want 15", sum)
	}
}

// TestConvolve2DHybridYChecksum exercises a non-explicit (q>1) y-direction
// geometry nested inside Convolve2D's x-direction pass, the path the
// explicit-only TestConvolve2DExplicitImpulseChecksum above never reaches.
// The x dimension carries a row impulse at x=0 for both inputs, so 2-D
// convolution separates exactly: h[0,:] is the y-direction self-convolution
// of [1,1,1] with itself (spec §8's L=3, M=6 scenario, [1,2,3,2,1]
// truncated to [1,2,3]), and h[1,:] is zero since f1's row x=1 is zero.
func TestConvolve2DHybridYChecksum(t *testing.T) {
	const lx, ly = 2, 3

	gy := hybridSelfConvolveGeometry(t, 1)

	gx, err := newGeometry(lx, lx, ly, lx, 1, 1, false)
	if err != nil {
		t.Fatalf("newGeometry(x): %v", err)
	}

	cv, err := NewConvolve2D[complex128](gx, gy, MultBinary[complex128], 2, 1, DefaultOptions())
	if err != nil {
		t.Fatalf("NewConvolve2D: %v", err)
	}

	f0 := []complex128{1, 1, 1, 0, 0, 0} // row x=0: [1,1,1], row x=1: zero
	f1 := []complex128{1, 1, 1, 0, 0, 0}

	h0 := make([]complex128, lx*ly)
	if err := cv.Convolve([][]complex128{f0, f1}, [][]complex128{h0}); err != nil {
		t.Fatalf("Convolve: %v", err)
	}

	want := []complex128{1, 2, 3, 0, 0, 0}
	for i, w := range want {
		if !nearlyEqualComplex(h0[i], w, 1e-6) {
			t.Errorf("h0[%d] = %v, want %v", i, h0[i], w)
		}
	}
}

func nearlyEqualComplex(a, b complex128, tol float64) bool {
	d := a - b
	return real(d)*real(d)+imag(d)*imag(d) <= tol*tol
}
