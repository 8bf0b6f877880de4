// Package dealias implements the hybrid dealiased convolution engine: linear
// (and Hermitian-symmetric) convolution of complex sequences computed via
// FFTs of carefully chosen sizes that avoid the 2x zero-padding overhead of
// classical "explicit" padding.
//
// The engine decomposes a length-L input into an internally padded length
// N = m*q, with m a small subtransform size, p = ceil(L/m), n = q/p, and a
// decimation-in-residue parameter D controlling how many residue classes
// are processed per pass. For most (L, M) pairs this lets the FFT size N sit
// much closer to L than the 2L explicit-padding bound.
//
// # Usage
//
// A [Planner] picks the fastest (m, q, D) for a given (L, M, C) by timing
// candidates through a caller-supplied closure, typically one that wraps a
// [ForwardBackward] harness; the winning candidate then becomes a [Geometry]
// via [NewGeometry]:
//
//	opts := dealias.DefaultOptions()
//	planner := dealias.NewPlanner[complex128](opts)
//	timer := func(g dealias.Geometry) (float64, error) {
//		fft, err := dealias.NewPadFFT[complex128](g)
//		if err != nil {
//			return 0, err
//		}
//		fb := dealias.NewForwardBackward[complex128](fft, 2, 1)
//		if err := fb.Init(g); err != nil {
//			return 0, err
//		}
//		return fb.Time(64)
//	}
//	cand, err := planner.Scan(L, M, 1, false, false, timer)
//	g, err := dealias.NewGeometry(L, M, 1, cand.M, cand.Q, cand.D, opts)
//	conv, err := dealias.NewConvolve1D[complex128](g, dealias.MultBinary[complex128], 2, 1, opts)
//	err = conv.Convolve([][]complex128{a, b}, [][]complex128{out}, false)
//
// For repeated transforms with the same geometry, build and reuse a
// [PadFFT] directly:
//
//	fft, err := dealias.NewPadFFT[complex128](g)
//	F := make([]complex128, g.WorksizeFFull())
//	fft.Forward(f, F)
//
// # Real input (Hermitian)
//
// [PadFFTHermitian] computes the same padded transform for a real-valued
// input stored as its non-negative-frequency half, using real-to-complex
// subtransforms. Only q=1 (explicit) and p=2 are implemented; any other
// p fails fast at construction (spec'd as an explicit non-goal of the
// original algorithm).
//
// # Performance
//
// [Planner.Scan] amortizes its search: the result for a given (L, M, C) is
// memoized in-process for the lifetime of the Planner.
package dealias
