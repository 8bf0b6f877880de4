package dealias

import (
	algofft "github.com/MeKo-Christian/algo-fft"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Multiplier combines the forward-transformed, padded inputs F[0..A) into
// the forward-transformed outputs pointed to by the first B slices of F,
// in place, for one residue block of length n. It is the pointwise
// "multiply" step the original's HybridConvolution::convolve0 calls
// between the forward and backward passes.
type Multiplier[C algofft.Complex] func(f [][]C, n int)

// MultBinary is the reference two-input, one-output multiplier: F[0] *= F[1].
// It mirrors the original's multbinary.
func MultBinary[C algofft.Complex](f [][]C, n int) {
	a, b := f[0], f[1]
	for i := 0; i < n; i++ {
		a[i] *= b[i]
	}
}

// MultBinaryReIm is a drop-in replacement for MultBinary that deinterleaves
// the operands into split real/imaginary float64 planes and multiplies
// them with algo-vecmath's SIMD-dispatched block multiply, rather than
// relying on the Go runtime's generic complex multiply. It only
// specializes complex128; complex64 operands fall back to MultBinary.
func MultBinaryReIm[C algofft.Complex](f [][]C, n int) {
	a, b := f[0], f[1]
	if _, ok := any(a).([]complex128); !ok {
		MultBinary(f, n)

		return
	}

	ac := any(a).([]complex128)
	bc := any(b).([]complex128)

	ar := make([]float64, n)
	ai := make([]float64, n)
	br := make([]float64, n)
	bi := make([]float64, n)

	for i := 0; i < n; i++ {
		ar[i], ai[i] = real(ac[i]), imag(ac[i])
		br[i], bi[i] = real(bc[i]), imag(bc[i])
	}

	acbd := make([]float64, n)
	adbc := make([]float64, n)
	tmp := make([]float64, n)

	vecmath.MulBlock(acbd, ar, br) // ac
	vecmath.MulBlock(tmp, ai, bi)  // bd
	for i := 0; i < n; i++ {
		acbd[i] -= tmp[i]
	}

	vecmath.MulBlock(adbc, ar, bi) // ad
	vecmath.MulBlock(tmp, ai, br)  // bc
	for i := 0; i < n; i++ {
		adbc[i] += tmp[i]
	}

	for i := 0; i < n; i++ {
		ac[i] = complex(acbd[i], adbc[i])
	}
}
