package subfft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// realPlan64 is the subset of algofft.FastPlanReal64 that RealEngine needs.
type realPlan64 interface {
	Len() int
	SpectrumLen() int
	Forward(dst []complex128, src []float64)
	Inverse(dst []float64, src []complex128)
}

// realPlan32 mirrors realPlan64 for float32/complex64.
type realPlan32 interface {
	Len() int
	SpectrumLen() int
	Forward(dst []complex64, src []float32)
	Inverse(dst []float32, src []complex64)
}

// RealEngine64 is the real<->complex SubFFT driver backing PadFFTHermitian
// (the mrcfft1d/mcrfft1d roles of the original). It only supports transform
// lengths the underlying algofft real plan accepts; today that means a
// power-of-2 length, inherited from algofft.FastPlanReal64/32.
type RealEngine64 struct {
	plan realPlan64
	n    int
}

// NewRealEngine64 builds a real<->complex engine for n real samples,
// producing n/2+1 complex frequency bins.
func NewRealEngine64(n int) (*RealEngine64, error) {
	plan, err := algofft.NewFastPlanReal64(n)
	if err != nil {
		return nil, fmt.Errorf("subfft: real plan(%d): %w", n, err)
	}

	return &RealEngine64{plan: plan, n: n}, nil
}

// Len returns the real-domain length.
func (e *RealEngine64) Len() int { return e.n }

// SpectrumLen returns the number of complex bins (n/2+1).
func (e *RealEngine64) SpectrumLen() int { return e.plan.SpectrumLen() }

// Forward computes the real-to-complex transform.
func (e *RealEngine64) Forward(dst []complex128, src []float64) {
	e.plan.Forward(dst, src)
}

// Inverse computes the complex-to-real transform, destroying src.
// algofft's FastPlanReal64.Inverse is normalised (Inverse(Forward(x)) == x);
// like Engine.Inverse, this undoes that 1/n so PadFFTHermitian sees the
// same unnormalised convention the complex engine presents.
func (e *RealEngine64) Inverse(dst []float64, src []complex128) {
	e.plan.Inverse(dst, src)

	n := float64(e.n)
	for i := range dst {
		dst[i] *= n
	}
}

// RealEngine32 is the complex64/float32 analogue of RealEngine64.
type RealEngine32 struct {
	plan realPlan32
	n    int
}

// NewRealEngine32 builds a real<->complex engine for n real samples.
func NewRealEngine32(n int) (*RealEngine32, error) {
	plan, err := algofft.NewFastPlanReal32(n)
	if err != nil {
		return nil, fmt.Errorf("subfft: real plan(%d): %w", n, err)
	}

	return &RealEngine32{plan: plan, n: n}, nil
}

// Len returns the real-domain length.
func (e *RealEngine32) Len() int { return e.n }

// SpectrumLen returns the number of complex bins (n/2+1).
func (e *RealEngine32) SpectrumLen() int { return e.plan.SpectrumLen() }

// Forward computes the real-to-complex transform.
func (e *RealEngine32) Forward(dst []complex64, src []float32) {
	e.plan.Forward(dst, src)
}

// Inverse computes the complex-to-real transform, destroying src.
// See RealEngine64.Inverse for why this rescales by n.
func (e *RealEngine32) Inverse(dst []float32, src []complex64) {
	e.plan.Inverse(dst, src)

	n := float32(e.n)
	for i := range dst {
		dst[i] *= n
	}
}
