package dealias

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Convolve1D drives A padded forward transforms, a pointwise Multiplier,
// and B padded backward transforms to compute a 1-D hybrid dealiased
// convolution, grounded on the original's HybridConvolution. It reuses
// one PadFFT across every call and, when geometry.TwoLoopEligible(A,B)
// holds, reuses the two-loop buffer-rotation trick (Fp) the original
// applies when there are more inputs than outputs.
//
// Two simplifications relative to the original, both documented in
// DESIGN.md: inputs/outputs are passed as already-offset slices rather
// than one flat buffer plus an integer offset, and in-place aliasing of
// f and h is an explicit caller-supplied flag rather than inferred from
// pointer identity.
type Convolve1D[C algofft.Complex] struct {
	fft *PadFFT[C]
	g   Geometry

	a, b int
	mult Multiplier[C]

	f [][]C // scratch forward buffers, size max(A,B)
	fp [][]C
	v  [][]C
	w  []C

	loop2   bool
	w0      []C
	padW    bool
	scale   C
	threads int
}

// NewConvolve1D constructs a Convolve1D over a freshly built PadFFT for
// geometry g, with a forward inputs and b backward outputs.
func NewConvolve1D[C algofft.Complex](g Geometry, mult Multiplier[C], a, b int, opts Options) (*Convolve1D[C], error) {
	fft, err := NewPadFFT[C](g)
	if err != nil {
		return nil, fmt.Errorf("dealias: convolve1d: %w", err)
	}

	return newConvolve1D(fft, g, mult, a, b, opts)
}

func newConvolve1D[C algofft.Complex](fft *PadFFT[C], g Geometry, mult Multiplier[C], a, b int, opts Options) (*Convolve1D[C], error) {
	if a <= 0 || b <= 0 {
		return nil, fmt.Errorf("%w: A and B must be positive", ErrInvalidGeometry)
	}

	k := a
	if b > k {
		k = b
	}

	cv := &Convolve1D[C]{
		fft:     fft,
		g:       g,
		a:       a,
		b:       b,
		mult:    mult,
		threads: opts.Threads,
		scale:   toComplex[C](1 / float64(g.Size())),
	}

	cv.f = make([][]C, k)
	c := g.WorksizeF()
	for i := 0; i < k; i++ {
		cv.f[i] = make([]C, c)
	}

	if g.q > 1 {
		cv.w = make([]C, c)
		fft.Pad(cv.w)

		cv.loop2 = g.TwoLoopEligible(a, b)
		extra := 0
		if cv.loop2 {
			cv.fp = make([][]C, a)
			cv.fp[0] = cv.f[a-1]
			for i := 1; i < a; i++ {
				cv.fp[i] = cv.f[i-1]
			}
			extra = 1
		}

		if a > b+extra {
			cv.w0 = cv.f[b]
			cv.padW = false
		} else {
			cv.w0 = cv.w
			cv.padW = g.NeedsPadding()
		}
	}

	return cv, nil
}

func (cv *Convolve1D[C]) initV() {
	cv.v = make([][]C, cv.b)
	size := cv.g.WorksizeV(cv.a, cv.b)
	for i := range cv.v {
		cv.v[i] = make([]C, size)
	}
}

// Convolve0 runs the unscaled hybrid dealiased convolution: A forward
// transforms, one pointwise multiply, B backward transforms. inPlace
// must be true when h and f alias the same underlying storage.
func (cv *Convolve1D[C]) Convolve0(f, h [][]C, inPlace bool) error {
	g := cv.g

	if g.q == 1 {
		return cv.convolve0Explicit(f, h)
	}
	if cv.loop2 {
		return cv.convolve0Loop2(f, h)
	}

	return cv.convolve0SingleLoop(f, h, inPlace)
}

func (cv *Convolve1D[C]) convolve0Explicit(f, h [][]C) error {
	for a := 0; a < cv.a; a++ {
		if err := cv.fft.forwardResidue(f[a], cv.f[a], 0, nil); err != nil {
			return err
		}
	}

	cv.mult(cv.f, cv.g.WorksizeF())

	for b := 0; b < cv.b; b++ {
		if err := cv.fft.backwardResidue(cv.f[b], h[b], 0, nil); err != nil {
			return err
		}
	}

	return nil
}

func (cv *Convolve1D[C]) convolve0Loop2(f, h [][]C) error {
	g := cv.g
	c := g.WorksizeF()

	for a := 0; a < cv.a; a++ {
		if err := cv.fft.forwardResidue(f[a], cv.f[a], 0, cv.w); err != nil {
			return err
		}
	}

	cv.mult(cv.f, c)

	for b := 0; b < cv.b; b++ {
		if err := cv.fft.forwardResidue(f[b], cv.fp[b], g.D, cv.w); err != nil {
			return err
		}
		if err := cv.fft.backwardResidue(cv.f[b], h[b], 0, cv.w0); err != nil {
			return err
		}

		cv.fft.Pad(cv.w)
	}

	for a := cv.b; a < cv.a; a++ {
		if err := cv.fft.forwardResidue(f[a], cv.fp[a], g.D, cv.w); err != nil {
			return err
		}
	}

	cv.mult(cv.fp, c)

	upB := cv.fp[cv.b]
	for b := 0; b < cv.b; b++ {
		if err := cv.fft.backwardResidue(cv.fp[b], h[b], g.D, upB); err != nil {
			return err
		}
	}

	return nil
}

func (cv *Convolve1D[C]) convolve0SingleLoop(f, h [][]C, inPlace bool) error {
	g := cv.g
	c := g.WorksizeF()

	useV := inPlace && g.D < g.Q
	h0 := h
	if useV {
		if cv.v == nil {
			cv.initV()
		}

		h0 = cv.v
	}

	for r := 0; r < g.Q; r += g.D {
		for a := 0; a < cv.a; a++ {
			if err := cv.fft.forwardResidue(f[a], cv.f[a], r, cv.w); err != nil {
				return err
			}
		}

		cv.mult(cv.f, c)

		for b := 0; b < cv.b; b++ {
			if err := cv.fft.backwardResidue(cv.f[b], h0[b], r, cv.w0); err != nil {
				return err
			}
		}

		if cv.padW {
			cv.fft.Pad(cv.w)
		}
	}

	if useV {
		for b := 0; b < cv.b; b++ {
			copy(f[b][:g.L], h0[b][:g.L])
		}
	}

	return nil
}

// Convolve runs Convolve0 and scales every output by 1/N, the final step
// the original's convolve() performs after convolve0.
func (cv *Convolve1D[C]) Convolve(f, h [][]C, inPlace bool) error {
	if err := cv.Convolve0(f, h, inPlace); err != nil {
		return err
	}

	for b := 0; b < cv.b; b++ {
		hb := h[b]
		for i := 0; i < cv.g.L; i++ {
			hb[i] *= cv.scale
		}
	}

	return nil
}
