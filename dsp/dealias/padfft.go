package dealias

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/dealias/internal/subfft"
)

// PadFFT is a padded FFT kernel: it transforms C interleaved signals of
// length L into Q/D residue blocks of a size-N=m*q padded transform, and
// back, reusing a single size-m (and, for the inner kernel, size-p)
// SubFFT engine across every residue. It is the Go counterpart of the
// original's fftPad, grounded on fftBase's common()/forward()/backward()
// dispatch loop and on the p=1, p=2 and inner kernel bodies of
// fftPad::forward*/backward*.
type PadFFT[C algofft.Complex] struct {
	g  Geometry
	tw *twiddles[C]

	subM *subfft.Engine[C] // size-m subtransform, used by every kernel
	subP *subfft.Engine[C] // size-p cross-block subtransform, inner kernel only

	pool *cbufferPool[C]
}

// NewPadFFT constructs a PadFFT for the given geometry. An Explicit
// (q=1) geometry is the degenerate p=1, single-residue case: it reuses
// the same forward1/backward1 kernel, which already skips every
// twiddle correction at r0=0, so no separate explicit-only code path is
// needed (the original's forwardExplicit/backwardExplicit do the same
// direct single transform, just without fftPad's shared dispatch loop).
func NewPadFFT[C algofft.Complex](g Geometry) (*PadFFT[C], error) {
	subM, err := subfft.New[C](g.m)
	if err != nil {
		return nil, fmt.Errorf("dealias: subtransform m=%d: %w", g.m, err)
	}

	pf := &PadFFT[C]{
		g:    g,
		tw:   newTwiddles[C](g),
		subM: subM,
		pool: newCBufferPool[C](),
	}

	if g.p >= 3 {
		subP, err := subfft.New[C](g.p)
		if err != nil {
			return nil, fmt.Errorf("dealias: subtransform p=%d: %w", g.p, err)
		}

		pf.subP = subP
	}

	return pf, nil
}

// Geometry returns the padded FFT's geometry.
func (pf *PadFFT[C]) Geometry() Geometry { return pf.g }

// Pad zero-fills the tail [L, p*m) of every D-block in w, matching the
// original's padSingle/padMany (called only when operating out of place
// and L < p*m, see Geometry.NeedsPadding).
func (pf *PadFFT[C]) Pad(w []C) {
	mp := pf.g.p * pf.g.m
	block := pf.g.C * mp
	for d := 0; d < pf.g.D; d++ {
		f := w[block*d:]
		for s := pf.g.L; s < mp; s++ {
			base := pf.g.C * s
			for c := 0; c < pf.g.C; c++ {
				f[base+c] = 0
			}
		}
	}
}

// Forward computes the padded forward transform of f into F, one residue
// pass at a time, mirroring fftPad::forward's dispatch loop over r in
// [0,Q) step D. F must be sized with Geometry.WorksizeFFull, not
// WorksizeF, since it holds every pass's output back to back.
func (pf *PadFFT[C]) Forward(f, fOut []C) error {
	block := pf.g.C * pf.g.m * pf.g.p
	w := pf.scratch()

	for r := 0; r < pf.g.Q; r += pf.g.D {
		dst := fOut[block*r:]
		if err := pf.forwardResidue(f, dst, r, w); err != nil {
			return fmt.Errorf("dealias: forward residue %d: %w", r, err)
		}
	}

	return nil
}

// Backward computes the padded inverse transform of F into f, one residue
// pass at a time, mirroring fftPad::backward. F must be sized with
// Geometry.WorksizeFFull, not WorksizeF, for the same reason as Forward.
func (pf *PadFFT[C]) Backward(fIn, f []C) error {
	block := pf.g.C * pf.g.m * pf.g.p
	w := pf.scratch()

	for r := 0; r < pf.g.Q; r += pf.g.D {
		src := fIn[block*r:]
		if err := pf.backwardResidue(src, f, r, w); err != nil {
			return fmt.Errorf("dealias: backward residue %d: %w", r, err)
		}
	}

	return nil
}

func (pf *PadFFT[C]) scratch() []C {
	if pf.g.Inplace {
		return nil
	}

	return make([]C, pf.g.WorksizeF())
}

func (pf *PadFFT[C]) forwardResidue(f, fOut []C, r0 int, w []C) error {
	switch {
	case pf.g.p == 1:
		return pf.forward1(f, fOut, r0, w)
	case pf.g.p == 2:
		return pf.forward2(f, fOut, r0, w)
	default:
		return pf.forwardInner(f, fOut, r0, w)
	}
}

func (pf *PadFFT[C]) backwardResidue(fIn, f []C, r0 int, w []C) error {
	switch {
	case pf.g.p == 1:
		return pf.backward1(fIn, f, r0, w)
	case pf.g.p == 2:
		return pf.backward2(fIn, f, r0, w)
	default:
		return pf.backwardInner(fIn, f, r0, w)
	}
}

// d0 returns min(D, Q-r0), the number of residues active in this pass
// (the original's "D0", nonzero only for the final, possibly partial,
// pass when Q is not a multiple of D).
func (pf *PadFFT[C]) d0(r0 int) int {
	return pf.g.boundaryD0(r0)
}
