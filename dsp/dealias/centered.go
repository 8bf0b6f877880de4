package dealias

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// PadFFTCentered computes a padded FFT of a centered (shifted-origin)
// sequence, grounded on the original's fftPadCentered: it wraps a plain
// PadFFT and applies the zeta_shift phase ramp of spec §3 to the output of
// the base forward transform and to a copy of the input of the base
// backward transform.
//
// The original specializes a fast path for p=2 with q odd that folds the
// shift into the p=2 kernel's own twiddle multiply; this port always
// takes the general shift path (forwardShift/backwardShift in the
// original), trading that one optimisation for a single, easier to
// audit implementation — see DESIGN.md.
type PadFFTCentered[C algofft.Complex] struct {
	*PadFFT[C]
}

// NewPadFFTCentered constructs a centered padded FFT for the given geometry.
func NewPadFFTCentered[C algofft.Complex](g Geometry) (*PadFFTCentered[C], error) {
	base, err := NewPadFFT[C](g)
	if err != nil {
		return nil, fmt.Errorf("dealias: centered: %w", err)
	}

	return &PadFFTCentered[C]{PadFFT: base}, nil
}

// Forward computes the centered padded forward transform. fOut must be
// sized with Geometry.WorksizeFFull, same as the underlying PadFFT.Forward.
func (pc *PadFFTCentered[C]) Forward(f, fOut []C) error {
	if err := pc.PadFFT.Forward(f, fOut); err != nil {
		return err
	}

	pc.applyShift(fOut, false)

	return nil
}

// Backward computes the centered padded backward transform. fIn must be
// sized with Geometry.WorksizeFFull, same as the underlying PadFFT.Backward.
func (pc *PadFFTCentered[C]) Backward(fIn, f []C) error {
	shifted := make([]C, len(fIn))
	copy(shifted, fIn)
	pc.applyShift(shifted, true)

	return pc.PadFFT.Backward(shifted, f)
}

// applyShift multiplies every residue block's subtransform output by the
// conjugate of the zeta_shift phase in the forward direction, and by the
// phase itself in the backward direction (inverse=true), mirroring forwardShift/backwardShift. Residue r's data occupies the
// contiguous span fBuf[block*r : block*r+block] regardless of D-pass
// boundaries, since forwardResidue/backwardResidue lay successive
// residues out back to back.
func (pc *PadFFTCentered[C]) applyShift(fBuf []C, inverse bool) {
	g := pc.Geometry()
	cm := g.C * g.m
	block := cm * g.p

	for r := 0; r < g.Q; r++ {
		residue := fBuf[block*r : block*r+block]
		for t := 0; t < g.p; t++ {
			off := cm * t
			for s := 0; s < g.m; s++ {
				base := off + g.C*s
				zeta := pc.tw.shift(t, r)
				if !inverse {
					zeta = conjC[C](zeta)
				}
				for c := 0; c < g.C; c++ {
					residue[base+c] *= zeta
				}
			}
		}
	}
}
