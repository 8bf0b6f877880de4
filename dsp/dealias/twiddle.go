package dealias

import (
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// twopi is the 2*pi constant used throughout the twiddle formulas below,
// matching the original's twopi.
const twopi = 2 * math.Pi

// twiddles holds the precomputed complex roots of unity a padded FFT
// reuses across residues, grounded on fftBase's initZetaq/initZetaqm and
// fftPadCentered's initShift from the original source. The original
// indexes these with negative-offset pointers (e.g. "Zetaqm - m") so a
// row's first entry lands at a flat array's logical zero; spec §9 asks
// that this become an explicit index-offset helper instead of unsafe
// pointer arithmetic, so every table here is addressed through a method
// that folds the offset in, never through raw negative slicing.
type twiddles[C algofft.Complex] struct {
	g Geometry

	// zetaQ[r] = exp(2*pi*i*r/q), used by the p=2 forward kernel. zetaQ[0] is left
	// at its zero value and must never be read; callers only touch r>=1.
	zetaQ []C

	// zetaQM holds q rows of m columns: zetaQM[r*m+s] = exp(2*pi*i*r*s/N)
	// for r in [1,q), s in [1,m), with zetaQM[r*m] = 1. Row 0 is unused.
	zetaQM []C

	// zetaQM2 extends the zetaQM formula to the wrap region s in [m,L) that
	// the p=2 backward kernel needs when L > m. Row r, local column
	// j = s-m, is stored at zetaQM2[r*(L-m)+j].
	zetaQM2 []C

	// zetaQP holds Q rows of p columns for the inner (p>=3) kernels:
	// zetaQP[r*p+t] = exp(2*pi*i*r*t/(q*p)) for t in [1,p). Column 0 is
	// unused.
	zetaQP []C

	// zetaShift[q*s+r] = exp(i*floor(L/2)*(q*s+r)*2*pi/M), used by the
	// centered variant's general shift path.
	zetaShift []C
}

// newTwiddles builds the twiddle tables a padded FFT of geometry g needs.
// It always fills zetaQ and zetaQM (every non-explicit geometry uses at
// least the p=1 kernels' tables); zetaQM2, zetaQP and zetaShift are built
// lazily by their own accessors so callers that never touch the p=2
// wrap region, the inner kernels, or the centered variant pay nothing.
func newTwiddles[C algofft.Complex](g Geometry) *twiddles[C] {
	t := &twiddles[C]{g: g}
	if g.Explicit || g.q <= 1 {
		return t
	}

	t.zetaQ = make([]C, g.q)
	twopibyq := twopi / float64(g.q)
	for r := 1; r < g.q; r++ {
		t.zetaQ[r] = expi[C](float64(r) * twopibyq)
	}

	N := g.m * g.q
	twopibyN := twopi / float64(N)
	t.zetaQM = make([]C, g.q*g.m)
	for r := 1; r < g.q; r++ {
		row := r * g.m
		t.zetaQM[row] = toComplex[C](1)
		for s := 1; s < g.m; s++ {
			t.zetaQM[row+s] = expi[C](float64(r*s) * twopibyN)
		}
	}

	return t
}

// zq returns zeta_q[r]. r must be in [1,q).
func (t *twiddles[C]) zq(r int) C {
	return t.zetaQ[r]
}

// zqm returns zeta_qm[r][s], the phase for residue r, subtransform index s.
func (t *twiddles[C]) zqm(r, s int) C {
	return t.zetaQM[r*t.g.m+s]
}

// ensureZQM2 lazily builds the p=2 backward wrap-region table, extending
// the zetaQM formula to s in [m,L).
func (t *twiddles[C]) ensureZQM2() {
	if t.zetaQM2 != nil || t.g.L <= t.g.m {
		return
	}

	lm := t.g.L - t.g.m
	N := t.g.m * t.g.q
	twopibyN := twopi / float64(N)
	t.zetaQM2 = make([]C, t.g.q*lm)
	for r := 0; r < t.g.q; r++ {
		row := r * lm
		for s := t.g.m; s < t.g.L; s++ {
			t.zetaQM2[row+(s-t.g.m)] = expi[C](float64(r*s) * twopibyN)
		}
	}
}

// zqm2 returns the p=2 backward wrap-region phase for residue r at
// subtransform index s, s in [m,L).
func (t *twiddles[C]) zqm2(r, s int) C {
	t.ensureZQM2()

	lm := t.g.L - t.g.m

	return t.zetaQM2[r*lm+(s-t.g.m)]
}

// ensureZQP lazily builds the inner (p>=3) block-phase table.
func (t *twiddles[C]) ensureZQP() {
	if t.zetaQP != nil || t.g.p <= 2 {
		return
	}

	t.zetaQP = make([]C, t.g.Q*t.g.p)
	twopibyqp := twopi / float64(t.g.q*t.g.p)
	for r := 0; r < t.g.Q; r++ {
		row := r * t.g.p
		for tt := 1; tt < t.g.p; tt++ {
			t.zetaQP[row+tt] = expi[C](float64(r*tt) * twopibyqp)
		}
	}
}

// zqp returns the inner-kernel block phase for residue r, block index t
// (t in [1,p)).
func (t *twiddles[C]) zqp(r, tt int) C {
	t.ensureZQP()

	return t.zetaQP[r*t.g.p+tt]
}

// ensureShift lazily builds the centered variant's general shift table.
func (t *twiddles[C]) ensureShift() {
	if t.zetaShift != nil {
		return
	}

	t.zetaShift = make([]C, t.g.M)
	factor := float64(t.g.L/2) * twopi / float64(t.g.M)
	for s := 0; s < t.g.p; s++ {
		for r := 0; r < t.g.q; r++ {
			idx := t.g.q*s + r
			if idx < t.g.M {
				t.zetaShift[idx] = expi[C](factor * float64(idx))
			}
		}
	}
}

// shift returns zeta_shift[q*s+r], the centered variant's origin-shift
// phase for block s, residue r.
func (t *twiddles[C]) shift(s, r int) C {
	t.ensureShift()

	idx := t.g.q*s + r
	if idx >= len(t.zetaShift) {
		return toComplex[C](1)
	}

	return t.zetaShift[idx]
}
