package dealias

import "fmt"

// Geometry captures the derived shape of a padded FFT, per spec §3's data
// model: L, M, C are the caller-facing sizes; m, p, q, n, N, Q, D describe
// the internal decomposition; Inplace records whether forward/backward may
// alias their work buffer F.
type Geometry struct {
	L, M, C int
	m, q, D int

	p, n, N, Q int
	Inplace    bool

	// Explicit marks the degenerate q=1 "explicit padding" case (N=m, one pass).
	Explicit bool
}

// NewGeometry builds a Geometry for sequence length l, batch width c, and
// a fully specified (subM, q, d) configuration — typically the winning
// (M, Q, D) a [Planner.Scan] or [Planner.Check] returned as a Candidate —
// resolving the inplace policy from opts exactly as the planner resolves
// it for its own candidates. m is the caller's minimum desired padded
// length, distinct from subM, the chosen subtransform size.
func NewGeometry(l, m, c, subM, q, d int, opts Options) (Geometry, error) {
	return newGeometry(l, m, c, subM, q, d, resolveInplace(opts.Inplace, c))
}

// newGeometry derives the full Geometry from (L, M, C, m, q, D) and the
// resolved inplace policy, validating the invariants of spec §3.
func newGeometry(l, m, c, mm, q, d int, inplace bool) (Geometry, error) {
	if l < 1 {
		return Geometry{}, fmt.Errorf("%w: L=%d must be >= 1", ErrInvalidGeometry, l)
	}
	if m < l {
		return Geometry{}, fmt.Errorf("%w: M=%d must be >= L=%d", ErrInvalidGeometry, m, l)
	}
	if c < 1 {
		return Geometry{}, fmt.Errorf("%w: C=%d must be >= 1", ErrInvalidGeometry, c)
	}
	if mm < 1 || q < 1 {
		return Geometry{}, fmt.Errorf("%w: m=%d, q=%d must be >= 1", ErrInvalidGeometry, mm, q)
	}

	g := Geometry{L: l, M: m, C: c, m: mm, q: q}

	if q == 1 {
		if mm < l {
			return Geometry{}, fmt.Errorf("%w: explicit padding requires m=%d >= L=%d", ErrInvalidGeometry, mm, l)
		}

		g.Explicit = true
		g.p = 1
		g.n = 1
		g.N = mm
		g.Q = 1
		g.D = 1
		g.Inplace = inplace

		return g, nil
	}

	p := ceilQuotient(l, mm)
	if q%p != 0 {
		return Geometry{}, fmt.Errorf("%w: q=%d must be a multiple of p=ceil(L/m)=%d", ErrInvalidGeometry, q, p)
	}

	n := q / p
	g.p = p
	g.n = n
	g.N = mm * q

	if p > 1 {
		g.Q = n * p
	} else {
		g.Q = q
	}

	if g.N < m {
		return Geometry{}, fmt.Errorf("%w: N=%d must be >= M=%d", ErrInvalidGeometry, g.N, m)
	}

	if c > 1 {
		d = 1
	}
	if d < 1 || d > g.Q {
		return Geometry{}, fmt.Errorf("%w: D=%d must be in [1,%d]", ErrInvalidGeometry, d, g.Q)
	}

	g.D = d
	g.Inplace = inplace

	return g, nil
}

// InputLength is the FFT input length, max(L, m*p) (spec §4.7 "length()").
func (g Geometry) InputLength() int {
	if g.L > g.m*g.p {
		return g.L
	}

	return g.m * g.p
}

// OutputLength is the per-residue FFT output length (spec's "Length()").
func (g Geometry) OutputLength() int {
	if g.Explicit {
		return g.N
	}

	return g.m * g.p
}

// Size is the realised padded transform size N (spec's "size()").
func (g Geometry) Size() int {
	if g.Explicit {
		return g.N
	}

	return g.m * g.q
}

// WorksizeF is the number of complex elements one residue *pass* writes
// or reads for a single array: a single D-wide block. It sizes the
// per-pass scratch Convolve1D/Convolve2D/ForwardBackward reuse across
// every r in [0,Q), stepping by D, since they call forwardResidue/
// backwardResidue directly rather than PadFFT.Forward/Backward.
func (g Geometry) WorksizeF() int {
	if g.Explicit {
		return g.C * g.N
	}

	return g.C * g.m * g.p * g.D
}

// WorksizeFFull is the number of complex elements a full standalone
// PadFFT.Forward/Backward call writes or reads: one D-wide block per
// residue pass, back to back, for every r in [0,Q) — C*m*p*Q rather
// than WorksizeF's single-pass C*m*p*D. Callers that drive Forward/
// Backward directly (instead of looping forwardResidue/backwardResidue
// themselves) must size their buffers with this, not WorksizeF.
func (g Geometry) WorksizeFFull() int {
	if g.Explicit {
		return g.C * g.N
	}

	return g.C * g.m * g.p * g.Q
}

// TwoLoopEligible reports whether the two-loop optimisation of spec §4.5 may
// apply for a convolution with A inputs and B outputs: D < Q, 2D >= Q, A > B.
func (g Geometry) TwoLoopEligible(a, b int) bool {
	return g.D < g.Q && 2*g.D >= g.Q && a > b
}

// WorksizeV is the size of the auxiliary accumulation buffer V needed when
// the convolution driver writes in place and more than one residue pass runs.
func (g Geometry) WorksizeV(a, b int) int {
	if g.Explicit || g.D >= g.Q || g.TwoLoopEligible(a, b) {
		return 0
	}

	return g.InputLength()
}

// WorksizeW is the size of the work buffer W, zero when the transform is
// explicit or already operating in place.
func (g Geometry) WorksizeW() int {
	if g.Explicit || g.Inplace {
		return 0
	}

	return g.WorksizeF()
}

// NeedsPadding reports whether the zero-pad kernel must run between calls
// (spec §4.2 "Padding (Pad)"): only relevant out-of-place, when L < p*m.
func (g Geometry) NeedsPadding() bool {
	return !g.Inplace && g.L < g.p*g.m
}

// boundaryD0 returns the number of active residue blocks in the final pass
// starting at residue r0 (spec §4.2 "Boundary-residue handling").
func (g Geometry) boundaryD0(r0 int) int {
	d0 := g.Q - r0
	if d0 > g.D {
		return g.D
	}

	return d0
}
