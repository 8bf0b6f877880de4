package dealias

import (
	"fmt"
	"time"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// residueEngine is the subset of PadFFT (and, via embedding, PadFFTCentered)
// that ForwardBackward needs to drive one residue pass at a time, mirroring
// the original's fftBase::Forward/Backward function-pointer pair.
type residueEngine[C algofft.Complex] interface {
	Geometry() Geometry
	forwardResidue(f, fOut []C, r0 int, w []C) error
	backwardResidue(fIn, f []C, r0 int, w []C) error
}

// ForwardBackward is the default Application: it times A forward passes
// followed by B backward passes per residue, the repeated-call harness
// the original's planner uses to measure a candidate geometry's
// throughput. Grounded on the original's class ForwardBackward.
type ForwardBackward[C algofft.Complex] struct {
	engine residueEngine[C]
	a, b   int

	f [][]C
	g [][]C // named g, not F, to avoid clashing with the Geometry field name
	h [][]C
	w []C

	q, d int
}

// NewForwardBackward returns a ForwardBackward harness over engine, timing
// a forward passes and b backward passes per call to Time.
func NewForwardBackward[C algofft.Complex](engine residueEngine[C], a, b int) *ForwardBackward[C] {
	if a <= 0 {
		a = 2
	}
	if b <= 0 {
		b = 1
	}

	return &ForwardBackward[C]{engine: engine, a: a, b: b}
}

// Init allocates the per-candidate scratch buffers, sized off g.
func (fb *ForwardBackward[C]) Init(g Geometry) error {
	if g != fb.engine.Geometry() {
		return fmt.Errorf("%w: ForwardBackward.Init geometry does not match the bound engine", ErrInvalidGeometry)
	}

	e := fb.a
	if fb.b > e {
		e = fb.b
	}

	lf := g.C * g.InputLength()
	lF := g.WorksizeF()

	fb.f = make([][]C, e)
	fb.g = make([][]C, e)
	fb.h = make([][]C, fb.b)

	for a := 0; a < e; a++ {
		if a < fb.a {
			fb.f[a] = make([]C, lf)
		}
		fb.g[a] = make([]C, lF)
	}
	for b := 0; b < fb.b; b++ {
		fb.h[b] = make([]C, lf)
	}

	fb.w = nil
	if ws := g.WorksizeW(); ws > 0 {
		fb.w = make([]C, ws)
	}
	fb.q, fb.d = g.Q, g.D

	return nil
}

// Clear drops the scratch buffers.
func (fb *ForwardBackward[C]) Clear() {
	fb.f, fb.g, fb.h, fb.w = nil, nil, nil, nil
}

// Time runs k repetitions of the forward/backward residue loop and
// returns the elapsed wall-clock time in seconds.
func (fb *ForwardBackward[C]) Time(k int) (float64, error) {
	start := time.Now()

	for i := 0; i < k; i++ {
		for r := 0; r < fb.q; r += fb.d {
			for a := 0; a < fb.a; a++ {
				if err := fb.engine.forwardResidue(fb.f[a], fb.g[a], r, fb.w); err != nil {
					return 0, err
				}
			}
			for b := 0; b < fb.b; b++ {
				if err := fb.engine.backwardResidue(fb.g[b], fb.h[b], r, fb.w); err != nil {
					return 0, err
				}
			}
		}
	}

	return time.Since(start).Seconds(), nil
}
