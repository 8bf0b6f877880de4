package dealias

import (
	"fmt"
	"math"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Candidate is one scanned (m, q, D) configuration and its measured mean
// time, the Go counterpart of the original's OptBase (m, q, D, T fields).
type Candidate struct {
	M, Q, D int
	Seconds float64
}

// plannerKey identifies a memoized scan result.
type plannerKey struct {
	l, m, c int
	fixed   bool
}

// Planner scans candidate (m, q, D) triples for a convolution of length L
// padded to at least M (or exactly M if fixed), timing each with one call
// of a caller-supplied timeFunc, and picks the fastest. Grounded on the
// original's OptBase::scan/check, whose bodies are not part of the
// retrieved source; the scan strategy below (walk FFT-friendly m, derive
// p/q/D, time each candidate once) is this port's own reconstruction from
// spec §4.1 and OptBase's public contract. The planner runs no repeated or
// adaptive timing of its own: any repetition happens inside the timer, and
// Options.Epsilon and Options.MinSampleWindowNanos are not read.
type Planner[C algofft.Complex] struct {
	opts Options

	mu    sync.Mutex
	cache map[plannerKey]Candidate
}

// NewPlanner returns a Planner using the given options.
func NewPlanner[C algofft.Complex](opts Options) *Planner[C] {
	return &Planner[C]{opts: opts, cache: make(map[plannerKey]Candidate)}
}

// timeFunc measures one geometry's mean per-call time; production callers
// pass a closure that builds a ForwardBackward over the candidate
// geometry's PadFFT and calls Time with a fixed repetition count. The
// planner calls it once per candidate.
type timeFunc func(g Geometry) (seconds float64, err error)

// Scan walks FFT-friendly m values padding L to at least M (or exactly M
// if fixed), deriving (q, D) candidates for each, times them via time,
// and returns the fastest. c is the batch width C used only to decide the
// default inplace policy and to force D=1 when c>1.
func (p *Planner[C]) Scan(l, m int, c int, explicit, fixed bool, timer timeFunc) (Candidate, error) {
	key := plannerKey{l: l, m: m, c: c, fixed: fixed}

	p.mu.Lock()
	if cached, ok := p.cache[key]; ok {
		p.mu.Unlock()

		return cached, nil
	}
	p.mu.Unlock()

	if explicit {
		target := l
		if m > target {
			target = m
		}

		g, err := newGeometry(l, m, c, NextFFTSize(target), 1, 1, resolveInplace(p.opts.Inplace, c))
		if err != nil {
			return Candidate{}, err
		}

		seconds, err := timer(g)
		if err != nil {
			return Candidate{}, err
		}

		best := Candidate{M: g.Size(), Q: 1, D: 1, Seconds: seconds}
		p.remember(key, best)

		return best, nil
	}

	best := Candidate{Seconds: math.Inf(1)}
	found := false

	for _, mm := range p.candidateSizes(l, m, fixed) {
		blocks := ceilQuotient(l, mm)
		for _, q := range divisorMultiplesOf(blocks, mm, m, fixed) {
			for _, d := range candidateDs(q, c, blocks, p.opts.DOption) {
				g, err := newGeometry(l, m, c, mm, q, d, resolveInplace(p.opts.Inplace, c))
				if err != nil {
					continue
				}

				seconds, err := timer(g)
				if err != nil {
					continue
				}

				found = true
				if seconds < best.Seconds {
					best = Candidate{M: mm, Q: q, D: g.D, Seconds: seconds}
				}
			}
		}
	}

	if !found {
		return Candidate{}, ErrNoCandidate
	}

	p.remember(key, best)

	return best, nil
}

func (p *Planner[C]) remember(key plannerKey, c Candidate) {
	p.mu.Lock()
	p.cache[key] = c
	p.mu.Unlock()
}

// candidateSizes returns the FFT-friendly m values the scan should try:
// just [m] if fixed or MOption pins it, else every FFT-friendly size from
// ceil(L/4) (allowing up to 4 blocks, i.e. p up to 4, per the original's
// "Only check m <= M/2 and m=M" scan-range note) up through M plus
// SurplusFFTSizes beyond it. Starting below L, not at L, matters: every
// mm >= L forces p=ceil(L/mm)=1, so a start of L (a prior revision's bug)
// made the p>=2 hybrid kernels unreachable through the auto-tuner.
func (p *Planner[C]) candidateSizes(l, m int, fixed bool) []int {
	if p.opts.MOption > 0 {
		return []int{p.opts.MOption}
	}
	if fixed {
		return []int{m}
	}

	start := ceilQuotient(l, 4)
	if start < 1 {
		start = 1
	}

	span := m - start + 1
	if span < 1 {
		span = 1
	}

	return fftFriendlySizes(start, span+p.opts.SurplusFFTSizes)
}

// divisorMultiplesOf returns candidate q values for subtransform size mm:
// q must be a multiple of p=ceil(L/mm), and mm*q must be in [M, a modest
// ceiling] so the padded size doesn't run away.
func divisorMultiplesOf(pBlocks, mm, m int, fixed bool) []int {
	if fixed {
		if mm == 0 || m%mm != 0 {
			return nil
		}

		return []int{m / mm}
	}

	var qs []int
	for k := 1; k <= 4; k++ {
		q := pBlocks * k
		if mm*q >= m {
			qs = append(qs, q)
		}
	}

	if len(qs) == 0 {
		qs = append(qs, pBlocks)
	}

	return qs
}

// candidateDs returns the D values worth timing for a given q: D=1 (no
// decimation), D=Q (single pass), and Q/2 as a representative partial
// decimation, deduplicated and kept within [1, Q] (Q/2 need not divide Q).
// dOption, when nonzero, pins the scan to that single D (the original's
// DOption global) in place of the c>1 branch below that returns only D=1;
// newGeometry still sets D=1 on the geometry when c>1, and Scan reports
// the geometry's D.
func candidateDs(q, c, pBlocks, dOption int) []int {
	Q := q
	if pBlocks > 1 {
		Q = (q / pBlocks) * pBlocks
	}
	if Q == 0 {
		Q = 1
	}

	if dOption > 0 {
		if dOption > Q {
			return nil
		}

		return []int{dOption}
	}

	if c > 1 {
		return []int{1}
	}

	seen := map[int]bool{}
	var ds []int

	add := func(d int) {
		if d >= 1 && d <= Q && !seen[d] {
			seen[d] = true
			ds = append(ds, d)
		}
	}

	add(1)
	add(Q)
	add(Q / 2)

	return ds
}

// Check times a single, fully specified geometry and records it as a
// Candidate, mirroring OptBase::check's role of evaluating one (m,q,D)
// triple rather than scanning a range.
func (p *Planner[C]) Check(g Geometry, timer timeFunc) (Candidate, error) {
	seconds, err := timer(g)
	if err != nil {
		return Candidate{}, fmt.Errorf("dealias: check geometry: %w", err)
	}

	return Candidate{M: g.m, Q: g.q, D: g.D, Seconds: seconds}, nil
}
