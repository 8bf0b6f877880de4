package dealias

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/dealias/dsp/buffer"
	"github.com/cwbudde/dealias/dsp/core"
	"github.com/cwbudde/dealias/internal/subfft"
)

// PadFFTHermitian computes a padded FFT of a real-valued (Hermitian
// symmetric) input, storing only the non-redundant half of each
// subtransform's spectrum (e+1 = m/2+1 complex bins per m-block),
// grounded on the original's fftPadHermitian. The original only
// implements q==1 (explicit) or p==2 ("Unimplemented!" for anything
// else, see fftPadHermitian::init); this port keeps that restriction
// and reports ErrUnsupportedConfiguration otherwise.
//
// For q==1 (explicit padding) this wraps the SubFFT driver's real<->
// complex engine directly, matching forwardExplicit/backwardExplicit
// exactly. For q>1 (p==2, residue decimation) the original specializes
// a packed two-real-per-complex-FFT trick inside its crfftm/rcfftm
// plans; this port instead delegates to the already-verified complex
// PadFFT machinery over a zero-imaginary-part view of the real input
// and compacts the result to its non-redundant half via conjugate
// symmetry. That trades the original's real-FFT speed constant for a
// single, auditable code path — see DESIGN.md.
type PadFFTHermitian[F algofft.Float, C algofft.Complex] struct {
	g Geometry
	e int

	real   *subfft.RealEngine64
	real32 *subfft.RealEngine32
	pool   *buffer.Pool // float64 real-domain scratch reuse for the explicit path

	complexFFT *PadFFT[C]
}

// NewPadFFTHermitian constructs a Hermitian padded FFT. m must be even
// (so e=m/2 is an integer) and, for q==1, a power of two (the SubFFT
// driver's real engine requirement).
func NewPadFFTHermitian[F algofft.Float, C algofft.Complex](g Geometry) (*PadFFTHermitian[F, C], error) {
	if !g.Explicit && g.p != 2 {
		return nil, fmt.Errorf("%w: Hermitian padding only supports q==1 (explicit) or p==2, got p=%d", ErrUnsupportedConfiguration, g.p)
	}
	if g.m%2 != 0 {
		return nil, fmt.Errorf("%w: Hermitian padding requires even m, got m=%d", ErrInvalidGeometry, g.m)
	}

	h := &PadFFTHermitian[F, C]{g: g, e: g.m / 2}

	if g.Explicit {
		var zero F
		switch any(zero).(type) {
		case float32:
			eng, err := subfft.NewRealEngine32(g.m)
			if err != nil {
				return nil, fmt.Errorf("dealias: hermitian real engine: %w", err)
			}

			h.real32 = eng
		default:
			eng, err := subfft.NewRealEngine64(g.m)
			if err != nil {
				return nil, fmt.Errorf("dealias: hermitian real engine: %w", err)
			}

			h.real = eng
			h.pool = buffer.NewPool()
		}

		return h, nil
	}

	cfft, err := NewPadFFT[C](g)
	if err != nil {
		return nil, fmt.Errorf("dealias: hermitian: %w", err)
	}

	h.complexFFT = cfft

	return h, nil
}

// Worksize is the number of complex elements the packed half-spectrum
// occupies: C*(e+1) per residue, for every residue in [0,Q) (Q=1 in the
// explicit case). Forward's fOut and Backward's fIn must both be sized
// with this for the non-explicit (p==2) path, where forwardResidue/
// backwardResidue address every residue's block directly.
func (h *PadFFTHermitian[F, C]) Worksize() int {
	if h.g.Explicit {
		return h.g.C * (h.e + 1)
	}

	return h.g.C * (h.e + 1) * h.g.Q
}

// Forward computes the Hermitian padded forward transform: f holds L
// real samples (padded to the geometry's working length by the caller),
// fOut receives the packed half-spectrum, e+1 complex values per m-block
// per active residue (see Worksize for the required buffer length).
func (h *PadFFTHermitian[F, C]) Forward(f []F, fOut []C) error {
	if h.g.Explicit {
		return h.forwardExplicit(f, fOut)
	}

	return h.forwardResidue(f, fOut)
}

// Backward computes the Hermitian padded backward transform: fIn holds
// the packed half-spectrum (see Worksize for the required buffer
// length), f receives the reconstructed real samples.
func (h *PadFFTHermitian[F, C]) Backward(fIn []C, f []F) error {
	if h.g.Explicit {
		return h.backwardExplicit(fIn, f)
	}

	return h.backwardResidue(fIn, f)
}

// padReal32 returns a length-n real slice with src copied into its head and
// the remainder zeroed, the explicit path's zero-pad step (spec §4.2
// "Padding") for the case where the caller supplies only the L live
// samples. dsp/buffer's Pool is float64-only, so the float32 path pads
// with a plain slice via dsp/core's length helpers instead.
func padReal32(src []float32, n int) []float32 {
	if len(src) >= n {
		return src[:n]
	}

	padded := make([]float32, n)
	copy(padded, src)

	return padded
}

func (h *PadFFTHermitian[F, C]) forwardExplicit(f []F, fOut []C) error {
	if h.real32 != nil {
		src, ok := any(f).([]float32)
		if !ok {
			return fmt.Errorf("%w: expected []float32 input", ErrLengthMismatch)
		}

		dst, ok := any(fOut).([]complex64)
		if !ok {
			return fmt.Errorf("%w: expected []complex64 output", ErrLengthMismatch)
		}

		h.real32.Forward(dst, padReal32(src, h.real32.Len()))

		return nil
	}

	src, ok := any(f).([]float64)
	if !ok {
		return fmt.Errorf("%w: expected []float64 input", ErrLengthMismatch)
	}

	dst, ok := any(fOut).([]complex128)
	if !ok {
		return fmt.Errorf("%w: expected []complex128 output", ErrLengthMismatch)
	}

	n := h.real.Len()
	if len(src) >= n {
		h.real.Forward(dst, src[:n])

		return nil
	}

	padded := h.pool.Get(n)
	defer h.pool.Put(padded)

	core.CopyInto(padded.Samples(), src)
	h.real.Forward(dst, padded.Samples())

	return nil
}

func (h *PadFFTHermitian[F, C]) backwardExplicit(fIn []C, f []F) error {
	if h.real32 != nil {
		src, ok := any(fIn).([]complex64)
		if !ok {
			return fmt.Errorf("%w: expected []complex64 input", ErrLengthMismatch)
		}

		dst, ok := any(f).([]float32)
		if !ok {
			return fmt.Errorf("%w: expected []float32 output", ErrLengthMismatch)
		}

		n := h.real32.Len()
		if len(dst) >= n {
			h.real32.Inverse(dst[:n], src)

			return nil
		}

		full := make([]float32, n)
		h.real32.Inverse(full, src)
		copy(dst, full[:len(dst)])

		return nil
	}

	src, ok := any(fIn).([]complex128)
	if !ok {
		return fmt.Errorf("%w: expected []complex128 input", ErrLengthMismatch)
	}

	dst, ok := any(f).([]float64)
	if !ok {
		return fmt.Errorf("%w: expected []float64 output", ErrLengthMismatch)
	}

	n := h.real.Len()
	if len(dst) >= n {
		h.real.Inverse(dst[:n], src)

		return nil
	}

	full := h.pool.Get(n)
	defer h.pool.Put(full)

	h.real.Inverse(full.Samples(), src)
	core.CopyInto(dst, full.Samples())

	return nil
}

// forwardResidue lifts the real input to complex128/64, runs it through
// the verified complex PadFFT p==2 kernel, and compacts each m-block's
// output to its non-redundant half [0,e].
func (h *PadFFTHermitian[F, C]) forwardResidue(f []F, fOut []C) error {
	g := h.g
	full := make([]C, g.C*g.m*g.p)
	for i, v := range f {
		full[i] = toComplex[C](float64(v))
	}

	spectrum := make([]C, g.WorksizeFFull())
	if err := h.complexFFT.Forward(full, spectrum); err != nil {
		return err
	}

	cm := g.C * g.m
	e1 := h.e + 1
	block := cm * g.p
	for r := 0; r < g.Q; r++ {
		src := spectrum[block*r:]
		dst := fOut[g.C*e1*r:]
		for s := 0; s <= h.e; s++ {
			base := g.C * s
			dstBase := g.C * s
			for c := 0; c < g.C; c++ {
				dst[dstBase+c] = src[base+c]
			}
		}
	}

	return nil
}

// backwardResidue reconstructs each m-block's full conjugate-symmetric
// spectrum from its non-redundant half before delegating to the complex
// PadFFT kernel, then takes the real part of the result.
func (h *PadFFTHermitian[F, C]) backwardResidue(fIn []C, f []F) error {
	g := h.g
	cm := g.C * g.m
	e1 := h.e + 1
	block := cm * g.p
	full := make([]C, g.WorksizeFFull())

	for r := 0; r < g.Q; r++ {
		src := fIn[g.C*e1*r:]
		dst := full[block*r:]
		for s := 0; s <= h.e; s++ {
			base := g.C * s
			for c := 0; c < g.C; c++ {
				dst[base+c] = src[base+c]
			}
		}
		for s := h.e + 1; s < g.m; s++ {
			base := g.C * s
			mirrorBase := g.C * (g.m - s)
			for c := 0; c < g.C; c++ {
				dst[base+c] = conjC[C](dst[mirrorBase+c])
			}
		}
	}

	out := make([]C, g.C*g.m*g.p)
	if err := h.complexFFT.Backward(full, out); err != nil {
		return err
	}

	for i := range f {
		switch v := any(out[i]).(type) {
		case complex64:
			f[i] = any(float32(real(v))).(F)
		case complex128:
			f[i] = any(float64(real(v))).(F)
		}
	}

	return nil
}
