// Package subfft is the batched 1-D FFT collaborator consumed by the hybrid
// dealiased convolution engine. It is a thin wrapper over
// github.com/MeKo-Christian/algo-fft's Plan[T], adding the batch/stride/dist
// looping that the padded FFT kernels need but that Plan[T] itself does not
// provide. Nothing here implements an FFT; it only dispatches to algofft.
package subfft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Engine is a batched complex-to-complex 1-D FFT of a fixed length n,
// used for the fixed-size subtransforms (fftm, fftp, fftm2 in the
// original hybrid dealiasing nomenclature) that the padded FFT kernels
// dispatch to once per residue pass.
type Engine[C algofft.Complex] struct {
	plan *algofft.Plan[C]
	n    int
}

// New creates a batched engine for transforms of length n.
// n need not be a power of 2; algofft.NewPlanT picks an appropriate
// strategy (including Bluestein) for arbitrary composite lengths.
func New[C algofft.Complex](n int) (*Engine[C], error) {
	if n < 1 {
		return nil, fmt.Errorf("subfft: invalid length %d", n)
	}

	plan, err := algofft.NewPlanT[C](n)
	if err != nil {
		return nil, fmt.Errorf("subfft: plan(%d): %w", n, err)
	}

	return &Engine[C]{plan: plan, n: n}, nil
}

// Len returns the fixed transform length.
func (e *Engine[C]) Len() int {
	return e.n
}

// Forward runs a single length-n forward transform.
func (e *Engine[C]) Forward(dst, src []C) error {
	return e.plan.Forward(dst, src)
}

// Inverse runs a single length-n inverse transform. algofft's Plan.Inverse
// is itself normalised (Inverse(Forward(x)) == x); the hybrid dealiasing
// scale bookkeeping throughout this package follows the FFTW convention
// instead, where both directions are unnormalised and the convolution
// driver applies a single explicit 1/N at the end (Convolve1D.Convolve,
// Convolve2D.Convolve). Inverse restores that convention by undoing
// algofft's internal 1/n.
func (e *Engine[C]) Inverse(dst, src []C) error {
	if err := e.plan.Inverse(dst, src); err != nil {
		return err
	}

	scaleN(dst, e.n)

	return nil
}

// scaleN multiplies dst[:n] by n in place, undoing algofft's normalised
// inverse so callers see the raw (unnormalised) inverse DFT.
func scaleN[C algofft.Complex](dst []C, n int) {
	var zero C

	switch any(zero).(type) {
	case complex64:
		factor := any(complex(float32(n), float32(0))).(C)
		for i := 0; i < n; i++ {
			dst[i] *= factor
		}
	default:
		factor := any(complex(float64(n), 0.0)).(C)
		for i := 0; i < n; i++ {
			dst[i] *= factor
		}
	}
}

// ForwardBatch runs batch independent forward transforms, each of length n,
// with stride between consecutive elements of one transform and dist between
// the start of consecutive transforms. This is the Go analogue of the
// SubFFT driver's "(length, sign, batch, stride, dist, ...)" contract in
// spec §6.
func (e *Engine[C]) ForwardBatch(dst, src []C, batch, stride, dist int) error {
	return e.transformBatch(dst, src, batch, stride, dist, false)
}

// InverseBatch is the batched counterpart of ForwardBatch.
func (e *Engine[C]) InverseBatch(dst, src []C, batch, stride, dist int) error {
	return e.transformBatch(dst, src, batch, stride, dist, true)
}

func (e *Engine[C]) transformBatch(dst, src []C, batch, stride, dist int, inverse bool) error {
	for b := 0; b < batch; b++ {
		off := b * dist
		d := dst[off:]
		s := src[off:]

		var err error
		if stride == 1 {
			if inverse {
				err = e.plan.Inverse(d[:e.n], s[:e.n])
			} else {
				err = e.plan.Forward(d[:e.n], s[:e.n])
			}
		} else {
			err = e.plan.TransformStrided(d, s, stride, inverse)
		}

		if err != nil {
			return fmt.Errorf("subfft: batch %d: %w", b, err)
		}

		if inverse {
			scaleStrided(d, e.n, stride)
		}
	}

	return nil
}

// scaleStrided multiplies the n strided elements of d (stride apart,
// or contiguous when stride is 1) by n, the same algofft-normalisation
// compensation Inverse applies to a single unstrided transform.
func scaleStrided[C algofft.Complex](d []C, n, stride int) {
	if stride <= 1 {
		scaleN(d, n)
		return
	}

	var zero C

	switch any(zero).(type) {
	case complex64:
		factor := any(complex(float32(n), float32(0))).(C)
		for i, idx := 0, 0; i < n; i, idx = i+1, idx+stride {
			d[idx] *= factor
		}
	default:
		factor := any(complex(float64(n), 0.0)).(C)
		for i, idx := 0, 0; i < n; i, idx = i+1, idx+stride {
			d[idx] *= factor
		}
	}
}
