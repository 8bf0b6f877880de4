package dealias

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Convolve2D drives a 2-D hybrid dealiased convolution by nesting a 1-D
// y-direction Convolve1D inside an x-direction PadFFT pass, grounded on
// the original's HybridConvolution2. The x-direction PadFFT is built
// with its channel count C set to Ly (the y length), so one x-residue
// pass transforms every y-column at once; for each padded x position the
// y-direction convolution then runs in place over that column's Ly
// samples, exactly as subconvolution() calls convolvey->convolve0 once
// per x position with an offset of i*Ly into the shared buffer.
//
// The original takes Dx=1 for the x pass unconditionally (a comment
// notes "C=Ly <= my py, Dx=1"); this port keeps that restriction.
type Convolve2D[C algofft.Complex] struct {
	fftx      *PadFFT[C]
	convolvey *Convolve1D[C]

	a, b int
	sx   int
	ly   int

	fx    [][]C
	scale C
}

// NewConvolve2D builds a Convolve2D for an Lx-by-Ly input, padding the
// x dimension to gx and the y dimension to gy.fft's geometry. gx.C must
// equal gy.L (one x-residue pass batches every y column).
func NewConvolve2D[C algofft.Complex](gx, gy Geometry, mult Multiplier[C], a, b int, opts Options) (*Convolve2D[C], error) {
	if gx.C != gy.L {
		return nil, fmt.Errorf("%w: x geometry channel count (%d) must equal y length (%d)", ErrInvalidGeometry, gx.C, gy.L)
	}
	if gx.D != 1 {
		return nil, fmt.Errorf("%w: 2-D convolution requires Dx=1, got %d", ErrInvalidGeometry, gx.D)
	}

	fftx, err := NewPadFFT[C](gx)
	if err != nil {
		return nil, fmt.Errorf("dealias: convolve2d: x: %w", err)
	}

	convolvey, err := NewConvolve1D[C](gy, mult, a, b, opts)
	if err != nil {
		return nil, fmt.Errorf("dealias: convolve2d: y: %w", err)
	}

	k := a
	if b > k {
		k = b
	}

	fx := make([][]C, k)
	c := gx.WorksizeF()
	for i := 0; i < k; i++ {
		fx[i] = make([]C, c)
	}

	return &Convolve2D[C]{
		fftx:      fftx,
		convolvey: convolvey,
		a:         a,
		b:         b,
		sx:        gx.OutputLength(),
		ly:        gy.L,
		fx:        fx,
		scale:     toComplex[C](1 / float64(gx.Size()*gy.Size())),
	}, nil
}

// Convolve runs the full 2-D hybrid dealiased convolution: f holds A
// distinct Lx*Ly blocks (row-major, row stride Ly), h receives B such
// blocks. f and h may alias.
func (cv *Convolve2D[C]) Convolve(f, h [][]C) error {
	for rx := 0; rx < cv.fftx.Geometry().Q; rx++ {
		for a := 0; a < cv.a; a++ {
			if err := cv.fftx.forwardResidue(f[a], cv.fx[a], rx, nil); err != nil {
				return fmt.Errorf("dealias: convolve2d: x-forward rx=%d: %w", rx, err)
			}
		}

		for i := 0; i < cv.sx; i++ {
			offset := i * cv.ly
			if err := cv.convolvey.Convolve0(offsetRows(cv.fx, offset, cv.ly), offsetRows(cv.fx, offset, cv.ly), true); err != nil {
				return fmt.Errorf("dealias: convolve2d: y-subconvolution x=%d: %w", i, err)
			}
		}

		for b := 0; b < cv.b; b++ {
			if err := cv.fftx.backwardResidue(cv.fx[b], h[b], rx, nil); err != nil {
				return fmt.Errorf("dealias: convolve2d: x-backward rx=%d: %w", rx, err)
			}
		}
	}

	for b := 0; b < cv.b; b++ {
		hb := h[b]
		for i := 0; i < len(hb); i++ {
			hb[i] *= cv.scale
		}
	}

	return nil
}

// offsetRows returns a view into each buffer's [offset, offset+n) window,
// used to hand the shared x-transform buffers to the y-direction
// convolution one x position at a time.
func offsetRows[C algofft.Complex](bufs [][]C, offset, n int) [][]C {
	rows := make([][]C, len(bufs))
	for i, b := range bufs {
		rows[i] = b[offset : offset+n]
	}

	return rows
}
