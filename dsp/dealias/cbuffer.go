package dealias

import (
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// cbuffer wraps a complex work slice with reuse-friendly semantics, the
// complex sibling of the teacher's dsp/buffer.Buffer: DSP functions accept
// raw []C, and Samples bridges back to the slice.
type cbuffer[C algofft.Complex] struct {
	samples []C
}

// newCBuffer returns a zero-filled cbuffer of the given length.
func newCBuffer[C algofft.Complex](length int) *cbuffer[C] {
	if length < 0 {
		length = 0
	}

	return &cbuffer[C]{samples: make([]C, length)}
}

// Samples returns the underlying slice.
func (b *cbuffer[C]) Samples() []C { return b.samples }

// Len returns the current number of samples.
func (b *cbuffer[C]) Len() int { return len(b.samples) }

// Resize sets the length to n, reusing existing capacity when possible.
func (b *cbuffer[C]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
	} else {
		b.samples = make([]C, n)
	}
}

// Zero sets all samples to 0.
func (b *cbuffer[C]) Zero() {
	var zero C
	for i := range b.samples {
		b.samples[i] = zero
	}
}

// cbufferPool provides sync.Pool-based cbuffer reuse (each PadFFT holds
// one; no kernel draws from it), mirroring the teacher's dsp/buffer.Pool. Each
// instantiation (by C) gets its own underlying sync.Pool.
type cbufferPool[C algofft.Complex] struct {
	pool sync.Pool
}

// newCBufferPool returns a cbufferPool ready for use.
func newCBufferPool[C algofft.Complex]() *cbufferPool[C] {
	return &cbufferPool[C]{
		pool: sync.Pool{
			New: func() any {
				return &cbuffer[C]{}
			},
		},
	}
}

// Get returns a cbuffer with the requested length, zeroed. Callers must
// return it via Put when done.
func (p *cbufferPool[C]) Get(length int) *cbuffer[C] {
	b, _ := p.pool.Get().(*cbuffer[C])
	b.Resize(length)
	b.Zero()

	return b
}

// Put returns a cbuffer to the pool for reuse. The caller must not use the
// buffer after calling Put.
func (p *cbufferPool[C]) Put(b *cbuffer[C]) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
