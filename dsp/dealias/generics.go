package dealias

import (
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// toComplex converts a float64 real value into the complex type C,
// mirroring the toComplex[F,C] helper the teacher's streaming overlap-add
// constructors use to lift real kernel samples into the working precision.
func toComplex[C algofft.Complex](re float64) C {
	var zero C

	switch any(zero).(type) {
	case complex64:
		return any(complex(float32(re), float32(0))).(C)
	default:
		return any(complex(re, 0.0)).(C)
	}
}

// expi returns e^(i*theta) at the working precision C.
func expi[C algofft.Complex](theta float64) C {
	s, c := math.Sincos(theta)

	var zero C

	switch any(zero).(type) {
	case complex64:
		return any(complex(float32(c), float32(s))).(C)
	default:
		return any(complex(c, s)).(C)
	}
}

// conjC returns the complex conjugate of z at the working precision C.
func conjC[C algofft.Complex](z C) C {
	switch v := any(z).(type) {
	case complex64:
		return any(complex(real(v), -imag(v))).(C)
	case complex128:
		return any(complex(real(v), -imag(v))).(C)
	default:
		return z
	}
}
