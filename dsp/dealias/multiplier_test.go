package dealias

import "testing"

func TestMultBinaryComplex128(t *testing.T) {
	a := []complex128{1 + 2i, 3 - 1i, 0 + 0i}
	b := []complex128{2 + 0i, -1 + 1i, 5 + 5i}

	want := []complex128{
		(1 + 2i) * (2 + 0i),
		(3 - 1i) * (-1 + 1i),
		(0 + 0i) * (5 + 5i),
	}

	f := [][]complex128{a, b}
	MultBinary(f, len(a))

	for i := range want {
		if a[i] != want[i] {
			t.Errorf("a[%d] = %v, want %v", i, a[i], want[i])
		}
	}
}

func TestMultBinaryReImMatchesMultBinary(t *testing.T) {
	a1 := []complex128{1 + 2i, 3 - 1i, 0.5 + 0.25i, -4 + 7i}
	b1 := []complex128{2 + 0i, -1 + 1i, 5 + 5i, 3 - 2i}

	a2 := make([]complex128, len(a1))
	b2 := make([]complex128, len(b1))
	copy(a2, a1)
	copy(b2, b1)

	MultBinary([][]complex128{a1, b1}, len(a1))
	MultBinaryReIm([][]complex128{a2, b2}, len(a2))

	for i := range a1 {
		dr := real(a1[i]) - real(a2[i])
		di := imag(a1[i]) - imag(a2[i])
		if dr > 1e-9 || dr < -1e-9 || di > 1e-9 || di < -1e-9 {
			t.Errorf("index %d: MultBinary=%v MultBinaryReIm=%v", i, a1[i], a2[i])
		}
	}
}

func TestMultBinaryReImFallsBackForComplex64(t *testing.T) {
	a := []complex64{1 + 2i, 3 - 1i}
	b := []complex64{2 + 0i, -1 + 1i}

	want := []complex64{
		(1 + 2i) * (2 + 0i),
		(3 - 1i) * (-1 + 1i),
	}

	MultBinaryReIm([][]complex64{a, b}, len(a))

	for i := range want {
		if a[i] != want[i] {
			t.Errorf("a[%d] = %v, want %v", i, a[i], want[i])
		}
	}
}
