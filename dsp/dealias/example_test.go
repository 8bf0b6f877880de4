package dealias_test

import (
	"fmt"

	"github.com/cwbudde/dealias/dsp/dealias"
)

// ExampleNewConvolve1D convolves two length-4 signals, each a scaled
// impulse at the origin, through the degenerate explicit (q=1) padded
// kernel. Convolving two origin impulses produces a single origin
// impulse scaled by the product of their values, so the result is exact.
func ExampleNewConvolve1D() {
	const l = 4

	g, err := dealias.NewGeometry(l, l, 1, l, 1, 1, dealias.DefaultOptions())
	if err != nil {
		fmt.Println("geometry error:", err)
		return
	}

	cv, err := dealias.NewConvolve1D[complex128](g, dealias.MultBinary[complex128], 2, 1, dealias.DefaultOptions())
	if err != nil {
		fmt.Println("convolve1d error:", err)
		return
	}

	f0 := []complex128{3, 0, 0, 0}
	f1 := []complex128{5, 0, 0, 0}
	h0 := make([]complex128, l)

	if err := cv.Convolve([][]complex128{f0, f1}, [][]complex128{h0}, false); err != nil {
		fmt.Println("convolve error:", err)
		return
	}

	fmt.Printf("h[0]=%.0f h[1]=%.0f h[2]=%.0f h[3]=%.0f\n",
		real(h0[0]), real(h0[1]), real(h0[2]), real(h0[3]))

	// Output:
	// h[0]=15 h[1]=0 h[2]=0 h[3]=0
}

// ExamplePlanner_Scan scans the explicit (q=1) branch for a small geometry,
// the single-candidate path Scan takes when explicit is true, and reports
// the winning (m, q, D) triple.
func ExamplePlanner_Scan() {
	p := dealias.NewPlanner[complex128](dealias.DefaultOptions())

	timer := func(dealias.Geometry) (float64, error) { return 0.001, nil }

	cand, err := p.Scan(5, 8, 1, true, false, timer)
	if err != nil {
		fmt.Println("scan error:", err)
		return
	}

	fmt.Printf("M=%d Q=%d D=%d\n", cand.M, cand.Q, cand.D)

	// Output:
	// M=8 Q=1 D=1
}
