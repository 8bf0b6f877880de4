// Command dealias-plan scans the (m, q, D) parameter space for a hybrid
// dealiased convolution of a given length and reports the fastest
// configuration found, in the style of the original FFTW++ convolve.h
// example harness (optimal.cc).
//
// Usage:
//
//	dealias-plan -L 1000 -M 2000
//
// Without -m/-D, the planner performs a full scan. With -m and/or -D set,
// it restricts the scan to that fixed subtransform size and/or decimation
// factor; with -explicit, it measures the classical explicit-padding
// configuration directly instead of scanning.
//
// Examples:
//
//	dealias-plan -L 1000 -M 2000
//	dealias-plan -L 1000 -M 2000 -C 4
//	dealias-plan -L 1000 -M 2000 -m 500
//	dealias-plan -L 1000 -M 2000 -explicit
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cwbudde/dealias/dsp/dealias"
)

func main() {
	l := flag.Int("L", 0, "input sequence length (required)")
	m := flag.Int("M", 0, "minimum padded length (default: L)")
	c := flag.Int("C", 1, "batch width (number of interleaved signals)")
	d := flag.Int("D", 0, "force a fixed decimation factor")
	mm := flag.Int("m", 0, "force a fixed subtransform size")
	inplace := flag.Bool("I", false, "force in-place operation")
	surplus := flag.Int("S", 2, "extra FFT-friendly sizes to scan past the natural stop point")
	threads := flag.Int("T", 1, "thread count stored in the planner options (not read by the SubFFT transforms)")
	explicit := flag.Bool("explicit", false, "measure the classical explicit-padding configuration instead of scanning")
	samples := flag.Int("samples", 64, "repetitions per timed candidate")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dealias-plan -L n [-M n] [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Scans for the fastest hybrid dealiased convolution geometry.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  dealias-plan -L 1000 -M 2000\n")
		fmt.Fprintf(os.Stderr, "  dealias-plan -L 1000 -M 2000 -m 500\n")
		fmt.Fprintf(os.Stderr, "  dealias-plan -L 1000 -M 2000 -explicit\n")
	}
	flag.Parse()

	if *l <= 0 {
		fmt.Fprintln(os.Stderr, "error: -L is required and must be positive")
		flag.Usage()
		os.Exit(1)
	}
	if *m <= 0 {
		*m = *l
	}

	opts := dealias.ApplyOptions(
		dealias.WithThreads(*threads),
		dealias.WithFixedM(*mm),
		dealias.WithFixedD(*d),
		dealias.WithSurplusFFTSizes(*surplus),
	)
	if *inplace {
		opts = dealias.ApplyOptions(append(optionsOf(opts), dealias.WithInplace(dealias.InplaceOn))...)
	}

	planner := dealias.NewPlanner[complex128](opts)
	timer := makeTimer(opts, *samples)

	cand, err := planner.Scan(*l, *m, *c, *explicit, *mm > 0, timer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("L=%d M=%d C=%d -> m=%d q=%d D=%d  time=%.9fs/call\n",
		*l, *m, *c, cand.M, cand.Q, cand.D, cand.Seconds)

	os.Exit(0)
}

// optionsOf re-exposes the Option setters needed to layer -I onto an
// already-built Options value, since Options itself carries no public
// constructor from its own fields.
func optionsOf(o dealias.Options) []dealias.Option {
	return []dealias.Option{
		dealias.WithThreads(o.Threads),
		dealias.WithFixedM(o.MOption),
		dealias.WithFixedD(o.DOption),
		dealias.WithSurplusFFTSizes(o.SurplusFFTSizes),
	}
}

// makeTimer builds the Scan/Check timer closure: construct a PadFFT for the
// candidate geometry, drive it with a ForwardBackward harness, and report
// the mean per-call time over samples repetitions.
func makeTimer(opts dealias.Options, samples int) func(g dealias.Geometry) (float64, error) {
	return func(g dealias.Geometry) (float64, error) {
		fft, err := dealias.NewPadFFT[complex128](g)
		if err != nil {
			return 0, err
		}

		fb := dealias.NewForwardBackward[complex128](fft, 2, 1)
		if err := fb.Init(g); err != nil {
			return 0, err
		}
		defer fb.Clear()

		total, err := fb.Time(samples)
		if err != nil {
			return 0, err
		}

		return total / float64(samples), nil
	}
}
