package dealias

// InplaceMode mirrors the original IOption tri-state: -1 defers to the
// engine's default policy, 0 forces out-of-place, 1 forces in-place.
type InplaceMode int

const (
	// InplaceAuto selects inplace = (C > 1), the default policy.
	InplaceAuto InplaceMode = iota - 1
	// InplaceOff forces out-of-place operation.
	InplaceOff
	// InplaceOn forces in-place operation.
	InplaceOn
)

// Options collects the knobs that the original C++ source carried as global
// mutable state (threads, mOption, DOption, IOption, surplusFFTsizes, A, B,
// C). Spec §9 calls this out explicitly: pass them as an explicit record
// instead of package-level globals.
type Options struct {
	// Threads is a batch-parallelism width. It is stored (and copied into
	// Convolve1D), but no transform in this package reads it: every SubFFT
	// batch runs on the calling goroutine.
	Threads int

	// MOption forces the planner to scan only m = MOption when nonzero.
	MOption int

	// DOption forces the planner to scan only D = DOption when nonzero.
	DOption int

	// Inplace overrides the default inplace policy.
	Inplace InplaceMode

	// SurplusFFTSizes is the number of extra FFT-friendly m candidates the
	// planner scans past the natural stopping point.
	SurplusFFTSizes int

	// Epsilon is a relative-standard-deviation convergence target
	// (stdev < Epsilon*mean). The Planner does not read it: it times each
	// candidate with a single call of the supplied timer.
	Epsilon float64

	// MinSampleWindowNanos is a minimum wall-clock duration, in nanoseconds,
	// for one timed sample batch, standing in for the legacy
	// CLOCKS_PER_SEC-tick heuristic (spec §9). The Planner does not read it.
	MinSampleWindowNanos int64
}

// Option mutates an Options record.
type Option func(*Options)

// DefaultOptions returns the engine's default tuning knobs.
func DefaultOptions() Options {
	return Options{
		Threads:              1,
		MOption:              0,
		DOption:              0,
		Inplace:              InplaceAuto,
		SurplusFFTSizes:      2,
		Epsilon:              0.01,
		MinSampleWindowNanos: 100_000, // 100us
	}
}

// WithThreads sets Options.Threads, which no transform reads.
func WithThreads(threads int) Option {
	return func(o *Options) {
		if threads > 0 {
			o.Threads = threads
		}
	}
}

// WithFixedM forces the planner to scan only a single subtransform size.
func WithFixedM(m int) Option {
	return func(o *Options) {
		if m > 0 {
			o.MOption = m
		}
	}
}

// WithFixedD forces the planner to scan only a single decimation factor.
func WithFixedD(d int) Option {
	return func(o *Options) {
		if d > 0 {
			o.DOption = d
		}
	}
}

// WithInplace overrides the default inplace policy.
func WithInplace(mode InplaceMode) Option {
	return func(o *Options) {
		o.Inplace = mode
	}
}

// WithSurplusFFTSizes sets how many extra FFT-friendly sizes the planner
// scans past the natural stopping point.
func WithSurplusFFTSizes(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.SurplusFFTSizes = n
		}
	}
}

// WithEpsilon sets Options.Epsilon, which the Planner does not read.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps > 0 {
			o.Epsilon = eps
		}
	}
}

// ApplyOptions applies zero or more Option values over DefaultOptions.
func ApplyOptions(opts ...Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// resolveInplace applies the IOption tri-state policy for a given batch width C.
func resolveInplace(mode InplaceMode, c int) bool {
	switch mode {
	case InplaceOff:
		return false
	case InplaceOn:
		return true
	default:
		return c > 1
	}
}
