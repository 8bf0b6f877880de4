package dealias

// fftRadices are the prime factors the planner considers "FFT-friendly",
// matching spec §4.1: "the next integer >= m whose prime factorisation uses
// only {2,3,5,7}". NextFFTSize and nextfftsize are pure functions with no
// shared state, so they are safe to call concurrently (spec §9).
var fftRadices = [...]int{2, 3, 5, 7}

// IsFFTFriendly reports whether n factors completely into the radices
// {2,3,5,7}. n <= 1 is trivially friendly (size-1 "transform" is a copy).
func IsFFTFriendly(n int) bool {
	if n <= 1 {
		return true
	}

	for _, r := range fftRadices {
		for n%r == 0 {
			n /= r
		}
	}

	return n == 1
}

// NextFFTSize returns the smallest FFT-friendly size >= n.
// It is the exported counterpart of the original's nextfftsize helper.
func NextFFTSize(n int) int {
	if n <= 1 {
		return 1
	}

	for candidate := n; ; candidate++ {
		if IsFFTFriendly(candidate) {
			return candidate
		}
	}
}

// fftFriendlySizes returns the first count FFT-friendly sizes that are >= start,
// used by the planner to walk candidate m values including the configured
// surplus beyond the natural stopping point.
func fftFriendlySizes(start, count int) []int {
	if count <= 0 {
		return nil
	}

	sizes := make([]int, 0, count)
	candidate := start

	for len(sizes) < count {
		candidate = NextFFTSize(candidate)
		sizes = append(sizes, candidate)
		candidate++
	}

	return sizes
}

// ceilQuotient returns ceil(a/b) for positive a, b — the original's
// utils::ceilquotient, used throughout to compute p = ceil(L/m).
func ceilQuotient(a, b int) int {
	if b <= 0 {
		return 0
	}

	return (a + b - 1) / b
}
