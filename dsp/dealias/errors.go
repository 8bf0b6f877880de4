package dealias

import "errors"

// Sentinel errors returned by the hybrid dealiased convolution engine.
var (
	// ErrInvalidGeometry is returned when L, M, C, m, q, or D violate the
	// invariants of spec §3 (e.g. M < L, or D does not divide a residue pass).
	ErrInvalidGeometry = errors.New("dealias: invalid geometry")

	// ErrUnsupportedConfiguration is returned at construction time for
	// configurations the engine cannot realize, such as a Hermitian
	// transform with p >= 3.
	ErrUnsupportedConfiguration = errors.New("dealias: unsupported configuration")

	// ErrEmptyInput is returned when a required input array is empty.
	ErrEmptyInput = errors.New("dealias: empty input")

	// ErrLengthMismatch is returned when a caller-supplied buffer does not
	// match the length the geometry requires.
	ErrLengthMismatch = errors.New("dealias: buffer length mismatch")

	// ErrNoCandidate is returned by the planner when no (m, q, D) candidate
	// satisfies the requested geometry.
	ErrNoCandidate = errors.New("dealias: planner found no viable candidate")
)
