package dealias

import "testing"

func TestNewGeometryExplicit(t *testing.T) {
	g, err := newGeometry(10, 16, 1, 16, 1, 1, false)
	if err != nil {
		t.Fatalf("newGeometry: %v", err)
	}

	if !g.Explicit {
		t.Fatal("expected Explicit geometry for q=1")
	}
	if got := g.Size(); got != 16 {
		t.Errorf("Size() = %d, want 16", got)
	}
	if got := g.OutputLength(); got != 16 {
		t.Errorf("OutputLength() = %d, want 16", got)
	}
	if got := g.WorksizeF(); got != 16 {
		t.Errorf("WorksizeF() = %d, want 16", got)
	}
}

func TestNewGeometryPadded(t *testing.T) {
	// L=10, m=4 => p=ceil(10/4)=3, q=6 (multiple of p), n=2, N=24.
	g, err := newGeometry(10, 16, 1, 4, 6, 1, false)
	if err != nil {
		t.Fatalf("newGeometry: %v", err)
	}

	if g.Explicit {
		t.Fatal("did not expect Explicit geometry for q>1")
	}
	if g.p != 3 {
		t.Errorf("p = %d, want 3", g.p)
	}
	if g.n != 2 {
		t.Errorf("n = %d, want 2", g.n)
	}
	if g.N != 24 {
		t.Errorf("N = %d, want 24", g.N)
	}
	if g.Q != 6 {
		t.Errorf("Q = %d, want 6", g.Q)
	}
	if got := g.InputLength(); got != 12 {
		t.Errorf("InputLength() = %d, want 12", got)
	}
	if got := g.OutputLength(); got != 12 {
		t.Errorf("OutputLength() = %d, want 12", got)
	}
}

func TestNewGeometryRejectsBadInputs(t *testing.T) {
	tests := []struct {
		name                   string
		l, m, c, mm, q, d int
	}{
		{"zero L", 0, 16, 1, 16, 1, 1},
		{"M less than L", 10, 5, 1, 16, 1, 1},
		{"zero C", 10, 16, 0, 16, 1, 1},
		{"zero m", 10, 16, 1, 0, 1, 1},
		{"q not multiple of p", 10, 16, 1, 4, 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := newGeometry(tt.l, tt.m, tt.c, tt.mm, tt.q, tt.d, false); err == nil {
				t.Error("expected an error, got nil")
			}
		})
	}
}

func TestGeometryTwoLoopEligible(t *testing.T) {
	g, err := newGeometry(10, 16, 1, 5, 8, 2, false)
	if err != nil {
		t.Fatalf("newGeometry: %v", err)
	}

	// Q=8, D=2: D<Q, 2D=4 < Q=8 so not eligible regardless of A>B.
	if g.TwoLoopEligible(3, 1) {
		t.Error("expected TwoLoopEligible=false when 2D < Q")
	}

	g2, err := newGeometry(10, 16, 1, 5, 8, 4, false)
	if err != nil {
		t.Fatalf("newGeometry: %v", err)
	}

	// Q=8, D=4: D<Q, 2D=8>=Q, A>B => eligible.
	if !g2.TwoLoopEligible(3, 1) {
		t.Error("expected TwoLoopEligible=true when D<Q, 2D>=Q, A>B")
	}
	if g2.TwoLoopEligible(1, 3) {
		t.Error("expected TwoLoopEligible=false when A<=B")
	}
}

func TestGeometryWorksizeWZeroWhenInplaceOrExplicit(t *testing.T) {
	explicit, err := newGeometry(10, 16, 1, 16, 1, 1, false)
	if err != nil {
		t.Fatalf("newGeometry: %v", err)
	}
	if got := explicit.WorksizeW(); got != 0 {
		t.Errorf("WorksizeW() for explicit = %d, want 0", got)
	}

	inplace, err := newGeometry(10, 16, 1, 5, 8, 2, true)
	if err != nil {
		t.Fatalf("newGeometry: %v", err)
	}
	if got := inplace.WorksizeW(); got != 0 {
		t.Errorf("WorksizeW() for inplace = %d, want 0", got)
	}

	outOfPlace, err := newGeometry(10, 16, 1, 5, 8, 2, false)
	if err != nil {
		t.Fatalf("newGeometry: %v", err)
	}
	if got := outOfPlace.WorksizeW(); got != outOfPlace.WorksizeF() {
		t.Errorf("WorksizeW() = %d, want %d", got, outOfPlace.WorksizeF())
	}
}

func TestGeometryBoundaryD0(t *testing.T) {
	g, err := newGeometry(10, 16, 1, 5, 8, 3, false)
	if err != nil {
		t.Fatalf("newGeometry: %v", err)
	}

	if got := g.boundaryD0(0); got != 3 {
		t.Errorf("boundaryD0(0) = %d, want 3", got)
	}
	// Q=8, last pass starts at r0=6, remaining = 2 < D=3.
	if got := g.boundaryD0(6); got != 2 {
		t.Errorf("boundaryD0(6) = %d, want 2", got)
	}
}

func TestGeometryNeedsPadding(t *testing.T) {
	// L < p*m and out-of-place => needs padding.
	g, err := newGeometry(9, 16, 1, 5, 8, 1, false)
	if err != nil {
		t.Fatalf("newGeometry: %v", err)
	}
	if !g.NeedsPadding() {
		t.Error("expected NeedsPadding=true when out-of-place and L<p*m")
	}

	gInplace, err := newGeometry(9, 16, 1, 5, 8, 1, true)
	if err != nil {
		t.Fatalf("newGeometry: %v", err)
	}
	if gInplace.NeedsPadding() {
		t.Error("expected NeedsPadding=false when inplace")
	}
}
