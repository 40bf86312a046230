package bayes

import (
	"math"
	"testing"

	"gobayes/domain/core"
)

// TestIntegrateNormalProduct_SelfProduct verifies the full-range integral of a
// PDF with itself against the known closed form 1/(2*sd*sqrt(pi)).
func TestIntegrateNormalProduct_SelfProduct(t *testing.T) {
	cases := []struct {
		name string
		m    float64
		sd   float64
	}{
		{"standard", 0, 1},
		{"shifted", 3.7, 1},
		{"narrow", -1.2, 0.05},
		{"wide", 10, 8},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := IntegrateNormalProduct(tc.m, tc.sd, tc.m, tc.sd, tc.m-50*tc.sd, tc.m+50*tc.sd)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := 1 / (2 * tc.sd * math.Sqrt(math.Pi))
			if relDiff(got, want) > 1e-12 {
				t.Errorf("self-product integral = %g, want %g", got, want)
			}
		})
	}
}

// TestIntegrateNormalProduct_Additivity verifies splitting the interval at an
// interior point leaves the total unchanged.
func TestIntegrateNormalProduct_Additivity(t *testing.T) {
	m1, sd1 := 0.3, 1.2
	m2, sd2 := -0.8, 0.6
	xMin, mid, xMax := -4.0, 0.1, 5.0

	left, err := IntegrateNormalProduct(m1, sd1, m2, sd2, xMin, mid)
	if err != nil {
		t.Fatalf("left: %v", err)
	}
	right, err := IntegrateNormalProduct(m1, sd1, m2, sd2, mid, xMax)
	if err != nil {
		t.Fatalf("right: %v", err)
	}
	whole, err := IntegrateNormalProduct(m1, sd1, m2, sd2, xMin, xMax)
	if err != nil {
		t.Fatalf("whole: %v", err)
	}

	if relDiff(left+right, whole) > 1e-12 {
		t.Errorf("additivity violated: %g + %g = %g, want %g", left, right, left+right, whole)
	}
}

func TestIntegrateNormalProduct_EmptyInterval(t *testing.T) {
	got, err := IntegrateNormalProduct(0, 1, 1, 2, 0.5, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("zero-width interval integral = %g, want 0", got)
	}
}

func TestIntegrateNormalProduct_Errors(t *testing.T) {
	cases := []struct {
		name                     string
		sd1, sd2, xMin, xMax     float64
		wantDegenerate, wantSpec bool
	}{
		{"zero sd1", 0, 1, -1, 1, true, false},
		{"negative sd2", 1, -2, -1, 1, true, false},
		{"inverted interval", 1, 1, 2, -2, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := IntegrateNormalProduct(0, tc.sd1, 0, tc.sd2, tc.xMin, tc.xMax)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tc.wantDegenerate && !core.IsDegenerateError(err) {
				t.Errorf("expected degenerate distribution error, got %v", err)
			}
			if tc.wantSpec && !core.IsSpecificationError(err) {
				t.Errorf("expected specification error, got %v", err)
			}
		})
	}
}

// relDiff returns |a-b| relative to the magnitude of b (absolute when b is 0)
func relDiff(a, b float64) float64 {
	d := math.Abs(a - b)
	if b == 0 {
		return d
	}
	return d / math.Abs(b)
}
