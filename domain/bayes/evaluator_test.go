package bayes

import (
	"math"
	"testing"

	"gobayes/domain/core"
)

// stdNormCDF is an independent standard normal CDF for cross-checking
// results against hand-derived closed forms.
func stdNormCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}

func stdNormPDF(x float64) float64 {
	return math.Exp(-x*x/2) / math.Sqrt(2*math.Pi)
}

// TestEvaluate_UniformClosedForm checks the uniform alternative against the
// textbook closed form: for data N(0,1), H0=0, uniform H1 over [0,2] the H1
// likelihood is (CDF(2)-CDF(0))/2 and the Bayes factor divides by N(0;0,1).
func TestEvaluate_UniformClosedForm(t *testing.T) {
	res, err := Evaluate(
		DataSummary{Mean: 0, SE: 1},
		H1Spec{Family: FamilyUniform, UniformMin: Float64Ptr(0), UniformMax: Float64Ptr(2)},
		0,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantL1 := (stdNormCDF(2) - stdNormCDF(0)) / 2
	if relDiff(res.LikelihoodH1, wantL1) > 1e-12 {
		t.Errorf("likelihood H1 = %g, want %g", res.LikelihoodH1, wantL1)
	}

	wantBF := wantL1 / stdNormPDF(0)
	if relDiff(res.BayesFactor, wantBF) > 1e-12 {
		t.Errorf("bayes factor = %g, want %g", res.BayesFactor, wantBF)
	}
}

// TestEvaluate_ShortcutEquivalence verifies the h1_value shortcut produces
// the same Bayes factor as supplying the derived parameters explicitly.
func TestEvaluate_ShortcutEquivalence(t *testing.T) {
	data := DataSummary{Mean: 0.8, SE: 0.3}
	h0 := 0.2
	h1Value := 1.5

	cases := []struct {
		name     string
		shortcut H1Spec
		explicit H1Spec
	}{
		{
			name:     "uniform",
			shortcut: H1Spec{Family: FamilyUniform, FromValue: Float64Ptr(h1Value)},
			explicit: H1Spec{Family: FamilyUniform, UniformMin: Float64Ptr(h0), UniformMax: Float64Ptr(h1Value)},
		},
		{
			name:     "normal",
			shortcut: H1Spec{Family: FamilyNormal, FromValue: Float64Ptr(h1Value)},
			explicit: H1Spec{Family: FamilyNormal, NormalMode: Float64Ptr(h1Value), NormalSD: Float64Ptr((h1Value - h0) / 2)},
		},
		{
			name:     "half-normal",
			shortcut: H1Spec{Family: FamilyHalfNormal, FromValue: Float64Ptr(h1Value)},
			explicit: H1Spec{Family: FamilyHalfNormal, NormalMode: Float64Ptr(h0), NormalSD: Float64Ptr(h1Value - h0), Half: HalfUpper},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			viaShortcut, err := Evaluate(data, tc.shortcut, h0)
			if err != nil {
				t.Fatalf("shortcut: %v", err)
			}
			viaExplicit, err := Evaluate(data, tc.explicit, h0)
			if err != nil {
				t.Fatalf("explicit: %v", err)
			}
			if relDiff(viaShortcut.BayesFactor, viaExplicit.BayesFactor) > 1e-12 {
				t.Errorf("shortcut bf = %g, explicit bf = %g", viaShortcut.BayesFactor, viaExplicit.BayesFactor)
			}
		})
	}
}

// TestEvaluate_HalfVsFullNormal verifies a half-normal H1 with mode at H0
// doubles the upper-half integral of the equivalent full normal.
func TestEvaluate_HalfVsFullNormal(t *testing.T) {
	data := DataSummary{Mean: 0.6, SE: 0.4}
	mode, sd := 0.0, 1.0

	res, err := Evaluate(data, H1Spec{
		Family:     FamilyHalfNormal,
		NormalMode: Float64Ptr(mode),
		NormalSD:   Float64Ptr(sd),
		Half:       HalfUpper,
	}, mode)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	upperHalf, err := IntegrateNormalProduct(data.Mean, data.SE, mode, sd, mode, mode+5*sd)
	if err != nil {
		t.Fatalf("integrator: %v", err)
	}

	if relDiff(res.LikelihoodH1, 2*upperHalf) > 1e-12 {
		t.Errorf("half-normal likelihood = %g, want %g", res.LikelihoodH1, 2*upperHalf)
	}
}

// TestEvaluate_Monotonicity: with H1 fixed at Normal(2, 1) and H0=0, moving
// the data mean from 0 toward 2 must monotonically increase the evidence
// for H1.
func TestEvaluate_Monotonicity(t *testing.T) {
	spec := H1Spec{Family: FamilyNormal, NormalMode: Float64Ptr(2), NormalSD: Float64Ptr(1)}

	prev := math.Inf(-1)
	for mean := 0.0; mean <= 2.0+1e-9; mean += 0.25 {
		res, err := Evaluate(DataSummary{Mean: mean, SE: 0.5}, spec, 0)
		if err != nil {
			t.Fatalf("mean %g: %v", mean, err)
		}
		if res.BayesFactor <= prev {
			t.Fatalf("bayes factor not increasing at mean %g: %g <= %g", mean, res.BayesFactor, prev)
		}
		prev = res.BayesFactor
	}
}

// TestEvaluate_ConcreteScenario pins the derived parameters and direction of
// the worked example: mean 0.5, SE 0.25, normal H1 from h1_value=1, H0=0.
func TestEvaluate_ConcreteScenario(t *testing.T) {
	res, err := Evaluate(
		DataSummary{Mean: 0.5, SE: 0.25},
		H1Spec{Family: FamilyNormal, FromValue: Float64Ptr(1)},
		0,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.H1.Mode != 1 || res.H1.SD != 0.5 {
		t.Errorf("resolved H1 = (mode %g, sd %g), want (1, 0.5)", res.H1.Mode, res.H1.SD)
	}
	if res.BayesFactor <= 1 {
		t.Errorf("bayes factor = %g, want > 1 (favors H1)", res.BayesFactor)
	}
	if res.Favored != HypothesisH1 {
		t.Errorf("favored = %s, want H1", res.Favored)
	}
	wantFavored, wantStrength := ClassifyEvidence(res.BayesFactor)
	if res.Favored != wantFavored || res.Strength != wantStrength {
		t.Errorf("classification (%s, %s) disagrees with ClassifyEvidence (%s, %s)",
			res.Favored, res.Strength, wantFavored, wantStrength)
	}
}

// TestEvaluate_Reciprocity: the likelihood ratio read the other way round is
// exactly the reciprocal, and classifies with the same strength for the
// opposite hypothesis.
func TestEvaluate_Reciprocity(t *testing.T) {
	res, err := Evaluate(
		DataSummary{Mean: 1.1, SE: 0.4},
		H1Spec{Family: FamilyNormal, FromValue: Float64Ptr(2)},
		0,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inverse := res.LikelihoodH0 / res.LikelihoodH1
	if relDiff(inverse, 1/res.BayesFactor) > 1e-12 {
		t.Errorf("inverse ratio = %g, want %g", inverse, 1/res.BayesFactor)
	}

	fwdFavored, fwdStrength := ClassifyEvidence(res.BayesFactor)
	invFavored, invStrength := ClassifyEvidence(1 / res.BayesFactor)
	if fwdFavored == invFavored {
		t.Errorf("reciprocal factor favors the same hypothesis %s", fwdFavored)
	}
	if fwdStrength != invStrength {
		t.Errorf("reciprocal strength %s != forward strength %s", invStrength, fwdStrength)
	}
}

// TestEvaluate_IllConditioned: a data mean hundreds of SEs away from H0
// underflows the null likelihood to zero. That is a valid extreme result,
// flagged rather than rejected.
func TestEvaluate_IllConditioned(t *testing.T) {
	res, err := Evaluate(
		DataSummary{Mean: 100, SE: 0.1},
		H1Spec{Family: FamilyNormal, NormalMode: Float64Ptr(100), NormalSD: Float64Ptr(1)},
		0,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.LikelihoodH0 != 0 {
		t.Fatalf("likelihood H0 = %g, expected exact underflow to 0", res.LikelihoodH0)
	}
	if !res.IllConditioned {
		t.Error("expected IllConditioned to be set")
	}
	if !math.IsInf(res.BayesFactor, 1) {
		t.Errorf("bayes factor = %g, want +Inf", res.BayesFactor)
	}
}

func TestEvaluate_InvalidInputs(t *testing.T) {
	validNormal := H1Spec{Family: FamilyNormal, FromValue: Float64Ptr(1)}

	cases := []struct {
		name           string
		data           DataSummary
		spec           H1Spec
		wantDegenerate bool
		wantSpec       bool
	}{
		{"zero data SE", DataSummary{Mean: 0, SE: 0}, validNormal, true, false},
		{"negative data SE", DataSummary{Mean: 0, SE: -1}, validNormal, true, false},
		{"unknown family", DataSummary{Mean: 0, SE: 1}, H1Spec{Family: "cauchy", FromValue: Float64Ptr(1)}, false, true},
		{"uniform missing params", DataSummary{Mean: 0, SE: 1}, H1Spec{Family: FamilyUniform}, false, true},
		{"uniform zero width", DataSummary{Mean: 0, SE: 1}, H1Spec{Family: FamilyUniform, UniformMin: Float64Ptr(2), UniformMax: Float64Ptr(2)}, true, false},
		{"uniform inverted", DataSummary{Mean: 0, SE: 1}, H1Spec{Family: FamilyUniform, UniformMin: Float64Ptr(3), UniformMax: Float64Ptr(1)}, false, true},
		{"normal zero sd", DataSummary{Mean: 0, SE: 1}, H1Spec{Family: FamilyNormal, NormalMode: Float64Ptr(1), NormalSD: Float64Ptr(0)}, true, false},
		{"half-normal missing half", DataSummary{Mean: 0, SE: 1}, H1Spec{Family: FamilyHalfNormal, NormalMode: Float64Ptr(0), NormalSD: Float64Ptr(1)}, false, true},
		{"half-normal bad half", DataSummary{Mean: 0, SE: 1}, H1Spec{Family: FamilyHalfNormal, NormalMode: Float64Ptr(0), NormalSD: Float64Ptr(1), Half: "middle"}, false, true},
		{"shortcut equal to h0", DataSummary{Mean: 0, SE: 1}, H1Spec{Family: FamilyHalfNormal, FromValue: Float64Ptr(0)}, true, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Evaluate(tc.data, tc.spec, 0)
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

// TestResolve_ShortcutDerivations pins the Dienes 2014 parameter derivation
// table, including the lower-half case for h1_value below h0.
func TestResolve_ShortcutDerivations(t *testing.T) {
	h0 := 1.0

	uniform, err := Resolve(H1Spec{Family: FamilyUniform, FromValue: Float64Ptr(-2)}, h0)
	if err != nil {
		t.Fatalf("uniform: %v", err)
	}
	if uniform.UniformMin != -2 || uniform.UniformMax != 1 {
		t.Errorf("uniform = [%g, %g], want [-2, 1]", uniform.UniformMin, uniform.UniformMax)
	}

	normal, err := Resolve(H1Spec{Family: FamilyNormal, FromValue: Float64Ptr(-2)}, h0)
	if err != nil {
		t.Fatalf("normal: %v", err)
	}
	if normal.Mode != -2 || normal.SD != 1.5 {
		t.Errorf("normal = (mode %g, sd %g), want (-2, 1.5)", normal.Mode, normal.SD)
	}

	half, err := Resolve(H1Spec{Family: FamilyHalfNormal, FromValue: Float64Ptr(-2)}, h0)
	if err != nil {
		t.Fatalf("half-normal: %v", err)
	}
	if half.Mode != h0 || half.SD != 3 || half.Half != HalfLower {
		t.Errorf("half-normal = (mode %g, sd %g, %s), want (1, 3, lower)", half.Mode, half.SD, half.Half)
	}
}
