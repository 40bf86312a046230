package bayes

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

// An underflowed null likelihood makes the Bayes factor infinite, which
// encoding/json refuses to emit as a bare number. The result must still
// round-trip through JSON intact.
func TestResultJSON_IllConditionedRoundTrip(t *testing.T) {
	data := DataSummary{Mean: 100, SE: 0.1}
	spec := H1Spec{
		Family:     FamilyNormal,
		NormalMode: Float64Ptr(100),
		NormalSD:   Float64Ptr(1),
	}

	res, err := Evaluate(data, spec, 0)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !res.IllConditioned || !math.IsInf(res.BayesFactor, 1) {
		t.Fatalf("expected ill-conditioned infinite result, got bf=%v flag=%v",
			res.BayesFactor, res.IllConditioned)
	}

	analysis := NewAnalysis("underflow", spec, res)
	raw, err := json.Marshal(analysis)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"bayes_factor":"Infinity"`) {
		t.Errorf("expected string-encoded infinity, got %s", raw)
	}

	var back Analysis
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !math.IsInf(back.Result.BayesFactor, 1) {
		t.Errorf("bayes factor = %v, want +Inf", back.Result.BayesFactor)
	}
	if !back.Result.IllConditioned {
		t.Error("ill-conditioned flag lost in round trip")
	}
	if back.Result.LikelihoodH0 != 0 {
		t.Errorf("likelihood under null = %v, want 0", back.Result.LikelihoodH0)
	}
}

func TestResultJSON_NonFiniteValues(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		encoded string
	}{
		{"positive infinity", math.Inf(1), `"Infinity"`},
		{"negative infinity", math.Inf(-1), `"-Infinity"`},
		{"not a number", math.NaN(), `"NaN"`},
		{"finite", 3.5, `3.5`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(Result{BayesFactor: tt.value})
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if !strings.Contains(string(raw), `"bayes_factor":`+tt.encoded) {
				t.Errorf("encoded as %s, want bayes_factor %s", raw, tt.encoded)
			}

			var back Result
			if err := json.Unmarshal(raw, &back); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if math.IsNaN(tt.value) {
				if !math.IsNaN(back.BayesFactor) {
					t.Errorf("decoded %v, want NaN", back.BayesFactor)
				}
			} else if back.BayesFactor != tt.value {
				t.Errorf("decoded %v, want %v", back.BayesFactor, tt.value)
			}
		})
	}
}
