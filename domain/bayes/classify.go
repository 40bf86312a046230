package bayes

import (
	"fmt"
	"math"
)

// Hypothesis names the hypothesis favored by a Bayes factor
type Hypothesis string

const (
	HypothesisH0 Hypothesis = "H0"
	HypothesisH1 Hypothesis = "H1"
)

// Strength classifies evidence strength using the criteria of
// Lee and Wagenmakers 2014.
type Strength string

const (
	StrengthAnecdotal  Strength = "Anecdotal"
	StrengthModerate   Strength = "Moderate"
	StrengthStrong     Strength = "Strong"
	StrengthVeryStrong Strength = "Very strong"
	StrengthExtreme    Strength = "Extreme"
)

// ClassifyEvidence maps a Bayes factor to the favored hypothesis and the
// strength of evidence in its favour. Factors >= 1 favor H1, below 1 favor
// H0; strength is banded on max(bf, 1/bf).
func ClassifyEvidence(bf float64) (Hypothesis, Strength) {
	favored := HypothesisH0
	if bf >= 1 {
		favored = HypothesisH1
	}

	absBF := math.Max(bf, 1/bf)
	switch {
	case absBF < 3:
		return favored, StrengthAnecdotal
	case absBF < 10:
		return favored, StrengthModerate
	case absBF < 30:
		return favored, StrengthStrong
	case absBF < 100:
		return favored, StrengthVeryStrong
	default:
		return favored, StrengthExtreme
	}
}

// Summary formats the one-line textual report for the result
func (r *Result) Summary() string {
	return fmt.Sprintf("Bayes Factor: %.3g - %s evidence in favour of %s", r.BayesFactor, r.Strength, r.Favored)
}
