// Package bayes computes Bayes factors comparing an alternative hypothesis
// about a data mean against a point null hypothesis, using the method of
// Dienes 2014 (https://doi.org/10.3389/fpsyg.2014.00781). All likelihoods
// are closed-form normal-distribution computations; nothing is simulated.
package bayes

import (
	"fmt"
	"math"

	"gobayes/domain/core"
)

// Family defines the shape of the alternative hypothesis distribution
type Family string

const (
	FamilyUniform    Family = "uniform"
	FamilyNormal     Family = "normal"
	FamilyHalfNormal Family = "half-normal"
)

// Half selects which side of a half-normal distribution carries the density
type Half string

const (
	HalfUpper Half = "upper"
	HalfLower Half = "lower"
)

// DataSummary describes the observed data by its mean and the standard error
// of the mean. The sampling distribution of the mean is assumed normal; per
// the Central Limit Theorem this does not require the data itself to be.
type DataSummary struct {
	Mean float64 `json:"mean"`
	SE   float64 `json:"se"`
}

// Validate checks the data summary invariants
func (d DataSummary) Validate() error {
	if d.SE <= 0 {
		return fmt.Errorf("%w: data SE must be > 0, got %g", core.ErrNonPositiveSD, d.SE)
	}
	if math.IsNaN(d.Mean) || math.IsNaN(d.SE) {
		return core.NewSpecificationError("data summary contains NaN")
	}
	return nil
}

// H1Spec specifies the alternative hypothesis. The family tag is always
// required. The distribution parameters come from exactly one of two sources:
// the explicit family parameters, or FromValue - a single estimate of the
// data mean under H1, from which the parameters are derived following
// Dienes 2014. When FromValue is set it takes precedence.
type H1Spec struct {
	Family Family `json:"family"`

	// Explicit parameters (family-specific)
	UniformMin *float64 `json:"uniform_min,omitempty"`
	UniformMax *float64 `json:"uniform_max,omitempty"`
	NormalMode *float64 `json:"normal_mode,omitempty"`
	NormalSD   *float64 `json:"normal_sd,omitempty"`
	Half       Half     `json:"half,omitempty"`

	// Single-value shortcut: estimated data mean under H1
	FromValue *float64 `json:"h1_value,omitempty"`
}

// ResolvedH1 is the canonical alternative hypothesis after parameter
// resolution. Likelihood computation only ever sees this form, so the
// shortcut-vs-explicit branching happens exactly once.
type ResolvedH1 struct {
	Family     Family  `json:"family"`
	UniformMin float64 `json:"uniform_min,omitempty"`
	UniformMax float64 `json:"uniform_max,omitempty"`
	Mode       float64 `json:"mode,omitempty"`
	SD         float64 `json:"sd,omitempty"`
	Half       Half    `json:"half,omitempty"`
}

// Resolve normalizes an H1 specification into concrete distribution
// parameters. With FromValue set, parameters are derived relative to h0:
//
//	uniform:     min/max are the ordered pair (h1_value, h0)
//	normal:      mode = h1_value, SD = |h1_value - h0| / 2
//	half-normal: mode = h0, SD = |h1_value - h0|, half from the sign
//
// Explicit parameters pass through unchanged after validation.
func Resolve(spec H1Spec, h0 float64) (ResolvedH1, error) {
	switch spec.Family {
	case FamilyUniform, FamilyNormal, FamilyHalfNormal:
	default:
		return ResolvedH1{}, fmt.Errorf("%w: %q", core.ErrUnknownFamily, spec.Family)
	}

	if spec.FromValue != nil {
		return resolveFromValue(spec.Family, *spec.FromValue, h0)
	}
	return resolveExplicit(spec)
}

func resolveFromValue(family Family, h1Value, h0 float64) (ResolvedH1, error) {
	switch family {
	case FamilyUniform:
		if h1Value == h0 {
			return ResolvedH1{}, fmt.Errorf("%w: h1_value equals h0", core.ErrZeroWidthInterval)
		}
		return ResolvedH1{
			Family:     FamilyUniform,
			UniformMin: math.Min(h1Value, h0),
			UniformMax: math.Max(h1Value, h0),
		}, nil

	case FamilyNormal:
		sd := math.Abs(h1Value-h0) / 2
		if sd == 0 {
			return ResolvedH1{}, fmt.Errorf("%w: h1_value equals h0", core.ErrNonPositiveSD)
		}
		return ResolvedH1{Family: FamilyNormal, Mode: h1Value, SD: sd}, nil

	default: // FamilyHalfNormal
		sd := math.Abs(h1Value - h0)
		if sd == 0 {
			return ResolvedH1{}, fmt.Errorf("%w: h1_value equals h0", core.ErrNonPositiveSD)
		}
		half := HalfLower
		if h1Value > h0 {
			half = HalfUpper
		}
		return ResolvedH1{Family: FamilyHalfNormal, Mode: h0, SD: sd, Half: half}, nil
	}
}

func resolveExplicit(spec H1Spec) (ResolvedH1, error) {
	switch spec.Family {
	case FamilyUniform:
		if spec.UniformMin == nil || spec.UniformMax == nil {
			return ResolvedH1{}, fmt.Errorf("%w: uniform family needs uniform_min and uniform_max or h1_value", core.ErrMissingParameters)
		}
		lo, hi := *spec.UniformMin, *spec.UniformMax
		if lo > hi {
			return ResolvedH1{}, core.NewSpecificationError(fmt.Sprintf("uniform_min %g > uniform_max %g", lo, hi))
		}
		if lo == hi {
			return ResolvedH1{}, fmt.Errorf("%w: [%g, %g]", core.ErrZeroWidthInterval, lo, hi)
		}
		return ResolvedH1{Family: FamilyUniform, UniformMin: lo, UniformMax: hi}, nil

	case FamilyNormal:
		if spec.NormalMode == nil || spec.NormalSD == nil {
			return ResolvedH1{}, fmt.Errorf("%w: normal family needs normal_mode and normal_sd or h1_value", core.ErrMissingParameters)
		}
		if *spec.NormalSD <= 0 {
			return ResolvedH1{}, fmt.Errorf("%w: normal_sd %g", core.ErrNonPositiveSD, *spec.NormalSD)
		}
		return ResolvedH1{Family: FamilyNormal, Mode: *spec.NormalMode, SD: *spec.NormalSD}, nil

	default: // FamilyHalfNormal
		if spec.NormalMode == nil || spec.NormalSD == nil {
			return ResolvedH1{}, fmt.Errorf("%w: half-normal family needs normal_mode and normal_sd or h1_value", core.ErrMissingParameters)
		}
		if *spec.NormalSD <= 0 {
			return ResolvedH1{}, fmt.Errorf("%w: normal_sd %g", core.ErrNonPositiveSD, *spec.NormalSD)
		}
		if spec.Half != HalfUpper && spec.Half != HalfLower {
			return ResolvedH1{}, fmt.Errorf("%w: got %q", core.ErrUnresolvableHalf, spec.Half)
		}
		return ResolvedH1{Family: FamilyHalfNormal, Mode: *spec.NormalMode, SD: *spec.NormalSD, Half: spec.Half}, nil
	}
}

// Float64Ptr is a convenience for building specs with optional parameters
func Float64Ptr(v float64) *float64 { return &v }
