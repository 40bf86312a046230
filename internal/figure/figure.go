// Package figure builds plot descriptions for Bayes factor analyses.
//
// The figure is a pure value: sampled curves and markers that any frontend
// can render. There is no process-wide canvas; each call constructs and
// returns its own figure, so concurrent evaluations never share drawing
// state.
package figure

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"gobayes/domain/bayes"
)

// curveSamples is the number of points sampled per density curve
const curveSamples = 100

// Point is a single sampled coordinate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Curve is a labeled series, optionally filled to the x-axis
type Curve struct {
	Label  string  `json:"label"`
	Points []Point `json:"points"`
	Fill   bool    `json:"fill"`
}

// Marker is a labeled vertical line
type Marker struct {
	Label string  `json:"label"`
	X     float64 `json:"x"`
}

// Figure describes one analysis plot: the data's sampling density, a marker
// at the null value, and the alternative hypothesis density or band.
type Figure struct {
	Curves  []Curve  `json:"curves"`
	Markers []Marker `json:"markers"`
	YMin    float64  `json:"y_min"`
}

// Build constructs the figure for a resolved analysis
func Build(data bayes.DataSummary, h1 bayes.ResolvedH1, h0 float64) *Figure {
	fig := &Figure{YMin: 0}

	sampling := distuv.Normal{Mu: data.Mean, Sigma: data.SE}
	fig.Curves = append(fig.Curves, sampleCurve("data", sampling.Prob,
		data.Mean-5*data.SE, data.Mean+5*data.SE, true))

	fig.Markers = append(fig.Markers, Marker{Label: "H0", X: h0})

	switch h1.Family {
	case bayes.FamilyUniform:
		height := 1 / (h1.UniformMax - h1.UniformMin)
		fig.Curves = append(fig.Curves, Curve{
			Label: "H1",
			Fill:  true,
			Points: []Point{
				{X: h1.UniformMin, Y: height},
				{X: h1.UniformMax, Y: height},
			},
		})

	case bayes.FamilyNormal:
		dist := distuv.Normal{Mu: h1.Mode, Sigma: h1.SD}
		xMin := math.Min(data.Mean-5*data.SE, h1.Mode-5*h1.SD)
		xMax := math.Max(data.Mean+5*data.SE, h1.Mode+5*h1.SD)
		fig.Curves = append(fig.Curves, sampleCurve("H1", dist.Prob, xMin, xMax, true))

	case bayes.FamilyHalfNormal:
		dist := distuv.Normal{Mu: h1.Mode, Sigma: h1.SD}
		doubled := func(x float64) float64 { return 2 * dist.Prob(x) }
		xMin, xMax := h1.Mode, h1.Mode+5*h1.SD
		if h1.Half == bayes.HalfLower {
			xMin, xMax = h1.Mode-5*h1.SD, h1.Mode
		}
		fig.Curves = append(fig.Curves, sampleCurve("H1", doubled, xMin, xMax, true))
	}

	return fig
}

// sampleCurve evaluates f at evenly spaced points over [xMin, xMax]
func sampleCurve(label string, f func(float64) float64, xMin, xMax float64, fill bool) Curve {
	points := make([]Point, curveSamples)
	step := (xMax - xMin) / float64(curveSamples-1)
	for i := range points {
		x := xMin + float64(i)*step
		points[i] = Point{X: x, Y: f(x)}
	}
	return Curve{Label: label, Points: points, Fill: fill}
}
