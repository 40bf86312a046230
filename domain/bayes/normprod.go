package bayes

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"gobayes/domain/core"
)

// IntegrateNormalProduct returns the definite integral over [xMin, xMax] of
// the pointwise product of two normal PDFs with parameters (m1, sd1) and
// (m2, sd2). The product of two Gaussian PDFs is itself a scaled Gaussian
// PDF, so the integral has a closed form:
//
//	m = (m1*v2 + m2*v1) / (v1 + v2)   combined mean
//	v = v1*v2 / (v1 + v2)             combined variance
//	c = N(m1 - m2; 0, sqrt(v1 + v2))  scale constant
//
// and the result is c * [CDF(xMax) - CDF(xMin)] of N(m, sqrt(v)). No
// quadrature is involved; the only error is floating-point and CDF precision.
func IntegrateNormalProduct(m1, sd1, m2, sd2, xMin, xMax float64) (float64, error) {
	if sd1 <= 0 {
		return 0, fmt.Errorf("%w: sd1 %g", core.ErrNonPositiveSD, sd1)
	}
	if sd2 <= 0 {
		return 0, fmt.Errorf("%w: sd2 %g", core.ErrNonPositiveSD, sd2)
	}
	if xMin > xMax {
		return 0, core.NewSpecificationError(fmt.Sprintf("integration interval [%g, %g] is inverted", xMin, xMax))
	}

	v1 := sd1 * sd1
	v2 := sd2 * sd2
	m := (m1*v2 + m2*v1) / (v1 + v2)
	v := (v1 * v2) / (v1 + v2)

	scale := distuv.Normal{Mu: 0, Sigma: math.Sqrt(v1 + v2)}.Prob(m1 - m2)
	combined := distuv.Normal{Mu: m, Sigma: math.Sqrt(v)}

	return scale * (combined.CDF(xMax) - combined.CDF(xMin)), nil
}
