package bayes

import (
	"gobayes/domain/core"
)

// Analysis is the persisted record of one Bayes factor evaluation: the
// inputs as supplied by the caller plus the computed result.
type Analysis struct {
	ID        core.AnalysisID `json:"id"`
	Label     string          `json:"label,omitempty"`
	Data      DataSummary     `json:"data"`
	Spec      H1Spec          `json:"spec"`
	H0        float64         `json:"h0"`
	Result    Result          `json:"result"`
	CreatedAt core.Timestamp  `json:"created_at"`
}

// NewAnalysis creates an analysis record for a computed result
func NewAnalysis(label string, spec H1Spec, result *Result) *Analysis {
	return &Analysis{
		ID:        core.AnalysisID(core.NewID()),
		Label:     label,
		Data:      result.Data,
		Spec:      spec,
		H0:        result.H0,
		Result:    *result,
		CreatedAt: core.Now(),
	}
}
