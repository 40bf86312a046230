package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"gobayes/domain/bayes"
)

func analysisWith(label string, bf float64) *bayes.Analysis {
	favored, strength := bayes.ClassifyEvidence(bf)
	return bayes.NewAnalysis(label, bayes.H1Spec{Family: bayes.FamilyNormal}, &bayes.Result{
		BayesFactor: bf,
		H1:          bayes.ResolvedH1{Family: bayes.FamilyNormal, Mode: 1, SD: 0.5},
		Favored:     favored,
		Strength:    strength,
	})
}

func TestMarkdown(t *testing.T) {
	md := Markdown([]*bayes.Analysis{
		analysisWith("pilot", 4.2),
		analysisWith("replication", 15.0),
		analysisWith("null-ish", 0.8),
	})

	assert.Contains(t, md, "# Bayes Factor Analyses")
	assert.Contains(t, md, "| pilot | normal | 4.2 | H1 | Moderate |")
	assert.Contains(t, md, "| replication | normal | 15 | H1 | Strong |")
	assert.Contains(t, md, "| null-ish | normal | 0.8 | H0 | Anecdotal |")
	assert.Contains(t, md, "- Anecdotal: 1")
	assert.Contains(t, md, "- Moderate: 1")
	assert.Contains(t, md, "- Strong: 1")
}

func TestMarkdown_Empty(t *testing.T) {
	md := Markdown(nil)
	assert.Contains(t, md, "No analyses recorded.")
}

func TestHTML(t *testing.T) {
	out := string(HTML([]*bayes.Analysis{analysisWith("pilot", 4.2)}))
	assert.True(t, strings.Contains(out, "<table>"), "expected rendered table, got: %s", out)
	assert.Contains(t, out, "pilot")
}
