// Package report renders batch analysis reports as markdown and HTML.
package report

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"gobayes/domain/bayes"
)

// Markdown builds a markdown report over a set of analyses: a results table
// followed by a strength-of-evidence breakdown.
func Markdown(analyses []*bayes.Analysis) string {
	var b strings.Builder

	b.WriteString("# Bayes Factor Analyses\n\n")
	if len(analyses) == 0 {
		b.WriteString("No analyses recorded.\n")
		return b.String()
	}

	b.WriteString("| Label | Family | Bayes Factor | Favors | Strength |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, a := range analyses {
		label := a.Label
		if label == "" {
			label = a.ID.String()
		}
		fmt.Fprintf(&b, "| %s | %s | %.3g | %s | %s |\n",
			label, a.Result.H1.Family, a.Result.BayesFactor, a.Result.Favored, a.Result.Strength)
	}

	b.WriteString("\n## Evidence strength\n\n")
	counts := make(map[bayes.Strength]int)
	for _, a := range analyses {
		counts[a.Result.Strength]++
	}
	for _, s := range []bayes.Strength{
		bayes.StrengthAnecdotal,
		bayes.StrengthModerate,
		bayes.StrengthStrong,
		bayes.StrengthVeryStrong,
		bayes.StrengthExtreme,
	} {
		if counts[s] > 0 {
			fmt.Fprintf(&b, "- %s: %d\n", s, counts[s])
		}
	}

	return b.String()
}

// HTML renders the markdown report to HTML
func HTML(analyses []*bayes.Analysis) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(Markdown(analyses)), p, renderer)
}
