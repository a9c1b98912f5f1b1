package gate

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arx-sec/arx/internal/analyze"
)

const ruleWidth = 60

// Renderer writes per-package security reports and the overall assessment.
type Renderer struct {
	header lipgloss.Style
	danger lipgloss.Style
	safe   lipgloss.Style
	dim    lipgloss.Style
}

// NewRenderer creates a Renderer. When color is false, all styles render
// as plain text (non-terminal stdout, piped output).
func NewRenderer(color bool) *Renderer {
	if !color {
		plain := lipgloss.NewStyle()
		return &Renderer{header: plain, danger: plain, safe: plain, dim: plain}
	}
	return &Renderer{
		header: lipgloss.NewStyle().Bold(true),
		danger: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		safe:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (r *Renderer) rule(w io.Writer) {
	fmt.Fprintln(w, r.dim.Render(strings.Repeat("=", ruleWidth)))
}

// Package renders the security report for one analyzed package.
func (r *Renderer) Package(w io.Writer, name string, v analyze.Verdict) {
	fmt.Fprintln(w)
	r.rule(w)
	fmt.Fprintln(w, r.header.Render("SECURITY ANALYSIS: "+name))
	r.rule(w)

	fmt.Fprintf(w, "Confidence: %.0f%%\n", v.Confidence*100)
	if v.MaliciousIntent {
		fmt.Fprintf(w, "Malicious Intent: %s\n", r.danger.Render("YES"))
	} else {
		fmt.Fprintf(w, "Malicious Intent: %s\n", r.safe.Render("NO"))
	}

	if len(v.SuspiciousPatterns) > 0 {
		fmt.Fprintln(w, "\nSuspicious Patterns:")
		for _, pattern := range v.SuspiciousPatterns {
			fmt.Fprintf(w, "  - %s\n", pattern)
		}
	}

	if len(v.Recommendations) > 0 {
		fmt.Fprintln(w, "\nRecommendations:")
		for _, rec := range v.Recommendations {
			fmt.Fprintf(w, "  - %s\n", rec)
		}
	}

	if v.Analysis != "" {
		fmt.Fprintln(w, "\nAnalysis:")
		fmt.Fprintf(w, "  %s\n", v.Analysis)
	}

	if v.NameFindings != "" {
		fmt.Fprintln(w, "\nPackage Name Analysis:")
		fmt.Fprintf(w, "  %s\n", v.NameFindings)
	}

	r.rule(w)
}

// NotFound renders the list of packages that failed the existence check or
// had no retrievable PKGBUILD.
func (r *Renderer) NotFound(w io.Writer, names []string) {
	fmt.Fprintln(w)
	r.rule(w)
	fmt.Fprintln(w, r.header.Render("PACKAGES NOT FOUND"))
	r.rule(w)
	for _, name := range names {
		fmt.Fprintf(w, "  - %s\n", name)
	}
	r.rule(w)
}

// Overall renders the aggregate assessment across all analyzed packages.
func (r *Renderer) Overall(w io.Writer, malicious bool, confidence float64) {
	fmt.Fprintln(w)
	r.rule(w)
	fmt.Fprintln(w, r.header.Render("OVERALL SECURITY ASSESSMENT"))
	r.rule(w)
	fmt.Fprintf(w, "Overall Confidence: %.0f%%\n", confidence*100)
	if malicious {
		fmt.Fprintln(w, r.danger.Render("MALICIOUS INTENT DETECTED IN ONE OR MORE PACKAGES!"))
	}
	r.rule(w)
}
