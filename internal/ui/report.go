package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/manfredsteyer/polygraph-rules/internal/conformance"
)

// RuleResult pairs a rule name with the result of running it.
type RuleResult struct {
	Rule   string             `json:"rule"`
	Result conformance.Result `json:"result"`
}

var severityStyles = map[conformance.Severity]lipgloss.Style{
	conformance.SeverityHigh:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	conformance.SeverityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	conformance.SeverityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
}

var okStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

// RenderReport writes one table row per violation followed by a summary
// line. The severity is the last column so ANSI styling cannot break the
// alignment of the others.
func RenderReport(out io.Writer, results []RuleResult, color bool) error {
	tbl := NewTable(out, "RULE", "SCOPE", "MESSAGE", "SEVERITY")
	total := 0
	for _, rr := range results {
		sev := severity(rr.Result.Severity, color)
		if !rr.Result.HasViolations() {
			tbl.Row(rr.Rule, "-", "no violations", style(okStyle, "ok", color))
			continue
		}
		for _, v := range rr.Result.Details.Violations {
			scope := "file"
			if v.WorkspaceViolation {
				scope = "workspace"
			}
			tbl.Row(rr.Rule, scope, v.Message, sev)
			total++
		}
	}
	if err := tbl.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "\n%d rule(s) checked, %d violation(s)\n", len(results), total)
	return err
}

func severity(s conformance.Severity, color bool) string {
	st, ok := severityStyles[s]
	if !ok {
		return string(s)
	}
	return style(st, string(s), color)
}

func style(st lipgloss.Style, s string, color bool) string {
	if !color {
		return s
	}
	return st.Render(s)
}
