package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/ppiankov/contractlens/internal/model"
)

var (
	heavyRule = strings.Repeat("=", 60)
	lightRule = strings.Repeat("=", 40)
)

// PlainText renders the report for terminals and text exports
func PlainText(r model.Report) string {
	var b strings.Builder

	fmt.Fprintln(&b, heavyRule)
	fmt.Fprintln(&b, "CONTRACT RISK ANALYSIS REPORT")
	fmt.Fprintln(&b, heavyRule)
	fmt.Fprintf(&b, "\nReport ID: %s\n", r.ID)
	fmt.Fprintf(&b, "Generated: %s\n", r.GeneratedAt.Format(time.RFC3339))
	if r.ContractInfo.FileName != "" {
		fmt.Fprintf(&b, "File: %s\n", r.ContractInfo.FileName)
	}
	fmt.Fprintf(&b, "Contract Type: %s\n", r.ContractInfo.TypeLabel)

	s := r.ExecutiveSummary
	section(&b, "EXECUTIVE SUMMARY")
	fmt.Fprintf(&b, "Status: %s\n", s.OverallStatus)
	fmt.Fprintf(&b, "Risk Score: %g/10\n", s.RiskScore)
	fmt.Fprintf(&b, "Compliance Score: %g%%\n", s.ComplianceScore)
	fmt.Fprintf(&b, "\n%s\n", s.OneLiner)
	fmt.Fprintf(&b, "\nRecommendation: %s\n", s.PrimaryRecommendation)

	if len(r.KeyFindings) > 0 {
		section(&b, "KEY FINDINGS")
		for _, f := range r.KeyFindings {
			fmt.Fprintf(&b, "\n[%s] %s\n", f.Severity, f.Category)
			fmt.Fprintf(&b, "  %s\n", f.Description)
			if f.Recommendation != "" {
				fmt.Fprintf(&b, "  → %s\n", f.Recommendation)
			}
		}
	}

	if len(r.Compliance.Issues) > 0 || len(r.Compliance.Warnings) > 0 {
		section(&b, "COMPLIANCE")
		for _, issue := range r.Compliance.Issues {
			fmt.Fprintf(&b, "[ISSUE] %s\n", issue)
		}
		for _, w := range r.Compliance.Warnings {
			fmt.Fprintf(&b, "[WARNING] %s\n", w)
		}
	}

	if len(r.NextSteps) > 0 {
		section(&b, "RECOMMENDED NEXT STEPS")
		for _, step := range r.NextSteps {
			fmt.Fprintln(&b, step)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func section(b *strings.Builder, title string) {
	fmt.Fprintf(b, "\n%s\n%s\n%s\n", lightRule, title, lightRule)
}
