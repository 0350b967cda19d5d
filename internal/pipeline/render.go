package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/contractlens/internal/model"
	"github.com/ppiankov/contractlens/internal/report"
)

// Output formats accepted by Render
const (
	FormatJSON     = "json"
	FormatMarkdown = "md"
	FormatYAML     = "yaml"
	FormatText     = "text"
)

// Render writes the report to w in the given format
func Render(w io.Writer, r *model.Report, format string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(format) {
	case FormatJSON, "":
		data, err = json.MarshalIndent(r, "", "  ")
	case FormatMarkdown, "markdown":
		data = []byte(Markdown(r))
	case FormatYAML, "yml":
		data, err = YAML(r)
	case FormatText, "txt":
		data = []byte(report.PlainText(*r))
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	_, err = w.Write(data)
	return err
}

// WriteFile renders the report to path, picking the format from the extension
func WriteFile(path string, r *model.Report) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".xlsx" {
		return WriteXLSX(path, r)
	}

	format := map[string]string{
		".json": FormatJSON,
		".md":   FormatMarkdown,
		".yaml": FormatYAML,
		".yml":  FormatYAML,
		".txt":  FormatText,
	}[ext]
	if format == "" {
		return fmt.Errorf("unknown report extension: %q", ext)
	}

	var buf bytes.Buffer
	if err := Render(&buf, r, format); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// YAML renders the report with the same keys and ordering as its JSON form
func YAML(r *model.Report) ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	blockStyle(&doc)
	return yaml.Marshal(&doc)
}

// blockStyle drops the flow and quoting styles inherited from JSON
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

// Markdown renders the report as a Markdown document
func Markdown(r *model.Report) string {
	var b strings.Builder
	s := r.ExecutiveSummary

	fmt.Fprintf(&b, "# Contract Risk Analysis: %s\n\n", r.ID)
	fmt.Fprintf(&b, "- **Generated:** %s\n", r.GeneratedAt.Format(time.RFC3339))
	if r.ContractInfo.FileName != "" {
		fmt.Fprintf(&b, "- **File:** %s\n", r.ContractInfo.FileName)
	}
	fmt.Fprintf(&b, "- **Contract type:** %s\n", r.ContractInfo.TypeLabel)
	if r.ContractInfo.Language != "" {
		fmt.Fprintf(&b, "- **Language:** %s\n", r.ContractInfo.Language)
	}
	fmt.Fprintf(&b, "- **Words:** %d\n", r.ContractInfo.WordCount)

	b.WriteString("\n## Executive Summary\n\n")
	fmt.Fprintf(&b, "| Status | Risk score | Compliance | High-risk items |\n")
	fmt.Fprintf(&b, "|---|---|---|---|\n")
	fmt.Fprintf(&b, "| %s | %g/10 | %g%% | %d |\n\n", s.OverallStatus, s.RiskScore, s.ComplianceScore, s.HighRiskItems)
	fmt.Fprintf(&b, "%s\n\n**Recommendation:** %s\n", s.OneLiner, s.PrimaryRecommendation)

	if r.Summary != nil && r.Summary.AISummary != "" {
		fmt.Fprintf(&b, "\n## Summary\n\n%s\n", r.Summary.AISummary)
	}

	if len(r.KeyFindings) > 0 {
		b.WriteString("\n## Key Findings\n\n")
		for _, f := range r.KeyFindings {
			fmt.Fprintf(&b, "- **[%s] %s:** %s", f.Severity, f.Category, f.Description)
			if f.Recommendation != "" {
				fmt.Fprintf(&b, " _%s_", f.Recommendation)
			}
			b.WriteString("\n")
		}
	}

	if len(r.Risk.ClauseScores) > 0 {
		b.WriteString("\n## Clause Risk\n\n| Clause | Score | Level | Findings |\n|---|---|---|---|\n")
		for _, cs := range r.Risk.ClauseScores {
			fmt.Fprintf(&b, "| %s | %g | %s | %d |\n", cellText(cs.ClauseNumber), cs.Risk.Score, cs.Risk.Level, len(cs.Risk.Findings))
		}
	}

	terms := r.Terms
	if len(terms.Parties) > 0 || len(terms.Dates) > 0 || len(terms.Amounts) > 0 {
		b.WriteString("\n## Extracted Terms\n\n")
		for _, p := range terms.Parties {
			fmt.Fprintf(&b, "- Party: %s\n", p.Name)
		}
		for _, d := range terms.Dates {
			fmt.Fprintf(&b, "- Date: %s\n", d)
		}
		for _, a := range terms.Amounts {
			fmt.Fprintf(&b, "- Amount: %s\n", a.Raw)
		}
		for _, d := range terms.Durations {
			fmt.Fprintf(&b, "- Duration: %s\n", d)
		}
		for _, j := range terms.Jurisdictions {
			fmt.Fprintf(&b, "- Jurisdiction: %s\n", j)
		}
	}

	if c := r.Compliance; len(c.Issues) > 0 || len(c.Warnings) > 0 {
		b.WriteString("\n## Compliance\n\n")
		for _, issue := range c.Issues {
			fmt.Fprintf(&b, "- **Issue:** %s\n", issue)
		}
		for _, w := range c.Warnings {
			fmt.Fprintf(&b, "- Warning: %s\n", w)
		}
	}

	if len(r.Recommendations) > 0 {
		b.WriteString("\n## Recommendations\n\n")
		for _, rec := range r.Recommendations {
			fmt.Fprintf(&b, "- (%s) %s\n", rec.Priority, rec.Action)
		}
	}

	if len(r.Explanations) > 0 {
		b.WriteString("\n## Clause Explanations\n")
		for _, e := range r.Explanations {
			fmt.Fprintf(&b, "\n### Clause %s (%s)\n\n%s\n", e.ClauseNumber, e.ClauseType, e.Explanation)
		}
	}

	if len(r.NextSteps) > 0 {
		b.WriteString("\n## Next Steps\n\n")
		for _, step := range r.NextSteps {
			fmt.Fprintf(&b, "- %s\n", step)
		}
	}
	return b.String()
}

func cellText(s string) string {
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(s, "|", "/")
}

// XLSX sheet names
const (
	SheetSummary    = "Summary"
	SheetFindings   = "Findings"
	SheetClauses    = "Clause Scores"
	SheetCompliance = "Compliance"
)

// XLSX builds a workbook with summary, findings, clause score and compliance sheets
func XLSX(r *model.Report) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, err
	}

	s := r.ExecutiveSummary
	summary := [][]any{
		{"Report ID", r.ID},
		{"Generated", r.GeneratedAt.Format(time.RFC3339)},
		{"File", r.ContractInfo.FileName},
		{"Contract type", r.ContractInfo.TypeLabel},
		{"Status", string(s.OverallStatus)},
		{"Risk score", s.RiskScore},
		{"Compliance score", s.ComplianceScore},
		{"High-risk items", s.HighRiskItems},
		{"Recommendation", s.PrimaryRecommendation},
	}
	if err := writeRows(f, SheetSummary, nil, summary); err != nil {
		return nil, err
	}

	var findings [][]any
	for _, kf := range r.KeyFindings {
		findings = append(findings, []any{kf.Severity, kf.Category, kf.Description, kf.Recommendation, string(kf.Priority)})
	}
	if err := writeSheet(f, SheetFindings, []any{"Severity", "Category", "Description", "Recommendation", "Priority"}, findings); err != nil {
		return nil, err
	}

	var clauses [][]any
	for _, cs := range r.Risk.ClauseScores {
		clauses = append(clauses, []any{cs.ClauseNumber, cs.Position, cs.Risk.Score, string(cs.Risk.Level), len(cs.Risk.Findings), cs.Risk.RequiresAttention})
	}
	if err := writeSheet(f, SheetClauses, []any{"Clause", "Position", "Score", "Level", "Findings", "Requires attention"}, clauses); err != nil {
		return nil, err
	}

	var compliance [][]any
	c := r.Compliance
	for _, group := range [][]model.RequirementCheck{c.Basic, c.General, c.Employment, c.Lease} {
		for _, check := range group {
			compliance = append(compliance, []any{check.Name, check.Status, check.Description, check.Action})
		}
	}
	if err := writeSheet(f, SheetCompliance, []any{"Requirement", "Status", "Description", "Action"}, compliance); err != nil {
		return nil, err
	}

	return f, nil
}

// WriteXLSX saves the workbook built by XLSX
func WriteXLSX(path string, r *model.Report) error {
	f, err := XLSX(r)
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []any, rows [][]any) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	return writeRows(f, sheet, header, rows)
}

func writeRows(f *excelize.File, sheet string, header []any, rows [][]any) error {
	if header != nil {
		rows = append([][]any{header}, rows...)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// Theme is the terminal summary palette
type Theme struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Border  lipgloss.Color
}

// DefaultTheme returns the default palette
func DefaultTheme() Theme {
	return Theme{
		Primary: lipgloss.Color("#7C3AED"),
		Muted:   lipgloss.Color("#6C7086"),
		Success: lipgloss.Color("#A6E3A1"),
		Warning: lipgloss.Color("#F9E2AF"),
		Error:   lipgloss.Color("#F38BA8"),
		Border:  lipgloss.Color("#45475A"),
	}
}

// Summary renders the short terminal verdict printed after an analysis
func Summary(r *model.Report, theme Theme) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)
	label := lipgloss.NewStyle().Foreground(theme.Muted)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	statusColor := map[string]lipgloss.Color{
		"red":    theme.Error,
		"yellow": theme.Warning,
		"green":  theme.Success,
	}[r.ExecutiveSummary.StatusColor]
	status := lipgloss.NewStyle().Bold(true).Foreground(statusColor)

	s := r.ExecutiveSummary
	lines := []string{
		title.Render("Contract analysis " + r.ID),
		label.Render("Type:       ") + r.ContractInfo.TypeLabel,
		label.Render("Status:     ") + status.Render(string(s.OverallStatus)),
		label.Render("Risk:       ") + fmt.Sprintf("%g/10", s.RiskScore),
		label.Render("Compliance: ") + fmt.Sprintf("%g%%", s.ComplianceScore),
		"",
		s.OneLiner,
	}
	for i, f := range r.KeyFindings {
		if i == 3 {
			break
		}
		lines = append(lines, label.Render("• ")+f.Description)
	}
	return box.Render(strings.Join(lines, "\n"))
}
