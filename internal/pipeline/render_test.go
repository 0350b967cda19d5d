package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/contractlens/internal/model"
)

func sampleReport(t *testing.T) *model.Report {
	t.Helper()
	r, err := New(Options{}, nil).AnalyzeText(context.Background(), sampleContract, Source{Name: "msa.txt"})
	require.NoError(t, err)
	return r
}

func TestRender_JSON(t *testing.T) {
	r := sampleReport(t)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, r, FormatJSON))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, r.ID, decoded["report_id"])
	assert.Contains(t, decoded, "executive_summary")
	assert.Contains(t, decoded, "clause_detections")
}

func TestRender_YAMLKeepsJSONKeys(t *testing.T) {
	r := sampleReport(t)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, r, FormatYAML))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "report_id: "+r.ID+"\n"), out[:min(len(out), 80)])
	assert.Contains(t, out, "\nexecutive_summary:\n")

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "msa.txt", decoded["contract_info"].(map[string]any)["file_name"])
}

func TestRender_MarkdownAndText(t *testing.T) {
	r := sampleReport(t)

	var md bytes.Buffer
	require.NoError(t, Render(&md, r, FormatMarkdown))
	assert.Contains(t, md.String(), "# Contract Risk Analysis: "+r.ID)
	assert.Contains(t, md.String(), "## Executive Summary")
	assert.Contains(t, md.String(), "## Clause Risk")

	var text bytes.Buffer
	require.NoError(t, Render(&text, r, FormatText))
	assert.Contains(t, text.String(), "CONTRACT RISK ANALYSIS REPORT")
}

func TestRender_UnknownFormat(t *testing.T) {
	err := Render(&bytes.Buffer{}, &model.Report{}, "pdf")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestWriteFile(t *testing.T) {
	r := sampleReport(t)
	dir := t.TempDir()

	for _, name := range []string{"out/report.json", "report.md", "report.yaml", "report.txt"} {
		path := filepath.Join(dir, name)
		require.NoError(t, WriteFile(path, r), name)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), r.ID, name)
	}

	assert.Error(t, WriteFile(filepath.Join(dir, "report.docx"), r))
}

func TestWriteXLSX(t *testing.T) {
	r := sampleReport(t)
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteFile(path, r))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{SheetSummary, SheetFindings, SheetClauses, SheetCompliance}, f.GetSheetList())

	summary, err := f.GetRows(SheetSummary)
	require.NoError(t, err)
	assert.Equal(t, []string{"Report ID", r.ID}, summary[0])

	clauses, err := f.GetRows(SheetClauses)
	require.NoError(t, err)
	assert.Equal(t, "Clause", clauses[0][0])
	assert.Len(t, clauses, len(r.Risk.ClauseScores)+1)
}

func TestSummary(t *testing.T) {
	r := sampleReport(t)
	out := Summary(r, DefaultTheme())

	assert.Contains(t, out, r.ID)
	assert.Contains(t, out, string(r.ExecutiveSummary.OverallStatus))
	assert.Contains(t, out, r.ExecutiveSummary.OneLiner)
}
