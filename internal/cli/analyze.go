package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/contractlens/internal/model"
	"github.com/ppiankov/contractlens/internal/pipeline"
)

var (
	contractType string
	outJSON      string
	outMD        string
	outYAML      string
	outText      string
	outXLSX      string
	stdoutFormat string
	timeout      time.Duration
	noCache      bool
	noAudit      bool
	explain      bool
	llmProvider  string
	llmModel     string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file|url>",
	Short: "Analyze a single contract and generate a risk report",
	Long: `Analyze reads one contract and:
- Classifies the contract type
- Splits it into clauses and scores each clause for risk
- Runs the clause detectors (penalties, non-compete, indemnity, ...)
- Checks basic and contract-specific compliance requirements
- Extracts parties, dates, amounts, durations and obligations

Example:
  contractlens analyze contract.pdf
  contractlens analyze lease.docx --type lease --json report.json --md report.md
  contractlens analyze https://example.com/terms --format yaml
  contractlens analyze nda.txt --explain --llm-provider openai`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path")
	analyzeCmd.Flags().StringVar(&outYAML, "yaml", "", "output YAML path")
	analyzeCmd.Flags().StringVar(&outText, "txt", "", "output plain-text path")
	analyzeCmd.Flags().StringVar(&outXLSX, "xlsx", "", "output spreadsheet path (default from output.xlsx)")
	analyzeCmd.Flags().StringVarP(&stdoutFormat, "format", "f", "", "print the full report to stdout (json, md, yaml, text) instead of the summary (default from output.format)")

	// Analysis flags
	analyzeCmd.Flags().StringVarP(&contractType, "type", "t", "", "contract type hint (employment, vendor, lease, partnership, service, nda)")
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the report cache")
	analyzeCmd.Flags().BoolVar(&noAudit, "no-audit", false, "do not write an audit log entry")

	// LLM flags
	analyzeCmd.Flags().BoolVar(&explain, "explain", false, "attach plain-language clause explanations")
	analyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "", "LLM provider (openai, anthropic, ollama)")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	source := args[0]
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	hint, err := model.ParseContractType(contractType)
	if err != nil {
		return err
	}

	a, err := newApp(appOptions{
		noCache:     noCache,
		noAudit:     noAudit,
		explain:     explain,
		llmProvider: llmProvider,
		llmModel:    llmModel,
	})
	if err != nil {
		return err
	}
	defer a.Close()

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", source)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n\n", a.cfg.Cache.Enabled)
	}

	doc, err := a.pipeline.Loader().Load(ctx, source)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Loaded %s (%s, %d words, language %s)\n", doc.Name, doc.Format, doc.WordCount, doc.Detection.Language)
	}

	r, err := a.pipeline.AnalyzeDocument(ctx, doc, hint)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Segmented %d clauses\n", len(r.Clauses))
		fmt.Fprintf(os.Stderr, "✓ Risk score: %g/10, compliance: %g%%\n\n", r.ExecutiveSummary.RiskScore, r.ExecutiveSummary.ComplianceScore)
	}

	xlsxPath := outXLSX
	if xlsxPath == "" {
		xlsxPath = a.cfg.Output.XLSX
	}
	if err := writeOutputs(r, outJSON, outMD, outYAML, outText, xlsxPath); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	format := stdoutFormat
	if format == "" {
		format = a.cfg.Output.Format
	}
	if format != "" {
		return pipeline.Render(cmd.OutOrStdout(), r, format)
	}
	fmt.Fprintln(cmd.OutOrStdout(), pipeline.Summary(r, pipeline.DefaultTheme()))
	return nil
}

// writeOutputs writes every requested report file, skipping empty paths
func writeOutputs(r *model.Report, paths ...string) error {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := pipeline.WriteFile(path, r); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote %s\n", path)
		}
	}
	return nil
}
