package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/contractlens/internal/model"
	"github.com/ppiankov/contractlens/internal/pipeline"
	"github.com/ppiankov/contractlens/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	formats      []string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir|list>",
	Short: "Analyze many contracts in parallel",
	Long: `Batch analyzes many contracts concurrently:
- A directory is walked for files with an allowed extension
- Any other file is read as a list of paths or URLs (one per line, # for comments)
- Contracts are analyzed in parallel with a configurable worker count
- One report per contract is written to the output directory

Example:
  contractlens batch ./contracts
  contractlens batch sources.txt --concurrency 8 --output-dir ./reports
  contractlens batch ./contracts --formats json,md,xlsx --timeout 30m`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./contractlens-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().StringSliceVar(&formats, "formats", []string{"json", "md"}, "report formats to write (json, md, yaml, txt, xlsx)")

	// Shared with analyze
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the report cache")
	batchCmd.Flags().BoolVar(&noAudit, "no-audit", false, "do not write audit log entries")
	batchCmd.Flags().BoolVar(&explain, "explain", false, "attach plain-language clause explanations")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "", "LLM provider (openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runBatch(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, cancel := context.WithTimeout(cmd.Context(), batchTimeout)
	defer cancel()

	exts, err := reportExtensions(formats)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  ContractLens Batch Analysis\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input:        %s\n", input)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Formats:      %s\n", strings.Join(formats, ", "))
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

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

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	processor := worker.NewBatchProcessor(a.pipeline, concurrency, a.cfg.RateLimiting.RequestsPerSecond, a.cfg.RateLimiting.Burst)

	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("stat input: %w", err)
	}

	var results []*worker.AnalyzeResult
	if info.IsDir() {
		fmt.Fprintf(os.Stderr, "⚙️  Collecting contracts from directory...\n")
		results, err = processor.ProcessDir(ctx, input, a.cfg.Analysis.AllowedExtensions)
	} else {
		fmt.Fprintf(os.Stderr, "⚙️  Reading sources from list...\n")
		results, err = processor.ProcessList(ctx, input)
	}
	if err != nil {
		return fmt.Errorf("process input: %w", err)
	}

	successCount := 0
	failureCount := 0
	attention := 0

	for i, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Source, result.Error)
			continue
		}

		base := filepath.Join(outputDir, fmt.Sprintf("%03d-%s", i+1, sanitizeFilename(result.Source)))
		failed := false
		for _, ext := range exts {
			if err := pipeline.WriteFile(base+ext, result.Report); err != nil {
				fmt.Fprintf(os.Stderr, "✗ %s: failed to write %s: %v\n", result.Source, ext, err)
				failed = true
				break
			}
		}
		if failed {
			failureCount++
			continue
		}

		successCount++
		summary := result.Report.ExecutiveSummary
		if summary.OverallStatus != model.StatusLowRisk {
			attention++
		}
		fmt.Fprintf(os.Stderr, "✓ %s (%s, risk %g/10, %v)\n", result.Source, result.Report.ContractInfo.ContractType, summary.RiskScore, result.Duration.Round(time.Millisecond))
	}

	// Summary
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:      %d contracts\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:    %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:   %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Attention:  %d above low risk\n", attention)
	fmt.Fprintf(os.Stderr, "  Output:     %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	if failureCount > 0 && successCount == 0 {
		return fmt.Errorf("all %d contracts failed", failureCount)
	}
	return nil
}

// reportExtensions maps format names to file extensions understood by pipeline.WriteFile
func reportExtensions(names []string) ([]string, error) {
	var exts []string
	seen := make(map[string]bool)
	for _, name := range names {
		var ext string
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "json":
			ext = ".json"
		case "md", "markdown":
			ext = ".md"
		case "yaml", "yml":
			ext = ".yaml"
		case "txt", "text":
			ext = ".txt"
		case "xlsx":
			ext = ".xlsx"
		default:
			return nil, fmt.Errorf("unknown report format: %s", name)
		}
		if !seen[ext] {
			seen[ext] = true
			exts = append(exts, ext)
		}
	}
	if len(exts) == 0 {
		return nil, fmt.Errorf("at least one report format is required")
	}
	return exts, nil
}

// sanitizeFilename turns a path or URL into a short, safe file stem
func sanitizeFilename(s string) string {
	s = strings.TrimSuffix(s, "/")
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
	} else {
		s = filepath.Base(s)
		s = strings.TrimSuffix(s, filepath.Ext(s))
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}

	out := strings.TrimSuffix(b.String(), "-")
	if len(out) > 100 {
		out = strings.TrimSuffix(out[:100], "-")
	}
	if out == "" {
		return "contract"
	}
	return out
}
