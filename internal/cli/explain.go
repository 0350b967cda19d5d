package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/contractlens/internal/model"
)

var (
	clauseNumber int
	clauseText   string
	jsonOut      bool
)

// explainCmd represents the explain command
var explainCmd = &cobra.Command{
	Use:   "explain [file|url]",
	Short: "Explain contract clauses in plain language",
	Long: `Explain rewrites clauses in plain language.

With an LLM configured the explanation comes from the model; otherwise a
built-in template for the clause type is used.

Example:
  contractlens explain contract.pdf
  contractlens explain contract.pdf --clause 3
  contractlens explain --text "The Vendor shall indemnify the Client against all claims."`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)

	explainCmd.Flags().IntVarP(&clauseNumber, "clause", "c", 0, "clause to explain, 1-based (0 = all clauses)")
	explainCmd.Flags().StringVar(&clauseText, "text", "", "explain this clause text instead of a document")
	explainCmd.Flags().BoolVar(&jsonOut, "json", false, "print JSON instead of text")
	explainCmd.Flags().StringVar(&llmProvider, "llm-provider", "", "LLM provider (openai, anthropic, ollama)")
	explainCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runExplain(cmd *cobra.Command, args []string) error {
	if (len(args) == 0) == (clauseText == "") {
		return fmt.Errorf("provide either a document or --text")
	}

	a, err := newApp(appOptions{noCache: true, noAudit: true, llmProvider: llmProvider, llmModel: llmModel})
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	var explanations []model.Explanation
	if clauseText != "" {
		explanations = []model.Explanation{a.pipeline.ExplainText(ctx, clauseText)}
	} else {
		text, err := a.loadText(ctx, args[0])
		if err != nil {
			return err
		}
		explanations, err = a.pipeline.Explain(ctx, text, clauseIndex(clauseNumber))
		if err != nil {
			return err
		}
	}

	if jsonOut {
		return writeIndented(cmd.OutOrStdout(), explanations)
	}
	for i, e := range explanations {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s [%s, %s]\n", clauseLabel(e.ClauseNumber), e.ClauseType, e.Source)
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", e.Explanation)
	}
	return nil
}

// loadText loads a document and returns the text handed to analysis
func (a *app) loadText(ctx context.Context, source string) (string, error) {
	doc, err := a.pipeline.Loader().Load(ctx, source)
	if err != nil {
		return "", fmt.Errorf("load failed: %w", err)
	}
	return doc.Analyzed, nil
}

// clauseIndex converts a 1-based clause flag to a pipeline index; zero or less selects every clause
func clauseIndex(n int) int {
	if n <= 0 {
		return -1
	}
	return n - 1
}

func clauseLabel(number string) string {
	if number == "" {
		return "Clause"
	}
	return "Clause " + number
}

func writeIndented(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// indent prefixes every line of s
func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
