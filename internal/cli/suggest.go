package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// suggestCmd represents the suggest command
var suggestCmd = &cobra.Command{
	Use:   "suggest <file|url>",
	Short: "Suggest safer wording for risky clauses",
	Long: `Suggest proposes alternative wording for clauses that need attention.

Without --clause every clause flagged by the risk scorer is covered. Standard
templates are used when they match; otherwise the LLM drafts an alternative.

Example:
  contractlens suggest contract.docx
  contractlens suggest contract.docx --clause 4 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)

	suggestCmd.Flags().IntVarP(&clauseNumber, "clause", "c", 0, "clause to rewrite, 1-based (0 = every clause needing attention)")
	suggestCmd.Flags().BoolVar(&jsonOut, "json", false, "print JSON instead of text")
	suggestCmd.Flags().StringVar(&llmProvider, "llm-provider", "", "LLM provider (openai, anthropic, ollama)")
	suggestCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	a, err := newApp(appOptions{noCache: true, noAudit: true, llmProvider: llmProvider, llmModel: llmModel})
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	text, err := a.loadText(ctx, args[0])
	if err != nil {
		return err
	}
	suggestions, err := a.pipeline.Suggest(ctx, text, clauseIndex(clauseNumber))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOut {
		return writeIndented(out, suggestions)
	}
	if len(suggestions) == 0 {
		fmt.Fprintln(out, "No clauses need attention.")
		return nil
	}
	for i, s := range suggestions {
		if i > 0 {
			fmt.Fprintln(out, strings.Repeat("-", 60))
		}
		fmt.Fprintf(out, "Original:\n%s\n\n", indent(s.OriginalClause, "  "))
		if len(s.Concerns) > 0 {
			fmt.Fprintf(out, "Concerns: %s\n\n", strings.Join(s.Concerns, ", "))
		}
		fmt.Fprintf(out, "Suggested (%s):\n%s\n", s.Source, indent(s.AlternativeText, "  "))
		if s.Reasoning != "" {
			fmt.Fprintf(out, "\nWhy: %s\n", s.Reasoning)
		}
	}
	return nil
}
