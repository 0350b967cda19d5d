package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/contractlens/internal/audit"
)

var (
	auditLimit  int
	auditHash   string
	auditOutput string
)

// auditCmd represents the audit command
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Inspect the analysis audit log",
	Long: `Every analysis records who ran it, which document (by SHA-256) and the
headline results. The audit commands list, show and export those entries.`,
}

var auditListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent audit entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openAudit()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		var entries []audit.Entry
		if auditHash != "" {
			entries, err = store.ByHash(cmd.Context(), auditHash)
		} else {
			entries, err = store.Recent(cmd.Context(), auditLimit)
		}
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No audit entries.")
			return nil
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ENTRY\tTIME\tREPORT\tFILE\tTYPE\tRISK\tLEVEL")
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%g\t%s\n",
				e.ID, e.Timestamp.Local().Format(time.DateTime), e.ReportID, e.FileName,
				e.Summary.ContractType, e.Summary.RiskScore, e.Summary.RiskLevel)
		}
		return tw.Flush()
	},
}

var auditShowCmd = &cobra.Command{
	Use:   "show <entry-id>",
	Short: "Show one audit entry as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openAudit()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		entry, err := store.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return writeIndented(cmd.OutOrStdout(), entry)
	},
}

var auditExportCmd = &cobra.Command{
	Use:   "export [entry-id...]",
	Short: "Export an audit trail",
	Long:  `Export the given entries, or the most recent ones when none are named, as a plain-text audit trail.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openAudit()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		trail, err := store.Export(cmd.Context(), args)
		if err != nil {
			return err
		}
		if auditOutput == "" {
			_, err = fmt.Fprint(cmd.OutOrStdout(), trail)
			return err
		}
		if err := os.WriteFile(auditOutput, []byte(trail), 0600); err != nil {
			return fmt.Errorf("write audit trail: %w", err)
		}
		fmt.Fprintf(os.Stderr, "✓ Exported audit trail: %s\n", auditOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(auditCmd)
	auditCmd.AddCommand(auditListCmd, auditShowCmd, auditExportCmd)

	auditListCmd.Flags().IntVarP(&auditLimit, "limit", "n", 20, "number of entries (0 = all)")
	auditListCmd.Flags().StringVar(&auditHash, "hash", "", "only entries for this document SHA-256")
	auditExportCmd.Flags().StringVarP(&auditOutput, "output", "o", "", "write the trail to a file instead of stdout")
}
