package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ppiankov/contractlens/internal/server"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP analysis API",
	Long: `Serve exposes the analysis pipeline over HTTP:

  GET  /health        liveness and configured LLM provider
  POST /analyze       multipart upload (field "file"), JSON {"text": ...} or a raw text body
  POST /explain       JSON {"text": ...} with one clause
  GET  /audit         recent audit entries (?limit=N)
  GET  /audit/{id}    one audit entry

Example:
  contractlens serve
  contractlens serve --addr 127.0.0.1:9000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from server.address)")
	serveCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the report cache")
	serveCmd.Flags().BoolVar(&noAudit, "no-audit", false, "do not write audit log entries")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(appOptions{noCache: noCache, noAudit: noAudit})
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := a.cfg.Server
	if serveAddr != "" {
		cfg.Address = serveAddr
	}

	var auditLog server.AuditLog
	if a.audit != nil {
		auditLog = a.audit
	}
	srv := server.New(a.pipeline, auditLog, a.cfg.Analysis.MaxFileSize, a.logger)

	fmt.Fprintf(os.Stderr, "contractlens v%s listening on %s\n", Version, cfg.Address)
	return srv.ListenAndServe(ctx, cfg)
}
