package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ppiankov/contractlens/internal/audit"
	"github.com/ppiankov/contractlens/internal/logging"
	"github.com/ppiankov/contractlens/internal/model"
	"github.com/ppiankov/contractlens/internal/pipeline"
)

// appOptions are per-command overrides applied on top of the configuration
type appOptions struct {
	noCache     bool
	noAudit     bool
	explain     bool
	llmProvider string
	llmModel    string
	workers     int
}

// app holds the wired collaborators shared by the commands
type app struct {
	cfg      *model.Config
	logger   *slog.Logger
	pipeline *pipeline.Pipeline
	audit    *audit.Store
}

func newApp(opts appOptions) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if opts.noCache {
		cfg.Cache.Enabled = false
	}
	if opts.noAudit {
		cfg.Audit.Enabled = false
	}
	if opts.explain {
		cfg.Analysis.ExplainClauses = true
	}
	if opts.llmProvider != "" {
		cfg.LLM.Provider = opts.llmProvider
	}
	if opts.llmModel != "" {
		cfg.LLM.Model = opts.llmModel
	}
	if opts.workers > 0 {
		cfg.Analysis.Workers = opts.workers
	}

	verbose = verbose || cfg.Output.Verbose
	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	logger := logging.New(level, cfg.Logging.Format)
	slog.SetDefault(logger)

	a := &app{cfg: cfg, logger: logger, pipeline: pipeline.NewFromConfig(cfg, logger)}
	if cfg.Audit.Enabled {
		store, err := audit.Open(cfg.Audit.Database, cfg.Audit.User, logger)
		if err != nil {
			logger.Warn("audit log disabled", "error", err)
		} else {
			a.audit = store
			a.pipeline.WithRecorder(store)
		}
	}
	if p := a.pipeline.Provider(); p != "" && verbose {
		fmt.Fprintf(os.Stderr, "LLM provider: %s\n", p)
	}
	return a, nil
}

func (a *app) Close() {
	if a.audit != nil {
		if err := a.audit.Close(); err != nil {
			a.logger.Warn("close audit log", "error", err)
		}
	}
}

// openAudit opens the audit store for the audit commands, which need it to exist
func openAudit() (*audit.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return audit.Open(cfg.Audit.Database, cfg.Audit.User, logging.New(cfg.Logging.Level, cfg.Logging.Format))
}
