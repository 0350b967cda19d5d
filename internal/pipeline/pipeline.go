// Package pipeline wires document loading, rule-based analysis, the optional
// language-model collaborators, caching and the audit log into one flow.
package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ppiankov/contractlens/internal/cache"
	"github.com/ppiankov/contractlens/internal/extract"
	"github.com/ppiankov/contractlens/internal/llm"
	"github.com/ppiankov/contractlens/internal/loader"
	"github.com/ppiankov/contractlens/internal/model"
	"github.com/ppiankov/contractlens/internal/report"
	"github.com/ppiankov/contractlens/internal/util"
	"github.com/ppiankov/contractlens/internal/worker"
)

// Recorder persists an audit entry for each analysis
type Recorder interface {
	Record(ctx context.Context, r *model.Report, source string) error
}

// Options controls the optional stages
type Options struct {
	Workers         int
	ExplainClauses  bool
	MaxExplanations int
	UseNER          bool
	LLMTimeout      time.Duration
}

// OptionsFromConfig maps the configuration tree onto pipeline options
func OptionsFromConfig(cfg *model.Config) Options {
	return Options{
		Workers:         cfg.Analysis.Workers,
		ExplainClauses:  cfg.Analysis.ExplainClauses,
		MaxExplanations: cfg.Analysis.MaxExplanations,
		UseNER:          cfg.LLM.UseNER,
		LLMTimeout:      time.Duration(cfg.LLM.Timeout) * time.Second,
	}
}

// Source describes where analyzed text came from
type Source struct {
	Name      string             // File name shown in the report
	Origin    string             // Path or URL recorded in the audit log
	Hint      model.ContractType // Caller-supplied contract type; empty lets the classifier decide
	Language  string
	PageCount int
	SHA256    string // Hash of the source bytes; derived from the text when empty
}

// Pipeline orchestrates a complete analysis
type Pipeline struct {
	engine     *Engine
	loader     *loader.Loader
	generator  llm.Generator
	explainer  *llm.Explainer
	summarizer *llm.Summarizer
	suggester  *llm.Suggester
	recognizer *llm.Recognizer
	reports    *cache.Reports
	recorder   Recorder
	opts       Options
	logger     *slog.Logger
}

// New creates a pipeline with template-only collaborators and no cache or audit log
func New(opts Options, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Pipeline{
		engine: NewEngine(opts.Workers),
		loader: loader.New(loader.Options{}, logger),
		opts:   opts,
		logger: logger,
	}
	return p.WithGenerator(nil)
}

// NewFromConfig builds a pipeline from configuration. A misconfigured LLM
// provider or cache is logged and skipped; analysis still works without them.
func NewFromConfig(cfg *model.Config, logger *slog.Logger) *Pipeline {
	p := New(OptionsFromConfig(cfg), logger)

	limiter := worker.NewLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.Burst)
	p.loader = loader.New(loader.Options{
		MaxSize:           cfg.Analysis.MaxFileSize,
		AllowedExtensions: cfg.Analysis.AllowedExtensions,
		NormalizeHindi:    cfg.Analysis.NormalizeHindi,
		RespectRobots:     cfg.HTTP.RespectRobots,
	}, p.logger).WithFetcher(
		loader.NewFetcher(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxBytes, cfg.HTTP.Insecure, cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy),
		loader.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout),
		limiter,
	)

	gen, err := llm.NewGenerator(llm.WithEnv(llm.ConfigFromModel(cfg.LLM, cfg.HTTP)))
	if err != nil {
		p.logger.Warn("LLM provider disabled", "error", err)
	} else if gen != nil {
		p.WithGenerator(llm.Throttle(gen, limiter))
	}

	store, err := cache.New(cfg.Cache)
	if err != nil {
		p.logger.Warn("report cache disabled", "error", err)
	} else if store != nil {
		p.WithCache(cache.NewReports(store, 0))
	}
	return p
}

// WithGenerator attaches a language model to every collaborator; nil means templates only
func (p *Pipeline) WithGenerator(gen llm.Generator) *Pipeline {
	p.generator = gen
	p.explainer = llm.NewExplainer(gen, p.opts.LLMTimeout, p.logger)
	p.summarizer = llm.NewSummarizer(gen, p.opts.LLMTimeout, p.logger)
	p.suggester = llm.NewSuggester(gen, p.opts.LLMTimeout, p.logger)
	p.recognizer = llm.NewRecognizer(gen, p.opts.LLMTimeout)
	return p
}

// WithLoader replaces the document loader
func (p *Pipeline) WithLoader(l *loader.Loader) *Pipeline {
	p.loader = l
	return p
}

// WithCache enables report caching
func (p *Pipeline) WithCache(reports *cache.Reports) *Pipeline {
	p.reports = reports
	return p
}

// WithRecorder enables the audit log
func (p *Pipeline) WithRecorder(r Recorder) *Pipeline {
	p.recorder = r
	return p
}

// Loader returns the document loader
func (p *Pipeline) Loader() *loader.Loader {
	return p.loader
}

// Provider names the attached language model, or "" when running on templates
func (p *Pipeline) Provider() string {
	return p.summarizer.ProviderName()
}

// AnalyzeSource loads a file or URL and analyzes it
func (p *Pipeline) AnalyzeSource(ctx context.Context, source string) (*model.Report, error) {
	doc, err := p.loader.Load(ctx, source)
	if err != nil {
		return nil, err
	}
	return p.AnalyzeDocument(ctx, doc, "")
}

// AnalyzeDocument analyzes a loaded document
func (p *Pipeline) AnalyzeDocument(ctx context.Context, doc *loader.Document, hint model.ContractType) (*model.Report, error) {
	language := string(doc.Detection.Language)
	return p.AnalyzeText(ctx, doc.Analyzed, Source{
		Name:      doc.Name,
		Origin:    doc.Source,
		Hint:      hint,
		Language:  language,
		PageCount: doc.PageCount,
		SHA256:    doc.SHA256,
	})
}

// AnalyzeText runs the full analysis over text. Collaborator failures are
// logged and never fail the analysis; only a cancelled context does.
func (p *Pipeline) AnalyzeText(ctx context.Context, text string, src Source) (*model.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	text = strings.ToValidUTF8(text, "\uFFFD")
	if src.SHA256 == "" {
		sum := sha256.Sum256([]byte(text))
		src.SHA256 = hex.EncodeToString(sum[:])
	}

	key := cache.Key(text, string(src.Hint))
	if cached, ok := p.reports.Get(key); ok {
		p.logger.Debug("report cache hit", "name", src.Name, "report", cached.ID)
		p.record(ctx, cached, src)
		return cached, nil
	}

	start := time.Now()
	in := p.engine.Analyze(text, src.Hint)
	in.Info = model.ContractInfo{
		FileName:     src.Name,
		ContractType: in.Info.ContractType,
		Language:     src.Language,
		PageCount:    src.PageCount,
		WordCount:    util.WordCount(text),
		SHA256:       src.SHA256,
	}

	if p.opts.UseNER && p.recognizer != nil {
		named, err := p.recognizer.Recognize(ctx, text)
		if err != nil {
			p.logger.Warn("named entity recognition skipped", "error", err)
		} else {
			in.Entities = extract.Merge(in.Entities, named)
		}
	}
	if p.opts.ExplainClauses {
		in.Explanations = p.explainer.ExplainAll(ctx, in.Clauses, p.opts.MaxExplanations)
	}
	summary := p.summarizer.Summarize(ctx, text, in.Info.ContractType, in.Entities, in.Risk)
	in.Summary = &summary

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r := report.Build(in)
	p.logger.Info("contract analyzed",
		"report", r.ID,
		"name", src.Name,
		"type", r.ContractInfo.ContractType,
		"clauses", len(r.Clauses),
		"risk", r.Risk.CompositeScore,
		"status", r.ExecutiveSummary.OverallStatus,
		"duration", time.Since(start),
	)

	if err := p.reports.Put(key, &r); err != nil {
		p.logger.Warn("report cache write failed", "error", err)
	}
	p.record(ctx, &r, src)
	return &r, nil
}

func (p *Pipeline) record(ctx context.Context, r *model.Report, src Source) {
	if p.recorder == nil {
		return
	}
	origin := src.Origin
	if origin == "" {
		origin = src.Name
	}
	if err := p.recorder.Record(ctx, r, origin); err != nil {
		p.logger.Warn("audit write failed", "report", r.ID, "error", err)
	}
}

// Clauses segments text for the explain and suggest commands
func (p *Pipeline) Clauses(text string) []model.Clause {
	clauses := p.engine.Segment(text)
	p.engine.scorer.ScoreClauses(clauses)
	return clauses
}

// Explain explains the selected clauses. index is zero-based; a negative index explains all.
func (p *Pipeline) Explain(ctx context.Context, text string, index int) ([]model.Explanation, error) {
	clauses, err := selectClauses(p.Clauses(text), index)
	if err != nil {
		return nil, err
	}
	if index >= 0 {
		return []model.Explanation{p.explainer.Explain(ctx, clauses[0])}, nil
	}
	return p.explainer.ExplainAll(ctx, clauses, p.opts.MaxExplanations), nil
}

// ExplainText explains a single clause given as free text
func (p *Pipeline) ExplainText(ctx context.Context, clauseText string) model.Explanation {
	return p.explainer.Explain(ctx, model.Clause{Text: clauseText, Type: extract.ClassifyClause(clauseText)})
}

// Suggest proposes alternative wording. With a negative index it covers every
// clause that needs attention.
func (p *Pipeline) Suggest(ctx context.Context, text string, index int) ([]model.Suggestion, error) {
	clauses, err := selectClauses(p.Clauses(text), index)
	if err != nil {
		return nil, err
	}

	out := []model.Suggestion{}
	for _, c := range clauses {
		if index < 0 && (c.Risk == nil || !c.Risk.RequiresAttention) {
			continue
		}
		if ctx.Err() != nil {
			return out, ctx.Err()
		}
		out = append(out, p.suggester.Suggest(ctx, c.Text, Concerns(c)))
	}
	return out, nil
}

// Concerns lists what a suggestion for the clause should address
func Concerns(c model.Clause) []string {
	var out []string
	seen := map[string]bool{}
	add := func(s string) {
		if s != "" && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	if c.Type != "" && c.Type != model.ClauseGeneral {
		add(strings.ReplaceAll(string(c.Type), "_", " ") + " clause")
	}
	if c.Risk != nil {
		for _, f := range c.Risk.Findings {
			add(strings.ToLower(util.CollapseSpace(f.Pattern)))
		}
		for _, sc := range c.Risk.SMEConcerns {
			add(strings.ReplaceAll(string(sc.Type), "_", " "))
		}
	}
	return out
}

func selectClauses(clauses []model.Clause, index int) ([]model.Clause, error) {
	if len(clauses) == 0 {
		return nil, fmt.Errorf("no clauses found")
	}
	if index < 0 {
		return clauses, nil
	}
	if index >= len(clauses) {
		return nil, fmt.Errorf("clause %d out of range (document has %d clauses)", index+1, len(clauses))
	}
	return clauses[index : index+1], nil
}
