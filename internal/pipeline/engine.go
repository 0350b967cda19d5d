package pipeline

import (
	"context"
	"strings"

	"github.com/ppiankov/contractlens/internal/ambiguity"
	"github.com/ppiankov/contractlens/internal/classify"
	"github.com/ppiankov/contractlens/internal/compliance"
	"github.com/ppiankov/contractlens/internal/detect"
	"github.com/ppiankov/contractlens/internal/extract"
	"github.com/ppiankov/contractlens/internal/model"
	"github.com/ppiankov/contractlens/internal/obligation"
	"github.com/ppiankov/contractlens/internal/report"
	"github.com/ppiankov/contractlens/internal/score"
	"github.com/ppiankov/contractlens/internal/worker"
)

// Engine runs the rule-based analyzers. It holds only compiled patterns and
// is safe for concurrent use.
type Engine struct {
	classifier  *classify.Classifier
	segmenter   *extract.Segmenter
	entities    *extract.EntityExtractor
	obligations *obligation.Analyzer
	ambiguity   *ambiguity.Detector
	detectors   *detect.Detectors
	scorer      *score.Scorer
	checker     *compliance.Checker
	workers     int
}

// NewEngine compiles every analyzer. workers bounds the scanner fan-out; 1 runs them in sequence.
func NewEngine(workers int) *Engine {
	return &Engine{
		classifier:  classify.NewClassifier(),
		segmenter:   extract.NewSegmenter(),
		entities:    extract.NewEntityExtractor(),
		obligations: obligation.NewAnalyzer(),
		ambiguity:   ambiguity.NewDetector(),
		detectors:   detect.New(),
		scorer:      score.NewScorer(),
		checker:     compliance.NewChecker(),
		workers:     max(workers, 1),
	}
}

// Segment splits text into clauses with the engine's segmenter
func (e *Engine) Segment(text string) []model.Clause {
	return e.segmenter.Segment(strings.ToValidUTF8(text, "\uFFFD"))
}

// Analyze classifies and segments text, then fans the independent scanners
// out over the worker pool. Each scanner writes its own slot, so the merged
// result does not depend on completion order. A hint other than unknown
// overrides the classifier's type for compliance. Analysis is CPU-bound and
// always runs to completion.
func (e *Engine) Analyze(text string, hint model.ContractType) report.Input {
	text = strings.ToValidUTF8(text, "\uFFFD")

	in := report.Input{Classification: e.classifier.Classify(text)}
	contractType := in.Classification.PrimaryType
	if hint != "" && hint != model.ContractUnknown {
		contractType = hint
	}
	in.Info.ContractType = contractType
	in.Clauses = e.segmenter.Segment(text)

	detections := make(model.Detections, len(model.DetectorOrder))
	tasks := []func(){
		func() { in.Entities = e.entities.Extract(text) },
		func() { in.Obligations = e.obligations.Analyze(text) },
		func() { in.Ambiguity = e.ambiguity.Detect(text) },
		func() { in.Risk = e.scorer.ScoreContract(in.Clauses) },
		func() { in.Compliance = e.checker.Check(text, contractType) },
	}
	for i, name := range model.DetectorOrder {
		tasks = append(tasks, func() { detections[i] = e.detectors.Run(name, text) })
	}

	pool := worker.NewPool(e.workers)
	pool.Start()
	for _, run := range tasks {
		pool.Submit(scanTask(run))
	}
	pool.Wait()

	in.Detections = detections
	return in
}

// scanTask adapts a scanner closure to worker.Job
type scanTask func()

func (t scanTask) Execute(ctx context.Context) worker.Result {
	t()
	return scanDone{}
}

type scanDone struct{}

func (scanDone) GetError() error { return nil }
