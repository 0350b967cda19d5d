package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/contractlens/internal/cache"
	"github.com/ppiankov/contractlens/internal/llm"
	"github.com/ppiankov/contractlens/internal/model"
)

const sampleContract = "1. PARTIES\n" +
	"This Agreement is made between Acme Corp and Beta Ltd for consulting services.\n" +
	"2. PAYMENT\n" +
	"The Client shall pay the fee within 30 days of each invoice.\n" +
	"3. INDEMNITY\n" +
	"The Employer shall indemnify the Employee against any and all claims whatsoever, " +
	"including but not limited to legal costs.\n"

type stubGenerator struct {
	mu    sync.Mutex
	calls int
}

func (g *stubGenerator) Name() string { return "stub" }

func (g *stubGenerator) Generate(ctx context.Context, system, prompt string) (*llm.Response, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	if system == llm.EntityExtractionSystem {
		return &llm.Response{Text: `{"organizations": ["Acme Corp"], "persons": [], "locations": ["Mumbai"]}`}, nil
	}
	return &llm.Response{Text: "stub reply"}, nil
}

func (g *stubGenerator) IsAvailable(ctx context.Context) bool { return true }

type recorder struct {
	sources []string
	ids     []string
}

func (r *recorder) Record(ctx context.Context, rep *model.Report, source string) error {
	r.sources = append(r.sources, source)
	r.ids = append(r.ids, rep.ID)
	return nil
}

func TestAnalyzeText(t *testing.T) {
	p := New(Options{Workers: 4}, nil)

	r, err := p.AnalyzeText(context.Background(), sampleContract, Source{Name: "msa.txt"})
	require.NoError(t, err)

	sum := sha256.Sum256([]byte(sampleContract))
	assert.True(t, strings.HasPrefix(r.ID, "CR-"))
	assert.Equal(t, "msa.txt", r.ContractInfo.FileName)
	assert.Equal(t, hex.EncodeToString(sum[:]), r.ContractInfo.SHA256)
	assert.Positive(t, r.ContractInfo.WordCount)
	assert.Len(t, r.Clauses, 3)
	assert.Len(t, r.Detections, len(model.DetectorOrder))
	assert.True(t, r.Detections.Get(model.DetectorIndemnity).Found)

	require.NotNil(t, r.Summary)
	assert.Equal(t, model.SourceExtracted, r.Summary.Source)
	assert.Empty(t, r.Summary.AISummary)
	assert.Empty(t, r.Explanations)
}

func TestAnalyzeText_HintOverridesClassifier(t *testing.T) {
	p := New(Options{}, nil)

	r, err := p.AnalyzeText(context.Background(), sampleContract, Source{Hint: model.ContractLease})
	require.NoError(t, err)
	assert.Equal(t, model.ContractLease, r.ContractInfo.ContractType)
	assert.Equal(t, model.ContractLease, r.Compliance.ContractType)
}

func TestAnalyzeText_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Options{}, nil).AnalyzeText(ctx, sampleContract, Source{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyzeText_CacheAndAudit(t *testing.T) {
	rec := &recorder{}
	reports := cache.NewReports(cache.NewMemoryCache(time.Hour, time.Hour), time.Hour)
	p := New(Options{}, nil).WithCache(reports).WithRecorder(rec)

	first, err := p.AnalyzeText(context.Background(), sampleContract, Source{Name: "a.txt", Origin: "/tmp/a.txt"})
	require.NoError(t, err)
	second, err := p.AnalyzeText(context.Background(), sampleContract, Source{Name: "a.txt"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, []string{"/tmp/a.txt", "a.txt"}, rec.sources)

	// A different hint is a different cache entry
	third, err := p.AnalyzeText(context.Background(), sampleContract, Source{Hint: model.ContractNDA})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, third.ID)
}

func TestAnalyzeText_WithGenerator(t *testing.T) {
	gen := &stubGenerator{}
	p := New(Options{ExplainClauses: true, UseNER: true}, nil).WithGenerator(gen)

	r, err := p.AnalyzeText(context.Background(), sampleContract, Source{})
	require.NoError(t, err)

	assert.Equal(t, "stub", p.Provider())
	require.NotNil(t, r.Summary)
	assert.Equal(t, model.SourceAI, r.Summary.Source)
	assert.Equal(t, "stub reply", r.Summary.AISummary)
	assert.Contains(t, r.Entities.Organizations, "Acme Corp")
	assert.Contains(t, r.Entities.Locations, "Mumbai")

	require.NotEmpty(t, r.Explanations)
	for _, e := range r.Explanations {
		assert.Equal(t, model.SourceAI, e.Source)
	}
}

func TestAnalyzeSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contract.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleContract), 0o644))

	rec := &recorder{}
	r, err := New(Options{}, nil).WithRecorder(rec).AnalyzeSource(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "contract.txt", r.ContractInfo.FileName)
	assert.Equal(t, "en", r.ContractInfo.Language)
	assert.Equal(t, []string{path}, rec.sources)
}

func TestAnalyzeSource_Missing(t *testing.T) {
	_, err := New(Options{}, nil).AnalyzeSource(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestEngine_DeterministicAcrossWorkerCounts(t *testing.T) {
	serial := NewEngine(1).Analyze(sampleContract, "")
	parallel := NewEngine(8).Analyze(sampleContract, "")
	assert.Equal(t, serial, parallel)
}

func TestEngine_EmptyText(t *testing.T) {
	in := NewEngine(2).Analyze("", "")
	assert.Empty(t, in.Clauses)
	assert.Len(t, in.Detections, len(model.DetectorOrder))
	assert.Zero(t, in.Risk.CompositeScore)
}

func TestExplain(t *testing.T) {
	p := New(Options{}, nil)

	one, err := p.Explain(context.Background(), sampleContract, 2)
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "3", one[0].ClauseNumber)
	assert.Equal(t, model.SourceTemplate, one[0].Source)

	_, err = p.Explain(context.Background(), sampleContract, 7)
	assert.ErrorContains(t, err, "out of range")

	_, err = p.Explain(context.Background(), "   ", -1)
	assert.ErrorContains(t, err, "no clauses")
}

func TestExplainText(t *testing.T) {
	e := New(Options{}, nil).ExplainText(context.Background(), "Termination: either party can terminate the engagement immediately for material breach.")
	assert.Equal(t, model.ClauseTermination, e.ClauseType)
	assert.Equal(t, model.SourceTemplate, e.Source)
	assert.NotEmpty(t, e.Explanation)
}

func TestSuggest(t *testing.T) {
	p := New(Options{}, nil)

	out, err := p.Suggest(context.Background(), sampleContract, -1)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Contains(t, out[0].OriginalClause, "indemnify")
	assert.Equal(t, model.SourceTemplate, out[0].Source)
	assert.NotEmpty(t, out[0].AlternativeText)

	single, err := p.Suggest(context.Background(), sampleContract, 0)
	require.NoError(t, err)
	require.Len(t, single, 1)
	assert.Contains(t, single[0].OriginalClause, "Acme Corp")
}

func TestConcerns(t *testing.T) {
	c := model.Clause{
		Type: model.ClausePaymentTerms,
		Risk: &model.ClauseRisk{
			Findings: []model.Finding{
				{Pattern: "Unlimited  Liability"},
				{Pattern: "unlimited liability"},
			},
			SMEConcerns: []model.SMEConcern{{Type: model.ConcernCashFlow}},
		},
	}
	assert.Equal(t, []string{"payment terms clause", "unlimited liability", "cash flow risk"}, Concerns(c))
	assert.Empty(t, Concerns(model.Clause{Type: model.ClauseGeneral}))
}

func TestNewFromConfig(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Cache.Dir = t.TempDir()
	cfg.LLM.Provider = "no-such-provider"

	p := NewFromConfig(&cfg, nil)
	require.NotNil(t, p)
	assert.Empty(t, p.Provider())
	assert.NotNil(t, p.reports)
	assert.Equal(t, cfg.Analysis.MaxExplanations, p.opts.MaxExplanations)
	assert.Equal(t, 30*time.Second, p.opts.LLMTimeout)
}
