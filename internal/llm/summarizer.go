package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/ppiankov/contractlens/internal/model"
)

const maxSummaryItems = 5

// plainReplacements is applied in order, lower-case and capitalized forms
var plainReplacements = [][2]string{
	{"hereinafter", "from now on"},
	{"whereas", "because"},
	{"notwithstanding", "despite"},
	{"pursuant to", "according to"},
	{"aforementioned", "mentioned earlier"},
	{"hereunder", "under this agreement"},
	{"hereto", "to this agreement"},
	{"shall", "will"},
	{"thereof", "of that"},
	{"therein", "in that"},
	{"whereby", "by which"},
	{"forthwith", "immediately"},
}

// Summarizer produces the contract digest and plain-language rewrites
type Summarizer struct {
	gen     Generator
	timeout time.Duration
	logger  *slog.Logger
}

// NewSummarizer creates a summarizer; gen may be nil
func NewSummarizer(gen Generator, timeout time.Duration, logger *slog.Logger) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Summarizer{gen: gen, timeout: timeout, logger: logger}
}

// IsEnabled reports whether a generator is configured
func (s *Summarizer) IsEnabled() bool {
	return s.gen != nil
}

// ProviderName returns the configured provider or ""
func (s *Summarizer) ProviderName() string {
	if s.gen == nil {
		return ""
	}
	return s.gen.Name()
}

// Summarize always returns the structured digest and quick facts; the AI
// summary is attached only when generation succeeds
func (s *Summarizer) Summarize(ctx context.Context, text string, contractType model.ContractType, entities model.Entities, risk model.ContractRisk) model.ContractSummary {
	summary := model.ContractSummary{
		Structured: Structured(entities, risk),
		QuickFacts: QuickFacts(entities),
		Source:     model.SourceExtracted,
	}

	typeHint := ""
	if contractType != model.ContractUnknown {
		typeHint = string(contractType)
	}
	ai, err := call(ctx, s.gen, s.timeout, LegalAssistantSystem, SummaryPrompt(text, typeHint))
	if err != nil {
		if s.gen != nil {
			s.logger.Warn("AI summary unavailable", "provider", s.gen.Name(), "error", err)
		}
		return summary
	}

	summary.AISummary = ai
	summary.Source = model.SourceAI
	return summary
}

// Structured builds the pattern-derived digest
func Structured(entities model.Entities, risk model.ContractRisk) model.StructuredSummary {
	out := model.StructuredSummary{
		Parties:        []string{},
		KeyDates:       []string{},
		FinancialTerms: []string{},
		RiskLevel:      risk.Level,
		RiskScore:      risk.CompositeScore,
	}
	for _, p := range entities.Parties {
		out.Parties = append(out.Parties, p.Name)
	}
	for _, d := range entities.Dates[:min(len(entities.Dates), maxSummaryItems)] {
		out.KeyDates = append(out.KeyDates, d.Raw)
	}
	for _, a := range entities.Amounts[:min(len(entities.Amounts), maxSummaryItems)] {
		out.FinancialTerms = append(out.FinancialTerms, money(a))
	}
	if len(entities.Durations) > 0 {
		out.Duration = entities.Durations[0].Raw
	}
	return out
}

// QuickFacts lists the headline facts that can be read off the entities
func QuickFacts(entities model.Entities) []string {
	facts := []string{}

	if len(entities.Parties) >= 2 {
		facts = append(facts, fmt.Sprintf("Agreement between %s and %s", entities.Parties[0].Name, entities.Parties[1].Name))
	}
	if len(entities.Amounts) > 0 {
		largest := entities.Amounts[0]
		for _, a := range entities.Amounts[1:] {
			if a.Value > largest.Value {
				largest = a
			}
		}
		facts = append(facts, "Contract value: "+money(largest))
	}
	if len(entities.Durations) > 0 {
		facts = append(facts, "Duration: "+entities.Durations[0].Raw)
	}
	if len(entities.Jurisdictions) > 0 {
		facts = append(facts, "Jurisdiction: "+entities.Jurisdictions[0])
	}
	return facts
}

func money(a model.Amount) string {
	return a.Currency + " " + strconv.FormatFloat(a.Value, 'f', -1, 64)
}

// Simplify rewrites legal text in plain language, falling back to fixed substitutions
func (s *Summarizer) Simplify(ctx context.Context, text string) (string, model.ExplanationSource) {
	out, err := call(ctx, s.gen, s.timeout, ClauseExplanationSystem, SimplifyPrompt(text))
	if err == nil {
		return out, model.SourceAI
	}
	if s.gen != nil {
		s.logger.Warn("simplification fell back to substitutions", "error", err)
	}
	return SimplifyRules(text), model.SourceTemplate
}

// SimplifyRules applies the fixed legal-to-plain substitutions
func SimplifyRules(text string) string {
	for _, r := range plainReplacements {
		text = strings.ReplaceAll(text, r[0], r[1])
		text = strings.ReplaceAll(text, capitalize(r[0]), capitalize(r[1]))
	}
	return text
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
