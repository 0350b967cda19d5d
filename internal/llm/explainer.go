package llm

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ppiankov/contractlens/internal/model"
)

// MinExplainLen is the exclusive lower bound on clause length for batch explanation
const MinExplainLen = 50

var fallbackExplanations = map[model.ClauseType]string{
	model.ClauseIndemnity:            "This clause requires one party to compensate the other for losses, damages, or legal costs. It essentially means you agree to pay for certain problems that might arise.",
	model.ClauseTermination:          "This clause explains how and when the contract can be ended. It may specify notice periods, reasons for termination, and what happens when the contract ends.",
	model.ClauseConfidentiality:      "This clause requires you to keep certain information private and not share it with others. Violating this could lead to legal consequences.",
	model.ClausePaymentTerms:         "This clause specifies how and when payments should be made, including amounts, due dates, and any penalties for late payment.",
	model.ClauseGoverningLaw:         "This clause determines which location's laws will apply if there's a dispute. It can significantly affect your rights and where any legal proceedings would take place.",
	model.ClauseForceMajeure:         "This clause covers situations beyond anyone's control (like natural disasters). It usually allows the contract to be paused or cancelled without penalty in such cases.",
	model.ClauseIntellectualProperty: "This clause deals with ownership of ideas, inventions, creative works, and other intangible assets. It's important to understand who owns what during and after the contract.",
	model.ClauseDisputeResolution:    "This clause explains how disagreements will be handled - through courts, arbitration, or other methods. The chosen method can affect cost, time, and privacy.",
	model.ClauseAssignment:           "This clause controls whether you can transfer your rights or obligations under this contract to someone else.",
	model.ClauseAmendment:            "This clause explains how the contract can be changed or modified after signing.",
}

// Explainer renders clauses in plain language
type Explainer struct {
	gen     Generator
	timeout time.Duration
	logger  *slog.Logger
}

// NewExplainer creates an explainer; gen may be nil
func NewExplainer(gen Generator, timeout time.Duration, logger *slog.Logger) *Explainer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Explainer{gen: gen, timeout: timeout, logger: logger}
}

// Explain returns a model explanation when one can be generated, a template otherwise
func (e *Explainer) Explain(ctx context.Context, clause model.Clause) model.Explanation {
	out := model.Explanation{
		ClauseNumber: clause.Number,
		ClauseType:   clause.Type,
		OriginalText: clause.Text,
	}

	text, err := call(ctx, e.gen, e.timeout, ClauseExplanationSystem, ExplainClausePrompt(clause.Text, string(clause.Type)))
	if err == nil {
		out.Explanation = text
		out.Source = model.SourceAI
		return out
	}
	if e.gen != nil {
		e.logger.Warn("clause explanation fell back to template", "clause", clause.Number, "error", err)
	}

	out.Explanation = TemplateExplanation(clause.Text, clause.Type)
	out.Source = model.SourceTemplate
	return out
}

// ExplainAll explains every clause longer than MinExplainLen, up to limit (0 means no limit)
func (e *Explainer) ExplainAll(ctx context.Context, clauses []model.Clause, limit int) []model.Explanation {
	var out []model.Explanation
	for _, c := range clauses {
		if limit > 0 && len(out) >= limit {
			break
		}
		if utf8.RuneCountInString(c.Text) <= MinExplainLen {
			continue
		}
		if ctx.Err() != nil {
			break
		}
		out = append(out, e.Explain(ctx, c))
	}
	return out
}

// TemplateExplanation is the rule-based explanation for a clause
func TemplateExplanation(text string, clauseType model.ClauseType) string {
	base, ok := fallbackExplanations[clauseType]
	if !ok {
		base = basicAnalysis(text)
	}
	return "Clause explanation (rule-based analysis)\n\n" + base
}

func basicAnalysis(text string) string {
	lower := strings.ToLower(text)

	var elements []string
	if strings.Contains(lower, "shall") || strings.Contains(lower, "must") {
		elements = append(elements, "This clause creates obligations - things that must be done.")
	}
	if strings.Contains(lower, "shall not") || strings.Contains(lower, "must not") {
		elements = append(elements, "This clause includes prohibitions - things that cannot be done.")
	}
	if strings.Contains(lower, "may") {
		elements = append(elements, "This clause grants certain rights or permissions.")
	}
	if len(elements) == 0 {
		elements = append(elements, "This clause sets out general terms and conditions.")
	}
	return strings.Join(elements, "\n")
}
