package llm

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/ppiankov/contractlens/internal/model"
)

type alternative struct {
	issue      string
	pattern    *regexp.Regexp
	suggestion string
	reasoning  string
}

// standardAlternatives is checked in order; the first matching pattern wins
var standardAlternatives = []alternative{
	{
		issue:      "unlimited_indemnity",
		pattern:    regexp.MustCompile(`(?is)indemnif.*all claims`),
		suggestion: "Limit indemnification to claims arising from the indemnifying party's gross negligence or willful misconduct, with a cap equal to the total contract value.",
		reasoning:  "Unlimited indemnification exposes you to potentially unlimited liability. Limiting it to gross negligence/willful misconduct and capping the amount provides reasonable protection for both parties.",
	},
	{
		issue:      "unilateral_termination",
		pattern:    regexp.MustCompile(`(?is)terminat.*without (?:cause|notice)`),
		suggestion: "Either party may terminate this Agreement by providing thirty (30) days written notice to the other party.",
		reasoning:  "Unilateral termination without notice leaves you vulnerable. Requiring notice period gives time to prepare and find alternatives.",
	},
	{
		issue:      "broad_non_compete",
		pattern:    regexp.MustCompile(`(?is)non-?compet.*(?:worldwide|perpetual|anywhere)`),
		suggestion: "The non-compete restriction shall be limited to [specific geographic area] for a period of twelve (12) months following termination.",
		reasoning:  "Overly broad non-compete clauses may be unenforceable and unfairly restrictive. Reasonable time and geographic limits protect legitimate interests while allowing you to earn a living.",
	},
	{
		issue:      "ip_full_transfer",
		pattern:    regexp.MustCompile(`(?is)assign(?:s)? all.*intellectual property`),
		suggestion: "Client shall receive a perpetual, non-exclusive license to use deliverables. Original intellectual property and tools developed prior to the engagement shall remain with the service provider.",
		reasoning:  "Full IP transfer may give away more than intended. Retaining background IP while licensing deliverables is a fairer arrangement.",
	},
	{
		issue:      "long_payment_terms",
		pattern:    regexp.MustCompile(`(?is)payment.*(?:60|90|120) days|net (?:60|90|120)`),
		suggestion: "Payment shall be made within thirty (30) days of invoice date. Interest at 1.5% per month shall apply to overdue amounts.",
		reasoning:  "Long payment terms strain cash flow for small businesses. 30 days is standard and more manageable.",
	},
	{
		issue:      "one_sided_liability",
		pattern:    regexp.MustCompile(`(?is)liability.*limited.*fees paid`),
		suggestion: "Neither party's liability shall exceed the total fees paid or payable under this Agreement during the twelve (12) months preceding the claim.",
		reasoning:  "Symmetric liability caps ensure both parties share risk equally.",
	},
}

const genericReasoning = "Generic suggestion based on identified concerns."

// Suggester proposes fairer wording for problematic clauses
type Suggester struct {
	gen     Generator
	timeout time.Duration
	logger  *slog.Logger
}

// NewSuggester creates a suggester; gen may be nil
func NewSuggester(gen Generator, timeout time.Duration, logger *slog.Logger) *Suggester {
	if logger == nil {
		logger = slog.Default()
	}
	return &Suggester{gen: gen, timeout: timeout, logger: logger}
}

// Suggest returns model-written wording when available, a standard template otherwise
func (s *Suggester) Suggest(ctx context.Context, clauseText string, concerns []string) model.Suggestion {
	out := model.Suggestion{
		OriginalClause: clauseText,
		Concerns:       append([]string{}, concerns...),
	}

	text, err := call(ctx, s.gen, s.timeout, ClauseSuggestionSystem, SuggestAlternativePrompt(clauseText, concerns))
	if err == nil {
		out.AlternativeText = text
		out.Source = model.SourceAI
		return out
	}
	if s.gen != nil {
		s.logger.Warn("clause suggestion fell back to template", "error", err)
	}

	alt, reasoning, issue := TemplateSuggestion(clauseText, concerns)
	out.AlternativeText = alt
	out.Reasoning = reasoning
	out.Issue = issue
	out.Source = model.SourceTemplate
	return out
}

// TemplateSuggestion picks the first matching standard alternative, or
// builds generic advice from the concern wording
func TemplateSuggestion(clauseText string, concerns []string) (text, reasoning, issue string) {
	for _, alt := range standardAlternatives {
		if alt.pattern.MatchString(clauseText) {
			return alt.suggestion, alt.reasoning, alt.issue
		}
	}
	return genericSuggestion(concerns), genericReasoning, ""
}

func genericSuggestion(concerns []string) string {
	var items []string
	for _, c := range concerns {
		lower := strings.ToLower(c)
		if strings.Contains(lower, "liability") {
			items = append(items, "Consider adding a mutual liability cap")
		}
		if strings.Contains(lower, "termination") {
			items = append(items, "Request mutual termination rights with notice period")
		}
		if strings.Contains(lower, "payment") {
			items = append(items, "Negotiate for shorter payment terms (Net 30)")
		}
	}
	if len(items) == 0 {
		items = []string{
			"Consider negotiating for more balanced terms",
			"Request that rights and obligations be mutual",
		}
	}
	return "Suggested improvements:\n- " + strings.Join(items, "\n- ")
}

// NegotiationPoints lists talking points for a clause at the given risk level
func NegotiationPoints(clauseText string, level model.RiskLevel) []string {
	lower := strings.ToLower(clauseText)
	var points []string

	if level == model.RiskMedium || level == model.RiskHigh {
		if strings.Contains(lower, "indemnify") {
			points = append(points,
				"Request to limit indemnification to direct damages only",
				"Add a cap on indemnification equal to contract value",
				"Require mutual indemnification obligations",
			)
		}
		if strings.Contains(lower, "terminate") && strings.Contains(lower, "without") {
			points = append(points,
				"Request minimum 30-day notice period for termination",
				"Add cure period for termination due to breach",
				"Request mutual termination rights",
			)
		}
		if strings.Contains(lower, "penalty") || strings.Contains(lower, "liquidated damages") {
			points = append(points,
				"Request reduction in penalty amounts",
				"Add cap on total penalties",
				"Ensure penalties are proportionate to potential damage",
			)
		}
		if strings.Contains(lower, "exclusive") && (strings.Contains(lower, "jurisdiction") || strings.Contains(lower, "arbitration")) {
			points = append(points,
				"Request jurisdiction in a mutually convenient location",
				"Consider adding online dispute resolution option",
				"Request cost-sharing for dispute resolution",
			)
		}
	}

	if len(points) == 0 {
		points = []string{
			"Review all obligations to ensure they are achievable",
			"Clarify any ambiguous terms before signing",
			"Request written clarification of any verbal promises",
		}
	}
	return points
}
