package score

import (
	"regexp"

	"github.com/ppiankov/contractlens/internal/lexicon"
	"github.com/ppiankov/contractlens/internal/model"
	"github.com/ppiankov/contractlens/internal/util"
)

type tier struct {
	severity model.Severity
	weight   float64
	patterns []*regexp.Regexp
}

type smePattern struct {
	kind model.SMEConcernType
	expr string
	re   *regexp.Regexp
}

// Scorer rates clause text against weighted severity tiers and SME concerns
type Scorer struct {
	tiers []tier
	sme   []smePattern
}

// NewScorer creates a new scorer with compiled tier and SME patterns
func NewScorer() *Scorer {
	s := &Scorer{}
	for _, t := range lexicon.RiskTiers {
		compiled := tier{severity: t.Severity, weight: t.Weight}
		for _, expr := range t.Patterns {
			compiled.patterns = append(compiled.patterns, regexp.MustCompile(`(?i)`+expr))
		}
		s.tiers = append(s.tiers, compiled)
	}
	for _, family := range lexicon.SMEConcerns {
		for _, expr := range family.Patterns {
			s.sme = append(s.sme, smePattern{kind: family.Type, expr: expr, re: regexp.MustCompile(`(?i)` + expr)})
		}
	}
	return s
}

// ScoreClause calculates the weighted risk of a text span.
// Every tier match adds its weight; every SME pattern that matches adds the
// SME boost once. The total is clamped to [0, 10].
func (s *Scorer) ScoreClause(text string) model.ClauseRisk {
	findings := []model.Finding{}
	concerns := []model.SMEConcern{}
	total := 0.0

	for _, t := range s.tiers {
		for _, re := range t.patterns {
			for _, m := range re.FindAllString(text, -1) {
				findings = append(findings, model.Finding{
					Pattern:  m,
					Severity: t.severity,
					Weight:   t.weight,
				})
				total += t.weight
			}
		}
	}

	for _, p := range s.sme {
		if p.re.MatchString(text) {
			concerns = append(concerns, model.SMEConcern{Type: p.kind, Pattern: p.expr})
			total += lexicon.SMEConcernBoost
		}
	}

	raw := min(lexicon.MaxRiskScore, total)
	return model.ClauseRisk{
		Score:             util.Round(raw, 1),
		Level:             model.RiskLevelFor(raw),
		Findings:          findings,
		SMEConcerns:       concerns,
		RequiresAttention: raw >= lexicon.AttentionThreshold,
	}
}

// ScoreClauses scores each clause, attaching the risk to the clause in place
func (s *Scorer) ScoreClauses(clauses []model.Clause) []model.ClauseScore {
	scores := make([]model.ClauseScore, 0, len(clauses))
	for i := range clauses {
		risk := s.ScoreClause(clauses[i].Text)
		clauses[i].Risk = &risk
		scores = append(scores, model.ClauseScore{
			ClauseNumber: clauses[i].Number,
			Position:     clauses[i].Position,
			Risk:         risk,
		})
	}
	return scores
}

// ScoreContract aggregates clause scores. The composite weighs the mean
// clause score 0.4 and the worst clause 0.6; no clauses yields zero.
func (s *Scorer) ScoreContract(clauses []model.Clause) model.ContractRisk {
	result := model.ContractRisk{
		ClauseScores:    s.ScoreClauses(clauses),
		CriticalClauses: []model.ClauseScore{},
		HighRiskClauses: []model.ClauseScore{},
		SMEConcerns:     []model.SMEConcern{},
	}

	var sum, worst float64
	for _, cs := range result.ClauseScores {
		sum += cs.Risk.Score
		worst = max(worst, cs.Risk.Score)

		for _, f := range cs.Risk.Findings {
			switch f.Severity {
			case model.SeverityCritical:
				result.SeverityDistribution.Critical++
			case model.SeverityHigh:
				result.SeverityDistribution.High++
			case model.SeverityMedium:
				result.SeverityDistribution.Medium++
			default:
				result.SeverityDistribution.Low++
			}
		}
		result.TotalFindings += len(cs.Risk.Findings)
		result.SMEConcerns = append(result.SMEConcerns, cs.Risk.SMEConcerns...)

		switch {
		case cs.Risk.Score >= lexicon.CriticalThreshold:
			result.CriticalClauses = append(result.CriticalClauses, cs)
		case cs.Risk.Score >= lexicon.AttentionThreshold:
			result.HighRiskClauses = append(result.HighRiskClauses, cs)
		}
	}

	composite := 0.0
	if n := len(result.ClauseScores); n > 0 {
		composite = lexicon.CompositeMeanWeight*(sum/float64(n)) + lexicon.CompositeWorstWeight*worst
	}

	result.CompositeScore = util.Round(composite, 1)
	result.Level = model.RiskLevelFor(composite)
	result.Recommendation = recommendation(composite)
	return result
}

func recommendation(composite float64) string {
	switch {
	case composite >= 7:
		return lexicon.RecommendationHigh
	case composite >= 5:
		return lexicon.RecommendationModerate
	case composite >= 3:
		return lexicon.RecommendationLowModerate
	default:
		return lexicon.RecommendationLow
	}
}

// SMESummary turns a contract risk into business-impact guidance.
// Each concern type contributes its text once.
func SMESummary(risk model.ContractRisk) model.SMESummary {
	summary := model.SMESummary{
		KeyConcerns:       []string{},
		ActionItems:       []string{},
		NegotiationPoints: []string{},
	}

	switch {
	case risk.CompositeScore >= 7:
		summary.Assessment = lexicon.SMEAssessmentHigh
	case risk.CompositeScore >= 5:
		summary.Assessment = lexicon.SMEAssessmentModerate
	default:
		summary.Assessment = lexicon.SMEAssessmentLow
	}

	seen := make(map[model.SMEConcernType]bool)
	for _, c := range risk.SMEConcerns {
		if seen[c.Type] {
			continue
		}
		seen[c.Type] = true

		switch c.Type {
		case model.ConcernCashFlow:
			summary.KeyConcerns = append(summary.KeyConcerns, lexicon.SMECashFlowConcern)
			summary.ActionItems = append(summary.ActionItems, lexicon.SMECashFlowAction)
		case model.ConcernResource:
			summary.KeyConcerns = append(summary.KeyConcerns, lexicon.SMEResourceConcern)
		case model.ConcernExit:
			summary.KeyConcerns = append(summary.KeyConcerns, lexicon.SMEExitConcern)
			summary.ActionItems = append(summary.ActionItems, lexicon.SMEExitAction)
		}
	}

	if len(risk.CriticalClauses) > 0 {
		summary.NegotiationPoints = append(summary.NegotiationPoints, lexicon.SMECriticalPoint)
	}
	return summary
}

// HasConcern reports whether any SME concern of the given type fired
func HasConcern(concerns []model.SMEConcern, kind model.SMEConcernType) bool {
	for _, c := range concerns {
		if c.Type == kind {
			return true
		}
	}
	return false
}
