package score

import (
	"strings"
	"testing"

	"github.com/ppiankov/contractlens/internal/lexicon"
	"github.com/ppiankov/contractlens/internal/model"
)

const indemnityClause = "The Employer shall indemnify the Employee against any and all claims whatsoever, " +
	"including but not limited to legal costs."

func TestScorer_ScoreClause_Indemnity(t *testing.T) {
	scorer := NewScorer()

	result := scorer.ScoreClause(indemnityClause)

	// critical indemnity (3.0) + high "whatsoever" (2.0)
	if result.Score != 5.0 {
		t.Errorf("Expected score 5.0, got %.1f", result.Score)
	}
	if !result.RequiresAttention {
		t.Error("Expected clause to require attention")
	}
	if result.Level != model.RiskMedium {
		t.Errorf("Expected medium risk, got %s", result.Level)
	}
	if len(result.Findings) != 2 {
		t.Fatalf("Expected 2 findings, got %d", len(result.Findings))
	}
	if result.Findings[0].Severity != model.SeverityCritical {
		t.Errorf("Expected first finding to be critical, got %s", result.Findings[0].Severity)
	}
}

func TestScorer_ScoreClause_CashFlow(t *testing.T) {
	scorer := NewScorer()

	result := scorer.ScoreClause("Payment shall be made within 90 days of invoice.")

	if result.Score != 1.5 {
		t.Errorf("Expected score 1.5 from the SME boost, got %.1f", result.Score)
	}
	if !HasConcern(result.SMEConcerns, model.ConcernCashFlow) {
		t.Errorf("Expected cash flow concern, got %+v", result.SMEConcerns)
	}
	if result.Level != model.RiskLow {
		t.Errorf("Expected low risk, got %s", result.Level)
	}
}

func TestScorer_ScoreClause_ShortPaymentTermsAreFine(t *testing.T) {
	scorer := NewScorer()

	result := scorer.ScoreClause("Payment shall be made within 30 days of invoice.")
	if len(result.SMEConcerns) != 0 {
		t.Errorf("Expected no SME concerns for Net 30, got %+v", result.SMEConcerns)
	}
}

func TestScorer_ScoreClause_Bounds(t *testing.T) {
	scorer := NewScorer()

	inputs := []string{
		"",
		"   ",
		"\x00\xff garbage \xfe",
		strings.Repeat("whatsoever ", 20),
		strings.Repeat("unlimited liability and forfeiture of deposit. ", 10),
	}

	for _, in := range inputs {
		result := scorer.ScoreClause(in)
		if result.Score < 0 || result.Score > 10 {
			t.Errorf("Score out of range for %q: %.1f", in, result.Score)
		}
		if result.Level != model.RiskLevelFor(result.Score) {
			t.Errorf("Level %s inconsistent with score %.1f", result.Level, result.Score)
		}
	}

	clamped := scorer.ScoreClause(strings.Repeat("whatsoever ", 20))
	if clamped.Score != 10 || clamped.Level != model.RiskHigh {
		t.Errorf("Expected clamped high score of 10, got %.1f (%s)", clamped.Score, clamped.Level)
	}
}

func TestScorer_ScoreContract(t *testing.T) {
	scorer := NewScorer()

	clauses := []model.Clause{
		{Number: "1", Position: 0, Text: indemnityClause},
		{Number: "2", Position: 1, Text: "Payment shall be made within 90 days of invoice."},
		{Number: "3", Position: 2, Text: "Notices go by post."},
	}

	result := scorer.ScoreContract(clauses)

	// 0.4 * (6.5 / 3) + 0.6 * 5.0 = 3.87
	if result.CompositeScore != 3.9 {
		t.Errorf("Expected composite 3.9, got %.1f", result.CompositeScore)
	}
	if result.Level != model.RiskMedium {
		t.Errorf("Expected medium level, got %s", result.Level)
	}
	if result.Recommendation != lexicon.RecommendationLowModerate {
		t.Errorf("Unexpected recommendation: %s", result.Recommendation)
	}
	if len(result.HighRiskClauses) != 1 || result.HighRiskClauses[0].ClauseNumber != "1" {
		t.Errorf("Expected clause 1 as the only high risk clause, got %+v", result.HighRiskClauses)
	}
	if len(result.CriticalClauses) != 0 {
		t.Errorf("Expected no critical clauses, got %d", len(result.CriticalClauses))
	}
	if result.SeverityDistribution.Critical != 1 || result.SeverityDistribution.High != 1 {
		t.Errorf("Unexpected severity distribution: %+v", result.SeverityDistribution)
	}
	if result.TotalFindings != 2 {
		t.Errorf("Expected 2 findings, got %d", result.TotalFindings)
	}
	if len(result.SMEConcerns) != 1 {
		t.Errorf("Expected 1 SME concern, got %d", len(result.SMEConcerns))
	}

	for _, c := range clauses {
		if c.Risk == nil {
			t.Errorf("Expected clause %s to carry its risk", c.Number)
		}
	}
}

func TestScorer_ScoreContract_Empty(t *testing.T) {
	result := NewScorer().ScoreContract(nil)

	if result.CompositeScore != 0 {
		t.Errorf("Expected zero composite, got %.1f", result.CompositeScore)
	}
	if result.Level != model.RiskLow {
		t.Errorf("Expected low level, got %s", result.Level)
	}
	if result.Recommendation != lexicon.RecommendationLow {
		t.Errorf("Unexpected recommendation: %s", result.Recommendation)
	}
}

func TestSMESummary(t *testing.T) {
	risk := model.ContractRisk{
		CompositeScore: 7.2,
		SMEConcerns: []model.SMEConcern{
			{Type: model.ConcernCashFlow},
			{Type: model.ConcernCashFlow},
			{Type: model.ConcernExit},
		},
		CriticalClauses: []model.ClauseScore{{ClauseNumber: "4"}},
	}

	summary := SMESummary(risk)

	if summary.Assessment != lexicon.SMEAssessmentHigh {
		t.Errorf("Unexpected assessment: %s", summary.Assessment)
	}
	if len(summary.KeyConcerns) != 2 {
		t.Errorf("Expected 2 key concerns, got %v", summary.KeyConcerns)
	}
	if len(summary.ActionItems) != 2 || summary.ActionItems[0] != lexicon.SMECashFlowAction {
		t.Errorf("Unexpected action items: %v", summary.ActionItems)
	}
	if len(summary.NegotiationPoints) != 1 {
		t.Errorf("Expected a negotiation point for critical clauses, got %v", summary.NegotiationPoints)
	}
}
