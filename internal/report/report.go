// Package report merges the analyzer outputs into a single read-only report.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ppiankov/contractlens/internal/classify"
	"github.com/ppiankov/contractlens/internal/compliance"
	"github.com/ppiankov/contractlens/internal/extract"
	"github.com/ppiankov/contractlens/internal/lexicon"
	"github.com/ppiankov/contractlens/internal/model"
	"github.com/ppiankov/contractlens/internal/score"
	"github.com/ppiankov/contractlens/internal/util"
)

// Input carries every analyzer output the aggregator consumes
type Input struct {
	Info           model.ContractInfo
	Classification model.Classification
	Clauses        []model.Clause
	Entities       model.Entities
	Obligations    model.ObligationAnalysis
	Ambiguity      model.AmbiguityResult
	Detections     model.Detections
	Risk           model.ContractRisk
	Compliance     model.ComplianceResult

	Explanations []model.Explanation
	Summary      *model.ContractSummary
}

// NewID returns a fresh report identifier
func NewID() string {
	return "CR-" + strings.ToUpper(uuid.NewString()[:8])
}

// Build assembles the report. It never fails; missing inputs yield empty sections.
func Build(in Input) model.Report {
	info := in.Info
	if info.ContractType == "" {
		info.ContractType = in.Classification.PrimaryType
	}
	if info.ContractType == "" {
		info.ContractType = model.ContractUnknown
	}
	if info.TypeLabel == "" {
		info.TypeLabel = classify.Label(info.ContractType)
	}

	risk := in.Risk
	if len(risk.ClauseScores) > lexicon.MaxReportedClauses {
		risk.ClauseScores = risk.ClauseScores[:lexicon.MaxReportedClauses]
	}

	return model.Report{
		ID:                NewID(),
		GeneratedAt:       time.Now().UTC(),
		Version:           lexicon.Version,
		ContractInfo:      info,
		ExecutiveSummary:  ExecutiveSummary(in.Risk, in.Detections, in.Compliance),
		Classification:    in.Classification,
		Clauses:           in.Clauses,
		ClauseSummary:     extract.Summarize(in.Clauses),
		Entities:          in.Entities,
		Terms:             Terms(in.Entities),
		Obligations:       in.Obligations,
		ObligationDigest:  Digest(in.Obligations),
		Ambiguity:         in.Ambiguity,
		Detections:        in.Detections,
		Risk:              risk,
		SMESummary:        score.SMESummary(in.Risk),
		Compliance:        in.Compliance,
		ComplianceSummary: compliance.Summary(in.Compliance),
		KeyFindings:       KeyFindings(in.Detections, in.Obligations),
		Recommendations:   Recommendations(in.Risk, in.Detections, in.Compliance),
		NextSteps:         NextSteps(in.Risk.CompositeScore),
		Explanations:      in.Explanations,
		Summary:           in.Summary,
	}
}

// Status classifies a composite score and a high-risk detector count
func Status(composite float64, highRisk int) model.OverallStatus {
	switch {
	case composite >= lexicon.HighRiskScore || highRisk >= lexicon.HighRiskItems:
		return model.StatusHighRisk
	case composite >= lexicon.ModerateRiskScore || highRisk >= 1:
		return model.StatusModerateRisk
	default:
		return model.StatusLowRisk
	}
}

// ExecutiveSummary builds the top-of-report verdict
func ExecutiveSummary(risk model.ContractRisk, detections model.Detections, comp model.ComplianceResult) model.ExecutiveSummary {
	highRisk := detections.HighRiskCount()
	status := Status(risk.CompositeScore, highRisk)
	text := lexicon.StatusTexts[status]

	return model.ExecutiveSummary{
		OverallStatus:         status,
		StatusColor:           text.Color,
		RiskScore:             risk.CompositeScore,
		ComplianceScore:       comp.Score,
		HighRiskItems:         highRisk,
		PrimaryRecommendation: text.Recommendation,
		OneLiner:              oneLiner(risk.CompositeScore, highRisk),
	}
}

// oneLiner follows the score band alone, so a low score with high-risk
// detectors still reads as low
func oneLiner(composite float64, highRisk int) string {
	switch {
	case composite >= lexicon.HighRiskScore:
		return fmt.Sprintf(lexicon.StatusTexts[model.StatusHighRisk].OneLiner, highRisk)
	case composite >= lexicon.ModerateRiskScore:
		return lexicon.StatusTexts[model.StatusModerateRisk].OneLiner
	default:
		return lexicon.StatusTexts[model.StatusLowRisk].OneLiner
	}
}

// KeyFindings lists the high-severity detector findings (at most two per
// detector, taken from each detector's first two) followed by up to three
// one-sided concerns, in that order and capped overall.
func KeyFindings(detections model.Detections, obligations model.ObligationAnalysis) []model.KeyFinding {
	findings := []model.KeyFinding{}

	for _, d := range detections {
		if !d.Found {
			continue
		}
		for _, f := range d.Findings[:min(len(d.Findings), lexicon.MaxFindingsPerType)] {
			if f.Severity != model.SeverityHigh {
				continue
			}
			findings = append(findings, model.KeyFinding{
				Category:       Category(d.Detector),
				Severity:       "HIGH",
				Description:    util.Truncate(f.Pattern, lexicon.FindingDescriptionLen),
				Context:        util.Truncate(f.Context, lexicon.FindingContextLen),
				Recommendation: d.Recommendation,
				Priority:       model.PriorityHigh,
			})
		}
	}

	concerns := obligations.OneSided.Concerns
	for _, c := range concerns[:min(len(concerns), lexicon.MaxOneSidedFindings)] {
		findings = append(findings, model.KeyFinding{
			Category:       lexicon.OneSidedCategory,
			Severity:       "MEDIUM",
			Description:    c,
			Recommendation: lexicon.OneSidedRecommendation,
			Priority:       model.PriorityMedium,
		})
	}

	if len(findings) > lexicon.MaxKeyFindings {
		findings = findings[:lexicon.MaxKeyFindings]
	}
	return findings
}

// Recommendations merges detector advice, compliance advice and a single
// cash-flow action when any cash-flow concern was scored
func Recommendations(risk model.ContractRisk, detections model.Detections, comp model.ComplianceResult) []model.Recommendation {
	recs := []model.Recommendation{}

	for _, d := range detections {
		if !d.Found || d.Recommendation == "" {
			continue
		}
		priority := model.PriorityMedium
		if d.HasBroadIndemnity || d.HasFullTransfer {
			priority = model.PriorityHigh
		}
		recs = append(recs, model.Recommendation{
			Category: Category(d.Detector),
			Action:   d.Recommendation,
			Priority: priority,
		})
	}

	for _, r := range comp.Recommendations {
		recs = append(recs, model.Recommendation{
			Category: lexicon.ComplianceCategory,
			Action:   r,
			Priority: model.PriorityMedium,
		})
	}

	if score.HasConcern(risk.SMEConcerns, model.ConcernCashFlow) {
		recs = append(recs, model.Recommendation{
			Category: lexicon.CashFlowCategory,
			Action:   lexicon.CashFlowAction,
			Priority: model.PriorityHigh,
		})
	}

	if len(recs) > lexicon.MaxRecommendations {
		recs = recs[:lexicon.MaxRecommendations]
	}
	return recs
}

// NextSteps picks the five-step playbook for a composite score
func NextSteps(composite float64) []string {
	var steps []string
	switch {
	case composite >= lexicon.HighRiskScore:
		steps = lexicon.NextSteps.High
	case composite >= lexicon.ModerateRiskScore:
		steps = lexicon.NextSteps.Moderate
	default:
		steps = lexicon.NextSteps.Low
	}
	return append([]string(nil), steps...)
}

// Category turns a detector name into a display label: penalty_clauses -> Penalty Clauses
func Category(name model.DetectorName) string {
	words := strings.Split(string(name), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Terms condenses the entity bag
func Terms(e model.Entities) model.ExtractedTerms {
	terms := model.ExtractedTerms{
		Parties:       append([]model.Party{}, e.Parties...),
		Dates:         []string{},
		Amounts:       append([]model.Amount{}, e.Amounts...),
		Durations:     []string{},
		Jurisdictions: append([]string{}, e.Jurisdictions...),
	}
	for _, d := range e.Dates {
		terms.Dates = append(terms.Dates, d.Raw)
	}
	for _, d := range e.Durations {
		terms.Durations = append(terms.Durations, d.Raw)
	}
	return terms
}

// Digest keeps the obligation counts and the first few obligation and prohibition texts
func Digest(o model.ObligationAnalysis) model.ObligationDigest {
	return model.ObligationDigest{
		ObligationSummary: o.Summary,
		KeyObligations:    leading(o.Obligations),
		KeyProhibitions:   leading(o.Prohibitions),
	}
}

func leading(statements []model.ObligationStatement) []string {
	out := []string{}
	for _, s := range statements[:min(len(statements), lexicon.MaxKeyStatements)] {
		out = append(out, util.Truncate(s.Text, lexicon.KeyStatementLen))
	}
	return out
}

// AuditSummary condenses a report into the record kept in the audit log
func AuditSummary(r model.Report) model.AuditSummary {
	return model.AuditSummary{
		RiskScore:            r.Risk.CompositeScore,
		RiskLevel:            r.Risk.Level,
		ContractType:         r.ContractInfo.ContractType,
		RiskyClausesDetected: r.Detections.FoundCount(),
	}
}
