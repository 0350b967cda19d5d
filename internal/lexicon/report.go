package lexicon

import "github.com/ppiankov/contractlens/internal/model"

// Executive summary thresholds
const (
	HighRiskScore     = 7.0
	ModerateRiskScore = 5.0
	HighRiskItems     = 3
)

// Report list caps
const (
	MaxKeyFindings        = 10
	MaxFindingsPerType    = 2
	MaxOneSidedFindings   = 3
	MaxRecommendations    = 10
	MaxReportedClauses    = 10
	FindingDescriptionLen = 100
	FindingContextLen     = 200
	KeyStatementLen       = 200
	MaxKeyStatements      = 5
)

// StatusText is the verdict wording for one executive-summary band
type StatusText struct {
	Color          string
	Recommendation string
	OneLiner       string // may carry a %d for the high-risk item count
}

// StatusTexts maps each overall status to its wording
var StatusTexts = map[model.OverallStatus]StatusText{
	model.StatusHighRisk: {
		Color:          "red",
		Recommendation: "Recommend professional legal review before signing",
		OneLiner:       "[HIGH RISK] Contract has %d high-risk clauses requiring immediate attention",
	},
	model.StatusModerateRisk: {
		Color:          "yellow",
		Recommendation: "Review flagged clauses carefully, consider negotiating terms",
		OneLiner:       "[MODERATE RISK] Contract has some concerning terms - review recommended",
	},
	model.StatusLowRisk: {
		Color:          "green",
		Recommendation: "Contract appears balanced, standard review sufficient",
		OneLiner:       "[LOW RISK] Contract terms appear generally balanced and fair",
	},
}

// Fixed report wording
const (
	OneSidedCategory       = "One-Sided Terms"
	OneSidedRecommendation = "Consider negotiating for more balanced terms"
	ComplianceCategory     = "Compliance"
	CashFlowCategory       = "Cash Flow"
	CashFlowAction         = "Negotiate for shorter payment terms (Net 30 or Net 45)"
)

// NextSteps are the five-step playbooks, highest band first
var NextSteps = struct {
	High, Moderate, Low []string
}{
	High: []string{
		"1. Do NOT sign this contract without professional legal review",
		"2. Identify the top 3 high-risk clauses for negotiation",
		"3. Prepare counter-proposals for risky terms",
		"4. Consider seeking alternative vendors/partners if negotiation fails",
		"5. Document all negotiations and changes",
	},
	Moderate: []string{
		"1. Review all flagged clauses carefully",
		"2. Create a list of terms you want to negotiate",
		"3. Discuss concerns with the other party",
		"4. Consider limited legal review for high-risk clauses",
		"5. Ensure all agreed changes are documented in writing",
	},
	Low: []string{
		"1. Perform a final read-through of the contract",
		"2. Verify all details (names, dates, amounts) are correct",
		"3. Ensure you have copies of all related documents",
		"4. Sign and retain a copy for your records",
		"5. Set reminders for key dates (renewals, reviews)",
	},
}
