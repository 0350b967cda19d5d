package model

// SMEConcernType is a small-business impact category
type SMEConcernType string

const (
	ConcernCashFlow SMEConcernType = "cash_flow_risk"
	ConcernResource SMEConcernType = "resource_risk"
	ConcernExit     SMEConcernType = "exit_risk"
)

// SMEConcern is a matched small-business concern pattern
type SMEConcern struct {
	Type    SMEConcernType `json:"type"`
	Pattern string         `json:"pattern"`
}

// ClauseRisk is the weighted risk of a single clause or text span
type ClauseRisk struct {
	Score             float64      `json:"risk_score"` // 0-10, one decimal
	Level             RiskLevel    `json:"risk_level"`
	Findings          []Finding    `json:"findings"`
	SMEConcerns       []SMEConcern `json:"sme_concerns"`
	RequiresAttention bool         `json:"requires_attention"` // score >= 5
}

// ClauseScore pairs a clause reference with its risk
type ClauseScore struct {
	ClauseNumber string     `json:"clause_number"`
	Position     int        `json:"position"`
	Risk         ClauseRisk `json:"risk"`
}

// SeverityDistribution counts findings per severity tier
type SeverityDistribution struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// ContractRisk aggregates clause risks into a composite
type ContractRisk struct {
	CompositeScore       float64              `json:"composite_score"` // 0.4*avg + 0.6*max
	Level                RiskLevel            `json:"risk_level"`
	ClauseScores         []ClauseScore        `json:"clause_scores"`
	CriticalClauses      []ClauseScore        `json:"critical_clauses"`  // score >= 7
	HighRiskClauses      []ClauseScore        `json:"high_risk_clauses"` // 5 <= score < 7
	SeverityDistribution SeverityDistribution `json:"severity_distribution"`
	SMEConcerns          []SMEConcern         `json:"sme_concerns"`
	TotalFindings        int                  `json:"total_findings"`
	Recommendation       string               `json:"recommendation"`
}

// SMESummary is the plain-language business-impact digest of a ContractRisk
type SMESummary struct {
	Assessment        string   `json:"overall_assessment"`
	KeyConcerns       []string `json:"key_concerns"`
	ActionItems       []string `json:"action_items"`
	NegotiationPoints []string `json:"negotiation_points"`
}
