package model

import "time"

// Report is the complete contract analysis report
// Built once by the aggregator and never mutated afterwards
type Report struct {
	ID          string    `json:"report_id"`    // CR-XXXXXXXX
	GeneratedAt time.Time `json:"generated_at"` // When the report was built
	Version     string    `json:"lexicon_version"`

	ContractInfo     ContractInfo     `json:"contract_info"`
	ExecutiveSummary ExecutiveSummary `json:"executive_summary"`
	Classification   Classification   `json:"classification"`

	Clauses       []Clause      `json:"clauses"`
	ClauseSummary ClauseSummary `json:"clause_summary"`

	Entities         Entities           `json:"entities"`
	Terms            ExtractedTerms     `json:"extracted_terms"`
	Obligations      ObligationAnalysis `json:"obligations"`
	ObligationDigest ObligationDigest   `json:"obligations_summary"`
	Ambiguity        AmbiguityResult    `json:"ambiguity"`
	Detections       Detections         `json:"clause_detections"`

	Risk       ContractRisk `json:"risk_assessment"`
	SMESummary SMESummary   `json:"sme_summary"`

	Compliance        ComplianceResult  `json:"compliance"`
	ComplianceSummary ComplianceSummary `json:"compliance_summary"`

	KeyFindings     []KeyFinding     `json:"key_findings"`
	Recommendations []Recommendation `json:"recommendations"`
	NextSteps       []string         `json:"next_steps"`

	Explanations []Explanation    `json:"explanations,omitempty"` // Optional, from the explainer collaborator
	Summary      *ContractSummary `json:"summary,omitempty"`      // Optional, from the summarizer collaborator
}

// ContractInfo describes the analyzed document
type ContractInfo struct {
	FileName     string       `json:"file_name,omitempty"`
	ContractType ContractType `json:"contract_type"`
	TypeLabel    string       `json:"contract_type_label"`
	Language     string       `json:"language,omitempty"` // en, hi, unknown
	PageCount    int          `json:"page_count,omitempty"`
	WordCount    int          `json:"word_count"`
	SHA256       string       `json:"sha256,omitempty"` // Hash of the source bytes
}

// ExtractedTerms is the condensed entity view shown at the top of a report
type ExtractedTerms struct {
	Parties       []Party  `json:"parties"`
	Dates         []string `json:"dates"`
	Amounts       []Amount `json:"amounts"`
	Durations     []string `json:"durations"`
	Jurisdictions []string `json:"jurisdictions"`
}

// ObligationDigest is the obligation summary plus the leading statements
type ObligationDigest struct {
	ObligationSummary
	KeyObligations  []string `json:"key_obligations"`
	KeyProhibitions []string `json:"key_prohibitions"`
}

// OverallStatus is the executive-summary risk classification
type OverallStatus string

const (
	StatusHighRisk     OverallStatus = "HIGH_RISK"
	StatusModerateRisk OverallStatus = "MODERATE_RISK"
	StatusLowRisk      OverallStatus = "LOW_RISK"
)

// ExecutiveSummary is the top-of-report verdict
type ExecutiveSummary struct {
	OverallStatus         OverallStatus `json:"overall_status"`
	StatusColor           string        `json:"status_color"` // red, yellow, green
	RiskScore             float64       `json:"risk_score"`
	ComplianceScore       float64       `json:"compliance_score"`
	HighRiskItems         int           `json:"high_risk_items"`
	PrimaryRecommendation string        `json:"primary_recommendation"`
	OneLiner              string        `json:"one_liner"`
}

// Priority ranks key findings and recommendations
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank orders priorities, lower first
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// KeyFinding is a ranked headline finding
type KeyFinding struct {
	Category       string   `json:"category"`
	Severity       string   `json:"severity"` // HIGH, MEDIUM
	Description    string   `json:"description"`
	Context        string   `json:"context,omitempty"`
	Recommendation string   `json:"recommendation"`
	Priority       Priority `json:"priority"`
}

// Recommendation is one action item
type Recommendation struct {
	Category string   `json:"category"`
	Action   string   `json:"action"`
	Priority Priority `json:"priority"`
}

// ExplanationSource tells whether an explanation came from the model or a template
type ExplanationSource string

const (
	SourceAI        ExplanationSource = "ai"
	SourceTemplate  ExplanationSource = "template"
	SourceExtracted ExplanationSource = "extracted"
)

// Explanation is a plain-language rendering of one clause
type Explanation struct {
	ClauseNumber string            `json:"clause_number"`
	ClauseType   ClauseType        `json:"clause_type"`
	OriginalText string            `json:"original_text"`
	Explanation  string            `json:"explanation"`
	Source       ExplanationSource `json:"source"`
}

// StructuredSummary is the pattern-derived contract digest
type StructuredSummary struct {
	Parties        []string  `json:"parties"`
	KeyDates       []string  `json:"key_dates"`
	FinancialTerms []string  `json:"financial_terms"`
	Duration       string    `json:"duration,omitempty"`
	RiskLevel      RiskLevel `json:"risk_level"`
	RiskScore      float64   `json:"risk_score"`
}

// ContractSummary is the summarizer collaborator output
type ContractSummary struct {
	AISummary  string            `json:"ai_summary,omitempty"`
	Structured StructuredSummary `json:"structured_summary"`
	QuickFacts []string          `json:"quick_facts"`
	Source     ExplanationSource `json:"source"`
}

// AuditSummary is the condensed record persisted in the audit log
type AuditSummary struct {
	RiskScore            float64      `json:"risk_score"`
	RiskLevel            RiskLevel    `json:"risk_level"`
	ContractType         ContractType `json:"contract_type"`
	RiskyClausesDetected int          `json:"risky_clauses_detected"`
}

// Suggestion is alternative wording for a problematic clause
type Suggestion struct {
	OriginalClause  string            `json:"original_clause"`
	Concerns        []string          `json:"concerns"`
	AlternativeText string            `json:"alternative_text"`
	Reasoning       string            `json:"reasoning,omitempty"`
	Issue           string            `json:"issue,omitempty"` // Standard template that matched
	Source          ExplanationSource `json:"source"`
}
