package model

// RequirementCheck is the outcome of one statutory checklist item
type RequirementCheck struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Found       bool     `json:"found"`
	Status      string   `json:"status"`
	Matches     []string `json:"matches,omitempty"` // Captured values, at most 5
	Action      string   `json:"action,omitempty"`
	Manual      bool     `json:"manual,omitempty"` // Cannot be decided from text
}

// ComplianceResult is the compliance checker output
type ComplianceResult struct {
	ContractType    ContractType       `json:"contract_type"`
	Basic           []RequirementCheck `json:"basic_requirements"`
	General         []RequirementCheck `json:"general_compliance"`
	Employment      []RequirementCheck `json:"employment_compliance,omitempty"`
	Lease           []RequirementCheck `json:"lease_compliance,omitempty"`
	Issues          []string           `json:"issues"`
	Warnings        []string           `json:"warnings"`
	Recommendations []string           `json:"recommendations"`
	Score           float64            `json:"compliance_score"` // passed / total * 100
}

// ComplianceSummary is the banded digest of a ComplianceResult
type ComplianceSummary struct {
	Score           float64  `json:"score"`
	Status          string   `json:"status"`
	CriticalIssues  []string `json:"critical_issues"`
	Warnings        []string `json:"warnings"`
	Recommendations []string `json:"recommendations"`
}
