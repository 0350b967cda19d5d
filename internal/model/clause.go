package model

// Clause is a contiguous, heading-delimited or paragraph-delimited unit of contract text
type Clause struct {
	Position  int         `json:"position"`       // Zero-based order within the document
	Number    string      `json:"clause_number"`  // Heading number ("1.2", "IV", "b"); empty for caps headings
	Heading   string      `json:"heading"`        // Heading text following the number
	Level     int         `json:"level"`          // Nesting depth 1-3
	StartLine int         `json:"start_line"`     // 1-based line of the heading; 0 for paragraph clauses
	Text      string      `json:"text"`           // Full clause text including the heading line
	Type      ClauseType  `json:"clause_type"`    // Inferred type, ClauseGeneral when nothing matched
	Risk      *ClauseRisk `json:"risk,omitempty"` // Set by the risk scorer
}

// ClauseType is the inferred subject of a clause
type ClauseType string

const (
	ClauseGeneral              ClauseType = "general"
	ClauseDefinitions          ClauseType = "definitions"
	ClauseObligations          ClauseType = "obligations"
	ClauseRights               ClauseType = "rights"
	ClauseProhibitions         ClauseType = "prohibitions"
	ClausePaymentTerms         ClauseType = "payment_terms"
	ClauseTermination          ClauseType = "termination"
	ClauseIndemnity            ClauseType = "indemnity"
	ClauseConfidentiality      ClauseType = "confidentiality"
	ClauseIntellectualProperty ClauseType = "intellectual_property"
	ClauseDisputeResolution    ClauseType = "dispute_resolution"
	ClauseGoverningLaw         ClauseType = "governing_law"
	ClauseForceMajeure         ClauseType = "force_majeure"
	ClauseAmendment            ClauseType = "amendment"
	ClauseNotice               ClauseType = "notice"
	ClauseAssignment           ClauseType = "assignment"
	ClauseEntireAgreement      ClauseType = "entire_agreement"
	ClauseSeverability         ClauseType = "severability"
	ClauseWarranty             ClauseType = "warranty"
)

// ClauseSummary aggregates statistics over a clause list
type ClauseSummary struct {
	Total    int                `json:"total_clauses"`
	ByType   map[ClauseType]int `json:"by_type"`
	MaxDepth int                `json:"max_depth"`
}
