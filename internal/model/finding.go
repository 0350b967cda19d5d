package model

// Finding is a single matched pattern instance emitted by a detector or scorer
type Finding struct {
	Pattern  string            `json:"pattern"`           // Matched text or the pattern that fired
	Severity Severity          `json:"severity"`          // Tier of the match
	Weight   float64           `json:"weight,omitempty"`  // Score contribution (scorer findings only)
	Context  string            `json:"context,omitempty"` // Match padded by a character window
	Fields   map[string]string `json:"fields,omitempty"`  // Extracted sub-fields, keyed by the Field* constants
}

// Field returns an extracted sub-field or "" when absent
func (f Finding) Field(key string) string {
	if f.Fields == nil {
		return ""
	}
	return f.Fields[key]
}

// Severity is a weighted tier for risk findings
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Extracted sub-field keys used by the clause detectors
const (
	FieldKind            = "type"
	FieldAmount          = "amount"
	FieldScope           = "scope"
	FieldNoticePeriod    = "notice_period"
	FieldCategory        = "category"
	FieldSeat            = "seat"
	FieldRules           = "rules"
	FieldDuration        = "duration"
	FieldOptOutNotice    = "opt_out_notice"
	FieldGeographicScope = "geographic_scope"
	FieldFullTransfer    = "is_full_transfer"
	FieldCapAmount       = "cap_amount"
	FieldPercentageCap   = "percentage_cap"
)

// RiskLevel is the clause and contract risk scale (0-10 weighted score)
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskLevelFor maps a 0-10 risk score onto its level: <=3 low, <=6 medium, else high
func RiskLevelFor(score float64) RiskLevel {
	switch {
	case score <= 3:
		return RiskLow
	case score <= 6:
		return RiskMedium
	default:
		return RiskHigh
	}
}
