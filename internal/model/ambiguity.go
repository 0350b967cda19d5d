package model

// AmbiguityLevel is the ambiguity scale; distinct from RiskLevel though it shares the thresholds
type AmbiguityLevel string

const (
	AmbiguityLow    AmbiguityLevel = "low"
	AmbiguityMedium AmbiguityLevel = "medium"
	AmbiguityHigh   AmbiguityLevel = "high"
)

// AmbiguityLevelFor maps a 0-10 ambiguity score onto its level
func AmbiguityLevelFor(score float64) AmbiguityLevel {
	switch {
	case score <= 3:
		return AmbiguityLow
	case score <= 6:
		return AmbiguityMedium
	default:
		return AmbiguityHigh
	}
}

// VagueTerm is one occurrence of a vague word or phrase
type VagueTerm struct {
	Term     string         `json:"term"`
	Severity AmbiguityLevel `json:"severity"` // tier of the vocabulary list it came from
	Position int            `json:"position"` // byte offset in the analyzed text
	Context  string         `json:"context"`
}

// AmbiguousPattern is an occurrence of a structurally ambiguous construction
type AmbiguousPattern struct {
	Match       string `json:"match"`
	Description string `json:"description"`
	Context     string `json:"context"`
}

// UndefinedReference is a cross-reference to a term the document never defines
type UndefinedReference struct {
	Term    string `json:"term"`
	Context string `json:"context"`
}

// MissingCategory is an essential contract category with no supporting words
type MissingCategory struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// SpecificityChecks records whether concrete amounts, dates and durations appear
type SpecificityChecks struct {
	HasSpecificAmounts   bool `json:"has_specific_amounts"`
	HasSpecificDates     bool `json:"has_specific_dates"`
	HasSpecificDurations bool `json:"has_specific_durations"`
}

// AmbiguityResult is the ambiguity detector output
type AmbiguityResult struct {
	VagueTerms          []VagueTerm          `json:"vague_terms"`
	AmbiguousPatterns   []AmbiguousPattern   `json:"ambiguous_patterns"`
	UndefinedReferences []UndefinedReference `json:"undefined_references"`
	MissingSpecificity  []MissingCategory    `json:"missing_specificity"`
	Specificity         SpecificityChecks    `json:"specificity_checks"`
	Score               float64              `json:"ambiguity_score"`
	Level               AmbiguityLevel       `json:"risk_level"`
	Recommendations     []string             `json:"recommendations"`
}
