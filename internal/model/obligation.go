package model

// StatementType is the deontic category of a sentence
type StatementType string

const (
	StatementObligation  StatementType = "obligation"
	StatementRight       StatementType = "right"
	StatementProhibition StatementType = "prohibition"
	StatementNeutral     StatementType = "neutral"
)

// Strength qualifies a deontic marker
type Strength string

const (
	StrengthStrong      Strength = "strong"
	StrengthModerate    Strength = "moderate"
	StrengthConditional Strength = "conditional"
	StrengthExclusive   Strength = "exclusive"
	StrengthExceptions  Strength = "exceptions"
	StrengthNone        Strength = "none"
)

// PartyRole is the party a statement binds
type PartyRole string

const (
	RoleFirstParty  PartyRole = "first_party"
	RoleSecondParty PartyRole = "second_party"
	RoleBoth        PartyRole = "both_parties"
	RoleUnspecified PartyRole = "unspecified"
	RoleUnknown     PartyRole = "unknown"
)

// ObligationStatement is one classified sentence
type ObligationStatement struct {
	Text      string        `json:"text"`
	Type      StatementType `json:"type"`
	Strength  Strength      `json:"strength"`
	Party     PartyRole     `json:"party"`
	Indicator string        `json:"indicator,omitempty"` // Marker that decided the type
}

// ObligationSummary counts statements per type and per party
type ObligationSummary struct {
	TotalObligations  int               `json:"total_obligations"`
	TotalRights       int               `json:"total_rights"`
	TotalProhibitions int               `json:"total_prohibitions"`
	StrongObligations int               `json:"strong_obligations"`
	ExclusiveRights   int               `json:"exclusive_rights"`
	ByParty           map[PartyRole]int `json:"by_party"`
}

// FavoredTerm is a statement that tilts the contract toward one party
type FavoredTerm struct {
	Kind string `json:"type"` // exclusive_right, strong_prohibition
	Text string `json:"text"`
}

// OneSidedAssessment is the balance verdict over all statements
type OneSidedAssessment struct {
	FirstPartyFavored  []FavoredTerm `json:"first_party_favored"`
	SecondPartyFavored []FavoredTerm `json:"second_party_favored"`
	Concerns           []string      `json:"concerns"`
	Assessment         string        `json:"assessment"`
}

// ObligationAnalysis is the obligation extractor output
type ObligationAnalysis struct {
	Obligations  []ObligationStatement `json:"obligations"`
	Rights       []ObligationStatement `json:"rights"`
	Prohibitions []ObligationStatement `json:"prohibitions"`
	Summary      ObligationSummary     `json:"summary"`
	OneSided     OneSidedAssessment    `json:"one_sided_terms"`
}
