package lexicon

import "github.com/ppiankov/contractlens/internal/model"

// Marker is one strength sub-tier of a deontic statement type
type Marker struct {
	Type     model.StatementType
	Strength model.Strength
	Phrases  []string
}

// StatementMarkers is the classification priority table. A sentence takes the
// type and strength of the first row with a phrase it contains. Prohibition
// rows must precede obligation and right rows: "shall not" contains "shall".
var StatementMarkers = []Marker{
	{model.StatementProhibition, model.StrengthStrong, []string{
		"shall not", "must not", "will not", "cannot", "may not",
		"is prohibited from", "is not permitted to",
	}},
	{model.StatementProhibition, model.StrengthModerate, []string{"should not", "is not allowed to"}},
	{model.StatementProhibition, model.StrengthExceptions, []string{"except as", "unless", "provided however"}},

	{model.StatementObligation, model.StrengthStrong, []string{
		"shall", "must", "will", "agrees to", "undertakes to",
		"is required to", "commits to", "is obligated to",
	}},
	{model.StatementObligation, model.StrengthModerate, []string{
		"should", "is expected to", "is responsible for", "has the duty to", "needs to",
	}},
	{model.StatementObligation, model.StrengthConditional, []string{"shall, upon", "must, if", "will, provided that"}},

	{model.StatementRight, model.StrengthStrong, []string{
		"may", "is entitled to", "has the right to", "reserves the right to", "can", "is permitted to",
	}},
	{model.StatementRight, model.StrengthModerate, []string{"could", "might", "is allowed to"}},
	{model.StatementRight, model.StrengthExclusive, []string{"sole right", "exclusive right", "sole discretion"}},
}

// RoleIndicator lists phrases that tie a sentence to a party role
type RoleIndicator struct {
	Role    model.PartyRole
	Phrases []string
}

// PartyRoles is ordered; the first role with a phrase in the sentence wins
var PartyRoles = []RoleIndicator{
	{model.RoleFirstParty, []string{
		"party of the first part", "first party", "company", "employer",
		"lessor", "vendor", "service provider", "licensor",
	}},
	{model.RoleSecondParty, []string{
		"party of the second part", "second party", "employee", "lessee",
		"tenant", "client", "customer", "licensee",
	}},
	{model.RoleBoth, []string{"both parties", "either party", "each party", "parties"}},
}

// ProtectedAbbreviations never end a sentence when followed by "."
var ProtectedAbbreviations = []string{"Mr", "Mrs", "Ms", "Dr", "Ltd", "Pvt", "Inc", "Corp", "vs", "etc"}

// MinSentenceLen is the exclusive lower bound on kept sentence length
const MinSentenceLen = 20

// OneSidedMargin is how far one side's tally must exceed the other's
const OneSidedMargin = 3

// Balance verdicts
const (
	VerdictFirstParty  = "Contract appears to favor the first party (Company/Employer/Lessor)"
	VerdictSecondParty = "Contract appears to favor the second party"
	VerdictBalanced    = "Contract appears relatively balanced"
)
