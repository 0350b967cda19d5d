package lexicon

import "github.com/ppiankov/contractlens/internal/model"

// RiskTier is a weighted family of risk patterns
type RiskTier struct {
	Severity model.Severity
	Weight   float64
	Patterns []string
}

// RiskTiers are matched case-insensitively against clause text; every match counts
var RiskTiers = []RiskTier{
	{model.SeverityCritical, 3.0, []string{
		`unlimited\s+liability`,
		`waive\s+all\s+rights`,
		`indemnify.*against\s+(?:any\s+and\s+)?all\s+claims`,
		`sole\s+and\s+absolute\s+discretion`,
		`irrevocable\s+(?:and\s+)?unconditional`,
		`perpetual\s+(?:and\s+)?irrevocable`,
		`assign\s+all\s+(?:rights|intellectual\s+property)`,
		`without\s+any\s+limitation\s+whatsoever`,
	}},
	{model.SeverityHigh, 2.0, []string{
		`penalty\s+(?:of|amounting)`,
		`liquidated\s+damages`,
		`terminate\s+(?:immediately|without\s+notice|without\s+cause)`,
		`unilateral\s+(?:termination|modification)`,
		`non-compete(?:tion)?\s+(?:clause|covenant|agreement)`,
		`automatic\s+renewal`,
		`lock-?in\s+period`,
		`exclusive\s+(?:rights|jurisdiction)`,
		`forfeit(?:ure)?`,
		`waiver\s+of\s+(?:rights|claims)`,
		`whatsoever`,
	}},
	{model.SeverityMedium, 1.0, []string{
		`arbitration\s+(?:clause|shall\s+be)`,
		`confidential(?:ity)?\s+(?:clause|agreement|obligations)`,
		`intellectual\s+property\s+(?:rights|transfer)`,
		`notice\s+period\s+of\s+(?:less\s+than\s+)?\d+\s+days`,
		`governing\s+law`,
		`limitation\s+of\s+liability`,
		`force\s+majeure`,
		`assignment\s+(?:clause|rights)`,
		`amendment\s+(?:clause|by\s+mutual)`,
	}},
	{model.SeverityLow, 0.5, []string{
		`reasonable\s+(?:efforts|time|notice)`,
		`commercially\s+reasonable`,
		`good\s+faith`,
		`best\s+efforts`,
		`material\s+breach`,
	}},
}

// SMEConcernFamily is a small-business concern with its pattern family
type SMEConcernFamily struct {
	Type     model.SMEConcernType
	Patterns []string
}

// SMEConcernBoost is added once per matching SME pattern
const SMEConcernBoost = 1.5

// SMEConcerns are matched case-insensitively; each pattern fires at most once per clause
var SMEConcerns = []SMEConcernFamily{
	{model.ConcernCashFlow, []string{
		`payment(?:\s+\w+){0,3}\s+(?:within|after)\s+(?:6[0-9]|[7-9][0-9]|[1-9][0-9]{2,})\s+days`,
		`net\s+(?:6[0-9]|[7-9][0-9]|[1-9][0-9]{2,})`,
		`advance\s+payment\s+of\s+\d+%`,
	}},
	{model.ConcernResource, []string{
		`dedicated\s+(?:team|resources|personnel)`,
		`minimum\s+(?:order|commitment|volume)`,
		`exclusive\s+(?:supply|service)`,
	}},
	{model.ConcernExit, []string{
		`termination\s+fee`,
		`early\s+termination\s+penalty`,
		`exit\s+(?:fee|cost|charges)`,
	}},
}

// Score thresholds
const (
	MaxRiskScore         = 10.0
	AttentionThreshold   = 5.0
	CriticalThreshold    = 7.0
	CompositeMeanWeight  = 0.4
	CompositeWorstWeight = 0.6
)

// Contract-level recommendations by composite band
const (
	RecommendationHigh        = "[HIGH RISK] This contract contains significant risks. We strongly recommend legal review before signing. Consider negotiating terms or seeking alternatives."
	RecommendationModerate    = "[MODERATE RISK] This contract has some concerning clauses. Review highlighted sections carefully and consider negotiating modifications to high-risk terms."
	RecommendationLowModerate = "[LOW-MODERATE RISK] Contract has some standard risk clauses. Review the flagged items but overall risk is manageable."
	RecommendationLow         = "[LOW RISK] Contract appears to have balanced terms. Standard review recommended but no major concerns identified."
)

// SME summary text
const (
	SMEAssessmentHigh     = "[HIGH RISK] This contract poses HIGH RISK for your business. Several clauses could significantly impact your operations or finances."
	SMEAssessmentModerate = "[MODERATE RISK] This contract has MODERATE RISK. Some terms need careful consideration before signing."
	SMEAssessmentLow      = "[LOW RISK] This contract appears to have LOW RISK. Terms are generally fair and balanced."

	SMECashFlowConcern = "Long payment terms may strain your cash flow"
	SMECashFlowAction  = "Negotiate for shorter payment terms (Net 30 or Net 45)"
	SMEResourceConcern = "Contract may require dedicated resources"
	SMEExitConcern     = "High exit costs or termination penalties"
	SMEExitAction      = "Negotiate for reasonable termination terms"
	SMECriticalPoint   = "Review and negotiate critical clauses before signing"
)
