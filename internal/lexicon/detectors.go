package lexicon

// DefaultDetectorWindow is the context padding for penalty findings
const DefaultDetectorWindow = 100

// Penalty
var PenaltyPatterns = []string{
	`penalty\s+(?:of|amounting\s+to)\s+(?:Rs\.?|INR|₹)?\s*[\d,]+`,
	`liquidated\s+damages?\s+(?:of|amounting\s+to|equal\s+to)`,
	`forfeit(?:ure)?\s+of\s+(?:deposit|advance|amount)`,
	`damages?\s+(?:of|equal\s+to)\s+(?:\d+%|\d+\s+times)`,
}

const (
	PenaltyAmount         = `(?:Rs\.?|INR|₹)?\s*(\d[\d,]*)`
	PenaltyRecommendation = "Review penalty amounts and ensure they are proportionate to potential damages"
)

// Indemnity
var IndemnityPatterns = []string{
	`indemnif(?:y|ication|ies)\s+(?:and\s+)?(?:hold\s+harmless)?`,
	`hold\s+harmless\s+(?:and\s+)?indemnif`,
	`defend,?\s+indemnif(?:y|ication)`,
}

var (
	IndemnityBroad = []string{
		`all\s+claims`,
		`any\s+and\s+all`,
		`without\s+limitation`,
		`whatsoever`,
		`arising\s+out\s+of\s+or\s+relating\s+to`,
	}
	IndemnityNarrow = []string{
		`gross\s+negligence`,
		`willful\s+misconduct`,
		`material\s+breach`,
		`to\s+the\s+extent\s+caused\s+by`,
	}
)

const (
	IndemnityWindow         = 200
	IndemnityRecommendation = "Negotiate to limit indemnification scope and add caps"
)

// Indemnity scopes
const (
	ScopeBroad    = "broad"
	ScopeNarrow   = "narrow"
	ScopeModerate = "moderate"
)

// Termination sub-categories
const (
	TerminationUnilateral = "unilateral"
	TerminationMutual     = "mutual"
	TerminationForCause   = "for_cause"
)

// TerminationPatterns is keyed by sub-category, in reporting order
var TerminationPatterns = []struct {
	Kind     string
	Patterns []string
}{
	{TerminationUnilateral, []string{
		`(?:party|company|employer)\s+may\s+terminate\s+(?:this\s+)?(?:agreement|contract)\s+(?:at\s+)?(?:any\s+time|without\s+cause)`,
		`terminate\s+(?:immediately|without\s+notice|with\s+immediate\s+effect)`,
		`sole\s+discretion\s+to\s+terminate`,
	}},
	{TerminationMutual, []string{
		`either\s+party\s+may\s+terminate`,
		`mutual\s+(?:agreement|consent)\s+to\s+terminate`,
		`both\s+parties\s+(?:may|agree\s+to)\s+terminate`,
		`terminated\s+by\s+(?:either|both)\s+part(?:y|ies)`,
	}},
	{TerminationForCause, []string{
		`terminate\s+(?:for\s+)?(?:cause|breach|default)`,
		`material\s+breach.*terminate`,
		`cure\s+period\s+of\s+\d+\s+days`,
	}},
}

const (
	TerminationWindow         = 150
	TerminationNotice         = `(?i)(\d+)\)?\s*(?:days?|months?|weeks?)\s*(?:prior\s+)?(?:written\s+)?notice`
	TerminationRecommendation = "Ensure termination rights are mutual or include adequate notice periods"
)

// Arbitration
var ArbitrationPatterns = []string{
	`arbitration\s+(?:clause|proceedings?|shall\s+be)`,
	`submit(?:ted)?\s+to\s+arbitration`,
	`(?:SIAC|ICC|LCIA|AAA)\s+(?:rules|arbitration)`,
	`Arbitration\s+and\s+Conciliation\s+Act`,
	`seat\s+of\s+(?:the\s+)?arbitration`,
}

const (
	ArbitrationWindow         = 200
	ArbitrationSeat           = `seat\s+(?:of\s+(?:the\s+)?arbitration\s+)?(?:shall\s+be\s+)?(?:at\s+)?([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`
	ArbitrationRules          = `(?i)(SIAC|ICC|LCIA|AAA|Indian\s+Arbitration)`
	ArbitrationRecommendation = "Verify arbitration seat and rules are convenient for your business"
)

// Auto-renewal
var AutoRenewalPatterns = []string{
	`automatic(?:ally)?\s+renew(?:al|ed)?`,
	`auto-?renew(?:al)?`,
	`renew(?:ed)?\s+automatically`,
	`lock-?in\s+period\s+of\s+\d+`,
	`minimum\s+(?:term|period|commitment)\s+of\s+\d+`,
}

const (
	AutoRenewalWindow         = 150
	AutoRenewalDuration       = `(\d+)\s*(?:years?|months?|days?)`
	AutoRenewalOptOut         = `(\d+)\s*(?:days?|months?)\s*(?:prior\s+)?(?:written\s+)?notice`
	AutoRenewalRecommendation = "Set calendar reminders for renewal dates and negotiate opt-out terms"
)

// Non-compete
var NonCompetePatterns = []string{
	`non-?compete(?:tion)?\s+(?:clause|covenant|agreement|restriction)?`,
	`restrictive\s+covenant`,
	`shall\s+not\s+(?:directly\s+or\s+indirectly\s+)?(?:engage|compete|work|provide\s+services)`,
	`restraint\s+(?:of\s+)?trade`,
}

const (
	NonCompeteWindow         = 200
	NonCompeteDuration       = `(\d+)\s*(?:years?|months?)`
	NonCompeteGeography      = `(?:within|throughout)\s+([A-Za-z\s,]+?)(?:\.|,|and)`
	NonCompeteRecommendation = "Negotiate reasonable duration and geographic limits for non-compete"
)

// IP transfer
var IPTransferPatterns = []string{
	`(?:transfer|assign(?:ment)?|convey)\s+(?:of\s+)?(?:all\s+)?intellectual\s+property`,
	`intellectual\s+property\s+(?:rights?\s+)?(?:shall\s+)?(?:belong|vest)\s+(?:in|with)`,
	`work\s+(?:made\s+)?for\s+hire`,
	`assign\s+all\s+(?:right,?\s+title,?\s+and\s+interest)`,
	`(?:copyright|patent|trademark)\s+(?:shall\s+)?(?:belong|vest)`,
}

const (
	IPTransferWindow         = 200
	IPTransferQualifier      = `(?i)license|non-?exclusive|limited`
	IPTransferRecommendation = "Consider retaining license rights or limiting IP transfer scope"
)

// Confidentiality
var ConfidentialityPatterns = []string{
	`confidential(?:ity)?\s+(?:information|agreement|obligation|clause)`,
	`non-?disclosure\s+(?:agreement|obligation)`,
	`proprietary\s+information`,
	`trade\s+secret`,
}

const (
	ConfidentialityWindow         = 200
	ConfidentialityDuration       = `(\d+)\s*(?:years?)`
	ConfidentialityRecommendation = "Ensure confidentiality requirements are mutual and have reasonable duration"
)

// Liability caps
var LiabilityCapPatterns = []string{
	`limitation\s+(?:of\s+)?liability`,
	`(?:aggregate|total|maximum)\s+liability\s+(?:shall\s+)?(?:not\s+)?exceed`,
	`liability\s+(?:shall\s+be\s+)?limited\s+to`,
	`cap(?:ped)?\s+(?:at|to)\s+(?:Rs\.?|INR|₹|\$)?\s*[\d,]+`,
}

const (
	LiabilityCapWindow         = 200
	LiabilityCapAmount         = `(?:Rs\.?|INR|₹|\$)\s*([\d,]+)`
	LiabilityCapPercentage     = `(?i)(\d+)%\s+of\s+(?:the\s+)?(?:contract|fees|amount)`
	LiabilityCapRecommendation = "Verify liability cap is adequate for potential damages"
	LiabilityCapMissingAdvice  = "Consider negotiating a liability cap"
)
