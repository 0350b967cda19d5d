package lexicon

// Requirement is one checklist item; a requirement with no patterns needs manual review
type Requirement struct {
	Name        string
	Description string
	Patterns    []string // case-insensitive; any match satisfies the item
	RedFlags    []string // case-insensitive; any match fails the item
}

// BasicRequirements apply to every contract
var BasicRequirements = []Requirement{
	{
		Name:        "parties",
		Description: "Contract must clearly identify all parties",
		Patterns: []string{
			`(?:between|party|parties)`,
			`(?:first\s+party|second\s+party)`,
			`(?:company|employer|employee|vendor|client)`,
		},
	},
	{
		Name:        "consideration",
		Description: "Contract must have lawful consideration",
		Patterns: []string{
			`(?:consideration|payment|compensation|fee|salary|price)`,
			`(?:Rs\.?|INR|₹)\s*[\d,]+`,
		},
	},
	{
		Name:        "lawful_object",
		Description: "Contract object must be lawful",
	},
	{
		Name:        "free_consent",
		Description: "Contract requires free consent of parties",
		RedFlags:    []string{`(?:coercion|undue\s+influence|fraud|misrepresentation)`},
	},
}

// GeneralRequirements apply to every contract
var GeneralRequirements = []Requirement{
	{
		Name:        "stamp_paper",
		Description: "Contract may require execution on stamp paper",
		Patterns:    []string{`stamp\s+paper`, `stamp\s+duty`, `e-?stamp`},
	},
	{
		Name:        "witness",
		Description: "Witnesses may be required for validity",
		Patterns:    []string{`witness(?:es)?`, `attestation`, `attest(?:ed)?`},
	},
	{
		Name:        "jurisdiction",
		Description: "Exclusive jurisdiction clauses should be reasonable",
		Patterns:    []string{`(?:exclusive\s+)?jurisdiction\s+(?:of\s+)?(?:courts?\s+(?:at|of|in))`},
	},
	{
		Name:        "arbitration",
		Description: "Must comply with Arbitration & Conciliation Act",
		Patterns:    []string{`arbitration`, `Arbitration\s+and\s+Conciliation\s+Act`},
	},
}

// EmploymentRequirements apply to employment agreements
var EmploymentRequirements = []Requirement{
	{
		Name:        "minimum_wage",
		Description: "Must comply with Minimum Wages Act",
	},
	{
		Name:        "working_hours",
		Description: "Maximum 48 hours/week as per Factories Act",
		Patterns:    []string{`(\d+)\s*hours?\s*(?:per\s+)?(?:week|day)`},
	},
	{
		Name:        "leave_policy",
		Description: "Must provide statutory leave entitlements",
		Patterns:    []string{`(?:annual|earned|casual|sick)\s+leave`, `(\d+)\s*days?\s*(?:of\s+)?leave`},
	},
	{
		Name:        "pf_esi",
		Description: "EPF/ESI deductions may be applicable",
		Patterns:    []string{`\b(?:provident\s+fund|PF|EPF|ESI)\b`, `(?:employer\s+contribution|employee\s+contribution)`},
	},
	{
		Name:        "gratuity",
		Description: "Gratuity applicable for 5+ years service",
		Patterns:    []string{`gratuity`},
	},
	{
		Name:        "notice_period",
		Description: "Notice requirements for termination",
		Patterns:    []string{`notice\s+period\s+of\s+(\d+)\s*(?:days?|months?)`},
	},
}

// LeaseRequirements apply to lease agreements
var LeaseRequirements = []Requirement{
	{
		Name:        "stamp_duty",
		Description: "Lease agreements require stamp duty payment",
		Patterns:    []string{`stamp\s+duty`, `registration`},
	},
	{
		Name:        "registration",
		Description: "Leases > 12 months must be registered",
		Patterns:    []string{`register(?:ed|ation)`, `sub-?registrar`},
	},
	{
		Name:        "rent_control",
		Description: "May be subject to state Rent Control Act",
		Patterns:    []string{`rent\s+control\s+act`, `standard\s+rent`},
	},
}

// Lease registration rule
const (
	LeaseTerm               = `(?i)(\d+)\s*(months?|years?)`
	LeaseTermContext        = `(?i)\b(?:lease[ds]?|leasing|term|tenancy|tenure|rent(?:al)?|licen[cs]e|period)\b`
	LeaseSentenceBreak      = `[.!?]\s+[A-Z]|\n`
	LeaseRegistrationMonths = 12
	LeaseRegistrationName   = "registration_required"
	LeaseRegistrationDesc   = "Lease exceeds 12 months - Registration mandatory under Registration Act"
	LeaseRegistrationStatus = "⚠ Registration required"
	LeaseRegistrationAction = "Register with Sub-Registrar office"
)

// Status labels
const (
	StatusFound          = "[OK] Found"
	StatusNotSpecified   = "[!] Not clearly specified"
	StatusManual         = "[!] Manual review required"
	StatusRedFlag        = "[!] Red flags present"
	StatusClear          = "[OK] No red flags"
	StatusAddressed      = "[OK] Addressed"
	StatusNotMentioned   = "[i] Not explicitly mentioned"
	StatusEmploymentMiss = "[!] Not specified"
	StatusMentioned      = "[OK] Mentioned"
	StatusNotAddressed   = "[!] Not addressed"
)

// MaxRequirementMatches caps captured values per requirement
const MaxRequirementMatches = 5

// Compliance recommendations
const (
	StampPaperAdvice = "Consider executing the contract on appropriate stamp paper as per applicable state laws"
	WitnessAdvice    = "Consider having the contract attested by witnesses for stronger enforceability"
)

// Compliance summary bands
const (
	ComplianceGood     = "[GOOD] Good Compliance - Contract addresses most legal requirements"
	ComplianceModerate = "[MODERATE] Moderate Compliance - Some requirements may need attention"
	ComplianceLow      = "[LOW] Low Compliance - Several legal requirements may not be addressed"
)
