package lexicon

import "github.com/ppiankov/contractlens/internal/model"

// VagueTier is a vague-term vocabulary with its ambiguity severity
type VagueTier struct {
	Level model.AmbiguityLevel
	Terms []string
}

// VagueTerms is ordered high, medium, low
var VagueTerms = []VagueTier{
	{model.AmbiguityHigh, []string{
		"reasonable", "reasonably", "appropriate", "appropriately",
		"adequate", "adequately", "sufficient", "sufficiently",
		"material", "materially", "substantial", "substantially",
		"promptly", "timely", "as soon as possible", "in due course",
		"best efforts", "commercially reasonable efforts",
		"good faith", "fair", "fairly",
	}},
	{model.AmbiguityMedium, []string{
		"may", "might", "could", "possibly", "potentially",
		"generally", "usually", "typically", "normally",
		"including but not limited to", "such as", "for example",
		"or otherwise", "and/or", "etc", "et cetera",
		"from time to time", "as needed", "as required",
		"similar", "comparable", "equivalent",
	}},
	{model.AmbiguityLow, []string{
		"approximately", "about", "around", "roughly",
		"more or less", "up to", "at least", "no less than",
	}},
}

// AmbiguousPatterns are syntactic constructions that leave terms open
var AmbiguousPatterns = []Pattern{
	{`at\s+(?:the|its)\s+(?:sole\s+)?discretion`, "Discretionary clause - outcome depends on one party's judgment"},
	{`to\s+be\s+determined\s+(?:later|subsequently)?`, "Undefined terms requiring future specification"},
	{`as\s+(?:may\s+be\s+)?(?:mutually\s+)?agreed`, "Requires future agreement - terms not fixed"},
	{`(?:any|all)\s+other\s+(?:\w+\s+)?(?:matters?|issues?|items?)`, "Catch-all provision - scope unclear"},
	{`(?:any|all)\s+(?:relevant|applicable|related)`, "Broad scope reference"},
	{`(?:customary|standard|normal)\s+(?:practice|procedure)`, "Reference to undefined standard"},
	{`without\s+limitation`, "Non-exhaustive list"},
	{`whatsoever`, "Extremely broad scope"},
}

// ReferencePatterns capture the referenced term in group 1
var ReferencePatterns = []string{
	`as\s+defined\s+(?:in|by)\s+(?:the\s+)?(\w+)`,
	`pursuant\s+to\s+(?:the\s+)?(\w+)`,
	`in\s+accordance\s+with\s+(?:the\s+)?(\w+)`,
	`subject\s+to\s+(?:the\s+)?(\w+)`,
}

// EssentialCategory lists indicator substrings for a term every contract should carry
type EssentialCategory struct {
	Name       string
	Indicators []string
}

// EssentialCategories is ordered; missing categories are reported in this order
var EssentialCategories = []EssentialCategory{
	{"payment", []string{"payment", "compensation", "fee", "price", "cost", "amount"}},
	{"timeline", []string{"date", "day", "month", "year", "period", "term", "duration"}},
	{"deliverables", []string{"deliver", "provide", "perform", "complete", "service"}},
	{"termination", []string{"terminate", "end", "cancel", "expire"}},
	{"liability", []string{"liability", "responsible", "liable", "indemnify"}},
}

// Specificity literals
const (
	SpecificAmount   = `(?:Rs\.?|INR|₹|\$)\s*[\d,]+`
	SpecificDate     = `\d{1,2}[/\-\.]\d{1,2}[/\-\.]\d{2,4}`
	SpecificDuration = `\d+\s*(?:days?|months?|years?)`
)

// Ambiguity score weights and caps
const (
	HighTermWeight      = 0.5
	HighTermCap         = 3.0
	MediumTermWeight    = 0.2
	MediumTermCap       = 2.0
	PatternWeight       = 0.4
	PatternCap          = 2.0
	UndefinedRefWeight  = 0.3
	UndefinedRefCap     = 1.5
	MissingCategoryCost = 0.5
	AmbiguityContext    = 75
)
