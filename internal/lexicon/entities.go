package lexicon

// Party patterns; the party name is capture group 1
var PartyPatterns = []string{
	`(?i)(?:between|party|parties)[:\s]+([A-Z][A-Za-z\s&,\.]+?)(?:and|,|\(|hereinafter)`,
	`(?i)hereinafter\s+(?:referred\s+to\s+as|called)\s+["']?([A-Za-z\s]+)["']?`,
	`(?i)([A-Z][A-Za-z\s&]+(?:Pvt\.?|Private|Ltd\.?|Limited|LLP|Inc\.?|Corp\.?))`,
}

// CompanyIndicators mark a party name as a company
var CompanyIndicators = []string{"pvt", "private", "ltd", "limited", "llp", "inc", "corp", "company", "firm"}

const (
	MaxParties      = 10
	MinPartyNameLen = 3 // exclusive
)

const months = `January|February|March|April|May|June|July|August|September|October|November|December`

// Date patterns; the date is capture group 1, or the whole match when there is no group
var DatePatterns = []string{
	`(\d{1,2}[/\-\.]\d{1,2}[/\-\.]\d{2,4})`,
	`(?i)(\d{1,2}\s+(?:` + months + `)\s+\d{4})`,
	`(?i)(?:` + months + `)\s+\d{1,2},?\s+\d{4}`,
	`(?i)(?:dated|effective|commencing)\s+(?:on\s+)?(\d{1,2}[/\-\.]\d{1,2}[/\-\.]\d{2,4})`,
}

// DateLayouts are tried in order; the first that parses wins
var DateLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2.1.2006",
	"1/2/2006",
	"2006-1-2",
	"2 January 2006",
	"January 2, 2006",
	"January 2 2006",
}

// AmountPattern carries its capture group and the currency policy
var AmountPatterns = []string{
	`(?i)(?:Rs\.?|INR|₹)\s*([\d,]+(?:\.\d{2})?)`,
	`(?i)([\d,]+(?:\.\d{2})?)\s*(?:rupees|lakhs?|crores?)`,
	`(?i)\$\s*([\d,]+(?:\.\d{2})?)`,
	`(?i)(?:USD|EUR|GBP)\s*([\d,]+(?:\.\d{2})?)`,
}

// DefaultCurrency applies when no other currency marker is present
const DefaultCurrency = "INR"

// Duration patterns; the number is capture group 1
var DurationPatterns = []string{
	`(?i)(\d+)\s*(?:years?|months?|weeks?|days?)`,
	`(?i)(?:period|term|duration)\s+of\s+(\d+)\s*(?:years?|months?|weeks?|days?)`,
	`(?i)for\s+a\s+(?:period|term)\s+of\s+(\d+)\s*(?:years?|months?|weeks?|days?)`,
}

// PercentagePattern captures the numeric value in group 1
const (
	PercentagePattern = `(?i)(\d+(?:\.\d+)?)\s*(?:%|percent|per\s*cent)`
	PercentageWindow  = 50
)

// Jurisdiction patterns; group 1 when present, else the whole match
var JurisdictionPatterns = []string{
	`(?i)(?:jurisdiction|laws?\s+of|courts?\s+(?:of|at|in))\s+([A-Z][A-Za-z\s]+?)(?:\.|,|and)`,
	`(?i)(?:Mumbai|Delhi|Bangalore|Chennai|Kolkata|Hyderabad|Pune|Ahmedabad)\s+(?:courts?|jurisdiction)`,
}

// JurisdictionCities is a gazetteer matched as case-insensitive substrings
var JurisdictionCities = []string{
	"Mumbai", "Delhi", "New Delhi", "Bangalore", "Bengaluru",
	"Chennai", "Kolkata", "Hyderabad", "Pune", "Ahmedabad",
}
