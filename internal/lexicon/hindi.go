package lexicon

// HindiTerm maps a Devanagari legal term to its English equivalent
type HindiTerm struct {
	Hindi   string
	English string
}

// HindiLegalTerms is replaced in order; multi-word terms must precede their parts
var HindiLegalTerms = []HindiTerm{
	{"बौद्धिक संपदा", "intellectual property"},
	{"अनुबंध", "contract"},
	{"करार", "agreement"},
	{"पक्ष", "party"},
	{"नियम", "terms"},
	{"शर्तें", "conditions"},
	{"दायित्व", "liability"},
	{"अधिकार", "rights"},
	{"समाप्ति", "termination"},
	{"हस्ताक्षर", "signature"},
	{"गवाह", "witness"},
	{"तारीख", "date"},
	{"राशि", "amount"},
	{"भुगतान", "payment"},
	{"अवधि", "duration"},
	{"नोटिस", "notice"},
	{"विवाद", "dispute"},
	{"मध्यस्थता", "arbitration"},
	{"क्षतिपूर्ति", "indemnity"},
	{"गोपनीयता", "confidentiality"},
}

// Language detection
const (
	MinDetectableLen   = 10
	DevanagariFirst    = 0x0900
	DevanagariLast     = 0x097F
	DevanagariMinRatio = 0.3
)
