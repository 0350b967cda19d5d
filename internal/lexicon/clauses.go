package lexicon

import "github.com/ppiankov/contractlens/internal/model"

// Heading patterns, tried in order against a trimmed line
const (
	HeadingNumeric  = `^(\d+(?:\.\d+)*)\s*[\.:\-]?\s*(.+)`
	HeadingArticle  = `(?i)^(?:Article|Section|Clause)\s+(\d+(?:\.\d+)*)[\.:\-]?\s*(.+)`
	HeadingRoman    = `(?i)^([IVX]+)\s*[\.:\-]\s*(.+)`
	HeadingLettered = `^(?:\(([a-zA-Z])\)|([a-zA-Z])[\)\.])\s+(.+)`
)

// Caps heading length bounds (exclusive)
const (
	CapsHeadingMinLen = 3
	CapsHeadingMaxLen = 100
)

// ParagraphMinLen is the minimum length of a fallback paragraph clause
const ParagraphMinLen = 50

// ClauseIndicator lists the phrases that vote for a clause type
type ClauseIndicator struct {
	Type    model.ClauseType
	Phrases []string
}

// ClauseIndicators is ordered; on equal vote counts the earlier type wins
var ClauseIndicators = []ClauseIndicator{
	{model.ClauseDefinitions, []string{"definition", "definitions", "interpretation", "meanings"}},
	{model.ClauseObligations, []string{"shall", "must", "agrees to", "undertakes to", "is required to", "will provide"}},
	{model.ClauseRights, []string{"may", "is entitled to", "has the right to", "reserves the right"}},
	{model.ClauseProhibitions, []string{"shall not", "must not", "may not", "is prohibited from", "cannot"}},
	{model.ClausePaymentTerms, []string{"payment", "fee", "compensation", "invoice", "remuneration", "salary"}},
	{model.ClauseTermination, []string{"termination", "terminate", "cancellation", "end of agreement"}},
	{model.ClauseIndemnity, []string{"indemnify", "indemnification", "hold harmless", "indemnity"}},
	{model.ClauseConfidentiality, []string{"confidential", "non-disclosure", "proprietary", "trade secret"}},
	{model.ClauseIntellectualProperty, []string{"intellectual property", "ip rights", "copyright", "patent", "trademark"}},
	{model.ClauseDisputeResolution, []string{"dispute", "arbitration", "mediation", "litigation", "jurisdiction"}},
	{model.ClauseGoverningLaw, []string{"governing law", "applicable law", "laws of", "jurisdiction"}},
	{model.ClauseForceMajeure, []string{"force majeure", "act of god", "unforeseeable", "beyond control"}},
	{model.ClauseAmendment, []string{"amendment", "modification", "variation", "change to this agreement"}},
	{model.ClauseNotice, []string{"notice", "notification", "written notice", "days notice"}},
	{model.ClauseAssignment, []string{"assignment", "assign", "transfer rights", "novation"}},
	{model.ClauseEntireAgreement, []string{"entire agreement", "whole agreement", "supersedes"}},
	{model.ClauseSeverability, []string{"severability", "severable", "invalid provision"}},
	{model.ClauseWarranty, []string{"warranty", "warranties", "represents and warrants", "representation"}},
}
