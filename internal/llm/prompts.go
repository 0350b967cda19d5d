package llm

import (
	"fmt"
	"strings"

	"github.com/ppiankov/contractlens/internal/util"
)

// System prompts
const (
	LegalAssistantSystem = `You are an expert legal assistant specializing in contract analysis for small and medium businesses (SMEs) in India.

Your role is to:
1. Explain legal terms in simple, plain language that business owners can understand
2. Identify potential risks and red flags in contracts
3. Suggest fairer alternatives for problematic clauses
4. Provide practical, actionable advice

Guidelines:
- Always explain legal jargon in simple terms
- Be balanced - acknowledge both risks and benefits
- Consider the SME perspective (limited resources, less bargaining power)
- Reference relevant Indian laws where applicable
- Never provide specific legal advice - recommend professional consultation for complex matters
- Be concise but thorough`

	ClauseExplanationSystem = `You are a legal expert explaining contract clauses to business owners who may not have legal training.

Your explanations should:
- Use simple, everyday language
- Avoid legal jargon (or explain it immediately when used)
- Give practical examples where helpful
- Highlight both what the clause means AND its implications
- Be concise (2-3 sentences for simple clauses, more for complex ones)`

	ClauseSuggestionSystem = `You are a contract negotiation expert helping SMEs get fairer terms.

Your suggestions should:
- Propose specific alternative wording
- Explain why the alternative is more balanced
- Maintain legal validity of the clause
- Be realistic (not one-sided in favor of the user)
- Consider that both parties need acceptable terms`

	EntityExtractionSystem = `You extract named entities from legal contracts. Reply with a single JSON object and nothing else.`
)

// Prompt input limits, in runes
const (
	summaryInputLimit = 8000
	entityInputLimit  = 6000
)

// ExplainClausePrompt asks for a plain-language reading of one clause
func ExplainClausePrompt(clauseText, clauseType string) string {
	typeContext := ""
	if clauseType != "" {
		typeContext = fmt.Sprintf(" (This appears to be a %s clause)", humanize(clauseType))
	}

	return fmt.Sprintf(`Please explain the following contract clause in simple, plain language that a business owner can understand%s:

---
%s
---

Provide:
1. A simple explanation of what this clause means
2. The practical implications for a business signing this contract
3. Any potential concerns or things to watch out for`, typeContext, clauseText)
}

// SuggestAlternativePrompt asks for balanced replacement wording
func SuggestAlternativePrompt(clauseText string, concerns []string) string {
	concernsContext := ""
	if len(concerns) > 0 {
		concernsContext = "\n\nKey concerns to address: " + strings.Join(concerns, ", ")
	}

	return fmt.Sprintf(`Suggest a more balanced alternative to the following contract clause:%s

---
%s
---

Provide:
1. The suggested alternative clause text (complete wording)
2. Explanation of what changed and why
3. How this better protects the business while remaining fair to both parties`, concernsContext, clauseText)
}

// SummaryPrompt asks for an executive summary of the whole contract
func SummaryPrompt(contractText, contractType string) string {
	typeContext := ""
	if contractType != "" {
		typeContext = fmt.Sprintf(" (%s)", humanize(contractType))
	}

	return fmt.Sprintf(`Provide an executive summary of the following contract%s for a business owner:

---
%s
---

Include:
1. Overview (2-3 sentences on what this contract is about)
2. Key Terms (main obligations, rights, and timelines)
3. Financial Terms (payments, fees, penalties)
4. Duration and Termination conditions
5. Top 3 things the business owner should pay attention to

Keep the summary concise and in plain language.`, typeContext, util.Truncate(contractText, summaryInputLimit))
}

// SimplifyPrompt asks for a plain-language rewrite of legal text
func SimplifyPrompt(legalText string) string {
	return fmt.Sprintf(`Translate the following legal text into simple, everyday language that anyone can understand:

---
%s
---

Requirements:
- Use simple words and short sentences
- Explain any technical terms
- Keep the meaning accurate
- Make it suitable for someone with no legal background`, legalText)
}

// EntityPrompt asks for organizations, persons and locations as JSON
func EntityPrompt(contractText string) string {
	return fmt.Sprintf(`List the organizations, persons and locations named in the contract below.

Reply with JSON of the form {"organizations": [...], "persons": [...], "locations": [...]}.
Use the names exactly as written. Use empty lists when none are present.

---
%s
---`, util.Truncate(contractText, entityInputLimit))
}

// humanize turns an identifier such as payment_terms into "payment terms"
func humanize(id string) string {
	return strings.ReplaceAll(id, "_", " ")
}
