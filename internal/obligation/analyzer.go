// Package obligation classifies contract sentences as obligations, rights or
// prohibitions and reports how evenly they fall on the parties.
package obligation

import (
	"fmt"
	"strings"

	"github.com/ppiankov/contractlens/internal/extract"
	"github.com/ppiankov/contractlens/internal/lexicon"
	"github.com/ppiankov/contractlens/internal/model"
	"github.com/ppiankov/contractlens/internal/util"
)

// concernPrefixLen bounds the sentence excerpt quoted in a concern
const concernPrefixLen = 100

// Analyzer classifies sentences with the statement marker table
type Analyzer struct {
	markers []lexicon.Marker
	roles   []lexicon.RoleIndicator
}

// NewAnalyzer creates an analyzer over the default marker and role tables
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		markers: lexicon.StatementMarkers,
		roles:   lexicon.PartyRoles,
	}
}

// Analyze splits the text into sentences and buckets every non-neutral one
func (a *Analyzer) Analyze(text string) model.ObligationAnalysis {
	result := model.ObligationAnalysis{
		Obligations:  []model.ObligationStatement{},
		Rights:       []model.ObligationStatement{},
		Prohibitions: []model.ObligationStatement{},
		Summary:      model.ObligationSummary{ByParty: make(map[model.PartyRole]int)},
	}

	for _, sentence := range extract.SplitSentences(text) {
		stmt := a.Classify(sentence)
		switch stmt.Type {
		case model.StatementObligation:
			result.Obligations = append(result.Obligations, stmt)
			if stmt.Strength == model.StrengthStrong {
				result.Summary.StrongObligations++
			}
		case model.StatementRight:
			result.Rights = append(result.Rights, stmt)
			if stmt.Strength == model.StrengthExclusive {
				result.Summary.ExclusiveRights++
			}
		case model.StatementProhibition:
			result.Prohibitions = append(result.Prohibitions, stmt)
		default:
			continue
		}
		result.Summary.ByParty[stmt.Party]++
	}

	result.Summary.TotalObligations = len(result.Obligations)
	result.Summary.TotalRights = len(result.Rights)
	result.Summary.TotalProhibitions = len(result.Prohibitions)
	result.OneSided = OneSided(result)
	return result
}

// Classify assigns a single sentence its statement type, strength and party.
// The first marker row containing a matching phrase wins.
func (a *Analyzer) Classify(sentence string) model.ObligationStatement {
	lower := strings.ToLower(sentence)
	for _, m := range a.markers {
		for _, phrase := range m.Phrases {
			if strings.Contains(lower, phrase) {
				return model.ObligationStatement{
					Text:      sentence,
					Type:      m.Type,
					Strength:  m.Strength,
					Party:     a.party(lower),
					Indicator: phrase,
				}
			}
		}
	}
	return model.ObligationStatement{
		Text:     sentence,
		Type:     model.StatementNeutral,
		Strength: model.StrengthNone,
		Party:    model.RoleUnknown,
	}
}

func (a *Analyzer) party(lower string) model.PartyRole {
	for _, r := range a.roles {
		if util.ContainsAny(lower, r.Phrases) {
			return r.Role
		}
	}
	return model.RoleUnspecified
}

// OneSided flags exclusive rights and strong prohibitions that land on a
// specific party and compares the tallies of both sides
func OneSided(analysis model.ObligationAnalysis) model.OneSidedAssessment {
	out := model.OneSidedAssessment{
		FirstPartyFavored:  []model.FavoredTerm{},
		SecondPartyFavored: []model.FavoredTerm{},
		Concerns:           []string{},
	}

	for _, r := range analysis.Rights {
		if r.Strength != model.StrengthExclusive {
			continue
		}
		term := model.FavoredTerm{Kind: "exclusive_right", Text: r.Text}
		switch r.Party {
		case model.RoleFirstParty:
			out.FirstPartyFavored = append(out.FirstPartyFavored, term)
			out.Concerns = append(out.Concerns, concern("first", r.Text))
		case model.RoleSecondParty:
			out.SecondPartyFavored = append(out.SecondPartyFavored, term)
			out.Concerns = append(out.Concerns, concern("second", r.Text))
		}
	}

	// A strong prohibition binds one side, so it favors the other
	for _, p := range analysis.Prohibitions {
		if p.Strength != model.StrengthStrong {
			continue
		}
		term := model.FavoredTerm{Kind: "strong_prohibition", Text: p.Text}
		switch p.Party {
		case model.RoleSecondParty:
			out.FirstPartyFavored = append(out.FirstPartyFavored, term)
		case model.RoleFirstParty:
			out.SecondPartyFavored = append(out.SecondPartyFavored, term)
		}
	}

	first, second := len(out.FirstPartyFavored), len(out.SecondPartyFavored)
	switch {
	case first > second+lexicon.OneSidedMargin:
		out.Assessment = lexicon.VerdictFirstParty
	case second > first+lexicon.OneSidedMargin:
		out.Assessment = lexicon.VerdictSecondParty
	default:
		out.Assessment = lexicon.VerdictBalanced
	}
	return out
}

func concern(side, text string) string {
	return fmt.Sprintf("Exclusive right favoring %s party: %s...", side, util.Truncate(text, concernPrefixLen))
}
