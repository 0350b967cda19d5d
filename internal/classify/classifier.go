// Package classify assigns a contract to one of the predefined contract types
package classify

import (
	"regexp"
	"strings"

	"github.com/ppiankov/contractlens/internal/lexicon"
	"github.com/ppiankov/contractlens/internal/model"
	"github.com/ppiankov/contractlens/internal/util"
)

type keyword struct {
	phrase string
	re     *regexp.Regexp
}

type profile struct {
	lexicon.ContractProfile
	keywords []keyword
	title    *regexp.Regexp
}

// Classifier scores text against weighted keyword profiles
type Classifier struct {
	profiles []profile
}

// NewClassifier compiles every profile's keywords and title pattern
func NewClassifier() *Classifier {
	c := &Classifier{}
	for _, p := range lexicon.ContractProfiles {
		compiled := profile{ContractProfile: p, title: regexp.MustCompile(p.Title)}
		for _, kw := range p.Keywords {
			compiled.keywords = append(compiled.keywords, keyword{
				phrase: kw,
				re:     regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`),
			})
		}
		c.profiles = append(c.profiles, compiled)
	}
	return c
}

// Classify scores every contract type and picks the strongest.
// Scores below the classification floor yield unknown with zero confidence.
func (c *Classifier) Classify(text string) model.Classification {
	result := model.Classification{
		PrimaryType: model.ContractUnknown,
		AllScores:   make(map[model.ContractType]model.TypeScore, len(c.profiles)),
		TopKeywords: []string{},
	}

	head := util.Truncate(text, lexicon.TitleWindow)
	for _, p := range c.profiles {
		if p.title.MatchString(head) {
			result.TitleMatch = p.Type
			break
		}
	}

	var (
		best      model.ContractType
		bestScore float64
		total     float64
	)
	for _, p := range c.profiles {
		score := c.score(p, text)
		if result.TitleMatch == p.Type {
			score.Score *= 2
		}
		result.AllScores[p.Type] = score
		total += score.Score
		if score.Score > bestScore {
			best, bestScore = p.Type, score.Score
		}
	}

	if bestScore < lexicon.ClassificationFloor {
		return result
	}

	winner := result.AllScores[best]
	result.PrimaryType = best
	result.Confidence = util.Round(bestScore/total, 2)
	result.TopKeywords = winner.MatchedKeywords
	if len(result.TopKeywords) > lexicon.MaxTopKeywords {
		result.TopKeywords = result.TopKeywords[:lexicon.MaxTopKeywords]
	}
	return result
}

func (c *Classifier) score(p profile, text string) model.TypeScore {
	ts := model.TypeScore{MatchedKeywords: []string{}}
	if strings.TrimSpace(text) == "" {
		return ts
	}
	for _, kw := range p.keywords {
		n := len(kw.re.FindAllStringIndex(text, -1))
		if n == 0 {
			continue
		}
		ts.Score += float64(n) * p.Weight
		ts.MatchedKeywords = append(ts.MatchedKeywords, kw.phrase)
	}
	ts.KeywordCount = len(ts.MatchedKeywords)
	return ts
}

// Description returns the human-readable label for a contract type
func Description(t model.ContractType) string {
	for _, p := range lexicon.ContractProfiles {
		if p.Type == t {
			return p.Description
		}
	}
	return lexicon.UnknownDescription
}

// Label is the short name of a contract type, e.g. "Employment Agreement"
func Label(t model.ContractType) string {
	desc := Description(t)
	if i := strings.Index(desc, " - "); i >= 0 {
		return desc[:i]
	}
	return desc
}
