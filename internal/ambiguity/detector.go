// Package ambiguity finds vague vocabulary, open-ended constructions,
// undefined cross-references and missing essentials in contract text.
package ambiguity

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ppiankov/contractlens/internal/lexicon"
	"github.com/ppiankov/contractlens/internal/model"
	"github.com/ppiankov/contractlens/internal/util"
)

type vagueTerm struct {
	term  string
	level model.AmbiguityLevel
	re    *regexp.Regexp
}

type ambiguousPattern struct {
	re          *regexp.Regexp
	description string
}

// Detector holds the compiled ambiguity tables
type Detector struct {
	vague      []vagueTerm
	patterns   []ambiguousPattern
	references []*regexp.Regexp
	meaning    *regexp.Regexp
	amount     *regexp.Regexp
	date       *regexp.Regexp
	duration   *regexp.Regexp
}

// NewDetector compiles the vague vocabularies and pattern tables
func NewDetector() *Detector {
	d := &Detector{
		meaning:  regexp.MustCompile(`(?i)\b(\w+)\s+(?:shall\s+)?mean`),
		amount:   regexp.MustCompile(lexicon.SpecificAmount),
		date:     regexp.MustCompile(lexicon.SpecificDate),
		duration: regexp.MustCompile(`(?i)` + lexicon.SpecificDuration),
	}
	for _, tier := range lexicon.VagueTerms {
		for _, term := range tier.Terms {
			d.vague = append(d.vague, vagueTerm{
				term:  term,
				level: tier.Level,
				re:    regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`),
			})
		}
	}
	for _, p := range lexicon.AmbiguousPatterns {
		d.patterns = append(d.patterns, ambiguousPattern{
			re:          regexp.MustCompile(`(?i)` + p.Expr),
			description: p.Description,
		})
	}
	for _, expr := range lexicon.ReferencePatterns {
		d.references = append(d.references, regexp.MustCompile(`(?i)`+expr))
	}
	return d
}

// Detect runs the four ambiguity checks and folds them into a 0-10 score
func (d *Detector) Detect(text string) model.AmbiguityResult {
	result := model.AmbiguityResult{
		VagueTerms:          d.vagueTerms(text),
		AmbiguousPatterns:   d.ambiguousPatterns(text),
		UndefinedReferences: d.undefinedReferences(text),
		MissingSpecificity:  missingCategories(text),
		Specificity: model.SpecificityChecks{
			HasSpecificAmounts:   d.amount.MatchString(text),
			HasSpecificDates:     d.date.MatchString(text),
			HasSpecificDurations: d.duration.MatchString(text),
		},
	}
	result.Score = Score(result)
	result.Level = model.AmbiguityLevelFor(result.Score)
	result.Recommendations = recommendations(result)
	return result
}

func (d *Detector) vagueTerms(text string) []model.VagueTerm {
	found := []model.VagueTerm{}
	for _, v := range d.vague {
		for _, loc := range v.re.FindAllStringIndex(text, -1) {
			found = append(found, model.VagueTerm{
				Term:     v.term,
				Severity: v.level,
				Position: loc[0],
				Context:  util.Window(text, loc[0], loc[1], lexicon.AmbiguityContext),
			})
		}
	}
	return found
}

func (d *Detector) ambiguousPatterns(text string) []model.AmbiguousPattern {
	found := []model.AmbiguousPattern{}
	for _, p := range d.patterns {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			found = append(found, model.AmbiguousPattern{
				Match:       text[loc[0]:loc[1]],
				Description: p.description,
				Context:     util.Window(text, loc[0], loc[1], lexicon.AmbiguityContext),
			})
		}
	}
	return found
}

func (d *Detector) undefinedReferences(text string) []model.UndefinedReference {
	found := []model.UndefinedReference{}
	defs := d.definitions(text)
	for _, re := range d.references {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			term := text[loc[2]:loc[3]]
			if defs.has(term) {
				continue
			}
			found = append(found, model.UndefinedReference{
				Term:    term,
				Context: util.Window(text, loc[0], loc[1], lexicon.AmbiguityContext),
			})
		}
	}
	return found
}

// definitions indexes the terms a text defines: quoted anywhere, or
// introduced by a "<term> means" construction
type definitions struct {
	lower   string
	meaning map[string]bool
}

func (d *Detector) definitions(text string) definitions {
	defs := definitions{lower: strings.ToLower(text), meaning: make(map[string]bool)}
	for _, m := range d.meaning.FindAllStringSubmatch(text, -1) {
		defs.meaning[strings.ToLower(m[1])] = true
	}
	return defs
}

func (defs definitions) has(term string) bool {
	t := strings.ToLower(term)
	return defs.meaning[t] ||
		strings.Contains(defs.lower, `"`+t+`"`) ||
		strings.Contains(defs.lower, `'`+t+`'`)
}

// IsDefined reports whether the text defines term
func (d *Detector) IsDefined(text, term string) bool {
	return d.definitions(text).has(term)
}

func missingCategories(text string) []model.MissingCategory {
	lower := strings.ToLower(text)
	missing := []model.MissingCategory{}
	for _, cat := range lexicon.EssentialCategories {
		if util.ContainsAny(lower, cat.Indicators) {
			continue
		}
		missing = append(missing, model.MissingCategory{
			Category: cat.Name,
			Message:  fmt.Sprintf("No clear %s terms found in contract", cat.Name),
		})
	}
	return missing
}

// Score combines the capped per-check contributions, rounded to one decimal and clamped to 10
func Score(r model.AmbiguityResult) float64 {
	var high, medium int
	for _, v := range r.VagueTerms {
		switch v.Severity {
		case model.AmbiguityHigh:
			high++
		case model.AmbiguityMedium:
			medium++
		}
	}

	score := min(lexicon.HighTermCap, float64(high)*lexicon.HighTermWeight) +
		min(lexicon.MediumTermCap, float64(medium)*lexicon.MediumTermWeight) +
		min(lexicon.PatternCap, float64(len(r.AmbiguousPatterns))*lexicon.PatternWeight) +
		min(lexicon.UndefinedRefCap, float64(len(r.UndefinedReferences))*lexicon.UndefinedRefWeight) +
		float64(len(r.MissingSpecificity))*lexicon.MissingCategoryCost

	return min(10.0, util.Round(score, 1))
}

func recommendations(r model.AmbiguityResult) []string {
	recs := []string{}
	for _, v := range r.VagueTerms {
		if v.Severity == model.AmbiguityHigh {
			recs = append(recs, fmt.Sprintf(
				"Define specific criteria for vague terms like '%s' to avoid interpretation disputes.", v.Term))
			break
		}
	}
	if len(r.AmbiguousPatterns) > 0 {
		recs = append(recs, "Replace discretionary clauses with objective criteria where possible.")
	}
	for _, m := range r.MissingSpecificity {
		recs = append(recs, fmt.Sprintf("Add specific %s terms to the contract.", m.Category))
	}
	if !r.Specificity.HasSpecificDates {
		recs = append(recs, "Include specific dates for key milestones and deadlines.")
	}
	return recs
}
