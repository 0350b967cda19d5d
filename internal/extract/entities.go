package extract

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ppiankov/contractlens/internal/lexicon"
	"github.com/ppiankov/contractlens/internal/model"
	"github.com/ppiankov/contractlens/internal/util"
)

// Recognizer is an optional named-entity collaborator
type Recognizer interface {
	Recognize(ctx context.Context, text string) (*model.NamedEntities, error)
}

// EntityExtractor pulls parties, dates, amounts, durations, percentages and
// jurisdictions out of contract text with pattern families
type EntityExtractor struct {
	parties       []*regexp.Regexp
	dates         []*regexp.Regexp
	amounts       []*regexp.Regexp
	durations     []*regexp.Regexp
	percentage    *regexp.Regexp
	jurisdictions []*regexp.Regexp
}

// NewEntityExtractor compiles the entity pattern families
func NewEntityExtractor() *EntityExtractor {
	return &EntityExtractor{
		parties:       compileAll(lexicon.PartyPatterns),
		dates:         compileAll(lexicon.DatePatterns),
		amounts:       compileAll(lexicon.AmountPatterns),
		durations:     compileAll(lexicon.DurationPatterns),
		percentage:    regexp.MustCompile(lexicon.PercentagePattern),
		jurisdictions: compileAll(lexicon.JurisdictionPatterns),
	}
}

func compileAll(exprs []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}

// Extract runs every pattern family over the text
func (e *EntityExtractor) Extract(text string) model.Entities {
	return model.Entities{
		Parties:       e.extractParties(text),
		Dates:         e.extractDates(text),
		Amounts:       e.extractAmounts(text),
		Durations:     e.extractDurations(text),
		Percentages:   e.extractPercentages(text),
		Jurisdictions: e.extractJurisdictions(text),
	}
}

// Merge adds recognizer output to the entity bag; nil leaves it untouched
func Merge(entities model.Entities, named *model.NamedEntities) model.Entities {
	if named == nil {
		return entities
	}
	entities.Organizations = dedupeStrings(append(entities.Organizations, named.Organizations...))
	entities.Persons = dedupeStrings(append(entities.Persons, named.Persons...))
	entities.Locations = dedupeStrings(append(entities.Locations, named.Locations...))
	return entities
}

// captured returns group 1 when the pattern has groups and it participated, else the whole match
func captured(text string, loc []int) string {
	if len(loc) >= 4 && loc[2] >= 0 {
		return text[loc[2]:loc[3]]
	}
	return text[loc[0]:loc[1]]
}

// normKey is the case- and whitespace-insensitive dedup key within a kind
func normKey(s string) string {
	return strings.ToLower(util.CollapseSpace(s))
}

func (e *EntityExtractor) extractParties(text string) []model.Party {
	var parties []model.Party
	seen := make(map[string]bool)

	for _, re := range e.parties {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			name := util.CollapseSpace(captured(text, loc))
			name = strings.TrimSpace(strings.Trim(name, ".,"))
			if utf8.RuneCountInString(name) <= lexicon.MinPartyNameLen {
				continue
			}
			key := normKey(name)
			if seen[key] {
				continue
			}
			seen[key] = true
			parties = append(parties, model.Party{Name: name, Type: partyType(name)})
		}
	}

	if len(parties) > lexicon.MaxParties {
		parties = parties[:lexicon.MaxParties]
	}
	return parties
}

func partyType(name string) model.PartyType {
	if util.ContainsAny(strings.ToLower(name), lexicon.CompanyIndicators) {
		return model.PartyCompany
	}
	return model.PartyIndividual
}

func (e *EntityExtractor) extractDates(text string) []model.DateEntity {
	var dates []model.DateEntity
	seen := make(map[string]bool)

	for _, re := range e.dates {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			raw := strings.TrimSpace(captured(text, loc))
			key := normKey(raw)
			if seen[key] {
				continue
			}
			seen[key] = true
			dates = append(dates, model.DateEntity{Raw: raw, Parsed: ParseDate(raw)})
		}
	}
	return dates
}

// ParseDate normalizes a date literal to YYYY-MM-DD, or nil when no layout fits
func ParseDate(raw string) *string {
	for _, layout := range lexicon.DateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			iso := t.Format("2006-01-02")
			return &iso
		}
	}
	return nil
}

func (e *EntityExtractor) extractAmounts(text string) []model.Amount {
	var amounts []model.Amount
	seen := make(map[string]bool)

	for _, re := range e.amounts {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			full := text[loc[0]:loc[1]]
			clean := strings.NewReplacer(",", "", " ", "").Replace(captured(text, loc))
			value, err := strconv.ParseFloat(clean, 64)
			if err != nil {
				continue
			}
			key := normKey(full)
			if seen[key] {
				continue
			}
			seen[key] = true
			amounts = append(amounts, model.Amount{Raw: full, Value: value, Currency: currencyOf(full)})
		}
	}
	return amounts
}

func currencyOf(match string) string {
	switch {
	case strings.Contains(match, "$"), strings.Contains(match, "USD"):
		return "USD"
	case strings.Contains(match, "EUR"):
		return "EUR"
	case strings.Contains(match, "GBP"):
		return "GBP"
	default:
		return lexicon.DefaultCurrency
	}
}

func (e *EntityExtractor) extractDurations(text string) []model.Duration {
	var durations []model.Duration
	seen := make(map[string]bool)

	for _, re := range e.durations {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			full := text[loc[0]:loc[1]]
			value, err := strconv.Atoi(captured(text, loc))
			if err != nil {
				continue
			}
			key := normKey(full)
			if seen[key] {
				continue
			}
			seen[key] = true
			durations = append(durations, model.Duration{Raw: full, Value: value, Unit: unitOf(full)})
		}
	}
	return durations
}

func unitOf(s string) model.DurationUnit {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "year"):
		return model.UnitYears
	case strings.Contains(lower, "month"):
		return model.UnitMonths
	case strings.Contains(lower, "week"):
		return model.UnitWeeks
	default:
		return model.UnitDays
	}
}

func (e *EntityExtractor) extractPercentages(text string) []model.Percentage {
	var percentages []model.Percentage
	seen := make(map[string]bool)

	for _, loc := range e.percentage.FindAllStringSubmatchIndex(text, -1) {
		value, err := strconv.ParseFloat(text[loc[2]:loc[3]], 64)
		if err != nil {
			continue
		}
		raw := text[loc[0]:loc[1]]
		ctx := util.PlainWindow(text, loc[0], loc[1], lexicon.PercentageWindow)
		key := normKey(raw)
		if seen[key] {
			continue
		}
		seen[key] = true
		percentages = append(percentages, model.Percentage{Raw: raw, Value: value, Context: ctx})
	}
	return percentages
}

func (e *EntityExtractor) extractJurisdictions(text string) []string {
	var found []string
	for _, re := range e.jurisdictions {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			found = append(found, strings.TrimSpace(captured(text, loc)))
		}
	}

	lower := strings.ToLower(text)
	for _, city := range lexicon.JurisdictionCities {
		if strings.Contains(lower, strings.ToLower(city)) {
			found = append(found, city)
		}
	}
	return dedupeStrings(found)
}

// dedupeStrings keeps the first occurrence of each case-insensitive value
func dedupeStrings(values []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, v := range values {
		key := normKey(v)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}
