package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ppiankov/contractlens/internal/lexicon"
	"github.com/ppiankov/contractlens/internal/model"
)

var (
	levelThree = regexp.MustCompile(`^\d+\.\d+\.\d+`)
	levelTwo   = regexp.MustCompile(`^\d+\.\d+`)
	paraBreak  = regexp.MustCompile(`\n\s*\n`)
)

// Segmenter splits contract text into clauses
type Segmenter struct {
	numeric  *regexp.Regexp
	article  *regexp.Regexp
	roman    *regexp.Regexp
	lettered *regexp.Regexp
}

// NewSegmenter creates a clause segmenter
func NewSegmenter() *Segmenter {
	return &Segmenter{
		numeric:  regexp.MustCompile(lexicon.HeadingNumeric),
		article:  regexp.MustCompile(lexicon.HeadingArticle),
		roman:    regexp.MustCompile(lexicon.HeadingRoman),
		lettered: regexp.MustCompile(lexicon.HeadingLettered),
	}
}

type heading struct {
	number string
	title  string
	level  int
}

// Segment walks the text line by line and starts a new clause at every heading.
// Without any heading it falls back to paragraphs, and without any paragraph
// long enough it returns the whole text as a single clause. Blank input yields nil.
func (s *Segmenter) Segment(text string) []model.Clause {
	var clauses []model.Clause
	var current *model.Clause

	flush := func() {
		if current == nil {
			return
		}
		current.Text = strings.TrimSpace(current.Text)
		current.Type = ClassifyClause(current.Text)
		current.Position = len(clauses)
		clauses = append(clauses, *current)
		current = nil
	}

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if h, ok := s.matchHeading(line); ok {
			flush()
			current = &model.Clause{
				Number:    h.number,
				Heading:   h.title,
				Level:     h.level,
				StartLine: i + 1,
				Text:      line,
			}
			continue
		}

		if current != nil {
			current.Text += "\n" + line
		}
	}
	flush()

	if len(clauses) == 0 {
		clauses = byParagraphs(text)
	}
	if len(clauses) == 0 && strings.TrimSpace(text) != "" {
		whole := strings.TrimSpace(text)
		clauses = []model.Clause{{
			Number: "1",
			Level:  1,
			Text:   whole,
			Type:   ClassifyClause(whole),
		}}
	}

	return clauses
}

func (s *Segmenter) matchHeading(line string) (heading, bool) {
	for _, re := range []*regexp.Regexp{s.numeric, s.article, s.roman} {
		if m := re.FindStringSubmatch(line); m != nil {
			return heading{number: m[1], title: strings.TrimSpace(m[2]), level: levelOf(m[1])}, true
		}
	}

	if m := s.lettered.FindStringSubmatch(line); m != nil {
		number := m[1]
		if number == "" {
			number = m[2]
		}
		return heading{number: number, title: strings.TrimSpace(m[3]), level: 2}, true
	}

	if isCapsHeading(line) {
		return heading{title: line, level: 1}, true
	}

	return heading{}, false
}

// levelOf derives nesting depth from a heading number
func levelOf(number string) int {
	switch {
	case levelThree.MatchString(number):
		return 3
	case levelTwo.MatchString(number):
		return 2
	case number != "" && unicode.IsLetter(rune(number[0])):
		return 2
	default:
		return 1
	}
}

// isCapsHeading reports a short line whose cased letters are all upper case
func isCapsHeading(line string) bool {
	n := utf8.RuneCountInString(line)
	if n <= lexicon.CapsHeadingMinLen || n >= lexicon.CapsHeadingMaxLen {
		return false
	}
	cased := false
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

func byParagraphs(text string) []model.Clause {
	var clauses []model.Clause
	for i, para := range paraBreak.Split(text, -1) {
		para = strings.TrimSpace(para)
		if utf8.RuneCountInString(para) <= lexicon.ParagraphMinLen {
			continue
		}
		clauses = append(clauses, model.Clause{
			Position: len(clauses),
			Number:   strconv.Itoa(i + 1),
			Level:    1,
			Text:     para,
			Type:     ClassifyClause(para),
		})
	}
	return clauses
}

// ClassifyClause votes a clause type by counting indicator phrases present in the text.
// The first type with the strictly highest count wins; no match yields general.
func ClassifyClause(text string) model.ClauseType {
	lower := strings.ToLower(text)
	best := model.ClauseGeneral
	bestCount := 0
	for _, ind := range lexicon.ClauseIndicators {
		count := 0
		for _, phrase := range ind.Phrases {
			if strings.Contains(lower, phrase) {
				count++
			}
		}
		if count > bestCount {
			best, bestCount = ind.Type, count
		}
	}
	return best
}

// Summarize aggregates clause statistics
func Summarize(clauses []model.Clause) model.ClauseSummary {
	summary := model.ClauseSummary{
		Total:    len(clauses),
		ByType:   make(map[model.ClauseType]int),
		MaxDepth: 1,
	}
	for _, c := range clauses {
		summary.ByType[c.Type]++
		if c.Level > summary.MaxDepth {
			summary.MaxDepth = c.Level
		}
	}
	return summary
}

// ClausesByType filters clauses by type, preserving order
func ClausesByType(clauses []model.Clause, t model.ClauseType) []model.Clause {
	var out []model.Clause
	for _, c := range clauses {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}
