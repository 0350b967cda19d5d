// Package compliance runs statutory checklists over contract text
package compliance

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ppiankov/contractlens/internal/lexicon"
	"github.com/ppiankov/contractlens/internal/model"
	"github.com/ppiankov/contractlens/internal/util"
)

type requirement struct {
	lexicon.Requirement
	patterns []*regexp.Regexp
	redFlags []*regexp.Regexp
}

func (r requirement) manual() bool {
	return len(r.patterns) == 0 && len(r.redFlags) == 0
}

// Checker holds the compiled checklists
type Checker struct {
	basic      []requirement
	general    []requirement
	employment []requirement
	lease      []requirement
	leaseTerm  *regexp.Regexp
	termWords  *regexp.Regexp
	breaks     *regexp.Regexp
}

// NewChecker compiles every checklist
func NewChecker() *Checker {
	return &Checker{
		basic:      compile(lexicon.BasicRequirements),
		general:    compile(lexicon.GeneralRequirements),
		employment: compile(lexicon.EmploymentRequirements),
		lease:      compile(lexicon.LeaseRequirements),
		leaseTerm:  regexp.MustCompile(lexicon.LeaseTerm),
		termWords:  regexp.MustCompile(lexicon.LeaseTermContext),
		breaks:     regexp.MustCompile(lexicon.LeaseSentenceBreak),
	}
}

func compile(reqs []lexicon.Requirement) []requirement {
	out := make([]requirement, 0, len(reqs))
	for _, r := range reqs {
		c := requirement{Requirement: r}
		for _, p := range r.Patterns {
			c.patterns = append(c.patterns, regexp.MustCompile(`(?i)`+p))
		}
		for _, p := range r.RedFlags {
			c.redFlags = append(c.redFlags, regexp.MustCompile(`(?i)`+p))
		}
		out = append(out, c)
	}
	return out
}

// Check runs the universal checklists plus the one matching the contract type
func (c *Checker) Check(text string, contractType model.ContractType) model.ComplianceResult {
	result := model.ComplianceResult{
		ContractType:    contractType,
		Basic:           c.evaluate(text, c.basic, lexicon.StatusFound, lexicon.StatusNotSpecified, false),
		General:         c.evaluate(text, c.general, lexicon.StatusAddressed, lexicon.StatusNotMentioned, false),
		Issues:          []string{},
		Warnings:        []string{},
		Recommendations: []string{},
	}

	switch contractType {
	case model.ContractEmployment:
		result.Employment = c.evaluate(text, c.employment, lexicon.StatusAddressed, lexicon.StatusEmploymentMiss, true)
	case model.ContractLease:
		result.Lease = c.evaluate(text, c.lease, lexicon.StatusMentioned, lexicon.StatusNotAddressed, false)
		if c.RequiresRegistration(text) {
			result.Lease = append(result.Lease, model.RequirementCheck{
				Name:        lexicon.LeaseRegistrationName,
				Description: lexicon.LeaseRegistrationDesc,
				Found:       true,
				Status:      lexicon.LeaseRegistrationStatus,
				Action:      lexicon.LeaseRegistrationAction,
			})
		}
	}

	compileFindings(&result)
	result.Score = Score(result)
	return result
}

func (c *Checker) evaluate(text string, reqs []requirement, okStatus, missStatus string, keepMatches bool) []model.RequirementCheck {
	checks := make([]model.RequirementCheck, 0, len(reqs))
	for _, r := range reqs {
		check := model.RequirementCheck{Name: r.Name, Description: r.Description}

		switch {
		case r.manual():
			check.Manual = true
			check.Status = lexicon.StatusManual
		case len(r.redFlags) > 0:
			flagged := anyMatch(r.redFlags, text)
			check.Found = !flagged
			check.Status = lexicon.StatusClear
			if flagged {
				check.Status = lexicon.StatusRedFlag
			}
		default:
			matches := collect(r.patterns, text)
			check.Found = len(matches) > 0
			check.Status = missStatus
			if check.Found {
				check.Status = okStatus
			}
			if keepMatches && check.Found {
				check.Matches = matches[:min(len(matches), lexicon.MaxRequirementMatches)]
			}
		}
		checks = append(checks, check)
	}
	return checks
}

// collect returns every match of every pattern: group 1 when the pattern captures, else the whole match
func collect(patterns []*regexp.Regexp, text string) []string {
	var out []string
	for _, re := range patterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if len(m) > 1 {
				out = append(out, m[1])
			} else {
				out = append(out, m[0])
			}
		}
	}
	return out
}

func anyMatch(patterns []*regexp.Regexp, text string) bool {
	for _, re := range patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// RequiresRegistration reports whether a stated lease term exceeds twelve months.
// Only durations in sentences with lease vocabulary count; a 24-month non-compete
// inside an 11-month lease does not.
func (c *Checker) RequiresRegistration(text string) bool {
	for _, sentence := range c.sentences(text) {
		if !c.termWords.MatchString(sentence) {
			continue
		}
		for _, m := range c.leaseTerm.FindAllStringSubmatch(sentence, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			months := n
			if strings.HasPrefix(strings.ToLower(m[2]), "year") {
				months = n * 12
			}
			if months > lexicon.LeaseRegistrationMonths {
				return true
			}
		}
	}
	return false
}

// sentences cuts at line breaks and at terminal punctuation followed by a capital,
// which keeps amounts like "Rs. 20,000" inside their sentence
func (c *Checker) sentences(text string) []string {
	var out []string
	start := 0
	for _, loc := range c.breaks.FindAllStringIndex(text, -1) {
		out = append(out, text[start:loc[0]+1])
		start = loc[1]
		if text[loc[0]] != '\n' {
			// keep the capital that opens the next sentence
			start = loc[1] - 1
		}
	}
	return append(out, text[start:])
}

func compileFindings(result *model.ComplianceResult) {
	for _, check := range result.Basic {
		switch {
		case check.Manual || check.Found:
		case check.Status == lexicon.StatusRedFlag:
			result.Issues = append(result.Issues, check.Description+" - red flags present")
		default:
			result.Issues = append(result.Issues, check.Description+" - not clearly specified")
		}
	}

	for _, check := range result.Employment {
		if !check.Manual && !check.Found {
			result.Warnings = append(result.Warnings, check.Description+" - should be addressed")
		}
	}

	for _, check := range result.Lease {
		switch {
		case check.Name == lexicon.LeaseRegistrationName:
			result.Issues = append(result.Issues, check.Action)
		case !check.Found:
			result.Warnings = append(result.Warnings, check.Description)
		}
	}

	if !found(result.General, "stamp_paper") {
		result.Recommendations = append(result.Recommendations, lexicon.StampPaperAdvice)
	}
	if !found(result.General, "witness") {
		result.Recommendations = append(result.Recommendations, lexicon.WitnessAdvice)
	}
}

func found(checks []model.RequirementCheck, name string) bool {
	for _, c := range checks {
		if c.Name == name {
			return c.Found
		}
	}
	return false
}

// Score is passed checks over applicable checks, as a percentage with one decimal.
// Every manual item counts as passed, whichever checklist it sits in. The registration
// notice stays out of both counts.
func Score(result model.ComplianceResult) float64 {
	var total, passed int
	for _, list := range [][]model.RequirementCheck{result.Basic, result.General, result.Employment, result.Lease} {
		for _, check := range list {
			if check.Name == lexicon.LeaseRegistrationName {
				continue
			}
			total++
			if check.Found || check.Manual {
				passed++
			}
		}
	}
	if total == 0 {
		return 100
	}
	return util.Round(float64(passed)/float64(total)*100, 1)
}

// Summary bands the score and keeps the first five of each list
func Summary(result model.ComplianceResult) model.ComplianceSummary {
	summary := model.ComplianceSummary{
		Score:           result.Score,
		CriticalIssues:  head(result.Issues),
		Warnings:        head(result.Warnings),
		Recommendations: head(result.Recommendations),
	}
	switch {
	case result.Score >= 80:
		summary.Status = lexicon.ComplianceGood
	case result.Score >= 60:
		summary.Status = lexicon.ComplianceModerate
	default:
		summary.Status = lexicon.ComplianceLow
	}
	return summary
}

func head(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items[:min(len(items), 5)]
}
