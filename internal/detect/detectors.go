// Package detect scans contract text for nine named families of risky clauses
package detect

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ppiankov/contractlens/internal/lexicon"
	"github.com/ppiankov/contractlens/internal/model"
	"github.com/ppiankov/contractlens/internal/util"
)

type termination struct {
	kind     string
	patterns []*regexp.Regexp
}

// Detectors holds every detector's compiled pattern family. It is safe for
// concurrent use once constructed.
type Detectors struct {
	penalty         []*regexp.Regexp
	indemnity       []*regexp.Regexp
	termination     []termination
	arbitration     []*regexp.Regexp
	autoRenewal     []*regexp.Regexp
	nonCompete      []*regexp.Regexp
	ipTransfer      []*regexp.Regexp
	confidentiality []*regexp.Regexp
	liabilityCaps   []*regexp.Regexp

	penaltyAmount   *regexp.Regexp
	broadScope      []*regexp.Regexp
	narrowScope     []*regexp.Regexp
	notice          *regexp.Regexp
	seat            *regexp.Regexp
	rules           *regexp.Regexp
	renewalDuration *regexp.Regexp
	optOut          *regexp.Regexp
	competeDuration *regexp.Regexp
	geography       *regexp.Regexp
	qualifier       *regexp.Regexp
	secretDuration  *regexp.Regexp
	capAmount       *regexp.Regexp
	capPercentage   *regexp.Regexp
}

// New compiles all detector patterns
func New() *Detectors {
	d := &Detectors{
		penalty:         fold(lexicon.PenaltyPatterns),
		indemnity:       fold(lexicon.IndemnityPatterns),
		arbitration:     fold(lexicon.ArbitrationPatterns),
		autoRenewal:     fold(lexicon.AutoRenewalPatterns),
		nonCompete:      fold(lexicon.NonCompetePatterns),
		ipTransfer:      fold(lexicon.IPTransferPatterns),
		confidentiality: fold(lexicon.ConfidentialityPatterns),
		liabilityCaps:   fold(lexicon.LiabilityCapPatterns),

		penaltyAmount:   regexp.MustCompile(lexicon.PenaltyAmount),
		broadScope:      fold(lexicon.IndemnityBroad),
		narrowScope:     fold(lexicon.IndemnityNarrow),
		notice:          regexp.MustCompile(lexicon.TerminationNotice),
		seat:            regexp.MustCompile(lexicon.ArbitrationSeat),
		rules:           regexp.MustCompile(lexicon.ArbitrationRules),
		renewalDuration: regexp.MustCompile(lexicon.AutoRenewalDuration),
		optOut:          regexp.MustCompile(lexicon.AutoRenewalOptOut),
		competeDuration: regexp.MustCompile(lexicon.NonCompeteDuration),
		geography:       regexp.MustCompile(lexicon.NonCompeteGeography),
		qualifier:       regexp.MustCompile(lexicon.IPTransferQualifier),
		secretDuration:  regexp.MustCompile(lexicon.ConfidentialityDuration),
		capAmount:       regexp.MustCompile(lexicon.LiabilityCapAmount),
		capPercentage:   regexp.MustCompile(lexicon.LiabilityCapPercentage),
	}
	for _, t := range lexicon.TerminationPatterns {
		d.termination = append(d.termination, termination{kind: t.Kind, patterns: fold(t.Patterns)})
	}
	return d
}

// fold compiles case-insensitive patterns
func fold(exprs []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(`(?i)` + e)
	}
	return out
}

// All runs every detector in model.DetectorOrder
func (d *Detectors) All(text string) model.Detections {
	return model.Detections{
		d.Penalty(text),
		d.Indemnity(text),
		d.Termination(text),
		d.Arbitration(text),
		d.AutoRenewal(text),
		d.NonCompete(text),
		d.IPTransfer(text),
		d.Confidentiality(text),
		d.LiabilityCaps(text),
	}
}

// Run executes a single detector by name
func (d *Detectors) Run(name model.DetectorName, text string) model.DetectionResult {
	switch name {
	case model.DetectorPenalty:
		return d.Penalty(text)
	case model.DetectorIndemnity:
		return d.Indemnity(text)
	case model.DetectorTermination:
		return d.Termination(text)
	case model.DetectorArbitration:
		return d.Arbitration(text)
	case model.DetectorAutoRenewal:
		return d.AutoRenewal(text)
	case model.DetectorNonCompete:
		return d.NonCompete(text)
	case model.DetectorIPTransfer:
		return d.IPTransfer(text)
	case model.DetectorConfidentiality:
		return d.Confidentiality(text)
	case model.DetectorLiabilityCaps:
		return d.LiabilityCaps(text)
	}
	return model.DetectionResult{Detector: name, Findings: []model.Finding{}}
}

// scan applies every pattern in order and builds a finding per match,
// filling in the matched text and its context window
func scan(text string, patterns []*regexp.Regexp, window int, build func(match, ctx string) model.Finding) []model.Finding {
	findings := []model.Finding{}
	for _, re := range patterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			match := text[loc[0]:loc[1]]
			ctx := util.Window(text, loc[0], loc[1], window)
			f := build(match, ctx)
			f.Pattern = match
			f.Context = ctx
			findings = append(findings, f)
		}
	}
	return findings
}

func result(name model.DetectorName, findings []model.Finding, recommendation string) model.DetectionResult {
	r := model.DetectionResult{
		Detector: name,
		Found:    len(findings) > 0,
		Count:    len(findings),
		Findings: findings,
	}
	if r.Found {
		r.Recommendation = recommendation
	}
	return r
}

// fields drops empty sub-fields
func fields(kv ...string) map[string]string {
	m := make(map[string]string)
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] != "" {
			m[kv[i]] = kv[i+1]
		}
	}
	if len(m) == 0 {
		return nil
	}
	return m
}

func group(re *regexp.Regexp, s string, n int) string {
	m := re.FindStringSubmatch(s)
	if m == nil || len(m) <= n {
		return ""
	}
	return m[n]
}

func anyMatch(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// Penalty finds penalty, liquidated damages and forfeiture phrasing
func (d *Detectors) Penalty(text string) model.DetectionResult {
	findings := scan(text, d.penalty, lexicon.DefaultDetectorWindow, func(_, ctx string) model.Finding {
		return model.Finding{
			Severity: model.SeverityHigh,
			Fields:   fields(model.FieldKind, "penalty", model.FieldAmount, group(d.penaltyAmount, ctx, 1)),
		}
	})
	return result(model.DetectorPenalty, findings, lexicon.PenaltyRecommendation)
}

// Indemnity grades each indemnity match broad, narrow or moderate.
// Narrowing phrases take precedence over broadening ones.
func (d *Detectors) Indemnity(text string) model.DetectionResult {
	broad := false
	findings := scan(text, d.indemnity, lexicon.IndemnityWindow, func(_, ctx string) model.Finding {
		scope := lexicon.ScopeModerate
		if anyMatch(d.broadScope, ctx) {
			scope = lexicon.ScopeBroad
		}
		if anyMatch(d.narrowScope, ctx) {
			scope = lexicon.ScopeNarrow
		}

		severity := model.SeverityMedium
		if scope == lexicon.ScopeBroad {
			severity = model.SeverityHigh
			broad = true
		}
		return model.Finding{
			Severity: severity,
			Fields:   fields(model.FieldKind, "indemnity", model.FieldScope, scope),
		}
	})

	r := result(model.DetectorIndemnity, findings, lexicon.IndemnityRecommendation)
	r.HasBroadIndemnity = broad
	return r
}

// Termination sorts termination phrasing into unilateral, mutual and
// for-cause findings and judges whether the termination rights are balanced
func (d *Detectors) Termination(text string) model.DetectionResult {
	breakdown := &model.TerminationBreakdown{
		Unilateral: []model.Finding{},
		Mutual:     []model.Finding{},
		ForCause:   []model.Finding{},
	}
	findings := []model.Finding{}

	for _, t := range d.termination {
		kind := t.kind
		found := scan(text, t.patterns, lexicon.TerminationWindow, func(_, ctx string) model.Finding {
			return model.Finding{
				Severity: model.SeverityMedium,
				Fields: fields(
					model.FieldCategory, kind,
					model.FieldNoticePeriod, d.notice.FindString(ctx),
				),
			}
		})
		switch kind {
		case lexicon.TerminationUnilateral:
			breakdown.Unilateral = append(breakdown.Unilateral, found...)
		case lexicon.TerminationMutual:
			breakdown.Mutual = append(breakdown.Mutual, found...)
		case lexicon.TerminationForCause:
			breakdown.ForCause = append(breakdown.ForCause, found...)
		}
		findings = append(findings, found...)
	}

	breakdown.HasUnilateral = len(breakdown.Unilateral) > 0
	breakdown.IsBalanced = len(breakdown.Mutual) > 0 || !breakdown.HasUnilateral || allHaveNotice(breakdown.Unilateral)

	r := result(model.DetectorTermination, findings, "")
	if breakdown.HasUnilateral {
		r.Recommendation = lexicon.TerminationRecommendation
	}
	r.Termination = breakdown
	return r
}

func allHaveNotice(findings []model.Finding) bool {
	for _, f := range findings {
		if f.Field(model.FieldNoticePeriod) == "" {
			return false
		}
	}
	return true
}

// Arbitration finds arbitration phrasing and the seat and rules named nearby
func (d *Detectors) Arbitration(text string) model.DetectionResult {
	findings := scan(text, d.arbitration, lexicon.ArbitrationWindow, func(_, ctx string) model.Finding {
		return model.Finding{
			Severity: model.SeverityMedium,
			Fields: fields(
				model.FieldSeat, group(d.seat, ctx, 1),
				model.FieldRules, group(d.rules, ctx, 1),
			),
		}
	})
	return result(model.DetectorArbitration, findings, lexicon.ArbitrationRecommendation)
}

// AutoRenewal finds automatic renewal and lock-in phrasing; without an
// opt-out notice the finding is high risk
func (d *Detectors) AutoRenewal(text string) model.DetectionResult {
	findings := scan(text, d.autoRenewal, lexicon.AutoRenewalWindow, func(_, ctx string) model.Finding {
		optOut := d.optOut.FindString(ctx)
		severity := model.SeverityMedium
		if optOut == "" {
			severity = model.SeverityHigh
		}
		return model.Finding{
			Severity: severity,
			Fields: fields(
				model.FieldDuration, d.renewalDuration.FindString(ctx),
				model.FieldOptOutNotice, optOut,
			),
		}
	})
	return result(model.DetectorAutoRenewal, findings, lexicon.AutoRenewalRecommendation)
}

// NonCompete finds restrictive covenants; they are always high risk
func (d *Detectors) NonCompete(text string) model.DetectionResult {
	findings := scan(text, d.nonCompete, lexicon.NonCompeteWindow, func(_, ctx string) model.Finding {
		return model.Finding{
			Severity: model.SeverityHigh,
			Fields: fields(
				model.FieldDuration, d.competeDuration.FindString(ctx),
				model.FieldGeographicScope, strings.TrimSpace(group(d.geography, ctx, 1)),
			),
		}
	})
	return result(model.DetectorNonCompete, findings, lexicon.NonCompeteRecommendation)
}

// IPTransfer finds IP assignment phrasing. A transfer is full unless a
// license or limitation qualifier appears nearby.
func (d *Detectors) IPTransfer(text string) model.DetectionResult {
	full := false
	findings := scan(text, d.ipTransfer, lexicon.IPTransferWindow, func(_, ctx string) model.Finding {
		isFull := !d.qualifier.MatchString(ctx)
		severity := model.SeverityMedium
		if isFull {
			severity = model.SeverityHigh
			full = true
		}
		return model.Finding{
			Severity: severity,
			Fields:   fields(model.FieldFullTransfer, strconv.FormatBool(isFull)),
		}
	})

	r := result(model.DetectorIPTransfer, findings, lexicon.IPTransferRecommendation)
	r.HasFullTransfer = full
	return r
}

// Confidentiality finds NDA and trade-secret phrasing with any stated duration
func (d *Detectors) Confidentiality(text string) model.DetectionResult {
	findings := scan(text, d.confidentiality, lexicon.ConfidentialityWindow, func(_, ctx string) model.Finding {
		return model.Finding{
			Severity: model.SeverityMedium,
			Fields:   fields(model.FieldDuration, d.secretDuration.FindString(ctx)),
		}
	})
	return result(model.DetectorConfidentiality, findings, lexicon.ConfidentialityRecommendation)
}

// LiabilityCaps finds limitation-of-liability phrasing. When none is found
// the recommendation advises negotiating a cap.
func (d *Detectors) LiabilityCaps(text string) model.DetectionResult {
	findings := scan(text, d.liabilityCaps, lexicon.LiabilityCapWindow, func(_, ctx string) model.Finding {
		return model.Finding{
			Severity: model.SeverityMedium,
			Fields: fields(
				model.FieldCapAmount, group(d.capAmount, ctx, 1),
				model.FieldPercentageCap, d.capPercentage.FindString(ctx),
			),
		}
	})

	r := result(model.DetectorLiabilityCaps, findings, lexicon.LiabilityCapRecommendation)
	r.HasCap = r.Found
	if !r.Found {
		r.Recommendation = lexicon.LiabilityCapMissingAdvice
	}
	return r
}
