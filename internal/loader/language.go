package loader

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/ppiankov/contractlens/internal/lexicon"
	"github.com/ppiankov/contractlens/internal/util"
)

// Language is a detected source language tag
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
	Unknown Language = "unknown"
)

// minShare is the smallest script share that counts toward a mixed-language text
const minShare = 0.1

// Detection is the result of script-based language detection
type Detection struct {
	Language     Language `json:"primary_lang"`
	Confidence   float64  `json:"confidence"`
	Multilingual bool     `json:"is_multilingual"`
}

var listNumber = regexp.MustCompile(`(?m)^\d+[.)]\s*`)

// DetectLanguage decides between English and Hindi by the share of Devanagari letters
func DetectLanguage(text string) Detection {
	clean := strings.TrimSpace(util.CollapseSpace(listNumber.ReplaceAllString(text, "")))
	if len([]rune(clean)) < lexicon.MinDetectableLen {
		return Detection{Language: Unknown}
	}

	var devanagari, latin int
	for _, r := range clean {
		switch {
		case r >= lexicon.DevanagariFirst && r <= lexicon.DevanagariLast:
			devanagari++
		case unicode.Is(unicode.Latin, r):
			latin++
		}
	}
	total := devanagari + latin
	if total == 0 {
		return Detection{Language: Unknown}
	}

	share := float64(devanagari) / float64(total)
	d := Detection{
		Language:     English,
		Confidence:   util.Round(1-share, 2),
		Multilingual: share > minShare && 1-share > minShare,
	}
	if share >= lexicon.DevanagariMinRatio {
		d.Language = Hindi
		d.Confidence = util.Round(share, 2)
	}
	return d
}

// NormalizeHindi swaps Devanagari legal vocabulary for English terms so the
// English keyword rules can see it
func NormalizeHindi(text string) string {
	for _, term := range lexicon.HindiLegalTerms {
		text = strings.ReplaceAll(text, term.Hindi, " "+term.English+" ")
	}
	return text
}

// HindiSegments returns the runs of Devanagari text in order
func HindiSegments(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r < lexicon.DevanagariFirst || r > lexicon.DevanagariLast
	})
}
