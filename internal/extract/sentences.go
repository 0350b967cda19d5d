package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/ppiankov/contractlens/internal/lexicon"
)

// SplitSentences splits text after '.', '!' or '?' followed by whitespace.
// Periods closing a protected abbreviation do not split. Sentences of
// MinSentenceLen characters or fewer are dropped.
func SplitSentences(text string) []string {
	var sentences []string
	start := 0

	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '.' && c != '!' && c != '?' {
			continue
		}

		// Look ahead for the whitespace run that ends the sentence
		j := i + 1
		for j < len(text) && isSpace(text[j]) {
			j++
		}
		if j == i+1 {
			continue
		}
		if c == '.' && endsWithAbbreviation(text[start:i]) {
			continue
		}

		sentences = appendSentence(sentences, text[start:i+1])
		start = j
		i = j - 1
	}

	if start < len(text) {
		sentences = appendSentence(sentences, text[start:])
	}

	return sentences
}

func appendSentence(sentences []string, s string) []string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > lexicon.MinSentenceLen {
		sentences = append(sentences, s)
	}
	return sentences
}

// endsWithAbbreviation reports whether s ends with a whole-word protected abbreviation
func endsWithAbbreviation(s string) bool {
	for _, abbr := range lexicon.ProtectedAbbreviations {
		if !strings.HasSuffix(s, abbr) {
			continue
		}
		before := len(s) - len(abbr)
		if before == 0 || !isWordByte(s[before-1]) {
			return true
		}
	}
	return false
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
