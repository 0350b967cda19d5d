package util

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Ellipsis marks a context window truncated at that edge
const Ellipsis = "..."

// Window returns text[start:end] padded by window bytes on each side, trimmed,
// with Ellipsis at any edge that did not reach the text boundary.
// Edges are snapped outwards to rune boundaries.
func Window(text string, start, end, window int) string {
	from, to := bounds(text, start, end, window)
	ctx := strings.TrimSpace(text[from:to])
	if from > 0 {
		ctx = Ellipsis + ctx
	}
	if to < len(text) {
		ctx += Ellipsis
	}
	return ctx
}

// PlainWindow is Window without ellipsis markers
func PlainWindow(text string, start, end, window int) string {
	from, to := bounds(text, start, end, window)
	return strings.TrimSpace(text[from:to])
}

func bounds(text string, start, end, window int) (int, int) {
	from := max(0, start-window)
	to := min(len(text), end+window)
	for from > 0 && !utf8.RuneStart(text[from]) {
		from--
	}
	for to < len(text) && !utf8.RuneStart(text[to]) {
		to++
	}
	return from, to
}

// CollapseSpace replaces every whitespace run with a single space and trims the result
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate returns at most n runes of s
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// Round rounds v to the given number of decimal places
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// ContainsAny reports whether s contains any of the substrings
func ContainsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// WordCount counts whitespace-separated words
func WordCount(s string) int {
	return len(strings.Fields(s))
}
