package ambiguity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/contractlens/internal/model"
)

func TestDetect_IndemnityScenario(t *testing.T) {
	text := "The Employer shall indemnify the Employee against any and all claims whatsoever, " +
		"including but not limited to legal fees."

	got := NewDetector().Detect(text)

	var terms []string
	for _, v := range got.VagueTerms {
		terms = append(terms, v.Term)
	}
	assert.Contains(t, terms, "including but not limited to")

	var matches []string
	for _, p := range got.AmbiguousPatterns {
		matches = append(matches, strings.ToLower(p.Match))
	}
	assert.Contains(t, matches, "whatsoever")
	assert.Contains(t, got.Recommendations, "Replace discretionary clauses with objective criteria where possible.")
}

func TestDetect_Empty(t *testing.T) {
	got := NewDetector().Detect("")

	assert.Empty(t, got.VagueTerms)
	assert.Len(t, got.MissingSpecificity, 5)
	assert.Equal(t, 2.5, got.Score)
	assert.Equal(t, model.AmbiguityLow, got.Level)
	assert.Equal(t, []string{
		"Add specific payment terms to the contract.",
		"Add specific timeline terms to the contract.",
		"Add specific deliverables terms to the contract.",
		"Add specific termination terms to the contract.",
		"Add specific liability terms to the contract.",
		"Include specific dates for key milestones and deadlines.",
	}, got.Recommendations)
}

func TestDetect_HighTermsMonotonicUntilCap(t *testing.T) {
	d := NewDetector()
	base := "The supplier will deliver goods on 01/02/2025. "

	prev := -1.0
	var scores []float64
	for n := 0; n <= 8; n++ {
		score := d.Detect(base + strings.Repeat("reasonable ", n)).Score
		assert.GreaterOrEqual(t, score, prev, "n=%d", n)
		prev = score
		scores = append(scores, score)
	}

	// 0.5 per occurrence, capped at 3.0 from the sixth occurrence on
	assert.InDelta(t, 0.5, scores[1]-scores[0], 1e-9)
	assert.Equal(t, scores[6], scores[8])
}

func TestDetect_VagueTermWholeWord(t *testing.T) {
	got := NewDetector().Detect("The unreasonableness of the claim was Reasonable.")

	require.Len(t, got.VagueTerms, 1)
	assert.Equal(t, "reasonable", got.VagueTerms[0].Term)
	assert.Equal(t, model.AmbiguityHigh, got.VagueTerms[0].Severity)
	assert.Equal(t, 38, got.VagueTerms[0].Position)
	assert.Contains(t, got.Recommendations[0], "'reasonable'")
}

func TestDetect_UndefinedReferences(t *testing.T) {
	d := NewDetector()

	got := d.Detect("Payment is subject to Schedule approval.")
	require.Len(t, got.UndefinedReferences, 1)
	assert.Equal(t, "Schedule", got.UndefinedReferences[0].Term)

	defined := `"Schedule" means the annex below. Payment is subject to Schedule approval.`
	assert.Empty(t, d.Detect(defined).UndefinedReferences)
}

func TestIsDefined(t *testing.T) {
	d := NewDetector()

	assert.True(t, d.IsDefined("Services shall mean the consulting work.", "services"))
	assert.True(t, d.IsDefined("the 'Premises' are leased", "Premises"))
	assert.False(t, d.IsDefined("Subject to the Annex.", "Annex"))
}

func TestDetect_ContextWindow(t *testing.T) {
	text := strings.Repeat("x ", 60) + "promptly" + strings.Repeat(" y", 60)
	got := NewDetector().Detect(text)

	require.Len(t, got.VagueTerms, 1)
	ctx := got.VagueTerms[0].Context
	assert.True(t, strings.HasPrefix(ctx, "..."))
	assert.True(t, strings.HasSuffix(ctx, "..."))
	assert.Contains(t, ctx, "promptly")
}
