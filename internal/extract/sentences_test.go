package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSentences(t *testing.T) {
	text := "Mr. Smith shall deliver the goods on time. The buyer must pay within thirty days! " +
		"Short one. Is this agreement binding on both parties?"

	got := SplitSentences(text)
	assert.Equal(t, []string{
		"Mr. Smith shall deliver the goods on time.",
		"The buyer must pay within thirty days!",
		"Is this agreement binding on both parties?",
	}, got)
}

func TestSplitSentences_AbbreviationNeedsWordBoundary(t *testing.T) {
	// "GoDr." is not the protected "Dr."
	got := SplitSentences("The parcel was delivered to the GoDr. Another sentence follows here afterwards.")
	assert.Equal(t, []string{
		"The parcel was delivered to the GoDr.",
		"Another sentence follows here afterwards.",
	}, got)
}

func TestSplitSentences_Empty(t *testing.T) {
	assert.Empty(t, SplitSentences(""))
	assert.Empty(t, SplitSentences("Too short."))
}
