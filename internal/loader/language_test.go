package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  Language
		multi bool
	}{
		{"empty", "", Unknown, false},
		{"too short", "1. Rent", Unknown, false},
		{"digits only", "1. 2. 3. 4. 5. 6. 7. 8.", Unknown, false},
		{"english", "The Tenant shall pay rent monthly.", English, false},
		{"hindi", "यह अनुबंध दोनों पक्षों के बीच है।", Hindi, false},
		{"mixed", "This agreement अनुबंध is binding on both parties.", English, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DetectLanguage(tt.text)
			assert.Equal(t, tt.want, d.Language)
			assert.Equal(t, tt.multi, d.Multilingual)
		})
	}
}

func TestDetectLanguage_Confidence(t *testing.T) {
	assert.Equal(t, 1.0, DetectLanguage("The Tenant shall pay rent monthly.").Confidence)
	assert.Equal(t, 1.0, DetectLanguage("भुगतान तीस दिन में होगा").Confidence)
	assert.Zero(t, DetectLanguage("").Confidence)
}

func TestNormalizeHindi(t *testing.T) {
	got := NormalizeHindi("बौद्धिक संपदा का अधिकार")
	assert.Equal(t, " intellectual property  का  rights ", got)
	assert.Equal(t, "No Hindi here.", NormalizeHindi("No Hindi here."))
}

func TestHindiSegments(t *testing.T) {
	assert.Equal(t, []string{"अनुबंध", "पक्ष"}, HindiSegments("The अनुबंध binds each पक्ष."))
	assert.Empty(t, HindiSegments("English only"))
}
