package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/contractlens/internal/model"
)

func TestClassify_Empty(t *testing.T) {
	c := NewClassifier()
	for _, text := range []string{"", "   \n\t "} {
		got := c.Classify(text)
		assert.Equal(t, model.ContractUnknown, got.PrimaryType)
		assert.Equal(t, 0.0, got.Confidence)
		assert.Empty(t, got.TopKeywords)
	}
}

func TestClassify_EmploymentWithTitle(t *testing.T) {
	text := "EMPLOYMENT AGREEMENT\n" +
		"The Employer agrees to employ the Employee. The employee will receive a salary. " +
		"Probation period is six months. The notice period is one month."

	got := NewClassifier().Classify(text)
	require.Equal(t, model.ContractEmployment, got.PrimaryType)
	assert.Equal(t, model.ContractEmployment, got.TitleMatch)
	assert.Equal(t, 1.0, got.Confidence)

	score := got.AllScores[model.ContractEmployment]
	assert.Equal(t, 14.0, score.Score)
	assert.Equal(t, 6, score.KeywordCount)
	assert.Equal(t, []string{"employee", "employer", "employment", "salary", "probation", "notice period"}, got.TopKeywords)
}

func TestClassify_BelowFloor(t *testing.T) {
	got := NewClassifier().Classify("The receiving party shall protect confidential information.")
	assert.Equal(t, model.ContractUnknown, got.PrimaryType)
	assert.Equal(t, 0.0, got.Confidence)
	assert.InDelta(t, 2.4, got.AllScores[model.ContractNDA].Score, 1e-9)
}

func TestClassify_ConfidenceSplit(t *testing.T) {
	text := "The tenant shall pay rent to the landlord for the premises. " +
		"The client receives services."

	got := NewClassifier().Classify(text)
	require.Equal(t, model.ContractLease, got.PrimaryType)
	// lease: tenant, rent, landlord, premises = 4; service: client, services = 2
	assert.Equal(t, 0.67, got.Confidence)
	assert.Empty(t, got.TitleMatch)
}

func TestDescriptionAndLabel(t *testing.T) {
	assert.Contains(t, Description(model.ContractNDA), "Non-Disclosure")
	assert.Equal(t, "Lease Agreement", Label(model.ContractLease))
	assert.Equal(t, "Unknown Contract Type", Label(model.ContractUnknown))
}
