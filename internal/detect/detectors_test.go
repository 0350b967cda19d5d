package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/contractlens/internal/lexicon"
	"github.com/ppiankov/contractlens/internal/model"
)

func TestAll_OrderAndEmptyInput(t *testing.T) {
	got := New().All("")
	require.Len(t, got, len(model.DetectorOrder))
	for i, name := range model.DetectorOrder {
		assert.Equal(t, name, got[i].Detector)
		assert.False(t, got[i].Found)
		assert.NotNil(t, got[i].Findings)
	}

	// liability caps advise even when nothing is found
	caps := got.Get(model.DetectorLiabilityCaps)
	assert.Equal(t, lexicon.LiabilityCapMissingAdvice, caps.Recommendation)
	assert.False(t, caps.HasCap)
	assert.Empty(t, got.Get(model.DetectorPenalty).Recommendation)
}

func TestIndemnity_BroadScope(t *testing.T) {
	text := "The Employer shall indemnify the Employee against any and all claims whatsoever, " +
		"including but not limited to legal costs."

	got := New().Indemnity(text)
	require.True(t, got.Found)
	assert.True(t, got.HasBroadIndemnity)
	assert.Equal(t, lexicon.ScopeBroad, got.Findings[0].Field(model.FieldScope))
	assert.Equal(t, model.SeverityHigh, got.Findings[0].Severity)
	assert.Equal(t, lexicon.IndemnityRecommendation, got.Recommendation)
}

func TestIndemnity_NarrowWins(t *testing.T) {
	text := "Vendor shall indemnify Client for all claims to the extent caused by its gross negligence."

	got := New().Indemnity(text)
	require.True(t, got.Found)
	assert.Equal(t, lexicon.ScopeNarrow, got.Findings[0].Field(model.FieldScope))
	assert.Equal(t, model.SeverityMedium, got.Findings[0].Severity)
	assert.False(t, got.HasBroadIndemnity)
}

func TestTermination_MutualWithNotice(t *testing.T) {
	text := "This Agreement may be terminated by either party upon thirty (30) days written notice."

	got := New().Termination(text)
	require.True(t, got.Found)
	require.NotNil(t, got.Termination)
	require.Len(t, got.Termination.Mutual, 1)
	assert.Empty(t, got.Termination.Unilateral)
	assert.True(t, got.Termination.IsBalanced)
	assert.False(t, got.Termination.HasUnilateral)
	assert.Equal(t, "30) days written notice", got.Termination.Mutual[0].Field(model.FieldNoticePeriod))
	assert.Empty(t, got.Recommendation)
}

func TestTermination_UnilateralWithoutNotice(t *testing.T) {
	got := New().Termination("The Company may terminate this agreement at any time.")

	require.Len(t, got.Termination.Unilateral, 1)
	assert.True(t, got.Termination.HasUnilateral)
	assert.False(t, got.Termination.IsBalanced)
	assert.Equal(t, lexicon.TerminationUnilateral, got.Findings[0].Field(model.FieldCategory))
	assert.Equal(t, lexicon.TerminationRecommendation, got.Recommendation)
}

func TestPenalty_Amount(t *testing.T) {
	got := New().Penalty("A penalty of Rs. 10,000 per day applies.")

	require.Equal(t, 1, got.Count)
	assert.Equal(t, "10,000", got.Findings[0].Field(model.FieldAmount))
	assert.Equal(t, model.SeverityHigh, got.Findings[0].Severity)
	assert.Equal(t, "penalty of Rs. 10,000", got.Findings[0].Pattern)
}

func TestArbitration_SeatAndRules(t *testing.T) {
	text := "All disputes shall be submitted to arbitration under SIAC rules. " +
		"The seat of arbitration shall be Singapore."

	got := New().Arbitration(text)
	require.Equal(t, 4, got.Count)
	assert.Equal(t, "Singapore", got.Findings[0].Field(model.FieldSeat))
	assert.Equal(t, "SIAC", got.Findings[0].Field(model.FieldRules))
}

func TestAutoRenewal_OptOut(t *testing.T) {
	d := New()

	withNotice := d.AutoRenewal("This agreement shall renew automatically for 12 months unless terminated with 30 days prior written notice.")
	require.True(t, withNotice.Found)
	assert.Equal(t, "12 months", withNotice.Findings[0].Field(model.FieldDuration))
	assert.Equal(t, "30 days prior written notice", withNotice.Findings[0].Field(model.FieldOptOutNotice))
	assert.Equal(t, model.SeverityMedium, withNotice.Findings[0].Severity)

	without := d.AutoRenewal("Services auto-renew each year.")
	require.True(t, without.Found)
	assert.Equal(t, model.SeverityHigh, without.Findings[0].Severity)
	assert.Empty(t, without.Findings[0].Field(model.FieldOptOutNotice))
}

func TestNonCompete(t *testing.T) {
	got := New().NonCompete("The Employee shall not compete with the Company within India and Nepal for 2 years.")

	require.True(t, got.Found)
	assert.Equal(t, model.SeverityHigh, got.Findings[0].Severity)
	assert.Equal(t, "2 years", got.Findings[0].Field(model.FieldDuration))
	assert.Equal(t, "India", got.Findings[0].Field(model.FieldGeographicScope))
	assert.True(t, got.HasHighRisk())
}

func TestIPTransfer_FullVersusLicensed(t *testing.T) {
	d := New()

	full := d.IPTransfer("All intellectual property shall vest in the Company.")
	require.True(t, full.Found)
	assert.True(t, full.HasFullTransfer)
	assert.Equal(t, "true", full.Findings[0].Field(model.FieldFullTransfer))

	licensed := d.IPTransfer("All intellectual property shall vest in the Company, subject to a non-exclusive license back.")
	require.True(t, licensed.Found)
	assert.False(t, licensed.HasFullTransfer)
	assert.Equal(t, model.SeverityMedium, licensed.Findings[0].Severity)
}

func TestConfidentiality_Duration(t *testing.T) {
	got := New().Confidentiality("Confidential information must be protected for 3 years.")

	require.True(t, got.Found)
	assert.Equal(t, "3 years", got.Findings[0].Field(model.FieldDuration))
	assert.Equal(t, lexicon.ConfidentialityRecommendation, got.Recommendation)
}

func TestLiabilityCaps_AmountAndPercentage(t *testing.T) {
	got := New().LiabilityCaps("The total liability shall not exceed Rs. 5,00,000 or 10% of the contract value.")

	require.True(t, got.Found)
	assert.True(t, got.HasCap)
	assert.Equal(t, "5,00,000", got.Findings[0].Field(model.FieldCapAmount))
	assert.Equal(t, "10% of the contract", got.Findings[0].Field(model.FieldPercentageCap))
	assert.Equal(t, lexicon.LiabilityCapRecommendation, got.Recommendation)
}

func TestRun_MatchesDirectCall(t *testing.T) {
	d := New()
	text := "The seat of arbitration shall be Mumbai."
	assert.Equal(t, d.Arbitration(text), d.Run(model.DetectorArbitration, text))
}

func TestDetections_Counts(t *testing.T) {
	text := "The Employee shall not compete with the Company. A penalty of Rs. 500 applies."
	got := New().All(text)

	assert.Equal(t, 2, got.HighRiskCount())
	assert.GreaterOrEqual(t, got.FoundCount(), 2)
}
