package obligation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/contractlens/internal/lexicon"
	"github.com/ppiankov/contractlens/internal/model"
)

func TestClassify_Priority(t *testing.T) {
	a := NewAnalyzer()

	tests := []struct {
		sentence  string
		wantType  model.StatementType
		strength  model.Strength
		party     model.PartyRole
		indicator string
	}{
		{"The Tenant shall not sublet the premises.", model.StatementProhibition, model.StrengthStrong, model.RoleSecondParty, "shall not"},
		{"The Employer shall pay the salary monthly.", model.StatementObligation, model.StrengthStrong, model.RoleFirstParty, "shall"},
		{"Either party may terminate this agreement.", model.StatementRight, model.StrengthStrong, model.RoleBoth, "may"},
		{"The report is expected to arrive by Friday.", model.StatementObligation, model.StrengthModerate, model.RoleUnspecified, "is expected to"},
		{"The weather is nice today.", model.StatementNeutral, model.StrengthNone, model.RoleUnknown, ""},
	}

	for _, tt := range tests {
		got := a.Classify(tt.sentence)
		assert.Equal(t, tt.wantType, got.Type, tt.sentence)
		assert.Equal(t, tt.strength, got.Strength, tt.sentence)
		assert.Equal(t, tt.party, got.Party, tt.sentence)
		assert.Equal(t, tt.indicator, got.Indicator, tt.sentence)
	}
}

func TestAnalyze_FavorsFirstParty(t *testing.T) {
	text := "The Company has the sole right to modify the product roadmap. " +
		"The Company has exclusive right to publish results. " +
		"The Employee shall not disclose trade secrets. " +
		"The Employee cannot work for competitors. " +
		"The Client must not reverse engineer the software. " +
		"The Customer may not resell the licence."

	got := NewAnalyzer().Analyze(text)

	assert.Empty(t, got.Obligations)
	require.Len(t, got.Rights, 2)
	require.Len(t, got.Prohibitions, 4)
	assert.Equal(t, 2, got.Summary.ExclusiveRights)
	assert.Equal(t, 4, got.Summary.TotalProhibitions)
	assert.Equal(t, 2, got.Summary.ByParty[model.RoleFirstParty])
	assert.Equal(t, 4, got.Summary.ByParty[model.RoleSecondParty])

	assert.Len(t, got.OneSided.FirstPartyFavored, 6)
	assert.Empty(t, got.OneSided.SecondPartyFavored)
	assert.Equal(t, lexicon.VerdictFirstParty, got.OneSided.Assessment)
	require.Len(t, got.OneSided.Concerns, 2)
	assert.Equal(t,
		"Exclusive right favoring first party: The Company has the sole right to modify the product roadmap....",
		got.OneSided.Concerns[0])
}

func TestOneSided_MarginIsStrict(t *testing.T) {
	prohibition := model.ObligationStatement{
		Type:     model.StatementProhibition,
		Strength: model.StrengthStrong,
		Party:    model.RoleSecondParty,
	}
	analysis := model.ObligationAnalysis{
		Prohibitions: []model.ObligationStatement{prohibition, prohibition, prohibition},
	}

	assert.Equal(t, lexicon.VerdictBalanced, OneSided(analysis).Assessment)

	analysis.Prohibitions = append(analysis.Prohibitions, prohibition)
	assert.Equal(t, lexicon.VerdictFirstParty, OneSided(analysis).Assessment)
}

func TestOneSided_SecondPartyMirror(t *testing.T) {
	right := model.ObligationStatement{
		Text:     "The Licensee has the exclusive right to distribute.",
		Type:     model.StatementRight,
		Strength: model.StrengthExclusive,
		Party:    model.RoleSecondParty,
	}
	analysis := model.ObligationAnalysis{
		Rights: []model.ObligationStatement{right, right, right, right},
	}

	got := OneSided(analysis)
	assert.Len(t, got.SecondPartyFavored, 4)
	assert.Equal(t, lexicon.VerdictSecondParty, got.Assessment)
	assert.Contains(t, got.Concerns[0], "favoring second party")
}

func TestAnalyze_Empty(t *testing.T) {
	got := NewAnalyzer().Analyze("")
	assert.Empty(t, got.Obligations)
	assert.Equal(t, lexicon.VerdictBalanced, got.OneSided.Assessment)
}
