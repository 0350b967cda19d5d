package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/contractlens/internal/model"
)

func TestSegment_NumberedHeadings(t *testing.T) {
	text := "1. DEFINITIONS\n" +
		"In this Agreement the following definitions apply.\n" +
		"2. PAYMENT\n" +
		"The Client shall pay the fee within 30 days.\n" +
		"2.1 Late payment\n" +
		"Interest applies."

	clauses := NewSegmenter().Segment(text)
	require.Len(t, clauses, 3)

	assert.Equal(t, "1", clauses[0].Number)
	assert.Equal(t, "DEFINITIONS", clauses[0].Heading)
	assert.Equal(t, 1, clauses[0].Level)
	assert.Equal(t, model.ClauseDefinitions, clauses[0].Type)
	assert.Contains(t, clauses[0].Text, "following definitions apply")

	assert.Equal(t, "2", clauses[1].Number)
	assert.Equal(t, model.ClausePaymentTerms, clauses[1].Type)
	assert.Equal(t, 3, clauses[1].StartLine)

	assert.Equal(t, "2.1", clauses[2].Number)
	assert.Equal(t, 2, clauses[2].Level)

	for i, c := range clauses {
		assert.Equal(t, i, c.Position)
		assert.NotEmpty(t, c.Text)
	}

	summary := Summarize(clauses)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.MaxDepth)
	assert.Equal(t, 2, summary.ByType[model.ClausePaymentTerms])
}

func TestSegment_ParagraphFallback(t *testing.T) {
	text := "this agreement is made between the parties for the supply of goods and services.\n\n" +
		"the supplier shall deliver the goods within thirty days of receiving an order."

	clauses := NewSegmenter().Segment(text)
	require.Len(t, clauses, 2)
	assert.Equal(t, "1", clauses[0].Number)
	assert.Equal(t, "2", clauses[1].Number)
	assert.Equal(t, 1, clauses[1].Position)
}

func TestSegment_WholeTextFallback(t *testing.T) {
	clauses := NewSegmenter().Segment("short text here")
	require.Len(t, clauses, 1)
	assert.Equal(t, "1", clauses[0].Number)
	assert.Equal(t, "short text here", clauses[0].Text)
	assert.Equal(t, model.ClauseGeneral, clauses[0].Type)
}

func TestSegment_Blank(t *testing.T) {
	assert.Empty(t, NewSegmenter().Segment("  \n \n"))
}

func TestSegment_LetteredAndArticle(t *testing.T) {
	text := "Article 4: Termination\n" +
		"Either party may terminate this agreement.\n" +
		"(a) with thirty days notice\n" +
		"(b) immediately for breach"

	clauses := NewSegmenter().Segment(text)
	require.Len(t, clauses, 3)
	assert.Equal(t, "4", clauses[0].Number)
	assert.Equal(t, "Termination", clauses[0].Heading)
	assert.Equal(t, "a", clauses[1].Number)
	assert.Equal(t, 2, clauses[1].Level)
	assert.Equal(t, "b", clauses[2].Number)
}

func TestClassifyClause(t *testing.T) {
	tests := []struct {
		text string
		want model.ClauseType
	}{
		{"The Receiving Party shall keep all confidential and proprietary information secret.", model.ClauseConfidentiality},
		{"Any dispute shall be referred to arbitration and mediation.", model.ClauseDisputeResolution},
		{"Nothing to see here.", model.ClauseGeneral},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyClause(tt.text), tt.text)
	}
}

func TestClausesByType(t *testing.T) {
	clauses := []model.Clause{
		{Number: "1", Type: model.ClauseNotice},
		{Number: "2", Type: model.ClauseGeneral},
		{Number: "3", Type: model.ClauseNotice},
	}

	got := ClausesByType(clauses, model.ClauseNotice)
	require.Len(t, got, 2)
	assert.Equal(t, "3", got[1].Number)
}
