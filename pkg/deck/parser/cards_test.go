package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"quizdeck/pkg/deck/models"
)

func mustHeaderMatcher(t *testing.T, pattern string) func(string) bool {
	t.Helper()
	isHeader, err := HeaderMatcher(pattern)
	require.NoError(t, err)
	return isHeader
}

func TestGroupCards(t *testing.T) {
	isHeader := mustHeaderMatcher(t, "^TK")

	tests := []struct {
		name  string
		cells []string
		want  []models.Card
	}{
		{
			name:  "headers with answers",
			cells: []string{"TK1", "ans1", "ans2", "TK2", "ans3"},
			want: []models.Card{
				{Question: "TK1", Answers: []string{"ans1", "ans2"}},
				{Question: "TK2", Answers: []string{"ans3"}},
			},
		},
		{
			name:  "leading answer before any header",
			cells: []string{"ans0", "TK1"},
			want: []models.Card{
				{Question: "Untitled", Answers: []string{"ans0"}},
				{Question: "TK1", Answers: []string{}},
			},
		},
		{
			name:  "empty input",
			cells: []string{},
			want:  []models.Card{},
		},
		{
			name:  "consecutive headers",
			cells: []string{"TK1", "TK2", "ans"},
			want: []models.Card{
				{Question: "TK1", Answers: []string{}},
				{Question: "TK2", Answers: []string{"ans"}},
			},
		},
		{
			name:  "multiple leading answers collapse into one untitled card",
			cells: []string{"a", "b", "c"},
			want: []models.Card{
				{Question: "Untitled", Answers: []string{"a", "b", "c"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GroupCards(tt.cells, isHeader)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGroupCardsCaseInsensitiveHeaders(t *testing.T) {
	isHeader := mustHeaderMatcher(t, "^TK")

	got := GroupCards([]string{"tk1", "ans", "Tk2"}, isHeader)
	require.Len(t, got, 2)
	assert.Equal(t, "tk1", got[0].Question)
	assert.Equal(t, []string{"ans"}, got[0].Answers)
	assert.Equal(t, "Tk2", got[1].Question)
}

// Every input line ends up as exactly one header or one answer.
func TestGroupCardsAccountsForEveryCell(t *testing.T) {
	isHeader := mustHeaderMatcher(t, "^TK")

	cells := []string{"lead", "TK1", "a", "b", "TK2", "TK3", "c", "d", "e"}
	cards := GroupCards(cells, isHeader)

	headers := 0
	answers := 0
	for _, card := range cards {
		if card.Question != models.UntitledQuestion {
			headers++
		}
		answers += len(card.Answers)
	}
	assert.Equal(t, len(cells), headers+answers)
}

func TestGroupCardsDeterministic(t *testing.T) {
	isHeader := mustHeaderMatcher(t, "^TK")

	cells := []string{"TK1", "a", "TK2", "b", "c"}
	first := GroupCards(cells, isHeader)
	second := GroupCards(cells, isHeader)
	assert.Equal(t, first, second)
}

// Matching is anchored: a pattern without ^ still only matches cells
// that begin with it.
func TestHeaderMatcherAnchoredAtStart(t *testing.T) {
	isHeader := mustHeaderMatcher(t, "TK")

	assert.True(t, isHeader("TK1"))
	assert.True(t, isHeader("tk99 lowercase"))
	assert.False(t, isHeader("note TK inside"))
	assert.False(t, isHeader(" TK leading space"))
}

func TestGroupCardsUnanchoredPatternKeepsMidStringMatchesAsAnswers(t *testing.T) {
	isHeader := mustHeaderMatcher(t, "TK")

	got := GroupCards([]string{"TK1", "note TK inside", "ans"}, isHeader)
	require.Len(t, got, 1)
	assert.Equal(t, "TK1", got[0].Question)
	assert.Equal(t, []string{"note TK inside", "ans"}, got[0].Answers)
}

func TestHeaderMatcherInvalidPattern(t *testing.T) {
	_, err := HeaderMatcher("[")
	assert.Error(t, err)
}

func TestColumnCells(t *testing.T) {
	rows := [][]string{
		{"TK1", "x"},
		{"  ans1  "},
		{"", "y"},
		{"ans2", "", "z"},
	}

	assert.Equal(t, []string{"TK1", "ans1", "ans2"}, ColumnCells(rows, 0))
	assert.Equal(t, []string{"x", "y"}, ColumnCells(rows, 1))
	assert.Equal(t, []string{"z"}, ColumnCells(rows, 2))
	assert.Empty(t, ColumnCells(rows, 3))
}
