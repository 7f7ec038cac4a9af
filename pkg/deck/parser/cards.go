package parser

import (
	"regexp"
	"strings"

	"quizdeck/pkg/deck/models"
)

// HeaderMatcher compiles a case-insensitive header pattern into a
// predicate over cell values. Matching is anchored at the start of the
// cell: a header is a cell that begins with the pattern.
func HeaderMatcher(pattern string) (func(string) bool, error) {
	re, err := regexp.Compile("(?i)^(?:" + pattern + ")")
	if err != nil {
		return nil, err
	}
	return re.MatchString, nil
}

// ColumnCells projects one column out of the row grid as a flat list of
// trimmed, non-empty values in top-to-bottom order. Rows shorter than the
// requested column contribute nothing.
func ColumnCells(rows [][]string, col int) []string {
	var cells []string
	for _, row := range rows {
		if col >= len(row) {
			continue
		}
		cell := strings.TrimSpace(row[col])
		if cell != "" {
			cells = append(cells, cell)
		}
	}
	return cells
}

// GroupCards partitions a flat sequence of cell values into cards. Each
// value matching isHeader opens a new card; every other value becomes an
// answer on the most recent card. Answers seen before any header collect
// into a single "Untitled" card.
func GroupCards(cells []string, isHeader func(string) bool) []models.Card {
	cards := []models.Card{}
	var current *models.Card
	for _, cell := range cells {
		if isHeader(cell) {
			if current != nil {
				cards = append(cards, *current)
			}
			current = &models.Card{Question: cell, Answers: []string{}}
			continue
		}
		if current == nil {
			current = &models.Card{Question: models.UntitledQuestion, Answers: []string{}}
		}
		current.Answers = append(current.Answers, cell)
	}
	if current != nil {
		cards = append(cards, *current)
	}
	return cards
}
