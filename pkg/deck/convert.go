package deck

import (
	"fmt"
	"log/slog"

	"quizdeck/pkg/deck/models"
	"quizdeck/pkg/deck/parser"
)

// Convert reads the quiz workbook at path and groups its cells into a
// deck of cards. Each column is grouped independently so answers from
// different columns never land on the same card; per-column decks are
// concatenated in column order.
func Convert(path string, opts Options) (models.Deck, error) {
	isHeader, err := parser.HeaderMatcher(opts.headerPattern())
	if err != nil {
		return nil, fmt.Errorf("invalid header pattern %q: %w", opts.headerPattern(), err)
	}

	rows, err := parser.LoadRows(path, opts.sheet(), opts.layout())
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded worksheet", slog.String("sheet", opts.sheet()), slog.Int("rows", len(rows)))

	numCols := 0
	for _, row := range rows {
		if len(row) > numCols {
			numCols = len(row)
		}
	}

	cards := models.Deck{}
	for col := 0; col < numCols; col++ {
		colCards := parser.GroupCards(parser.ColumnCells(rows, col), isHeader)
		slog.Debug("grouped column", slog.Int("column", col), slog.Int("cards", len(colCards)))
		cards = append(cards, colCards...)
	}
	return cards, nil
}
