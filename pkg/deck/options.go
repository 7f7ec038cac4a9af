// Package deck converts spreadsheet-encoded quiz workbooks into decks of
// question/answer cards.
package deck

import "quizdeck/pkg/deck/parser"

const (
	// DefaultHeaderPattern matches cells that start a new question.
	DefaultHeaderPattern = "^TK"
	// DefaultSheet is the worksheet part read when none is selected.
	DefaultSheet = "sheet1"
)

// Options configures a conversion run.
type Options struct {
	// HeaderPattern is matched case-insensitively against each cell to
	// detect question headers. Empty means DefaultHeaderPattern.
	HeaderPattern string
	// Sheet is the worksheet XML name inside the archive (sheet1,
	// sheet2, ...). Empty means DefaultSheet.
	Sheet string
	// Layout selects the cell-to-column placement strategy. Empty means
	// parser.LayoutReference.
	Layout parser.ColumnLayout
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		HeaderPattern: DefaultHeaderPattern,
		Sheet:         DefaultSheet,
		Layout:        parser.LayoutReference,
	}
}

func (o Options) headerPattern() string {
	if o.HeaderPattern == "" {
		return DefaultHeaderPattern
	}
	return o.HeaderPattern
}

func (o Options) sheet() string {
	if o.Sheet == "" {
		return DefaultSheet
	}
	return o.Sheet
}

func (o Options) layout() parser.ColumnLayout {
	if o.Layout == "" {
		return parser.LayoutReference
	}
	return o.Layout
}
