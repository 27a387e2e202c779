package presentation

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

// maxCellWidth caps a single cell before column widths are computed, so one
// long description cannot blow up the whole table.
const maxCellWidth = 40

// TableFormatter renders fixed-width aligned columns. Column widths use
// display width, so wide runes line up.
type TableFormatter struct{}

func (f *TableFormatter) Format(w io.Writer, view *View) error {
	cols := view.columnSet()

	rows := make([][]string, 0, len(view.Records)+1)
	if !view.NoHeader {
		rows = append(rows, cols)
	}
	for _, rec := range view.Records {
		row := make([]string, len(cols))
		for i, col := range cols {
			row[i] = truncate.StringWithTail(view.cell(rec, col), maxCellWidth, "…")
		}
		rows = append(rows, row)
	}

	widths := make([]int, len(cols))
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	for _, row := range rows {
		var b strings.Builder
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(cell)
			if i < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)))
			}
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(b.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}
