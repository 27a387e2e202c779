package presentation

import (
	"encoding/csv"
	"io"
)

// CSVFormatter emits one row per record with a header row unless
// suppressed. Quoting follows RFC 4180 via encoding/csv.
type CSVFormatter struct{}

func (f *CSVFormatter) Format(w io.Writer, view *View) error {
	cols := view.columnSet()
	cw := csv.NewWriter(w)

	if !view.NoHeader {
		if err := cw.Write(cols); err != nil {
			return err
		}
	}
	for _, rec := range view.Records {
		row := make([]string, len(cols))
		for i, col := range cols {
			row[i] = view.cell(rec, col)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
