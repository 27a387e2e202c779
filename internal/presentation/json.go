package presentation

import (
	"bytes"
	"encoding/json"
	"io"
)

// JSONFormatter emits an indented JSON object keyed by record identifier.
// Record order and top-level attribute order survive the trip, so the
// output can be saved and re-loaded as a registry file.
type JSONFormatter struct{}

func (f *JSONFormatter) Format(w io.Writer, view *View) error {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, rec := range view.Records {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString("\n  ")

		id, err := json.Marshal(rec.ID())
		if err != nil {
			return err
		}
		buf.Write(id)
		buf.WriteString(": {")

		keys := rec.Keys()
		for j, key := range keys {
			if j > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString("\n    ")

			k, err := json.Marshal(key)
			if err != nil {
				return err
			}
			buf.Write(k)
			buf.WriteString(": ")

			value, _ := rec.Attr(key)
			v, err := json.MarshalIndent(value, "    ", "  ")
			if err != nil {
				return err
			}
			buf.Write(v)
		}
		if len(keys) > 0 {
			buf.WriteString("\n  ")
		}
		buf.WriteByte('}')
	}

	if len(view.Records) > 0 {
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")

	_, err := w.Write(buf.Bytes())
	return err
}
