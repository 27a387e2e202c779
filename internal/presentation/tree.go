package presentation

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/muesli/reflow/indent"

	"github.com/Open-Technology-Foundation/dejavu2-cli/internal/registry"
)

// NoneGroup labels the tree bucket for records without the grouping field.
const NoneGroup = "(none)"

// TreeFormatter groups records under one field's values: sorted group
// headers, members indented beneath, records without the field (or with a
// blank value) collected under a final bucket.
type TreeFormatter struct{}

func (f *TreeFormatter) Format(w io.Writer, view *View) error {
	field := view.GroupBy
	if field == "" {
		field = "parent"
	}

	members := make(map[string][]string)
	var names []string
	for _, rec := range view.Records {
		group := NoneGroup
		if v, found := rec.Lookup(field); found {
			if s := renderValue(v); s != "" {
				group = s
			}
		}
		if _, seen := members[group]; !seen && group != NoneGroup {
			names = append(names, group)
		}
		members[group] = append(members[group], memberLine(rec))
	}

	sort.Strings(names)
	if _, ok := members[NoneGroup]; ok {
		names = append(names, NoneGroup)
	}

	for i, name := range names {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
		block := indent.String(strings.Join(members[name], "\n"), 2)
		if _, err := fmt.Fprintln(w, block); err != nil {
			return err
		}
	}
	return nil
}

// memberLine shows the identifier, with the backing model name alongside
// when it differs.
func memberLine(rec *registry.Record) string {
	line := rec.ID()
	if v, found := rec.Lookup("model"); found {
		if s, ok := v.(string); ok && s != "" && s != rec.ID() {
			line += " (" + s + ")"
		}
	}
	return line
}
