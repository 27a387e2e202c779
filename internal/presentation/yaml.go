package presentation

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Open-Technology-Foundation/dejavu2-cli/internal/registry"
)

// YAMLFormatter emits a YAML mapping keyed by record identifier, built as
// an explicit node tree so record order and top-level attribute order are
// preserved. The output is itself a loadable registry file.
type YAMLFormatter struct{}

func (f *YAMLFormatter) Format(w io.Writer, view *View) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, rec := range view.Records {
		var key yaml.Node
		key.SetString(rec.ID())

		value, err := recordNode(rec)
		if err != nil {
			return err
		}
		root.Content = append(root.Content, &key, value)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

func recordNode(rec *registry.Record) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, attrKey := range rec.Keys() {
		var key yaml.Node
		key.SetString(attrKey)

		attr, _ := rec.Attr(attrKey)
		var value yaml.Node
		if err := value.Encode(attr); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &key, &value)
	}
	return node, nil
}
