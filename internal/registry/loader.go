package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Open-Technology-Foundation/dejavu2-cli/internal/log"
)

// LoadError reports a failure to load a registry file. Loading is
// all-or-nothing: on any failure no partial registry is returned.
type LoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load registry %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("load registry %s: %s", e.Path, e.Reason)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads a registry file and returns the ordered record collection.
// Files ending in .yaml or .yml are parsed as YAML, everything else as
// JSON. The top level must be a mapping of record identifier to attribute
// mapping.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from config or --registry flag
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "read file", Err: err}
	}

	var reg *Registry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		reg, err = decodeYAML(path, data)
	default:
		reg, err = decodeJSON(path, data)
	}
	if err != nil {
		return nil, err
	}

	log.Debug(log.CatRegistry, "registry loaded", "path", path, "records", reg.Len())
	return reg, nil
}

// decodeJSON walks the top two object levels token by token so that both
// record order and attribute order survive decoding. Values below the
// attribute level decode normally; their ordering is not load-bearing.
func decodeJSON(path string, data []byte) (*Registry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "decode JSON", Err: err}
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, &LoadError{Path: path, Reason: "top level must be a mapping of id to attributes"}
	}

	reg := NewRegistry()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, &LoadError{Path: path, Reason: "decode JSON", Err: err}
		}
		id, ok := keyTok.(string)
		if !ok {
			return nil, &LoadError{Path: path, Reason: "decode JSON", Err: fmt.Errorf("unexpected token %v", keyTok)}
		}

		rec, err := decodeJSONRecord(dec, id)
		if err != nil {
			return nil, &LoadError{Path: path, Reason: fmt.Sprintf("record %q", id), Err: err}
		}
		reg.Add(rec)
	}

	if _, err := dec.Token(); err != nil {
		return nil, &LoadError{Path: path, Reason: "decode JSON", Err: err}
	}
	return reg, nil
}

func decodeJSONRecord(dec *json.Decoder, id string) (*Record, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("value must be an attribute mapping")
	}

	rec := NewRecord(id)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", keyTok)
		}

		var raw any
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		rec.Set(key, normalizeJSON(raw))
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return rec, nil
}

// normalizeJSON converts json.Number leaves into int64 or float64 so the
// rest of the engine sees the same numeric types from both input formats.
func normalizeJSON(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		for k, val := range t {
			t[k] = normalizeJSON(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = normalizeJSON(val)
		}
		return t
	default:
		return v
	}
}

func decodeYAML(path string, data []byte) (*Registry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Path: path, Reason: "decode YAML", Err: err}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, &LoadError{Path: path, Reason: "top level must be a mapping of id to attributes"}
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, &LoadError{Path: path, Reason: "top level must be a mapping of id to attributes"}
	}

	reg := NewRegistry()
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]
		if valNode.Kind != yaml.MappingNode {
			return nil, &LoadError{Path: path, Reason: fmt.Sprintf("record %q", keyNode.Value), Err: fmt.Errorf("value must be an attribute mapping")}
		}

		rec := NewRecord(keyNode.Value)
		for j := 0; j+1 < len(valNode.Content); j += 2 {
			attrKey := valNode.Content[j].Value
			var attrVal any
			if err := valNode.Content[j+1].Decode(&attrVal); err != nil {
				return nil, &LoadError{Path: path, Reason: fmt.Sprintf("record %q attribute %q", keyNode.Value, attrKey), Err: err}
			}
			rec.Set(attrKey, attrVal)
		}
		reg.Add(rec)
	}
	return reg, nil
}
