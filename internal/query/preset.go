package query

import "strings"

// Preset is a named, predefined filter combination.
type Preset struct {
	Name        string
	Description string
	Exprs       []string
	Any         bool // combine with OR instead of AND
}

// builtinPresets is the catalog in listing order.
var builtinPresets = []Preset{
	{
		Name:        "anthropic",
		Description: "Models provided by Anthropic",
		Exprs:       []string{"parent:equals:Anthropic"},
	},
	{
		Name:        "openai",
		Description: "Models provided by OpenAI",
		Exprs:       []string{"parent:equals:OpenAI"},
	},
	{
		Name:        "google",
		Description: "Models provided by Google",
		Exprs:       []string{"parent:equals:Google"},
	},
	{
		Name:        "local",
		Description: "Models served from a local endpoint",
		Exprs:       []string{"url:contains:localhost", "url:contains:127.0.0.1"},
		Any:         true,
	},
	{
		Name:        "enabled",
		Description: "Models currently enabled",
		Exprs:       []string{"enabled:>=:1"},
	},
	{
		Name:        "available",
		Description: "Models currently available",
		Exprs:       []string{"available:>=:1"},
	},
	{
		Name:        "vision",
		Description: "Models with vision support",
		Exprs:       []string{"vision:>=:1"},
	},
	{
		Name:        "llm",
		Description: "Text-generation models",
		Exprs:       []string{"model_category:equals:LLM"},
	},
}

// Presets returns the built-in preset catalog in listing order.
func Presets() []Preset {
	out := make([]Preset, len(builtinPresets))
	copy(out, builtinPresets)
	return out
}

// LookupPreset resolves a preset name. Lookup is forgiving: case, spaces,
// and punctuation are ignored, so "Open-AI" finds "openai".
func LookupPreset(name string) (Preset, error) {
	key := normalizeKey(name)
	for _, p := range builtinPresets {
		if normalizeKey(p.Name) == key {
			return p, nil
		}
	}

	valid := make([]string, len(builtinPresets))
	for i, p := range builtinPresets {
		valid[i] = p.Name
	}
	return Preset{}, &UnknownPresetError{Name: name, Valid: valid}
}

// normalizeKey lowers the name and strips everything but letters and
// digits.
func normalizeKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
