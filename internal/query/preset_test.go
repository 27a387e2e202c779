package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Open-Technology-Foundation/dejavu2-cli/internal/testutil"
)

// Every built-in preset must parse with the default engine.
func TestPresets_AllParse(t *testing.T) {
	e := NewEngine(false)
	for _, p := range Presets() {
		t.Run(p.Name, func(t *testing.T) {
			require.NotEmpty(t, p.Description)
			filters, err := e.ParseFilters(context.Background(), p.Exprs)
			require.NoError(t, err)
			assert.NotEmpty(t, filters)
		})
	}
}

func TestLookupPreset_ForgivingNames(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"anthropic", "anthropic"},
		{"Anthropic", "anthropic"},
		{"ANTHROPIC", "anthropic"},
		{"Open-AI", "openai"},
		{"open ai", "openai"},
		{"openai", "openai"},
		{"LLM", "llm"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := LookupPreset(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Name)
		})
	}
}

func TestLookupPreset_Unknown(t *testing.T) {
	_, err := LookupPreset("nonesuch")
	require.Error(t, err)

	var presetErr *UnknownPresetError
	require.ErrorAs(t, err, &presetErr)
	assert.Equal(t, "nonesuch", presetErr.Name)
	assert.Contains(t, err.Error(), "anthropic")
	assert.Contains(t, err.Error(), "llm")
}

func TestPreset_LocalCombinesWithOr(t *testing.T) {
	p, err := LookupPreset("local")
	require.NoError(t, err)
	require.True(t, p.Any)

	reg := testutil.NewBuilder().WithStandardCatalog().Build()
	e := NewEngine(false)
	filters, err := e.ParseFilters(context.Background(), p.Exprs)
	require.NoError(t, err)

	ids := e.Select(reg, &Chain{Filters: filters, Mode: ModeAny}, true)
	assert.Equal(t, []string{"llama"}, ids)
}

func TestPreset_EnabledSelectsEnabledModels(t *testing.T) {
	p, err := LookupPreset("enabled")
	require.NoError(t, err)

	reg := testutil.NewBuilder().WithStandardCatalog().Build()
	e := NewEngine(false)
	filters, err := e.ParseFilters(context.Background(), p.Exprs)
	require.NoError(t, err)

	ids := e.Select(reg, &Chain{Filters: filters}, true)
	assert.NotContains(t, ids, "llama")
	assert.NotContains(t, ids, "legacy")
	assert.Contains(t, ids, "sonnet")
}

func TestPresets_ReturnsCopy(t *testing.T) {
	first := Presets()
	first[0].Name = "mutated"

	second := Presets()
	assert.Equal(t, "anthropic", second[0].Name)
}
