package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Open-Technology-Foundation/dejavu2-cli/internal/registry"
)

func TestBuilder_WithModel_Defaults(t *testing.T) {
	reg := NewBuilder().WithModel("m1").Build()

	require.Equal(t, 1, reg.Len())
	rec, ok := reg.Get("m1")
	require.True(t, ok)

	model, found := rec.Lookup("model")
	require.True(t, found)
	assert.Equal(t, "m1", model)

	enabled, found := rec.Lookup("enabled")
	require.True(t, found)
	assert.Equal(t, int64(1), enabled)

	report := registry.Lint(reg, registry.ModelsProfile)
	assert.True(t, report.Clean(), "default model should pass the models lint profile")
}

func TestBuilder_WithAgent_Defaults(t *testing.T) {
	reg := NewBuilder().WithAgent("a1").Build()

	rec, ok := reg.Get("a1")
	require.True(t, ok)

	cat, found := rec.Lookup("category")
	require.True(t, found)
	assert.Equal(t, "General", cat)

	report := registry.Lint(reg, registry.AgentsProfile)
	assert.True(t, report.Clean(), "default agent should pass the agents lint profile")
}

func TestBuilder_OptionsOverrideDefaults(t *testing.T) {
	reg := NewBuilder().
		WithModel("m1", Parent("OpenAI"), Enabled(0), Attr("notes", "preview")).
		Build()

	rec, _ := reg.Get("m1")

	parent, _ := rec.Lookup("parent")
	assert.Equal(t, "OpenAI", parent)

	enabled, _ := rec.Lookup("enabled")
	assert.Equal(t, int64(0), enabled)

	notes, found := rec.Lookup("notes")
	require.True(t, found)
	assert.Equal(t, "preview", notes)

	// Overriding keeps the default key positions.
	keys := rec.Keys()
	assert.Equal(t, "model", keys[0])
	assert.Equal(t, "notes", keys[len(keys)-1])
}

func TestBuilder_WithRecord_Bare(t *testing.T) {
	reg := NewBuilder().
		WithRecord("r1", Attr("price", 2.5)).
		Build()

	rec, _ := reg.Get("r1")
	assert.Equal(t, []string{"price"}, rec.Keys())

	_, found := rec.Lookup("model")
	assert.False(t, found)
}

func TestBuilder_InsertionOrderPreserved(t *testing.T) {
	reg := NewBuilder().
		WithModel("zeta").
		WithAgent("alpha").
		WithRecord("mid").
		Build()

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, reg.IDs())
}

func TestAttr_LaterValueWins(t *testing.T) {
	reg := NewBuilder().
		WithRecord("r1", Attr("status", "draft"), Attr("status", "final")).
		Build()

	rec, _ := reg.Get("r1")
	status, _ := rec.Lookup("status")
	assert.Equal(t, "final", status)
	assert.Equal(t, []string{"status"}, rec.Keys())
}
