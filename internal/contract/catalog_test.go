package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worthyretail/xray/schema"
)

func TestLoadCatalogDefault(t *testing.T) {
	catalog, err := LoadCatalog("")
	require.NoError(t, err)
	assert.Equal(t, schema.DefaultCatalog(), catalog)
}

func TestParseCatalogOverrides(t *testing.T) {
	data := []byte(`
title: Store Pulse
questions:
  - {id: 1, pillar: B, text: "I share bad news early."}
  - {id: 2, pillar: F, text: "Our checkout never stalls."}
  - {id: 3, pillar: P, text: "Everyone knows why we open the doors."}
archetypes:
  SOLID:
    name: Steady Hand
    color: "#000000"
`)

	catalog, err := ParseCatalog(data)
	require.NoError(t, err)

	assert.Equal(t, "Store Pulse", catalog.Title)
	require.Len(t, catalog.Questions, 3)
	assert.Equal(t, schema.Fuel, catalog.Questions[1].Pillar)

	solid := catalog.Archetype(schema.SolidArchetype)
	assert.Equal(t, schema.SolidArchetype, solid.ID)
	assert.Equal(t, "Steady Hand", solid.Name)

	// Untouched sections keep the built-in copy.
	def := schema.DefaultCatalog()
	assert.Equal(t, def.Archetypes[schema.BurnoutArchetype], catalog.Archetypes[schema.BurnoutArchetype])
	assert.Equal(t, def.Pillars, catalog.Pillars)
}

func TestParseCatalogInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "questions: [\n"},
		{"uneven pillars", `
questions:
  - {id: 1, pillar: B, text: a}
  - {id: 2, pillar: B, text: b}
  - {id: 3, pillar: P, text: c}
`},
		{"unknown pillar", `
questions:
  - {id: 1, pillar: X, text: a}
  - {id: 2, pillar: F, text: b}
  - {id: 3, pillar: P, text: c}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: From File\n"), 0o600))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, "From File", catalog.Title)
	assert.Len(t, catalog.Questions, 9)

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
