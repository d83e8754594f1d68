package contract

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/worthyretail/xray/schema"
)

// LoadCatalog returns the built-in catalog, or the YAML catalog at path when set.
// Sections omitted from the file (archetypes, pillars, title) keep their built-in copy.
func LoadCatalog(path string) (schema.Catalog, error) {
	catalog := schema.DefaultCatalog()
	if path == "" {
		return catalog, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return schema.Catalog{}, fmt.Errorf("failed to read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a YAML catalog over the built-in defaults and validates it.
func ParseCatalog(data []byte) (schema.Catalog, error) {
	var custom schema.Catalog
	if err := yaml.Unmarshal(data, &custom); err != nil {
		return schema.Catalog{}, fmt.Errorf("invalid catalog YAML: %w", err)
	}

	catalog := schema.DefaultCatalog()
	if custom.Title != "" {
		catalog.Title = custom.Title
	}
	if len(custom.Questions) > 0 {
		catalog.Questions = custom.Questions
	}
	for id, a := range custom.Archetypes {
		if a.ID == "" {
			a.ID = id
		}
		catalog.Archetypes[id] = a
	}
	for p, info := range custom.Pillars {
		if info.Pillar == "" {
			info.Pillar = p
		}
		catalog.Pillars[p] = info
	}

	if err := catalog.Validate(); err != nil {
		return schema.Catalog{}, fmt.Errorf("invalid catalog: %w", err)
	}
	return catalog, nil
}
