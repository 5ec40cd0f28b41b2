package problem

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is the on-disk problem catalog shape.
type Manifest struct {
	Problems []Meta `yaml:"problems"`
}

// LoadFile reads a YAML problem manifest and returns a populated
// registry. Every record is validated on the way in; a duplicate or
// malformed entry fails the whole load.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest load failed (%s): %w", path, err)
	}
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("manifest parse failed (%s): %w", path, err)
	}
	r := NewRegistry()
	for _, meta := range manifest.Problems {
		if err := r.Register(meta); err != nil {
			return nil, fmt.Errorf("manifest entry %q: %w", meta.ID, err)
		}
	}
	return r, nil
}
