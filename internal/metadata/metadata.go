// Package metadata loads component documentation metadata in react-docgen
// format: a JSON object keyed by component source path, holding a description
// and the component's props.
//
// The file is decoded with yaml.v3, which accepts JSON and, unlike
// encoding/json into a map, keeps props in the order the extractor wrote them.
package metadata

import (
	_ "embed"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/componentdocs/internal/foundation/errors"
)

//go:embed metadata.json
var defaultMetadata []byte

// Lookup resolves component metadata by implementation file path.
type Lookup interface {
	Component(path string) (*Component, error)
}

// Component is the documentation extracted from one component source file.
type Component struct {
	Description string `yaml:"description"`
	DisplayName string `yaml:"displayName"`
	Props       Props  `yaml:"props"`
}

// Store holds metadata for every component in a metadata file.
type Store struct {
	components map[string]*Component
}

// Parse decodes a metadata document.
func Parse(data []byte) (*Store, error) {
	components := map[string]*Component{}
	if err := yaml.Unmarshal(data, &components); err != nil {
		return nil, errors.WrapError(err, errors.CategoryMetadata, "failed to decode component metadata").
			Fatal().
			Build()
	}
	for path, c := range components {
		if c == nil {
			return nil, errors.MetadataError("component metadata entry is empty").
				WithContext("path", path).
				Build()
		}
	}
	return &Store{components: components}, nil
}

// Load reads and decodes a metadata file from disk.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapError(err, errors.CategoryNotFound, "metadata file not found").
				Fatal().
				WithContext("path", path).
				Build()
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read metadata file").
			WithContext("path", path).
			Build()
	}
	return Parse(data)
}

// Default returns the metadata bundled with the binary.
func Default() (*Store, error) {
	return Parse(defaultMetadata)
}

// Component returns the metadata for the component implemented at path.
func (s *Store) Component(path string) (*Component, error) {
	c, ok := s.components[path]
	if !ok {
		return nil, errors.NotFoundError("no metadata for component").
			WithContext("path", path).
			Build()
	}
	return c, nil
}

// Paths lists the component paths in the store, sorted.
func (s *Store) Paths() []string {
	return slices.Sorted(maps.Keys(s.components))
}
