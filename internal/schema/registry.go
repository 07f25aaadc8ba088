// Package schema serves the entity field descriptors the frontend uses to
// render forms and grids. The registry is embedded at build time and loaded
// once.
package schema

import (
	"fmt"
	"sort"
	"sync"

	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed fields.yaml
var fieldsYAML []byte

// FieldDescriptor describes one field of an entity
type FieldDescriptor struct {
	Fieldname string `yaml:"fieldname" json:"fieldname"`
	Fieldtype string `yaml:"fieldtype" json:"fieldtype"`
	Label     string `yaml:"label" json:"label"`
	Required  bool   `yaml:"required" json:"required"`
	Options   string `yaml:"options,omitempty" json:"options,omitempty"`
	ReadOnly  bool   `yaml:"read_only" json:"read_only"`
}

// Registry maps entity names to their ordered field descriptors
type Registry struct {
	entities map[string][]FieldDescriptor
}

var (
	defaultRegistry *Registry
	loadOnce        sync.Once
	loadErr         error
)

// Load parses the embedded registry. Subsequent calls return the same
// instance.
func Load() (*Registry, error) {
	loadOnce.Do(func() {
		defaultRegistry, loadErr = parse(fieldsYAML)
	})
	return defaultRegistry, loadErr
}

func parse(data []byte) (*Registry, error) {
	entities := make(map[string][]FieldDescriptor)
	if err := yaml.Unmarshal(data, &entities); err != nil {
		return nil, fmt.Errorf("failed to parse field registry: %w", err)
	}
	for entity, fields := range entities {
		if len(fields) == 0 {
			return nil, fmt.Errorf("entity %q has no fields", entity)
		}
		seen := make(map[string]bool, len(fields))
		for _, f := range fields {
			if f.Fieldname == "" || f.Fieldtype == "" {
				return nil, fmt.Errorf("entity %q has a field without name or type", entity)
			}
			if seen[f.Fieldname] {
				return nil, fmt.Errorf("entity %q repeats field %q", entity, f.Fieldname)
			}
			seen[f.Fieldname] = true
		}
	}
	return &Registry{entities: entities}, nil
}

// Fields returns the ordered descriptors for an entity
func (r *Registry) Fields(entity string) ([]FieldDescriptor, bool) {
	fields, ok := r.entities[entity]
	return fields, ok
}

// Entities returns all registered entity names, sorted
func (r *Registry) Entities() []string {
	names := make([]string, 0, len(r.entities))
	for name := range r.entities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
