// Package templates seeds new drafts from an embedded library of
// template descriptors.
package templates

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed config/*.yaml
var configFiles embed.FS

// ButtonSeed describes one seeded footer button.
type ButtonSeed struct {
	Label string `yaml:"label"`
	URI   string `yaml:"uri"`
	Color string `yaml:"color"`
	Style string `yaml:"style"`
}

// Descriptor is one embedded template definition.
type Descriptor struct {
	Name           string       `yaml:"name"`
	Description    string       `yaml:"description"`
	Kind           string       `yaml:"kind"` // bubble | carousel | special
	CardCount      int          `yaml:"card_count"`
	PlaceholderURL string       `yaml:"placeholder_url"`
	Palette        []string     `yaml:"palette"`
	OverlayColor   string       `yaml:"overlay_color"`
	OverlayHeight  string       `yaml:"overlay_height"`
	Buttons        []ButtonSeed `yaml:"buttons"`
}

// Registry holds the embedded template descriptors.
type Registry struct {
	descriptors map[string]*Descriptor
	mu          sync.RWMutex
}

// NewRegistry loads the embedded YAML descriptors.
func NewRegistry() (*Registry, error) {
	r := &Registry{descriptors: make(map[string]*Descriptor)}

	for _, kind := range []string{"bubble", "carousel", "special"} {
		if err := r.loadDescriptor(kind); err != nil {
			return nil, fmt.Errorf("load %s template: %w", kind, err)
		}
	}

	return r, nil
}

func (r *Registry) loadDescriptor(kind string) error {
	filename := fmt.Sprintf("config/%s.yaml", kind)
	data, err := configFiles.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read %s: %w", filename, err)
	}

	var desc Descriptor
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return fmt.Errorf("unmarshal %s: %w", filename, err)
	}

	r.mu.Lock()
	r.descriptors[kind] = &desc
	r.mu.Unlock()

	return nil
}

// Get returns the descriptor for the given kind.
func (r *Registry) Get(kind string) (*Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	desc, ok := r.descriptors[kind]
	if !ok {
		return nil, fmt.Errorf("unknown template kind %q", kind)
	}
	return desc, nil
}

// List returns all descriptors in a stable order.
func (r *Registry) List() []*Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Descriptor, 0, len(r.descriptors))
	for _, kind := range []string{"bubble", "carousel", "special"} {
		if desc, ok := r.descriptors[kind]; ok {
			out = append(out, desc)
		}
	}
	return out
}
