package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BindingsFile is the YAML document declaring explicit
// interface-to-implementation bindings.
type BindingsFile struct {
	Version  string    `yaml:"version"`
	Bindings []Binding `yaml:"bindings"`
}

// Binding pairs an interface entity with its implementation by qualified
// type name.
type Binding struct {
	Interface      string `yaml:"interface"`
	Implementation string `yaml:"implementation"`
}

// LoadBindingsFile loads and parses a YAML bindings file from the given path.
func LoadBindingsFile(path string) (*BindingsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bindings file %s: %w", path, err)
	}

	return ParseBindings(data)
}

// ParseBindings parses YAML data into a BindingsFile.
func ParseBindings(data []byte) (*BindingsFile, error) {
	var bf BindingsFile

	err := yaml.Unmarshal(data, &bf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bindings YAML: %w", err)
	}

	if bf.Version == "" {
		bf.Version = "1"
	}

	return &bf, nil
}

// Apply records every binding of the file on the registry.
// Bindings with an empty side are rejected.
func (bf *BindingsFile) Apply(r *Registry) error {
	for i, b := range bf.Bindings {
		if b.Interface == "" || b.Implementation == "" {
			return fmt.Errorf("binding %d: interface and implementation are both required", i)
		}

		r.Bind(b.Interface, b.Implementation)
	}

	return nil
}
