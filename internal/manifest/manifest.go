package manifest

import (
	"fmt"
	"io/fs"

	"go.yaml.in/yaml/v3"
)

// TemplateManifest describes a template set: the variables its files expect
// and the mapping from source templates to rendered target paths.
type TemplateManifest struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Variables   []Variable `yaml:"variables"`
	Files       []FileSpec `yaml:"files"`
}

// Variable declares a context value a template set consumes.
type Variable struct {
	Name     string `yaml:"name"`
	Required bool   `yaml:"required"`
	Default  string `yaml:"default,omitempty"`
}

// FileSpec maps one source template to its rendered destination. Target is
// itself a template, so generated paths can embed context values.
type FileSpec struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
}

// Parse unmarshals manifest YAML bytes.
func Parse(data []byte) (*TemplateManifest, error) {
	var m TemplateManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing template manifest: %w", err)
	}
	return &m, nil
}

// ParseFS reads and parses a manifest from a file system, typically the
// embedded template FS.
func ParseFS(fsys fs.FS, path string) (*TemplateManifest, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading template manifest %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// RequiredVariables returns the names of all variables marked required.
func (m *TemplateManifest) RequiredVariables() []string {
	var names []string
	for _, v := range m.Variables {
		if v.Required {
			names = append(names, v.Name)
		}
	}
	return names
}

// MissingVariables returns the required variable names absent from context,
// preserving declaration order.
func (m *TemplateManifest) MissingVariables(context map[string]any) []string {
	var missing []string
	for _, v := range m.Variables {
		if !v.Required {
			continue
		}
		if _, ok := context[v.Name]; !ok {
			missing = append(missing, v.Name)
		}
	}
	return missing
}
