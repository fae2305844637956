package manifest

import (
	"reflect"
	"testing"
	"testing/fstest"
)

const validManifest = `name: demo
description: A demo template set
variables:
  - name: project_name
    required: true
  - name: port
    default: "8080"
files:
  - source: main.py.tmpl
    target: main.py
  - source: readme.md
    target: README.md
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(validManifest))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if m.Name != "demo" {
		t.Errorf("Name = %q", m.Name)
	}
	if len(m.Variables) != 2 {
		t.Fatalf("Variables = %d, want 2", len(m.Variables))
	}
	if !m.Variables[0].Required {
		t.Error("project_name should be required")
	}
	if m.Variables[1].Default != "8080" {
		t.Errorf("port default = %q", m.Variables[1].Default)
	}
	if len(m.Files) != 2 {
		t.Fatalf("Files = %d, want 2", len(m.Files))
	}
	if m.Files[0].Source != "main.py.tmpl" || m.Files[0].Target != "main.py" {
		t.Errorf("Files[0] = %+v", m.Files[0])
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("name: [unclosed")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestParseFS(t *testing.T) {
	fsys := fstest.MapFS{
		"demo/template.yaml": &fstest.MapFile{Data: []byte(validManifest)},
	}

	m, err := ParseFS(fsys, "demo/template.yaml")
	if err != nil {
		t.Fatalf("ParseFS() error: %v", err)
	}
	if m.Name != "demo" {
		t.Errorf("Name = %q", m.Name)
	}

	if _, err := ParseFS(fsys, "missing/template.yaml"); err == nil {
		t.Fatal("expected error for missing manifest")
	}
}

func TestMissingVariables(t *testing.T) {
	m, err := Parse([]byte(validManifest))
	if err != nil {
		t.Fatal(err)
	}

	if got := m.RequiredVariables(); !reflect.DeepEqual(got, []string{"project_name"}) {
		t.Errorf("RequiredVariables() = %v", got)
	}

	missing := m.MissingVariables(map[string]any{"port": "9000"})
	if !reflect.DeepEqual(missing, []string{"project_name"}) {
		t.Errorf("MissingVariables() = %v", missing)
	}

	if missing := m.MissingVariables(map[string]any{"project_name": "demo"}); missing != nil {
		t.Errorf("MissingVariables() = %v, want none", missing)
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid manifest", func(t *testing.T) {
		result, err := Validate([]byte(validManifest))
		if err != nil {
			t.Fatalf("Validate() error: %v", err)
		}
		if !result.Valid {
			t.Errorf("result not valid: %+v", result.Issues)
		}
	})

	t.Run("missing files", func(t *testing.T) {
		result, err := Validate([]byte("name: demo\n"))
		if err != nil {
			t.Fatalf("Validate() error: %v", err)
		}
		if result.Valid {
			t.Fatal("expected validation failure")
		}
		if len(result.Issues) == 0 {
			t.Fatal("expected at least one issue")
		}
	})

	t.Run("bad variable name", func(t *testing.T) {
		result, err := Validate([]byte(`name: demo
variables:
  - name: Not_Snake
files:
  - source: a.tmpl
    target: a
`))
		if err != nil {
			t.Fatalf("Validate() error: %v", err)
		}
		if result.Valid {
			t.Fatal("expected validation failure")
		}
	})

	t.Run("unparseable YAML", func(t *testing.T) {
		if _, err := Validate([]byte("name: [unclosed")); err == nil {
			t.Fatal("expected error")
		}
	})
}
