package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/nonebot-go/nb/internal/manifest"
)

//go:embed all:templates
var templatesFS embed.FS

// Template set names.
const (
	SetProject = "project"
	SetPlugin  = "plugin"
)

const manifestName = "template.yaml"

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
}

// Generate instantiates the named template set into outputDir.
//
// The set's manifest is schema-validated and every required variable must be
// present in context before anything is written; a missing variable aborts
// with no side effect. The output directory is created if needed but must
// be empty.
func Generate(set string, context map[string]any, outputDir string) (*Result, error) {
	setDir := path.Join("templates", set)

	manifestPath := path.Join(setDir, manifestName)
	rawManifest, err := fs.ReadFile(templatesFS, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("template set %q not found: %w", set, err)
	}

	valResult, err := manifest.Validate(rawManifest)
	if err != nil {
		return nil, fmt.Errorf("validating manifest for set %q: %w", set, err)
	}
	if !valResult.Valid {
		return nil, fmt.Errorf("template set %q has an invalid manifest: %s", set, summarizeIssues(valResult.Issues))
	}

	m, err := manifest.Parse(rawManifest)
	if err != nil {
		return nil, err
	}

	if missing := m.MissingVariables(context); len(missing) > 0 {
		return nil, fmt.Errorf("missing required template variables: %s", strings.Join(missing, ", "))
	}

	data := withDefaults(m, context)

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	// Refuse to clobber existing files.
	existing, err := os.ReadDir(outputDir)
	if err == nil && len(existing) > 0 {
		return nil, fmt.Errorf("output directory %s is not empty; remove existing files first", outputDir)
	}

	result := &Result{OutputDir: outputDir}

	for _, spec := range m.Files {
		target, err := renderString("target:"+spec.Source, spec.Target, data)
		if err != nil {
			return nil, fmt.Errorf("rendering target path for %s: %w", spec.Source, err)
		}

		tmplBytes, err := fs.ReadFile(templatesFS, path.Join(setDir, spec.Source))
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", spec.Source, err)
		}

		content, err := renderString(spec.Source, string(tmplBytes), data)
		if err != nil {
			return nil, fmt.Errorf("executing template %s: %w", spec.Source, err)
		}

		outPath := filepath.Join(outputDir, filepath.FromSlash(target))
		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return nil, fmt.Errorf("creating directory for %s: %w", target, err)
		}
		if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}

		result.Files = append(result.Files, target)
	}

	return result, nil
}

// renderString executes text as a template over data. Unknown variables are
// an error so a template never silently emits "<no value>".
func renderString(name, text string, data map[string]any) (string, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// withDefaults copies context and fills in declared defaults for absent
// optional variables, leaving the caller's map untouched.
func withDefaults(m *manifest.TemplateManifest, context map[string]any) map[string]any {
	data := make(map[string]any, len(context))
	for k, v := range context {
		data[k] = v
	}
	for _, v := range m.Variables {
		if v.Default == "" {
			continue
		}
		if _, ok := data[v.Name]; !ok {
			data[v.Name] = v.Default
		}
	}
	return data
}

func summarizeIssues(issues []manifest.ValidationIssue) string {
	parts := make([]string, 0, len(issues))
	for _, issue := range issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		parts = append(parts, msg)
	}
	return strings.Join(parts, "; ")
}

// ProjectSlug derives the directory/package name for a project: lowercased,
// with spaces and hyphens folded to underscores.
func ProjectSlug(name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = strings.ReplaceAll(slug, "-", "_")
	return slug
}

// ProjectContext assembles the template context for the project set.
func ProjectContext(name string, useSrc, loadBuiltin bool) map[string]any {
	slug := ProjectSlug(name)

	parent := slug
	if useSrc {
		parent = "src"
	}

	return map[string]any{
		"project_name":    name,
		"project_slug":    slug,
		"use_src":         useSrc,
		"load_builtin":    loadBuiltin,
		"plugins_dir":     parent + "/plugins",
		"plugins_package": parent + ".plugins",
	}
}

// PluginContext assembles the template context for the plugin set.
func PluginContext(name string) map[string]any {
	return map[string]any{
		"plugin_name": name,
	}
}

// DetectPluginDirs walks root for directories named "plugins" and returns
// their paths relative to root, each exactly once, in walk order. Hidden
// directories are not descended into.
func DetectPluginDirs(root string) ([]string, error) {
	var dirs []string

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if d.Name() == "plugins" {
			rel, relErr := filepath.Rel(root, p)
			if relErr != nil {
				return relErr
			}
			dirs = append(dirs, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning for plugin directories: %w", err)
	}

	return dirs, nil
}
