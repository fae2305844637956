// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into
// the binary with //go:embed, so a fork only needs to edit one file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	HomeDir      string `yaml:"home_dir"`
	EnvPrefix    string `yaml:"env_prefix"`
	PluginPrefix string `yaml:"plugin_prefix"`
	DefaultIndex string `yaml:"default_index"`
	EntryFile    string `yaml:"entry_file"`
	ASGIAttr     string `yaml:"asgi_attr"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:      "nb",
			DisplayName:  "NoneBot",
			Description:  "CLI for scaffolding and operating NoneBot projects",
			HomeDir:      ".nb",
			EnvPrefix:    "NB",
			PluginPrefix: "nonebot_plugin_",
			DefaultIndex: "https://pypi.org/pypi",
			EntryFile:    "bot.py",
			ASGIAttr:     "app",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "nb").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "NoneBot").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".nb").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "NB").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// PluginPrefix returns the package-name prefix every plugin carries on the
// index (e.g., "nonebot_plugin_").
func PluginPrefix() string { load(); return defaults.PluginPrefix }

// DefaultIndex returns the default package index URL.
func DefaultIndex() string { load(); return defaults.DefaultIndex }

// EntryFile returns the default bot entry file name (e.g., "bot.py").
func EntryFile() string { load(); return defaults.EntryFile }

// ASGIAttr returns the default ASGI application attribute name (e.g., "app").
func ASGIAttr() string { load(); return defaults.ASGIAttr }

// QualifyPlugin returns the fully qualified index package name for a plugin
// suffix, e.g., QualifyPlugin("weather") → "nonebot_plugin_weather". A name
// that already carries the prefix is returned unchanged.
func QualifyPlugin(suffix string) string {
	load()
	if strings.HasPrefix(suffix, defaults.PluginPrefix) {
		return suffix
	}
	return defaults.PluginPrefix + suffix
}

// EnvVar returns a fully qualified env var name, e.g., EnvVar("INDEX") → "NB_INDEX".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
