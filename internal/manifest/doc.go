// Package manifest parses and validates template-set manifests. Each
// template set ships a template.yaml declaring its variables and the
// mapping from source templates to rendered target paths; manifests are
// validated against an embedded JSON Schema before any file is generated.
package manifest
