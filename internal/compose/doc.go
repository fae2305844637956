// Package compose proxies simplified subcommands (build, up -d, down) to an
// external container-orchestration CLI, translating a small set of global
// flags into whichever front-end grammar is installed and propagating the
// tool's exit status untouched.
package compose
