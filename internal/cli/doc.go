// Package cli defines the nb command tree. Each subcommand is a thin
// adapter over one internal package; running nb with no subcommand enters
// the interactive menu.
package cli
