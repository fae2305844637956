// Package registry searches the package index for plugins and installs
// them via the package manager, patching the bot entry file with a load
// statement after a successful install.
package registry
