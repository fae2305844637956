// Package launcher starts a bot's long-running service loop from its entry
// file, with hot-reload when an ASGI app reference is available.
package launcher
