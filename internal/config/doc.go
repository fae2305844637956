// Package config manages user settings stored at ~/.nb/config.yaml, with
// NB_* environment variables overriding file values. Defaults (index URL,
// entry file, ASGI attribute) come from the branding package.
package config
