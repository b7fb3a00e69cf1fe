// Package config loads marquee's startup configuration.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/marquee/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. If the file exists but fields are empty, use defaults for those fields
//
// A file that exists but cannot be parsed is an error; marquee refuses to
// start rather than silently ignoring it.
//
// # TOML Format
//
//	source = "https://example.com/movies.json"
//	log_file = "~/.local/state/marquee/marquee.log"
//	log_level = "info"
//
// # Default Values
//
//   - source: ~/.local/share/marquee/movies.json
//   - log_file: ~/.local/state/marquee/marquee.log
//   - log_level: info (debug, info, warn, error)
//
// # Path Expansion
//
// Tilde and relative paths are expanded to absolute paths for the config
// file, log_file and any source that is not a URL.
package config
