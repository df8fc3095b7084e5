// Package file provides a TOML file-backed ConfigStore.
//
// Configuration lives in ~/.drafta/config.toml and holds the engine
// tunables: autosave interval, analysis debounce delay, undo
// threshold and depth, and default formatting. Nested TOML tables are
// flattened into dot-notation keys on load.
package file
