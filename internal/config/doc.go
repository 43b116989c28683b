// Package config loads the optional dashboard configuration file.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/progressdash/config.toml
//  3. If the file doesn't exist, return Default()
//  4. If the file exists but fields are missing or empty, keep the defaults
//
// # TOML Format
//
//	source_path = "PROGRESS.toml"
//	refresh_seconds = 10
//	log_file = "~/.cache/progressdash.log"
//
// All fields are optional. A leading ~ in source_path and log_file is
// expanded; relative paths are left relative to the working directory.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, and invalid TOML. Command-line flags override the file in
// package app.
package config
